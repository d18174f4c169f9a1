package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const indicatorSize = 14

// StatusBadge shows a colored indicator dot next to a caption. Tapping it
// calls OnTapped.
type StatusBadge struct {
	widget.BaseWidget
	Text     string
	Active   bool
	OnTapped func()

	hovered bool
}

// NewStatusBadge creates a new StatusBadge
func NewStatusBadge(text string, onTapped func()) *StatusBadge {
	b := &StatusBadge{
		Text:     text,
		OnTapped: onTapped,
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetState updates caption and indicator together
func (b *StatusBadge) SetState(active bool, text string) {
	b.Active = active
	b.Text = text
	b.Refresh()
}

// CreateRenderer implements fyne.Widget
func (b *StatusBadge) CreateRenderer() fyne.WidgetRenderer {
	text := canvas.NewText(b.Text, theme.Color(theme.ColorNameForeground))
	text.TextSize = theme.CaptionTextSize()

	r := &statusBadgeRenderer{
		badge:     b,
		indicator: canvas.NewCircle(theme.Color(theme.ColorNameDisabled)),
		text:      text,
		bg:        canvas.NewRectangle(theme.Color(theme.ColorNameBackground)),
	}
	r.Refresh()
	return r
}

// Tapped implements fyne.Tappable
func (b *StatusBadge) Tapped(*fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

// MouseIn implements desktop.Hoverable
func (b *StatusBadge) MouseIn(*desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

// MouseMoved implements desktop.Hoverable
func (b *StatusBadge) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (b *StatusBadge) MouseOut() {
	b.hovered = false
	b.Refresh()
}

type statusBadgeRenderer struct {
	badge     *StatusBadge
	indicator *canvas.Circle
	text      *canvas.Text
	bg        *canvas.Rectangle
}

func (r *statusBadgeRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	pad := theme.Padding()
	r.indicator.Resize(fyne.NewSize(indicatorSize, indicatorSize))
	r.indicator.Move(fyne.NewPos(pad, (size.Height-indicatorSize)/2))

	textSize := r.text.MinSize()
	r.text.Resize(textSize)
	r.text.Move(fyne.NewPos(pad*2+indicatorSize, (size.Height-textSize.Height)/2))
}

func (r *statusBadgeRenderer) MinSize() fyne.Size {
	textSize := r.text.MinSize()
	pad := theme.Padding()
	height := textSize.Height
	if height < indicatorSize {
		height = indicatorSize
	}
	return fyne.NewSize(textSize.Width+indicatorSize+pad*3, height+pad*2)
}

func (r *statusBadgeRenderer) Refresh() {
	r.text.Text = r.badge.Text
	r.text.Color = theme.Color(theme.ColorNameForeground)

	if r.badge.Active {
		r.indicator.FillColor = theme.Color(theme.ColorNameSuccess)
	} else {
		r.indicator.FillColor = theme.Color(theme.ColorNameDisabled)
	}

	if r.badge.hovered {
		r.bg.FillColor = theme.Color(theme.ColorNameHover)
	} else {
		r.bg.FillColor = theme.Color(theme.ColorNameBackground)
	}

	r.bg.Refresh()
	r.indicator.Refresh()
	r.text.Refresh()
}

func (r *statusBadgeRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.indicator, r.text}
}

func (r *statusBadgeRenderer) Destroy() {}
