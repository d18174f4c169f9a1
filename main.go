package main

import (
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"github.com/borgmon/sleep-guard/pkg/audio"
	"github.com/borgmon/sleep-guard/pkg/guard"
	"github.com/borgmon/sleep-guard/pkg/logger"
	"github.com/borgmon/sleep-guard/pkg/models"
	"github.com/borgmon/sleep-guard/pkg/platform"
	"github.com/borgmon/sleep-guard/pkg/store"
	"github.com/sirupsen/logrus"
)

const appID = "com.borgmon.sleepguard"

type SleepGuardApp struct {
	app            fyne.App
	guard          *guard.Guard
	configStore    *store.ConfigStore
	config         *models.Config
	mainWindow     *MainWindow
	settingsWindow *SettingsWindow
	toggleHotkey   *toggleHotkey
	chime          *audio.Player
	warmAudio      func()
	log            *logrus.Entry
}

func main() {
	sg := newSleepGuardApp(app.NewWithID(appID), guard.New())

	// Last line of defense; Disable is a no-op if quit already ran
	defer sg.guard.Disable()

	sg.initialize()
	sg.run()
}

func newSleepGuardApp(a fyne.App, g *guard.Guard) *SleepGuardApp {
	configStore := store.NewConfigStore(a)
	return &SleepGuardApp{
		app:         a,
		guard:       g,
		configStore: configStore,
		config:      configStore.Load(),
		warmAudio:   audio.WarmUp,
		log:         logger.WithComponent("app"),
	}
}

func (sg *SleepGuardApp) initialize() {
	sg.log.WithField("mechanism", sg.guard.Mechanism()).Info("Starting Sleep Guard")

	// Sync autostart state with config on startup
	if err := setupAutostart(sg.config.AutoStart); err != nil {
		sg.log.WithError(err).Warn("Failed to setup autostart")
	}
	sg.configStore.Save(sg.config)

	sg.mainWindow = NewMainWindow(sg.app, sg.guard, sg.toggle)
	sg.setupSystemTray()
	sg.watchSignals()

	if sg.config.ToggleHotkey {
		sg.toggleHotkey = startToggleHotkey(sg.toggle)
	}

	sg.prepareAudio()
	sg.activateOnLaunch()

	sg.mainWindow.Show()
}

func (sg *SleepGuardApp) activateOnLaunch() {
	if !sg.config.ActivateOnLaunch || !sg.guard.Supported() {
		return
	}

	if err := sg.guard.Enable(); err != nil {
		sg.log.WithError(err).Warn("Failed to activate on launch")
	}
	sg.refresh()
}

// prepareAudio opens the audio device off the UI thread so the first chime
// does not stall a toggle
func (sg *SleepGuardApp) prepareAudio() {
	if sg.config.PlaySound {
		sg.warmAudio()
	}
}

func (sg *SleepGuardApp) run() {
	sg.app.Lifecycle().SetOnStarted(func() {
		platform.HideDockIcon()
	})
	sg.app.Lifecycle().SetOnStopped(func() {
		sg.guard.Disable()
	})
	sg.app.Run()
}

// toggle flips sleep prevention and brings every view up to date. It must
// run on the UI thread.
func (sg *SleepGuardApp) toggle() {
	active, err := sg.guard.Toggle()
	if err != nil {
		sg.showError(err)
	} else {
		sg.playFeedback(active)
	}
	sg.refresh()
}

func (sg *SleepGuardApp) refresh() {
	if sg.mainWindow != nil {
		sg.mainWindow.Update()
	}
	sg.updateSystemTrayMenu()
}

func (sg *SleepGuardApp) playFeedback(active bool) {
	if !sg.config.PlaySound {
		return
	}

	sg.chime.Stop()
	if active {
		sg.chime = audio.Play(audio.ChimeOn)
	} else {
		sg.chime = audio.Play(audio.ChimeOff)
	}
}

func (sg *SleepGuardApp) showError(err error) {
	if sg.mainWindow == nil {
		return
	}
	sg.mainWindow.Show()
	dialog.ShowError(err, sg.mainWindow.window)
}

// applyConfig persists newConfig and starts or stops the features that
// depend on it
func (sg *SleepGuardApp) applyConfig(newConfig *models.Config) {
	if newConfig.ToggleHotkey && sg.toggleHotkey == nil {
		sg.toggleHotkey = startToggleHotkey(sg.toggle)
	} else if !newConfig.ToggleHotkey && sg.toggleHotkey != nil {
		sg.toggleHotkey.Stop()
		sg.toggleHotkey = nil
	}

	sg.config = newConfig
	sg.configStore.Save(sg.config)
	sg.prepareAudio()
	sg.log.WithField("config", *sg.config).Debug("Settings saved")
}

// watchSignals releases sleep prevention on SIGINT and SIGTERM
func (sg *SleepGuardApp) watchSignals() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		sg.log.WithField("signal", sig.String()).Info("Received signal, shutting down")
		fyne.Do(sg.quit)
	}()
}

func (sg *SleepGuardApp) quit() {
	if sg.toggleHotkey != nil {
		sg.toggleHotkey.Stop()
		sg.toggleHotkey = nil
	}
	sg.chime.Stop()
	sg.guard.Disable()
	sg.app.Quit()
}
