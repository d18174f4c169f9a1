package audio

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	sampleRate     = 44100
	channelCount   = 1
	bytesPerSample = 2
	amplitude      = math.MaxInt16 / 4

	// fade applied to both ends of every note to avoid clicks
	fadeDuration = 5 * time.Millisecond
)

// Note is a single sine tone
type Note struct {
	Frequency float64
	Duration  time.Duration
}

// Chime is a short sequence of notes
type Chime []Note

var (
	// ChimeOn rises, played when sleep prevention is enabled
	ChimeOn = Chime{
		{Frequency: 659.25, Duration: 90 * time.Millisecond},
		{Frequency: 880.00, Duration: 140 * time.Millisecond},
	}

	// ChimeOff falls, played when sleep prevention is disabled
	ChimeOff = Chime{
		{Frequency: 880.00, Duration: 90 * time.Millisecond},
		{Frequency: 659.25, Duration: 140 * time.Millisecond},
	}
)

// samples returns the number of samples a note occupies
func (n Note) samples() int {
	return int(n.Duration.Seconds() * sampleRate)
}

// PCM renders the chime as signed 16-bit little endian mono samples
func (c Chime) PCM() []byte {
	total := 0
	for _, n := range c {
		total += n.samples()
	}

	buf := make([]byte, 0, total*bytesPerSample*channelCount)
	fade := int(fadeDuration.Seconds() * sampleRate)

	for _, n := range c {
		count := n.samples()
		for i := 0; i < count; i++ {
			gain := 1.0
			if i < fade {
				gain = float64(i) / float64(fade)
			} else if count-i < fade {
				gain = float64(count-i) / float64(fade)
			}

			v := math.Sin(2*math.Pi*n.Frequency*float64(i)/sampleRate) * amplitude * gain
			buf = binary.LittleEndian.AppendUint16(buf, uint16(int16(v)))
		}
	}

	return buf
}

// Duration returns the total play time of the chime
func (c Chime) Duration() time.Duration {
	var d time.Duration
	for _, n := range c {
		d += n.Duration
	}
	return d
}
