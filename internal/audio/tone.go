// Package audio plays the game's synthesized tones through the system
// speaker.
package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// floor is the gain a tone decays to by its end.
const floor = 0.01

// Tone is a sine oscillator with an exponential decay envelope.
type Tone struct {
	freq   float64
	vol    float64
	rate   beep.SampleRate
	pos    int
	length int
}

// NewTone creates a tone of dur seconds. Out-of-range arguments are clamped.
func NewTone(rate beep.SampleRate, freq, dur, vol float64) *Tone {
	if freq < 0 {
		freq = 0
	}
	if dur < 0 {
		dur = 0
	}
	vol = math.Max(0, math.Min(1, vol))
	return &Tone{
		freq:   freq,
		vol:    vol,
		rate:   rate,
		length: int(dur * float64(rate)),
	}
}

// Len returns the tone length in samples.
func (t *Tone) Len() int {
	return t.length
}

// Gain returns the envelope value at sample i.
func (t *Tone) Gain(i int) float64 {
	if t.length == 0 || t.vol == 0 {
		return 0
	}
	p := float64(i) / float64(t.length)
	// Ramp from vol to floor exponentially over the tone.
	return t.vol * math.Pow(floor/t.vol, p)
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			return i, true
		}
		sec := float64(t.pos) / float64(t.rate)
		v := math.Sin(2*math.Pi*t.freq*sec) * t.Gain(t.pos)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error {
	return nil
}
