package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker mixes tones into the system audio device.
type Speaker struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	disabled bool
}

var (
	initOnce sync.Once
	initErr  error
	shared   *Speaker
)

// OpenSpeaker initializes the audio device once per process.
// A failed initialization is remembered, so later calls fail fast and the
// caller can fall back to Silent for the rest of the run.
func OpenSpeaker() (*Speaker, error) {
	initOnce.Do(func() {
		s := &Speaker{mixer: &beep.Mixer{}}
		if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
			initErr = fmt.Errorf("audio: cannot initialize speaker: %w", err)
			return
		}
		speaker.Play(s.mixer)
		shared = s
	})
	if initErr != nil {
		return nil, initErr
	}
	return shared, nil
}

// PlayTone queues a tone. It never blocks on playback.
func (s *Speaker) PlayTone(freq, dur, vol float64) {
	s.mu.Lock()
	disabled := s.disabled
	s.mu.Unlock()
	if disabled || dur <= 0 || vol <= 0 {
		return
	}
	t := NewTone(sampleRate, freq, dur, vol)
	speaker.Lock()
	s.mixer.Add(beep.Take(t.Len(), t))
	speaker.Unlock()
}

// SetEnabled mutes or unmutes the speaker.
func (s *Speaker) SetEnabled(on bool) {
	s.mu.Lock()
	s.disabled = !on
	s.mu.Unlock()
	if !on {
		speaker.Lock()
		s.mixer.Clear()
		speaker.Unlock()
	}
}

// Silent discards every tone.
type Silent struct{}

// PlayTone does nothing.
func (Silent) PlayTone(float64, float64, float64) {}

// Recorder remembers played tones. Used by tests.
type Recorder struct {
	mu    sync.Mutex
	Tones []Played
}

// Played is one recorded tone.
type Played struct {
	Freq, Dur, Vol float64
}

// PlayTone records the tone.
func (r *Recorder) PlayTone(freq, dur, vol float64) {
	r.mu.Lock()
	r.Tones = append(r.Tones, Played{freq, dur, vol})
	r.mu.Unlock()
}

// Freqs returns the recorded frequencies in order.
func (r *Recorder) Freqs() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, len(r.Tones))
	for i, t := range r.Tones {
		out[i] = t.Freq
	}
	return out
}
