package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

func TestToneLength(t *testing.T) {
	tone := NewTone(beep.SampleRate(1000), 440, 0.5, 0.1)
	if tone.Len() != 500 {
		t.Fatalf("Len() = %d, expected 500", tone.Len())
	}

	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := tone.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != 500 {
		t.Errorf("streamed %d samples, expected 500", total)
	}
	if err := tone.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestToneEnvelopeDecays(t *testing.T) {
	tone := NewTone(beep.SampleRate(1000), 200, 1, 0.2)

	if g := tone.Gain(0); math.Abs(g-0.2) > 1e-9 {
		t.Errorf("Gain(0) = %f, expected 0.2", g)
	}
	if g := tone.Gain(1000); math.Abs(g-floor) > 1e-9 {
		t.Errorf("Gain(end) = %f, expected %f", g, floor)
	}
	if tone.Gain(250) <= tone.Gain(750) {
		t.Error("envelope should decay")
	}
}

func TestToneClampsInput(t *testing.T) {
	tests := []struct {
		name     string
		dur, vol float64
		wantLen  int
	}{
		{"negative duration", -1, 0.1, 0},
		{"volume above one", 0.01, 5, 10},
		{"zero volume", 0.01, 0, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tone := NewTone(beep.SampleRate(1000), 300, tc.dur, tc.vol)
			if tone.Len() != tc.wantLen {
				t.Errorf("Len() = %d, expected %d", tone.Len(), tc.wantLen)
			}
			if g := tone.Gain(0); g > 1 {
				t.Errorf("Gain(0) = %f exceeds 1", g)
			}
		})
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.PlayTone(800, 0.3, 0.15)
	r.PlayTone(1000, 0.3, 0.1)

	freqs := r.Freqs()
	if len(freqs) != 2 || freqs[0] != 800 || freqs[1] != 1000 {
		t.Errorf("Freqs() = %v", freqs)
	}
	Silent{}.PlayTone(1, 1, 1)
}
