package core

// KV is the persistent string store used for profile data.
// Implementations swallow their own I/O failures: a failed read is
// reported as absent and a failed write is dropped.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// ToneSink plays short synthesized tones. Calls never block on playback.
type ToneSink interface {
	// PlayTone plays a sine tone at freq Hz for dur seconds at volume [0, 1].
	PlayTone(freq, dur, vol float64)
}

// Presenter switches the logically active screen of the host.
type Presenter interface {
	SetActiveScreen(id ScreenID)
}

// NopTones is a ToneSink that discards every tone.
type NopTones struct{}

// PlayTone does nothing.
func (NopTones) PlayTone(float64, float64, float64) {}

// NopPresenter ignores screen changes.
type NopPresenter struct{}

// SetActiveScreen does nothing.
func (NopPresenter) SetActiveScreen(ScreenID) {}
