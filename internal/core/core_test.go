package core

import "testing"

func TestTicksFor(t *testing.T) {
	tests := []struct {
		name string
		rate int
		ms   int
		want int
	}{
		{"one second at 60", 60, 1000, 60},
		{"rounds up", 60, 150, 9},
		{"zero delay", 60, 0, 0},
		{"negative delay clamps", 60, -50, 0},
		{"default rate", 0, 500, 30},
		{"30 fps", 30, 100, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := RuntimeConfig{TickRate: tc.rate}
			if got := cfg.TicksFor(tc.ms); got != tc.want {
				t.Errorf("TicksFor(%d) = %d, expected %d", tc.ms, got, tc.want)
			}
		})
	}
}

func TestSimpleRNGDeterministic(t *testing.T) {
	a := NewSimpleRNG(42)
	b := NewSimpleRNG(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestSimpleRNGRanges(t *testing.T) {
	r := NewSimpleRNG(7)
	for i := 0; i < 1000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f out of [0,1)", f)
		}
		if n := r.Intn(5); n < 0 || n >= 5 {
			t.Fatalf("Intn(5) = %d", n)
		}
		if v := r.Range(2, 3); v < 2 || v >= 3 {
			t.Fatalf("Range(2,3) = %f", v)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
	if NewSimpleRNG(0).State() != 1 {
		t.Error("zero seed should be remapped to 1")
	}
}

func TestKeyEvents(t *testing.T) {
	if ev := KeyPress(KeyLeft); ev.Kind != EventKeyDown || ev.Key != KeyLeft {
		t.Errorf("KeyPress() = %+v", ev)
	}
	if ev := KeyRelease(KeyLeft); ev.Kind != EventKeyUp || ev.Key != KeyLeft {
		t.Errorf("KeyRelease() = %+v", ev)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPounce)
	f.Push(KeyPress(KeyLeft))
	f.Push(Pointer(10, 20, 100, 200))

	if !f.Has(ActionPounce) || f.Has(ActionPause) {
		t.Error("Has() mismatch")
	}
	if len(f.Events) != 2 || f.Events[1].Kind != EventPointer {
		t.Errorf("Events = %+v", f.Events)
	}

	f.Clear()
	if f.Has(ActionPounce) || len(f.Events) != 0 {
		t.Error("Clear() should reset actions and events")
	}

	var zero InputFrame
	if zero.Has(ActionPounce) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionBack)
	if !zero.Has(ActionBack) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestNavigatorTransitions(t *testing.T) {
	tests := []struct {
		name   string
		from   ScreenID
		intent Intent
		want   ScreenID
		ok     bool
	}{
		{"main to play", ScreenMain, IntentOpenPlay, ScreenPlay, true},
		{"main to tutorial", ScreenMain, IntentOpenTutorial, ScreenTutorial, true},
		{"main to stats", ScreenMain, IntentOpenStats, ScreenStats, true},
		{"main to achievements", ScreenMain, IntentOpenAchievements, ScreenAchievements, true},
		{"main to settings", ScreenMain, IntentOpenSettings, ScreenSettings, true},
		{"play starts session", ScreenPlay, IntentStartSession, ScreenNone, true},
		{"tutorial practice", ScreenTutorial, IntentStartSession, ScreenNone, true},
		{"session ends", ScreenNone, IntentSessionEnded, ScreenGameOver, true},
		{"play again", ScreenGameOver, IntentPlayAgain, ScreenNone, true},
		{"game over back", ScreenGameOver, IntentBack, ScreenMain, true},
		{"stats back", ScreenStats, IntentBack, ScreenMain, true},
		{"invalid from main", ScreenMain, IntentSessionEnded, ScreenMain, false},
		{"invalid from stats", ScreenStats, IntentStartSession, ScreenStats, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Transition(tc.from, tc.intent)
			if got != tc.want || ok != tc.ok {
				t.Errorf("Transition(%v, %d) = (%v, %v), expected (%v, %v)", tc.from, tc.intent, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestNavigatorApply(t *testing.T) {
	n := NewNavigator()
	if n.Current() != ScreenMain {
		t.Fatalf("initial screen = %v", n.Current())
	}
	if _, ok := n.Apply(IntentPlayAgain); ok {
		t.Error("play again should be rejected on main")
	}
	n.Apply(IntentOpenPlay)
	n.Apply(IntentStartSession)
	if n.Current() != ScreenNone {
		t.Errorf("Current() = %v, expected none", n.Current())
	}
	if ScreenGameOver.String() != "gameOver" || ScreenID(99).String() != "unknown" {
		t.Error("String() mismatch")
	}
}
