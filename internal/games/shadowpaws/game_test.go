package shadowpaws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shadow-paws/internal/core"
	"github.com/vovakirdan/shadow-paws/internal/registry"
	"github.com/vovakirdan/shadow-paws/internal/storage"
)

func TestGoodThenBadCollision(t *testing.T) {
	h := newHarness(t, ModeEndless)
	require.Equal(t, 9, h.game.progress.Lives)
	require.Equal(t, 0, h.game.progress.Score)

	h.collect(KindFish)
	p := h.game.Progress()
	assert.Equal(t, 10, p.Score)
	assert.Equal(t, 1, p.Combo)
	assert.Equal(t, 1, p.ItemsCollected)

	h.collect(KindMirror)
	p = h.game.Progress()
	assert.Equal(t, 8, p.Lives)
	assert.Equal(t, 0, p.Combo)
	assert.Equal(t, 0, p.Streak)
	assert.Empty(t, h.game.ents.Items, "collided items are removed")
}

func TestLevelUpAfterTwelveGoodItems(t *testing.T) {
	h := newHarness(t, ModeEndless)

	for i := 1; i <= 12; i++ {
		h.collect(KindFish)
		if i < 12 {
			require.Equal(t, 1, h.game.progress.Level, "level after %d items", i)
		}
	}
	assert.Equal(t, 2, h.game.progress.Level)
	assert.InDelta(t, 1.1, h.game.progress.SpeedMultiplier, 1e-9)

	h.collect(KindFish)
	assert.Equal(t, 2, h.game.progress.Level, "level increments exactly once")
}

func TestFullMoonDoublesPoints(t *testing.T) {
	h := newHarness(t, ModeEndless)
	h.game.events.Start(EventFullMoon, 100)

	h.collect(KindStar)
	assert.Equal(t, 40, h.game.progress.Score)
}

func TestFriday13AddsHalf(t *testing.T) {
	h := newHarness(t, ModeEndless)
	h.game.events.Start(EventFriday13, 100)

	h.collect(KindStar)
	assert.Equal(t, 30, h.game.progress.Score)
}

func TestHighScoreKeepsBest(t *testing.T) {
	kv := storage.NewMemoryKV()
	h := newHarnessWith(t, ModeEndless, kv, testDay)
	_, ok := kv.Get(KeyHigh)
	require.False(t, ok)

	h.game.progress.Score = 500
	h.game.progress.Lives = 1
	res := h.collect(KindMirror)
	require.True(t, res.Ended)
	v, ok := kv.Get(KeyHigh)
	require.True(t, ok)
	assert.Equal(t, "500", v)
	assert.True(t, h.game.Summary().NewHighScore)

	h.game.Reset(core.RuntimeConfig{TickRate: 60, Seed: 7})
	h.game.progress.Score = 300
	h.game.progress.Lives = 1
	h.collect(KindMirror)
	v, _ = kv.Get(KeyHigh)
	assert.Equal(t, "500", v)
	assert.False(t, h.game.Summary().NewHighScore)
	assert.Equal(t, 500, h.game.State().HighScore)
}

func TestSessionEndsExactlyOnce(t *testing.T) {
	h := newHarness(t, ModeEndless)
	h.game.progress.Lives = 1

	res := h.collect(KindMirror)
	require.True(t, res.Ended)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, 0, h.game.progress.Lives)

	for i := 0; i < 5; i++ {
		res = h.collect(KindMirror)
		assert.False(t, res.Ended)
	}
	assert.Equal(t, 0, h.game.progress.Lives, "lives never go below zero")
	assert.Equal(t, 1, h.screens.count(core.ScreenGameOver))
	assert.Equal(t, 1, h.game.profile.TotalGames)

	games, _ := h.kv.Get(KeyTotalGames)
	assert.Equal(t, "1", games)
}

func TestPresenterScreens(t *testing.T) {
	h := newHarness(t, ModeEndless)
	require.Equal(t, []core.ScreenID{core.ScreenNone}, h.screens.ids)

	h.game.progress.Lives = 1
	h.collect(KindSalt)
	assert.Equal(t, []core.ScreenID{core.ScreenNone, core.ScreenGameOver}, h.screens.ids)
}

func TestLivesStayBounded(t *testing.T) {
	h := newHarness(t, ModeEndless)

	for i := 0; i < 40; i++ {
		h.game.progress.ItemsCollected = 11 + 12*i
		h.game.progress.Level = 2 + i
		h.collect(KindMoon)
		require.LessOrEqual(t, h.game.progress.Lives, 9)
	}
	for i := 0; i < 20; i++ {
		h.collect(KindLadder)
		require.GreaterOrEqual(t, h.game.progress.Lives, 0)
	}
}

func TestComboDecaysAfterWindow(t *testing.T) {
	h := newHarness(t, ModeEndless)
	h.collect(KindFish)
	require.Equal(t, 1, h.game.progress.Combo)

	for i := 0; i < 119; i++ {
		h.step()
	}
	assert.Equal(t, 1, h.game.progress.Combo)
	h.step()
	assert.Equal(t, 0, h.game.progress.Combo)
	assert.Equal(t, 1, h.game.progress.Streak, "streak ignores combo decay")
}

func TestPouncePassesThroughBadItems(t *testing.T) {
	h := newHarness(t, ModeEndless)
	in := core.NewInputFrame()
	in.Push(core.KeyPress(core.KeyOne))
	h.game.Step(in)
	require.True(t, h.game.powerups.Has(PowerPounce))

	h.collect(KindMirror)
	assert.Equal(t, 9, h.game.progress.Lives)
	assert.Equal(t, 5, h.game.progress.Score)
}

func TestCloverGrantsInvincibility(t *testing.T) {
	h := newHarness(t, ModeEndless)

	h.collect(KindClover)
	p := h.game.Progress()
	assert.Equal(t, 50, p.Score)
	assert.Equal(t, 6, p.Combo)
	assert.Equal(t, 6, p.MaxCombo)
	assert.Equal(t, 300, p.Invincible)

	h.collect(KindSalt)
	assert.Equal(t, 9, h.game.progress.Lives)
	assert.Equal(t, 55, h.game.progress.Score)
}

func TestNineLivesHotkeyRespectsCooldown(t *testing.T) {
	h := newHarness(t, ModeEndless)
	h.game.progress.Lives = 5

	in := core.NewInputFrame()
	in.Set(core.ActionLives)
	in.Push(core.KeyPress(core.KeyThree))
	h.game.Step(in)
	assert.Equal(t, 6, h.game.progress.Lives, "one activation per frame")

	in = core.NewInputFrame()
	in.Set(core.ActionLives)
	h.game.Step(in)
	assert.Equal(t, 6, h.game.progress.Lives)
	assert.Positive(t, h.game.powerups.Cooldown(PowerNineLives))
}

func TestPowerUpItemActivates(t *testing.T) {
	h := newHarness(t, ModeEndless)
	h.collect(KindEye)
	assert.True(t, h.game.powerups.Has(PowerNightVision))
	assert.Equal(t, 15, h.game.progress.Score)
	assert.Contains(t, h.tones.Freqs(), 400.0)
}

func TestKeyboardMovement(t *testing.T) {
	h := newHarness(t, ModeEndless)
	startX := h.game.sprite.Pos.X

	in := core.NewInputFrame()
	in.Push(core.KeyPress(core.KeyLeft))
	h.game.Step(in)
	for i := 0; i < 5; i++ {
		h.step()
	}
	assert.Less(t, h.game.sprite.Pos.X, startX)

	in = core.NewInputFrame()
	in.Push(core.KeyRelease(core.KeyLeft))
	h.game.Step(in)
	for i := 0; i < 200; i++ {
		h.step()
	}
	assert.GreaterOrEqual(t, h.game.sprite.Pos.X, h.game.sprite.Size)
}

func TestPointerMovementClamps(t *testing.T) {
	h := newHarness(t, ModeEndless)

	in := core.NewInputFrame()
	in.Push(core.Pointer(-50, 12, 80, 24))
	h.game.Step(in)
	for i := 0; i < 60; i++ {
		h.step()
	}
	s := h.game.sprite
	assert.InDelta(t, s.Size, s.Pos.X, 0.5)
	assert.InDelta(t, 300, s.Target.Y, 1e-9)
	assert.InDelta(t, s.Size, s.Target.X, 1e-9)
}

func TestAchievementPersistedOnUnlock(t *testing.T) {
	h := newHarness(t, ModeEndless)
	h.collect(KindFish)

	raw, ok := h.kv.Get(KeyAchievements)
	require.True(t, ok)
	assert.Contains(t, raw, string(AchFirstSteps))

	notices := h.game.DrainNotices()
	require.Len(t, notices, 1)
	assert.Contains(t, notices[0], "First Steps")
	assert.Empty(t, h.game.DrainNotices())
	assert.Contains(t, h.tones.Freqs(), 800.0)

	for i := 0; i < 10; i++ {
		h.step()
	}
	assert.Contains(t, h.tones.Freqs(), 1000.0, "second chime plays after a delay")
}

func TestMutedProfilePlaysNothing(t *testing.T) {
	kv := storage.NewMemoryKV()
	kv.Set(KeyAudio, "false")
	h := newHarnessWith(t, ModeEndless, kv, testDay)

	h.collect(KindFish)
	h.collect(KindMirror)
	assert.Empty(t, h.tones.Tones)
}

func TestDeferredActionsAfterSessionEnd(t *testing.T) {
	h := newHarness(t, ModeEndless)
	h.game.progress.Lives = 1
	h.collect(KindMirror)
	require.False(t, h.game.Active())
	require.Positive(t, h.game.Pending())
	require.Equal(t, EmotionScared, h.game.sprite.Emotion)
	shake := h.game.shake
	require.NotZero(t, shake)

	for i := 0; i < 200 && h.game.Pending() > 0; i++ {
		h.step()
	}
	assert.Zero(t, h.game.Pending())
	assert.Equal(t, EmotionScared, h.game.sprite.Emotion, "inactive session is not mutated")
	assert.Equal(t, shake, h.game.shake, "screen shake is frozen after the session ends")
}

func TestScreenShakeSequence(t *testing.T) {
	h := newHarness(t, ModeEndless)
	h.collect(KindMirror)
	require.True(t, h.game.Active())
	intensity := h.game.shake
	require.Positive(t, intensity)

	for i := 0; i < 200 && h.game.shake > 0; i++ {
		h.step()
	}
	assert.Equal(t, -intensity, h.game.shake)

	for i := 0; i < 200 && h.game.shake != 0; i++ {
		h.step()
	}
	assert.Zero(t, h.game.shake)
}

func TestRestartAfterGameOver(t *testing.T) {
	h := newHarness(t, ModeEndless)
	h.game.progress.Lives = 1
	h.collect(KindMirror)
	require.True(t, h.game.State().GameOver)

	seed := h.game.runtime.Seed

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	h.game.Step(in)
	assert.True(t, h.game.Active())
	assert.Equal(t, 9, h.game.progress.Lives)
	assert.Zero(t, h.game.progress.Score)
	assert.NotEqual(t, seed, h.game.runtime.Seed, "a restart plays a new item sequence")
}

func TestPauseFreezesSimulation(t *testing.T) {
	h := newHarness(t, ModeEndless)
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	h.game.Step(in)
	require.True(t, h.game.State().Paused)

	tick := h.game.tick
	h.collect(KindFish)
	assert.Equal(t, tick, h.game.tick)
	assert.Zero(t, h.game.progress.Score)

	h.game.Step(in)
	assert.False(t, h.game.State().Paused)
	assert.Equal(t, 10, h.game.progress.Score)
}

func TestSpawnCadence(t *testing.T) {
	h := newHarness(t, ModeEndless)
	rate := h.game.spawnRate()
	require.Equal(t, 23, rate)

	for i := 0; i < rate-1; i++ {
		h.step()
	}
	assert.Empty(t, h.game.ents.Items)
	h.step()
	require.Len(t, h.game.ents.Items, 1)
	assert.InDelta(t, -30, h.game.ents.Items[0].Pos.Y, 1e-9)

	h.game.progress.Level = 50
	assert.Equal(t, 6, h.game.spawnRate())
}

func TestBonusStarsOncePerMilestone(t *testing.T) {
	h := newHarness(t, ModeEndless)
	h.game.progress.Combo = 9
	h.game.progress.ComboTimer = 120

	h.collect(KindFish)
	require.Equal(t, 10, h.game.progress.Combo)
	pending := h.game.Pending()
	assert.GreaterOrEqual(t, pending, 3)

	h.step()
	assert.LessOrEqual(t, h.game.Pending(), pending, "milestone is not requeued")

	for i := 0; i < 30; i++ {
		h.step()
	}
	stars := 0
	for _, it := range h.game.ents.Items {
		if it.Kind == KindStar && it.WobbleSpeed == 0.1 {
			stars++
		}
	}
	assert.Equal(t, 3, stars)
}

func TestModeStartingValues(t *testing.T) {
	assert.Equal(t, 3, newHarness(t, ModeChallenge).game.progress.Lives)
	assert.Equal(t, 9, newHarness(t, ModeStory).game.progress.Lives)

	tut := newHarness(t, ModeTutorial).game
	assert.Equal(t, 9, tut.progress.Lives)
	assert.InDelta(t, 0.5, tut.progress.SpeedMultiplier, 1e-9)
}

func TestStoryChapterAdvance(t *testing.T) {
	h := newHarness(t, ModeStory)
	assert.Contains(t, h.game.Status(), "Midnight Walk")

	h.game.progress.Level = 3
	h.game.progress.ItemsCollected = 35
	h.collect(KindFish)

	assert.Equal(t, 4, h.game.progress.Level)
	assert.Equal(t, 1, h.game.Chapter())
	assert.Equal(t, 210, h.game.progress.Score)
	assert.True(t, h.game.events.Friday13)
	assert.Equal(t, 1800, h.game.events.Friday13Timer)
	assert.Contains(t, h.game.Status(), "Chapter Complete! Next: Friday 13th")
}

func TestChallengeRewardGrantedOnce(t *testing.T) {
	day := testDay.AddDate(0, 0, 2) // March 3rd: Item Collector
	h := newHarnessWith(t, ModeChallenge, storage.NewMemoryKV(), day)
	require.Equal(t, "Item Collector", h.game.Challenge().Challenge.Name)

	h.game.progress.ItemsCollected = 59
	h.collect(KindFish)
	assert.Equal(t, 360, h.game.progress.Score)
	assert.Equal(t, ChallengeComplete, h.game.Challenge().State)

	h.game.progress.ItemsCollected = 71
	h.collect(KindFish)
	assert.Equal(t, 370, h.game.progress.Score)
}

func TestSpeedRunChallengeCompletesOnTimer(t *testing.T) {
	day := testDay.AddDate(0, 0, 1) // March 2nd: Speed Run
	h := newHarnessWith(t, ModeChallenge, storage.NewMemoryKV(), day)
	require.Equal(t, "Speed Run", h.game.Challenge().Challenge.Name)

	// Keep the cat out of the way of falling items.
	h.game.ents.Items = nil
	for i := 0; i < 60*60+1; i++ {
		h.game.ents.Items = h.game.ents.Items[:0]
		h.step()
	}
	assert.Equal(t, ChallengeComplete, h.game.Challenge().State)
	assert.Equal(t, 400, h.game.progress.Score)
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		h := newHarness(t, ModeEndless)
		h.game.cfg.Events.TriggerChance = 0.01
		for i := 0; i < 900; i++ {
			in := core.NewInputFrame()
			switch i % 120 {
			case 0:
				in.Push(core.KeyPress(core.KeyLeft))
			case 40:
				in.Push(core.KeyRelease(core.KeyLeft))
				in.Push(core.KeyPress(core.KeyRight))
			case 80:
				in.Push(core.KeyRelease(core.KeyRight))
			}
			h.game.Step(in)
		}
		return h.game.Snapshot()
	}

	a, b := run(), run()
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Lives, b.Lives)
}

func TestRenderDrawsLayers(t *testing.T) {
	h := newHarness(t, ModeEndless)
	h.game.ents.Items = append(h.game.ents.Items, Item{Kind: KindMoon, Pos: core.Vec{X: 50, Y: 50}})
	h.game.ents.Burst(h.game.rng, core.Vec{X: 100, Y: 100}, core.ColorRed, 4)

	rs := core.NewRecordingSurface()
	h.game.Render(rs)
	assert.Equal(t, 1, rs.Count(core.OpFade))
	assert.GreaterOrEqual(t, rs.Count(core.OpGlyph), 1)
	assert.GreaterOrEqual(t, rs.Count(core.OpFillCircle), 4)
}

func TestRegisteredModes(t *testing.T) {
	for _, id := range []string{"endless", "story", "challenge", "tutorial"} {
		g, err := registry.Create(id, registry.Env{})
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}
