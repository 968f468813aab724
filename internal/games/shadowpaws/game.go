package shadowpaws

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shadow-paws/internal/config"
	"github.com/vovakirdan/shadow-paws/internal/core"
	"github.com/vovakirdan/shadow-paws/internal/registry"
)

const bannerTicks = 180

// Game is one Shadow Paws session aggregate. It owns every piece of
// session state and is driven by the host through Step.
type Game struct {
	mode    Mode
	env     registry.Env
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	log     *log.Logger

	rng      *core.SimpleRNG
	profile  *Profile
	sprite   Sprite
	ents     Entities
	progress Progress
	powerups *PowerUps
	events   Events
	sched    Scheduler

	chapter     int
	challenge   *ChallengeTracker
	lastBadTick int

	held        map[string]bool
	pointerMode bool

	tick           int // frame counter since session start
	active         bool
	paused         bool
	ended          bool
	newHigh        bool
	shake          float64
	lastBonusCombo int
	banner         string
	bannerLeft     int

	notices  []string
	unlocked []AchievementKey
}

// New creates a game in mode m. The session starts on Reset.
func New(m Mode, env registry.Env) *Game {
	env = env.WithDefaults()
	return &Game{
		mode:     m,
		env:      env,
		cfg:      env.Config,
		log:      env.Logger,
		powerups: NewPowerUps(env.Config.PowerUps),
		held:     make(map[string]bool),
		profile:  LoadProfile(env.Store),
	}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode.Spec().ID
}

// Title returns the mode's display name.
func (g *Game) Title() string {
	return g.mode.Spec().Title
}

// Mode returns the game variant.
func (g *Game) Mode() Mode {
	return g.mode
}

// Profile returns the lifetime profile the session writes to.
func (g *Game) Profile() *Profile {
	return g.profile
}

// Reset starts a new session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	if rc.Seed == 0 {
		rc.Seed = g.env.Now().UnixNano()
	}
	g.runtime = rc
	g.rng = core.NewSimpleRNG(rc.Seed)
	g.profile = LoadProfile(g.env.Store)

	g.progress = NewProgress(g.cfg.Scoring, g.mode.startLives(g.cfg), g.mode.speedScale(g.cfg))
	g.powerups.Reset()
	g.events = Events{}
	g.sched.Clear()
	g.ents.Clear()
	if len(g.ents.Stars) == 0 {
		g.ents.SeedStars(g.rng, g.cfg.World.Stars, g.cfg.World.Width, g.cfg.World.Height)
	}

	start := core.Vec{X: g.cfg.Sprite.StartX, Y: g.cfg.Sprite.StartY}
	g.sprite = Sprite{
		Pos:    start,
		Target: start,
		Size:   g.cfg.Sprite.Size,
		Speed:  g.cfg.Sprite.Speed,
	}

	clear(g.held)
	g.pointerMode = false
	g.tick = 0
	g.lastBadTick = 0
	g.active = true
	g.paused = false
	g.ended = false
	g.newHigh = false
	g.shake = 0
	g.lastBonusCombo = 0
	g.banner = ""
	g.bannerLeft = 0
	g.notices = nil
	g.unlocked = nil

	g.chapter = 0
	g.challenge = nil
	switch g.mode {
	case ModeStory:
		g.applyTheme()
	case ModeChallenge:
		g.challenge = NewChallengeTracker(ChallengeFor(g.env.Now()))
		if g.challenge.timed() {
			g.scheduleChallengeCheck(g.challenge.Challenge.Target * rc.TickRate)
		}
	}

	g.env.Presenter.SetActiveScreen(core.ScreenNone)
	g.log.Info("session started", "mode", g.ID(), "seed", rc.Seed, "lives", g.progress.Lives)
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.active {
		if g.ended && in.Has(core.ActionRestart) {
			// Continue the RNG stream so the new session plays a new sequence
			rc := g.runtime
			rc.Seed = int64(g.rng.Next() >> 1)
			g.Reset(rc)
			return core.StepResult{State: g.State()}
		}
		g.drain()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.sched.RunDue(g.tick)
	g.handleInput(in)

	g.updateEvents()
	g.powerups.Update()
	g.updateBackground()
	g.updateSprite()
	g.progress.Tick()
	ended := g.updateItems()
	g.ents.UpdateParticles()

	g.tick++
	if g.active {
		g.spawnCadence()
		g.bonusStars()
	}
	g.updateFace()
	if g.bannerLeft > 0 {
		g.bannerLeft--
	}

	return core.StepResult{State: g.State(), Ended: ended}
}

// drain keeps the deferred queue moving after the session has ended so
// that queued tones still play. State-changing actions check g.active.
func (g *Game) drain() {
	if g.sched.Len() == 0 {
		return
	}
	g.sched.RunDue(g.tick)
	g.tick++
}

// Pending returns the number of queued deferred actions.
func (g *Game) Pending() int {
	return g.sched.Len()
}

func (g *Game) handleInput(in core.InputFrame) {
	var want [PowerNineLives + 1]bool

	for _, ev := range in.Events {
		switch ev.Kind {
		case core.EventKeyDown:
			g.held[ev.Key] = true
			if isDirectionKey(ev.Key) {
				g.pointerMode = false
			}
			if p, ok := powerUpHotkeys[ev.Key]; ok {
				want[p] = true
			}
		case core.EventKeyUp:
			delete(g.held, ev.Key)
		case core.EventPointer:
			g.pointerMode = true
			g.sprite.Target = g.mapPointer(ev)
		}
	}

	if in.Has(core.ActionPounce) {
		want[PowerPounce] = true
	}
	if in.Has(core.ActionVision) {
		want[PowerNightVision] = true
	}
	if in.Has(core.ActionLives) {
		want[PowerNineLives] = true
	}
	for _, p := range PowerUpKinds {
		if want[p] {
			g.activatePowerUp(p)
		}
	}
}

var powerUpHotkeys = map[string]PowerUpKind{
	core.KeyOne:   PowerPounce,
	core.KeyQ:     PowerPounce,
	core.KeyTwo:   PowerNightVision,
	core.KeyE:     PowerNightVision,
	core.KeyThree: PowerNineLives,
	core.KeyR:     PowerNineLives,
}

func isDirectionKey(k string) bool {
	switch k {
	case core.KeyLeft, core.KeyRight, core.KeyUp, core.KeyDown,
		core.KeyA, core.KeyD, core.KeyW, core.KeyS:
		return true
	}
	return false
}

// mapPointer converts source coordinates into world coordinates.
func (g *Game) mapPointer(ev core.InputEvent) core.Vec {
	p := core.Vec{X: ev.X, Y: ev.Y}
	if ev.ViewW > 0 {
		p.X = ev.X * g.cfg.World.Width / ev.ViewW
	}
	if ev.ViewH > 0 {
		p.Y = ev.Y * g.cfg.World.Height / ev.ViewH
	}
	return p
}

func (g *Game) heldAny(keys ...string) bool {
	for _, k := range keys {
		if g.held[k] {
			return true
		}
	}
	return false
}

// activatePowerUp starts kind unless it is cooling down.
func (g *Game) activatePowerUp(kind PowerUpKind) {
	if !g.powerups.Activate(kind) {
		return
	}
	if kind == PowerNineLives && g.progress.AddLife() {
		g.ents.Burst(g.rng, g.sprite.Pos, core.ColorPink, 15)
	}
	g.tone(powerUpCatalog[kind].tone, 0.2, 0.1)
	g.log.Debug("power-up activated", "kind", kind)
}

func (g *Game) updateEvents() {
	switch g.events.Update(g.cfg.Events, g.rng) {
	case EventFriday13:
		g.ents.Ring(g.rng, g.sprite.Pos)
		g.tone(100, 1, 0.15)
		g.log.Debug("special event", "event", EventFriday13)
	case EventFullMoon:
		g.ents.Ring(g.rng, g.sprite.Pos)
		g.tone(300, 1, 0.1)
		g.log.Debug("special event", "event", EventFullMoon)
	}
}

func (g *Game) updateBackground() {
	g.ents.UpdateSparkles()
	g.ents.UpdateFlashes()
	g.ents.UpdatePawPrints()
	g.ents.UpdateStars(g.rng, g.progress.SpeedMultiplier, g.cfg.World.Width, g.cfg.World.Height)
}

func (g *Game) updateSprite() {
	sc := g.cfg.Sprite
	s := &g.sprite

	moveSpeed := s.Speed * (1 + float64(g.progress.Level)*0.1)
	if g.powerups.Has(PowerPounce) {
		moveSpeed *= sc.DashScale
		s.Emotion = EmotionFocused
	}

	if !g.pointerMode {
		push := moveSpeed * sc.MinPush
		if g.heldAny(core.KeyLeft, core.KeyA) {
			s.Target.X -= moveSpeed
			s.Vel.X = math.Min(s.Vel.X-1, -push)
		}
		if g.heldAny(core.KeyRight, core.KeyD) {
			s.Target.X += moveSpeed
			s.Vel.X = math.Max(s.Vel.X+1, push)
		}
		if g.heldAny(core.KeyUp, core.KeyW) {
			s.Target.Y -= moveSpeed
			s.Vel.Y = math.Min(s.Vel.Y-1, -push)
		}
		if g.heldAny(core.KeyDown, core.KeyS) {
			s.Target.Y += moveSpeed
			s.Vel.Y = math.Max(s.Vel.Y+1, push)
		}
	}

	old := s.Pos
	if g.pointerMode {
		s.Vel = s.Target.Sub(s.Pos).Scale(sc.Follow)
		s.Pos = s.Pos.Add(s.Vel)
	} else {
		s.Pos = s.Pos.Add(s.Vel.Scale(0.8))
		s.Vel = s.Vel.Scale(sc.Friction)
	}

	if core.Dist(old, s.Pos) > 2 && g.rng.Chance(sc.PawPrintChance) {
		g.ents.PawPrints = append(g.ents.PawPrints, PawPrint{Pos: old, Life: pawPrintLife, Size: 12})
	}

	w, h := g.cfg.World.Width, g.cfg.World.Height
	s.Pos.X = core.ClampF(s.Pos.X, s.Size, w-s.Size)
	s.Pos.Y = core.ClampF(s.Pos.Y, s.Size, h-s.Size)
	s.Target.X = core.ClampF(s.Target.X, s.Size, w-s.Size)
	s.Target.Y = core.ClampF(s.Target.Y, s.Size, h-s.Size)
}

// updateItems moves items and resolves collisions. An item is removed in
// the same pass it collides, so it is scored at most once.
// Returns true if a collision ended the session.
func (g *Game) updateItems() bool {
	ended := false
	limit := g.cfg.World.Height + 30

	live := g.ents.Items[:0]
	for _, it := range g.ents.Items {
		it.Pos.Y += it.Speed * g.progress.SpeedMultiplier
		it.Rotation += 0.08
		it.Wobble += it.WobbleSpeed
		it.Pos.X += math.Sin(it.Wobble) * 0.5

		if g.active && core.Dist(g.sprite.Pos, it.Pos) < (g.sprite.Size+it.Spec().Size)/2 {
			if g.collide(it) {
				ended = true
			}
			continue
		}
		if it.Pos.Y > limit {
			continue
		}
		live = append(live, it)
	}
	g.ents.Items = live
	return ended
}

// collide applies one collision. Returns true if it ended the session.
func (g *Game) collide(it Item) bool {
	spec := it.Spec()
	if spec.Good {
		g.collectGood(it, spec)
		return false
	}
	return g.hitBad(it)
}

func (g *Game) collectGood(it Item, spec ItemSpec) {
	p := &g.progress
	out := p.ApplyGood(g.cfg.Scoring, spec, g.events.Modifiers())

	color := core.ColorGreen
	if p.Combo > 5 {
		color = core.ColorYellow
	}
	g.ents.Burst(g.rng, it.Pos, color, min(p.Combo, 5))

	switch {
	case p.Combo > 15:
		g.tone(880, 0.15, 0.08)
		g.ents.SparkleN(g.rng, it.Pos, 8)
	case p.Combo > 5:
		g.ents.SparkleN(g.rng, it.Pos, 3)
	}

	if spec.PowerUp != PowerNone {
		g.activatePowerUp(spec.PowerUp)
		g.ents.SparkleN(g.rng, it.Pos, 10)
		g.ents.Lightning(g.rng)
	}

	switch {
	case p.Combo > 10:
		g.purr()
		g.sprite.Emotion = EmotionHappy
	case p.Combo > 5:
		g.sprite.Emotion = EmotionHappy
	default:
		g.sprite.Emotion = EmotionNeutral
	}

	g.profile.AddItem()
	g.profile.ObserveStreak(p.Streak)

	if out.LevelUp {
		g.onLevelUp(out)
	}
	g.checkAchievements()

	if spec.Special {
		p.ApplySpecial(g.cfg.Scoring)
	}
}

func (g *Game) onLevelUp(out GoodOutcome) {
	g.ents.Ring(g.rng, g.sprite.Pos)
	g.log.Debug("level up", "level", g.progress.Level, "speed", g.progress.SpeedMultiplier)

	if g.mode == ModeStory {
		g.checkChapter()
	}
	if g.challenge != nil {
		g.validateChallenge()
	}
	if out.ExtraLife {
		g.ents.Burst(g.rng, g.sprite.Pos, core.ColorPink, 20)
	}
}

func (g *Game) hitBad(it Item) bool {
	pounce := g.powerups.Has(PowerPounce)
	out := g.progress.ApplyBad(g.cfg.Scoring, pounce)
	if out.Guarded {
		color := core.ColorPurple
		if pounce {
			color = core.ColorCoral
		}
		g.ents.Burst(g.rng, it.Pos, color, 8)
		return false
	}

	g.lastBadTick = g.tick
	g.sprite.Emotion = EmotionScared
	g.sched.After(g.runtime.TicksFor(2000), func() {
		if g.active {
			g.sprite.Emotion = EmotionNeutral
		}
	})

	intensity := math.Min(5+float64(g.progress.Level), 15)
	g.shake = intensity
	g.sched.After(g.runtime.TicksFor(50), func() {
		if g.active {
			g.shake = -intensity
		}
	})
	g.sched.After(g.runtime.TicksFor(100), func() {
		if g.active {
			g.shake = 0
		}
	})

	g.ents.Burst(g.rng, it.Pos, core.ColorRed, 20)
	g.tone(150, 0.5, 0.2)

	if out.Ended {
		g.endSession()
		return true
	}
	return false
}

// endSession folds the session into the profile. It runs at most once
// per session.
func (g *Game) endSession() {
	if !g.active {
		return
	}
	g.active = false
	g.ended = true

	g.newHigh = g.profile.RecordSession(g.progress.Score, g.progress.MaxCombo, g.seconds())
	g.checkAchievements()

	g.env.Presenter.SetActiveScreen(core.ScreenGameOver)
	g.log.Info("session ended",
		"mode", g.ID(),
		"score", g.progress.Score,
		"level", g.progress.Level,
		"max_combo", g.progress.MaxCombo,
		"new_high", g.newHigh)
}

func (g *Game) seconds() int {
	return g.tick / g.runtime.TickRate
}

func (g *Game) achievementStats() AchievementStats {
	return AchievementStats{
		ItemsCollected: g.progress.ItemsCollected,
		MaxCombo:       g.progress.MaxCombo,
		Level:          g.progress.Level,
		Lives:          g.progress.Lives,
		TotalItems:     g.profile.TotalItems,
		TotalGames:     g.profile.TotalGames,
		LongestStreak:  g.profile.LongestStreak,
		PerfectLevels:  g.progress.PerfectLevels,
	}
}

// checkAchievements unlocks and announces every newly earned achievement.
func (g *Game) checkAchievements() {
	for _, k := range Evaluate(g.achievementStats(), g.profile.Achievements) {
		if !g.profile.Unlock(k) {
			continue
		}
		a, _ := AchievementByKey(k)
		g.unlocked = append(g.unlocked, k)
		g.notices = append(g.notices, fmt.Sprintf("%s Achievement unlocked: %s", a.Icon, a.Name))

		g.ents.SparkleN(g.rng, core.Vec{X: g.cfg.World.Width - 100, Y: 50}, 20)
		g.ents.Lightning(g.rng)
		g.tone(800, 0.3, 0.15)
		g.sched.After(g.runtime.TicksFor(150), func() { g.tone(1000, 0.3, 0.1) })

		g.log.Info("achievement unlocked", "key", k, "name", a.Name)
	}
}

func (g *Game) applyTheme() {
	ch := ChapterAt(g.chapter)
	if ch.Event != EventNone {
		g.events.Start(ch.Event, g.cfg.Modes.ThemeEventTicks)
	}
}

func (g *Game) checkChapter() {
	if g.progress.Level <= g.cfg.Modes.ChapterLevels*(g.chapter+1) {
		return
	}
	g.chapter++
	g.applyTheme()
	g.progress.Score += g.cfg.Modes.ChapterBonus

	next := ChapterAt(g.chapter).Theme
	g.showBanner("Chapter Complete! Next: " + next)
	g.log.Debug("chapter advanced", "chapter", g.chapter, "theme", next)
}

func (g *Game) challengeProgress() ChallengeProgress {
	return ChallengeProgress{
		Level:       g.progress.Level,
		LivesLost:   g.progress.LivesLost,
		MaxCombo:    g.progress.MaxCombo,
		Items:       g.progress.ItemsCollected,
		Elapsed:     g.tick,
		SinceBadHit: g.tick - g.lastBadTick,
		TickRate:    g.runtime.TickRate,
	}
}

func (g *Game) validateChallenge() {
	reward := g.challenge.Validate(g.challengeProgress())
	if reward == 0 {
		return
	}
	g.progress.Score += reward
	g.notices = append(g.notices, g.challenge.Status())
	g.ents.SparkleN(g.rng, g.sprite.Pos, 10)
	g.log.Info("challenge complete", "challenge", g.challenge.Challenge.Name, "reward", reward)
}

// scheduleChallengeCheck validates a timed rule after ticks. A bad hit
// before the deadline pushes the check to the new deadline.
func (g *Game) scheduleChallengeCheck(ticks int) {
	g.sched.After(ticks, func() {
		if !g.active || g.challenge == nil {
			return
		}
		g.validateChallenge()
		if g.challenge.State != ChallengePending {
			return
		}
		need := g.challenge.Challenge.Target * g.runtime.TickRate
		left := need - (g.tick - g.lastBadTick)
		g.scheduleChallengeCheck(max(left, 1))
	})
}

func (g *Game) showBanner(s string) {
	g.banner = s
	g.bannerLeft = bannerTicks
}

// purr plays three low tones 100 ms apart.
func (g *Game) purr() {
	for i := 0; i < 3; i++ {
		freq := 50 + g.rng.Float64()*20
		if i == 0 {
			g.tone(freq, 0.3, 0.05)
			continue
		}
		g.sched.After(g.runtime.TicksFor(i*100), func() { g.tone(freq, 0.3, 0.05) })
	}
}

func (g *Game) tone(freq, dur, vol float64) {
	if g.profile.Audio {
		g.env.Tones.PlayTone(freq, dur, vol)
	}
}

func (g *Game) bonusStars() {
	combo := g.progress.Combo
	if combo < g.lastBonusCombo {
		g.lastBonusCombo = 0
	}
	if combo == 0 || combo%g.cfg.Scoring.BonusMilestone != 0 || combo == g.lastBonusCombo {
		return
	}
	g.lastBonusCombo = combo

	for i := 0; i < 3; i++ {
		i := i // per-iteration copy for the deferred closure (go 1.21 loop semantics)
		g.sched.After(g.runtime.TicksFor(i*150), func() {
			if !g.active {
				return
			}
			g.ents.Items = append(g.ents.Items, g.bonusStar(i))
		})
	}
}

func (g *Game) updateFace() {
	s := &g.sprite
	if s.Blink > 0 {
		s.Blink--
	}
	if g.rng.Chance(0.002) {
		s.Blink = 6
	}
}

// State returns the HUD-facing state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.progress.Score,
		HighScore: g.profile.HighScore,
		Lives:     g.progress.Lives,
		Level:     g.progress.Level,
		Combo:     g.progress.Combo,
		MaxCombo:  g.progress.MaxCombo,
		Status:    g.Status(),
		GameOver:  g.ended,
		Paused:    g.paused,
	}
}

// Status returns the mode, event and power-up status line.
func (g *Game) Status() string {
	var parts []string

	switch {
	case g.bannerLeft > 0:
		parts = append(parts, g.banner)
	case g.mode == ModeStory:
		parts = append(parts, "Story: "+ChapterAt(g.chapter).Theme)
	case g.mode == ModeChallenge && g.challenge != nil:
		parts = append(parts, g.challenge.Status())
	case g.mode == ModeTutorial:
		parts = append(parts, "Tutorial")
	}

	if g.events.Friday13 {
		parts = append(parts, "Friday 13th Mode!")
	}
	if g.events.FullMoon {
		parts = append(parts, "Full Moon!")
	}
	if active := g.powerups.Active(); len(active) > 0 {
		glyphs := make([]string, 0, len(active))
		for _, a := range active {
			glyphs = append(glyphs, string(a.Kind.Glyph()))
		}
		parts = append(parts, strings.Join(glyphs, " "))
	}
	return strings.Join(parts, "  ")
}

// DrainNotices returns and clears pending toast messages.
func (g *Game) DrainNotices() []string {
	out := g.notices
	g.notices = nil
	return out
}

// Summary describes the last finished session.
func (g *Game) Summary() core.SessionSummary {
	names := make([]string, 0, len(g.unlocked))
	for _, k := range g.unlocked {
		a, _ := AchievementByKey(k)
		names = append(names, a.Icon+" "+a.Name)
	}
	return core.SessionSummary{
		Mode:         g.ID(),
		Score:        g.progress.Score,
		Level:        g.progress.Level,
		MaxCombo:     g.progress.MaxCombo,
		HighScore:    g.profile.HighScore,
		NewHighScore: g.newHigh,
		Seconds:      g.seconds(),
		Unlocked:     names,
	}
}

// Active reports whether a session is running.
func (g *Game) Active() bool {
	return g.active
}

// Progress returns a copy of the progression state.
func (g *Game) Progress() Progress {
	return g.progress
}

// Events returns a copy of the special-event state.
func (g *Game) Events() Events {
	return g.events
}

// PowerUps returns the power-up manager.
func (g *Game) PowerUps() *PowerUps {
	return g.powerups
}

// Challenge returns the daily challenge tracker, nil outside challenge mode.
func (g *Game) Challenge() *ChallengeTracker {
	return g.challenge
}

// Chapter returns the current story chapter index.
func (g *Game) Chapter() int {
	return g.chapter
}
