package shadowpaws

import (
	"math"

	"github.com/vovakirdan/shadow-paws/internal/core"
)

// Emotion is the cat's transient facial expression.
type Emotion int

const (
	EmotionNeutral Emotion = iota
	EmotionHappy
	EmotionScared
	EmotionFocused
)

func (e Emotion) String() string {
	switch e {
	case EmotionHappy:
		return "happy"
	case EmotionScared:
		return "scared"
	case EmotionFocused:
		return "focused"
	default:
		return "neutral"
	}
}

// Sprite is the player-controlled cat.
type Sprite struct {
	Pos     core.Vec
	Vel     core.Vec
	Target  core.Vec
	Size    float64
	Speed   float64
	Emotion Emotion
	Blink   int // frames left with eyes closed
}

// Item is a falling collectible or hazard.
type Item struct {
	Kind        ItemKind
	Pos         core.Vec
	Speed       float64
	Rotation    float64
	Wobble      float64
	WobbleSpeed float64
}

// Spec returns the catalog entry of the item.
func (it *Item) Spec() ItemSpec {
	return it.Kind.Spec()
}

// Particle is a short-lived cosmetic dot.
type Particle struct {
	Pos     core.Vec
	Vel     core.Vec
	Life    int
	Color   core.RGB
	Size    float64
	Gravity float64
}

// Sparkle is a slow glittering particle.
type Sparkle struct {
	Pos     core.Vec
	Vel     core.Vec
	Life    int
	MaxLife int
	Color   core.RGB
	Size    float64
}

// Flash is a full-screen lightning overlay.
type Flash struct {
	Life      int
	Intensity float64
}

// PawPrint is a fading footprint left behind the cat.
type PawPrint struct {
	Pos  core.Vec
	Life int
	Size float64
}

// Alpha returns the print's opacity.
func (p PawPrint) Alpha() float64 {
	return float64(p.Life) / pawPrintLife
}

// Star is one background star.
type Star struct {
	Pos   core.Vec
	Size  float64
	Speed float64
}

const (
	pawPrintLife  = 60
	flashLife     = 8
	sparkleMax    = 120
	levelUpBursts = 50
)

var sparkleColors = []core.RGB{core.ColorPink, core.ColorPurple, core.ColorCyan, core.ColorGold}

// Entities owns every session-scoped entity collection.
type Entities struct {
	Items     []Item
	Particles []Particle
	Sparkles  []Sparkle
	Flashes   []Flash
	PawPrints []PawPrint
	Stars     []Star
}

// Clear drops all session entities. Stars are background and survive.
func (e *Entities) Clear() {
	e.Items = e.Items[:0]
	e.Particles = e.Particles[:0]
	e.Sparkles = e.Sparkles[:0]
	e.Flashes = e.Flashes[:0]
	e.PawPrints = e.PawPrints[:0]
}

// Burst adds count particles flying out of pos.
func (e *Entities) Burst(rng *core.SimpleRNG, pos core.Vec, color core.RGB, count int) {
	for i := 0; i < count; i++ {
		e.Particles = append(e.Particles, Particle{
			Pos:     pos,
			Vel:     core.Vec{X: (rng.Float64() - 0.5) * 8, Y: (rng.Float64() - 0.5) * 8},
			Life:    30 + rng.Intn(21),
			Color:   color,
			Size:    2 + rng.Float64()*3,
			Gravity: rng.Float64() * 0.1,
		})
	}
}

// Ring adds the level-up ring of particles around pos.
func (e *Entities) Ring(rng *core.SimpleRNG, pos core.Vec) {
	for i := 0; i < levelUpBursts; i++ {
		angle := float64(i) / levelUpBursts * 2 * math.Pi
		speed := rng.Float64()*5 + 2
		e.Particles = append(e.Particles, Particle{
			Pos:     pos,
			Vel:     core.Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:    60,
			Color:   core.ColorPurple,
			Size:    4,
			Gravity: 0.3,
		})
	}
}

// Sparkle adds one magic sparkle at pos.
func (e *Entities) Sparkle(rng *core.SimpleRNG, pos core.Vec) {
	e.Sparkles = append(e.Sparkles, Sparkle{
		Pos:     pos,
		Vel:     core.Vec{X: (rng.Float64() - 0.5) * 4, Y: (rng.Float64() - 0.5) * 4},
		Life:    80 + rng.Intn(41),
		MaxLife: sparkleMax,
		Color:   sparkleColors[rng.Intn(len(sparkleColors))],
		Size:    1 + rng.Float64()*2,
	})
}

// SparkleN adds n sparkles at pos.
func (e *Entities) SparkleN(rng *core.SimpleRNG, pos core.Vec, n int) {
	for i := 0; i < n; i++ {
		e.Sparkle(rng, pos)
	}
}

// Lightning adds a screen flash.
func (e *Entities) Lightning(rng *core.SimpleRNG) {
	e.Flashes = append(e.Flashes, Flash{Life: flashLife, Intensity: rng.Float64()*0.3 + 0.2})
}

// UpdateParticles advances particles and prunes dead ones.
func (e *Entities) UpdateParticles() {
	live := e.Particles[:0]
	for _, p := range e.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel.Y += p.Gravity
		p.Vel.X *= 0.98
		p.Life--
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	e.Particles = live
}

// UpdateSparkles advances sparkles and prunes dead ones.
func (e *Entities) UpdateSparkles() {
	live := e.Sparkles[:0]
	for _, s := range e.Sparkles {
		s.Pos = s.Pos.Add(s.Vel)
		s.Vel = s.Vel.Scale(0.99)
		s.Life--
		if s.Life > 0 {
			live = append(live, s)
		}
	}
	e.Sparkles = live
}

// UpdateFlashes ages lightning flashes.
func (e *Entities) UpdateFlashes() {
	live := e.Flashes[:0]
	for _, f := range e.Flashes {
		f.Life--
		if f.Life > 0 {
			live = append(live, f)
		}
	}
	e.Flashes = live
}

// UpdatePawPrints fades paw prints.
func (e *Entities) UpdatePawPrints() {
	live := e.PawPrints[:0]
	for _, p := range e.PawPrints {
		p.Life--
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	e.PawPrints = live
}

// SeedStars fills the background starfield.
func (e *Entities) SeedStars(rng *core.SimpleRNG, n int, w, h float64) {
	e.Stars = e.Stars[:0]
	for i := 0; i < n; i++ {
		e.Stars = append(e.Stars, Star{
			Pos:   core.Vec{X: rng.Float64() * w, Y: rng.Float64() * h},
			Size:  rng.Float64() * 2,
			Speed: rng.Float64()*0.5 + 0.1,
		})
	}
}

// UpdateStars scrolls the starfield, wrapping stars at the bottom.
func (e *Entities) UpdateStars(rng *core.SimpleRNG, speedMult, w, h float64) {
	for i := range e.Stars {
		s := &e.Stars[i]
		s.Pos.Y += s.Speed * speedMult
		if s.Pos.Y > h {
			s.Pos.Y = 0
			s.Pos.X = rng.Float64() * w
		}
	}
}
