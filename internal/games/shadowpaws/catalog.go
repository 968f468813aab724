// Package shadowpaws implements the Shadow Paws simulation: a black cat
// collects falling lucky charms and dodges bad-luck items while score,
// combo, level, power-ups, special events and achievements evolve.
package shadowpaws

import (
	"github.com/vovakirdan/shadow-paws/internal/config"
	"github.com/vovakirdan/shadow-paws/internal/core"
)

// ItemKind identifies a falling item category.
type ItemKind int

const (
	KindFish ItemKind = iota
	KindStar
	KindMoon
	KindMirror
	KindLadder
	KindSalt
	KindClover
	KindPaw
	KindEye
	KindHeart
	kindCount
)

// ItemSpec describes one item category.
type ItemSpec struct {
	Name    string
	Glyph   rune
	Points  int
	Good    bool
	Special bool        // grants invincibility and bonus combo
	PowerUp PowerUpKind // PowerNone for plain items
	Size    float64
}

var itemCatalog = [kindCount]ItemSpec{
	KindFish:   {Name: "fish", Glyph: '»', Points: 10, Good: true, Size: 25},
	KindStar:   {Name: "star", Glyph: '★', Points: 20, Good: true, Size: 25},
	KindMoon:   {Name: "moon", Glyph: '☾', Points: 30, Good: true, Size: 25},
	KindMirror: {Name: "mirror", Glyph: '◙', Points: -1, Size: 30},
	KindLadder: {Name: "ladder", Glyph: '╫', Points: -1, Size: 35},
	KindSalt:   {Name: "salt", Glyph: '∴', Points: -1, Size: 25},
	KindClover: {Name: "clover", Glyph: '♣', Points: 50, Good: true, Special: true, Size: 25},
	KindPaw:    {Name: "paw", Glyph: '⁂', Points: 15, Good: true, PowerUp: PowerPounce, Size: 25},
	KindEye:    {Name: "eye", Glyph: '◉', Points: 15, Good: true, PowerUp: PowerNightVision, Size: 25},
	KindHeart:  {Name: "heart", Glyph: '♥', Points: 15, Good: true, PowerUp: PowerNineLives, Size: 25},
}

var (
	commonItems  = []ItemKind{KindFish, KindStar, KindMoon}
	powerUpItems = []ItemKind{KindPaw, KindEye, KindHeart}
	badItems     = []ItemKind{KindMirror, KindLadder, KindSalt}
)

// Spec returns the catalog entry for k.
func (k ItemKind) Spec() ItemSpec {
	if k < 0 || k >= kindCount {
		return ItemSpec{Name: "unknown", Glyph: '?'}
	}
	return itemCatalog[k]
}

func (k ItemKind) String() string {
	return k.Spec().Name
}

// Kinds returns every item kind in catalog order.
func Kinds() []ItemKind {
	out := make([]ItemKind, 0, kindCount)
	for k := ItemKind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// PowerUpKind identifies a power-up.
type PowerUpKind int

const (
	PowerNone        PowerUpKind = iota
	PowerPounce                  // pass through bad items, move faster
	PowerNightVision             // reveal items near the top edge
	PowerNineLives               // one extra life
)

// PowerUpKinds lists the activatable power-ups.
var PowerUpKinds = []PowerUpKind{PowerPounce, PowerNightVision, PowerNineLives}

type powerUpSpec struct {
	name  string
	glyph rune
	tone  float64
	color core.RGB
}

var powerUpCatalog = map[PowerUpKind]powerUpSpec{
	PowerPounce:      {name: "Pounce", glyph: '⁂', tone: 200, color: core.ColorCoral},
	PowerNightVision: {name: "Night Vision", glyph: '◉', tone: 400, color: core.ColorTeal},
	PowerNineLives:   {name: "Nine Lives", glyph: '♥', tone: 600, color: core.ColorSky},
}

func (p PowerUpKind) String() string {
	if s, ok := powerUpCatalog[p]; ok {
		return s.name
	}
	return "None"
}

// Glyph returns the status-line symbol of the power-up.
func (p PowerUpKind) Glyph() rune {
	if s, ok := powerUpCatalog[p]; ok {
		return s.glyph
	}
	return ' '
}

// timing returns the configured duration and cooldown of p.
func timing(cfg config.PowerUpsConfig, p PowerUpKind) config.PowerUpTiming {
	switch p {
	case PowerPounce:
		return cfg.Pounce
	case PowerNightVision:
		return cfg.NightVision
	case PowerNineLives:
		return cfg.NineLives
	default:
		return config.PowerUpTiming{}
	}
}
