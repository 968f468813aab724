package shadowpaws

import (
	"math"

	"github.com/vovakirdan/shadow-paws/internal/core"
)

var (
	tintFriday   = core.RGB{R: 30, G: 10, B: 10}
	tintFullMoon = core.RGB{R: 20, G: 20, B: 35}
	starFriday   = core.RGB{R: 0xff, G: 0xaa, B: 0x00}
	starFullMoon = core.RGB{R: 0xaa, G: 0xee, B: 0xff}
)

// Render draws the current frame, back to front.
func (g *Game) Render(dst core.Surface) {
	dst.Save()
	defer dst.Restore()

	bg, alpha := g.background()
	dst.Fade(bg, alpha)

	if g.shake != 0 {
		dst.Translate(g.shake, 0)
	}

	g.drawFlash(dst)
	g.drawStars(dst)
	g.drawPawPrints(dst)
	g.drawSparkles(dst)
	g.drawCat(dst)
	g.drawItems(dst)
	g.drawParticles(dst)
}

// background returns the trail color and fade alpha for this frame.
func (g *Game) background() (core.RGB, float64) {
	switch {
	case g.events.Friday13:
		return tintFriday, 0.3
	case g.events.FullMoon:
		return tintFullMoon, 0.2
	default:
		return core.ColorNight, 0.25 + math.Min(float64(g.progress.Level)*0.02, 0.15)
	}
}

func (g *Game) drawFlash(dst core.Surface) {
	if len(g.ents.Flashes) == 0 {
		return
	}
	dst.Save()
	dst.SetAlpha(g.ents.Flashes[0].Intensity)
	dst.FillRect(0, 0, g.cfg.World.Width, g.cfg.World.Height, core.ColorWhite)
	dst.Restore()
}

func (g *Game) drawStars(dst core.Surface) {
	color := core.ColorWhite
	if g.events.Friday13 {
		color = starFriday
	}
	if g.events.FullMoon {
		color = starFullMoon
	}

	t := float64(g.tick)
	for _, s := range g.ents.Stars {
		twinkle := math.Sin(t*0.08+s.Pos.X)*0.5 + 1
		size := math.Max(s.Size*twinkle, 0.5)
		dst.SetAlpha(0.5 + 0.25*twinkle)
		dst.FillRect(s.Pos.X-size/2, s.Pos.Y-size/2, size, size, color)
	}
	dst.SetAlpha(1)
}

func (g *Game) drawPawPrints(dst core.Surface) {
	color := core.ColorGray
	if g.powerups.Has(PowerPounce) {
		color = core.ColorCoral
	}
	for _, p := range g.ents.PawPrints {
		dst.SetAlpha(p.Alpha() * 0.4)
		dst.Glyph(p.Pos.X, p.Pos.Y, '⁂', p.Size, color)
	}
	dst.SetAlpha(1)
}

func (g *Game) drawSparkles(dst core.Surface) {
	spin := float64(g.tick) * 0.16
	for _, s := range g.ents.Sparkles {
		dst.SetAlpha(float64(s.Life) / float64(s.MaxLife))
		dst.SetShadow(15, s.Color)
		for j := 0; j < 4; j++ {
			angle := float64(j)/4*2*math.Pi + spin
			dst.FillCircle(s.Pos.X+math.Cos(angle)*s.Size, s.Pos.Y+math.Sin(angle)*s.Size, 1, s.Color)
		}
	}
	dst.SetShadow(0, core.ColorBlack)
	dst.SetAlpha(1)
}

// catColor returns the body color for the active power-up or protection.
func (g *Game) catColor() core.RGB {
	color := core.ColorCharcol
	if g.progress.Invincible > 0 {
		color = core.ColorPurple
	}
	for _, k := range PowerUpKinds {
		if g.powerups.Has(k) {
			color = powerUpCatalog[k].color
		}
	}
	return color
}

func (g *Game) drawCat(dst core.Surface) {
	s := g.sprite
	size := s.Size
	body := g.catColor()

	dst.Save()
	dst.Translate(s.Pos.X, s.Pos.Y)

	sway := math.Sin(float64(g.tick)*0.13) * 5
	dst.Line(size*0.4, size*0.1, size*0.8, size*0.4+sway, body)
	dst.Line(size*0.8, size*0.4+sway, size*0.6, size*0.9, body)

	dst.FillCircle(0, 0, size*0.55, body)
	dst.FillCircle(0, -size*0.4, size*0.45, body)
	dst.Glyph(-size*0.3, -size*0.85, '▲', size*0.3, body)
	dst.Glyph(size*0.3, -size*0.85, '▲', size*0.3, body)

	faceY := -size * 0.45
	eyeX := size * 0.18
	if s.Blink == 0 {
		eye := core.ColorWhite
		if s.Emotion == EmotionScared {
			eye = core.ColorYellow
		}
		dst.FillCircle(-eyeX, faceY, size*0.09, eye)
		dst.FillCircle(eyeX, faceY, size*0.09, eye)
		dst.FillCircle(-eyeX, faceY, size*0.05, core.ColorBlack)
		dst.FillCircle(eyeX, faceY, size*0.05, core.ColorBlack)
	} else {
		w := size * 0.05
		dst.Line(-eyeX-w, faceY, -eyeX+w, faceY, core.ColorCharcol)
		dst.Line(eyeX-w, faceY, eyeX+w, faceY, core.ColorCharcol)
	}
	dst.FillCircle(0, faceY+size*0.1, size*0.04, core.ColorNose)
	if s.Emotion == EmotionHappy {
		dst.Glyph(0, faceY+size*0.2, 'ω', size*0.2, core.ColorNose)
	}
	dst.Restore()

	if g.progress.Invincible > 0 {
		dst.SetAlpha(math.Sin(float64(g.tick)*0.13)*0.4 + 0.3)
		dst.StrokeCircle(s.Pos.X, s.Pos.Y-size*0.2, size*1.1, core.ColorPurple)
		dst.SetAlpha(1)
	}
}

// shadowColor returns the glow color of an item under the active events.
func (g *Game) shadowColor(spec ItemSpec) core.RGB {
	switch {
	case g.events.FullMoon:
		return core.ColorWhite
	case g.events.Friday13 && spec.Good:
		return core.ColorYellow
	case g.events.Friday13:
		return core.ColorOrange
	case spec.Good && (spec.Special || spec.PowerUp != PowerNone):
		return core.ColorPurple
	case spec.Good:
		return core.ColorGreen
	default:
		return core.ColorRed
	}
}

func (g *Game) drawItems(dst core.Surface) {
	t := float64(g.tick)
	vision := g.powerups.Has(PowerNightVision)

	for _, it := range g.ents.Items {
		spec := it.Spec()

		dst.Save()
		dst.Translate(it.Pos.X, it.Pos.Y)
		dst.Rotate(it.Rotation)
		if g.events.FullMoon {
			glow := math.Sin(t*0.32)*0.3 + 1
			dst.Scale(glow, glow)
		}
		if spec.Special || spec.PowerUp != PowerNone {
			pulse := math.Sin(t*0.16)*0.2 + 1
			dst.Scale(pulse, pulse)
		}
		if vision && it.Pos.Y < 100 {
			dst.SetAlpha(0.5)
		}
		dst.SetShadow(10, g.shadowColor(spec))
		dst.Glyph(0, 0, spec.Glyph, spec.Size, g.itemColor(spec))
		dst.Restore()
	}
}

// itemColor is the glyph color of an item category.
func (g *Game) itemColor(spec ItemSpec) core.RGB {
	switch {
	case spec.Special:
		return core.ColorGreen
	case spec.PowerUp != PowerNone:
		return powerUpCatalog[spec.PowerUp].color
	case spec.Good:
		return core.ColorGold
	default:
		return core.RGB{R: 0xc0, G: 0xc0, B: 0xd0}
	}
}

func (g *Game) drawParticles(dst core.Surface) {
	for _, p := range g.ents.Particles {
		dst.SetAlpha(math.Min(float64(p.Life)/50, 1))
		if p.Life > 20 {
			dst.SetShadow(10, p.Color)
		}
		size := p.Size
		if size <= 0 {
			size = 4
		}
		dst.FillCircle(p.Pos.X, p.Pos.Y, size, p.Color)
		dst.SetShadow(0, core.ColorBlack)
	}
	dst.SetAlpha(1)
}
