package tui

import (
	"math"

	"github.com/vovakirdan/shadow-paws/internal/core"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// CellCanvas rasterizes core.Surface draw calls into a cell Screen.
// The world rectangle is scaled to the largest view that fits the screen
// while keeping its aspect ratio.
type CellCanvas struct {
	core.StateStack

	screen *core.Screen
	worldW float64
	worldH float64
	view   core.Rect
	sx, sy float64 // cells per world unit
}

// NewCellCanvas creates a canvas for a world of the given size.
func NewCellCanvas(screen *core.Screen, worldW, worldH float64) *CellCanvas {
	c := &CellCanvas{
		StateStack: core.NewStateStack(),
		screen:     screen,
		worldW:     worldW,
		worldH:     worldH,
	}
	c.Fit()
	return c
}

// Fit recomputes the view after the screen was resized.
func (c *CellCanvas) Fit() {
	w, h := c.screen.Width(), c.screen.Height()
	if w <= 0 || h <= 0 || c.worldW <= 0 || c.worldH <= 0 {
		c.view = core.NewRect(0, 0, 0, 0)
		c.sx, c.sy = 0, 0
		return
	}

	vh := float64(h)
	vw := vh * c.worldW / c.worldH * cellAspect
	if vw > float64(w) {
		vw = float64(w)
		vh = vw * c.worldH / c.worldW / cellAspect
	}

	view := core.NewRect(0, 0, max(int(vw), 1), max(int(vh), 1))
	view.X = (w - view.W) / 2
	view.Y = (h - view.H) / 2
	c.view = view
	c.sx = float64(view.W) / c.worldW
	c.sy = float64(view.H) / c.worldH
}

// View returns the cell rectangle the world is drawn into.
func (c *CellCanvas) View() core.Rect {
	return c.view
}

// Begin prepares the canvas for a new frame.
func (c *CellCanvas) Begin() {
	c.StateStack.Reset()
}

// cell maps a world point through the current transform to a cell.
func (c *CellCanvas) cell(x, y float64) (int, int) {
	tx, ty := c.Top().M.Apply(x, y)
	return c.view.X + int(math.Floor(tx*c.sx)), c.view.Y + int(math.Floor(ty*c.sy))
}

func (c *CellCanvas) inView(cx, cy int) bool {
	return c.view.Contains(cx, cy)
}

// tint blends the background of one cell toward col.
func (c *CellCanvas) tint(cx, cy int, col core.RGB, alpha float64) {
	if !c.inView(cx, cy) || alpha <= 0 {
		return
	}
	cell := c.screen.GetCell(cx, cy)
	cell.BG = cell.BG.Blend(col, alpha)
	if alpha >= 0.95 {
		cell.Rune = ' '
	}
	c.screen.SetCell(cx, cy, cell)
}

// plot puts a glyph into one cell, blending its colour by the current alpha.
func (c *CellCanvas) plot(cx, cy int, r rune, col core.RGB) {
	if !c.inView(cx, cy) {
		return
	}
	st := c.Top()
	if st.Alpha <= 0.05 {
		return
	}
	cell := c.screen.GetCell(cx, cy)
	if st.ShadowBlur > 0 {
		cell.BG = cell.BG.Blend(st.ShadowColor, math.Min(st.ShadowBlur/40, 0.4)*st.Alpha)
	}
	cell.Rune = r
	cell.FG = cell.BG.Blend(col, st.Alpha)
	c.screen.SetCell(cx, cy, cell)
}

// Clear paints the whole view with col.
func (c *CellCanvas) Clear(col core.RGB) {
	for y := c.view.Y; y < c.view.Bottom(); y++ {
		for x := c.view.X; x < c.view.Right(); x++ {
			c.screen.SetCell(x, y, core.Cell{Rune: ' ', FG: core.ColorWhite, BG: col})
		}
	}
}

// Fade blends the view toward col. Glyphs never trail: a cell only keeps
// its tinted background into the next frame.
func (c *CellCanvas) Fade(col core.RGB, alpha float64) {
	alpha = core.ClampF(alpha, 0, 1)
	for y := c.view.Y; y < c.view.Bottom(); y++ {
		for x := c.view.X; x < c.view.Right(); x++ {
			cell := c.screen.GetCell(x, y)
			cell.BG = cell.BG.Blend(col, alpha)
			cell.Rune = ' '
			c.screen.SetCell(x, y, cell)
		}
	}
}

func (c *CellCanvas) FillRect(x, y, w, h float64, col core.RGB) {
	x0, y0 := c.cell(x, y)
	x1, y1 := c.cell(x+w, y+h)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	if x1-x0 < 1 || y1-y0 < 1 {
		c.plot(x0, y0, '·', col)
		return
	}
	alpha := c.Top().Alpha
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.tint(cx, cy, col, alpha)
		}
	}
}

// radii returns the cell radii of a world radius under the transform.
func (c *CellCanvas) radii(r float64) (float64, float64) {
	scaled := r * c.Top().M.ScaleFactor()
	return scaled * c.sx, scaled * c.sy
}

func (c *CellCanvas) FillCircle(cx, cy, r float64, col core.RGB) {
	px, py := c.cell(cx, cy)
	rx, ry := c.radii(r)
	if rx < 1 || ry < 0.75 {
		glyph := '•'
		if rx >= 0.5 {
			glyph = '●'
		}
		c.plot(px, py, glyph, col)
		return
	}
	alpha := c.Top().Alpha
	for y := int(-ry); y <= int(ry); y++ {
		for x := int(-rx); x <= int(rx); x++ {
			nx, ny := float64(x)/rx, float64(y)/ry
			if nx*nx+ny*ny <= 1 {
				c.tint(px+x, py+y, col, alpha)
			}
		}
	}
}

func (c *CellCanvas) StrokeCircle(cx, cy, r float64, col core.RGB) {
	px, py := c.cell(cx, cy)
	rx, ry := c.radii(r)
	steps := max(int(2*math.Pi*math.Max(rx, ry)), 8)
	for i := 0; i < steps; i++ {
		a := float64(i) / float64(steps) * 2 * math.Pi
		c.plot(px+int(math.Round(math.Cos(a)*rx)), py+int(math.Round(math.Sin(a)*ry)), '·', col)
	}
}

// Line draws a cell line choosing a stroke glyph from its slope.
func (c *CellCanvas) Line(x1, y1, x2, y2 float64, col core.RGB) {
	ax, ay := c.cell(x1, y1)
	bx, by := c.cell(x2, y2)
	glyph := lineGlyph(bx-ax, by-ay)

	dx, dy := abs(bx-ax), -abs(by-ay)
	sx, sy := sign(bx-ax), sign(by-ay)
	e := dx + dy
	for {
		c.plot(ax, ay, glyph, col)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

func lineGlyph(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case abs(dx) > 2*abs(dy):
		return '─'
	case abs(dy) > 2*abs(dx):
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (c *CellCanvas) Text(x, y float64, s string, col core.RGB) {
	px, py := c.cell(x, y)
	runes := []rune(s)
	px -= len(runes) / 2
	for i, r := range runes {
		c.plot(px+i, py, r, col)
	}
}

func (c *CellCanvas) Glyph(x, y float64, g rune, _ float64, col core.RGB) {
	px, py := c.cell(x, y)
	c.plot(px, py, g, col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
