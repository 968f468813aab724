package core

import "math"

// Surface is the drawing target for game rendering. Coordinates are world
// units; the current transform, alpha and shadow apply to every draw call.
type Surface interface {
	// Clear paints the whole surface with c.
	Clear(c RGB)
	// Fade blends the whole surface toward c by alpha (trailing effect).
	Fade(c RGB, alpha float64)
	FillRect(x, y, w, h float64, c RGB)
	FillCircle(cx, cy, r float64, c RGB)
	StrokeCircle(cx, cy, r float64, c RGB)
	Line(x1, y1, x2, y2 float64, c RGB)
	// Text draws s centered on (x, y).
	Text(x, y float64, s string, c RGB)
	// Glyph draws one symbol centered on (x, y) with the given size.
	Glyph(x, y float64, g rune, size float64, c RGB)

	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(rad float64)
	Scale(sx, sy float64)
	SetAlpha(a float64)
	SetShadow(blur float64, c RGB)
}

// Affine is a 2D affine transform:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Apply maps a point through the transform.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Mul returns m followed locally by n (n is applied first).
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// ScaleFactor returns the mean linear scale of the transform.
func (m Affine) ScaleFactor() float64 {
	sx := math.Hypot(m.A, m.B)
	sy := math.Hypot(m.C, m.D)
	return (sx + sy) / 2
}

// DrawState is the mutable part of a surface saved by Save.
type DrawState struct {
	M           Affine
	Alpha       float64
	ShadowBlur  float64
	ShadowColor RGB
}

// StateStack implements the transform and blending half of Surface.
// Concrete surfaces embed it and read Top when drawing.
type StateStack struct {
	top   DrawState
	saved []DrawState
}

// NewStateStack returns a stack with identity transform and full alpha.
func NewStateStack() StateStack {
	return StateStack{top: DrawState{M: Identity(), Alpha: 1}}
}

// Top returns the current draw state.
func (s *StateStack) Top() DrawState {
	return s.top
}

// Reset drops saved states and restores the defaults.
func (s *StateStack) Reset() {
	s.top = DrawState{M: Identity(), Alpha: 1}
	s.saved = s.saved[:0]
}

func (s *StateStack) Save() {
	s.saved = append(s.saved, s.top)
}

func (s *StateStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.top = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *StateStack) Translate(dx, dy float64) {
	s.top.M = s.top.M.Mul(Affine{A: 1, D: 1, E: dx, F: dy})
}

func (s *StateStack) Rotate(rad float64) {
	sin, cos := math.Sincos(rad)
	s.top.M = s.top.M.Mul(Affine{A: cos, B: sin, C: -sin, D: cos})
}

func (s *StateStack) Scale(sx, sy float64) {
	s.top.M = s.top.M.Mul(Affine{A: sx, D: sy})
}

func (s *StateStack) SetAlpha(a float64) {
	s.top.Alpha = ClampF(a, 0, 1)
}

func (s *StateStack) SetShadow(blur float64, c RGB) {
	s.top.ShadowBlur = math.Max(blur, 0)
	s.top.ShadowColor = c
}

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpFade
	OpFillRect
	OpFillCircle
	OpStrokeCircle
	OpLine
	OpText
	OpGlyph
)

// DrawOp is one recorded draw call with its position already transformed.
type DrawOp struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64 // rect size, line end point, or radius in W
	Text  string
	Glyph rune
	Color RGB
	Alpha float64
}

// RecordingSurface captures draw calls instead of rasterizing them.
type RecordingSurface struct {
	StateStack
	Ops []DrawOp
}

// NewRecordingSurface creates an empty recorder.
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{StateStack: NewStateStack()}
}

func (r *RecordingSurface) record(op DrawOp) {
	op.Alpha = r.top.Alpha
	r.Ops = append(r.Ops, op)
}

func (r *RecordingSurface) Clear(c RGB) {
	r.Ops = r.Ops[:0]
	r.record(DrawOp{Kind: OpClear, Color: c})
}

func (r *RecordingSurface) Fade(c RGB, alpha float64) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpFade, Color: c, Alpha: ClampF(alpha, 0, 1)})
}

func (r *RecordingSurface) FillRect(x, y, w, h float64, c RGB) {
	tx, ty := r.top.M.Apply(x, y)
	r.record(DrawOp{Kind: OpFillRect, X: tx, Y: ty, W: w, H: h, Color: c})
}

func (r *RecordingSurface) FillCircle(cx, cy, rad float64, c RGB) {
	tx, ty := r.top.M.Apply(cx, cy)
	r.record(DrawOp{Kind: OpFillCircle, X: tx, Y: ty, W: rad * r.top.M.ScaleFactor(), Color: c})
}

func (r *RecordingSurface) StrokeCircle(cx, cy, rad float64, c RGB) {
	tx, ty := r.top.M.Apply(cx, cy)
	r.record(DrawOp{Kind: OpStrokeCircle, X: tx, Y: ty, W: rad * r.top.M.ScaleFactor(), Color: c})
}

func (r *RecordingSurface) Line(x1, y1, x2, y2 float64, c RGB) {
	ax, ay := r.top.M.Apply(x1, y1)
	bx, by := r.top.M.Apply(x2, y2)
	r.record(DrawOp{Kind: OpLine, X: ax, Y: ay, W: bx, H: by, Color: c})
}

func (r *RecordingSurface) Text(x, y float64, s string, c RGB) {
	tx, ty := r.top.M.Apply(x, y)
	r.record(DrawOp{Kind: OpText, X: tx, Y: ty, Text: s, Color: c})
}

func (r *RecordingSurface) Glyph(x, y float64, g rune, size float64, c RGB) {
	tx, ty := r.top.M.Apply(x, y)
	r.record(DrawOp{Kind: OpGlyph, X: tx, Y: ty, W: size, Glyph: g, Color: c})
}

// Count returns the number of recorded ops of the given kind.
func (r *RecordingSurface) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns all recorded text strings in draw order.
func (r *RecordingSurface) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}
