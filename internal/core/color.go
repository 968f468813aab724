package core

import "fmt"

// RGB is a 24-bit colour used by the render surface and the cell buffer.
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend mixes c toward other by t in [0, 1].
func (c RGB) Blend(other RGB, t float64) RGB {
	t = ClampF(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return RGB{R: mix(c.R, other.R), G: mix(c.G, other.G), B: mix(c.B, other.B)}
}

// Palette used by the game and the menus.
var (
	ColorBlack   = RGB{0, 0, 0}
	ColorWhite   = RGB{255, 255, 255}
	ColorNight   = RGB{15, 15, 30}
	ColorPurple  = RGB{0x93, 0x33, 0xea}
	ColorPink    = RGB{0xff, 0x69, 0xb4}
	ColorCyan    = RGB{0x00, 0xff, 0xff}
	ColorGold    = RGB{0xff, 0xd7, 0x00}
	ColorRed     = RGB{0xff, 0x00, 0x00}
	ColorGreen   = RGB{0x00, 0xff, 0x00}
	ColorYellow  = RGB{0xff, 0xff, 0x00}
	ColorOrange  = RGB{0xff, 0x66, 0x00}
	ColorCoral   = RGB{0xff, 0x6b, 0x6b}
	ColorTeal    = RGB{0x5f, 0xd3, 0xd3}
	ColorSky     = RGB{0x6b, 0xc5, 0xe8}
	ColorCharcol = RGB{0x2a, 0x2a, 0x2a}
	ColorGray    = RGB{0x33, 0x33, 0x33}
	ColorNose    = RGB{0xff, 0x91, 0xa4}
)
