package core

import "fmt"

// Color is a 24-bit RGB terminal color.
// The zero value is ColorDefault, meaning "use the terminal's own color".
type Color uint32

// ColorDefault leaves the terminal foreground or background untouched.
const ColorDefault Color = 0

const colorSet = 1 << 24

// RGB builds a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(colorSet | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// IsDefault reports whether c is ColorDefault.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// RGB returns the channels of c. All channels are zero for ColorDefault.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as "#rrggbb", or "" for ColorDefault.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
