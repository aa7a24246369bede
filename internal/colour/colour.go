// Package colour converts between textual, image/color and simulation colour
// representations, and measures how far apart two colours are.
package colour

import (
	"fmt"
	"image/color"

	"github.com/jmylchreest/inclusive/pkg/cvd"
)

// FromColor converts any color.Color to a straight-alpha 8-bit colour.
func FromColor(c color.Color) cvd.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return cvd.RGBA{R: int(n.R), G: int(n.G), B: int(n.B), A: int(n.A)}
}

// ToColor converts a simulation colour to color.NRGBA.
// Channels outside [0, 255] are clamped.
func ToColor(c cvd.RGBA) color.NRGBA {
	return color.NRGBA{R: clamp8(c.R), G: clamp8(c.G), B: clamp8(c.B), A: clamp8(c.A)}
}

// Hex returns the colour as "#rrggbb", or "#rrggbbaa" when it is not opaque.
func Hex(c cvd.RGBA) string {
	n := ToColor(c)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// RGBString returns the colour in the format "rgb(r, g, b)".
func RGBString(c cvd.RGBA) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func clamp8(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
