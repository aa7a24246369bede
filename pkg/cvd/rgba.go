// Package cvd simulates how colours appear to observers with colour vision
// deficiencies.
//
// The pipeline is purely numeric: 8-bit channels are gamma decoded to linear
// light, projected through CIE XYZ onto a deficiency's confusion line, pulled
// back inside the RGB gamut and re-encoded. Anomalous (partial) variants are
// a fixed blend between the original and the dichromatic result.
//
// Every function in this package is pure and safe for concurrent use.
package cvd

import "fmt"

// RGBA is an 8-bit colour with straight (non-premultiplied) alpha.
// Channels are expected to be in [0, 255]; the simulation does not
// revalidate them. Alpha never takes part in the colour computation.
type RGBA struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
	A int `json:"a" yaml:"a"`
}

// Opaque returns a fully opaque colour.
func Opaque(r, g, b int) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// String returns the colour in the format "rgba(r, g, b, a)".
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// IsAchromatic reports whether the colour has no chromatic content.
func (c RGBA) IsAchromatic() bool {
	return c.R == c.G && c.G == c.B
}
