package colour

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/inclusive/pkg/cvd"
)

// WCAG contrast thresholds.
const (
	ContrastAA      = 4.5 // normal text, level AA
	ContrastAALarge = 3.0 // large text, level AA
	ContrastAAA     = 7.0 // normal text, level AAA
)

// ContrastLevel names the highest WCAG level a contrast ratio reaches.
func ContrastLevel(ratio float64) string {
	switch {
	case ratio >= ContrastAAA:
		return "AAA"
	case ratio >= ContrastAA:
		return "AA"
	case ratio >= ContrastAALarge:
		return "AA large text"
	default:
		return "below AA"
	}
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest). Alpha is ignored.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c cvd.RGBA) float64 {
	r := srgbToLinear(float64(clamp8(c.R)) / 255.0)
	g := srgbToLinear(float64(clamp8(c.G)) / 255.0)
	b := srgbToLinear(float64(clamp8(c.B)) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// srgbToLinear applies the piecewise sRGB transfer function used by WCAG.
// It differs from the pure 2.2 power curve used by cvd.
func srgbToLinear(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 cvd.RGBA) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Distance returns the CIEDE2000 colour difference between two colours, in the
// usual units where 0 is identical and about 100 separates black from white.
// Differences below roughly 2 are hard to notice. Alpha is ignored.
func Distance(c1, c2 cvd.RGBA) float64 {
	return toColorful(c1).DistanceCIEDE2000(toColorful(c2)) * 100
}

func toColorful(c cvd.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(clamp8(c.R)) / 255.0,
		G: float64(clamp8(c.G)) / 255.0,
		B: float64(clamp8(c.B)) / 255.0,
	}
}
