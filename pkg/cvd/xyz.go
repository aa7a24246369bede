package cvd

// XYZ is a CIE 1931 tristimulus value relative to the sRGB primaries.
type XYZ struct {
	X, Y, Z float64
}

// LinearToXYZ converts linear-light RGB to XYZ.
func LinearToXYZ(r, g, b float64) XYZ {
	return XYZ{
		X: 0.430574*r + 0.341550*g + 0.178325*b,
		Y: 0.222015*r + 0.706655*g + 0.071330*b,
		Z: 0.020183*r + 0.129553*g + 0.939180*b,
	}
}

// XYZToLinear converts XYZ back to linear-light RGB. The result is not
// clamped and may fall outside [0, 1].
func XYZToLinear(c XYZ) (r, g, b float64) {
	r = 3.063218*c.X - 1.393325*c.Y - 0.475802*c.Z
	g = -0.969243*c.X + 1.875966*c.Y + 0.041555*c.Z
	b = 0.067871*c.X - 0.228834*c.Y + 1.069251*c.Z
	return r, g, b
}

// Chromaticity returns the normalised (u, v) coordinates x/(X+Y+Z) and
// y/(X+Y+Z). Black, whose sum is exactly zero, maps to (0, 0).
func (c XYZ) Chromaticity() (u, v float64) {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return 0, 0
	}
	return c.X / sum, c.Y / sum
}

// whitePoint is the reference white used as the neutral axis.
var whitePoint = XYZ{X: 0.312713, Y: 0.329016, Z: 0.358271}

// neutral returns the grey on the neutral axis with luminance y.
func neutral(y float64) XYZ {
	return XYZ{
		X: whitePoint.X * y / whitePoint.Y,
		Y: y,
		Z: whitePoint.Z * y / whitePoint.Y,
	}
}
