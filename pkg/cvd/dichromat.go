package cvd

// Dichromat simulates c as seen by a dichromat with deficiency d.
//
// The colour's chromaticity is moved along its confusion line (the line
// through the deficiency's confusion point) until it meets the deficiency's
// fixed line, keeping luminance Y. The resulting colour is then pulled
// towards the neutral grey of the same luminance just far enough to bring it
// back inside the RGB cube. Alpha is carried through unchanged.
//
// Achromatic colours are returned as-is: they lie on the neutral axis, which
// all observers share. The mapping is not continuous there: a colour one step
// off the axis is fully projected, so deutan maps (128,128,128) to itself but
// (128,128,129) to (139,124,129).
func Dichromat(c RGBA, d Deficiency) RGBA {
	if c.IsAchromatic() {
		return c
	}
	line := d.Confusion()

	src := LinearToXYZ(DecodeGamma(c.R), DecodeGamma(c.G), DecodeGamma(c.B))
	cu, cv := src.Chromaticity()
	grey := neutral(src.Y)

	// The operand order depends on which side of the confusion point the
	// colour sits so the slope keeps its direction close to the point.
	var clm float64
	if cu < line.U {
		clm = (line.V - cv) / (line.U - cu)
	} else {
		clm = (cv - line.V) / (cu - line.U)
	}
	clyi := cv - cu*clm

	du := (line.Intercept - clyi) / (clm - line.Slope)
	dv := clm*du + clyi

	sim := XYZ{
		X: du * src.Y / dv,
		Y: src.Y,
		Z: (1 - (du + dv)) * src.Y / dv,
	}
	sr, sg, sb := XYZToLinear(sim)

	// Direction from the simulated colour to neutral grey, luminance fixed.
	dr, dg, db := XYZToLinear(XYZ{X: grey.X - sim.X, Z: grey.Z - sim.Z})

	adjust := max(gamutAdjustment(sr, dr), gamutAdjustment(sg, dg), gamutAdjustment(sb, db))
	sr += adjust * dr
	sg += adjust * dg
	sb += adjust * db

	return RGBA{
		R: EncodeGamma(sr),
		G: EncodeGamma(sg),
		B: EncodeGamma(sb),
		A: c.A,
	}
}

// gamutAdjustment returns the fraction of delta needed to move channel onto
// its nearest bound, or 0 when delta does not point inwards or the fraction
// falls outside [0, 1].
func gamutAdjustment(channel, delta float64) float64 {
	if delta <= 0 {
		return 0
	}
	bound := 1.0
	if channel < 0 {
		bound = 0
	}
	adj := (bound - channel) / delta
	if adj < 0 || adj > 1 {
		return 0
	}
	return adj
}
