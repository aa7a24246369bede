package cvd

import "math"

// AnomalyWeight is how strongly anomalous variants lean towards the full
// simulation: each channel is (w*simulated + original) / (w + 1), roughly
// 64% simulated. The weight is fixed; it does not model measured severity.
const AnomalyWeight = 1.75

// Anomalize blends original towards simulated to approximate anomalous
// trichromacy. Alpha is taken from original.
func Anomalize(original, simulated RGBA) RGBA {
	return RGBA{
		R: blendChannel(original.R, simulated.R),
		G: blendChannel(original.G, simulated.G),
		B: blendChannel(original.B, simulated.B),
		A: original.A,
	}
}

func blendChannel(original, simulated int) int {
	return int(math.Round((AnomalyWeight*float64(simulated) + float64(original)) / (AnomalyWeight + 1)))
}

// Monochrome collapses c to grey using the broadcast luma weights. The
// weights are applied to the encoded channels directly, not to linear light.
func Monochrome(c RGBA) RGBA {
	z := int(math.Round(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)))
	return RGBA{R: z, G: z, B: z, A: c.A}
}
