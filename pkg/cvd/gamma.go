package cvd

import "math"

// Gamma is the exponent of the power curve between 8-bit channels and
// linear light.
const Gamma = 2.2

// gammaTable memoises DecodeGamma for every 8-bit input. It is filled once at
// package initialisation and only read afterwards.
var gammaTable = func() [256]float64 {
	var t [256]float64
	for i := range t {
		t[i] = math.Pow(float64(i)/255.0, Gamma)
	}
	return t
}()

// DecodeGamma converts an 8-bit channel to linear light in [0, 1].
// Channels outside [0, 255] are bounded to the table.
func DecodeGamma(channel int) float64 {
	return gammaTable[clampChannel(channel)]
}

// EncodeGamma converts linear light back to an 8-bit channel, truncating
// the fractional part. Values at or below 0 encode to 0, values at or above 1
// encode to 255 and NaN encodes to 0, so the result is always in [0, 255].
// Truncation means EncodeGamma(DecodeGamma(x)) may be x-1 for some channels.
func EncodeGamma(linear float64) int {
	switch {
	case math.IsNaN(linear), linear <= 0:
		return 0
	case linear >= 1:
		return 255
	}
	return int(255 * math.Pow(linear, 1/Gamma))
}

func clampChannel(v int) int {
	return min(max(v, 0), 255)
}
