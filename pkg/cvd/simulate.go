package cvd

import "fmt"

// Simulate returns c as perceived with colour vision t.
// It panics if t is not a defined BlindnessType.
func Simulate(c RGBA, t BlindnessType) RGBA {
	switch t {
	case Normal:
		return c
	case Protanopia, Deuteranopia, Tritanopia:
		d, _ := t.Deficiency()
		return Dichromat(c, d)
	case Protanomaly, Deuteranomaly, Tritanomaly:
		d, _ := t.Deficiency()
		return Anomalize(c, Dichromat(c, d))
	case Achromatopsia:
		return Monochrome(c)
	case Achromatomaly:
		return Anomalize(c, Monochrome(c))
	default:
		panic(fmt.Sprintf("cvd: invalid blindness type %d", int(t)))
	}
}

// Result pairs a BlindnessType with the simulated colour.
type Result struct {
	Type   BlindnessType `json:"type" yaml:"type"`
	Colour RGBA          `json:"colour" yaml:"colour"`
}

// SimulateAll simulates c under every BlindnessType, in declaration order.
func SimulateAll(c RGBA) []Result {
	types := BlindnessTypes()
	results := make([]Result, len(types))
	for i, t := range types {
		results[i] = Result{Type: t, Colour: Simulate(c, t)}
	}
	return results
}
