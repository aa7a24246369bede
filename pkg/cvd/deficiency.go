package cvd

import "fmt"

// Deficiency is a dichromatic deficiency class: the absence of one of the
// three cone photopigments.
type Deficiency int

const (
	// Protan hinders the perception of red hues (missing L cones).
	Protan Deficiency = iota
	// Deutan hinders the perception of green hues (missing M cones).
	Deutan
	// Tritan is a blue-yellow limitation (missing S cones).
	Tritan
)

// ConfusionLine anchors a deficiency in xy chromaticity space.
// U and V locate the confusion point every confusion line radiates from;
// Slope and Intercept describe the fixed line dichromatic colours collapse onto.
type ConfusionLine struct {
	U         float64
	V         float64
	Slope     float64
	Intercept float64
}

var confusionLines = [...]ConfusionLine{
	Protan: {U: 0.735, V: 0.265, Slope: 1.273463, Intercept: -0.073894},
	Deutan: {U: 1.14, V: -0.14, Slope: 0.968437, Intercept: 0.003331},
	Tritan: {U: 0.171, V: -0.003, Slope: 0.062921, Intercept: 0.292119},
}

// Deficiencies returns the three deficiency classes.
func Deficiencies() []Deficiency {
	return []Deficiency{Protan, Deutan, Tritan}
}

// Confusion returns the confusion line constants for the deficiency.
// It panics if d is not a defined Deficiency.
func (d Deficiency) Confusion() ConfusionLine {
	if !d.Valid() {
		panic(fmt.Sprintf("cvd: invalid deficiency %d", int(d)))
	}
	return confusionLines[d]
}

// Valid reports whether d is one of the defined deficiency classes.
func (d Deficiency) Valid() bool {
	return d >= Protan && d <= Tritan
}

// String returns the string representation of a Deficiency.
func (d Deficiency) String() string {
	switch d {
	case Protan:
		return "protan"
	case Deutan:
		return "deutan"
	case Tritan:
		return "tritan"
	default:
		return "unknown"
	}
}
