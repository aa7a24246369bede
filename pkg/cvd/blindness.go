package cvd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBlindnessType is returned when a name does not match any BlindnessType.
var ErrUnknownBlindnessType = errors.New("unknown blindness type")

// BlindnessType is the form of colour vision to simulate.
type BlindnessType int

const (
	// Normal is trichromatic vision with no limitation.
	Normal BlindnessType = iota
	// Protanopia is the absence of red-sensitive cones.
	Protanopia
	// Protanomaly is weakened red sensitivity.
	Protanomaly
	// Deuteranopia is the absence of green-sensitive cones.
	Deuteranopia
	// Deuteranomaly is weakened green sensitivity.
	Deuteranomaly
	// Tritanopia is the absence of blue-sensitive cones.
	Tritanopia
	// Tritanomaly is weakened blue sensitivity.
	Tritanomaly
	// Achromatopsia is the absence of colour perception.
	Achromatopsia
	// Achromatomaly is strongly reduced colour perception.
	Achromatomaly
)

var blindnessNames = [...]string{
	Normal:        "normal",
	Protanopia:    "protanopia",
	Protanomaly:   "protanomaly",
	Deuteranopia:  "deuteranopia",
	Deuteranomaly: "deuteranomaly",
	Tritanopia:    "tritanopia",
	Tritanomaly:   "tritanomaly",
	Achromatopsia: "achromatopsia",
	Achromatomaly: "achromatomaly",
}

var blindnessDescriptions = [...]string{
	Normal:        "No colour limitations",
	Protanopia:    "Red-green deficiency hindering the perception of red hues",
	Protanomaly:   "Red-green abnormality hindering the perception of red hues",
	Deuteranopia:  "Red-green deficiency hindering the perception of green hues",
	Deuteranomaly: "Red-green abnormality hindering the perception of green hues",
	Tritanopia:    "Blue-yellow deficiency",
	Tritanomaly:   "Blue-yellow abnormality",
	Achromatopsia: "Deficiency affecting all hues",
	Achromatomaly: "Abnormality affecting all hues",
}

// aliases maps additional accepted names onto a BlindnessType.
var aliases = map[string]BlindnessType{
	"none":         Normal,
	"trichromat":   Normal,
	"protan":       Protanopia,
	"deutan":       Deuteranopia,
	"tritan":       Tritanopia,
	"achromat":     Achromatopsia,
	"monochromacy": Achromatopsia,
}

// BlindnessTypes returns every BlindnessType in declaration order.
func BlindnessTypes() []BlindnessType {
	types := make([]BlindnessType, len(blindnessNames))
	for i := range types {
		types[i] = BlindnessType(i)
	}
	return types
}

// ParseBlindnessType parses a case-insensitive type name or alias.
func ParseBlindnessType(s string) (BlindnessType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range blindnessNames {
		if n == name {
			return BlindnessType(i), nil
		}
	}
	if t, ok := aliases[name]; ok {
		return t, nil
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownBlindnessType, s)
}

// Valid reports whether t is one of the defined types.
func (t BlindnessType) Valid() bool {
	return t >= Normal && int(t) < len(blindnessNames)
}

// String returns the string representation of a BlindnessType.
func (t BlindnessType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return blindnessNames[t]
}

// Description returns a short human-readable description.
func (t BlindnessType) Description() string {
	if !t.Valid() {
		return ""
	}
	return blindnessDescriptions[t]
}

// Deficiency returns the dichromatic class behind t. The second result is
// false for Normal and the achromatic types.
func (t BlindnessType) Deficiency() (Deficiency, bool) {
	switch t {
	case Protanopia, Protanomaly:
		return Protan, true
	case Deuteranopia, Deuteranomaly:
		return Deutan, true
	case Tritanopia, Tritanomaly:
		return Tritan, true
	default:
		return 0, false
	}
}

// IsAnomalous reports whether t is a partial (blended) variant.
func (t BlindnessType) IsAnomalous() bool {
	switch t {
	case Protanomaly, Deuteranomaly, Tritanomaly, Achromatomaly:
		return true
	default:
		return false
	}
}

// IsMonochrome reports whether t collapses colour to grey.
func (t BlindnessType) IsMonochrome() bool {
	return t == Achromatopsia || t == Achromatomaly
}

// MarshalText implements encoding.TextMarshaler.
func (t BlindnessType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBlindnessType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *BlindnessType) UnmarshalText(text []byte) error {
	parsed, err := ParseBlindnessType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
