package colour

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/jmylchreest/inclusive/pkg/cvd"
)

// ErrInvalidColour is returned when a string cannot be parsed as a colour.
var ErrInvalidColour = errors.New("invalid colour")

var rgbFuncRegex = regexp.MustCompile(`^rgba?\(\s*([^,\s]+)\s*,\s*([^,\s]+)\s*,\s*([^,\s)]+)\s*(?:,\s*([^,\s)]+)\s*)?\)$`)

// Parse parses a colour string into an 8-bit colour.
// Supported formats:
//   - hex: #RGB, #RGBA, #RRGGBB, #RRGGBBAA (the # is optional)
//   - functional: rgb(r, g, b) and rgba(r, g, b, a)
//   - CSS/SVG colour names such as "cornflowerblue"
//
// In rgba(), alpha may be a fraction in [0, 1], a percentage or an 8-bit value.
func Parse(s string) (cvd.RGBA, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return cvd.RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColour)
	}

	if strings.HasPrefix(value, "rgb") {
		return parseRGBFunc(value)
	}
	if named, ok := colornames.Map[value]; ok {
		return FromColor(named), nil
	}
	return parseHex(value)
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) cvd.RGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex parses #RGB, #RGBA, #RRGGBB and #RRGGBBAA, with or without the hash.
func parseHex(hex string) (cvd.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 || len(hex) == 4 {
		expanded := make([]byte, 0, len(hex)*2)
		for i := range len(hex) {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	}
	if len(hex) != 6 && len(hex) != 8 {
		return cvd.RGBA{}, fmt.Errorf("%w: %q is not a hex colour or known colour name", ErrInvalidColour, hex)
	}

	channels := [4]int{255, 255, 255, 255}
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return cvd.RGBA{}, fmt.Errorf("%w: bad hex component %q", ErrInvalidColour, hex[i*2:i*2+2])
		}
		channels[i] = int(v)
	}

	return cvd.RGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

func parseRGBFunc(value string) (cvd.RGBA, error) {
	matches := rgbFuncRegex.FindStringSubmatch(value)
	if matches == nil {
		return cvd.RGBA{}, fmt.Errorf("%w: malformed %q", ErrInvalidColour, value)
	}

	var channels [3]int
	for i := range channels {
		v, err := strconv.Atoi(matches[i+1])
		if err != nil || v < 0 || v > 255 {
			return cvd.RGBA{}, fmt.Errorf("%w: component %q must be an integer in [0, 255]", ErrInvalidColour, matches[i+1])
		}
		channels[i] = v
	}

	alpha := 255
	if matches[4] != "" {
		a, err := parseAlpha(matches[4])
		if err != nil {
			return cvd.RGBA{}, err
		}
		alpha = a
	}

	return cvd.RGBA{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

func parseAlpha(s string) (int, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil || v < 0 || v > 100 {
			return 0, fmt.Errorf("%w: alpha %q must be a percentage in [0%%, 100%%]", ErrInvalidColour, s)
		}
		return int(math.Round(v / 100 * 255)), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 255 {
		return 0, fmt.Errorf("%w: alpha %q out of range", ErrInvalidColour, s)
	}
	if v <= 1 {
		return int(math.Round(v * 255)), nil
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: alpha %q must be a fraction or an integer", ErrInvalidColour, s)
	}
	return int(v), nil
}
