package colour

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/inclusive/pkg/cvd"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Swatch returns a solid block of the colour, width characters wide, drawn
// with 24-bit ANSI background colour.
func Swatch(c cvd.RGBA, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return background(c) + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText returns a swatch with text centred over it. The text is
// black or white, whichever contrasts more with the colour.
func SwatchWithText(c cvd.RGBA, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := cvd.Opaque(255, 255, 255)
	if ContrastRatio(c, cvd.Opaque(0, 0, 0)) > ContrastRatio(c, fg) {
		fg = cvd.Opaque(0, 0, 0)
	}

	// Pad or truncate text to fit width.
	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return background(c) + foreground(fg) + displayText + ansiReset
}

// FormatWithSwatch formats a colour as its swatch followed by its hex code.
func FormatWithSwatch(c cvd.RGBA, width int) string {
	return fmt.Sprintf("%s %s", Swatch(c, width), Hex(c))
}

// StripANSI removes the escape sequences produced by this package.
func StripANSI(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "\033[")
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		end := strings.IndexByte(s[start:], 'm')
		if end < 0 {
			return b.String()
		}
		s = s[start+end+1:]
	}
}

func background(c cvd.RGBA) string {
	n := ToColor(c)
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, n.R, n.G, n.B, ansiSuffix)
}

func foreground(c cvd.RGBA) string {
	n := ToColor(c)
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, n.R, n.G, n.B, ansiSuffix)
}
