package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/inclusive/internal/colour"
	"github.com/jmylchreest/inclusive/pkg/cvd"
)

// ErrUnsupportedFormat is returned for unknown or inapplicable output formats.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format is an output format.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatHex  Format = "hex"
	FormatRGB  Format = "rgb"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists all output formats.
func Formats() []Format {
	return []Format{FormatText, FormatHex, FormatRGB, FormatJSON, FormatYAML}
}

// ParseFormat parses a case-insensitive format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "yml" {
		return FormatYAML, nil
	}
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: text, hex, rgb, json, yaml)", ErrUnsupportedFormat, s)
}

// RenderOptions controls text rendering.
type RenderOptions struct {
	// Preview adds ANSI colour swatches.
	Preview bool
	// SwatchWidth is the swatch width in characters.
	SwatchWidth int
	// MaxWidth, when positive, wraps the description column to fit.
	MaxWidth int
}

// Simulation is one input colour simulated with one type of colour vision.
type Simulation struct {
	Input     cvd.RGBA          `json:"input" yaml:"input"`
	InputHex  string            `json:"input_hex" yaml:"input_hex"`
	Type      cvd.BlindnessType `json:"type" yaml:"type"`
	Output    cvd.RGBA          `json:"output" yaml:"output"`
	OutputHex string            `json:"output_hex" yaml:"output_hex"`
}

// NewSimulation simulates c with t.
func NewSimulation(c cvd.RGBA, t cvd.BlindnessType) Simulation {
	out := cvd.Simulate(c, t)
	return Simulation{
		Input:     c,
		InputHex:  colour.Hex(c),
		Type:      t,
		Output:    out,
		OutputHex: colour.Hex(out),
	}
}

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s is not a structured format", ErrUnsupportedFormat, f)
	}
}

// RenderSimulations writes simulated colours. Hex and rgb formats print one
// colour per line; text prints a table.
func RenderSimulations(w io.Writer, sims []Simulation, f Format, opts RenderOptions) error {
	switch f {
	case FormatJSON, FormatYAML:
		return Encode(w, sims, f)
	case FormatHex, FormatRGB:
		var b strings.Builder
		for _, s := range sims {
			value := s.OutputHex
			if f == FormatRGB {
				value = colour.RGBString(s.Output)
			}
			if opts.Preview {
				b.WriteString(colour.Swatch(s.Output, opts.SwatchWidth) + " ")
			}
			b.WriteString(value + "\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	case FormatText:
		table := NewTable([]string{"Input", "Type", "Output", "RGB"})
		for _, s := range sims {
			table.AddRow([]string{
				swatched(s.Input, s.InputHex, opts),
				s.Type.String(),
				swatched(s.Output, s.OutputHex, opts),
				colour.RGBString(s.Output),
			})
		}
		_, err := io.WriteString(w, table.Render())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// RenderReport writes a single-colour report.
func RenderReport(w io.Writer, r *Report, f Format, opts RenderOptions) error {
	switch f {
	case FormatJSON, FormatYAML:
		return Encode(w, r, f)
	case FormatText, FormatHex, FormatRGB:
		table := NewTable([]string{"Type", "Colour", "RGB", "ΔE", "Description"})
		for _, e := range r.Entries {
			table.AddRow([]string{
				e.Type.String(),
				swatched(e.Colour, e.Hex, opts),
				colour.RGBString(e.Colour),
				fmt.Sprintf("%.1f", e.Distance),
				e.Description,
			})
		}
		if opts.MaxWidth > 0 {
			table.SetColumnMaxWidth(4, descriptionWidth(opts.MaxWidth))
		}
		_, err := fmt.Fprintf(w, "Colour %s (%s)\n\n%s", swatched(r.Input, r.Hex, opts), colour.RGBString(r.Input), table.Render())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// RenderPair writes a pair check.
func RenderPair(w io.Writer, r *PairReport, f Format, opts RenderOptions) error {
	switch f {
	case FormatJSON, FormatYAML:
		return Encode(w, r, f)
	case FormatText, FormatHex, FormatRGB:
		table := NewTable([]string{"Type", "Foreground", "Background", "Contrast", "ΔE", "Result"})
		for _, e := range r.Entries {
			table.AddRow([]string{
				e.Type.String(),
				swatched(e.Foreground, e.ForegroundHex, opts),
				swatched(e.Background, e.BackgroundHex, opts),
				fmt.Sprintf("%.2f:1", e.Contrast),
				fmt.Sprintf("%.1f", e.Distance),
				verdict(e),
			})
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Foreground %s on background %s (minimum contrast %.2f:1, minimum ΔE %.1f)\n\n",
			colour.Hex(r.Foreground), colour.Hex(r.Background), r.MinContrast, r.MinDistance)
		b.WriteString(table.Render())
		if failures := r.Failures(); len(failures) > 0 {
			fmt.Fprintf(&b, "\n%d of %d checks failed\n", len(failures), len(r.Entries))
		} else {
			fmt.Fprintf(&b, "\nAll %d checks passed\n", len(r.Entries))
		}
		_, err := io.WriteString(w, b.String())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func verdict(e PairEntry) string {
	switch {
	case e.Passes():
		return "ok"
	case !e.PassesContrast && !e.Distinguishable:
		return "low contrast, indistinct"
	case !e.PassesContrast:
		return "low contrast"
	default:
		return "indistinct"
	}
}

// swatched labels a table cell with its hex code, drawn over the colour when
// previewing.
func swatched(c cvd.RGBA, hex string, opts RenderOptions) string {
	if !opts.Preview {
		return hex
	}
	return colour.SwatchWithText(c, hex, max(opts.SwatchWidth, len(hex)+2))
}

// descriptionWidth leaves room for the fixed columns of the report table.
func descriptionWidth(total int) int {
	const fixed = 60
	return max(total-fixed, 20)
}
