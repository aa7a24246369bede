package report

import (
	"github.com/jmylchreest/inclusive/internal/colour"
	"github.com/jmylchreest/inclusive/pkg/cvd"
)

// PairOptions controls how a foreground/background pair is judged.
type PairOptions struct {
	// MinContrast is the WCAG contrast ratio each simulated pair must reach.
	MinContrast float64
	// MinDistance is the CIEDE2000 difference each simulated pair must reach
	// to count as distinguishable.
	MinDistance float64
	// Types limits the check to these types. Empty means all types.
	Types []cvd.BlindnessType
}

// DefaultPairOptions returns WCAG AA contrast and a clearly visible difference.
func DefaultPairOptions() PairOptions {
	return PairOptions{
		MinContrast: colour.ContrastAA,
		MinDistance: 10,
	}
}

// PairEntry is a foreground/background pair as perceived with one type of
// colour vision.
type PairEntry struct {
	Type            cvd.BlindnessType `json:"type" yaml:"type"`
	Foreground      cvd.RGBA          `json:"foreground" yaml:"foreground"`
	Background      cvd.RGBA          `json:"background" yaml:"background"`
	ForegroundHex   string            `json:"foreground_hex" yaml:"foreground_hex"`
	BackgroundHex   string            `json:"background_hex" yaml:"background_hex"`
	Contrast        float64           `json:"contrast" yaml:"contrast"`
	Distance        float64           `json:"distance" yaml:"distance"`
	PassesContrast  bool              `json:"passes_contrast" yaml:"passes_contrast"`
	Distinguishable bool              `json:"distinguishable" yaml:"distinguishable"`
}

// Passes reports whether the pair meets both thresholds.
func (e PairEntry) Passes() bool {
	return e.PassesContrast && e.Distinguishable
}

// PairReport is a foreground/background pair checked under several types.
type PairReport struct {
	Foreground  cvd.RGBA    `json:"foreground" yaml:"foreground"`
	Background  cvd.RGBA    `json:"background" yaml:"background"`
	MinContrast float64     `json:"min_contrast" yaml:"min_contrast"`
	MinDistance float64     `json:"min_distance" yaml:"min_distance"`
	Entries     []PairEntry `json:"entries" yaml:"entries"`
}

// CheckPair simulates fg and bg under each requested type and measures how
// well they can still be told apart.
func CheckPair(fg, bg cvd.RGBA, opts PairOptions) *PairReport {
	types := opts.Types
	if len(types) == 0 {
		types = cvd.BlindnessTypes()
	}

	entries := make([]PairEntry, 0, len(types))
	for _, t := range types {
		sfg := cvd.Simulate(fg, t)
		sbg := cvd.Simulate(bg, t)
		contrast := colour.ContrastRatio(sfg, sbg)
		distance := colour.Distance(sfg, sbg)
		entries = append(entries, PairEntry{
			Type:            t,
			Foreground:      sfg,
			Background:      sbg,
			ForegroundHex:   colour.Hex(sfg),
			BackgroundHex:   colour.Hex(sbg),
			Contrast:        contrast,
			Distance:        distance,
			PassesContrast:  contrast >= opts.MinContrast,
			Distinguishable: distance >= opts.MinDistance,
		})
	}

	return &PairReport{
		Foreground:  fg,
		Background:  bg,
		MinContrast: opts.MinContrast,
		MinDistance: opts.MinDistance,
		Entries:     entries,
	}
}

// AllPass reports whether every entry meets both thresholds.
func (r *PairReport) AllPass() bool {
	return len(r.Failures()) == 0
}

// Failures returns the entries that miss either threshold.
func (r *PairReport) Failures() []PairEntry {
	var failures []PairEntry
	for _, e := range r.Entries {
		if !e.Passes() {
			failures = append(failures, e)
		}
	}
	return failures
}
