// Package report compares colours across every simulated form of colour
// vision and renders the results as text, JSON or YAML.
package report

import (
	"github.com/jmylchreest/inclusive/internal/colour"
	"github.com/jmylchreest/inclusive/pkg/cvd"
)

// Entry is a colour as perceived with one type of colour vision.
type Entry struct {
	Type        cvd.BlindnessType `json:"type" yaml:"type"`
	Description string            `json:"description" yaml:"description"`
	Colour      cvd.RGBA          `json:"colour" yaml:"colour"`
	Hex         string            `json:"hex" yaml:"hex"`
	// Distance is the CIEDE2000 difference from the input colour.
	Distance float64 `json:"distance" yaml:"distance"`
}

// Report is a single colour simulated under every BlindnessType.
type Report struct {
	Input   cvd.RGBA `json:"input" yaml:"input"`
	Hex     string   `json:"hex" yaml:"hex"`
	Entries []Entry  `json:"entries" yaml:"entries"`
}

// Build simulates c under all types, in declaration order.
func Build(c cvd.RGBA) *Report {
	results := cvd.SimulateAll(c)
	entries := make([]Entry, len(results))
	for i, r := range results {
		entries[i] = Entry{
			Type:        r.Type,
			Description: r.Type.Description(),
			Colour:      r.Colour,
			Hex:         colour.Hex(r.Colour),
			Distance:    colour.Distance(c, r.Colour),
		}
	}

	return &Report{
		Input:   c,
		Hex:     colour.Hex(c),
		Entries: entries,
	}
}

// Get returns the entry for a type, if present.
func (r *Report) Get(t cvd.BlindnessType) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Type == t {
			return e, true
		}
	}
	return Entry{}, false
}
