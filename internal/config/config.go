// Package config loads user configuration from defaults, an optional YAML or
// JSON file and INCLUSIVE_* environment variables.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/inclusive/internal/report"
	"github.com/jmylchreest/inclusive/pkg/cvd"
)

// ErrInvalidConfig is returned when configuration values fail validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Environment variables read by WithEnv.
const (
	EnvConfig      = "INCLUSIVE_CONFIG"
	EnvType        = "INCLUSIVE_TYPE"
	EnvFormat      = "INCLUSIVE_FORMAT"
	EnvPreview     = "INCLUSIVE_PREVIEW"
	EnvSwatchWidth = "INCLUSIVE_SWATCH_WIDTH"
	EnvMinContrast = "INCLUSIVE_MIN_CONTRAST"
	EnvMinDistance = "INCLUSIVE_MIN_DISTANCE"
)

// DefaultPath is where the config file is looked for when none is given.
const DefaultPath = "~/.config/inclusive/config.yaml"

// PreviewMode controls when ANSI colour swatches are printed.
type PreviewMode string

// Preview modes.
const (
	PreviewAuto   PreviewMode = "auto"
	PreviewAlways PreviewMode = "always"
	PreviewNever  PreviewMode = "never"
)

// ParsePreviewMode parses a preview mode. "true"/"false" are accepted as
// always/never.
func ParsePreviewMode(s string) (PreviewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return PreviewAuto, nil
	case "always", "true", "on":
		return PreviewAlways, nil
	case "never", "false", "off":
		return PreviewNever, nil
	default:
		return "", fmt.Errorf("%w: preview mode %q (valid: auto, always, never)", ErrInvalidConfig, s)
	}
}

// Config holds user preferences shared by all commands.
type Config struct {
	// Type is the default colour vision type for the simulate command.
	Type cvd.BlindnessType `yaml:"type" json:"type"`
	// Format is the default output format.
	Format report.Format `yaml:"format" json:"format"`
	// Preview controls colour swatches.
	Preview PreviewMode `yaml:"preview" json:"preview"`
	// SwatchWidth is the swatch width in characters.
	SwatchWidth int `yaml:"swatch_width" json:"swatch_width"`
	// MinContrast is the WCAG contrast ratio the check command requires.
	MinContrast float64 `yaml:"min_contrast" json:"min_contrast"`
	// MinDistance is the CIEDE2000 difference the check command requires.
	MinDistance float64 `yaml:"min_distance" json:"min_distance"`
}

// Default returns the built-in configuration.
func Default() Config {
	pair := report.DefaultPairOptions()
	return Config{
		Type:        cvd.Deuteranopia,
		Format:      report.FormatHex,
		Preview:     PreviewAuto,
		SwatchWidth: 8,
		MinContrast: pair.MinContrast,
		MinDistance: pair.MinDistance,
	}
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if !c.Type.Valid() {
		return fmt.Errorf("%w: unknown type %d", ErrInvalidConfig, int(c.Type))
	}
	if _, err := report.ParseFormat(string(c.Format)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := ParsePreviewMode(string(c.Preview)); err != nil {
		return err
	}
	if c.SwatchWidth < 1 || c.SwatchWidth > 64 {
		return fmt.Errorf("%w: swatch width must be between 1 and 64, got %d", ErrInvalidConfig, c.SwatchWidth)
	}
	if c.MinContrast < 1 || c.MinContrast > 21 {
		return fmt.Errorf("%w: minimum contrast must be between 1 and 21, got %v", ErrInvalidConfig, c.MinContrast)
	}
	if c.MinDistance < 0 {
		return fmt.Errorf("%w: minimum distance must not be negative, got %v", ErrInvalidConfig, c.MinDistance)
	}
	return nil
}

// PairOptions returns the check thresholds as report options.
func (c Config) PairOptions() report.PairOptions {
	return report.PairOptions{MinContrast: c.MinContrast, MinDistance: c.MinDistance}
}

// Loader provides a fluent interface for assembling a Config.
type Loader struct {
	path   string
	useEnv bool
	lookup func(string) (string, bool)
}

// NewLoader creates a loader that starts from Default.
func NewLoader() *Loader {
	return &Loader{lookup: os.LookupEnv}
}

// WithFile reads the given config file. An empty path falls back to
// $INCLUSIVE_CONFIG (when WithEnv is set) and then DefaultPath; only an
// explicitly named file has to exist.
func (l *Loader) WithFile(path string) *Loader {
	l.path = path
	return l
}

// WithEnv applies INCLUSIVE_* environment variables over the file.
func (l *Loader) WithEnv() *Loader {
	l.useEnv = true
	return l
}

// withLookup replaces the environment source (useful for testing).
func (l *Loader) withLookup(lookup func(string) (string, bool)) *Loader {
	l.lookup = lookup
	return l
}

// Load assembles and validates the configuration.
func (l *Loader) Load() (Config, error) {
	cfg := Default()

	path, required := l.path, l.path != ""
	if !required && l.useEnv {
		if p, ok := l.lookup(EnvConfig); ok && p != "" {
			path, required = p, true
		}
	}
	if path == "" {
		path = DefaultPath
	}

	if err := readFile(&cfg, path, required); err != nil {
		return Config{}, err
	}
	if l.useEnv {
		if err := applyEnv(&cfg, l.lookup); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readFile merges the file at path into cfg. Fields missing from the file
// keep their current values.
func readFile(cfg *Config, path string, required bool) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("failed to expand config path %s: %w", path, err)
	}

	data, err := os.ReadFile(expanded) // #nosec G304 - User-specified config file, intended to be read
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(expanded)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: failed to parse YAML config %s: %w", ErrInvalidConfig, expanded, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("%w: failed to parse JSON config %s: %w", ErrInvalidConfig, expanded, err)
		}
	default:
		return fmt.Errorf("%w: unsupported config file extension %q (use .yaml, .yml or .json)", ErrInvalidConfig, ext)
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvType); ok && v != "" {
		t, err := cvd.ParseBlindnessType(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvType, err)
		}
		cfg.Type = t
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		f, err := report.ParseFormat(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvFormat, err)
		}
		cfg.Format = f
	}
	if v, ok := lookup(EnvPreview); ok && v != "" {
		m, err := ParsePreviewMode(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPreview, err)
		}
		cfg.Preview = m
	}
	if v, ok := lookup(EnvSwatchWidth); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvSwatchWidth, err)
		}
		cfg.SwatchWidth = n
	}
	if v, ok := lookup(EnvMinContrast); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvMinContrast, err)
		}
		cfg.MinContrast = f
	}
	if v, ok := lookup(EnvMinDistance); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvMinDistance, err)
		}
		cfg.MinDistance = f
	}
	return nil
}
