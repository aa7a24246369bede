package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/jmylchreest/inclusive/internal/report"
	"github.com/jmylchreest/inclusive/pkg/cvd"
)

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
type: tritanomaly
format: json
preview: never
swatch_width: 4
min_contrast: 7
`)

	cfg, err := NewLoader().WithFile(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Type != cvd.Tritanomaly {
		t.Errorf("Type = %v, want tritanomaly", cfg.Type)
	}
	if cfg.Format != report.FormatJSON {
		t.Errorf("Format = %v, want json", cfg.Format)
	}
	if cfg.Preview != PreviewNever {
		t.Errorf("Preview = %v, want never", cfg.Preview)
	}
	if cfg.SwatchWidth != 4 {
		t.Errorf("SwatchWidth = %d, want 4", cfg.SwatchWidth)
	}
	if cfg.MinContrast != 7 {
		t.Errorf("MinContrast = %v, want 7", cfg.MinContrast)
	}
	if cfg.MinDistance != Default().MinDistance {
		t.Errorf("MinDistance = %v, want default %v", cfg.MinDistance, Default().MinDistance)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"type": "protan", "min_distance": 5}`)

	cfg, err := NewLoader().WithFile(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Type != cvd.Protanopia {
		t.Errorf("Type = %v, want protanopia", cfg.Type)
	}
	if cfg.MinDistance != 5 {
		t.Errorf("MinDistance = %v, want 5", cfg.MinDistance)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "")

	cfg, err := NewLoader().WithFile(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "unknown type", file: "c.yaml", content: "type: purple\n"},
		{name: "unknown field", file: "c.yaml", content: "colour: red\n"},
		{name: "bad format", file: "c.json", content: `{"format": "xml"}`},
		{name: "bad preview", file: "c.yaml", content: "preview: sometimes\n"},
		{name: "zero swatch", file: "c.yaml", content: "swatch_width: 0\n"},
		{name: "contrast too high", file: "c.yaml", content: "min_contrast: 30\n"},
		{name: "negative distance", file: "c.json", content: `{"min_distance": -1}`},
		{name: "unsupported extension", file: "c.toml", content: "type = 'normal'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			if _, err := NewLoader().WithFile(path).Load(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := NewLoader().WithFile(path).Load(); err == nil {
		t.Error("Load() with missing explicit file returned no error")
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", t.TempDir())

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "type: protanopia\nformat: rgb\n")

	cfg, err := NewLoader().WithFile(path).WithEnv().withLookup(envMap(map[string]string{
		EnvType:        "achromatomaly",
		EnvPreview:     "always",
		EnvSwatchWidth: "3",
		EnvMinContrast: "3",
		EnvMinDistance: "2.5",
	})).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Type != cvd.Achromatomaly {
		t.Errorf("Type = %v, want achromatomaly", cfg.Type)
	}
	if cfg.Format != report.FormatRGB {
		t.Errorf("Format = %v, want rgb from file", cfg.Format)
	}
	if cfg.Preview != PreviewAlways || cfg.SwatchWidth != 3 || cfg.MinContrast != 3 || cfg.MinDistance != 2.5 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	path := writeFile(t, "env.yaml", "format: yaml\n")

	cfg, err := NewLoader().WithEnv().withLookup(envMap(map[string]string{EnvConfig: path})).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Format != report.FormatYAML {
		t.Errorf("Format = %v, want yaml", cfg.Format)
	}

	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := NewLoader().WithEnv().withLookup(envMap(map[string]string{EnvConfig: missing})).Load(); err == nil {
		t.Error("Load() with missing INCLUSIVE_CONFIG file returned no error")
	}
}

func TestLoadEnvErrors(t *testing.T) {
	for _, key := range []string{EnvType, EnvFormat, EnvPreview, EnvSwatchWidth, EnvMinContrast, EnvMinDistance} {
		t.Run(key, func(t *testing.T) {
			path := writeFile(t, "config.yaml", "")
			_, err := NewLoader().WithFile(path).WithEnv().withLookup(envMap(map[string]string{key: "bogus"})).Load()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParsePreviewMode(t *testing.T) {
	tests := []struct {
		input string
		want  PreviewMode
	}{
		{"auto", PreviewAuto},
		{"", PreviewAuto},
		{"Always", PreviewAlways},
		{"true", PreviewAlways},
		{"never", PreviewNever},
		{"off", PreviewNever},
	}

	for _, tt := range tests {
		got, err := ParsePreviewMode(tt.input)
		if err != nil || got != tt.want {
			t.Errorf("ParsePreviewMode(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
	}
}
