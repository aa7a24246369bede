// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/inclusive/internal/cli"
	"github.com/jmylchreest/inclusive/internal/config"
)

// isolate points configuration at an empty temporary file so the user's
// own config and environment do not leak into tests.
func isolate(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv(config.EnvConfig, path)
	for _, key := range []string{config.EnvType, config.EnvFormat, config.EnvPreview, config.EnvSwatchWidth, config.EnvMinContrast, config.EnvMinDistance} {
		t.Setenv(key, "")
	}
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestSimulateCommand(t *testing.T) {
	isolate(t, "")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "protanopia", args: []string{"simulate", "--type", "protanopia", "#ff0000"}, want: "#908021\n"},
		{name: "default type", args: []string{"simulate", "red"}, want: "#a27a00\n"},
		{name: "short flag alias", args: []string{"simulate", "-T", "tritan", "rgb(255, 0, 0)"}, want: "#fd1700\n"},
		{name: "rgb format", args: []string{"simulate", "-T", "achromatopsia", "-f", "rgb", "#0000ff"}, want: "rgb(29, 29, 29)\n"},
		{name: "several colours", args: []string{"simulate", "-T", "normal", "#010203", "white"}, want: "#010203\n#ffffff\n"},
		{name: "alpha preserved", args: []string{"simulate", "-T", "protanopia", "#ffffff80"}, want: "#ffffff80\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, stderr, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error: %v (stderr: %s)", err, stderr)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestSimulateAllJSON(t *testing.T) {
	isolate(t, "")

	out, _, err := run(t, "simulate", "--all", "-f", "json", "#ff0000")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	var sims []struct {
		Type      string `json:"type"`
		OutputHex string `json:"output_hex"`
	}
	if err := json.Unmarshal([]byte(out), &sims); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(sims) != 9 {
		t.Fatalf("got %d simulations, want 9", len(sims))
	}
	if sims[1].Type != "protanopia" || sims[1].OutputHex != "#908021" {
		t.Errorf("sims[1] = %+v", sims[1])
	}
}

func TestSimulateErrors(t *testing.T) {
	isolate(t, "")

	tests := []struct {
		name string
		args []string
	}{
		{name: "no colour", args: []string{"simulate"}},
		{name: "bad colour", args: []string{"simulate", "notacolour"}},
		{name: "bad type", args: []string{"simulate", "--type", "purple", "red"}},
		{name: "bad format", args: []string{"simulate", "-f", "xml", "red"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := run(t, tt.args...); err == nil {
				t.Error("Execute() returned no error")
			}
		})
	}
}

func TestPreviewAlways(t *testing.T) {
	isolate(t, "")

	out, _, err := run(t, "simulate", "--preview", "-T", "normal", "red")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "\033[48;2;255;0;0m") || !strings.HasSuffix(out, "#ff0000\n") {
		t.Errorf("output = %q, want swatch and hex", out)
	}
}

func TestConfigFileAndEnv(t *testing.T) {
	isolate(t, "type: tritanopia\nformat: rgb\n")

	out, _, err := run(t, "simulate", "red")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if out != "rgb(253, 23, 0)\n" {
		t.Errorf("output = %q, want tritanopia in rgb", out)
	}

	t.Setenv(config.EnvFormat, "hex")
	out, _, err = run(t, "simulate", "red")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if out != "#fd1700\n" {
		t.Errorf("output = %q, want env format to override file", out)
	}
}

func TestInvalidConfig(t *testing.T) {
	isolate(t, "type: purple\n")

	_, _, err := run(t, "simulate", "red")
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Execute() error = %v, want ErrInvalidConfig", err)
	}
}

func TestReportCommand(t *testing.T) {
	isolate(t, "")

	out, _, err := run(t, "report", "#ff0000")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, want := range []string{"Colour #ff0000", "protanopia", "#908021", "achromatomaly"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	out, _, err = run(t, "report", "-f", "yaml", "#ff0000")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "type: deuteranomaly") {
		t.Errorf("YAML report missing deuteranomaly:\n%s", out)
	}
}

func TestCheckCommand(t *testing.T) {
	isolate(t, "")

	out, _, err := run(t, "check", "black", "white")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "All 9 checks passed") {
		t.Errorf("output missing pass summary:\n%s", out)
	}

	out, _, err = run(t, "check", "red", "green")
	if !errors.Is(err, cli.ErrCheckFailed) {
		t.Fatalf("Execute() error = %v, want ErrCheckFailed", err)
	}
	if !strings.Contains(out, "checks failed") {
		t.Errorf("output missing failure summary:\n%s", out)
	}
}

func TestCheckCommandOptions(t *testing.T) {
	isolate(t, "")

	out, _, err := run(t, "check", "-f", "json", "--only", "protanopia,deuteranopia", "--only", "normal", "--min-contrast", "1", "--min-distance", "0", "red", "green")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	var r struct {
		MinContrast float64 `json:"min_contrast"`
		Entries     []struct {
			Type string `json:"type"`
		} `json:"entries"`
	}
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if r.MinContrast != 1 {
		t.Errorf("min_contrast = %v, want 1", r.MinContrast)
	}
	var got []string
	for _, e := range r.Entries {
		got = append(got, e.Type)
	}
	if strings.Join(got, ",") != "protanopia,deuteranopia,normal" {
		t.Errorf("types = %v", got)
	}

	if _, _, err := run(t, "check", "--min-contrast", "25", "red", "green"); err == nil {
		t.Error("Execute() with contrast above 21 returned no error")
	}
}

func TestTypesCommand(t *testing.T) {
	isolate(t, "")

	out, _, err := run(t, "types")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, name := range []string{"normal", "protanopia", "deuteranomaly", "tritanopia", "achromatopsia"} {
		if !strings.Contains(out, name) {
			t.Errorf("types output missing %s", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	isolate(t, "")

	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.HasPrefix(out, "inclusive version") {
		t.Errorf("version output = %q", out)
	}
}

func TestVersionIgnoresInvalidConfig(t *testing.T) {
	isolate(t, "type: purple\n")

	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.HasPrefix(out, "inclusive version") {
		t.Errorf("version output = %q", out)
	}
}

func TestVerboseLogging(t *testing.T) {
	isolate(t, "")

	_, stderr, err := run(t, "--verbose", "simulate", "red")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(stderr, "configuration loaded") || !strings.Contains(stderr, "simulated colour") {
		t.Errorf("verbose stderr missing debug logs:\n%s", stderr)
	}

	_, stderr, err = run(t, "simulate", "red")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if strings.Contains(stderr, "configuration loaded") {
		t.Errorf("debug logs printed without --verbose:\n%s", stderr)
	}
}
