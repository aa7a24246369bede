// Package cli provides the command-line interface for inclusive.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/inclusive/internal/config"
	"github.com/jmylchreest/inclusive/internal/report"
	"github.com/jmylchreest/inclusive/internal/version"
)

// app holds state shared by all commands of one root command.
type app struct {
	cfg    config.Config
	logger hclog.Logger

	// Global flags.
	verbose    bool
	quiet      bool
	configPath string
	format     report.Format
	preview    config.PreviewMode
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		logger: hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "inclusive",
		Short: "Simulate how colours appear with colour vision deficiencies",
		Long: `Inclusive simulates how colours appear to people with colour vision
deficiencies: protanopia, deuteranopia and tritanopia, their anomalous
(partial) forms, and achromatopsia.

Use it to preview palette colours, compare a colour across every form of
colour vision, or check that a foreground/background pair stays legible.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.StringVar(&a.configPath, "config", "", fmt.Sprintf("config file (default %s)", config.DefaultPath))
	flags.VarP(newFormatValue(&a.format), "format", "f", "output format (text, hex, rgb, json, yaml)")
	flags.Var(newPreviewValue(&a.preview), "preview", "show colour swatches (auto, always, never)")
	flags.Lookup("preview").NoOptDefVal = string(config.PreviewAlways)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newSimulateCmd(a))
	rootCmd.AddCommand(newReportCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newTypesCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup configures logging and loads configuration before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)

	cfg, err := config.NewLoader().WithFile(a.configPath).WithEnv().Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("preview") {
		cfg.Preview = a.preview
	}
	a.cfg = cfg

	a.logger.Debug("configuration loaded",
		"type", cfg.Type,
		"format", cfg.Format,
		"preview", cfg.Preview,
		"min_contrast", cfg.MinContrast,
		"min_distance", cfg.MinDistance)
	return nil
}

// newLogger creates the CLI logger. Verbose logs at debug level, quiet only
// reports errors.
func newLogger(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "inclusive",
		Output: out,
		Level:  level,
	})
}

// renderOptions decides whether to show swatches for the given output.
func (a *app) renderOptions(out io.Writer) report.RenderOptions {
	opts := report.RenderOptions{SwatchWidth: a.cfg.SwatchWidth}

	fd, isTerminal := terminalFd(out)
	switch a.cfg.Preview {
	case config.PreviewAlways:
		opts.Preview = true
	case config.PreviewAuto:
		opts.Preview = isTerminal
	}
	if isTerminal {
		if width, _, err := term.GetSize(fd); err == nil {
			opts.MaxWidth = width
		}
	}
	return opts
}

// terminalFd reports whether out is a terminal, and its file descriptor.
func terminalFd(out io.Writer) (int, bool) {
	f, ok := out.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd()) // #nosec G115 - file descriptors fit in int
	return fd, term.IsTerminal(fd)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		// Version needs no configuration and must work with a broken config file.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
