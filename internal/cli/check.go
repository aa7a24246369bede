package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/inclusive/internal/colour"
	"github.com/jmylchreest/inclusive/internal/report"
	"github.com/jmylchreest/inclusive/pkg/cvd"
)

// ErrCheckFailed is returned when a colour pair fails for at least one type.
var ErrCheckFailed = errors.New("colour pair check failed")

// checkOptions holds flags for the check command.
type checkOptions struct {
	minContrast float64
	minDistance float64
	types       []cvd.BlindnessType
}

func newCheckCmd(a *app) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <foreground> <background>",
		Short: "Check a foreground/background pair stays legible",
		Long: `Check that a foreground/background pair keeps enough contrast and stays
distinguishable under every type of colour vision.

Each type must reach the WCAG contrast ratio (--min-contrast, default 4.5)
and a CIEDE2000 difference (--min-distance, default 10). The command exits
with an error if any type fails.

Examples:
  # Check red text on a green background
  inclusive check red green

  # Only check the red-green deficiencies, at AAA contrast
  inclusive check --only protanopia,deuteranopia --min-contrast 7 '#222' '#fafafa'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, a, opts, args)
		},
	}

	cmd.Flags().Float64Var(&opts.minContrast, "min-contrast", 0, "minimum WCAG contrast ratio (default from config, 4.5)")
	cmd.Flags().Float64Var(&opts.minDistance, "min-distance", 0, "minimum CIEDE2000 difference (default from config, 10)")
	cmd.Flags().Var(newTypeListValue(&opts.types), "only", "check only these types (comma-separated or repeated)")

	return cmd
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, a *app, opts *checkOptions, args []string) error {
	colours, err := parseColours(args)
	if err != nil {
		return err
	}

	pairOpts := a.cfg.PairOptions()
	if cmd.Flags().Changed("min-contrast") {
		pairOpts.MinContrast = opts.minContrast
	}
	if cmd.Flags().Changed("min-distance") {
		pairOpts.MinDistance = opts.minDistance
	}
	if pairOpts.MinContrast < 1 || pairOpts.MinContrast > 21 {
		return fmt.Errorf("minimum contrast must be between 1 and 21, got %v", pairOpts.MinContrast)
	}
	if pairOpts.MinDistance < 0 {
		return fmt.Errorf("minimum distance must not be negative, got %v", pairOpts.MinDistance)
	}
	pairOpts.Types = opts.types

	a.logger.Debug("checking pair",
		"foreground", args[0],
		"background", args[1],
		"level", colour.ContrastLevel(pairOpts.MinContrast))

	r := report.CheckPair(colours[0], colours[1], pairOpts)

	out := cmd.OutOrStdout()
	if err := report.RenderPair(out, r, a.cfg.Format, a.renderOptions(out)); err != nil {
		return fmt.Errorf("failed to format check: %w", err)
	}

	if failures := r.Failures(); len(failures) > 0 {
		for _, f := range failures {
			a.logger.Warn("pair fails", "type", f.Type.String(), "contrast", fmt.Sprintf("%.2f", f.Contrast), "distance", fmt.Sprintf("%.1f", f.Distance))
		}
		return fmt.Errorf("%w: %d of %d types", ErrCheckFailed, len(failures), len(r.Entries))
	}
	return nil
}
