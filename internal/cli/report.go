package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/inclusive/internal/colour"
	"github.com/jmylchreest/inclusive/internal/report"
)

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report <colour>",
		Short: "Show a colour under every type of colour vision",
		Long: `Show how a colour appears under every type of colour vision, with the
perceptual difference (CIEDE2000 ΔE) from the original.

Examples:
  # Report on a brand colour
  inclusive report '#e4002b'

  # Report as YAML
  inclusive report -f yaml crimson`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colour.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid colour %q: %w", args[0], err)
			}

			r := report.Build(c)
			a.logger.Debug("built report", "colour", r.Hex, "entries", len(r.Entries))

			out := cmd.OutOrStdout()
			if err := report.RenderReport(out, r, a.cfg.Format, a.renderOptions(out)); err != nil {
				return fmt.Errorf("failed to format report: %w", err)
			}
			return nil
		},
	}
}
