package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/inclusive/internal/colour"
	"github.com/jmylchreest/inclusive/internal/report"
	"github.com/jmylchreest/inclusive/pkg/cvd"
)

// simulateOptions holds flags for the simulate command.
type simulateOptions struct {
	typ cvd.BlindnessType
	all bool
}

func newSimulateCmd(a *app) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate <colour>...",
		Short: "Simulate colours for one type of colour vision",
		Long: `Simulate how one or more colours appear with a given type of colour vision.

Colours may be hex codes (#f80, #ff8800, #ff8800cc), rgb()/rgba() functions
or CSS colour names. The type defaults to the configured type (deuteranopia
unless set otherwise).

Types: normal, protanopia, protanomaly, deuteranopia, deuteranomaly,
tritanopia, tritanomaly, achromatopsia, achromatomaly.

Examples:
  # Simulate red for protanopia
  inclusive simulate --type protanopia '#ff0000'

  # Simulate several colours with swatches
  inclusive simulate -T tritanomaly --preview teal orange '#336699'

  # Simulate a colour for every type as JSON
  inclusive simulate --all -f json 'rgb(200, 30, 160)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, a, opts, args)
		},
	}

	cmd.Flags().VarP(newTypeValue(&opts.typ), "type", "T", "colour vision type to simulate")
	cmd.Flags().BoolVar(&opts.all, "all", false, "simulate every colour vision type")

	return cmd
}

// runSimulate executes the simulate command.
func runSimulate(cmd *cobra.Command, a *app, opts *simulateOptions, args []string) error {
	colours, err := parseColours(args)
	if err != nil {
		return err
	}

	types := []cvd.BlindnessType{a.cfg.Type}
	switch {
	case opts.all:
		types = cvd.BlindnessTypes()
	case cmd.Flags().Changed("type"):
		types = []cvd.BlindnessType{opts.typ}
	}

	sims := make([]report.Simulation, 0, len(colours)*len(types))
	for _, c := range colours {
		for _, t := range types {
			sim := report.NewSimulation(c, t)
			a.logger.Debug("simulated colour", "input", sim.InputHex, "type", t.String(), "output", sim.OutputHex)
			sims = append(sims, sim)
		}
	}

	out := cmd.OutOrStdout()
	if err := report.RenderSimulations(out, sims, a.cfg.Format, a.renderOptions(out)); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}

// parseColours parses every argument as a colour.
func parseColours(args []string) ([]cvd.RGBA, error) {
	colours := make([]cvd.RGBA, len(args))
	for i, arg := range args {
		c, err := colour.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid colour %q: %w", arg, err)
		}
		colours[i] = c
	}
	return colours, nil
}
