package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/inclusive/internal/report"
	"github.com/jmylchreest/inclusive/pkg/cvd"
)

// typeInfo describes a colour vision type for listing.
type typeInfo struct {
	Name        string `json:"name" yaml:"name"`
	Deficiency  string `json:"deficiency,omitempty" yaml:"deficiency,omitempty"`
	Anomalous   bool   `json:"anomalous" yaml:"anomalous"`
	Description string `json:"description" yaml:"description"`
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported colour vision types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listTypes(cmd.OutOrStdout(), a.cfg.Format)
		},
	}
}

func listTypes(out io.Writer, format report.Format) error {
	types := cvd.BlindnessTypes()
	infos := make([]typeInfo, len(types))
	for i, t := range types {
		infos[i] = typeInfo{
			Name:        t.String(),
			Anomalous:   t.IsAnomalous(),
			Description: t.Description(),
		}
		if d, ok := t.Deficiency(); ok {
			infos[i].Deficiency = d.String()
		} else if t.IsMonochrome() {
			infos[i].Deficiency = "achromat"
		}
	}

	switch format {
	case report.FormatJSON, report.FormatYAML:
		return report.Encode(out, infos, format)
	default:
		table := report.NewTable([]string{"Type", "Class", "Description"})
		for _, info := range infos {
			table.AddRow([]string{info.Name, info.Deficiency, info.Description})
		}
		_, err := fmt.Fprint(out, table.Render())
		return err
	}
}
