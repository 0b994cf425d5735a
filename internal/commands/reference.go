package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/takeoff/internal/version"
	"github.com/ChicagoDave/takeoff/pkg/materials"
)

func (a *app) gradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "List concrete grades and their mix per cubic meter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "GRADE\tCEMENT (kg)\tSAND (m³)\tGRAVEL (m³)\tWATER (L)")
			for _, g := range materials.Grades {
				mix, _ := materials.LookupGrade(g)
				label := string(g)
				if g == materials.DefaultGrade {
					label += " (default)"
				}
				_, _ = fmt.Fprintf(w, "%s\t%.0f\t%.2f\t%.2f\t%.0f\n", label, mix.CementKg, mix.SandM3, mix.GravelM3, mix.WaterL)
			}
			return w.Flush()
		},
	}
}

func (a *app) gaugesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gauges",
		Short: "List rebar gauges and their weight per meter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "GAUGE\tKG/M")
			for _, g := range materials.Gauges {
				kg, _ := materials.GaugeWeight(g)
				_, _ = fmt.Fprintf(w, "#%d\t%.2f\n", g, kg)
			}
			return w.Flush()
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}
