// Package commands builds the takeoff command tree.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/takeoff/internal/config"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	getenv     func(string) string
	cfg        *config.Config
}

// NewRootCmd creates the root command with all subcommands attached.
// getenv is consulted for TAKEOFF_* overrides after the config file loads.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	a := &app{getenv: getenv}

	rootCmd := &cobra.Command{
		Use:   "takeoff",
		Short: "Construction material takeoff calculator",
		Long: `takeoff computes construction materials from element geometry:
concrete mixes, reinforcing steel, excavation volumes, block walls and paint.

Run a single calculator with flags, work through the interactive forms, or
estimate a whole job described in a takeoff.yaml project.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(a.configPath, a.getenv)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			a.cfg = cfg
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultFile, "path to the config file")

	rootCmd.AddCommand(
		a.concreteCmd(),
		a.steelCmd(),
		a.excavationCmd(),
		a.blockCmd(),
		a.paintCmd(),
		a.interactiveCmd(),
		a.validateCmd(),
		a.estimateCmd(),
		a.exportCmd(),
		a.serveCmd(),
		a.gradesCmd(),
		a.gaugesCmd(),
		a.versionCmd(),
	)
	return rootCmd
}

func (a *app) jsonOutput() bool {
	return a.cfg != nil && a.cfg.Output.Format == config.FormatJSON
}
