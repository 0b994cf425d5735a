package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/takeoff/internal/logging"
	"github.com/ChicagoDave/takeoff/internal/server"
)

func (a *app) serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local JSON API over the calculators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("port") {
				port = a.cfg.Server.Port
			}
			logger, err := logging.New(a.cfg.Server.LogLevel, a.cfg.Server.Dev)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(port, logger).Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP server port, overriding server.port from the config")
	return cmd
}
