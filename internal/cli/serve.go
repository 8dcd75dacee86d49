package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sched-sim/api"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := api.NewSchedulerHandlerImpl(cfg, logger)
			return api.Serve(ctx, api.NewApp(handler, logger), cfg.Port, logger)
		},
	}

	cmd.Flags().IntVar(&port, "port", 9095, "Listen port (overrides config)")
	return cmd
}
