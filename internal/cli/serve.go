package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/voicetracer/internal/api"
	"github.com/ZanzyTHEbar/voicetracer/internal/monitoring"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := monitoring.NewLogger(a.cfg.Log.SlogLevel())
			return api.NewServer(a.cfg, logger).Run(ctx)
		},
	}

	cmd.Flags().Int("port", 0, "listen port (default from config)")
	cmd.Flags().String("mode", "", "gin mode: debug, release or test")
	_ = a.v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = a.v.BindPFlag("server.mode", cmd.Flags().Lookup("mode"))
	return cmd
}
