// Command server runs the VoiceTracer HTTP API.
//
// @title           VoiceTracer API
// @version         1.0
// @description     Stylometric comparison of an original document and its AI-edited version.
// @license.name    MIT
// @BasePath        /
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"

	"github.com/ZanzyTHEbar/voicetracer/internal/api"
	"github.com/ZanzyTHEbar/voicetracer/internal/config"
	"github.com/ZanzyTHEbar/voicetracer/internal/monitoring"
	"github.com/ZanzyTHEbar/voicetracer/internal/version"
)

func main() {
	cfgFile := flag.String("config", "", "config file (default: $HOME/.voicetracer/config.yaml)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *cfgFile); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// newServer loads configuration and builds the API server with a JSON
// logger installed as the slog default.
func newServer(cfgFile string) (*api.Server, error) {
	cfg, err := config.Load(viper.New(), cfgFile)
	if err != nil {
		return nil, err
	}

	logger := monitoring.NewLogger(cfg.Log.SlogLevel())
	slog.SetDefault(logger.Logger)
	logger.SystemLogger("startup", version.String())

	return api.NewServer(cfg, logger), nil
}

func run(ctx context.Context, cfgFile string) error {
	srv, err := newServer(cfgFile)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
