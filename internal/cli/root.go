// Package cli implements the voicetracer command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZanzyTHEbar/voicetracer/internal/config"
	"github.com/ZanzyTHEbar/voicetracer/internal/version"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	cfg     config.Config
	logger  *slog.Logger
}

// NewRootCmd builds the command tree. Each call has its own flag and
// config state.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "voicetracer",
		Short: "VoiceTracer - stylometric comparison of original and AI-edited writing",
		Long: `VoiceTracer measures eight stylometric signals that separate human
second-language writing from AI-edited writing, and shows how an edit
moved a document along each of them.

Scores describe style. They are not evidence of misconduct.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.voicetracer/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newAnalyzeCmd(a),
		newMetricsCmd(a),
		newBenchmarksCmd(),
		newCalibrationCmd(a),
		newConfigCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// init loads configuration and sets up stderr logging.
func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.SlogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("Using config file", "path", used)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Display the version number and build information for VoiceTracer.`,
		Args:  cobra.NoArgs,
		// Skip config loading so version works with a broken config file
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
