package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ZanzyTHEbar/voicetracer/internal/calibration"
	"github.com/ZanzyTHEbar/voicetracer/internal/config"
)

const calibrationFileName = "calibration.yaml"

func defaultCalibrationPath() (string, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, calibrationFileName), nil
}

func newCalibrationCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calibration",
		Short: "Manage calibration standards",
		Long: `Calibration standards are the human-typical and AI-typical reference
values each metric is scored against. Use "calibration init" to write the
defaults to a file, edit it, and pass it to "analyze --calibration".`,
	}
	cmd.AddCommand(newCalibrationInitCmd(a), newCalibrationShowCmd())
	return cmd
}

func newCalibrationInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [FILE]",
		Short: "Write the default standards to a file",
		Long:  `Write the default standards to FILE (.yaml, .yml or .json), or to $HOME/.voicetracer/calibration.yaml.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := defaultCalibrationPath()
			if len(args) == 1 {
				path, err = args[0], nil
			}
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("calibration file already exists: %s (use --force to overwrite)", path)
				}
			}
			if err := calibration.SaveFile(path, calibration.DefaultStandards()); err != nil {
				return err
			}
			a.logger.Info("Calibration written", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Calibration file created: %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newCalibrationShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [FILE]",
		Short: "Print standards from FILE, or the defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			standards := calibration.DefaultStandards()
			if len(args) == 1 {
				var err error
				if standards, err = calibration.LoadFile(args[0]); err != nil {
					return err
				}
			}

			data, err := yaml.Marshal(standards)
			if err != nil {
				return fmt.Errorf("marshal calibration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
