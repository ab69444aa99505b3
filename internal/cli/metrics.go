package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/voicetracer/internal/analysis"
)

func newMetricsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics FILE",
		Short: "Print the metrics of a single document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			texts, err := readDocuments(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			analyzer := analysis.NewAnalyzer(analysis.WithAIismLimit(a.cfg.Analysis.AIismLimit))
			doc, err := analyzer.AnalyzeDocument(cmd.Context(), texts[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}
}
