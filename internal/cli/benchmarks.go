package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/voicetracer/internal/analysis"
	"github.com/ZanzyTHEbar/voicetracer/internal/calibration"
)

func newBenchmarksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "benchmarks",
		Short: "Show the published reference corpora",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			benchmarks := calibration.Benchmarks()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprint(w, "Metric")
			for _, b := range benchmarks {
				fmt.Fprintf(w, "\t%s", b.Name)
			}
			fmt.Fprintln(w)

			for _, m := range analysis.AllMetrics() {
				fmt.Fprint(w, m.Label())
				for _, b := range benchmarks {
					fmt.Fprintf(w, "\t%.2f", b.Values[string(m)])
				}
				fmt.Fprintln(w)
			}

			fmt.Fprint(w, "Source")
			for _, b := range benchmarks {
				fmt.Fprintf(w, "\t%s", b.Source)
			}
			fmt.Fprintln(w)
			return w.Flush()
		},
	}
}
