package cli

import (
	"bytes"
	"time"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/voicetracer/internal/analysis"
	"github.com/ZanzyTHEbar/voicetracer/internal/calibration"
	"github.com/ZanzyTHEbar/voicetracer/internal/report"
	"github.com/ZanzyTHEbar/voicetracer/internal/textproc"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		format          string
		calibrationFile string
		output          string
		fluctuation     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze ORIGINAL EDITED",
		Short: "Compare an original document with its AI-edited version",
		Long: `Analyze computes the eight stylometric metrics for both documents, the
change between them, and a calibrated verdict per metric.

Inputs may be .txt, .md, .pdf or .docx files. Pass "-" to read one of
them from stdin.`,
		Example: `  voicetracer analyze essay.docx essay_edited.docx
  voicetracer analyze draft.txt - --format md < edited.txt
  voicetracer analyze a.pdf b.pdf --format csv --output report.csv`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			standards := calibration.DefaultStandards()
			if calibrationFile != "" {
				if standards, err = calibration.LoadFile(calibrationFile); err != nil {
					return err
				}
			}

			texts, err := readDocuments(cmd.InOrStdin(), args[0], args[1])
			if err != nil {
				return err
			}
			for i, text := range texts {
				if ok, msg := textproc.ValidateLength(text, a.cfg.Analysis.MinWords); !ok {
					a.logger.Warn("Short input", "file", args[i], "detail", msg)
				}
			}

			start := time.Now()
			analyzer := analysis.NewAnalyzer(analysis.WithAIismLimit(a.cfg.Analysis.AIismLimit))
			var result *analysis.AnalysisResult
			if fluctuation {
				result, err = analyzer.AnalyzeWithRhythm(cmd.Context(), texts[0], texts[1], analysis.DefaultRhythmThresholds())
			} else {
				result, err = analyzer.Analyze(cmd.Context(), texts[0], texts[1])
			}
			if err != nil {
				return err
			}

			payload := calibration.BuildPayloadWithThreshold(result.Original.Metrics, result.Edited.Metrics,
				standards, a.cfg.Analysis.VoiceShiftThreshold)
			a.logger.Debug("Analysis completed",
				"doc_pair_id", result.DocPairID,
				"ai_isms", len(result.AIisms),
				"duration_ms", time.Since(start).Milliseconds(),
			)

			var buf bytes.Buffer
			if err := report.Write(&buf, f, report.New(result, &payload)); err != nil {
				return err
			}
			return writeOutput(cmd, output, buf.Bytes())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, csv or md")
	cmd.Flags().StringVarP(&calibrationFile, "calibration", "c", "", "calibration standards file (.json or .yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&fluctuation, "fluctuation", false, "include the sentence rhythm comparison")
	cmd.Flags().Float64("threshold", 0, "voice shift threshold (default from config)")
	_ = a.v.BindPFlag("analysis.voice_shift_threshold", cmd.Flags().Lookup("threshold"))

	return cmd
}
