package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ZanzyTHEbar/voicetracer/internal/analysis"
)

const csvContextLimit = 100

// WriteCSV writes the sectioned spreadsheet layout: title, text statistics,
// metric comparison, then detected AI-isms and calibration when present.
func WriteCSV(w io.Writer, r Report) error {
	res := r.Result
	cw := csv.NewWriter(w)

	rows := [][]string{
		{Title},
		{"Generated:", r.GeneratedAt.Format(time.RFC3339)},
		{"Document Pair:", res.DocPairID},
		{},
		{"Text Statistics"},
		{"Metric", "Original", "Edited", "Delta", "% Change"},
		countRow("Word Count", res.Original.Metadata.WordCount, res.Edited.Metadata.WordCount),
		countRow("Character Count", res.Original.Metadata.CharCount, res.Edited.Metadata.CharCount),
		countRow("Sentence Count", res.Original.Metadata.SentenceCount, res.Edited.Metadata.SentenceCount),
		{},
		{"Metric Comparison"},
		{"Metric", "Original", "Edited", "Delta", "% Change"},
	}

	for _, m := range analysis.AllMetrics() {
		d := res.Deltas.Get(m)
		rows = append(rows, []string{
			m.Label(),
			formatFloat(res.Original.Metrics.Get(m)),
			formatFloat(res.Edited.Metrics.Get(m)),
			formatFloat(d.Delta),
			fmt.Sprintf("%+.1f%%", d.PctChange),
		})
	}

	if len(res.AIisms) > 0 {
		rows = append(rows, []string{}, []string{"AI-isms Detected"}, []string{"Phrase", "Category", "Context"})
		for _, a := range res.AIisms {
			rows = append(rows, []string{a.Phrase, string(a.Category), truncateRunes(a.Context, csvContextLimit)})
		}
	}

	if p := r.Calibration; p != nil {
		rows = append(rows, []string{}, []string{"Calibration"},
			[]string{"Metric", "Original Score", "Edited Score", "Original Label", "Edited Label", "Verdict"})
		for _, m := range analysis.AllMetrics() {
			key := string(m)
			rows = append(rows, []string{
				m.Label(),
				formatFloat(p.Scores.Adjusted.Original[key]),
				formatFloat(p.Scores.Adjusted.Edited[key]),
				p.Labels.Adjusted.Original[key],
				p.Labels.Adjusted.Edited[key],
				p.Verdicts[key],
			})
		}
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv report: %w", err)
	}
	return nil
}

func countRow(label string, original, edited int) []string {
	return []string{label, strconv.Itoa(original), strconv.Itoa(edited), strconv.Itoa(edited - original), ""}
}

// formatFloat rounds to three places and drops trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(round(v, 3), 'f', -1, 64)
}
