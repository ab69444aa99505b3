package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/voicetracer/internal/analysis"
)

// WriteMarkdown writes a human-readable report.
func WriteMarkdown(w io.Writer, r Report) error {
	res := r.Result
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", Title)
	fmt.Fprintf(&b, "- **Generated:** %s\n", r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- **Document pair:** `%s`\n", res.DocPairID)
	fmt.Fprintf(&b, "- **Method version:** %s\n\n", res.MethodVersion)

	b.WriteString("## Text Statistics\n\n")
	b.WriteString("| Statistic | Original | Edited | Delta |\n|---|---:|---:|---:|\n")
	o, e := res.Original.Metadata, res.Edited.Metadata
	fmt.Fprintf(&b, "| Word Count | %d | %d | %+d |\n", o.WordCount, e.WordCount, e.WordCount-o.WordCount)
	fmt.Fprintf(&b, "| Character Count | %d | %d | %+d |\n", o.CharCount, e.CharCount, e.CharCount-o.CharCount)
	fmt.Fprintf(&b, "| Sentence Count | %d | %d | %+d |\n\n", o.SentenceCount, e.SentenceCount, e.SentenceCount-o.SentenceCount)

	b.WriteString("## Metric Comparison\n\n")
	b.WriteString("| Metric | Original | Edited | Delta | % Change |\n|---|---:|---:|---:|---:|\n")
	for _, m := range analysis.AllMetrics() {
		d := res.Deltas.Get(m)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %+.1f%% |\n",
			m.Label(),
			formatFloat(res.Original.Metrics.Get(m)),
			formatFloat(res.Edited.Metrics.Get(m)),
			formatFloat(d.Delta),
			d.PctChange)
	}
	b.WriteString("\n")

	b.WriteString("## What Changed\n\n")
	for _, m := range analysis.AllMetrics() {
		if text, ok := res.Narratives[string(m)]; ok {
			fmt.Fprintf(&b, "- **%s:** %s\n", m.Label(), text)
		}
	}
	b.WriteString("\n")

	if p := r.Calibration; p != nil {
		b.WriteString("## Calibration\n\n")
		b.WriteString("| Metric | Original | Edited | Verdict |\n|---|---|---|---|\n")
		for _, m := range analysis.AllMetrics() {
			key := string(m)
			fmt.Fprintf(&b, "| %s | %.2f (%s) | %.2f (%s) | %s |\n",
				m.Label(),
				p.Scores.Adjusted.Original[key], p.Labels.Adjusted.Original[key],
				p.Scores.Adjusted.Edited[key], p.Labels.Adjusted.Edited[key],
				p.Verdicts[key])
		}
		fmt.Fprintf(&b, "\n_%s_\n\n", p.Notes.Scale)
	}

	if rh := res.Rhythm; rh != nil {
		b.WriteString("## Sentence Rhythm\n\n")
		fmt.Fprintf(&b, "- **Original:** %s (burstiness %.3f, %d sentences)\n",
			rh.Original.Pattern, rh.Original.BurstinessNorm, rh.Original.SentenceCount)
		fmt.Fprintf(&b, "- **Edited:** %s (burstiness %.3f, %d sentences)\n",
			rh.Edited.Pattern, rh.Edited.BurstinessNorm, rh.Edited.SentenceCount)
		fmt.Fprintf(&b, "\n%s\n", rh.InsightText)
		if rh.ReliabilityWarning {
			b.WriteString("\n> Fewer than five sentences in one document; the rhythm comparison is unreliable.\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## AI-isms Detected\n\n")
	if len(res.AIisms) == 0 {
		b.WriteString("_No AI-isms detected._\n")
	}
	for _, a := range res.AIisms {
		fmt.Fprintf(&b, "- **%s** (%s): %s\n", a.Phrase, a.Category, escapeMarkdown(a.Context))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	return nil
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
