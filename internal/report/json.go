package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ZanzyTHEbar/voicetracer/internal/analysis"
	"github.com/ZanzyTHEbar/voicetracer/internal/calibration"
	"github.com/ZanzyTHEbar/voicetracer/internal/textproc"
	"github.com/ZanzyTHEbar/voicetracer/internal/version"
)

type jsonMetadata struct {
	Title         string    `json:"title"`
	Tool          string    `json:"tool"`
	Version       string    `json:"version"`
	GeneratedAt   time.Time `json:"generated_at"`
	DocPairID     string    `json:"doc_pair_id"`
	MethodVersion string    `json:"method_version"`
	CalculatedAt  time.Time `json:"calculated_at"`
}

type jsonTextStatistics struct {
	Original textproc.TextMetadata `json:"original"`
	Edited   textproc.TextMetadata `json:"edited"`
}

type jsonDocument struct {
	Metadata       jsonMetadata          `json:"metadata"`
	Original       analysis.MetricScores `json:"original"`
	Edited         analysis.MetricScores `json:"edited"`
	TextStatistics jsonTextStatistics    `json:"text_statistics"`
	Deltas         analysis.MetricDeltas `json:"deltas"`
	Narratives     map[string]string     `json:"narratives"`
	AIisms         []analysis.AIism      `json:"ai_isms"`
	Rhythm         *analysis.Rhythm      `json:"rhythm,omitempty"`
	Calibration    *calibration.Payload  `json:"calibration,omitempty"`
}

// WriteJSON writes an indented JSON document.
func WriteJSON(w io.Writer, r Report) error {
	res := r.Result
	doc := jsonDocument{
		Metadata: jsonMetadata{
			Title:         Title,
			Tool:          version.Name,
			Version:       version.Version,
			GeneratedAt:   r.GeneratedAt,
			DocPairID:     res.DocPairID,
			MethodVersion: res.MethodVersion,
			CalculatedAt:  res.CalculatedAt,
		},
		Original: res.Original.Metrics,
		Edited:   res.Edited.Metrics,
		TextStatistics: jsonTextStatistics{
			Original: res.Original.Metadata,
			Edited:   res.Edited.Metadata,
		},
		Deltas:      res.Deltas,
		Narratives:  res.Narratives,
		AIisms:      res.AIisms,
		Rhythm:      res.Rhythm,
		Calibration: r.Calibration,
	}
	if doc.AIisms == nil {
		doc.AIisms = []analysis.AIism{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}
