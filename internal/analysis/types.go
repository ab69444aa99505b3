package analysis

import (
	"time"

	"github.com/ZanzyTHEbar/voicetracer/internal/textproc"
)

// MethodVersion identifies the metric formulas used to produce a result.
const MethodVersion = "1.0"

// DocumentResult is one side of an analyzed pair.
type DocumentResult struct {
	Metrics  MetricScores          `json:"metrics"`
	Metadata textproc.TextMetadata `json:"metadata"`
}

// AnalysisResult is the full comparison of an original document and its
// edited version.
type AnalysisResult struct {
	DocPairID     string            `json:"doc_pair_id"`
	MethodVersion string            `json:"method_version"`
	CalculatedAt  time.Time         `json:"calculated_at"`
	Original      DocumentResult    `json:"original"`
	Edited        DocumentResult    `json:"edited"`
	Deltas        MetricDeltas      `json:"deltas"`
	Narratives    map[string]string `json:"narratives"`
	AIisms        []AIism           `json:"ai_isms"`
	Rhythm        *Rhythm           `json:"rhythm,omitempty"`
}

// DocumentAnalysis is the single-document view.
type DocumentAnalysis struct {
	Metrics         MetricScores              `json:"metrics"`
	Metadata        textproc.TextMetadata     `json:"metadata"`
	Interpretations map[string]Interpretation `json:"interpretations"`
	AIisms          []AIism                   `json:"ai_isms"`
}
