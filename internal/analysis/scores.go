package analysis

import (
	"encoding/json"
	"fmt"
)

// MetricScores holds one value per metric. Values from the engine are raw,
// each on its own scale; Normalized returns the parallel 0-1 view.
type MetricScores struct {
	Burstiness             float64
	LexicalDiversity       float64
	SyntacticComplexity    float64
	AIismLikelihood        float64
	FunctionWordRatio      float64
	DiscourseMarkerDensity float64
	InformationDensity     float64
	EpistemicHedging       float64
}

// Get returns the value for m, or 0 for an unknown metric.
func (s MetricScores) Get(m Metric) float64 {
	switch m {
	case Burstiness:
		return s.Burstiness
	case LexicalDiversity:
		return s.LexicalDiversity
	case SyntacticComplexity:
		return s.SyntacticComplexity
	case AIismLikelihood:
		return s.AIismLikelihood
	case FunctionWordRatio:
		return s.FunctionWordRatio
	case DiscourseMarkerDensity:
		return s.DiscourseMarkerDensity
	case InformationDensity:
		return s.InformationDensity
	case EpistemicHedging:
		return s.EpistemicHedging
	}
	return 0
}

// Set stores v for m. Unknown metrics are ignored.
func (s *MetricScores) Set(m Metric, v float64) {
	switch m {
	case Burstiness:
		s.Burstiness = v
	case LexicalDiversity:
		s.LexicalDiversity = v
	case SyntacticComplexity:
		s.SyntacticComplexity = v
	case AIismLikelihood:
		s.AIismLikelihood = v
	case FunctionWordRatio:
		s.FunctionWordRatio = v
	case DiscourseMarkerDensity:
		s.DiscourseMarkerDensity = v
	case InformationDensity:
		s.InformationDensity = v
	case EpistemicHedging:
		s.EpistemicHedging = v
	}
}

// Normalized maps every raw value onto 0-1 with Normalize.
func (s MetricScores) Normalized() MetricScores {
	var out MetricScores
	for _, m := range allMetrics {
		out.Set(m, Normalize(s.Get(m), m))
	}
	return out
}

// ToMap emits the flat encoding used by the dashboard and exporters:
// "<metric>" is the normalized value and "<metric>_raw" the raw one.
func (s MetricScores) ToMap() map[string]float64 {
	norm := s.Normalized()
	out := make(map[string]float64, 2*len(allMetrics))
	for _, m := range allMetrics {
		out[string(m)] = norm.Get(m)
		out[string(m)+"_raw"] = s.Get(m)
	}
	return out
}

// Values returns the raw values keyed by metric name.
func (s MetricScores) Values() map[string]float64 {
	out := make(map[string]float64, len(allMetrics))
	for _, m := range allMetrics {
		out[string(m)] = s.Get(m)
	}
	return out
}

func (s MetricScores) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToMap())
}

// UnmarshalJSON reads the "<metric>_raw" keys; normalized keys are derived
// data and ignored.
func (s *MetricScores) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decode metric scores: %w", err)
	}
	*s = MetricScores{}
	for _, metric := range allMetrics {
		s.Set(metric, m[string(metric)+"_raw"])
	}
	return nil
}
