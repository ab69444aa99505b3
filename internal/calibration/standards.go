// Package calibration scores metric values against human and AI reference
// points and keeps per-session reference overrides.
package calibration

import (
	"errors"
	"fmt"
	"maps"
	"math"

	"github.com/ZanzyTHEbar/voicetracer/internal/analysis"
)

var ErrInvalidStandards = errors.New("invalid calibration standards")

// Standards holds a human-typical and an AI-typical reference value per
// metric, keyed by metric name. A missing key reads as 0.
type Standards struct {
	Human map[string]float64 `json:"human" yaml:"human"`
	AI    map[string]float64 `json:"ai" yaml:"ai"`
}

// Reference returns the (human, ai) pair for m.
func (s Standards) Reference(m analysis.Metric) (human, ai float64) {
	return s.Human[string(m)], s.AI[string(m)]
}

// Set replaces the reference pair for m.
func (s *Standards) Set(m analysis.Metric, human, ai float64) {
	if s.Human == nil {
		s.Human = make(map[string]float64)
	}
	if s.AI == nil {
		s.AI = make(map[string]float64)
	}
	s.Human[string(m)] = human
	s.AI[string(m)] = ai
}

// Clone returns a deep copy.
func (s Standards) Clone() Standards {
	return Standards{
		Human: cloneOrEmpty(s.Human),
		AI:    cloneOrEmpty(s.AI),
	}
}

func cloneOrEmpty(m map[string]float64) map[string]float64 {
	if m == nil {
		return make(map[string]float64)
	}
	return maps.Clone(m)
}

// Validate rejects unknown metric names and non-finite values.
func (s Standards) Validate() error {
	for side, values := range map[string]map[string]float64{"human": s.Human, "ai": s.AI} {
		for key, v := range values {
			if _, err := analysis.ParseMetric(key); err != nil {
				return fmt.Errorf("%w: %s: unknown metric %q", ErrInvalidStandards, side, key)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s.%s is not a finite number", ErrInvalidStandards, side, key)
			}
		}
	}
	return nil
}

// DefaultStandards takes human references from the unassisted L2 corpus and
// AI references from the ChatGPT-edited corpus.
func DefaultStandards() Standards {
	human, _ := BenchmarkByName(BenchmarkL2Unassisted)
	ai, _ := BenchmarkByName(BenchmarkAIEdited)

	var s Standards
	for _, m := range analysis.AllMetrics() {
		s.Set(m, scaleBenchmark(m, human.Values[string(m)]), scaleBenchmark(m, ai.Values[string(m)]))
	}
	return s
}

// scaleBenchmark converts benchmark values reported on a different scale.
// Syntactic complexity is published as average sentence length and is capped
// at 1.
func scaleBenchmark(m analysis.Metric, v float64) float64 {
	if m == analysis.SyntacticComplexity && v > 1 {
		return min(v/aslBenchmarkScale, 1)
	}
	return v
}

const aslBenchmarkScale = 30.0
