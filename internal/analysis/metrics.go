// Package analysis turns documents into stylometric metric bundles and
// compares an original document against its AI-edited counterpart.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Metric names one of the eight stylometric signals.
type Metric string

const (
	Burstiness             Metric = "burstiness"
	LexicalDiversity       Metric = "lexical_diversity"
	SyntacticComplexity    Metric = "syntactic_complexity"
	AIismLikelihood        Metric = "ai_ism_likelihood"
	FunctionWordRatio      Metric = "function_word_ratio"
	DiscourseMarkerDensity Metric = "discourse_marker_density"
	InformationDensity     Metric = "information_density"
	EpistemicHedging       Metric = "epistemic_hedging"
)

var ErrUnknownMetric = errors.New("unknown metric")

var allMetrics = []Metric{
	Burstiness,
	LexicalDiversity,
	SyntacticComplexity,
	AIismLikelihood,
	FunctionWordRatio,
	DiscourseMarkerDensity,
	InformationDensity,
	EpistemicHedging,
}

// AllMetrics returns every metric in canonical order.
func AllMetrics() []Metric { return slices.Clone(allMetrics) }

// ParseMetric resolves a metric from its wire name.
func ParseMetric(name string) (Metric, error) {
	m := Metric(name)
	if !slices.Contains(allMetrics, m) {
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
	return m, nil
}

func (m Metric) String() string { return string(m) }

// ScaleMax is the upper end of the metric's raw scale, used to express
// deltas as a percentage of range.
func (m Metric) ScaleMax() float64 {
	switch m {
	case Burstiness:
		return 3.0
	case AIismLikelihood:
		return 100.0
	case DiscourseMarkerDensity:
		return 30.0
	case EpistemicHedging:
		return 0.15
	default:
		return 1.0
	}
}

// Label is the display name.
func (m Metric) Label() string {
	switch m {
	case Burstiness:
		return "Burstiness"
	case LexicalDiversity:
		return "Lexical Diversity"
	case SyntacticComplexity:
		return "Syntactic Complexity"
	case AIismLikelihood:
		return "AI-ism Likelihood"
	case FunctionWordRatio:
		return "Function Word Ratio"
	case DiscourseMarkerDensity:
		return "Discourse Marker Density"
	case InformationDensity:
		return "Information Density"
	case EpistemicHedging:
		return "Epistemic Hedging"
	}
	return string(m)
}

// round rounds half to even at the given number of decimal places.
func round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	p := math.Pow(10, float64(places))
	return math.RoundToEven(x*p) / p
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
