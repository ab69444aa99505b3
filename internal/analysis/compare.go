package analysis

import (
	"encoding/json"
	"fmt"
	"math"
)

// MetricDelta is the signed change of one metric, edited minus original.
type MetricDelta struct {
	Delta     float64 `json:"delta"`
	PctChange float64 `json:"pct_change"`
}

// MetricDeltas holds a MetricDelta for every metric.
type MetricDeltas map[Metric]MetricDelta

// CalculateDeltas diffs raw values. PctChange is relative to the metric's
// scale maximum, not to the original value.
func CalculateDeltas(original, edited MetricScores) MetricDeltas {
	out := make(MetricDeltas, len(allMetrics))
	for _, m := range allMetrics {
		delta := edited.Get(m) - original.Get(m)
		pct := 0.0
		if scale := m.ScaleMax(); scale != 0 {
			pct = delta / scale * 100
		}
		out[m] = MetricDelta{
			Delta:     round(delta, 3),
			PctChange: round(pct, 1),
		}
	}
	return out
}

// Get returns the delta for m; missing metrics read as zero.
func (d MetricDeltas) Get(m Metric) MetricDelta {
	return d[m]
}

// ToMap emits "<metric>_delta" and "<metric>_pct_change" keys.
func (d MetricDeltas) ToMap() map[string]float64 {
	out := make(map[string]float64, 2*len(allMetrics))
	for _, m := range allMetrics {
		md := d[m]
		out[string(m)+"_delta"] = md.Delta
		out[string(m)+"_pct_change"] = md.PctChange
	}
	return out
}

func (d MetricDeltas) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}

func (d *MetricDeltas) UnmarshalJSON(data []byte) error {
	var flat map[string]float64
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("decode metric deltas: %w", err)
	}
	out := make(MetricDeltas, len(allMetrics))
	for _, m := range allMetrics {
		out[m] = MetricDelta{
			Delta:     flat[string(m)+"_delta"],
			PctChange: flat[string(m)+"_pct_change"],
		}
	}
	*d = out
	return nil
}

type narrativeRule struct {
	fallAt, riseAt float64
	fall, rise     string
	steady         string
}

var narrativeRules = map[Metric]narrativeRule{
	Burstiness: {
		fallAt: -0.3, riseAt: 0.2,
		fall:   "Sentence length variation decreased by %.0f%%. AI editing standardized your sentence lengths for clarity and consistency.",
		rise:   "Sentence variation increased by %.0f%%. This suggests more natural, diverse sentence structures.",
		steady: "Minimal change in sentence length variation.",
	},
	LexicalDiversity: {
		fallAt: -0.15, riseAt: 0.1,
		fall:   "Vocabulary diversity decreased by %.0f%%. AI editing replaced varied vocabulary with common academic phrases.",
		rise:   "Vocabulary diversity increased by %.0f%%. This is rare but suggests the editor maintained or expanded vocabulary.",
		steady: "Minimal change in vocabulary diversity.",
	},
	SyntacticComplexity: {
		fallAt: -0.1, riseAt: 0.1,
		fall:   "Syntactic complexity decreased by %.0f%%. AI editing simplified sentence structures, possibly removing original complexity.",
		rise:   "Syntactic complexity increased by %.0f%%. The edited version uses more sophisticated structures.",
		steady: "Minimal change in syntactic complexity.",
	},
	AIismLikelihood: {
		fallAt: -0.1, riseAt: 0.2,
		fall:   "AI-ism markers decreased by %.0f%%. The edits introduced some more natural, human-like language.",
		rise:   "AI-ism markers increased by %.0f%%. The edited version contains significantly more AI-characteristic phrases and patterns.",
		steady: "AI-ism markers remained largely unchanged.",
	},
	FunctionWordRatio: {
		fallAt: -0.03, riseAt: 0.03,
		fall:   "Function word ratio decreased by %.0f%%. The edited version leans on content words rather than grammatical scaffolding.",
		rise:   "Function word ratio increased by %.0f%%. AI editing added grammatical scaffolding around your content.",
		steady: "Minimal change in function word usage.",
	},
	DiscourseMarkerDensity: {
		fallAt: -3.0, riseAt: 3.0,
		fall:   "Discourse markers decreased by %.0f%%. The edited version relies more on implicit flow between ideas.",
		rise:   "Discourse markers increased by %.0f%%. AI editing added explicit signposting such as 'moreover' and 'furthermore'.",
		steady: "Minimal change in discourse marker density.",
	},
	InformationDensity: {
		fallAt: -0.05, riseAt: 0.05,
		fall:   "Information density decreased by %.0f%%. AI editing traded specific content for more generic wording.",
		rise:   "Information density increased by %.0f%%. The edited version is more concrete and specific.",
		steady: "Minimal change in information density.",
	},
	EpistemicHedging: {
		fallAt: -0.01, riseAt: 0.01,
		fall:   "Epistemic hedging decreased by %.0f%%. AI editing removed qualifiers and made claims sound more certain.",
		rise:   "Epistemic hedging increased by %.0f%%. The edited version qualifies its claims more carefully.",
		steady: "Minimal change in epistemic hedging.",
	},
}

// GenerateChangeNarratives explains each metric's change in one or two
// sentences, keyed by metric name.
func GenerateChangeNarratives(d MetricDeltas) map[string]string {
	out := make(map[string]string, len(allMetrics))
	for _, m := range allMetrics {
		rule := narrativeRules[m]
		md := d.Get(m)
		switch {
		case md.Delta < rule.fallAt:
			out[string(m)] = fmt.Sprintf(rule.fall, math.Abs(md.PctChange))
		case md.Delta > rule.riseAt:
			out[string(m)] = fmt.Sprintf(rule.rise, md.PctChange)
		default:
			out[string(m)] = rule.steady
		}
	}
	return out
}
