package analysis

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric("epistemic_hedging")
	require.NoError(t, err)
	assert.Equal(t, EpistemicHedging, m)

	_, err = ParseMetric("sentiment")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestAllMetrics_ReturnsCopy(t *testing.T) {
	ms := AllMetrics()
	ms[0] = "mutated"
	assert.Equal(t, Burstiness, AllMetrics()[0])
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		metric   Metric
		raw      float64
		expected float64
	}{
		{name: "burstiness mid", metric: Burstiness, raw: 1.5, expected: 0.5},
		{name: "burstiness capped", metric: Burstiness, raw: 4, expected: 1},
		{name: "lexical passthrough", metric: LexicalDiversity, raw: 0.6, expected: 0.6},
		{name: "lexical clamped", metric: LexicalDiversity, raw: 1.2, expected: 1},
		{name: "syntactic passthrough", metric: SyntacticComplexity, raw: 0.45, expected: 0.45},
		{name: "ai-ism inverted", metric: AIismLikelihood, raw: 25, expected: 0.75},
		{name: "ai-ism floor", metric: AIismLikelihood, raw: 150, expected: 0},
		{name: "function words mid", metric: FunctionWordRatio, raw: 0.55, expected: 0.5},
		{name: "function words below floor", metric: FunctionWordRatio, raw: 0.3, expected: 0},
		{name: "discourse markers", metric: DiscourseMarkerDensity, raw: 15, expected: 0.5},
		{name: "information inverted", metric: InformationDensity, raw: 0.4, expected: 0.6},
		{name: "hedging mid", metric: EpistemicHedging, raw: 0.09, expected: 0.5},
		{name: "hedging high raw", metric: EpistemicHedging, raw: 0.2, expected: 0},
		{name: "nan", metric: Burstiness, raw: math.NaN(), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw, tt.metric)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.Equal(t, got, Normalize(tt.raw, tt.metric))
		})
	}
}

func TestHumanDirection(t *testing.T) {
	assert.InDelta(t, 0.8, HumanDirection(FunctionWordRatio, 0.2), 1e-9)
	assert.Equal(t, 0.2, HumanDirection(Burstiness, 0.2))
	assert.Equal(t, 0.2, HumanDirection(DiscourseMarkerDensity, 0.2))
}

func TestMetricScores_ToMapAndJSON(t *testing.T) {
	s := MetricScores{Burstiness: 1.5, AIismLikelihood: 25}

	m := s.ToMap()
	assert.Equal(t, 1.5, m["burstiness_raw"])
	assert.InDelta(t, 0.5, m["burstiness"], 1e-9)
	assert.InDelta(t, 0.75, m["ai_ism_likelihood"], 1e-9)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var back MetricScores
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

func TestCalculateDeltas(t *testing.T) {
	original := MetricScores{Burstiness: 1.0, AIismLikelihood: 10, EpistemicHedging: 0.10}
	edited := MetricScores{Burstiness: 0.4, AIismLikelihood: 40, EpistemicHedging: 0.05}

	d := CalculateDeltas(original, edited)

	assert.InDelta(t, -0.6, d.Get(Burstiness).Delta, 1e-9)
	assert.InDelta(t, -20.0, d.Get(Burstiness).PctChange, 1e-9)
	assert.InDelta(t, 30.0, d.Get(AIismLikelihood).Delta, 1e-9)
	assert.InDelta(t, 30.0, d.Get(AIismLikelihood).PctChange, 1e-9)
	assert.InDelta(t, -0.05, d.Get(EpistemicHedging).Delta, 1e-9)
	assert.InDelta(t, -33.3, d.Get(EpistemicHedging).PctChange, 1e-9)
	assert.Equal(t, MetricDelta{}, d.Get(LexicalDiversity))

	flat := d.ToMap()
	assert.Len(t, flat, 16)
	assert.InDelta(t, -0.6, flat["burstiness_delta"], 1e-9)
	assert.InDelta(t, 30.0, flat["ai_ism_likelihood_pct_change"], 1e-9)
}

func TestCalculateDeltas_SignConvention(t *testing.T) {
	a := MetricScores{Burstiness: 0.2, LexicalDiversity: 0.9}
	b := MetricScores{Burstiness: 0.8, LexicalDiversity: 0.1}

	forward := CalculateDeltas(a, b)
	backward := CalculateDeltas(b, a)
	for _, m := range AllMetrics() {
		assert.InDelta(t, -forward.Get(m).Delta, backward.Get(m).Delta, 1e-9, "metric %s", m)
	}
	assert.Greater(t, forward.Get(Burstiness).Delta, 0.0)
	assert.Less(t, forward.Get(LexicalDiversity).Delta, 0.0)
}

func TestMetricDeltas_JSON(t *testing.T) {
	d := CalculateDeltas(MetricScores{Burstiness: 1}, MetricScores{Burstiness: 2})

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var flat map[string]float64
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.Equal(t, 1.0, flat["burstiness_delta"])

	var back MetricDeltas
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}

func TestGenerateChangeNarratives(t *testing.T) {
	tests := []struct {
		name     string
		metric   Metric
		delta    MetricDelta
		expected string
	}{
		{
			name:     "burstiness drop",
			metric:   Burstiness,
			delta:    MetricDelta{Delta: -0.6, PctChange: -20},
			expected: "Sentence length variation decreased by 20%. AI editing standardized your sentence lengths for clarity and consistency.",
		},
		{
			name:     "burstiness rise",
			metric:   Burstiness,
			delta:    MetricDelta{Delta: 0.3, PctChange: 10},
			expected: "Sentence variation increased by 10%. This suggests more natural, diverse sentence structures.",
		},
		{
			name:     "burstiness at drop threshold",
			metric:   Burstiness,
			delta:    MetricDelta{Delta: -0.3, PctChange: -10},
			expected: "Minimal change in sentence length variation.",
		},
		{
			name:     "lexical drop",
			metric:   LexicalDiversity,
			delta:    MetricDelta{Delta: -0.2, PctChange: -20},
			expected: "Vocabulary diversity decreased by 20%. AI editing replaced varied vocabulary with common academic phrases.",
		},
		{
			name:     "syntactic rise",
			metric:   SyntacticComplexity,
			delta:    MetricDelta{Delta: 0.15, PctChange: 15},
			expected: "Syntactic complexity increased by 15%. The edited version uses more sophisticated structures.",
		},
		{
			name:     "ai-ism rise",
			metric:   AIismLikelihood,
			delta:    MetricDelta{Delta: 30, PctChange: 30},
			expected: "AI-ism markers increased by 30%. The edited version contains significantly more AI-characteristic phrases and patterns.",
		},
		{
			name:     "ai-ism small rise is unchanged",
			metric:   AIismLikelihood,
			delta:    MetricDelta{Delta: 0.2, PctChange: 0.2},
			expected: "AI-ism markers remained largely unchanged.",
		},
		{
			name:     "ai-ism fall",
			metric:   AIismLikelihood,
			delta:    MetricDelta{Delta: -5, PctChange: -5},
			expected: "AI-ism markers decreased by 5%. The edits introduced some more natural, human-like language.",
		},
		{
			name:     "hedging fall",
			metric:   EpistemicHedging,
			delta:    MetricDelta{Delta: -0.05, PctChange: -33.3},
			expected: "Epistemic hedging decreased by 33%. AI editing removed qualifiers and made claims sound more certain.",
		},
		{
			name:     "discourse markers rise",
			metric:   DiscourseMarkerDensity,
			delta:    MetricDelta{Delta: 6, PctChange: 20},
			expected: "Discourse markers increased by 20%. AI editing added explicit signposting such as 'moreover' and 'furthermore'.",
		},
		{
			name:     "function words steady",
			metric:   FunctionWordRatio,
			delta:    MetricDelta{Delta: 0.02, PctChange: 2},
			expected: "Minimal change in function word usage.",
		},
		{
			name:     "information density fall",
			metric:   InformationDensity,
			delta:    MetricDelta{Delta: -0.1, PctChange: -10},
			expected: "Information density decreased by 10%. AI editing traded specific content for more generic wording.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateChangeNarratives(MetricDeltas{tt.metric: tt.delta})
			assert.Len(t, got, len(AllMetrics()))
			assert.Equal(t, tt.expected, got[string(tt.metric)])
		})
	}
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		name      string
		metric    Metric
		value     float64
		wantLevel string
		wantText  string
	}{
		{name: "low", metric: Burstiness, value: 0.1, wantLevel: LevelLow, wantText: "Machine-like uniformity"},
		{name: "medium boundary", metric: Burstiness, value: 0.33, wantLevel: LevelMedium, wantText: "Moderate variation"},
		{name: "high boundary", metric: Burstiness, value: 0.67, wantLevel: LevelHigh, wantText: "Human-like natural variation"},
		{name: "hedging medium", metric: EpistemicHedging, value: 0.5, wantLevel: LevelMedium, wantText: "Moderately hedged"},
		{name: "unknown metric", metric: Metric("tone"), value: 0.9, wantLevel: LevelHigh, wantText: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.metric, tt.value)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantText, got.Interpretation)
		})
	}
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, len(AllMetrics()))
	for i, m := range AllMetrics() {
		assert.Equal(t, m, defs[i].Metric)
		assert.NotEmpty(t, defs[i].Formula)
		assert.Greater(t, defs[i].RangeMax, defs[i].RangeMin)
	}

	d, ok := DefinitionOf(AIismLikelihood)
	require.True(t, ok)
	assert.Equal(t, 15.0, d.OptimalValue)
	assert.Equal(t, 100.0, d.RangeMax)
}

func TestAnalyzeRhythm(t *testing.T) {
	original := "Go now. The question of how artificial intelligence affects writing is complex and multifaceted for learners."
	edited := "We write well. We read well. We talk well."

	r, err := AnalyzeRhythm(original, edited, DefaultRhythmThresholds())
	require.NoError(t, err)

	assert.InDelta(t, 0.75, r.Original.BurstinessNorm, 1e-9)
	assert.Equal(t, PatternHumanVariation, r.Original.Pattern)
	assert.Equal(t, 0.0, r.Edited.BurstinessNorm)
	assert.Equal(t, PatternAIEdited, r.Edited.Pattern)
	assert.InDelta(t, -0.75, r.Delta, 1e-9)
	assert.Equal(t, InsightDrop, r.Insight)
	assert.Contains(t, r.InsightText, "0.75")
	assert.True(t, r.ReliabilityWarning)
	assert.Equal(t, []float64{2, 14}, r.Original.SentenceLengths)
	assert.Equal(t, []float64{0, 0}, r.Edited.Fluctuation)
}

func TestAnalyzeRhythm_Insights(t *testing.T) {
	long := "The question of how artificial intelligence affects the writing of young learners is complex " +
		"and it deserves careful attention from teachers parents and researchers who study language every single day."
	varied := "Go now. " + long
	slightlyLess := "Go home now. " + long

	r, err := AnalyzeRhythm(varied, slightlyLess, DefaultRhythmThresholds())
	require.NoError(t, err)
	assert.Equal(t, InsightModerateReduction, r.Insight)
	assert.Equal(t, PatternHumanVariation, r.Edited.Pattern)

	r, err = AnalyzeRhythm(slightlyLess, varied, DefaultRhythmThresholds())
	require.NoError(t, err)
	assert.Equal(t, InsightMaintained, r.Insight)
}

func TestFluctuation(t *testing.T) {
	assert.Empty(t, fluctuation([]float64{5}))
	assert.Equal(t, []float64{0.857, 0.857}, fluctuation([]float64{2, 14, 2}))
	assert.Equal(t, []float64{0}, fluctuation([]float64{0, 0}))
}

func TestRhythmThresholds_Validate(t *testing.T) {
	tests := []struct {
		name    string
		t       RhythmThresholds
		wantErr bool
	}{
		{name: "defaults", t: DefaultRhythmThresholds()},
		{name: "inverted cutoffs", t: RhythmThresholds{AICutoff: 0.5, HumanCutoff: 0.5, DeltaCutoff: 0.1}, wantErr: true},
		{name: "out of range", t: RhythmThresholds{AICutoff: 0.3, HumanCutoff: 1.5, DeltaCutoff: 0.1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.t.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidThresholds)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
