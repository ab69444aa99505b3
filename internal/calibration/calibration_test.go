package calibration

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/voicetracer/internal/analysis"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		human    float64
		ai       float64
		expected float64
	}{
		{name: "midpoint", value: 0.5, human: 1.0, ai: 0.0, expected: 0.5},
		{name: "at human reference", value: 1.23, human: 1.23, ai: 0.78, expected: 1},
		{name: "beyond human reference", value: 2.0, human: 1.0, ai: 0.0, expected: 1},
		{name: "beyond ai reference", value: -1, human: 1.0, ai: 0.0, expected: 0},
		{name: "inverted scale", value: 25, human: 5, ai: 85, expected: 0.75},
		{name: "degenerate references", value: 42, human: 0.3, ai: 0.3, expected: 0.5},
		{name: "degenerate at zero", value: -7, human: 0, ai: 0, expected: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Score(tt.value, tt.human, tt.ai), 1e-9)
		})
	}
}

func TestScore_MidpointIsModerate(t *testing.T) {
	s := Score(0.5, 1.0, 0.0)
	assert.Equal(t, 0.5, s)
	assert.Equal(t, LabelModerate, Label(s))
}

func TestLabel(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{1, LabelHumanLike},
		{0.66, LabelHumanLike},
		{0.659, LabelModerate},
		{0.33, LabelModerate},
		{0.329, LabelAILike},
		{0, LabelAILike},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Label(tt.score), "score %v", tt.score)
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		name      string
		original  float64
		edited    float64
		threshold float64
		expected  string
	}{
		{name: "large drop", original: 0.8, edited: 0.5, threshold: 0.05, expected: VerdictVoiceShift},
		{name: "small drop", original: 0.8, edited: 0.78, threshold: 0.05, expected: VerdictVoiceRetained},
		{name: "drop equal to threshold", original: 0.5, edited: 0.25, threshold: 0.25, expected: VerdictVoiceRetained},
		{name: "improvement", original: 0.4, edited: 0.9, threshold: 0.05, expected: VerdictVoiceRetained},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Verdict(tt.original, tt.edited, tt.threshold))
		})
	}
}

func TestDefaultStandards(t *testing.T) {
	s := DefaultStandards()
	require.NoError(t, s.Validate())

	human, ai := s.Reference(analysis.Burstiness)
	assert.Equal(t, 1.23, human)
	assert.Equal(t, 0.78, ai)

	human, ai = s.Reference(analysis.SyntacticComplexity)
	assert.InDelta(t, 0.54, human, 1e-9)
	assert.InDelta(t, 19.3/30, ai, 1e-9)

	human, ai = s.Reference(analysis.AIismLikelihood)
	assert.Equal(t, 3.1, human)
	assert.Equal(t, 78.5, ai)

	assert.Len(t, s.Human, len(analysis.AllMetrics()))
	assert.Len(t, s.AI, len(analysis.AllMetrics()))
}

func TestStandards_Validate(t *testing.T) {
	tests := []struct {
		name    string
		std     Standards
		wantErr bool
	}{
		{name: "empty", std: Standards{}},
		{name: "partial", std: Standards{Human: map[string]float64{"burstiness": 1.1}}},
		{name: "unknown metric", std: Standards{AI: map[string]float64{"sentiment": 0.2}}, wantErr: true},
		{name: "nan", std: Standards{Human: map[string]float64{"burstiness": math.NaN()}}, wantErr: true},
		{name: "inf", std: Standards{AI: map[string]float64{"epistemic_hedging": math.Inf(1)}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.std.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStandards)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStandards_MissingKeyReadsZero(t *testing.T) {
	s := Standards{Human: map[string]float64{"burstiness": 1.1}}
	human, ai := s.Reference(analysis.Burstiness)
	assert.Equal(t, 1.1, human)
	assert.Equal(t, 0.0, ai)

	human, ai = s.Reference(analysis.EpistemicHedging)
	assert.Equal(t, 0.0, human)
	assert.Equal(t, 0.0, ai)
}

func TestBenchmarks(t *testing.T) {
	bs := Benchmarks()
	require.Len(t, bs, 3)
	assert.Equal(t, BenchmarkL2Native, bs[0].Name)
	assert.Equal(t, "Agarwal et al. 2024", bs[0].Source)
	assert.Equal(t, "L2 learner writing without AI assistance", bs[1].Description)
	for _, b := range bs {
		assert.NotEmpty(t, b.Description, b.Name)
	}

	bs[0].Values["burstiness"] = 99
	again, ok := BenchmarkByName(BenchmarkL2Native)
	require.True(t, ok)
	assert.Equal(t, 1.45, again.Values["burstiness"])

	_, ok = BenchmarkByName("Unknown Corpus")
	assert.False(t, ok)
}

func TestScaleBenchmark(t *testing.T) {
	tests := []struct {
		name     string
		metric   analysis.Metric
		value    float64
		expected float64
	}{
		{name: "sentence length scaled", metric: analysis.SyntacticComplexity, value: 15, expected: 0.5},
		{name: "sentence length capped", metric: analysis.SyntacticComplexity, value: 42, expected: 1},
		{name: "already normalized", metric: analysis.SyntacticComplexity, value: 0.4, expected: 0.4},
		{name: "other metric untouched", metric: analysis.Burstiness, value: 42, expected: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scaleBenchmark(tt.metric, tt.value), 1e-9)
		})
	}
}

func TestSliderSpecs(t *testing.T) {
	specs := SliderSpecs()
	require.Len(t, specs, len(analysis.AllMetrics()))

	assert.Equal(t, SliderSpec{Key: "burstiness", Label: "Burstiness", Min: 0, Max: 3, Step: 0.01}, specs[0])
	assert.Equal(t, SliderSpec{Key: "ai_ism_likelihood", Label: "AI-ism Likelihood", Min: 0, Max: 100, Step: 1}, specs[3])
	assert.Equal(t, SliderSpec{Key: "discourse_marker_density", Label: "Discourse Marker Density", Min: 0, Max: 30, Step: 0.5}, specs[5])
	assert.Equal(t, 0.30, specs[7].Max)
}

func TestBuildPayload(t *testing.T) {
	original := analysis.MetricScores{Burstiness: 1.23, AIismLikelihood: 3.1}
	edited := analysis.MetricScores{Burstiness: 0.78, AIismLikelihood: 78.5}

	adjusted := DefaultStandards()
	adjusted.Set(analysis.EpistemicHedging, 0.1, 0.1)

	p := BuildPayload(original, edited, adjusted)

	assert.Equal(t, 1.0, p.Scores.Default.Original["burstiness"])
	assert.Equal(t, 0.0, p.Scores.Default.Edited["burstiness"])
	assert.Equal(t, LabelHumanLike, p.Labels.Default.Original["burstiness"])
	assert.Equal(t, LabelAILike, p.Labels.Adjusted.Edited["burstiness"])
	assert.Equal(t, VerdictVoiceShift, p.Verdicts["burstiness"])
	assert.Equal(t, VerdictVoiceShift, p.Verdicts["ai_ism_likelihood"])

	assert.Equal(t, 0.5, p.Scores.Adjusted.Original["epistemic_hedging"])
	assert.Equal(t, LabelModerate, p.Labels.Adjusted.Edited["epistemic_hedging"])
	assert.InDelta(t, 0.5-p.Scores.Default.Edited["epistemic_hedging"], p.Impact.Edited["epistemic_hedging"], 1e-9)
	assert.Equal(t, 0.0, p.Impact.Original["burstiness"])

	assert.Equal(t, DefaultVoiceShiftThreshold, p.Threshold)
	assert.Equal(t, noteScale, p.Notes.Scale)
	assert.Equal(t, noteImpact, p.Notes.Impact)
	for _, m := range analysis.AllMetrics() {
		assert.Contains(t, p.Verdicts, string(m))
	}

	adjusted.Human["burstiness"] = 50
	assert.Equal(t, 1.23, p.Adjusted.Human["burstiness"], "payload must not alias the caller's standards")
}

func TestStore_SessionIsolation(t *testing.T) {
	store := NewStore(time.Hour)

	custom := DefaultStandards()
	custom.Set(analysis.Burstiness, 2.0, 0.5)
	require.NoError(t, store.Put("session-a", custom))

	a := store.Get("session-a")
	b := store.Get("session-b")

	human, _ := a.Reference(analysis.Burstiness)
	assert.Equal(t, 2.0, human)
	human, _ = b.Reference(analysis.Burstiness)
	assert.Equal(t, 1.23, human)
	assert.Equal(t, 1, store.Len())

	a.Human["burstiness"] = 9
	human, _ = store.Get("session-a").Reference(analysis.Burstiness)
	assert.Equal(t, 2.0, human, "returned standards must be a copy")

	custom.Human["burstiness"] = 7
	human, _ = store.Get("session-a").Reference(analysis.Burstiness)
	assert.Equal(t, 2.0, human, "stored standards must be a copy")

	store.Reset("session-a")
	human, _ = store.Get("session-a").Reference(analysis.Burstiness)
	assert.Equal(t, 1.23, human)
	assert.Equal(t, 0, store.Len())
}

func TestStore_PutRejectsInvalid(t *testing.T) {
	store := NewStore(0)

	err := store.Put("s", Standards{Human: map[string]float64{"nope": 1}})
	assert.ErrorIs(t, err, ErrInvalidStandards)
	assert.Equal(t, 0, store.Len())
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(50 * time.Millisecond)

	custom := DefaultStandards()
	custom.Set(analysis.Burstiness, 2.0, 0.5)
	require.NoError(t, store.Put("s", custom))

	time.Sleep(120 * time.Millisecond)

	human, _ := store.Get("s").Reference(analysis.Burstiness)
	assert.Equal(t, 1.23, human)
}

func TestFileRoundTrip(t *testing.T) {
	custom := DefaultStandards()
	custom.Set(analysis.DiscourseMarkerDensity, 6.5, 21)

	for _, name := range []string{"calibration.json", "calibration.yaml", "nested/calibration.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, SaveFile(path, custom))

			loaded, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, custom, loaded)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	toml := filepath.Join(dir, "calibration.toml")
	require.NoError(t, os.WriteFile(toml, []byte("x = 1"), 0644))
	_, err = LoadFile(toml)
	assert.ErrorIs(t, err, ErrUnsupportedFileFormat)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"human": {"vibes": 1}}`), 0644))
	_, err = LoadFile(bad)
	assert.ErrorIs(t, err, ErrInvalidStandards)

	garbled := filepath.Join(dir, "garbled.yaml")
	require.NoError(t, os.WriteFile(garbled, []byte("human: [1, 2"), 0644))
	_, err = LoadFile(garbled)
	assert.ErrorIs(t, err, ErrInvalidStandards)

	assert.ErrorIs(t, SaveFile(filepath.Join(dir, "out.txt"), DefaultStandards()), ErrUnsupportedFileFormat)
}
