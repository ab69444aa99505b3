package analysis

import (
	"errors"
	"fmt"

	"github.com/ZanzyTHEbar/voicetracer/internal/stats"
	"github.com/ZanzyTHEbar/voicetracer/internal/textproc"
)

const (
	PatternHumanVariation    = "Human-like Variation"
	PatternModerateVariation = "Moderate Variation"
	PatternAIUniformity      = "AI-like Uniformity"
	PatternAIEdited          = "Mixed/AI-edited Pattern"

	InsightDrop              = "drop"
	InsightModerateReduction = "moderate_reduction"
	InsightMaintained        = "maintained"

	minReliableSentenceCount = 5
)

var ErrInvalidThresholds = errors.New("invalid rhythm thresholds")

// RhythmThresholds classify normalized burstiness.
type RhythmThresholds struct {
	AICutoff    float64 `json:"ai_cutoff" yaml:"ai_cutoff"`
	HumanCutoff float64 `json:"human_cutoff" yaml:"human_cutoff"`
	DeltaCutoff float64 `json:"delta_cutoff" yaml:"delta_cutoff"`
}

func DefaultRhythmThresholds() RhythmThresholds {
	return RhythmThresholds{AICutoff: 0.34, HumanCutoff: 0.45, DeltaCutoff: 0.08}
}

// Validate requires cutoffs within 0-1 and HumanCutoff above AICutoff.
func (t RhythmThresholds) Validate() error {
	for name, v := range map[string]float64{
		"ai_cutoff":    t.AICutoff,
		"human_cutoff": t.HumanCutoff,
		"delta_cutoff": t.DeltaCutoff,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s=%v outside [0,1]", ErrInvalidThresholds, name, v)
		}
	}
	if t.HumanCutoff <= t.AICutoff {
		return fmt.Errorf("%w: human_cutoff must exceed ai_cutoff", ErrInvalidThresholds)
	}
	return nil
}

// DocumentRhythm is the sentence-length profile of one document.
type DocumentRhythm struct {
	SentenceLengths []float64 `json:"sentence_lengths"`
	Fluctuation     []float64 `json:"fluctuation"`
	SentenceCount   int       `json:"sentence_count"`
	AvgWords        float64   `json:"avg_words"`
	BurstinessNorm  float64   `json:"burstiness_norm"`
	Pattern         string    `json:"pattern"`
}

// Rhythm compares the sentence-length profiles of a document pair.
type Rhythm struct {
	Original           DocumentRhythm   `json:"original"`
	Edited             DocumentRhythm   `json:"edited"`
	Delta              float64          `json:"delta"`
	Insight            string           `json:"insight"`
	InsightText        string           `json:"insight_text"`
	ReliabilityWarning bool             `json:"reliability_warning"`
	Thresholds         RhythmThresholds `json:"thresholds"`
}

// ProfileRhythm builds the sentence-length profile of text using the crude
// sentence split.
func ProfileRhythm(text string, t RhythmThresholds) DocumentRhythm {
	sentences := textproc.SplitSentencesSimple(text)
	lengths := stats.SentenceLengths(sentences)

	dr := DocumentRhythm{
		SentenceLengths: lengths,
		Fluctuation:     fluctuation(lengths),
		SentenceCount:   len(lengths),
		AvgWords:        round(stats.Mean(lengths), 3),
	}
	if mean := stats.Mean(lengths); len(lengths) >= 2 && mean > 0 {
		dr.BurstinessNorm = round(min(stats.StdDev(lengths)/mean, 1), 3)
	}
	dr.Pattern = classifyRhythm(dr.BurstinessNorm, t)
	return dr
}

// fluctuation is the absolute step between consecutive sentence lengths,
// relative to the longest sentence.
func fluctuation(lengths []float64) []float64 {
	if len(lengths) < 2 {
		return []float64{}
	}
	longest := 0.0
	for _, l := range lengths {
		longest = max(longest, l)
	}
	out := make([]float64, len(lengths)-1)
	if longest == 0 {
		return out
	}
	for i := 1; i < len(lengths); i++ {
		step := lengths[i] - lengths[i-1]
		if step < 0 {
			step = -step
		}
		out[i-1] = round(step/longest, 3)
	}
	return out
}

func classifyRhythm(norm float64, t RhythmThresholds) string {
	switch {
	case norm >= t.HumanCutoff:
		return PatternHumanVariation
	case norm >= t.AICutoff:
		return PatternModerateVariation
	default:
		return PatternAIUniformity
	}
}

// AnalyzeRhythm profiles both documents and describes how editing changed
// their sentence rhythm.
func AnalyzeRhythm(original, edited string, t RhythmThresholds) (Rhythm, error) {
	if err := t.Validate(); err != nil {
		return Rhythm{}, err
	}

	r := Rhythm{
		Original:   ProfileRhythm(original, t),
		Edited:     ProfileRhythm(edited, t),
		Thresholds: t,
	}
	r.Delta = round(r.Edited.BurstinessNorm-r.Original.BurstinessNorm, 3)
	r.ReliabilityWarning = min(r.Original.SentenceCount, r.Edited.SentenceCount) < minReliableSentenceCount

	switch {
	case r.Delta <= -t.DeltaCutoff:
		r.Edited.Pattern = PatternAIEdited
		r.Insight = InsightDrop
		r.InsightText = fmt.Sprintf("Burstiness drop detected: AI editing reduced burstiness by %.2f. "+
			"This indicates more uniform, machine-like sentence structure. "+
			"Consider restoring some original sentence variety.", -r.Delta)
	case r.Delta < 0:
		r.Insight = InsightModerateReduction
		r.InsightText = fmt.Sprintf("Moderate reduction: Burstiness decreased by %.2f. "+
			"Some natural flow may have been smoothed out by AI editing.", -r.Delta)
	default:
		r.Insight = InsightMaintained
		r.InsightText = "Variation maintained or improved: Your edited text preserves natural burstiness patterns."
	}
	return r, nil
}
