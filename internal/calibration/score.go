package calibration

import "math"

const (
	LabelHumanLike = "Human-like"
	LabelModerate  = "Moderate"
	LabelAILike    = "AI-like"

	VerdictVoiceShift    = "Voice shift detected"
	VerdictVoiceRetained = "Authorial voice retained"

	// DefaultVoiceShiftThreshold is how far the edited score may fall below
	// the original before the voice counts as shifted.
	DefaultVoiceShiftThreshold = 0.05
)

// Score places value on a 0-1 line from the AI reference (0) to the human
// reference (1). Equal references carry no signal and score exactly 0.5.
func Score(value, human, ai float64) float64 {
	if human == ai {
		return 0.5
	}
	s := (value - ai) / (human - ai)
	switch {
	case math.IsNaN(s) || s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}

// Label buckets a score.
func Label(score float64) string {
	switch {
	case score >= 0.66:
		return LabelHumanLike
	case score >= 0.33:
		return LabelModerate
	default:
		return LabelAILike
	}
}

// Verdict reports a voice shift when the edited score falls more than
// threshold below the original score.
func Verdict(original, edited, threshold float64) string {
	if edited < original-threshold {
		return VerdictVoiceShift
	}
	return VerdictVoiceRetained
}
