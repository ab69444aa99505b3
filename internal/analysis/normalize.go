package analysis

// Normalization constants. Each raw scale is mapped onto 0-1.
const (
	burstinessScale = 3.0

	aiIsmScale = 100.0

	functionWordFloor = 0.45
	functionWordSpan  = 0.20

	discourseMarkerScale = 30.0

	hedgingCeiling = 0.15
	hedgingSpan    = 0.12
)

// Normalize maps a raw metric value onto 0-1. The result is clamped and never
// NaN.
//
// Direction is not uniform. Most metrics come out with 1.0 meaning
// human-like, but function_word_ratio and discourse_marker_density grow with
// AI-like scaffolding. Use HumanDirection when every axis must point the same
// way.
func Normalize(raw float64, m Metric) float64 {
	var v float64
	switch m {
	case Burstiness:
		v = raw / burstinessScale
	case LexicalDiversity, SyntacticComplexity:
		v = raw
	case AIismLikelihood:
		v = 1 - min(raw/aiIsmScale, 1)
	case FunctionWordRatio:
		// AI direction: higher means more scaffolding.
		v = (raw - functionWordFloor) / functionWordSpan
	case DiscourseMarkerDensity:
		v = raw / discourseMarkerScale
	case InformationDensity:
		v = 1 - min(raw, 1)
	case EpistemicHedging:
		v = (hedgingCeiling - raw) / hedgingSpan
	default:
		v = raw
	}
	return clamp01(v)
}

// HumanDirection flips a normalized function_word_ratio so that 1.0 means
// human-like. Every other metric is returned as is.
func HumanDirection(m Metric, normalized float64) float64 {
	if m == FunctionWordRatio {
		return 1 - normalized
	}
	return normalized
}
