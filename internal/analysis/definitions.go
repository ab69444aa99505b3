package analysis

// Definition documents a metric for display.
type Definition struct {
	Metric             Metric  `json:"metric"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Formula            string  `json:"formula"`
	RangeMin           float64 `json:"range_min"`
	RangeMax           float64 `json:"range_max"`
	OptimalValue       float64 `json:"optimal_value"`
	InterpretationLow  string  `json:"interpretation_low"`
	InterpretationHigh string  `json:"interpretation_high"`
}

// Interpretation is the reading of one normalized value.
type Interpretation struct {
	Level          string `json:"level"`
	Interpretation string `json:"interpretation"`
}

const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

var definitions = map[Metric]Definition{
	Burstiness: {
		Name:               "Burstiness Index",
		Description:        "Sentence length variation (SD / mean)",
		Formula:            "σ(sentence_lengths) / μ(sentence_lengths)",
		RangeMax:           3.0,
		OptimalValue:       1.3,
		InterpretationLow:  "Machine-like uniformity; suggests AI editing standardized lengths",
		InterpretationHigh: "Human-like variation; indicates authentic, natural writing",
	},
	LexicalDiversity: {
		Name:               "Lexical Diversity",
		Description:        "Vocabulary richness (MTLD)",
		Formula:            "MTLD_normalized = (MTLD - 70) / 110",
		RangeMax:           1.0,
		OptimalValue:       0.65,
		InterpretationLow:  "Formulaic vocabulary; suggests AI standardization of word choice",
		InterpretationHigh: "Rich vocabulary; indicates authentic, varied expression",
	},
	SyntacticComplexity: {
		Name:               "Syntactic Complexity",
		Description:        "Sentence structure diversity (words/sent, subordination, modifiers)",
		Formula:            "SC = (ASL_norm × 0.4) + (Sub_ratio × 0.3) + (Mod_density × 0.3)",
		RangeMax:           1.0,
		OptimalValue:       0.65,
		InterpretationLow:  "Simple structures; suggests AI simplification for clarity",
		InterpretationHigh: "Complex structures; indicates authentic, sophisticated syntax",
	},
	AIismLikelihood: {
		Name:               "AI-ism Likelihood",
		Description:        "Frequency of AI-characteristic phrases and patterns",
		Formula:            "min((Σ category_score + passive_bonus) / 120 × 100, 100)",
		RangeMax:           100.0,
		OptimalValue:       15.0,
		InterpretationLow:  "Human-like characteristics; natural expression",
		InterpretationHigh: "AI-like characteristics; formulaic patterns detected",
	},
	FunctionWordRatio: {
		Name:               "Function Word Ratio",
		Description:        "Ratio of grammatical scaffolding words",
		Formula:            "function_words / total_words",
		RangeMax:           1.0,
		OptimalValue:       0.52,
		InterpretationLow:  "Content-heavy wording; more human-like efficiency",
		InterpretationHigh: "Over-scaffolded syntax; more AI-like",
	},
	DiscourseMarkerDensity: {
		Name:               "Discourse Marker Density",
		Description:        "Frequency of explicit logical connectors",
		Formula:            "(discourse_markers / total_words) * 1000",
		RangeMax:           50.0,
		OptimalValue:       10.0,
		InterpretationLow:  "Implicit flow; more human-like",
		InterpretationHigh: "Over-signposted structure; more AI-like",
	},
	InformationDensity: {
		Name:               "Information Density",
		Description:        "Specific content per word",
		Formula:            "(content_ratio * 0.5) + (unique_content_ratio * 0.3) + (proper_noun_density * 0.2)",
		RangeMax:           1.0,
		OptimalValue:       0.60,
		InterpretationLow:  "Verbose, low-specificity text; more AI-like",
		InterpretationHigh: "Concrete, efficient wording; more human-like",
	},
	EpistemicHedging: {
		Name:               "Epistemic Hedging Index",
		Description:        "Markers of uncertainty and humility",
		Formula:            "max(hedges + qualifiers - confidence, 0) / total_words",
		RangeMax:           0.20,
		OptimalValue:       0.10,
		InterpretationLow:  "Overconfident phrasing; more AI-like",
		InterpretationHigh: "Hedged, nuanced phrasing; more human-like",
	},
}

var interpretations = map[Metric][3]string{
	Burstiness:             {"Machine-like uniformity", "Moderate variation", "Human-like natural variation"},
	LexicalDiversity:       {"Formulaic, repetitive vocabulary", "Moderate vocabulary richness", "Rich, varied vocabulary"},
	SyntacticComplexity:    {"Simple, repetitive structures", "Moderate complexity", "Complex, varied structures"},
	AIismLikelihood:        {"Natural human-like patterns", "Mixed characteristics", "Formulaic AI-like patterns"},
	FunctionWordRatio:      {"Content-heavy wording", "Balanced scaffolding", "Over-scaffolded syntax"},
	DiscourseMarkerDensity: {"Implicit flow", "Balanced signposting", "Over-signposted structure"},
	InformationDensity:     {"Verbose, generic wording", "Moderate specificity", "Dense, concrete content"},
	EpistemicHedging:       {"Overconfident tone", "Moderately hedged", "Nuanced, hedged tone"},
}

// Definitions returns every metric definition in canonical order.
func Definitions() []Definition {
	out := make([]Definition, 0, len(allMetrics))
	for _, m := range allMetrics {
		d := definitions[m]
		d.Metric = m
		out = append(out, d)
	}
	return out
}

// DefinitionOf returns the definition of m.
func DefinitionOf(m Metric) (Definition, bool) {
	d, ok := definitions[m]
	d.Metric = m
	return d, ok
}

// Interpret buckets a normalized value into low (< 0.33), medium (< 0.67) or
// high and attaches the metric's reading for that level.
func Interpret(m Metric, normalized float64) Interpretation {
	idx, level := 2, LevelHigh
	switch {
	case normalized < 0.33:
		idx, level = 0, LevelLow
	case normalized < 0.67:
		idx, level = 1, LevelMedium
	}

	texts, ok := interpretations[m]
	if !ok {
		return Interpretation{Level: level, Interpretation: "Unknown"}
	}
	return Interpretation{Level: level, Interpretation: texts[idx]}
}

// InterpretAll interprets every normalized value of s.
func InterpretAll(s MetricScores) map[string]Interpretation {
	norm := s.Normalized()
	out := make(map[string]Interpretation, len(allMetrics))
	for _, m := range allMetrics {
		out[string(m)] = Interpret(m, norm.Get(m))
	}
	return out
}
