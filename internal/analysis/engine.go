package analysis

import (
	"github.com/ZanzyTHEbar/voicetracer/internal/textproc"
)

// Result is one document's metric bundle with its AI-ism evidence.
type Result struct {
	Scores MetricScores `json:"metrics"`
	AIisms []AIism      `json:"ai_isms"`
}

// Engine computes the metric bundle for a single document. The text is
// preprocessed once, at construction.
type Engine struct {
	features *textproc.Features
}

// NewEngine preprocesses text with the default preprocessor. It fails with
// textproc.ErrEmptyInput for blank text.
func NewEngine(text string) (*Engine, error) {
	return NewEngineWith(nil, text)
}

// NewEngineWith preprocesses text with p, or the default preprocessor when p
// is nil.
func NewEngineWith(p *textproc.Preprocessor, text string) (*Engine, error) {
	var (
		f   *textproc.Features
		err error
	)
	if p == nil {
		f, err = textproc.Preprocess(text)
	} else {
		f, err = p.Preprocess(text)
	}
	if err != nil {
		return nil, err
	}
	return &Engine{features: f}, nil
}

// Calculate runs every metric calculator over the document.
func (e *Engine) Calculate() Result {
	f := e.features
	aiIsm, detected := CalculateAIismLikelihood(f.Text)

	return Result{
		Scores: MetricScores{
			Burstiness:             CalculateBurstiness(f.Sentences),
			LexicalDiversity:       CalculateLexicalDiversity(f.Words),
			SyntacticComplexity:    CalculateSyntacticComplexity(f.Sentences, f.Text),
			AIismLikelihood:        aiIsm,
			FunctionWordRatio:      CalculateFunctionWordRatio(f.Words),
			DiscourseMarkerDensity: CalculateDiscourseMarkerDensity(f.Text, len(f.Words)),
			InformationDensity:     CalculateInformationDensity(f.Text, f.Words, f.Sentences),
			EpistemicHedging:       CalculateEpistemicHedging(f.Text, len(f.Words)),
		},
		AIisms: detected,
	}
}

// CalculateAllMetrics is the flat view of Calculate: "<metric>" holds the
// normalized value and "<metric>_raw" the raw value.
func (e *Engine) CalculateAllMetrics() map[string]float64 {
	return e.Calculate().Scores.ToMap()
}

// Metadata describes the preprocessed document.
func (e *Engine) Metadata() textproc.TextMetadata {
	return textproc.Metadata(e.features)
}

// Text returns the cleaned document text.
func (e *Engine) Text() string {
	return e.features.Text
}
