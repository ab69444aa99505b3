package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ZanzyTHEbar/voicetracer/internal/textproc"
)

// DefaultAIismLimit caps the detections reported for a pair.
const DefaultAIismLimit = 10

// Analyzer orchestrates the full pair analysis pipeline
type Analyzer struct {
	preprocessor *textproc.Preprocessor
	aiIsmLimit   int
	now          func() time.Time
	newID        func() string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithAIismLimit caps the AI-ism detections kept per pair. Non-positive
// values keep every detection.
func WithAIismLimit(n int) Option {
	return func(a *Analyzer) { a.aiIsmLimit = n }
}

// WithPreprocessor replaces the default text preprocessor.
func WithPreprocessor(p *textproc.Preprocessor) Option {
	return func(a *Analyzer) { a.preprocessor = p }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// NewAnalyzer creates a new analyzer with all components
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		preprocessor: textproc.NewPreprocessor(),
		aiIsmLimit:   DefaultAIismLimit,
		now:          time.Now,
		newID:        func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze computes both metric bundles, their deltas and narratives. AI-isms
// are reported for the edited document only.
func (a *Analyzer) Analyze(ctx context.Context, original, edited string) (*AnalysisResult, error) {
	orig, err := a.document(ctx, original)
	if err != nil {
		return nil, fmt.Errorf("original: %w", err)
	}
	edit, err := a.document(ctx, edited)
	if err != nil {
		return nil, fmt.Errorf("edited: %w", err)
	}

	origRes := orig.Calculate()
	editRes := edit.Calculate()
	deltas := CalculateDeltas(origRes.Scores, editRes.Scores)

	aiIsms := editRes.AIisms
	if a.aiIsmLimit > 0 && len(aiIsms) > a.aiIsmLimit {
		aiIsms = aiIsms[:a.aiIsmLimit]
	}
	if aiIsms == nil {
		aiIsms = []AIism{}
	}

	return &AnalysisResult{
		DocPairID:     a.newID(),
		MethodVersion: MethodVersion,
		CalculatedAt:  a.now().UTC(),
		Original:      DocumentResult{Metrics: origRes.Scores, Metadata: orig.Metadata()},
		Edited:        DocumentResult{Metrics: editRes.Scores, Metadata: edit.Metadata()},
		Deltas:        deltas,
		Narratives:    GenerateChangeNarratives(deltas),
		AIisms:        aiIsms,
	}, nil
}

// AnalyzeWithRhythm runs Analyze and attaches the sentence rhythm comparison.
func (a *Analyzer) AnalyzeWithRhythm(ctx context.Context, original, edited string, t RhythmThresholds) (*AnalysisResult, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	res, err := a.Analyze(ctx, original, edited)
	if err != nil {
		return nil, err
	}
	rhythm, err := AnalyzeRhythm(textproc.Clean(original), textproc.Clean(edited), t)
	if err != nil {
		return nil, err
	}
	res.Rhythm = &rhythm
	return res, nil
}

// AnalyzeDocument computes the metric bundle of a single document.
func (a *Analyzer) AnalyzeDocument(ctx context.Context, text string) (*DocumentAnalysis, error) {
	e, err := a.document(ctx, text)
	if err != nil {
		return nil, err
	}
	res := e.Calculate()
	aiIsms := res.AIisms
	if aiIsms == nil {
		aiIsms = []AIism{}
	}
	return &DocumentAnalysis{
		Metrics:         res.Scores,
		Metadata:        e.Metadata(),
		Interpretations: InterpretAll(res.Scores),
		AIisms:          aiIsms,
	}, nil
}

func (a *Analyzer) document(ctx context.Context, text string) (*Engine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return NewEngineWith(a.preprocessor, text)
}
