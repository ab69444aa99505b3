package textproc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/data"
	"github.com/neurosnap/sentences/english"
)

// englishTraining is the Punkt parameter set shipped with the sentences
// package.
const englishTraining = "data/english.json"

var crudeSentenceBreak = regexp.MustCompile(`[.!?]+`)

// newSentenceTokenizer loads the English Punkt model and registers extra
// abbreviations on top of its learned ones. Every call gets its own model.
func newSentenceTokenizer(extraAbbreviations []string) (*sentences.DefaultSentenceTokenizer, error) {
	raw, err := data.Asset(englishTraining)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	training, err := sentences.LoadTraining(raw)
	if err != nil {
		return nil, fmt.Errorf("parse punkt model: %w", err)
	}
	for _, a := range extraAbbreviations {
		training.AbbrevTypes.Add(a)
	}
	return english.NewSentenceTokenizer(training)
}

// SplitSentences runs sentence detection with the default preprocessor.
func SplitSentences(text string) []string {
	return defaultPreprocessor.SplitSentences(text)
}

// SplitSentences detects sentence boundaries within each paragraph with the
// Punkt model: abbreviations, initials, ordinals and decimals are resolved
// from the learned English parameters, not from fixed rules.
func (p *Preprocessor) SplitSentences(text string) []string {
	var out []string
	for _, para := range SplitParagraphs(text) {
		for _, s := range p.sentences.Tokenize(para) {
			if t := strings.TrimSpace(s.Text); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// SplitSentencesSimple splits on runs of '.', '!' and '?' without any
// abbreviation handling. It backs the sentence-rhythm views, where speed
// matters more than precision.
func SplitSentencesSimple(text string) []string {
	var out []string
	for _, s := range crudeSentenceBreak.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
