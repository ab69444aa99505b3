// Package textproc turns raw document text into the tokenized features the
// metric calculators consume.
package textproc

import (
	"errors"
	"regexp"
	"strings"

	"github.com/neurosnap/sentences"
)

// ErrEmptyInput is returned when a document is empty or whitespace-only.
var ErrEmptyInput = errors.New("text is empty")

var (
	horizontalSpace = regexp.MustCompile(`[ \t\f\v]+`)
	paragraphBreak  = regexp.MustCompile(`\n\s*\n`)
)

// Features is the preprocessed view of one document. It is owned by a single
// analysis call.
type Features struct {
	Text       string   `json:"-"`
	Sentences  []string `json:"sentences"`
	Tokens     []string `json:"tokens"`
	Words      []string `json:"words"`
	Lemmas     []string `json:"lemmas"`
	Paragraphs []string `json:"paragraphs"`
}

// Preprocessor tokenizes and lemmatizes text. It is safe for concurrent use.
type Preprocessor struct {
	sentences *sentences.DefaultSentenceTokenizer
}

// NewPreprocessor creates a preprocessor whose sentence detector knows the
// English Punkt abbreviations plus any extra ones ("Appx." or "appx").
func NewPreprocessor(extraAbbreviations ...string) *Preprocessor {
	extra := make([]string, 0, len(extraAbbreviations))
	for _, a := range extraAbbreviations {
		extra = append(extra, strings.ToLower(strings.TrimSuffix(a, ".")))
	}
	tokenizer, err := newSentenceTokenizer(extra)
	if err != nil {
		// The model is embedded; only a corrupt build gets here.
		panic(err)
	}
	return &Preprocessor{sentences: tokenizer}
}

var defaultPreprocessor = NewPreprocessor()

// Preprocess runs the default preprocessor.
func Preprocess(text string) (*Features, error) {
	return defaultPreprocessor.Preprocess(text)
}

// Preprocess cleans text and extracts sentences, words, lemmas and
// paragraphs. It fails with ErrEmptyInput when nothing but whitespace is
// left.
func (p *Preprocessor) Preprocess(text string) (*Features, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	cleaned := Clean(text)
	tokens := Tokens(cleaned)
	words := make([]string, len(tokens))
	lemmas := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = strings.ToLower(tok)
		lemmas[i] = Lemmatize(words[i])
	}

	return &Features{
		Text:       cleaned,
		Sentences:  p.SplitSentences(cleaned),
		Tokens:     tokens,
		Words:      words,
		Lemmas:     lemmas,
		Paragraphs: SplitParagraphs(cleaned),
	}, nil
}

// Clean normalizes line endings, collapses runs of horizontal whitespace and
// trims the result.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = horizontalSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// SplitParagraphs splits on blank lines and drops empty paragraphs.
func SplitParagraphs(text string) []string {
	var out []string
	for _, para := range paragraphBreak.Split(text, -1) {
		if para = strings.TrimSpace(para); para != "" {
			out = append(out, para)
		}
	}
	return out
}
