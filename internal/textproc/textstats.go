package textproc

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
	MinChunkWords       = 50
	DefaultMinWords     = 100
)

// TextMetadata summarizes one document.
type TextMetadata struct {
	WordCount         int     `json:"word_count"`
	CharCount         int     `json:"char_count"`
	SentenceCount     int     `json:"sentence_count"`
	TokenCount        int     `json:"token_count"`
	ParagraphCount    int     `json:"paragraph_count"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

// Metadata derives document metadata from preprocessed features.
func Metadata(f *Features) TextMetadata {
	md := TextMetadata{
		WordCount:      len(f.Words),
		CharCount:      utf8.RuneCountInString(f.Text),
		SentenceCount:  len(f.Sentences),
		TokenCount:     CountTokens(f.Text),
		ParagraphCount: len(f.Paragraphs),
	}
	if md.SentenceCount > 0 {
		md.AvgSentenceLength = float64(md.WordCount) / float64(md.SentenceCount)
	}
	return md
}

// TextStats is the summary shown next to an uploaded document.
type TextStats struct {
	CharacterCount     int     `json:"character_count"`
	WordCount          int     `json:"word_count"`
	SentenceCount      int     `json:"sentence_count"`
	ParagraphCount     int     `json:"paragraph_count"`
	AvgSentenceLength  float64 `json:"avg_sentence_length"`
	AvgParagraphLength float64 `json:"avg_paragraph_length"`
	MedianSentenceLen  float64 `json:"median_sentence_length"`
}

// Stats computes TextStats. Empty text yields the zero value.
func Stats(text string) TextStats {
	cleaned := Clean(text)
	if cleaned == "" {
		return TextStats{}
	}

	words := len(Tokens(cleaned))
	split := SplitSentences(cleaned)
	sentences := len(split)
	paragraphs := len(SplitParagraphs(cleaned))

	st := TextStats{
		CharacterCount: utf8.RuneCountInString(cleaned),
		WordCount:      words,
		SentenceCount:  sentences,
		ParagraphCount: paragraphs,
	}
	if sentences > 0 {
		st.AvgSentenceLength = float64(words) / float64(sentences)
		st.MedianSentenceLen = medianLength(split)
	}
	if paragraphs > 0 {
		st.AvgParagraphLength = float64(words) / float64(paragraphs)
	}
	return st
}

func medianLength(sentences []string) float64 {
	lengths := make([]int, len(sentences))
	for i, s := range sentences {
		lengths[i] = len(Tokens(s))
	}
	slices.Sort(lengths)
	mid := len(lengths) / 2
	if len(lengths)%2 == 0 {
		return float64(lengths[mid-1]+lengths[mid]) / 2
	}
	return float64(lengths[mid])
}

// ValidateLength reports whether text has at least minWords words, with a
// message suitable for display either way.
func ValidateLength(text string, minWords int) (bool, string) {
	n := len(Tokens(text))
	if n < minWords {
		return false, fmt.Sprintf("Text has %d words; at least %d are recommended for stable metrics.", n, minWords)
	}
	return true, fmt.Sprintf("Text has %d words.", n)
}

// ChunkText splits text into windows of size whitespace-separated words that
// overlap by overlap words. A trailing window that adds fewer than
// MinChunkWords new words is merged into the previous chunk.
func ChunkText(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	if len(fields) <= size {
		return []string{strings.Join(fields, " ")}
	}

	var chunks [][]string
	step := size - overlap
	for start := 0; start < len(fields); start += step {
		end := min(start+size, len(fields))
		window := fields[start:end]
		if len(window)-overlap < MinChunkWords && len(chunks) > 0 {
			last := chunks[len(chunks)-1]
			chunks[len(chunks)-1] = append(last, fields[start+overlap:end]...)
			break
		}
		chunks = append(chunks, append([]string(nil), window...))
		if end == len(fields) {
			break
		}
	}

	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = strings.Join(c, " ")
	}
	return out
}
