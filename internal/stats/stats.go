// Package stats provides the numeric primitives behind the stylometric
// metrics. Every function is pure and total: empty input yields 0.
package stats

import (
	"math"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/voicetracer/internal/lexicon"
	"github.com/ZanzyTHEbar/voicetracer/internal/textproc"
)

// MTLDThreshold is the type-token ratio at which an MTLD factor closes.
const MTLDThreshold = 0.72

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev returns the population standard deviation of xs.
func StdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := Mean(xs)
	ss := 0.0
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

// Median returns the middle value of xs, averaging the two central values
// for even-length input.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// SentenceWordCount counts the alphabetic words in one sentence.
func SentenceWordCount(sentence string) int {
	return len(textproc.Tokens(sentence))
}

// SentenceLengths returns the word count of every sentence, in order.
func SentenceLengths(sentences []string) []float64 {
	out := make([]float64, len(sentences))
	for i, s := range sentences {
		out[i] = float64(SentenceWordCount(s))
	}
	return out
}

// MeanSentenceLength is the mean per-sentence word count.
func MeanSentenceLength(sentences []string) float64 {
	return Mean(SentenceLengths(sentences))
}

// StdDevSentenceLength is the population standard deviation of per-sentence
// word counts.
func StdDevSentenceLength(sentences []string) float64 {
	return StdDev(SentenceLengths(sentences))
}

// TypeTokenRatio is unique words over total words.
func TypeTokenRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return float64(len(seen)) / float64(len(words))
}

// MTLD is the Measure of Textual Lexical Diversity: the mean of a forward and
// a reverse pass, each dividing the token count by the number of factors
// (runs whose type-token ratio falls to MTLDThreshold). The remainder of a
// pass counts as a partial factor.
func MTLD(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	reversed := make([]string, len(words))
	for i, w := range words {
		reversed[len(words)-1-i] = w
	}
	return (mtldPass(words) + mtldPass(reversed)) / 2
}

func mtldPass(words []string) float64 {
	factors := 0.0
	types := make(map[string]struct{})
	count := 0
	ttr := 1.0

	for _, w := range words {
		count++
		types[w] = struct{}{}
		ttr = float64(len(types)) / float64(count)
		if ttr <= MTLDThreshold {
			factors++
			types = make(map[string]struct{})
			count = 0
			ttr = 1.0
		}
	}
	if count > 0 {
		factors += (1 - ttr) / (1 - MTLDThreshold)
	}

	if factors == 0 {
		return float64(len(words))
	}
	return float64(len(words)) / factors
}

// SubordinationRatio is subordinate-clause cues over all clause boundaries in
// one sentence. Boundaries are the cues themselves, coordinating
// conjunctions, commas and semicolons, plus the main clause.
func SubordinationRatio(sentence string) float64 {
	words := textproc.WordTokens(sentence)
	if len(words) == 0 {
		return 0
	}

	cues, coordinators := 0, 0
	for _, w := range words {
		switch {
		case lexicon.Subordinators().Contains(w):
			cues++
		case lexicon.Coordinators().Contains(w):
			coordinators++
		}
	}
	punct := strings.Count(sentence, ",") + strings.Count(sentence, ";")

	return clamp01(float64(cues) / float64(cues+coordinators+punct+1))
}

// ModifierDensity is the share of tokens acting as modifiers: words with an
// adjective/adverb suffix, common bare adjectives and adverbs, and
// prepositions as phrase heads.
func ModifierDensity(text string) float64 {
	words := textproc.WordTokens(text)
	if len(words) == 0 {
		return 0
	}

	suffixes := lexicon.ModifierSuffixes()
	modifiers := 0
	for _, w := range words {
		if isModifier(w, suffixes) {
			modifiers++
		}
	}
	return clamp01(float64(modifiers) / float64(len(words)))
}

func isModifier(w string, suffixes []string) bool {
	if lexicon.Prepositions().Contains(w) || lexicon.CommonAdjectives().Contains(w) {
		return true
	}
	if len(w) <= 4 || lexicon.FunctionWords().Contains(w) {
		return false
	}
	for _, suf := range suffixes {
		if strings.HasSuffix(w, suf) {
			return true
		}
	}
	return false
}

// PassiveVoiceRatio is the number of passive constructions per sentence. A
// passive construction is a form of "be", optionally followed by one -ly
// adverb, followed by a past participle.
func PassiveVoiceRatio(text string) float64 {
	sentences := textproc.SplitSentencesSimple(text)
	if len(sentences) == 0 {
		return 0
	}

	passives := 0
	for _, s := range sentences {
		words := textproc.WordTokens(s)
		for i := 0; i < len(words)-1; i++ {
			if !lexicon.BeForms().Contains(words[i]) {
				continue
			}
			next := i + 1
			if strings.HasSuffix(words[next], "ly") && next+1 < len(words) {
				next++
			}
			if IsPastParticiple(words[next]) {
				passives++
				i = next
			}
		}
	}
	return float64(passives) / float64(len(sentences))
}

// IsPastParticiple guesses whether a lowercase word is a past participle.
func IsPastParticiple(w string) bool {
	if lexicon.IrregularParticiples().Contains(w) {
		return true
	}
	if lexicon.NonParticiples().Contains(w) {
		return false
	}
	return (strings.HasSuffix(w, "ed") && len(w) > 3) || (strings.HasSuffix(w, "en") && len(w) > 4)
}

func clamp01(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
