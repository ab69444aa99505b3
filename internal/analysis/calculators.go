package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/voicetracer/internal/lexicon"
	"github.com/ZanzyTHEbar/voicetracer/internal/stats"
)

const (
	mtldFloor = 70.0
	mtldSpan  = 110.0

	aslCeiling = 30.0

	aiIsmCategoryCap   = 30.0
	aiIsmMaxTotal      = 120.0
	aiIsmPassiveCutoff = 0.25
	aiIsmPassiveWeight = 20.0
	aiIsmExamples      = 2
	aiIsmContextBytes  = 50

	properNounSaturation = 0.05
)

// AIism is one detected AI-characteristic phrase with surrounding text.
type AIism struct {
	Phrase   string           `json:"phrase"`
	Category lexicon.Category `json:"category"`
	Context  string           `json:"context"`
}

var properNoun = regexp.MustCompile(`\b[A-Z][a-zA-Z]+\b`)

// CalculateBurstiness is the coefficient of variation of sentence lengths.
// It is 0 for fewer than two sentences.
func CalculateBurstiness(sentences []string) float64 {
	if len(sentences) < 2 {
		return 0
	}
	lengths := stats.SentenceLengths(sentences)
	mean := stats.Mean(lengths)
	if mean == 0 {
		return 0
	}
	return round(stats.StdDev(lengths)/mean, 3)
}

// CalculateLexicalDiversity rescales MTLD onto 0-1.
func CalculateLexicalDiversity(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	return round(clamp01((stats.MTLD(words)-mtldFloor)/mtldSpan), 3)
}

// CalculateSyntacticComplexity blends average sentence length, mean
// subordination and modifier density.
func CalculateSyntacticComplexity(sentences []string, text string) float64 {
	if len(sentences) == 0 {
		return 0
	}

	asl := min(stats.MeanSentenceLength(sentences)/aslCeiling, 1)

	sub := 0.0
	for _, s := range sentences {
		sub += stats.SubordinationRatio(s)
	}
	sub /= float64(len(sentences))

	score := 0.4*asl + 0.3*sub + 0.3*stats.ModifierDensity(text)
	return round(min(score, 1), 3)
}

// CalculateAIismLikelihood scores AI-characteristic phrasing on 0-100 and
// returns the matches found. Each category contributes at most 30 points and
// heavy passive voice adds a bonus.
func CalculateAIismLikelihood(text string) (float64, []AIism) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	var detected []AIism
	total := 0.0
	for _, category := range lexicon.Categories() {
		count := 0
		for _, p := range lexicon.AIismPhrases(category) {
			matches := p.FindAll(text)
			count += len(matches)
			for _, loc := range matches[:min(len(matches), aiIsmExamples)] {
				detected = append(detected, AIism{
					Phrase:   p.Phrase,
					Category: category,
					Context:  contextWindow(text, loc[0], loc[1]),
				})
			}
		}
		total += categoryScore(count)
	}

	if passive := stats.PassiveVoiceRatio(text); passive > aiIsmPassiveCutoff {
		total += passive * aiIsmPassiveWeight
	}

	return round(min(total/aiIsmMaxTotal*100, 100), 1), detected
}

func categoryScore(count int) float64 {
	var score float64
	switch {
	case count <= 3:
		score = 3 * float64(count)
	case count <= 6:
		score = 20 + 3*float64(count-3)
	default:
		score = aiIsmCategoryCap
	}
	return min(score, aiIsmCategoryCap)
}

// contextWindow returns the trimmed text within aiIsmContextBytes of a match,
// widened to rune boundaries.
func contextWindow(text string, start, end int) string {
	lo := max(0, start-aiIsmContextBytes)
	for lo > 0 && !utf8.RuneStart(text[lo]) {
		lo--
	}
	hi := min(len(text), end+aiIsmContextBytes)
	for hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi++
	}
	return strings.TrimSpace(text[lo:hi])
}

// CalculateFunctionWordRatio is the share of words that are function words.
func CalculateFunctionWordRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	fw := lexicon.FunctionWords()
	n := 0
	for _, w := range words {
		if fw.Contains(w) {
			n++
		}
	}
	return round(float64(n)/float64(len(words)), 4)
}

// CalculateDiscourseMarkerDensity is discourse markers per 1,000 words.
func CalculateDiscourseMarkerDensity(text string, wordCount int) float64 {
	if wordCount == 0 || text == "" {
		return 0
	}
	markers := lexicon.DiscourseMarkers().Count(text)
	return round(float64(markers)/float64(wordCount)*1000, 3)
}

// CalculateInformationDensity blends the content-word ratio, the uniqueness of
// content words and a capitalization-based proper-noun density.
func CalculateInformationDensity(text string, words, sentences []string) float64 {
	if len(words) == 0 {
		return 0
	}

	fw := lexicon.FunctionWords()
	content := make([]string, 0, len(words))
	for _, w := range words {
		if !fw.Contains(w) {
			content = append(content, w)
		}
	}

	contentRatio := float64(len(content)) / float64(len(words))
	uniqueRatio := stats.TypeTokenRatio(content)
	pnDensity := float64(properNounCount(text, sentences)) / float64(len(words))
	pnNorm := min(pnDensity/properNounSaturation, 1)

	score := 0.5*contentRatio + 0.3*uniqueRatio + 0.2*pnNorm
	return round(min(score, 1), 3)
}

// properNounCount counts capitalized words that never open a sentence. It is
// a heuristic, not entity recognition.
func properNounCount(text string, sentences []string) int {
	initials := make(map[string]struct{}, len(sentences))
	for _, s := range sentences {
		if fields := strings.Fields(s); len(fields) > 0 {
			initials[fields[0]] = struct{}{}
		}
	}

	n := 0
	for _, w := range properNoun.FindAllString(text, -1) {
		if _, ok := initials[w]; !ok {
			n++
		}
	}
	return n
}

// CalculateEpistemicHedging is hedges plus qualifiers, less confidence
// markers, per word.
func CalculateEpistemicHedging(text string, wordCount int) float64 {
	if wordCount == 0 || text == "" {
		return 0
	}
	hedges := lexicon.HedgingMarkers().Count(text) + lexicon.QualificationMarkers().Count(text)
	net := max(hedges-lexicon.ConfidenceMarkers().Count(text), 0)
	return round(float64(net)/float64(wordCount), 4)
}
