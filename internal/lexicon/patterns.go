package lexicon

import (
	"regexp"
	"slices"
)

// Category groups AI-ism phrases by where they tend to appear.
type Category string

const (
	CategoryOpening   Category = "opening"
	CategoryClosing   Category = "closing"
	CategoryConnector Category = "connector"
	CategoryPassive   Category = "passive"
)

// Categories returns the AI-ism categories in scoring order.
func Categories() []Category {
	return []Category{CategoryOpening, CategoryClosing, CategoryConnector, CategoryPassive}
}

// Pattern is a phrase compiled into a case-insensitive whole-word matcher.
type Pattern struct {
	Phrase string
	re     *regexp.Regexp
}

func compile(phrase string) Pattern {
	return Pattern{
		Phrase: phrase,
		re:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`),
	}
}

// FindAll returns the byte offsets of every non-overlapping match in text.
func (p Pattern) FindAll(text string) [][]int {
	return p.re.FindAllStringIndex(text, -1)
}

// Count returns the number of matches in text.
func (p Pattern) Count(text string) int {
	return len(p.re.FindAllStringIndex(text, -1))
}

// PatternList is an ordered list of phrase matchers.
type PatternList []Pattern

// Count sums the matches of every pattern in the list.
func (l PatternList) Count(text string) int {
	total := 0
	for _, p := range l {
		total += p.Count(text)
	}
	return total
}

// Phrases returns the raw phrases in list order.
func (l PatternList) Phrases() []string {
	out := make([]string, len(l))
	for i, p := range l {
		out[i] = p.Phrase
	}
	return out
}

func compileAll(phrases ...string) PatternList {
	out := make(PatternList, len(phrases))
	for i, phrase := range phrases {
		out[i] = compile(phrase)
	}
	return out
}

var aiIsmPhrases = map[Category]PatternList{
	CategoryOpening: compileAll(
		"it is important to note that",
		"it should be noted that",
		"it is widely recognized that",
		"it is evident that",
		"it is clear that",
		"one could argue that",
		"one might suggest that",
		"furthermore, it is",
	),
	CategoryClosing: compileAll(
		"in conclusion",
		"to summarize",
		"in summary",
		"to conclude",
		"ultimately",
		"in essence",
		"it is therefore clear",
		"in light of the above",
	),
	CategoryConnector: compileAll(
		"delve into",
		"shed light on",
		"pave the way",
		"leverage",
		"in the context of",
		"moreover",
		"furthermore",
		"in the interest of",
		"in order to",
		"so as to",
		"with respect to",
		"as a matter of fact",
	),
	CategoryPassive: compileAll(
		"can be seen",
		"is considered",
		"is known",
		"is thought",
		"is believed",
		"is said to",
		"is noted",
		"is suggested",
	),
}

var (
	discourseMarkers = compileAll(
		"moreover", "therefore", "however", "furthermore", "consequently", "thus",
		"in conclusion", "on the other hand", "for instance", "for example",
		"in addition", "as a result", "in contrast", "in summary", "to conclude",
		"additionally", "meanwhile", "subsequently", "nevertheless", "nonetheless",
		"indeed", "in other words", "by contrast", "as such", "overall",
	)
	hedgingMarkers = compileAll(
		"perhaps", "arguably", "possibly", "probably", "likely", "unlikely",
		"it seems", "it appears", "suggests", "may", "might", "could",
		"tends to", "in my view", "i think", "i believe", "one could argue",
		"it is possible", "it is plausible",
	)
	confidenceMarkers = compileAll(
		"certainly", "definitely", "absolutely", "undoubtedly", "clearly", "obviously",
		"without doubt", "must be", "is clear that",
	)
	qualificationMarkers = compileAll(
		"however", "although", "though", "yet", "still", "but", "while",
		"nevertheless", "nonetheless",
	)
)

// AIismPhrases returns the phrase matchers for one category, or nil for an
// unknown category.
func AIismPhrases(c Category) PatternList { return slices.Clone(aiIsmPhrases[c]) }

// DiscourseMarkers are explicit signposting connectives.
func DiscourseMarkers() PatternList { return slices.Clone(discourseMarkers) }

// HedgingMarkers signal epistemic uncertainty.
func HedgingMarkers() PatternList { return slices.Clone(hedgingMarkers) }

// ConfidenceMarkers signal unqualified assertion.
func ConfidenceMarkers() PatternList { return slices.Clone(confidenceMarkers) }

// QualificationMarkers introduce concessions or contrasts.
func QualificationMarkers() PatternList { return slices.Clone(qualificationMarkers) }
