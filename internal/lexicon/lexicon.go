// Package lexicon holds the static word and phrase tables consulted by the
// metric calculators. Every table is built once at package initialisation and
// is read-only afterwards, so it is safe to share across goroutines.
package lexicon

import "sort"

// Set is an immutable set of lowercase words.
type Set struct {
	items map[string]struct{}
}

func newSet(words ...string) Set {
	items := make(map[string]struct{}, len(words))
	for _, w := range words {
		items[w] = struct{}{}
	}
	return Set{items: items}
}

// Contains reports whether word is a member. Callers pass lowercase words.
func (s Set) Contains(word string) bool {
	_, ok := s.items[word]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s.items) }

// Items returns a sorted copy of the members.
func (s Set) Items() []string {
	out := make([]string, 0, len(s.items))
	for w := range s.items {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

var functionWords = newSet(
	"a", "an", "the", "and", "or", "but", "nor", "for", "so", "yet",
	"in", "on", "at", "by", "with", "about", "against", "between", "into", "through",
	"during", "before", "after", "above", "below", "to", "from", "up", "down", "out",
	"over", "under", "again", "further", "then", "once", "here", "there", "when", "where",
	"why", "how", "all", "any", "both", "each", "few", "more", "most", "other",
	"some", "such", "no", "not", "only", "own", "same", "than", "too", "very",
	"can", "will", "just", "don", "should", "now", "is", "are", "was", "were",
	"be", "been", "being", "am", "do", "does", "did", "have", "has", "had",
	"having", "i", "me", "my", "mine", "we", "us", "our", "ours", "you",
	"your", "yours", "he", "him", "his", "she", "her", "hers", "it", "its",
	"they", "them", "their", "theirs", "this", "that", "these", "those", "if", "because",
	"while", "although", "though", "since", "unless", "as", "until", "whether",
)

// FunctionWords is the grammatical scaffolding vocabulary: articles,
// prepositions, pronouns, auxiliaries and conjunctions.
func FunctionWords() Set { return functionWords }
