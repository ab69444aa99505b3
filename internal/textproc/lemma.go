package textproc

import "strings"

var irregularLemmas = map[string]string{
	"am": "be", "is": "be", "are": "be", "was": "be", "were": "be", "been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do", "doing": "do",
	"goes": "go", "went": "go", "gone": "go", "going": "go",
	"made": "make", "making": "make",
	"said": "say", "says": "say",
	"took": "take", "taken": "take", "taking": "take",
	"saw": "see", "seen": "see",
	"gave": "give", "given": "give", "giving": "give",
	"came": "come", "coming": "come",
	"knew": "know", "known": "know",
	"thought": "think", "found": "find", "told": "tell",
	"became": "become", "began": "begin", "begun": "begin",
	"wrote": "write", "written": "write", "writing": "write",
	"using": "use", "used": "use",
	"felt": "feel", "left": "leave", "kept": "keep", "brought": "bring",
	"children": "child", "men": "man", "women": "woman", "people": "person",
	"mice": "mouse", "feet": "foot", "teeth": "tooth", "geese": "goose",
	"data": "datum", "criteria": "criterion", "phenomena": "phenomenon",
	"analyses": "analysis", "theses": "thesis", "hypotheses": "hypothesis",
}

// Lemmatize reduces a lowercase word to a dictionary base form using an
// irregular-form table and a small set of suffix rules. Words it cannot
// reduce safely are returned unchanged.
func Lemmatize(word string) string {
	if lemma, ok := irregularLemmas[word]; ok {
		return lemma
	}
	if len(word) <= 3 {
		return word
	}

	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case hasAnySuffix(word, "sses", "shes", "ches", "xes", "zes"):
		return word[:len(word)-2]
	case hasAnySuffix(word, "ss", "us", "is"):
		return word
	case strings.HasSuffix(word, "s"):
		return word[:len(word)-1]
	case strings.HasSuffix(word, "ing") && len(word) > 5:
		return restoreStem(word[:len(word)-3])
	case strings.HasSuffix(word, "ied") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ed") && len(word) > 4:
		return restoreStem(word[:len(word)-2])
	}
	return word
}

// restoreStem undoes consonant doubling ("runn" -> "run") and restores a
// dropped silent e on short consonant-vowel-consonant stems ("mak" -> "make").
func restoreStem(stem string) string {
	n := len(stem)
	if n >= 3 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) && !strings.ContainsRune("lsz", rune(stem[n-1])) {
		return stem[:n-1]
	}
	if n == 3 && !isVowel(stem[0]) && isVowel(stem[1]) && !isVowel(stem[2]) && !strings.ContainsRune("wxy", rune(stem[2])) {
		return stem + "e"
	}
	return stem
}

func isVowel(b byte) bool { return strings.IndexByte("aeiou", b) >= 0 }

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
