package textproc

import (
	"regexp"
	"strings"
	"unicode"
)

// rawToken matches letter/digit runs, keeping apostrophe-joined pieces
// together so clitics can be split off afterwards.
var rawToken = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}\p{N}]+)*`)

var clitics = map[string]struct{}{
	"s": {}, "t": {}, "re": {}, "ve": {}, "ll": {}, "d": {}, "m": {},
}

// negationStems restores the auxiliaries whose stem changes under "n't".
var negationStems = map[string]string{
	"ca":  "can",
	"wo":  "will",
	"sha": "shall",
}

// Tokens returns the alphabetic tokens of text with their original case.
// Tokens containing digits are dropped whole ("L2", "3rd"). Apostrophes split
// a token and trailing clitics ('s, 're, 'll ...) are discarded, so
// "intelligence's" yields "intelligence". Negation splits as "n't", leaving
// the auxiliary: "doesn't" yields "does" and "can't" yields "can".
func Tokens(text string) []string {
	var out []string
	for _, raw := range rawToken.FindAllString(text, -1) {
		parts := strings.FieldsFunc(raw, func(r rune) bool { return r == '\'' || r == '’' })
		if len(parts) == 0 || !isAlpha(parts[0]) {
			continue
		}
		if len(parts) == 2 && strings.EqualFold(parts[1], "t") {
			if stem, ok := negationStem(parts[0]); ok {
				out = append(out, stem)
				continue
			}
		}
		out = append(out, parts[0])
		for _, part := range parts[1:] {
			if _, ok := clitics[strings.ToLower(part)]; ok {
				continue
			}
			if isAlpha(part) {
				out = append(out, part)
			}
		}
	}
	return out
}

// negationStem strips the "n" of a "n't" contraction from word, keeping its
// case.
func negationStem(word string) (string, bool) {
	if len(word) < 2 {
		return "", false
	}
	if last := word[len(word)-1]; last != 'n' && last != 'N' {
		return "", false
	}
	stem := word[:len(word)-1]
	full, ok := negationStems[strings.ToLower(stem)]
	if !ok {
		return stem, true
	}
	if stem[0] >= 'A' && stem[0] <= 'Z' {
		full = strings.ToUpper(full[:1]) + full[1:]
	}
	return full, true
}

// WordTokens returns the lowercase alphabetic tokens of text.
func WordTokens(text string) []string {
	tokens := Tokens(text)
	for i, tok := range tokens {
		tokens[i] = strings.ToLower(tok)
	}
	return tokens
}

// CountTokens counts every lexical token, numerals included.
func CountTokens(text string) int {
	return len(rawToken.FindAllStringIndex(text, -1))
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
