package lexicon

var (
	subordinators = newSet(
		"because", "when", "which", "although", "while", "since", "if", "unless",
		"that", "who", "whom", "whose", "where", "whereas", "though", "until",
		"after", "before", "once",
	)
	coordinators = newSet("and", "but", "or", "so", "yet", "nor")

	prepositions = newSet(
		"about", "above", "across", "after", "against", "along", "among", "around",
		"at", "before", "behind", "below", "beneath", "beside", "between", "beyond",
		"by", "despite", "during", "for", "from", "in", "inside", "into", "near",
		"of", "off", "on", "onto", "outside", "over", "through", "throughout",
		"toward", "towards", "under", "upon", "with", "within", "without",
	)

	commonAdjectives = newSet(
		"good", "bad", "new", "old", "great", "big", "small", "large", "little",
		"long", "short", "high", "low", "young", "important", "different", "early",
		"late", "hard", "easy", "major", "strong", "weak", "clear", "simple",
		"complex", "real", "true", "whole", "full", "free", "main", "best", "better",
		"worse", "worst", "sure", "certain", "likely", "own", "various", "specific",
		"significant", "particular", "general", "common", "wide", "deep", "rich",
		"poor", "quick", "slow", "fast", "often", "always", "never", "sometimes",
		"rather", "quite", "almost", "also", "well", "still", "even", "perhaps",
	)

	modifierSuffixes = []string{
		"ly", "ous", "ful", "ive", "able", "ible", "al", "ic", "less", "ish", "ary",
	}

	beForms = newSet("am", "is", "are", "was", "were", "be", "been", "being")

	irregularParticiples = newSet(
		"known", "thought", "seen", "done", "given", "taken", "made", "said",
		"found", "told", "written", "shown", "built", "held", "kept", "brought",
		"bought", "taught", "caught", "sent", "spent", "left", "lost", "meant",
		"put", "set", "read", "understood", "won", "drawn", "grown", "begun",
		"chosen", "spoken", "broken", "driven", "forgotten", "hidden", "sold",
		"paid", "led", "run", "felt", "born", "cut", "hit", "let", "shut",
	)

	// -ed/-en words that are not past participles.
	nonParticiples = newSet(
		"when", "then", "than", "even", "often", "open", "seven", "eleven",
		"garden", "kitchen", "children", "women", "men", "citizen", "token",
		"heaven", "oxygen", "ten", "between", "chicken", "listen", "sudden",
		"golden", "wooden", "need", "indeed", "speed", "seed", "feed",
		"bed", "red", "shed", "bleed", "exceed", "proceed", "succeed",
	)
)

// Subordinators are subordinate-clause cues.
func Subordinators() Set { return subordinators }

// Coordinators are coordinating conjunctions that mark a clause boundary.
func Coordinators() Set { return coordinators }

// Prepositions head prepositional phrases and count as modifiers.
func Prepositions() Set { return prepositions }

// CommonAdjectives lists frequent adjectives and adverbs without a telltale
// suffix.
func CommonAdjectives() Set { return commonAdjectives }

// ModifierSuffixes are adjective/adverb derivational suffixes.
func ModifierSuffixes() []string {
	return append([]string(nil), modifierSuffixes...)
}

// BeForms are the inflections of "be".
func BeForms() Set { return beForms }

// IrregularParticiples are past participles without an -ed/-en ending, plus
// a few common irregular ones that have it.
func IrregularParticiples() Set { return irregularParticiples }

// NonParticiples are words ending in -ed/-en that are not past participles.
func NonParticiples() Set { return nonParticiples }
