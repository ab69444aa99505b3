package analysis

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/voicetracer/internal/lexicon"
	"github.com/ZanzyTHEbar/voicetracer/internal/textproc"
)

func TestCalculateBurstiness(t *testing.T) {
	tests := []struct {
		name      string
		sentences []string
		expected  float64
	}{
		{name: "no sentences", sentences: nil, expected: 0},
		{name: "single sentence", sentences: []string{"Only one sentence here."}, expected: 0},
		{name: "uniform lengths", sentences: []string{"Go now.", "Go now.", "Go now.", "Go now."}, expected: 0},
		{name: "two and fourteen", sentences: []string{
			"Go now.",
			"The question of how artificial intelligence affects writing is complex and multifaceted for learners.",
		}, expected: 0.75},
		{name: "no words", sentences: []string{"...", "!!!"}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CalculateBurstiness(tt.sentences), 1e-9)
		})
	}
}

func TestCalculateBurstiness_VarianceIncreasesScore(t *testing.T) {
	flat := textproc.SplitSentences("Go now. Go now. Go now. Go now.")
	varied := textproc.SplitSentences(
		"Go now. The students wrote long essays about their summer holidays in the mountains. " +
			"Go now. The teachers read every essay carefully before writing their detailed comments.")

	require.Len(t, varied, 4)
	assert.Less(t, CalculateBurstiness(flat), CalculateBurstiness(varied))
}

func TestCalculateLexicalDiversity(t *testing.T) {
	assert.Equal(t, 0.0, CalculateLexicalDiversity(nil))
	assert.Equal(t, 0.0, CalculateLexicalDiversity(strings.Fields(strings.Repeat("the cat ", 50))))

	v := CalculateLexicalDiversity(textproc.WordTokens(sampleOriginal))
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}

func TestCalculateSyntacticComplexity(t *testing.T) {
	assert.Equal(t, 0.0, CalculateSyntacticComplexity(nil, ""))

	simple := "The cat sat. The dog ran."
	complexText := "Although the committee hesitated, it approved the proposal because the evidence, which was gathered carefully over several months, was remarkably persuasive."

	s := CalculateSyntacticComplexity(textproc.SplitSentences(simple), simple)
	c := CalculateSyntacticComplexity(textproc.SplitSentences(complexText), complexText)
	assert.Less(t, s, c)
	assert.LessOrEqual(t, c, 1.0)
}

func TestCategoryScore(t *testing.T) {
	tests := []struct {
		count    int
		expected float64
	}{
		{0, 0},
		{1, 3},
		{3, 9},
		{4, 23},
		{6, 29},
		{7, 30},
		{40, 30},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, categoryScore(tt.count), "count %d", tt.count)
	}
}

func TestCalculateAIismLikelihood(t *testing.T) {
	score, detected := CalculateAIismLikelihood("In conclusion, we must delve into it.")

	assert.Equal(t, 5.0, score)
	require.Len(t, detected, 2)
	assert.Equal(t, "in conclusion", detected[0].Phrase)
	assert.Equal(t, lexicon.CategoryClosing, detected[0].Category)
	assert.Equal(t, "In conclusion, we must delve into it.", detected[0].Context)
	assert.Equal(t, "delve into", detected[1].Phrase)
	assert.Equal(t, lexicon.CategoryConnector, detected[1].Category)
}

func TestCalculateAIismLikelihood_Monotonic(t *testing.T) {
	clean := "My brother fixed the bike on Sunday and we rode to the lake."
	flagged := "It is important to note that we must delve into this topic. In conclusion, it can be seen that cycling matters."

	cleanScore, cleanHits := CalculateAIismLikelihood(clean)
	flaggedScore, flaggedHits := CalculateAIismLikelihood(flagged)

	assert.Equal(t, 0.0, cleanScore)
	assert.Empty(t, cleanHits)
	assert.Greater(t, flaggedScore, cleanScore)
	assert.GreaterOrEqual(t, len(flaggedHits), 3)
	assert.LessOrEqual(t, flaggedScore, 100.0)
}

func TestCalculateAIismLikelihood_TwoExamplesPerPhrase(t *testing.T) {
	text := strings.Repeat("We leverage tools. ", 5)
	score, detected := CalculateAIismLikelihood(text)

	assert.Len(t, detected, 2)
	// five connector hits score 26 of 120 points
	assert.InDelta(t, 21.7, score, 1e-9)
}

func TestCalculateAIismLikelihood_Empty(t *testing.T) {
	score, detected := CalculateAIismLikelihood("   ")
	assert.Equal(t, 0.0, score)
	assert.Nil(t, detected)
}

func TestContextWindow_RuneBoundaries(t *testing.T) {
	text := strings.Repeat("é", 40) + " leverage " + strings.Repeat("é", 40)
	start := strings.Index(text, "leverage")

	ctx := contextWindow(text, start, start+len("leverage"))
	assert.True(t, utf8.ValidString(ctx))
	assert.Contains(t, ctx, "leverage")
}

func TestCalculateFunctionWordRatio(t *testing.T) {
	assert.Equal(t, 0.0, CalculateFunctionWordRatio(nil))
	assert.Equal(t, 0.5, CalculateFunctionWordRatio([]string{"the", "cat", "sat", "on", "the", "mat"}))
}

func TestCalculateFunctionWordRatio_Contractions(t *testing.T) {
	contracted := textproc.WordTokens("He doesn't know. She isn't here. They weren't ready and we didn't go.")
	expanded := textproc.WordTokens("He does not know. She is not here. They were not ready and we did not go.")

	var withoutNot []string
	for _, w := range expanded {
		if w != "not" {
			withoutNot = append(withoutNot, w)
		}
	}
	require.Equal(t, withoutNot, contracted, "negated auxiliaries keep their function-word stem")

	assert.Equal(t, 0.7692, CalculateFunctionWordRatio(contracted))
	assert.Equal(t, 0.8235, CalculateFunctionWordRatio(expanded))
}

func TestCalculateDiscourseMarkerDensity(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{name: "no words", text: "", expected: 0},
		{name: "no markers", text: "My brother fixed the bike and we rode to the lake.", expected: 0},
		{name: "two markers in six words", text: "Moreover, it works. However, it fails.", expected: 333.333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := textproc.WordTokens(tt.text)
			assert.Equal(t, tt.expected, CalculateDiscourseMarkerDensity(tt.text, len(words)))
		})
	}
}

func TestCalculateInformationDensity(t *testing.T) {
	assert.Equal(t, 0.0, CalculateInformationDensity("", nil, nil))

	text := "It is what it is."
	score := CalculateInformationDensity(text, textproc.WordTokens(text), textproc.SplitSentences(text))
	assert.InDelta(t, 0.4, score, 1e-9)
}

func TestProperNounCount(t *testing.T) {
	text := "We met Alice in Paris yesterday."
	assert.Equal(t, 2, properNounCount(text, textproc.SplitSentences(text)))
}

func TestCalculateEpistemicHedging(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{name: "no words", text: "", expected: 0},
		{name: "hedged", text: "Perhaps this might work, but it is certainly true.", expected: 0.2222},
		{name: "confidence outweighs hedges", text: "This is clearly and obviously right.", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := textproc.WordTokens(tt.text)
			assert.Equal(t, tt.expected, CalculateEpistemicHedging(tt.text, len(words)))
		})
	}
}

func TestCalculators_NeverNaN(t *testing.T) {
	inputs := []string{"a", "!!!", "Go.", "1 2 3", sampleOriginal, sampleEdited}
	for _, in := range inputs {
		e, err := NewEngine(in)
		require.NoError(t, err)
		for key, v := range e.CalculateAllMetrics() {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%q produced %v for %s", in, v, key)
		}
	}
}
