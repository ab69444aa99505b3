package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/voicetracer/internal/analysis"
	"github.com/ZanzyTHEbar/voicetracer/internal/calibration"
	"github.com/ZanzyTHEbar/voicetracer/internal/lexicon"
	"github.com/ZanzyTHEbar/voicetracer/internal/textproc"
)

var generatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleResult() *analysis.AnalysisResult {
	original := analysis.MetricScores{
		Burstiness: 1.2, LexicalDiversity: 0.55, SyntacticComplexity: 0.5, AIismLikelihood: 2.5,
		FunctionWordRatio: 0.5, DiscourseMarkerDensity: 8, InformationDensity: 0.58, EpistemicHedging: 0.09,
	}
	edited := analysis.MetricScores{
		Burstiness: 0.6, LexicalDiversity: 0.4, SyntacticComplexity: 0.62, AIismLikelihood: 42.5,
		FunctionWordRatio: 0.58, DiscourseMarkerDensity: 17, InformationDensity: 0.44, EpistemicHedging: 0.04,
	}
	deltas := analysis.CalculateDeltas(original, edited)

	return &analysis.AnalysisResult{
		DocPairID:     "0f8fad5b-d9cb-469f-a165-70867728950e",
		MethodVersion: analysis.MethodVersion,
		CalculatedAt:  generatedAt,
		Original: analysis.DocumentResult{
			Metrics:  original,
			Metadata: textproc.TextMetadata{WordCount: 120, CharCount: 640, SentenceCount: 9},
		},
		Edited: analysis.DocumentResult{
			Metrics:  edited,
			Metadata: textproc.TextMetadata{WordCount: 131, CharCount: 702, SentenceCount: 7},
		},
		Deltas:     deltas,
		Narratives: analysis.GenerateChangeNarratives(deltas),
		AIisms: []analysis.AIism{
			{Phrase: "furthermore", Category: lexicon.CategoryConnector, Context: "results. Furthermore, the data | shows"},
			{Phrase: "in conclusion", Category: lexicon.CategoryClosing, Context: strings.Repeat("x", 150)},
		},
	}
}

func sampleReport(withCalibration bool) Report {
	res := sampleResult()
	r := Report{Result: res, GeneratedAt: generatedAt}
	if withCalibration {
		p := calibration.BuildPayload(res.Original.Metrics, res.Edited.Metrics, calibration.DefaultStandards())
		r.Calibration = &p
	}
	return r
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
		wantErr  bool
	}{
		{in: "json", expected: FormatJSON},
		{in: "CSV", expected: FormatCSV},
		{in: "md", expected: FormatMarkdown},
		{in: " markdown ", expected: FormatMarkdown},
		{in: "pdf", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormat_Filename(t *testing.T) {
	assert.Equal(t, "voicetracer_0f8fad5b.csv", FormatCSV.Filename("0f8fad5b-d9cb-469f-a165-70867728950e"))
	assert.Equal(t, "voicetracer_report.md", FormatMarkdown.Filename(""))
	assert.Equal(t, "text/csv; charset=utf-8", FormatCSV.ContentType())
	assert.Equal(t, "application/json; charset=utf-8", FormatJSON.ContentType())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleReport(true)))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	for _, key := range []string{"metadata", "original", "edited", "text_statistics", "deltas", "narratives", "ai_isms", "calibration"} {
		assert.Contains(t, doc, key)
	}
	assert.NotContains(t, doc, "rhythm")

	meta := doc["metadata"].(map[string]any)
	assert.Equal(t, "VoiceTracer", meta["tool"])
	assert.Equal(t, "0f8fad5b-d9cb-469f-a165-70867728950e", meta["doc_pair_id"])
	assert.Equal(t, "2026-03-01T12:00:00Z", meta["generated_at"])

	original := doc["original"].(map[string]any)
	assert.InDelta(t, 1.2, original["burstiness_raw"], 1e-9)
	assert.InDelta(t, 0.4, original["burstiness"], 1e-9)

	deltas := doc["deltas"].(map[string]any)
	assert.InDelta(t, -0.6, deltas["burstiness_delta"], 1e-9)
	assert.InDelta(t, -20.0, deltas["burstiness_pct_change"], 1e-9)

	stats := doc["text_statistics"].(map[string]any)
	assert.EqualValues(t, 131, stats["edited"].(map[string]any)["word_count"])

	assert.Len(t, doc["ai_isms"], 2)
	assert.Contains(t, doc["calibration"], "verdicts")
}

func TestWriteJSON_NilAIismsEncodeAsEmptyList(t *testing.T) {
	r := sampleReport(false)
	r.Result.AIisms = nil

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r))
	assert.Contains(t, buf.String(), `"ai_isms": []`)
	assert.NotContains(t, buf.String(), `"calibration"`)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleReport(false)))

	cr := csv.NewReader(&buf)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"VoiceTracer Analysis Report"}, rows[0])
	assert.Equal(t, []string{"Generated:", "2026-03-01T12:00:00Z"}, rows[1])

	find := func(label string) []string {
		for _, row := range rows {
			if len(row) > 0 && row[0] == label {
				return row
			}
		}
		t.Fatalf("row %q not found", label)
		return nil
	}

	assert.Equal(t, []string{"Text Statistics"}, find("Text Statistics"))
	assert.Equal(t, []string{"Word Count", "120", "131", "11", ""}, find("Word Count"))
	assert.Equal(t, []string{"Sentence Count", "9", "7", "-2", ""}, find("Sentence Count"))

	assert.Equal(t, []string{"Burstiness", "1.2", "0.6", "-0.6", "-20.0%"}, find("Burstiness"))
	assert.Equal(t, []string{"AI-ism Likelihood", "2.5", "42.5", "40", "+40.0%"}, find("AI-ism Likelihood"))
	assert.Equal(t, []string{"Discourse Marker Density", "8", "17", "9", "+30.0%"}, find("Discourse Marker Density"))

	assert.Equal(t, []string{"Phrase", "Category", "Context"}, find("Phrase"))
	connector := find("furthermore")
	assert.Equal(t, "connector", connector[1])
	assert.Equal(t, "results. Furthermore, the data | shows", connector[2])
	assert.Len(t, find("in conclusion")[2], 100)

	assert.NotContains(t, buf.String(), "Calibration")
}

func TestWriteCSV_SectionOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport(true)))
	out := buf.String()

	sections := []string{"Text Statistics", "Metric Comparison", "AI-isms Detected", "Calibration"}
	last := -1
	for _, s := range sections {
		idx := strings.Index(out, "\n"+s+"\n")
		require.NotEqual(t, -1, idx, s)
		assert.Greater(t, idx, last, s)
		last = idx
	}
	assert.Contains(t, out, calibration.VerdictVoiceShift)
}

func TestWriteMarkdown(t *testing.T) {
	r := sampleReport(true)
	r.Result.Rhythm = &analysis.Rhythm{
		Original:           analysis.DocumentRhythm{Pattern: analysis.PatternHumanVariation, BurstinessNorm: 0.61, SentenceCount: 9},
		Edited:             analysis.DocumentRhythm{Pattern: analysis.PatternAIEdited, BurstinessNorm: 0.3, SentenceCount: 4},
		InsightText:        "Sentence rhythm flattened.",
		ReliabilityWarning: true,
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatMarkdown, r))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# VoiceTracer Analysis Report\n"))
	assert.Contains(t, out, "| Word Count | 120 | 131 | +11 |")
	assert.Contains(t, out, "| Burstiness | 1.2 | 0.6 | -0.6 | -20.0% |")
	assert.Contains(t, out, "- **Burstiness:** "+r.Result.Narratives["burstiness"])
	assert.Contains(t, out, "## Calibration")
	assert.Contains(t, out, "## Sentence Rhythm")
	assert.Contains(t, out, "Mixed/AI-edited Pattern")
	assert.Contains(t, out, "the rhythm comparison is unreliable")
	assert.Contains(t, out, `- **furthermore** (connector): results. Furthermore, the data \| shows`)
	assert.NotContains(t, out, "_No AI-isms detected._")
}

func TestWriteMarkdown_NoAIisms(t *testing.T) {
	r := sampleReport(false)
	r.Result.AIisms = nil

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, r))
	assert.Contains(t, buf.String(), "_No AI-isms detected._")
	assert.NotContains(t, buf.String(), "## Calibration")
	assert.NotContains(t, buf.String(), "## Sentence Rhythm")
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, FormatJSON, Report{}))
	assert.ErrorIs(t, Write(&buf, Format("xlsx"), sampleReport(false)), ErrUnknownFormat)
}
