package calibration

import "github.com/ZanzyTHEbar/voicetracer/internal/analysis"

const (
	noteScale  = "Scores are normalized to 0-1 where 1.0 is closer to human standards and 0.0 is closer to AI standards."
	noteImpact = "Impact shows adjusted score minus default score for each metric."
)

// PairScores holds a value per metric for each document of a pair.
type PairScores struct {
	Original map[string]float64 `json:"original"`
	Edited   map[string]float64 `json:"edited"`
}

// PairLabels holds a label per metric for each document of a pair.
type PairLabels struct {
	Original map[string]string `json:"original"`
	Edited   map[string]string `json:"edited"`
}

// Notes explain the payload to readers.
type Notes struct {
	Scale  string `json:"scale"`
	Impact string `json:"impact"`
}

// Payload scores a document pair against both the default and the adjusted
// standards.
type Payload struct {
	Default  Standards `json:"default"`
	Adjusted Standards `json:"adjusted"`
	Scores   struct {
		Default  PairScores `json:"default"`
		Adjusted PairScores `json:"adjusted"`
	} `json:"scores"`
	Labels struct {
		Default  PairLabels `json:"default"`
		Adjusted PairLabels `json:"adjusted"`
	} `json:"labels"`
	Impact    PairScores        `json:"impact"`
	Verdicts  map[string]string `json:"verdicts"`
	Threshold float64           `json:"threshold"`
	Notes     Notes             `json:"notes"`
}

// BuildPayload scores raw metric values with DefaultVoiceShiftThreshold.
func BuildPayload(original, edited analysis.MetricScores, adjusted Standards) Payload {
	return BuildPayloadWithThreshold(original, edited, adjusted, DefaultVoiceShiftThreshold)
}

// BuildPayloadWithThreshold scores raw metric values against the default and
// adjusted standards. Verdicts use the adjusted scores.
func BuildPayloadWithThreshold(original, edited analysis.MetricScores, adjusted Standards, threshold float64) Payload {
	defaults := DefaultStandards()
	p := Payload{
		Default:   defaults,
		Adjusted:  adjusted.Clone(),
		Impact:    newPairScores(),
		Verdicts:  make(map[string]string),
		Threshold: threshold,
		Notes:     Notes{Scale: noteScale, Impact: noteImpact},
	}
	p.Scores.Default = newPairScores()
	p.Scores.Adjusted = newPairScores()
	p.Labels.Default = newPairLabels()
	p.Labels.Adjusted = newPairLabels()

	for _, m := range analysis.AllMetrics() {
		key := string(m)
		orig, edit := original.Get(m), edited.Get(m)

		dh, da := defaults.Reference(m)
		ah, aa := p.Adjusted.Reference(m)

		defOrig, defEdit := Score(orig, dh, da), Score(edit, dh, da)
		adjOrig, adjEdit := Score(orig, ah, aa), Score(edit, ah, aa)

		p.Scores.Default.Original[key] = defOrig
		p.Scores.Default.Edited[key] = defEdit
		p.Scores.Adjusted.Original[key] = adjOrig
		p.Scores.Adjusted.Edited[key] = adjEdit

		p.Labels.Default.Original[key] = Label(defOrig)
		p.Labels.Default.Edited[key] = Label(defEdit)
		p.Labels.Adjusted.Original[key] = Label(adjOrig)
		p.Labels.Adjusted.Edited[key] = Label(adjEdit)

		p.Impact.Original[key] = adjOrig - defOrig
		p.Impact.Edited[key] = adjEdit - defEdit

		p.Verdicts[key] = Verdict(adjOrig, adjEdit, threshold)
	}
	return p
}

func newPairScores() PairScores {
	return PairScores{Original: make(map[string]float64), Edited: make(map[string]float64)}
}

func newPairLabels() PairLabels {
	return PairLabels{Original: make(map[string]string), Edited: make(map[string]string)}
}
