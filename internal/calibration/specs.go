package calibration

import "github.com/ZanzyTHEbar/voicetracer/internal/analysis"

// SliderSpec bounds the UI control for one reference value.
type SliderSpec struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Step  float64 `json:"step"`
}

var sliderBounds = map[analysis.Metric][3]float64{
	analysis.Burstiness:             {0, 3, 0.01},
	analysis.LexicalDiversity:       {0, 1, 0.01},
	analysis.SyntacticComplexity:    {0, 1, 0.01},
	analysis.AIismLikelihood:        {0, 100, 1},
	analysis.FunctionWordRatio:      {0, 1, 0.01},
	analysis.DiscourseMarkerDensity: {0, 30, 0.5},
	analysis.InformationDensity:     {0, 1, 0.01},
	analysis.EpistemicHedging:       {0, 0.30, 0.01},
}

// SliderSpecs returns one spec per metric in canonical order.
func SliderSpecs() []SliderSpec {
	out := make([]SliderSpec, 0, len(sliderBounds))
	for _, m := range analysis.AllMetrics() {
		b := sliderBounds[m]
		out = append(out, SliderSpec{
			Key:   string(m),
			Label: m.Label(),
			Min:   b[0],
			Max:   b[1],
			Step:  b[2],
		})
	}
	return out
}
