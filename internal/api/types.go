package api

import (
	"github.com/ZanzyTHEbar/voicetracer/internal/analysis"
	"github.com/ZanzyTHEbar/voicetracer/internal/calibration"
	"github.com/ZanzyTHEbar/voicetracer/internal/textproc"
)

// AnalyzeRequest is the body of /analyze and /export.
type AnalyzeRequest struct {
	Original           string `json:"original" example:"I think the results was suprising. We did not expect it."`
	Edited             string `json:"edited" example:"The results were surprising. Furthermore, they were unexpected."`
	IncludeFluctuation bool   `json:"include_fluctuation"`
}

// AnalyzeResponse is an AnalysisResult with the session's calibration.
type AnalyzeResponse struct {
	*analysis.AnalysisResult
	Calibration calibration.Payload `json:"calibration"`
	Warnings    []string            `json:"warnings,omitempty"`
}

// DocumentRequest is the body of /metrics.
type DocumentRequest struct {
	Text string `json:"text"`
}

// DocumentResponse is the single-document view.
type DocumentResponse struct {
	*analysis.DocumentAnalysis
	Warnings []string `json:"warnings,omitempty"`
}

// Validation reports whether a document is long enough for stable metrics.
type Validation struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// IngestResponse is the extracted text of an uploaded document.
type IngestResponse struct {
	Filename   string             `json:"filename"`
	Format     string             `json:"format"`
	Size       int64              `json:"size"`
	Text       string             `json:"text"`
	Stats      textproc.TextStats `json:"stats"`
	Validation Validation         `json:"validation"`
}

// CalibrationResponse is the session's reference standards.
type CalibrationResponse struct {
	SessionID           string                   `json:"session_id"`
	Standards           calibration.Standards    `json:"standards"`
	Defaults            calibration.Standards    `json:"defaults"`
	Sliders             []calibration.SliderSpec `json:"sliders"`
	VoiceShiftThreshold float64                  `json:"voice_shift_threshold"`
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status         string  `json:"status"`
	Version        string  `json:"version"`
	Timestamp      string  `json:"timestamp"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
	ActiveSessions int     `json:"active_sessions"`
}
