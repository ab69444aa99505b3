// Package report serializes an analyzed document pair for download.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/voicetracer/internal/analysis"
	"github.com/ZanzyTHEbar/voicetracer/internal/calibration"
)

const Title = "VoiceTracer Analysis Report"

var ErrUnknownFormat = errors.New("unknown report format")

// Format is an export format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
)

// ParseFormat accepts "json", "csv", "md" or "markdown", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType is the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// Filename names the download for a document pair.
func (f Format) Filename(docPairID string) string {
	id := docPairID
	if len(id) > 8 {
		id = id[:8]
	}
	if id == "" {
		return "voicetracer_report." + string(f)
	}
	return "voicetracer_" + id + "." + string(f)
}

// Report is everything an exporter may read. Calibration is optional.
type Report struct {
	Result      *analysis.AnalysisResult
	Calibration *calibration.Payload
	GeneratedAt time.Time
}

// New builds a Report stamped with the current time.
func New(result *analysis.AnalysisResult, payload *calibration.Payload) Report {
	return Report{Result: result, Calibration: payload, GeneratedAt: time.Now().UTC()}
}

// Write serializes r to w in format f.
func Write(w io.Writer, f Format, r Report) error {
	if r.Result == nil {
		return errors.New("report has no analysis result")
	}
	switch f {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatCSV:
		return WriteCSV(w, r)
	case FormatMarkdown:
		return WriteMarkdown(w, r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(x*p) / p
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
