package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/voicetracer/internal/analysis"
	"github.com/ZanzyTHEbar/voicetracer/internal/calibration"
	apperrors "github.com/ZanzyTHEbar/voicetracer/internal/errors"
	"github.com/ZanzyTHEbar/voicetracer/internal/ingest"
	"github.com/ZanzyTHEbar/voicetracer/internal/report"
	"github.com/ZanzyTHEbar/voicetracer/internal/security"
	"github.com/ZanzyTHEbar/voicetracer/internal/textproc"
	"github.com/ZanzyTHEbar/voicetracer/internal/version"
	"github.com/gin-gonic/gin"
)

// multipartOverhead covers boundaries and part headers around an upload.
const multipartOverhead = 64 << 10

// bindJSON decodes the body into dst. Oversize bodies keep their
// MaxBytesError so they map to 413; anything else is a 400.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return apperrors.NewValidationError("Invalid request body", err.Error())
	}
	return nil
}

func (s *Server) lengthWarnings(texts map[string]string) []string {
	var warnings []string
	for _, field := range []string{"original", "edited", "text"} {
		text, ok := texts[field]
		if !ok {
			continue
		}
		if valid, msg := textproc.ValidateLength(text, s.cfg.Analysis.MinWords); !valid {
			warnings = append(warnings, field+": "+msg)
		}
	}
	return warnings
}

// analyzePair runs the pair analysis and scores it against the session's
// standards.
func (s *Server) analyzePair(c *gin.Context, req AnalyzeRequest) (*analysis.AnalysisResult, calibration.Payload, error) {
	if err := security.ValidateText("original", req.Original); err != nil {
		return nil, calibration.Payload{}, err
	}
	if err := security.ValidateText("edited", req.Edited); err != nil {
		return nil, calibration.Payload{}, err
	}

	start := time.Now()
	ctx := c.Request.Context()

	var (
		result *analysis.AnalysisResult
		err    error
	)
	if req.IncludeFluctuation {
		result, err = s.analyzer.AnalyzeWithRhythm(ctx, req.Original, req.Edited, analysis.DefaultRhythmThresholds())
	} else {
		result, err = s.analyzer.Analyze(ctx, req.Original, req.Edited)
	}
	if err != nil {
		return nil, calibration.Payload{}, err
	}

	standards := s.sessions.Get(sessionID(c))
	payload := calibration.BuildPayloadWithThreshold(result.Original.Metrics, result.Edited.Metrics,
		standards, s.cfg.Analysis.VoiceShiftThreshold)

	s.logger.AnalysisLogger("pair", len(req.Original)+len(req.Edited), len(result.AIisms), time.Since(start), false)
	return result, payload, nil
}

// handleHealth godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:         "ok",
		Version:        version.Version,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds:  time.Since(s.metrics.StartTime).Seconds(),
		ActiveSessions: s.sessions.Len(),
	})
}

// handleMetrics godoc
// @Summary      Service counters and response time percentiles
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /metrics [get]
func (s *Server) handleMetrics(c *gin.Context) {
	stats := s.metrics.GetStats()
	stats["compression"] = s.compression.GetStats()
	stats["active_sessions"] = s.sessions.Len()
	stats["tracked_clients"] = s.security.LimiterCount()
	c.JSON(http.StatusOK, stats)
}

// handleCacheStats godoc
// @Summary      Response cache statistics
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /cache/stats [get]
func (s *Server) handleCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.cache.Stats())
}

// handleAnalyze godoc
// @Summary      Compare an original document with its edited version
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header    string          false  "calibration session"
// @Param        request       body      AnalyzeRequest  true   "document pair"
// @Success      200           {object}  AnalyzeResponse
// @Failure      400           {object}  apperrors.ErrorResponse
// @Failure      413           {object}  apperrors.ErrorResponse
// @Failure      429           {object}  apperrors.ErrorResponse
// @Router       /api/v1/analyze [post]
func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	result, payload, err := s.analyzePair(c, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	s.metrics.RecordAnalysis("pair", len(result.AIisms))

	c.JSON(http.StatusOK, AnalyzeResponse{
		AnalysisResult: result,
		Calibration:    payload,
		Warnings:       s.lengthWarnings(map[string]string{"original": req.Original, "edited": req.Edited}),
	})
}

// handleDocumentMetrics godoc
// @Summary      Metrics for a single document
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body      DocumentRequest  true  "document"
// @Success      200      {object}  DocumentResponse
// @Failure      400      {object}  apperrors.ErrorResponse
// @Router       /api/v1/metrics [post]
func (s *Server) handleDocumentMetrics(c *gin.Context) {
	var req DocumentRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	if err := security.ValidateText("text", req.Text); err != nil {
		_ = c.Error(err)
		return
	}

	start := time.Now()
	doc, err := s.analyzer.AnalyzeDocument(c.Request.Context(), req.Text)
	if err != nil {
		_ = c.Error(err)
		return
	}
	s.metrics.RecordAnalysis("document", len(doc.AIisms))
	s.logger.AnalysisLogger("document", len(req.Text), len(doc.AIisms), time.Since(start), false)

	c.JSON(http.StatusOK, DocumentResponse{
		DocumentAnalysis: doc,
		Warnings:         s.lengthWarnings(map[string]string{"text": req.Text}),
	})
}

// handleIngest godoc
// @Summary      Extract text from an uploaded document
// @Tags         ingest
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  ".txt, .md, .pdf or .docx"
// @Success      200   {object}  IngestResponse
// @Failure      400   {object}  apperrors.ErrorResponse
// @Failure      413   {object}  apperrors.ErrorResponse
// @Failure      415   {object}  apperrors.ErrorResponse
// @Failure      422   {object}  apperrors.ErrorResponse
// @Router       /api/v1/ingest [post]
func (s *Server) handleIngest(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(err)
			return
		}
		_ = c.Error(apperrors.NewValidationError("A multipart field named \"file\" is required", err.Error()))
		return
	}

	f, err := header.Open()
	if err != nil {
		_ = c.Error(apperrors.NewInternalError("Failed to open upload", err))
		return
	}
	defer apperrors.SafeClose(f, "upload")

	doc, err := ingest.ParseReader(header.Filename, f, ingest.DefaultMaxBytes)
	if err != nil {
		_ = c.Error(err)
		return
	}
	s.metrics.RecordIngest(string(doc.Format))

	valid, message := textproc.ValidateLength(doc.Text, s.cfg.Analysis.MinWords)
	c.JSON(http.StatusOK, IngestResponse{
		Filename:   doc.Name,
		Format:     string(doc.Format),
		Size:       doc.Size,
		Text:       doc.Text,
		Stats:      textproc.Stats(doc.Text),
		Validation: Validation{Valid: valid, Message: message},
	})
}

// handleExport godoc
// @Summary      Analyze a pair and download the report
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Produce      text/csv
// @Produce      text/markdown
// @Param        format   query     string          false  "json, csv or md"  default(json)
// @Param        request  body      AnalyzeRequest  true   "document pair"
// @Success      200      {file}    file
// @Failure      400      {object}  apperrors.ErrorResponse
// @Router       /api/v1/export [post]
func (s *Server) handleExport(c *gin.Context) {
	format, err := report.ParseFormat(c.DefaultQuery("format", string(report.FormatJSON)))
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req AnalyzeRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	result, payload, err := s.analyzePair(c, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	s.metrics.RecordAnalysis("export", len(result.AIisms))

	var buf bytes.Buffer
	if err := report.Write(&buf, format, report.New(result, &payload)); err != nil {
		_ = c.Error(apperrors.NewInternalError("Failed to render report", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename(result.DocPairID)))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// handleGetCalibration godoc
// @Summary      Session reference standards
// @Tags         calibration
// @Produce      json
// @Param        X-Session-ID  header    string  false  "calibration session"
// @Success      200           {object}  CalibrationResponse
// @Router       /api/v1/calibration [get]
func (s *Server) handleGetCalibration(c *gin.Context) {
	c.JSON(http.StatusOK, s.calibrationResponse(sessionID(c)))
}

// handlePutCalibration godoc
// @Summary      Replace session reference standards
// @Description  Metrics missing from the body keep their default references.
// @Tags         calibration
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header    string                 false  "calibration session"
// @Param        request       body      calibration.Standards  true   "standards"
// @Success      200           {object}  CalibrationResponse
// @Failure      400           {object}  apperrors.ErrorResponse
// @Router       /api/v1/calibration [put]
func (s *Server) handlePutCalibration(c *gin.Context) {
	var req calibration.Standards
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}
	if err := req.Validate(); err != nil {
		_ = c.Error(err)
		return
	}

	merged := calibration.DefaultStandards()
	for key, v := range req.Human {
		merged.Human[key] = v
	}
	for key, v := range req.AI {
		merged.AI[key] = v
	}

	id := sessionID(c)
	if err := s.sessions.Put(id, merged); err != nil {
		_ = c.Error(err)
		return
	}
	s.cache.InvalidateSession(id)
	s.logger.CalibrationLogger(id, "update")

	c.JSON(http.StatusOK, s.calibrationResponse(id))
}

// handleResetCalibration godoc
// @Summary      Reset session standards to the defaults
// @Tags         calibration
// @Produce      json
// @Param        X-Session-ID  header    string  false  "calibration session"
// @Success      200           {object}  CalibrationResponse
// @Router       /api/v1/calibration/reset [post]
func (s *Server) handleResetCalibration(c *gin.Context) {
	id := sessionID(c)
	s.sessions.Reset(id)
	s.cache.InvalidateSession(id)
	s.logger.CalibrationLogger(id, "reset")

	c.JSON(http.StatusOK, s.calibrationResponse(id))
}

func (s *Server) calibrationResponse(id string) CalibrationResponse {
	return CalibrationResponse{
		SessionID:           id,
		Standards:           s.sessions.Get(id),
		Defaults:            calibration.DefaultStandards(),
		Sliders:             calibration.SliderSpecs(),
		VoiceShiftThreshold: s.cfg.Analysis.VoiceShiftThreshold,
	}
}

// handleBenchmarks godoc
// @Summary      Published reference corpora
// @Tags         reference
// @Produce      json
// @Success      200  {array}  calibration.Benchmark
// @Router       /api/v1/benchmarks [get]
func (s *Server) handleBenchmarks(c *gin.Context) {
	c.JSON(http.StatusOK, calibration.Benchmarks())
}

// handleDefinitions godoc
// @Summary      Metric definitions
// @Tags         reference
// @Produce      json
// @Success      200  {array}  analysis.Definition
// @Router       /api/v1/definitions [get]
func (s *Server) handleDefinitions(c *gin.Context) {
	c.JSON(http.StatusOK, analysis.Definitions())
}
