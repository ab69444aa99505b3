package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/voicetracer/internal/calibration"
	"github.com/ZanzyTHEbar/voicetracer/internal/ingest"
	"github.com/ZanzyTHEbar/voicetracer/internal/textproc"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		category ErrorCategory
		status   int
		code     string
	}{
		{"validation", NewValidationError("bad input", "field"), CategoryValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unsupported media", NewUnsupportedMediaError("no .xlsx", nil), CategoryUnsupportedMedia, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE"},
		{"unprocessable", NewUnprocessableError("corrupt", nil), CategoryUnprocessable, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{"too large", NewPayloadTooLargeError(1024), CategoryPayloadTooLarge, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
		{"rate limit", NewRateLimitError("60"), CategoryRateLimit, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED"},
		{"timeout", NewTimeoutError("slow", context.DeadlineExceeded), CategoryTimeout, http.StatusGatewayTimeout, "TIMEOUT_ERROR"},
		{"internal", NewInternalError("boom", nil), CategoryInternal, http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"configuration", NewConfigurationError("missing", nil), CategoryConfiguration, http.StatusInternalServerError, "CONFIGURATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code())
			assert.Contains(t, tt.err.Error(), "["+tt.code+"]")
		})
	}
}

func TestDetails(t *testing.T) {
	assert.Equal(t, "[VALIDATION_ERROR] bad input", NewValidationError("bad input").Error())
	assert.Equal(t, "field", NewValidationError("bad input", "field").Context["validation_details"])
	assert.Equal(t, "1024", NewPayloadTooLargeError(1024).Context["limit_bytes"])
	assert.Equal(t, ".txt, .md, .pdf, .docx", NewUnsupportedMediaError("nope", nil).Context["supported_formats"])

	multi := NewValidationErrorWithMap(map[string]string{"original": "required", "edited": "required"})
	assert.Len(t, multi.Context, 2)

	internal := NewInternalError("secret detail", nil)
	assert.NotContains(t, internal.Context, "internal_details")
}

func TestToAppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		status   int
	}{
		{"empty input", fmt.Errorf("original: %w", textproc.ErrEmptyInput), CategoryValidation, http.StatusBadRequest},
		{"invalid standards", fmt.Errorf("%w: bad key", calibration.ErrInvalidStandards), CategoryValidation, http.StatusBadRequest},
		{"unsupported format", fmt.Errorf("%w: .xlsx", ingest.ErrUnsupportedFormat), CategoryUnsupportedMedia, http.StatusUnsupportedMediaType},
		{"corrupt file", fmt.Errorf("%w: zip", ingest.ErrCorruptFile), CategoryUnprocessable, http.StatusUnprocessableEntity},
		{"no text", ingest.ErrNoText, CategoryUnprocessable, http.StatusUnprocessableEntity},
		{"ingest too large", ingest.ErrTooLarge, CategoryPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{"max bytes", fmt.Errorf("bind: %w", &http.MaxBytesError{Limit: 10}), CategoryPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{"deadline", fmt.Errorf("analyze: %w", context.DeadlineExceeded), CategoryTimeout, http.StatusGatewayTimeout},
		{"canceled", context.Canceled, CategoryTimeout, http.StatusGatewayTimeout},
		{"unknown", fmt.Errorf("standard error"), CategoryInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := ToAppError(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.category, appErr.Category)
			assert.Equal(t, tt.status, appErr.HTTPStatus)
		})
	}

	assert.Nil(t, ToAppError(nil))

	original := NewRateLimitError("5")
	assert.Same(t, original, ToAppError(fmt.Errorf("wrapped: %w", original)))
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/limited", func(c *gin.Context) {
		_ = c.Error(NewRateLimitError("30"))
	})
	r.GET("/empty", func(c *gin.Context) {
		_ = c.Error(textproc.ErrEmptyInput)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", body.Error.Code)
	assert.Equal(t, "Rate limit exceeded", body.Error.Message)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/empty", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}

func TestRecoveryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RecoveryHandler())
	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "kaboom")
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "ctx"))

	err := WrapError(ingest.ErrNoText, "parse %s", "a.pdf")
	assert.EqualError(t, err, "parse a.pdf: no extractable text found")
	assert.ErrorIs(t, err, ingest.ErrNoText)
}
