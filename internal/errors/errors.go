package errors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/gin-gonic/gin"

	"github.com/ZanzyTHEbar/voicetracer/internal/analysis"
	"github.com/ZanzyTHEbar/voicetracer/internal/calibration"
	"github.com/ZanzyTHEbar/voicetracer/internal/config"
	"github.com/ZanzyTHEbar/voicetracer/internal/ingest"
	"github.com/ZanzyTHEbar/voicetracer/internal/report"
	"github.com/ZanzyTHEbar/voicetracer/internal/textproc"
)

// ErrorCategory defines the type of error for proper handling
type ErrorCategory string

const (
	CategoryValidation       ErrorCategory = "validation"
	CategoryUnsupportedMedia ErrorCategory = "unsupported_media"
	CategoryUnprocessable    ErrorCategory = "unprocessable"
	CategoryPayloadTooLarge  ErrorCategory = "payload_too_large"
	CategoryTimeout          ErrorCategory = "timeout"
	CategoryRateLimit        ErrorCategory = "rate_limit"
	CategoryInternal         ErrorCategory = "internal"
	CategoryConfiguration    ErrorCategory = "configuration"
)

var categoryCodes = map[ErrorCategory]string{
	CategoryValidation:       "VALIDATION_ERROR",
	CategoryUnsupportedMedia: "UNSUPPORTED_MEDIA_TYPE",
	CategoryUnprocessable:    "UNPROCESSABLE_ENTITY",
	CategoryPayloadTooLarge:  "PAYLOAD_TOO_LARGE",
	CategoryTimeout:          "TIMEOUT_ERROR",
	CategoryRateLimit:        "RATE_LIMIT_EXCEEDED",
	CategoryInternal:         "INTERNAL_ERROR",
	CategoryConfiguration:    "CONFIGURATION_ERROR",
}

// AppError wraps an errbuilder error with HTTP context
type AppError struct {
	*errbuilder.ErrBuilder
	Category   ErrorCategory     `json:"category"`
	HTTPStatus int               `json:"http_status"`
	Timestamp  time.Time         `json:"timestamp"`
	Context    map[string]string `json:"details,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
	StackTrace string            `json:"stack_trace,omitempty"`
}

// Code is the stable machine-readable error code.
func (e *AppError) Code() string {
	if code, ok := categoryCodes[e.Category]; ok {
		return code
	}
	return "UNKNOWN_ERROR"
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code(), e.ErrBuilder.Msg)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.ErrBuilder.Unwrap()
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Category  ErrorCategory     `json:"category"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// ErrorResponse wraps ErrorBody under an "error" key.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Response renders the error for an HTTP client. Causes and stack traces
// stay in the logs.
func (e *AppError) Response() ErrorResponse {
	return ErrorResponse{Error: ErrorBody{
		Code:      e.Code(),
		Message:   e.ErrBuilder.Msg,
		Category:  e.Category,
		Details:   e.Context,
		RequestID: e.RequestID,
		Timestamp: e.Timestamp,
	}}
}

// NewAppError creates an AppError from errbuilder with additional context
func NewAppError(builder *errbuilder.ErrBuilder, category ErrorCategory, httpStatus int) *AppError {
	return &AppError{
		ErrBuilder: builder,
		Category:   category,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now().UTC(),
	}
}

// withDetail records key=value both on the errbuilder details and on the
// client-facing context.
func (e *AppError) withDetail(key, value string) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value

	errorMap := errbuilder.ErrorMap{}
	for k, v := range e.Context {
		errorMap.Set(k, errors.New(v))
	}
	e.ErrBuilder = e.ErrBuilder.WithDetails(errbuilder.NewErrDetails(errorMap))
	return e
}

func withCause(builder *errbuilder.ErrBuilder, cause error) *errbuilder.ErrBuilder {
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

// NewValidationError creates a 400 error. The first detail, if any, is
// reported as validation_details.
func NewValidationError(message string, details ...interface{}) *AppError {
	appErr := NewAppError(errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg(message), CategoryValidation, http.StatusBadRequest)
	if len(details) > 0 {
		appErr.withDetail("validation_details", fmt.Sprintf("%v", details[0]))
	}
	return appErr
}

// NewValidationErrorWithMap creates a validation error listing one message
// per field.
func NewValidationErrorWithMap(fields map[string]string) *AppError {
	appErr := NewAppError(errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("Multiple validation errors"), CategoryValidation, http.StatusBadRequest)
	for field, message := range fields {
		appErr.withDetail(field, message)
	}
	return appErr
}

// NewUnsupportedMediaError rejects an upload or body type the server cannot read.
func NewUnsupportedMediaError(message string, cause error) *AppError {
	appErr := NewAppError(withCause(errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg(message), cause), CategoryUnsupportedMedia, http.StatusUnsupportedMediaType)
	supported := ""
	for i, f := range ingest.Formats() {
		if i > 0 {
			supported += ", "
		}
		supported += "." + string(f)
	}
	return appErr.withDetail("supported_formats", supported)
}

// NewUnprocessableError reports input that is well-formed but cannot be used.
func NewUnprocessableError(message string, cause error) *AppError {
	return NewAppError(withCause(errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg(message), cause), CategoryUnprocessable, http.StatusUnprocessableEntity)
}

// NewPayloadTooLargeError reports a body or upload over the size limit.
func NewPayloadTooLargeError(limitBytes int64) *AppError {
	appErr := NewAppError(errbuilder.New().WithCode(errbuilder.CodeResourceExhausted).WithMsg("Request body too large"), CategoryPayloadTooLarge, http.StatusRequestEntityTooLarge)
	if limitBytes > 0 {
		appErr.withDetail("limit_bytes", fmt.Sprintf("%d", limitBytes))
	}
	return appErr
}

// NewTimeoutError creates a timeout error using errbuilder
func NewTimeoutError(message string, cause error) *AppError {
	return NewAppError(withCause(errbuilder.New().WithCode(errbuilder.CodeDeadlineExceeded).WithMsg(message), cause), CategoryTimeout, http.StatusGatewayTimeout)
}

// NewRateLimitError creates a rate limit error using errbuilder
func NewRateLimitError(retryAfter string) *AppError {
	appErr := NewAppError(errbuilder.New().WithCode(errbuilder.CodeResourceExhausted).WithMsg("Rate limit exceeded"), CategoryRateLimit, http.StatusTooManyRequests)
	return appErr.withDetail("retry_after", retryAfter)
}

// NewInternalError creates an internal server error using errbuilder
func NewInternalError(message string, cause error) *AppError {
	errorMap := errbuilder.ErrorMap{}
	errorMap.Set("internal_details", errors.New(message))

	builder := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("Internal server error").
		WithDetails(errbuilder.NewErrDetails(errorMap))

	// internal details go to the logs only, never to Context
	appErr := NewAppError(withCause(builder, cause), CategoryInternal, http.StatusInternalServerError)

	// Capture stack trace in development/debug mode
	if gin.Mode() == gin.DebugMode || gin.Mode() == gin.TestMode {
		appErr.StackTrace = captureStackTrace()
	}
	return appErr
}

// NewConfigurationError creates a configuration error using errbuilder
func NewConfigurationError(message string, cause error) *AppError {
	appErr := NewAppError(withCause(errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("Configuration error"), cause), CategoryConfiguration, http.StatusInternalServerError)
	return appErr.withDetail("config_details", message)
}

func captureStackTrace() string {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}

// ErrorHandler is a Gin middleware that renders the last error attached
// with c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := ToAppError(c.Errors.Last().Err)
		appErr.RequestID = c.Writer.Header().Get("X-Request-ID")
		LogError(c, appErr)

		if appErr.Category == CategoryRateLimit {
			if retry, ok := appErr.Context["retry_after"]; ok {
				c.Header("Retry-After", retry)
			}
		}
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.Response())
	}
}

// RecoveryHandler provides panic recovery with structured error responses
func RecoveryHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		appErr := NewInternalError(
			fmt.Sprintf("Panic recovered: %v", recovered),
			fmt.Errorf("%v", recovered),
		)
		appErr.StackTrace = captureStackTrace()

		LogError(c, appErr)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.Response())
	})
}

// ToAppError converts any error to an AppError, mapping domain sentinels
// to their HTTP category.
func ToAppError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var ebErr *errbuilder.ErrBuilder
	if errors.As(err, &ebErr) {
		return NewAppError(ebErr, CategoryInternal, http.StatusInternalServerError)
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return NewPayloadTooLargeError(maxBytesErr.Limit)
	case errors.Is(err, ingest.ErrTooLarge):
		return NewPayloadTooLargeError(0)
	case errors.Is(err, ingest.ErrUnsupportedFormat):
		return NewUnsupportedMediaError(err.Error(), err)
	case errors.Is(err, ingest.ErrCorruptFile), errors.Is(err, ingest.ErrNoText):
		return NewUnprocessableError(err.Error(), err)
	case errors.Is(err, textproc.ErrEmptyInput),
		errors.Is(err, calibration.ErrInvalidStandards),
		errors.Is(err, analysis.ErrInvalidThresholds),
		errors.Is(err, analysis.ErrUnknownMetric),
		errors.Is(err, report.ErrUnknownFormat):
		return NewValidationError(err.Error())
	case errors.Is(err, config.ErrInvalidConfig):
		return NewConfigurationError(err.Error(), err)
	case errors.Is(err, context.DeadlineExceeded):
		return NewTimeoutError("Request deadline exceeded", err)
	case errors.Is(err, context.Canceled):
		return NewTimeoutError("Request cancelled", err)
	}

	return NewInternalError("An unexpected error occurred", err)
}

// LogError logs an error with appropriate level and context
func LogError(c *gin.Context, err *AppError) {
	logEntry := slog.With(
		"error_category", err.Category,
		"error_code", err.Code(),
		"http_status", err.HTTPStatus,
		"ip", c.ClientIP(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", err.RequestID,
	)

	errorMsg := err.ErrBuilder.Msg
	cause := err.ErrBuilder.Unwrap()

	switch err.Category {
	case CategoryValidation, CategoryRateLimit, CategoryUnsupportedMedia,
		CategoryUnprocessable, CategoryPayloadTooLarge:
		if len(err.Context) > 0 {
			logEntry.Warn(errorMsg, "details", err.Context)
		} else {
			logEntry.Warn(errorMsg)
		}
	case CategoryTimeout:
		if cause != nil {
			logEntry.Info(errorMsg, "cause", cause)
		} else {
			logEntry.Info(errorMsg)
		}
	default:
		if cause != nil {
			logEntry.Error(errorMsg, "cause", cause)
		} else {
			logEntry.Error(errorMsg)
		}
	}

	if err.StackTrace != "" && (gin.Mode() == gin.DebugMode || gin.Mode() == gin.TestMode) {
		logEntry.Debug("stack_trace", "trace", err.StackTrace)
	}
}

// WrapError wraps an error with additional context
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(message, args...), err)
}

// SafeClose closes a resource and logs any error
func SafeClose(closer interface{ Close() error }, resourceName string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		slog.Warn("Failed to close resource",
			"resource", resourceName,
			"error", err)
	}
}
