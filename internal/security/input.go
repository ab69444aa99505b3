package security

import (
	"net/http"
	"strings"
	"unicode/utf8"

	apperrors "github.com/ZanzyTHEbar/voicetracer/internal/errors"
	"github.com/gin-gonic/gin"
)

// LimitBody caps request bodies at maxBytes. Reads past the limit fail with
// *http.MaxBytesError, which the error handler maps to 413.
func LimitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			_ = c.Error(apperrors.NewPayloadTooLargeError(maxBytes))
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// ValidateText checks a submitted document: valid UTF-8 and no NUL bytes.
// Emptiness is not checked here; preprocessing rejects blank text with
// textproc.ErrEmptyInput.
func ValidateText(field, text string) error {
	if !utf8.ValidString(text) {
		return apperrors.NewValidationError(field+" contains invalid UTF-8 encoding", field)
	}
	if strings.ContainsRune(text, 0) {
		return apperrors.NewValidationError(field+" contains invalid characters", field)
	}
	return nil
}
