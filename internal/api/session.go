package api

import (
	"github.com/ZanzyTHEbar/voicetracer/internal/cache"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader   = cache.SessionHeader
	sessionKey      = "session_id"
	maxSessionIDLen = 128
)

// SessionMiddleware resolves the calibration session from X-Session-ID,
// minting a UUID when the header is absent, and echoes it back. The minted
// ID is written to the request header too so the response cache keys on it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" || len(id) > maxSessionIDLen {
			id = uuid.NewString()
			c.Request.Header.Set(SessionHeader, id)
		}
		c.Set(sessionKey, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
