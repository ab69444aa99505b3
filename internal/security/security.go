package security

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	apperrors "github.com/ZanzyTHEbar/voicetracer/internal/errors"
	"github.com/ZanzyTHEbar/voicetracer/internal/monitoring"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// SecurityConfig holds security configuration
type SecurityConfig struct {
	MaxRequestsPerMin int
	AllowedOrigins    []string
	RequestTimeout    time.Duration
	LimiterIdleTTL    time.Duration
}

// DefaultSecurityConfig returns secure defaults
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		MaxRequestsPerMin: 60,
		AllowedOrigins:    []string{"http://localhost:3000", "http://localhost:8080"},
		RequestTimeout:    30 * time.Second,
		LimiterIdleTTL:    10 * time.Minute,
	}
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// SecurityMiddleware bundles the request guards shared by every route
type SecurityMiddleware struct {
	config  SecurityConfig
	metrics *monitoring.Metrics

	mu         sync.Mutex
	ipLimiters map[string]*ipLimiter
	now        func() time.Time
}

// NewSecurityMiddleware creates a new security middleware instance
func NewSecurityMiddleware(config SecurityConfig, metrics *monitoring.Metrics) *SecurityMiddleware {
	if config.LimiterIdleTTL <= 0 {
		config.LimiterIdleTTL = DefaultSecurityConfig().LimiterIdleTTL
	}
	return &SecurityMiddleware{
		config:     config,
		metrics:    metrics,
		ipLimiters: make(map[string]*ipLimiter),
		now:        time.Now,
	}
}

func (sm *SecurityMiddleware) limiterFor(ip string) *rate.Limiter {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	entry, exists := sm.ipLimiters[ip]
	if !exists {
		perMin := sm.config.MaxRequestsPerMin
		// Allow burst of up to half the requests per minute, minimum 5
		burst := perMin / 2
		if burst < 5 {
			burst = 5
		}
		entry = &ipLimiter{limiter: rate.NewLimiter(rate.Limit(float64(perMin)/60.0), burst)}
		sm.ipLimiters[ip] = entry
	}
	entry.lastSeen = sm.now()
	return entry.limiter
}

// RateLimitByIP implements per-IP rate limiting. A zero MaxRequestsPerMin
// disables it.
func (sm *SecurityMiddleware) RateLimitByIP(c *gin.Context) {
	if sm.config.MaxRequestsPerMin <= 0 {
		c.Next()
		return
	}

	if !sm.limiterFor(c.ClientIP()).Allow() {
		if sm.metrics != nil {
			sm.metrics.IncrementRateLimitHit()
		}
		_ = c.Error(apperrors.NewRateLimitError("60"))
		c.Abort()
		return
	}

	c.Next()
}

// LimiterCount reports how many client IPs are tracked
func (sm *SecurityMiddleware) LimiterCount() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return len(sm.ipLimiters)
}

// SecurityHeaders adds security headers to responses
func (sm *SecurityMiddleware) SecurityHeaders(c *gin.Context) {
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("X-Frame-Options", "DENY")
	c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
	c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

	if c.Request.TLS != nil {
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
	}

	// The Swagger UI needs inline scripts and styles
	if strings.HasPrefix(c.Request.URL.Path, "/swagger/") {
		c.Header("Content-Security-Policy", "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:")
	} else {
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
	}

	c.Next()
}

var allowedContentTypes = []string{
	"application/json",
	"multipart/form-data",
}

// ValidateContentType rejects request bodies that are neither JSON nor
// multipart uploads
func (sm *SecurityMiddleware) ValidateContentType(c *gin.Context) {
	contentType := strings.ToLower(c.GetHeader("Content-Type"))

	if contentType != "" && c.Request.ContentLength != 0 {
		found := false
		for _, allowed := range allowedContentTypes {
			if strings.HasPrefix(contentType, allowed) {
				found = true
				break
			}
		}

		if !found {
			_ = c.Error(apperrors.NewUnsupportedMediaError(
				fmt.Sprintf("unsupported content type %q", contentType), nil))
			c.Abort()
			return
		}
	}

	c.Next()
}

// RequestTimeout enforces request timeout
func (sm *SecurityMiddleware) RequestTimeout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), sm.config.RequestTimeout)
	defer cancel()

	c.Request = c.Request.WithContext(ctx)
	c.Header("X-Timeout", strconv.Itoa(int(sm.config.RequestTimeout.Seconds())))

	c.Next()
}

// CORS restricts cross-origin access to the configured origins. An empty
// list allows any origin.
func (sm *SecurityMiddleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Encoding", "X-Session-ID", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Disposition", "X-Session-ID", "X-Request-ID", "X-Cache"},
		MaxAge:        12 * time.Hour,
	}
	if len(sm.config.AllowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = sm.config.AllowedOrigins
	}
	return cors.New(cfg)
}

// Cleanup evicts idle rate limiters every interval until ctx is done
func (sm *SecurityMiddleware) Cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sm.cleanupOldLimiters()
			}
		}
	}()
}

// cleanupOldLimiters removes rate limiters for IPs that haven't been seen recently
func (sm *SecurityMiddleware) cleanupOldLimiters() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	cutoff := sm.now().Add(-sm.config.LimiterIdleTTL)
	removed := 0
	for ip, entry := range sm.ipLimiters {
		if entry.lastSeen.Before(cutoff) {
			delete(sm.ipLimiters, ip)
			removed++
		}
	}
	return removed
}
