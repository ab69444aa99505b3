// Package cache holds serialized HTTP responses for repeated analysis
// requests.
package cache

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ZanzyTHEbar/voicetracer/internal/monitoring"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
)

// SessionHeader scopes cached responses to a calibration session.
const SessionHeader = "X-Session-ID"

type entry struct {
	contentType string
	body        []byte
}

// Cache is a TTL response cache backed by go-cache.
type Cache struct {
	items  *gocache.Cache
	ttl    time.Duration
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a cache whose entries live for ttl.
func New(ttl time.Duration) *Cache {
	return &Cache{
		items: gocache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

// Key derives the cache key for a request. The session prefix lets
// InvalidateSession drop one session's entries.
func Key(path, session string, body []byte) string {
	h := md5.New()
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write([]byte(session))
	h.Write([]byte{0})
	h.Write(body)
	return session + ":" + hex.EncodeToString(h.Sum(nil))
}

// Get retrieves a cached response body
func (c *Cache) Get(key string) ([]byte, string, bool) {
	v, found := c.items.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, "", false
	}
	c.hits.Add(1)
	e := v.(entry)
	return e.body, e.contentType, true
}

// Set stores a response body
func (c *Cache) Set(key, contentType string, body []byte) {
	c.items.SetDefault(key, entry{contentType: contentType, body: bytes.Clone(body)})
}

// InvalidateSession drops every entry cached for session. Calibration
// changes call this since cached analyses embed the session's scores.
func (c *Cache) InvalidateSession(session string) int {
	prefix := session + ":"
	n := 0
	for k := range c.items.Items() {
		if strings.HasPrefix(k, prefix) {
			c.items.Delete(k)
			n++
		}
	}
	return n
}

// Clear removes all items from the cache
func (c *Cache) Clear() {
	c.items.Flush()
}

// Size returns the number of items in the cache
func (c *Cache) Size() int {
	return c.items.ItemCount()
}

// Stats returns cache statistics
func (c *Cache) Stats() map[string]interface{} {
	hits, misses := c.hits.Load(), c.misses.Load()
	hitRate := float64(0)
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return map[string]interface{}{
		"items":            c.items.ItemCount(),
		"hits":             hits,
		"misses":           misses,
		"hit_rate_percent": hitRate,
		"ttl_seconds":      c.ttl.Seconds(),
	}
}

// Middleware caches successful POST responses on the listed paths.
func (c *Cache) Middleware(metrics *monitoring.Metrics, paths ...string) gin.HandlerFunc {
	cacheable := make(map[string]bool, len(paths))
	for _, p := range paths {
		cacheable[p] = true
	}

	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodPost || !cacheable[ctx.Request.URL.Path] {
			ctx.Next()
			return
		}

		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			// Let the handler surface the read error (e.g. body too large).
			ctx.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), errReader{err}))
			ctx.Next()
			return
		}
		ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

		key := Key(ctx.Request.URL.Path, ctx.GetHeader(SessionHeader), body)

		if data, contentType, found := c.Get(key); found {
			slog.Debug("Cache hit", "key", shortKey(key))
			if metrics != nil {
				metrics.IncrementCacheHit()
			}
			ctx.Header("X-Cache", "HIT")
			ctx.Data(http.StatusOK, contentType, data)
			ctx.Abort()
			return
		}

		if metrics != nil {
			metrics.IncrementCacheMiss()
		}
		ctx.Header("X-Cache", "MISS")

		wrapper := &responseWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = wrapper
		ctx.Next()

		if wrapper.Status() == http.StatusOK && len(ctx.Errors) == 0 {
			c.Set(key, wrapper.Header().Get("Content-Type"), wrapper.body.Bytes())
			slog.Debug("Response cached", "key", shortKey(key))
		}
	}
}

func shortKey(key string) string {
	if i := strings.LastIndexByte(key, ':'); i >= 0 && len(key)-i > 8 {
		return key[i+1:i+9] + "..."
	}
	return key
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

// responseWriter wraps gin.ResponseWriter to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
