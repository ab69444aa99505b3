package cache

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/voicetracer/internal/monitoring"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestKey(t *testing.T) {
	base := Key("/api/v1/analyze", "s1", []byte(`{"a":1}`))
	assert.True(t, strings.HasPrefix(base, "s1:"))
	assert.Equal(t, base, Key("/api/v1/analyze", "s1", []byte(`{"a":1}`)))
	assert.NotEqual(t, base, Key("/api/v1/metrics", "s1", []byte(`{"a":1}`)))
	assert.NotEqual(t, base, Key("/api/v1/analyze", "s2", []byte(`{"a":1}`)))
	assert.NotEqual(t, base, Key("/api/v1/analyze", "s1", []byte(`{"a":2}`)))
}

func TestCache_GetSetStats(t *testing.T) {
	c := New(time.Minute)

	_, _, found := c.Get("missing")
	assert.False(t, found)

	body := []byte("payload")
	c.Set("k", "application/json", body)
	body[0] = 'X'

	got, contentType, found := c.Get("k")
	require.True(t, found)
	assert.Equal(t, "payload", string(got))
	assert.Equal(t, "application/json", contentType)

	stats := c.Stats()
	assert.Equal(t, 1, stats["items"])
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.Equal(t, 50.0, stats["hit_rate_percent"])

	c.Clear()
	assert.Zero(t, c.Size())
}

func TestCache_Expiry(t *testing.T) {
	c := New(20 * time.Millisecond)
	c.Set("k", "text/plain", []byte("v"))
	time.Sleep(40 * time.Millisecond)
	_, _, found := c.Get("k")
	assert.False(t, found)
}

func TestCache_InvalidateSession(t *testing.T) {
	c := New(time.Minute)
	c.Set(Key("/a", "alpha", nil), "text/plain", []byte("1"))
	c.Set(Key("/b", "alpha", nil), "text/plain", []byte("2"))
	c.Set(Key("/a", "beta", nil), "text/plain", []byte("3"))

	assert.Equal(t, 2, c.InvalidateSession("alpha"))
	assert.Equal(t, 1, c.Size())
	_, _, found := c.Get(Key("/a", "beta", nil))
	assert.True(t, found)
}

func TestMiddleware(t *testing.T) {
	c := New(time.Minute)
	metrics := monitoring.NewMetrics()
	calls := 0

	r := gin.New()
	r.Use(c.Middleware(metrics, "/analyze", "/fail"))
	r.POST("/analyze", func(ctx *gin.Context) {
		calls++
		ctx.JSON(http.StatusOK, gin.H{"calls": calls})
	})
	r.POST("/other", func(ctx *gin.Context) {
		calls++
		ctx.Status(http.StatusOK)
	})
	r.POST("/fail", func(ctx *gin.Context) {
		calls++
		ctx.Status(http.StatusBadRequest)
	})

	do := func(path, session, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		if session != "" {
			req.Header.Set(SessionHeader, session)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	first := do("/analyze", "s1", `{"x":1}`)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	second := do("/analyze", "s1", `{"x":1}`)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, 1, calls)

	do("/analyze", "s2", `{"x":1}`)
	assert.Equal(t, 2, calls, "sessions do not share entries")

	do("/other", "s1", `{}`)
	do("/other", "s1", `{}`)
	assert.Equal(t, 4, calls, "paths outside the list are not cached")

	do("/fail", "s1", `{}`)
	do("/fail", "s1", `{}`)
	assert.Equal(t, 6, calls, "error responses are not cached")

	assert.Equal(t, int64(1), metrics.CacheHits)
	assert.Equal(t, int64(4), metrics.CacheMisses)
}
