package monitoring

import (
	"maps"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

const maxResponseSamples = 1000

// Metrics holds application counters. The zero value is not usable; call
// NewMetrics.
type Metrics struct {
	RequestCount   int64
	ErrorCount     int64
	CacheHits      int64
	CacheMisses    int64
	RateLimitHits  int64
	AIismsDetected int64
	StartTime      time.Time

	responseTimes      []time.Duration
	responseTimesMutex sync.RWMutex

	requestCountByStatus map[int]int64
	statusMutex          sync.RWMutex

	analysesByKind map[string]int64
	ingestByFormat map[string]int64
	domainMutex    sync.RWMutex
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime:            time.Now(),
		responseTimes:        make([]time.Duration, 0, maxResponseSamples),
		requestCountByStatus: make(map[int]int64),
		analysesByKind:       make(map[string]int64),
		ingestByFormat:       make(map[string]int64),
	}
}

func (m *Metrics) IncrementRequest()      { atomic.AddInt64(&m.RequestCount, 1) }
func (m *Metrics) IncrementError()        { atomic.AddInt64(&m.ErrorCount, 1) }
func (m *Metrics) IncrementCacheHit()     { atomic.AddInt64(&m.CacheHits, 1) }
func (m *Metrics) IncrementCacheMiss()    { atomic.AddInt64(&m.CacheMisses, 1) }
func (m *Metrics) IncrementRateLimitHit() { atomic.AddInt64(&m.RateLimitHits, 1) }

// RecordAnalysis counts one analysis of the given kind ("pair", "document",
// "export") and the AI-isms it reported.
func (m *Metrics) RecordAnalysis(kind string, aiIsms int) {
	atomic.AddInt64(&m.AIismsDetected, int64(aiIsms))
	m.domainMutex.Lock()
	m.analysesByKind[kind]++
	m.domainMutex.Unlock()
}

// RecordIngest counts one parsed upload by format.
func (m *Metrics) RecordIngest(format string) {
	m.domainMutex.Lock()
	m.ingestByFormat[format]++
	m.domainMutex.Unlock()
}

// RecordResponseTime keeps the most recent samples for percentiles
func (m *Metrics) RecordResponseTime(duration time.Duration) {
	m.responseTimesMutex.Lock()
	m.responseTimes = append(m.responseTimes, duration)
	if len(m.responseTimes) > maxResponseSamples {
		m.responseTimes = m.responseTimes[1:]
	}
	m.responseTimesMutex.Unlock()
}

// RecordRequestByStatus records request count by HTTP status code
func (m *Metrics) RecordRequestByStatus(statusCode int) {
	m.statusMutex.Lock()
	defer m.statusMutex.Unlock()
	m.requestCountByStatus[statusCode]++
}

// GetPercentileResponseTime calculates percentile response time
func (m *Metrics) GetPercentileResponseTime(percentile float64) time.Duration {
	m.responseTimesMutex.RLock()
	times := slices.Clone(m.responseTimes)
	m.responseTimesMutex.RUnlock()

	if len(times) == 0 {
		return 0
	}
	slices.Sort(times)

	index := int(float64(len(times)-1) * percentile / 100.0)
	if index >= len(times) {
		index = len(times) - 1
	}
	return times[index]
}

// GetStatusCodeDistribution returns request count by status code
func (m *Metrics) GetStatusCodeDistribution() map[int]int64 {
	m.statusMutex.RLock()
	defer m.statusMutex.RUnlock()
	return maps.Clone(m.requestCountByStatus)
}

func (m *Metrics) averageResponseTime() time.Duration {
	m.responseTimesMutex.RLock()
	defer m.responseTimesMutex.RUnlock()
	if len(m.responseTimes) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range m.responseTimes {
		total += d
	}
	return total / time.Duration(len(m.responseTimes))
}

// GetStats returns current metrics statistics
func (m *Metrics) GetStats() map[string]interface{} {
	requests := atomic.LoadInt64(&m.RequestCount)
	errors := atomic.LoadInt64(&m.ErrorCount)
	cacheHits := atomic.LoadInt64(&m.CacheHits)
	cacheMisses := atomic.LoadInt64(&m.CacheMisses)

	errorRate := float64(0)
	if requests > 0 {
		errorRate = float64(errors) / float64(requests) * 100
	}

	cacheHitRate := float64(0)
	if total := cacheHits + cacheMisses; total > 0 {
		cacheHitRate = float64(cacheHits) / float64(total) * 100
	}

	m.domainMutex.RLock()
	analyses := maps.Clone(m.analysesByKind)
	ingests := maps.Clone(m.ingestByFormat)
	m.domainMutex.RUnlock()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return map[string]interface{}{
		"uptime_seconds":         time.Since(m.StartTime).Seconds(),
		"start_time":             m.StartTime.Format(time.RFC3339),
		"total_requests":         requests,
		"error_count":            errors,
		"error_rate_percent":     errorRate,
		"cache_hits":             cacheHits,
		"cache_misses":           cacheMisses,
		"cache_hit_rate_percent": cacheHitRate,
		"rate_limit_hits":        atomic.LoadInt64(&m.RateLimitHits),

		"avg_response_time_ms":     float64(m.averageResponseTime()) / float64(time.Millisecond),
		"p50_response_time_ms":     float64(m.GetPercentileResponseTime(50)) / float64(time.Millisecond),
		"p95_response_time_ms":     float64(m.GetPercentileResponseTime(95)) / float64(time.Millisecond),
		"p99_response_time_ms":     float64(m.GetPercentileResponseTime(99)) / float64(time.Millisecond),
		"status_code_distribution": m.GetStatusCodeDistribution(),

		"analyses_by_kind":    analyses,
		"ingests_by_format":   ingests,
		"ai_isms_detected":    atomic.LoadInt64(&m.AIismsDetected),
		"go_goroutines":       runtime.NumGoroutine(),
		"go_gc_count":         mem.NumGC,
		"go_heap_alloc_bytes": mem.HeapAlloc,
		"go_heap_sys_bytes":   mem.HeapSys,
	}
}

// Reset clears all metrics
func (m *Metrics) Reset() {
	atomic.StoreInt64(&m.RequestCount, 0)
	atomic.StoreInt64(&m.ErrorCount, 0)
	atomic.StoreInt64(&m.CacheHits, 0)
	atomic.StoreInt64(&m.CacheMisses, 0)
	atomic.StoreInt64(&m.RateLimitHits, 0)
	atomic.StoreInt64(&m.AIismsDetected, 0)

	m.responseTimesMutex.Lock()
	m.responseTimes = m.responseTimes[:0]
	m.responseTimesMutex.Unlock()

	m.statusMutex.Lock()
	m.requestCountByStatus = make(map[int]int64)
	m.statusMutex.Unlock()

	m.domainMutex.Lock()
	m.analysesByKind = make(map[string]int64)
	m.ingestByFormat = make(map[string]int64)
	m.domainMutex.Unlock()

	m.StartTime = time.Now()
}
