package middleware

import (
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// MetricsCollector holds the in-process view a dashboard scrapes. The
// latency percentiles are the headline number for the degradation
// demo: P95 climbs as the injector's schedule advances while P50 stays
// near baseline.
type MetricsCollector struct {
	mu sync.RWMutex

	// Counters
	requestCount map[string]int64 // route:status
	errorCount   map[string]int64 // route
	slowCount    map[string]int64 // route, responses over slowThreshold

	// Histograms (simplified: track P50, P95, P99)
	latencies map[string][]time.Duration // route -> durations
}

// slowThreshold marks a response as degraded for the slow counter.
const slowThreshold = time.Second

var metricsCollector = &MetricsCollector{
	requestCount: make(map[string]int64),
	errorCount:   make(map[string]int64),
	slowCount:    make(map[string]int64),
	latencies:    make(map[string][]time.Duration),
}

// RecordRequest records a request with labels
func RecordRequest(route, status string) {
	metricsCollector.mu.Lock()
	defer metricsCollector.mu.Unlock()
	key := route + ":" + status
	metricsCollector.requestCount[key]++
}

// RecordLatency records request latency for a route
func RecordLatency(route string, duration time.Duration) {
	metricsCollector.mu.Lock()
	defer metricsCollector.mu.Unlock()
	metricsCollector.latencies[route] = append(metricsCollector.latencies[route], duration)
	// Keep only last 1000 samples per route
	if len(metricsCollector.latencies[route]) > 1000 {
		metricsCollector.latencies[route] = metricsCollector.latencies[route][1:]
	}
	if duration >= slowThreshold {
		metricsCollector.slowCount[route]++
	}
}

// RecordError records an error
func RecordError(route string) {
	metricsCollector.mu.Lock()
	defer metricsCollector.mu.Unlock()
	metricsCollector.errorCount[route]++
}

// GetMetrics returns current metrics for dashboard scraping
func GetMetrics() map[string]interface{} {
	metricsCollector.mu.RLock()
	defer metricsCollector.mu.RUnlock()

	// Build percentiles
	percentiles := make(map[string]map[string]float64)
	for route, durations := range metricsCollector.latencies {
		if len(durations) == 0 {
			continue
		}
		p50, p95, p99 := calculatePercentiles(durations)
		percentiles[route] = map[string]float64{
			"p50": p50,
			"p95": p95,
			"p99": p99,
		}
	}

	return map[string]interface{}{
		"requests_total":      metricsCollector.requestCount,
		"errors_total":        metricsCollector.errorCount,
		"requests_slow":       metricsCollector.slowCount,
		"latency_percentiles": percentiles,
	}
}

func calculatePercentiles(durations []time.Duration) (float64, float64, float64) {
	if len(durations) == 0 {
		return 0, 0, 0
	}

	sorted := make([]time.Duration, len(durations))
	copy(sorted, durations)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j] < sorted[i] {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	p50 := float64(sorted[len(sorted)*50/100].Milliseconds())
	p95 := float64(sorted[len(sorted)*95/100].Milliseconds())
	p99 := float64(sorted[len(sorted)*99/100].Milliseconds())

	return p50, p95, p99
}

// ResponseWriter wrapper to capture status code
type statusCapture struct {
	http.ResponseWriter
	statusCode int
}

func (sc *statusCapture) WriteHeader(code int) {
	sc.statusCode = code
	sc.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sc := &statusCapture{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(sc, r)

		duration := time.Since(start)
		route := r.URL.Path
		status := strconv.Itoa(sc.statusCode)

		RecordRequest(route, status)
		RecordLatency(route, duration)

		if sc.statusCode >= 400 {
			RecordError(route)
		}

		log.Printf("[METRIC] path=%s status=%d duration_ms=%d",
			route, sc.statusCode, duration.Milliseconds())
	})
}
