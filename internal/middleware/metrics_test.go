package middleware

import (
	"testing"
	"time"
)

func TestCalculatePercentiles(t *testing.T) {
	durations := make([]time.Duration, 100)
	for i := range durations {
		durations[i] = time.Duration(i+1) * time.Millisecond
	}

	p50, p95, p99 := calculatePercentiles(durations)
	if p50 != 51 {
		t.Errorf("p50 = %v, want 51", p50)
	}
	if p95 != 96 {
		t.Errorf("p95 = %v, want 96", p95)
	}
	if p99 != 100 {
		t.Errorf("p99 = %v, want 100", p99)
	}
}

func TestCalculatePercentilesEmpty(t *testing.T) {
	p50, p95, p99 := calculatePercentiles(nil)
	if p50 != 0 || p95 != 0 || p99 != 0 {
		t.Errorf("empty input: got %v %v %v, want zeros", p50, p95, p99)
	}
}

func TestRecordLatencySlowCount(t *testing.T) {
	RecordLatency("/test-slow-route", 2*time.Second)
	RecordLatency("/test-slow-route", 10*time.Millisecond)

	metricsCollector.mu.RLock()
	defer metricsCollector.mu.RUnlock()
	if got := metricsCollector.slowCount["/test-slow-route"]; got != 1 {
		t.Errorf("slow count = %d, want 1", got)
	}
}
