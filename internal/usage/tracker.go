// Package usage tracks model-call health across evaluations.
package usage

import (
	"sync"

	"github.com/montanaflynn/stats"

	"gomandate/domain/decision"
)

// Summary aggregates recorded model traces
type Summary struct {
	Calls         int     `json:"calls"`
	FailedCalls   int     `json:"failed_calls"`
	MeanLatencyMs float64 `json:"mean_latency_ms"`
	P95LatencyMs  float64 `json:"p95_latency_ms"`
}

// Tracker accumulates model traces in memory. Safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	latencies []float64
	failed    int
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record adds one model trace to the aggregate
func (t *Tracker) Record(trace decision.ModelTrace) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latencies = append(t.latencies, float64(trace.LatencyMs))
	if trace.Degraded() {
		t.failed++
	}
}

// Summary computes aggregate call statistics
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	summary := Summary{
		Calls:       len(t.latencies),
		FailedCalls: t.failed,
	}
	if len(t.latencies) == 0 {
		return summary
	}

	// stats errors only on empty input, which is guarded above
	if mean, err := stats.Mean(t.latencies); err == nil {
		summary.MeanLatencyMs = mean
	}
	if p95, err := stats.Percentile(t.latencies, 95); err == nil {
		summary.P95LatencyMs = p95
	}
	return summary
}
