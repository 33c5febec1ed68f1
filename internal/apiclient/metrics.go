package apiclient

import (
	"sync/atomic"
	"time"
)

// metrics tracks backend call counters for one client
type metrics struct {
	calls   atomic.Int64
	errors  atomic.Int64
	latency atomic.Int64 // Total latency in nanoseconds
}

// Stats is a point-in-time view of a client's call counters.
type Stats struct {
	Calls            int64   `json:"calls"`
	Errors           int64   `json:"errors"`
	AverageLatencyMs float64 `json:"average_latency_ms"`
	ErrorRate        float64 `json:"error_rate_percent"`
}

func (m *metrics) record(duration time.Duration, err error) {
	m.calls.Add(1)
	m.latency.Add(duration.Nanoseconds())
	if err != nil {
		m.errors.Add(1)
	}
}

func (m *metrics) snapshot() Stats {
	calls := m.calls.Load()
	errs := m.errors.Load()
	s := Stats{Calls: calls, Errors: errs}
	if calls == 0 {
		return s
	}
	s.AverageLatencyMs = float64(m.latency.Load()) / float64(calls) / 1e6
	s.ErrorRate = float64(errs) / float64(calls) * 100
	return s
}
