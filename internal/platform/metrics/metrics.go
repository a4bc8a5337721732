package metrics

import (
	"sync/atomic"
	"time"
)

// Collector aggregates counters across retention runs within one process.
// In run-once mode it covers a single run; in scheduled mode it accumulates
// until the process exits.
type Collector struct {
	runsTotal       uint64
	failedRuns      uint64
	recordsRemoved  uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) RecordRun(failed bool, removed int64, duration time.Duration) {
	atomic.AddUint64(&c.runsTotal, 1)
	if failed {
		atomic.AddUint64(&c.failedRuns, 1)
	}
	if removed > 0 {
		atomic.AddUint64(&c.recordsRemoved, uint64(removed))
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	runs := atomic.LoadUint64(&c.runsTotal)
	failed := atomic.LoadUint64(&c.failedRuns)
	removed := atomic.LoadUint64(&c.recordsRemoved)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if runs > 0 {
		avg = float64(totalMs) / float64(runs)
	}
	return map[string]any{
		"runsTotal":      runs,
		"failedRuns":     failed,
		"recordsRemoved": removed,
		"avgDurationMs":  avg,
	}
}
