package app

import (
	"math"
	"sync/atomic"
	"time"
)

// Metrics tracks frame timing and event traffic.
type Metrics struct {
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64

	eventCount   atomic.Uint64
	handledCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{startTime: time.Now()}
	m.frameMinNs.Store(math.MaxInt64)
	return m
}

// RecordFrame records how long one frame took.
func (m *Metrics) RecordFrame(d time.Duration) {
	ns := d.Nanoseconds()
	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordEvent records one delivered event and whether it ended handled.
func (m *Metrics) RecordEvent(handled bool) {
	m.eventCount.Add(1)
	if handled {
		m.handledCount.Add(1)
	}
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Frames       uint64
	FrameAvg     time.Duration
	FrameMin     time.Duration
	FrameMax     time.Duration
	Events       uint64
	Handled      uint64
	Uptime       time.Duration
}

// Snapshot returns the current values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Frames:       m.frameCount.Load(),
		FrameMax:     time.Duration(m.frameMaxNs.Load()),
		Events:       m.eventCount.Load(),
		Handled:      m.handledCount.Load(),
		Uptime:       time.Since(m.startTime),
	}
	if s.Frames > 0 {
		s.FrameAvg = time.Duration(m.frameTotalNs.Load() / int64(s.Frames))
		s.FrameMin = time.Duration(m.frameMinNs.Load())
	}
	return s
}
