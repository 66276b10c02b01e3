package diskmap

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSave is called after each save attempt. bytes is the size of
	// the compressed body written; err is nil if successful.
	RecordSave(duration time.Duration, bytes int64, err error)

	// RecordLoad is called after each open that touched a file. entries is
	// the number of records loaded; err is nil if successful.
	RecordLoad(duration time.Duration, entries int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSave(time.Duration, int64, error) {}
func (NoopMetricsCollector) RecordLoad(time.Duration, int, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SaveCount      atomic.Int64
	SaveErrors     atomic.Int64
	SaveTotalNanos atomic.Int64
	SavedBytes     atomic.Int64
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	LoadTotalNanos atomic.Int64
	LoadedEntries  atomic.Int64
}

func (m *BasicMetricsCollector) RecordSave(d time.Duration, bytes int64, err error) {
	m.SaveCount.Add(1)
	m.SaveTotalNanos.Add(d.Nanoseconds())
	if err != nil {
		m.SaveErrors.Add(1)
		return
	}
	m.SavedBytes.Add(bytes)
}

func (m *BasicMetricsCollector) RecordLoad(d time.Duration, entries int, err error) {
	m.LoadCount.Add(1)
	m.LoadTotalNanos.Add(d.Nanoseconds())
	if err != nil {
		m.LoadErrors.Add(1)
		return
	}
	m.LoadedEntries.Add(int64(entries))
}

// Stats is a point-in-time snapshot of a BasicMetricsCollector.
type Stats struct {
	SaveCount     int64
	SaveErrors    int64
	SaveAvgNanos  int64
	SavedBytes    int64
	LoadCount     int64
	LoadErrors    int64
	LoadAvgNanos  int64
	LoadedEntries int64
}

// GetStats returns a snapshot of the collected metrics.
func (m *BasicMetricsCollector) GetStats() Stats {
	s := Stats{
		SaveCount:     m.SaveCount.Load(),
		SaveErrors:    m.SaveErrors.Load(),
		SavedBytes:    m.SavedBytes.Load(),
		LoadCount:     m.LoadCount.Load(),
		LoadErrors:    m.LoadErrors.Load(),
		LoadedEntries: m.LoadedEntries.Load(),
	}
	if s.SaveCount > 0 {
		s.SaveAvgNanos = m.SaveTotalNanos.Load() / s.SaveCount
	}
	if s.LoadCount > 0 {
		s.LoadAvgNanos = m.LoadTotalNanos.Load() / s.LoadCount
	}
	return s
}
