package dispatcher

import (
	"sort"
	"sync"
	"time"

	"github.com/dshills/blockstorm/internal/dispatcher/handler"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	actionMetrics map[string]*ActionMetrics

	totalDispatches uint64
	totalDeclined   uint64
	totalErrors     uint64
	totalPanics     uint64
	totalDuration   time.Duration
}

// ActionMetrics holds metrics for a specific action.
type ActionMetrics struct {
	Name          string
	DispatchCount uint64
	HandledCount  uint64
	DeclinedCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastStatus    handler.ResultStatus
	LastDispatch  time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actionMetrics: make(map[string]*ActionMetrics),
	}
}

// RecordDispatch records one dispatched action and its final status.
func (m *Metrics) RecordDispatch(actionName string, duration time.Duration, status handler.ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration

	am := m.actionMetrics[actionName]
	if am == nil {
		am = &ActionMetrics{Name: actionName}
		m.actionMetrics[actionName] = am
	}
	am.DispatchCount++
	am.TotalDuration += duration
	am.LastStatus = status
	am.LastDispatch = time.Now()
	if duration > am.MaxDuration {
		am.MaxDuration = duration
	}

	switch status {
	case handler.StatusOK:
		am.HandledCount++
	case handler.StatusNoOp:
		m.totalDeclined++
		am.DeclinedCount++
	case handler.StatusError:
		m.totalErrors++
		am.ErrorCount++
	}
}

// RecordPanic records a panic recovery.
func (m *Metrics) RecordPanic(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalPanics++
}

// ActionStats returns a copy of the metrics for one action, or nil.
func (m *Metrics) ActionStats(actionName string) *ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	am := m.actionMetrics[actionName]
	if am == nil {
		return nil
	}
	c := *am
	return &c
}

// TopActions returns the n most dispatched actions.
func (m *Metrics) TopActions(n int) []*ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	actions := make([]*ActionMetrics, 0, len(m.actionMetrics))
	for _, am := range m.actionMetrics {
		c := *am
		actions = append(actions, &c)
	}
	sort.Slice(actions, func(i, j int) bool {
		if actions[i].DispatchCount != actions[j].DispatchCount {
			return actions[i].DispatchCount > actions[j].DispatchCount
		}
		return actions[i].Name < actions[j].Name
	})
	return actions[:min(n, len(actions))]
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actionMetrics = make(map[string]*ActionMetrics)
	m.totalDispatches = 0
	m.totalDeclined = 0
	m.totalErrors = 0
	m.totalPanics = 0
	m.totalDuration = 0
}

// MetricsSnapshot is a point-in-time copy of the global counters.
type MetricsSnapshot struct {
	TotalDispatches uint64
	TotalDeclined   uint64
	TotalErrors     uint64
	TotalPanics     uint64
	AverageDuration time.Duration
	ActionCount     int
	Timestamp       time.Time
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := MetricsSnapshot{
		TotalDispatches: m.totalDispatches,
		TotalDeclined:   m.totalDeclined,
		TotalErrors:     m.totalErrors,
		TotalPanics:     m.totalPanics,
		ActionCount:     len(m.actionMetrics),
		Timestamp:       time.Now(),
	}
	if m.totalDispatches > 0 {
		s.AverageDuration = m.totalDuration / time.Duration(m.totalDispatches)
	}
	return s
}
