package monitoring

import (
	"sync"
	"time"

	"ecolife/internal/models"
	"ecolife/internal/workorder"
)

// Monitor keeps a live snapshot of plant activity for the status endpoint
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
	now          func() time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
		now:       time.Now,
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// GetMetric returns a specific metric value
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	metrics := make(map[string]interface{}, len(m.metrics)+1)
	for k, v := range m.metrics {
		metrics[k] = v
	}
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()
	return metrics
}

// Reset clears all metrics
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

func (m *Monitor) increment(name string) {
	n, _ := m.metrics[name].(int)
	m.metrics[name] = n + 1
}

func (m *Monitor) stamp() string {
	return m.now().Format(time.RFC3339)
}

func (m *Monitor) ScheduleComputed(line, due int, elapsed time.Duration) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics["last_schedule_line"] = line
	m.metrics["last_schedule_due_tasks"] = due
	m.metrics["last_schedule_ms"] = float64(elapsed.Microseconds()) / 1000
	m.metrics["last_schedule_at"] = m.stamp()
}

func (m *Monitor) WorkOrderCreated(wo models.WorkOrder) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics["active_work_order"] = wo.ID
	m.increment("work_orders_created")
}

func (m *Monitor) WorkOrderArchived(wo models.WorkOrder, persisted bool) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	if m.metrics["active_work_order"] == wo.ID {
		delete(m.metrics, "active_work_order")
	}
	m.increment("work_orders_archived")
	if !persisted {
		m.increment("archive_persistence_failures")
		m.metrics["last_persistence_failure_at"] = m.stamp()
	}
}

func (m *Monitor) TaskChanged(change workorder.Change) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.increment("task_changes")
	m.metrics["last_task_change_at"] = m.stamp()
}
