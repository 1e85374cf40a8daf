package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"ecolife/internal/models"
	"ecolife/internal/workorder"
)

// Collector exposes maintenance activity as prometheus metrics
type Collector struct {
	registry *prometheus.Registry

	scheduleRuns       *prometheus.CounterVec
	scheduleDue        *prometheus.GaugeVec
	scheduleDuration   prometheus.Histogram
	workOrdersCreated  *prometheus.CounterVec
	workOrdersArchived *prometheus.CounterVec
	taskChanges        *prometheus.CounterVec
	recommendations    *prometheus.CounterVec
	recommendLatency   prometheus.Histogram
}

// NewCollector creates a collector with its own registry
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		scheduleRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecolife_schedule_runs_total",
				Help: "Number of schedule computations",
			},
			[]string{"line"},
		),
		scheduleDue: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ecolife_schedule_due_tasks",
				Help: "Tasks due in the last computed schedule",
			},
			[]string{"line"},
		),
		scheduleDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ecolife_schedule_duration_seconds",
				Help:    "Time taken to compute a schedule",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		workOrdersCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecolife_work_orders_created_total",
				Help: "Work orders generated from a schedule",
			},
			[]string{"line"},
		),
		workOrdersArchived: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecolife_work_orders_archived_total",
				Help: "Work orders archived, by persistence result",
			},
			[]string{"persisted"},
		),
		taskChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecolife_task_changes_total",
				Help: "Interactive task updates",
			},
			[]string{"kind"},
		),
		recommendations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecolife_recommendations_total",
				Help: "Recommendation requests, by outcome",
			},
			[]string{"outcome"},
		),
		recommendLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ecolife_recommendation_duration_seconds",
				Help:    "Time taken to obtain a recommendation",
				Buckets: prometheus.LinearBuckets(0.5, 2, 10),
			},
		),
	}

	for _, collector := range []prometheus.Collector{
		c.scheduleRuns,
		c.scheduleDue,
		c.scheduleDuration,
		c.workOrdersCreated,
		c.workOrdersArchived,
		c.taskChanges,
		c.recommendations,
		c.recommendLatency,
	} {
		c.registry.MustRegister(collector)
	}
	return c
}

// Registry returns the registry to expose over HTTP
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) ScheduleComputed(line, due int, elapsed time.Duration) {
	l := strconv.Itoa(line)
	c.scheduleRuns.WithLabelValues(l).Inc()
	c.scheduleDue.WithLabelValues(l).Set(float64(due))
	c.scheduleDuration.Observe(elapsed.Seconds())
}

func (c *Collector) WorkOrderCreated(wo models.WorkOrder) {
	c.workOrdersCreated.WithLabelValues(strconv.Itoa(wo.Line)).Inc()
}

func (c *Collector) WorkOrderArchived(_ models.WorkOrder, persisted bool) {
	c.workOrdersArchived.WithLabelValues(strconv.FormatBool(persisted)).Inc()
}

func (c *Collector) TaskChanged(change workorder.Change) {
	c.taskChanges.WithLabelValues(change.Kind).Inc()
}

// RecommendationServed records the outcome of one recommendation request
func (c *Collector) RecommendationServed(outcome string, elapsed time.Duration) {
	c.recommendations.WithLabelValues(outcome).Inc()
	c.recommendLatency.Observe(elapsed.Seconds())
}
