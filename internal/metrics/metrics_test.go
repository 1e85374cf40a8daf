package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecolife/internal/models"
	"ecolife/internal/recommend"
	"ecolife/internal/session"
	"ecolife/internal/workorder"
)

var _ session.Observer = (*Collector)(nil)

func TestCollector_Schedule(t *testing.T) {
	c := NewCollector()

	c.ScheduleComputed(1, 7, time.Millisecond)
	c.ScheduleComputed(1, 3, time.Millisecond)
	c.ScheduleComputed(2, 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.scheduleRuns.WithLabelValues("1")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.scheduleDue.WithLabelValues("1")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.scheduleDue.WithLabelValues("2")))
}

func TestCollector_WorkOrders(t *testing.T) {
	c := NewCollector()
	wo := models.WorkOrder{ID: "OL-20250101-0001", Line: 2}

	c.WorkOrderCreated(wo)
	c.WorkOrderArchived(wo, true)
	c.WorkOrderArchived(wo, false)
	c.TaskChanged(workorder.Change{WorkOrderID: wo.ID, Kind: workorder.ChangeStarted})
	c.TaskChanged(workorder.Change{WorkOrderID: wo.ID, Kind: workorder.ChangeStarted})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.workOrdersCreated.WithLabelValues("2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.workOrdersArchived.WithLabelValues("false")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.taskChanges.WithLabelValues(workorder.ChangeStarted)))
}

func TestCollector_Recommendations(t *testing.T) {
	c := NewCollector()
	c.RecommendationServed(recommend.OutcomeOK, 2*time.Second)
	c.RecommendationServed(recommend.OutcomeConfigError, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.recommendations.WithLabelValues(recommend.OutcomeOK)))

	families, err := c.Registry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "ecolife_recommendation_duration_seconds")
	assert.Contains(t, names, "ecolife_recommendations_total")
}
