package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecolife/internal/archive"
	"ecolife/internal/catalog"
	"ecolife/internal/models"
	"ecolife/internal/plant"
	"ecolife/internal/report"
	"ecolife/internal/workorder"
)

type recorder struct {
	schedules []int
	created   []string
	archived  []bool
	changes   []string
}

func (r *recorder) ScheduleComputed(line, due int, _ time.Duration) {
	r.schedules = append(r.schedules, due)
}
func (r *recorder) WorkOrderCreated(wo models.WorkOrder) { r.created = append(r.created, wo.ID) }
func (r *recorder) WorkOrderArchived(_ models.WorkOrder, persisted bool) {
	r.archived = append(r.archived, persisted)
}
func (r *recorder) TaskChanged(c workorder.Change) { r.changes = append(r.changes, c.Kind) }

func newManager(store archive.Store, obs Observer) *Manager {
	arch := archive.New(store)
	arch.Load()
	return NewManager(catalog.New(), arch, 0, obs)
}

func TestStartAndEnd(t *testing.T) {
	m := newManager(&archive.MemoryStore{}, nil)

	_, err := m.Current()
	assert.ErrorIs(t, err, ErrNoSession)

	s, err := m.Start(models.Line2)
	require.NoError(t, err)
	assert.Equal(t, models.Line2, s.Line)
	assert.NotEmpty(t, s.ID)
	assert.Regexp(t, `^\d{2}\.\d{2}\.\d{4}$`, s.Date)
	assert.Len(t, s.Registry().List(), 29)

	_, err = m.Start(5)
	assert.Error(t, err)

	m.End()
	_, err = m.Current()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStart_ResetsState(t *testing.T) {
	m := newManager(&archive.MemoryStore{}, nil)
	s, err := m.Start(models.Line1)
	require.NoError(t, err)
	_, err = s.Registry().SetOperatingHours("1-Separator-Balistic", 100)
	require.NoError(t, err)

	fresh, err := m.Start(models.Line1)
	require.NoError(t, err)
	eq, err := fresh.Registry().Get("1-Separator-Balistic")
	require.NoError(t, err)
	assert.Zero(t, eq.OperatingHours)
	assert.NotEqual(t, s.ID, fresh.ID)
}

func TestWorkOrderLifecycle(t *testing.T) {
	store := &archive.MemoryStore{}
	rec := &recorder{}
	m := newManager(store, rec)

	_, err := m.ComputeSchedule(0)
	assert.ErrorIs(t, err, ErrNoSession)

	s, err := m.Start(models.Line1)
	require.NoError(t, err)

	_, err = m.CreateWorkOrder()
	assert.ErrorIs(t, err, ErrNothingDue)

	// ballistic separator at 140h: F=24 is due in 4h, F=20/40/160 in 20h
	_, err = s.Registry().SetOperatingHours("1-Separator-Balistic", 140)
	require.NoError(t, err)

	due, err := m.ComputeSchedule(0)
	require.NoError(t, err)
	require.NotEmpty(t, due)
	assert.Equal(t, 4, due[0].HoursUntilDue)
	last, lookahead := s.LastSchedule()
	assert.Equal(t, due, last)
	assert.Equal(t, 24, lookahead)

	wo, err := m.CreateWorkOrder()
	require.NoError(t, err)
	assert.Len(t, wo.Tasks, len(due))
	assert.Equal(t, s.Date, wo.Date)

	_, err = m.CreateWorkOrder()
	assert.ErrorIs(t, err, ErrWorkOrderActive)

	tracker, err := s.ActiveWorkOrder()
	require.NoError(t, err)
	_, err = tracker.Start(wo.Tasks[0].ID)
	require.NoError(t, err)
	_, err = tracker.Stop(wo.Tasks[0].ID)
	require.NoError(t, err)

	archived, warning, err := m.ArchiveActive()
	require.NoError(t, err)
	assert.NoError(t, warning)
	assert.Equal(t, wo.ID, archived.ID)
	assert.Equal(t, models.TaskStatusCompleted, archived.Tasks[0].Status)
	assert.Equal(t, 1, m.Archive().Len())

	_, err = s.ActiveWorkOrder()
	assert.ErrorIs(t, err, ErrNoActiveWorkOrder)
	_, _, err = m.ArchiveActive()
	assert.ErrorIs(t, err, ErrNoActiveWorkOrder)

	assert.Equal(t, []int{len(due)}, rec.schedules)
	assert.Equal(t, []string{wo.ID}, rec.created)
	assert.Equal(t, []bool{true}, rec.archived)
	assert.Equal(t, []string{workorder.ChangeStarted, workorder.ChangeStopped}, rec.changes)
}

func TestArchiveActive_PersistenceWarning(t *testing.T) {
	store := &archive.MemoryStore{SaveErr: errors.New("read-only filesystem")}
	m := newManager(store, nil)
	s, err := m.Start(models.Line1)
	require.NoError(t, err)
	_, err = s.Registry().SetOperatingHours("1-Conveior-B1", 30)
	require.NoError(t, err)
	_, err = m.ComputeSchedule(0)
	require.NoError(t, err)
	_, err = m.CreateWorkOrder()
	require.NoError(t, err)

	_, warning, err := m.ArchiveActive()
	require.NoError(t, err)
	assert.Error(t, warning)
	assert.Equal(t, 1, m.Archive().Len())
	_, err = s.ActiveWorkOrder()
	assert.ErrorIs(t, err, ErrNoActiveWorkOrder)
}

func TestDiscardActive(t *testing.T) {
	m := newManager(&archive.MemoryStore{}, nil)
	s, err := m.Start(models.Line1)
	require.NoError(t, err)
	assert.ErrorIs(t, m.DiscardActive(), ErrNoActiveWorkOrder)

	_, err = s.Registry().SetOperatingHours("1-Conveior-B1", 30)
	require.NoError(t, err)
	_, err = m.ComputeSchedule(0)
	require.NoError(t, err)
	_, err = m.CreateWorkOrder()
	require.NoError(t, err)

	require.NoError(t, m.DiscardActive())
	assert.Zero(t, m.Archive().Len())
}

func TestReportDetails(t *testing.T) {
	m := newManager(&archive.MemoryStore{}, nil)
	s, err := m.Start(models.Line1)
	require.NoError(t, err)

	assert.Equal(t, report.DefaultDetails(), s.ReportDetails())

	bad := report.DefaultDetails()
	bad.Evaluations.Cleaning = "Perfect"
	assert.Error(t, s.SetReportDetails(bad))

	good := report.Details{
		TechnicianName:  "Maria",
		GeneralComments: "linie curata",
		Evaluations: models.ReportEvaluations{
			Cleaning:    models.EvaluationGood,
			Lubrication: models.EvaluationSatisfactory,
			Operation:   models.EvaluationUnsatisfactory,
		},
	}
	require.NoError(t, s.SetReportDetails(good))

	_, err = s.Registry().AddFinding("1-Separator-Metale", plant.FindingInput{Type: "Zgomote suspecte"})
	require.NoError(t, err)

	r := s.Report(time.Now())
	assert.Equal(t, "Maria", r.TechnicianName)
	assert.Equal(t, models.EvaluationUnsatisfactory, r.Evaluations.Operation)
	require.Len(t, r.Equipment, 1)
	assert.Equal(t, "Separator Metale", r.Equipment[0].Name)
}
