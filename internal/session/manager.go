package session

import (
	"sync"
	"time"

	"ecolife/internal/archive"
	"ecolife/internal/catalog"
	"ecolife/internal/models"
	"ecolife/internal/plant"
	"ecolife/internal/scheduler"
	"ecolife/internal/workorder"
)

// Observer is notified of session activity
type Observer interface {
	ScheduleComputed(line, due int, elapsed time.Duration)
	WorkOrderCreated(wo models.WorkOrder)
	WorkOrderArchived(wo models.WorkOrder, persisted bool)
	TaskChanged(change workorder.Change)
}

// Observers fans notifications out to several observers
type Observers []Observer

func (o Observers) ScheduleComputed(line, due int, elapsed time.Duration) {
	for _, x := range o {
		x.ScheduleComputed(line, due, elapsed)
	}
}

func (o Observers) WorkOrderCreated(wo models.WorkOrder) {
	for _, x := range o {
		x.WorkOrderCreated(wo)
	}
}

func (o Observers) WorkOrderArchived(wo models.WorkOrder, persisted bool) {
	for _, x := range o {
		x.WorkOrderArchived(wo, persisted)
	}
}

func (o Observers) TaskChanged(change workorder.Change) {
	for _, x := range o {
		x.TaskChanged(change)
	}
}

// Manager owns the single operator session and the collaborators it works with
type Manager struct {
	mu        sync.Mutex
	current   *Session
	catalog   *catalog.Catalog
	scheduler *scheduler.Scheduler
	builder   *workorder.Builder
	archive   *archive.Archive
	observer  Observer
	lookahead int
	now       func() time.Time
}

// NewManager wires a session manager
func NewManager(cat *catalog.Catalog, arch *archive.Archive, lookahead int, observer Observer) *Manager {
	if lookahead <= 0 {
		lookahead = scheduler.DefaultLookahead
	}
	if observer == nil {
		observer = Observers{}
	}
	return &Manager{
		catalog:   cat,
		scheduler: scheduler.New(cat),
		builder:   workorder.NewBuilder(),
		archive:   arch,
		observer:  observer,
		lookahead: lookahead,
		now:       time.Now,
	}
}

// Catalog returns the reference data used by the sessions
func (m *Manager) Catalog() *catalog.Catalog {
	return m.catalog
}

// Archive returns the work order archive
func (m *Manager) Archive() *archive.Archive {
	return m.archive
}

// DefaultLookahead returns the configured schedule horizon
func (m *Manager) DefaultLookahead() int {
	return m.lookahead
}

// Start selects a line, discarding any previous session
func (m *Manager) Start(line int) (*Session, error) {
	registry, err := plant.NewLineRegistry(line, m.catalog)
	if err != nil {
		return nil, err
	}
	s := newSession(line, registry, m.now())
	s.lookahead = m.lookahead

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	return s, nil
}

// Current returns the active session
func (m *Manager) Current() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, ErrNoSession
	}
	return m.current, nil
}

// End discards the active session with all its unsaved state
func (m *Manager) End() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
}

// ComputeSchedule computes and remembers the due-list of the current session
func (m *Manager) ComputeSchedule(lookahead int) ([]models.ScheduledTask, error) {
	s, err := m.Current()
	if err != nil {
		return nil, err
	}
	if lookahead <= 0 {
		lookahead = m.lookahead
	}

	start := m.now()
	due := m.scheduler.Compute(s.registry.List(), lookahead)
	s.setSchedule(due, lookahead)
	m.observer.ScheduleComputed(s.Line, len(due), m.now().Sub(start))
	return due, nil
}

// CreateWorkOrder turns the last computed schedule into the active work order
func (m *Manager) CreateWorkOrder() (models.WorkOrder, error) {
	s, err := m.Current()
	if err != nil {
		return models.WorkOrder{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tracker != nil {
		return models.WorkOrder{}, ErrWorkOrderActive
	}
	if len(s.schedule) == 0 {
		return models.WorkOrder{}, ErrNothingDue
	}

	wo := m.builder.Build(s.schedule, s.Line, s.Date)
	s.tracker = workorder.NewTracker(wo, m.observer.TaskChanged)
	m.observer.WorkOrderCreated(wo)
	return wo, nil
}

// ArchiveActive archives the active work order and clears it from the session.
// The returned warning is non-nil when the archive could not be persisted.
func (m *Manager) ArchiveActive() (wo models.WorkOrder, warning error, err error) {
	s, err := m.Current()
	if err != nil {
		return models.WorkOrder{}, nil, err
	}

	s.mu.Lock()
	if s.tracker == nil {
		s.mu.Unlock()
		return models.WorkOrder{}, nil, ErrNoActiveWorkOrder
	}
	wo = s.tracker.Snapshot()
	s.tracker = nil
	s.mu.Unlock()

	warning = m.archive.Append(wo)
	m.observer.WorkOrderArchived(wo, warning == nil)
	return wo, warning, nil
}

// DiscardActive drops the active work order without archiving it
func (m *Manager) DiscardActive() error {
	s, err := m.Current()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tracker == nil {
		return ErrNoActiveWorkOrder
	}
	s.tracker = nil
	return nil
}
