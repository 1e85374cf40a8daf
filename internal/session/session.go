package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"ecolife/internal/models"
	"ecolife/internal/plant"
	"ecolife/internal/report"
	"ecolife/internal/scheduler"
	"ecolife/internal/workorder"
)

var (
	ErrNoSession         = errors.New("no line selected")
	ErrNoActiveWorkOrder = errors.New("no active work order")
	ErrNothingDue        = errors.New("schedule has no due tasks")
	ErrWorkOrderActive   = errors.New("a work order is already active")
)

// Session is the state of one inspection of a production line.
// It is created on line selection and discarded when the operator leaves the line.
type Session struct {
	ID        string    `json:"id"`
	Line      int       `json:"line"`
	Date      string    `json:"date"`
	StartedAt time.Time `json:"startedAt"`

	registry *plant.Registry

	mu        sync.Mutex
	schedule  []models.ScheduledTask
	lookahead int
	tracker   *workorder.Tracker
	details   report.Details
}

func newSession(line int, registry *plant.Registry, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Line:      line,
		Date:      now.Format(workorder.DateLayout),
		StartedAt: now,
		registry:  registry,
		lookahead: scheduler.DefaultLookahead,
		details:   report.DefaultDetails(),
	}
}

// Registry returns the equipment state of the session
func (s *Session) Registry() *plant.Registry {
	return s.registry
}

// LastSchedule returns the most recently computed due-list and its lookahead
func (s *Session) LastSchedule() ([]models.ScheduledTask, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ScheduledTask{}, s.schedule...), s.lookahead
}

func (s *Session) setSchedule(due []models.ScheduledTask, lookahead int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = append([]models.ScheduledTask{}, due...)
	s.lookahead = lookahead
}

// ActiveWorkOrder returns the tracker of the work order being executed
func (s *Session) ActiveWorkOrder() (*workorder.Tracker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tracker == nil {
		return nil, ErrNoActiveWorkOrder
	}
	return s.tracker, nil
}

// ReportDetails returns the inspector-entered report fields
func (s *Session) ReportDetails() report.Details {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.details
}

// SetReportDetails validates and stores the report fields
func (s *Session) SetReportDetails(d report.Details) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details = d
	return nil
}

// Report builds the inspection report of the session
func (s *Session) Report(now time.Time) report.Report {
	return report.Build(s.Date, s.Line, s.ReportDetails(), s.registry.List(), now)
}
