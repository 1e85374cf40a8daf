package report

import (
	"errors"
	"fmt"
	"time"

	"ecolife/internal/models"
)

// ErrInvalidEvaluation is returned for an unknown evaluation level
var ErrInvalidEvaluation = errors.New("invalid evaluation level")

// Details are the inspector-entered parts of a report
type Details struct {
	TechnicianName  string                   `json:"technicianName"`
	GeneralComments string                   `json:"generalComments"`
	Evaluations     models.ReportEvaluations `json:"evaluations"`
}

// DefaultDetails returns an empty report with every category graded satisfactory
func DefaultDetails() Details {
	return Details{Evaluations: models.DefaultEvaluations()}
}

// Validate checks the three evaluation levels
func (d Details) Validate() error {
	for name, level := range map[string]models.EvaluationLevel{
		"cleaning":    d.Evaluations.Cleaning,
		"lubrication": d.Evaluations.Lubrication,
		"operation":   d.Evaluations.Operation,
	} {
		if !level.IsValid() {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEvaluation, name, level)
		}
	}
	return nil
}

// Report is the printable inspection summary of a session
type Report struct {
	Date            string                   `json:"date"`
	Line            int                      `json:"line"`
	TechnicianName  string                   `json:"technicianName"`
	GeneralComments string                   `json:"generalComments"`
	Evaluations     models.ReportEvaluations `json:"evaluations"`
	Equipment       []models.Equipment       `json:"equipment"`
	FindingCount    int                      `json:"findingCount"`
	CompletedCount  int                      `json:"completedTaskCount"`
	GeneratedAt     time.Time                `json:"generatedAt"`
}

// Build assembles a report from the equipment that has findings or completed checklist items
func Build(date string, line int, details Details, equipment []models.Equipment, now time.Time) Report {
	r := Report{
		Date:            date,
		Line:            line,
		TechnicianName:  details.TechnicianName,
		GeneralComments: details.GeneralComments,
		Evaluations:     details.Evaluations,
		Equipment:       []models.Equipment{},
		GeneratedAt:     now,
	}
	for _, eq := range equipment {
		if !eq.HasReportableState() {
			continue
		}
		r.Equipment = append(r.Equipment, eq.Clone())
		r.FindingCount += len(eq.NonConformities)
		r.CompletedCount += len(eq.CompletedMaintenanceTasks)
	}
	return r
}
