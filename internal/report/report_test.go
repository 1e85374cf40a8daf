package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ecolife/internal/models"
)

func TestDefaultDetails(t *testing.T) {
	d := DefaultDetails()
	assert.Equal(t, models.EvaluationSatisfactory, d.Evaluations.Cleaning)
	assert.Equal(t, models.EvaluationSatisfactory, d.Evaluations.Lubrication)
	assert.Equal(t, models.EvaluationSatisfactory, d.Evaluations.Operation)
	assert.NoError(t, d.Validate())
}

func TestValidate(t *testing.T) {
	d := DefaultDetails()
	d.Evaluations.Operation = "Excelent"
	assert.ErrorIs(t, d.Validate(), ErrInvalidEvaluation)

	d.Evaluations.Operation = models.EvaluationGood
	d.Evaluations.Cleaning = models.EvaluationUnsatisfactory
	assert.NoError(t, d.Validate())
}

func TestBuild(t *testing.T) {
	equipment := []models.Equipment{
		{Name: "Conveior B1", CompletedMaintenanceTasks: models.StringSlice{"Nivel ulei reductor"}},
		{Name: "Conveior B2"},
		{Name: "Separator Balistic", NonConformities: []models.NonConformity{{ID: "nc-1", Type: "Zgomote suspecte"}, {ID: "nc-2", Type: "Lipsa gresare lagare"}}},
	}
	details := Details{TechnicianName: "Ion", GeneralComments: "fara probleme majore", Evaluations: models.DefaultEvaluations()}
	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)

	r := Build("07.03.2024", 1, details, equipment, now)

	assert.Equal(t, "07.03.2024", r.Date)
	assert.Equal(t, 1, r.Line)
	assert.Equal(t, "Ion", r.TechnicianName)
	assert.Len(t, r.Equipment, 2)
	assert.Equal(t, "Conveior B1", r.Equipment[0].Name)
	assert.Equal(t, "Separator Balistic", r.Equipment[1].Name)
	assert.Equal(t, 2, r.FindingCount)
	assert.Equal(t, 1, r.CompletedCount)
	assert.Equal(t, now, r.GeneratedAt)
}

func TestBuild_Empty(t *testing.T) {
	r := Build("07.03.2024", 2, DefaultDetails(), []models.Equipment{{Name: "Sita Rotativa"}}, time.Now())
	assert.NotNil(t, r.Equipment)
	assert.Empty(t, r.Equipment)
}
