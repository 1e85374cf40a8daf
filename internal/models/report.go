package models

// EvaluationLevel is the inspector's overall grade for one report category
type EvaluationLevel string

const (
	EvaluationUnsatisfactory EvaluationLevel = "Nesatisfacator"
	EvaluationSatisfactory   EvaluationLevel = "Satisfacator"
	EvaluationGood           EvaluationLevel = "Bun"
)

// IsValid reports whether l is a known evaluation level
func (l EvaluationLevel) IsValid() bool {
	switch l {
	case EvaluationUnsatisfactory, EvaluationSatisfactory, EvaluationGood:
		return true
	}
	return false
}

// ReportEvaluations holds the three graded categories of an inspection report
type ReportEvaluations struct {
	Cleaning    EvaluationLevel `json:"cleaning"`
	Lubrication EvaluationLevel `json:"lubrication"`
	Operation   EvaluationLevel `json:"operation"`
}

// DefaultEvaluations returns the grades a new report starts with
func DefaultEvaluations() ReportEvaluations {
	return ReportEvaluations{
		Cleaning:    EvaluationSatisfactory,
		Lubrication: EvaluationSatisfactory,
		Operation:   EvaluationSatisfactory,
	}
}
