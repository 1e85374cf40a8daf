package models

// PreventiveTask is a catalog maintenance action repeated every Frequency operating hours
type PreventiveTask struct {
	Description string `json:"description"`
	Frequency   int    `json:"frequency"`
}

// ScheduledTask is a preventive task falling due within the lookahead window.
// It is recomputed on every schedule calculation and never stored on its own.
type ScheduledTask struct {
	EquipmentID   string         `json:"equipmentId"`
	EquipmentName string         `json:"equipmentName"`
	Task          PreventiveTask `json:"task"`
	HoursUntilDue int            `json:"hoursUntilDue"`
}
