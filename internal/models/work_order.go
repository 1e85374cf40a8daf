package models

import (
	"encoding/json"
	"time"

	"github.com/jinzhu/gorm"
)

// TaskStatus represents the execution state of an interactive task
type TaskStatus string

const (
	// Task statuses
	TaskStatusNotStarted TaskStatus = "not_started"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusDeferred   TaskStatus = "deferred"
)

var taskStatusLabels = map[TaskStatus]string{
	TaskStatusNotStarted: "Nefinalizat",
	TaskStatusInProgress: "În desfășurare",
	TaskStatusCompleted:  "Finalizat",
	TaskStatusDeferred:   "Amânat",
}

// Label returns the plant-floor display name of the status
func (s TaskStatus) Label() string {
	return taskStatusLabels[s]
}

// IsValid reports whether s is one of the selectable statuses
func (s TaskStatus) IsValid() bool {
	_, ok := taskStatusLabels[s]
	return ok
}

// InteractiveTask is a scheduled task materialized into a work order and tracked by the operator
type InteractiveTask struct {
	ScheduledTask
	ID        string      `json:"id"`
	Status    TaskStatus  `json:"status"`
	StartTime *time.Time  `json:"startTime,omitempty"`
	EndTime   *time.Time  `json:"endTime,omitempty"`
	Notes     string      `json:"notes"`
	Materials string      `json:"materials"`
	Photos    StringSlice `json:"photos"`
}

// Clone returns a deep copy of the task
func (t InteractiveTask) Clone() InteractiveTask {
	out := t
	if t.StartTime != nil {
		st := *t.StartTime
		out.StartTime = &st
	}
	if t.EndTime != nil {
		et := *t.EndTime
		out.EndTime = &et
	}
	out.Photos = append(StringSlice{}, t.Photos...)
	return out
}

// WorkOrder bundles the tasks generated from one schedule for execution
type WorkOrder struct {
	ID             string            `json:"id"`
	Date           string            `json:"date"`
	Line           int               `json:"line"`
	TechnicianName string            `json:"technicianName"`
	Tasks          []InteractiveTask `json:"tasks"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// Clone returns a deep copy of the work order
func (w WorkOrder) Clone() WorkOrder {
	out := w
	out.Tasks = make([]InteractiveTask, len(w.Tasks))
	for i, t := range w.Tasks {
		out.Tasks[i] = t.Clone()
	}
	return out
}

// EquipmentNames returns the distinct equipment names in first-seen order
func (w WorkOrder) EquipmentNames() StringSlice {
	names := StringSlice{}
	for _, t := range w.Tasks {
		if !names.Contains(t.EquipmentName) {
			names = append(names, t.EquipmentName)
		}
	}
	return names
}

// ArchivedWorkOrder is the storage record of a finished work order.
// Position keeps archive creation order, independent of the work order id.
type ArchivedWorkOrder struct {
	gorm.Model
	Position       int         `gorm:"not null;index"`
	WorkOrderID    string      `gorm:"column:work_order_id"`
	Line           int
	TechnicianName string
	Equipment      StringSlice `gorm:"type:text"`
	PayloadJSON    string      `gorm:"type:text"`
}

// TableName sets the table name for ArchivedWorkOrder
func (ArchivedWorkOrder) TableName() string {
	return "archived_work_orders"
}

// SetWorkOrder serializes the work order for storage
func (a *ArchivedWorkOrder) SetWorkOrder(wo WorkOrder) error {
	data, err := json.Marshal(wo)
	if err != nil {
		return err
	}
	a.WorkOrderID = wo.ID
	a.Line = wo.Line
	a.TechnicianName = wo.TechnicianName
	a.Equipment = wo.EquipmentNames()
	a.PayloadJSON = string(data)
	return nil
}

// GetWorkOrder returns the deserialized work order
func (a *ArchivedWorkOrder) GetWorkOrder() (WorkOrder, error) {
	var wo WorkOrder
	if err := json.Unmarshal([]byte(a.PayloadJSON), &wo); err != nil {
		return WorkOrder{}, err
	}
	return wo, nil
}
