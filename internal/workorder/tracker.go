package workorder

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"ecolife/internal/models"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrAlreadyStarted = errors.New("task already started")
	ErrNotStarted     = errors.New("task not started")
	ErrAlreadyStopped = errors.New("task already stopped")
	ErrInvalidStatus  = errors.New("invalid task status")
	ErrPhotoNotFound  = errors.New("photo not found")
)

// Change describes a mutation applied to a task
type Change struct {
	WorkOrderID string                 `json:"workOrderId"`
	Kind        string                 `json:"kind"`
	Task        models.InteractiveTask `json:"task"`
}

// Change kinds
const (
	ChangeStarted      = "started"
	ChangeStopped      = "stopped"
	ChangeStatus       = "status"
	ChangeNotes        = "notes"
	ChangeMaterials    = "materials"
	ChangePhotoAdded   = "photo_added"
	ChangePhotoRemoved = "photo_removed"
)

// Tracker guards the active work order while the operator executes it
type Tracker struct {
	mu       sync.Mutex
	order    models.WorkOrder
	now      func() time.Time
	onChange func(Change)
}

// NewTracker starts tracking a freshly built work order
func NewTracker(order models.WorkOrder, onChange func(Change)) *Tracker {
	if onChange == nil {
		onChange = func(Change) {}
	}
	return &Tracker{
		order:    order.Clone(),
		now:      time.Now,
		onChange: onChange,
	}
}

// Snapshot returns a deep copy of the work order
func (t *Tracker) Snapshot() models.WorkOrder {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.order.Clone()
}

// Groups partitions the tasks by equipment in first-seen order
func (t *Tracker) Groups() []TaskGroup {
	return GroupTasks(t.Snapshot().Tasks)
}

// SetTechnician records who executes the work order
func (t *Tracker) SetTechnician(name string) models.WorkOrder {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.order.TechnicianName = name
	return t.order.Clone()
}

func (t *Tracker) apply(taskID, kind string, fn func(task *models.InteractiveTask) error) (models.InteractiveTask, error) {
	t.mu.Lock()
	var (
		out models.InteractiveTask
		err error
	)
	found := false
	for i := range t.order.Tasks {
		if t.order.Tasks[i].ID != taskID {
			continue
		}
		found = true
		next := t.order.Tasks[i].Clone()
		if err = fn(&next); err == nil {
			t.order.Tasks[i] = next
			out = next.Clone()
		}
		break
	}
	orderID := t.order.ID
	t.mu.Unlock()

	if !found {
		return models.InteractiveTask{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	if err != nil {
		return models.InteractiveTask{}, err
	}
	t.onChange(Change{WorkOrderID: orderID, Kind: kind, Task: out.Clone()})
	return out, nil
}

// Start stamps the start time and moves the task in progress.
// A task can be started only once.
func (t *Tracker) Start(taskID string) (models.InteractiveTask, error) {
	return t.apply(taskID, ChangeStarted, func(task *models.InteractiveTask) error {
		if task.StartTime != nil {
			return ErrAlreadyStarted
		}
		now := t.now()
		task.StartTime = &now
		task.Status = models.TaskStatusInProgress
		return nil
	})
}

// Stop stamps the end time and completes the task.
// It requires a prior start and can happen only once.
func (t *Tracker) Stop(taskID string) (models.InteractiveTask, error) {
	return t.apply(taskID, ChangeStopped, func(task *models.InteractiveTask) error {
		if task.StartTime == nil {
			return ErrNotStarted
		}
		if task.EndTime != nil {
			return ErrAlreadyStopped
		}
		now := t.now()
		if now.Before(*task.StartTime) {
			now = *task.StartTime
		}
		task.EndTime = &now
		task.Status = models.TaskStatusCompleted
		return nil
	})
}

// SetStatus overrides the status without touching the timestamps
func (t *Tracker) SetStatus(taskID string, status models.TaskStatus) (models.InteractiveTask, error) {
	if !status.IsValid() {
		return models.InteractiveTask{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return t.apply(taskID, ChangeStatus, func(task *models.InteractiveTask) error {
		task.Status = status
		return nil
	})
}

// SetNotes replaces the operator's observations
func (t *Tracker) SetNotes(taskID, notes string) (models.InteractiveTask, error) {
	return t.apply(taskID, ChangeNotes, func(task *models.InteractiveTask) error {
		task.Notes = notes
		return nil
	})
}

// SetMaterials replaces the list of materials and parts used
func (t *Tracker) SetMaterials(taskID, materials string) (models.InteractiveTask, error) {
	return t.apply(taskID, ChangeMaterials, func(task *models.InteractiveTask) error {
		task.Materials = materials
		return nil
	})
}

// AddPhotos appends encoded photos to the task.
// Appends are serialized so concurrent uploads never drop each other.
func (t *Tracker) AddPhotos(taskID string, photos ...string) (models.InteractiveTask, error) {
	return t.apply(taskID, ChangePhotoAdded, func(task *models.InteractiveTask) error {
		task.Photos = append(task.Photos, photos...)
		return nil
	})
}

// RemovePhoto deletes the photo at index
func (t *Tracker) RemovePhoto(taskID string, index int) (models.InteractiveTask, error) {
	return t.apply(taskID, ChangePhotoRemoved, func(task *models.InteractiveTask) error {
		if index < 0 || index >= len(task.Photos) {
			return fmt.Errorf("%w: index %d", ErrPhotoNotFound, index)
		}
		task.Photos = append(task.Photos[:index], task.Photos[index+1:]...)
		return nil
	})
}

// TaskGroup is the interactive tasks of one machine
type TaskGroup struct {
	EquipmentName string                   `json:"equipmentName"`
	Tasks         []models.InteractiveTask `json:"tasks"`
}

// GroupTasks partitions tasks by equipment name in first-seen order
func GroupTasks(tasks []models.InteractiveTask) []TaskGroup {
	groups := make([]TaskGroup, 0)
	index := map[string]int{}
	for _, task := range tasks {
		i, ok := index[task.EquipmentName]
		if !ok {
			i = len(groups)
			index[task.EquipmentName] = i
			groups = append(groups, TaskGroup{EquipmentName: task.EquipmentName})
		}
		groups[i].Tasks = append(groups[i].Tasks, task.Clone())
	}
	return groups
}
