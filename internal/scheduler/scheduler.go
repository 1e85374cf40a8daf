package scheduler

import (
	"sort"

	"ecolife/internal/models"
)

// DefaultLookahead is the horizon, in operating hours, of a schedule
const DefaultLookahead = 24

// TaskSource resolves the preventive tasks of a piece of equipment
type TaskSource interface {
	PreventiveTasks(eq models.Equipment) []models.PreventiveTask
}

// Scheduler computes which preventive tasks fall due soon
type Scheduler struct {
	source TaskSource
}

// New creates a scheduler reading tasks from source
func New(source TaskSource) *Scheduler {
	return &Scheduler{source: source}
}

// HoursUntilDue returns the hours left until the next recurrence of a task of the
// given frequency. A counter sitting exactly on a multiple is a full cycle away.
func HoursUntilDue(operatingHours, frequency int) int {
	timesDone := operatingHours / frequency
	nextDue := (timesDone + 1) * frequency
	return nextDue - operatingHours
}

// Compute returns the tasks due within lookahead hours, most urgent first.
// Equipment without hours and tasks without a positive frequency are skipped.
// Ties keep equipment then catalog order.
func (s *Scheduler) Compute(equipment []models.Equipment, lookahead int) []models.ScheduledTask {
	due := []models.ScheduledTask{}
	for _, eq := range equipment {
		if eq.OperatingHours <= 0 {
			continue
		}
		for _, task := range s.source.PreventiveTasks(eq) {
			if task.Frequency <= 0 {
				continue
			}
			hours := HoursUntilDue(eq.OperatingHours, task.Frequency)
			if hours < 0 || hours > lookahead {
				continue
			}
			due = append(due, models.ScheduledTask{
				EquipmentID:   eq.ID,
				EquipmentName: eq.Name,
				Task:          task,
				HoursUntilDue: hours,
			})
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].HoursUntilDue < due[j].HoursUntilDue
	})
	return due
}

// Group is the due tasks of one machine
type Group struct {
	EquipmentName string                 `json:"equipmentName"`
	Tasks         []models.ScheduledTask `json:"tasks"`
}

// GroupByEquipment partitions a due-list by equipment name in first-seen order
func GroupByEquipment(due []models.ScheduledTask) []Group {
	groups := []Group{}
	index := map[string]int{}
	for _, t := range due {
		i, ok := index[t.EquipmentName]
		if !ok {
			i = len(groups)
			index[t.EquipmentName] = i
			groups = append(groups, Group{EquipmentName: t.EquipmentName})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}
	return groups
}
