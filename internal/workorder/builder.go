package workorder

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ecolife/internal/models"
)

// DateLayout is the plant's dd.mm.yyyy display date
const DateLayout = "02.01.2006"

// Builder materializes a due-list into a trackable work order
type Builder struct {
	now    func() time.Time
	taskID func() string
}

// NewBuilder creates a builder on the wall clock
func NewBuilder() *Builder {
	return &Builder{
		now:    time.Now,
		taskID: shortTaskID,
	}
}

func shortTaskID() string {
	return "task-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
}

// NewID formats OL-YYYYMMDD-<last four digits of the unix millisecond clock>
func NewID(t time.Time) string {
	ms := t.UnixMilli() % 10000
	return fmt.Sprintf("OL-%s-%04d", t.Format("20060102"), ms)
}

// Build converts the due tasks into not-started interactive tasks.
// An empty date defaults to today in the plant's display format.
func (b *Builder) Build(due []models.ScheduledTask, line int, date string) models.WorkOrder {
	now := b.now()
	if date == "" {
		date = now.Format(DateLayout)
	}

	tasks := make([]models.InteractiveTask, 0, len(due))
	seen := make(map[string]bool, len(due))
	for _, st := range due {
		id := b.taskID()
		for seen[id] {
			id = b.taskID()
		}
		seen[id] = true

		tasks = append(tasks, models.InteractiveTask{
			ScheduledTask: st,
			ID:            id,
			Status:        models.TaskStatusNotStarted,
			Photos:        models.StringSlice{},
		})
	}

	return models.WorkOrder{
		ID:        NewID(now),
		Date:      date,
		Line:      line,
		Tasks:     tasks,
		CreatedAt: now,
	}
}
