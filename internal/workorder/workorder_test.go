package workorder

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecolife/internal/models"
)

func dueList() []models.ScheduledTask {
	return []models.ScheduledTask{
		{EquipmentName: "Separator Balistic", Task: models.PreventiveTask{Description: "Lubrifiere lagare", Frequency: 40}, HoursUntilDue: 2},
		{EquipmentName: "Conveior B1", Task: models.PreventiveTask{Description: "Nivel ulei reductor", Frequency: 480}, HoursUntilDue: 5},
		{EquipmentName: "Separator Balistic", Task: models.PreventiveTask{Description: "Strangere suruburi Padele", Frequency: 24}, HoursUntilDue: 9},
	}
}

func fixedBuilder(at time.Time) *Builder {
	n := 0
	return &Builder{
		now: func() time.Time { return at },
		taskID: func() string {
			n++
			return fmt.Sprintf("task-%07d", n)
		},
	}
}

func TestNewID(t *testing.T) {
	at := time.Date(2024, time.March, 7, 10, 0, 0, 0, time.Local).Add(1234 * time.Millisecond)
	id := NewID(at)
	assert.Equal(t, fmt.Sprintf("OL-20240307-%04d", at.UnixMilli()%10000), id)
	assert.Regexp(t, `^OL-\d{8}-\d{4}$`, NewID(time.Now()))
}

func TestBuild(t *testing.T) {
	at := time.Date(2024, time.March, 7, 10, 0, 0, 0, time.Local)
	wo := fixedBuilder(at).Build(dueList(), models.Line1, "")

	assert.Equal(t, "07.03.2024", wo.Date)
	assert.Equal(t, models.Line1, wo.Line)
	assert.Empty(t, wo.TechnicianName)
	assert.True(t, strings.HasPrefix(wo.ID, "OL-20240307-"))
	require.Len(t, wo.Tasks, 3)
	for i, task := range wo.Tasks {
		assert.Equal(t, dueList()[i], task.ScheduledTask)
		assert.Equal(t, models.TaskStatusNotStarted, task.Status)
		assert.Nil(t, task.StartTime)
		assert.Nil(t, task.EndTime)
		assert.Empty(t, task.Notes)
		assert.Empty(t, task.Materials)
		assert.Empty(t, task.Photos)
	}

	withDate := fixedBuilder(at).Build(dueList(), models.Line2, "01.02.2024")
	assert.Equal(t, "01.02.2024", withDate.Date)
}

func TestBuild_UniqueTaskIDs(t *testing.T) {
	calls := 0
	b := &Builder{
		now: time.Now,
		taskID: func() string {
			calls++
			if calls <= 2 {
				return "task-same"
			}
			return fmt.Sprintf("task-%d", calls)
		},
	}
	wo := b.Build(dueList(), models.Line1, "")

	seen := map[string]bool{}
	for _, task := range wo.Tasks {
		assert.False(t, seen[task.ID], task.ID)
		seen[task.ID] = true
	}

	built := NewBuilder().Build(dueList(), models.Line1, "")
	for _, task := range built.Tasks {
		assert.Regexp(t, `^task-[0-9a-f]{7}$`, task.ID)
	}
}

func newTracker(onChange func(Change)) *Tracker {
	wo := fixedBuilder(time.Now()).Build(dueList(), models.Line1, "")
	return NewTracker(wo, onChange)
}

func TestTracker_StartStop(t *testing.T) {
	var changes []Change
	tr := newTracker(func(c Change) { changes = append(changes, c) })
	start := time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return start }

	_, err := tr.Stop("task-0000001")
	assert.ErrorIs(t, err, ErrNotStarted)

	task, err := tr.Start("task-0000001")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusInProgress, task.Status)
	assert.Equal(t, start, *task.StartTime)

	_, err = tr.Start("task-0000001")
	assert.ErrorIs(t, err, ErrAlreadyStarted)

	tr.now = func() time.Time { return start.Add(45 * time.Minute) }
	task, err = tr.Stop("task-0000001")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, task.Status)
	assert.Equal(t, start.Add(45*time.Minute), *task.EndTime)
	assert.False(t, task.EndTime.Before(*task.StartTime))

	_, err = tr.Stop("task-0000001")
	assert.ErrorIs(t, err, ErrAlreadyStopped)

	require.Len(t, changes, 2)
	assert.Equal(t, ChangeStarted, changes[0].Kind)
	assert.Equal(t, ChangeStopped, changes[1].Kind)

	_, err = tr.Start("task-missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTracker_RejectedTransitionLeavesTaskUnchanged(t *testing.T) {
	tr := newTracker(nil)

	_, err := tr.Stop("task-0000002")
	require.Error(t, err)

	task := tr.Snapshot().Tasks[1]
	assert.Equal(t, models.TaskStatusNotStarted, task.Status)
	assert.Nil(t, task.EndTime)
}

func TestTracker_SetStatusDoesNotTouchTimestamps(t *testing.T) {
	tr := newTracker(nil)

	task, err := tr.SetStatus("task-0000002", models.TaskStatusDeferred)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusDeferred, task.Status)
	assert.Nil(t, task.StartTime)

	// deferred may go anywhere, and start still works afterwards
	task, err = tr.SetStatus("task-0000002", models.TaskStatusCompleted)
	require.NoError(t, err)
	assert.Nil(t, task.EndTime)

	task, err = tr.Start("task-0000002")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusInProgress, task.Status)

	_, err = tr.SetStatus("task-0000002", "gata")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTracker_NotesMaterialsTechnician(t *testing.T) {
	tr := newTracker(nil)

	_, err := tr.SetNotes("task-0000003", "suruburi stranse")
	require.NoError(t, err)
	_, err = tr.SetMaterials("task-0000003", "2x surub M12")
	require.NoError(t, err)
	wo := tr.SetTechnician("Ion Popescu")

	assert.Equal(t, "Ion Popescu", wo.TechnicianName)
	assert.Equal(t, "suruburi stranse", wo.Tasks[2].Notes)
	assert.Equal(t, "2x surub M12", wo.Tasks[2].Materials)
}

func TestTracker_Photos(t *testing.T) {
	tr := newTracker(nil)

	_, err := tr.AddPhotos("task-0000001", "data:a", "data:b")
	require.NoError(t, err)
	task, err := tr.AddPhotos("task-0000001", "data:c")
	require.NoError(t, err)
	assert.Equal(t, models.StringSlice{"data:a", "data:b", "data:c"}, task.Photos)

	task, err = tr.RemovePhoto("task-0000001", 1)
	require.NoError(t, err)
	assert.Equal(t, models.StringSlice{"data:a", "data:c"}, task.Photos)

	_, err = tr.RemovePhoto("task-0000001", 5)
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestTracker_ConcurrentPhotoAppends(t *testing.T) {
	tr := newTracker(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := tr.AddPhotos("task-0000001", fmt.Sprintf("data:%d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, tr.Snapshot().Tasks[0].Photos, 50)
}

func TestTracker_SnapshotIsCopy(t *testing.T) {
	tr := newTracker(nil)
	_, err := tr.AddPhotos("task-0000001", "data:a")
	require.NoError(t, err)

	snap := tr.Snapshot()
	snap.Tasks[0].Photos[0] = "changed"
	snap.Tasks[0].Status = models.TaskStatusCompleted

	again := tr.Snapshot()
	assert.Equal(t, "data:a", again.Tasks[0].Photos[0])
	assert.Equal(t, models.TaskStatusNotStarted, again.Tasks[0].Status)
}

func TestGroupTasks(t *testing.T) {
	tr := newTracker(nil)
	groups := tr.Groups()

	require.Len(t, groups, 2)
	assert.Equal(t, "Separator Balistic", groups[0].EquipmentName)
	assert.Len(t, groups[0].Tasks, 2)
	assert.Equal(t, "Conveior B1", groups[1].EquipmentName)
	assert.Len(t, groups[1].Tasks, 1)
}

func TestEncodePhoto(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,AQID", EncodePhoto("image/png", []byte{1, 2, 3}))
	assert.Equal(t, "data:text/plain;base64,cGxhaW4gdGV4dA==", EncodePhoto("", []byte("plain text")))
	assert.Equal(t, "data:image/jpeg;base64,AQID", EncodePhoto("image/jpeg; q=0.9", []byte{1, 2, 3}))

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	assert.True(t, strings.HasPrefix(EncodePhoto("application/octet-stream", png), "data:image/png;base64,"))
}

func TestEncodeUploads(t *testing.T) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, content := range []string{"first", "second", "third"} {
		part, err := w.CreateFormFile("photos", content+".txt")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	encoded, err := EncodeUploads(context.Background(), req.MultipartForm.File["photos"])
	require.NoError(t, err)
	require.Len(t, encoded, 3)
	assert.Equal(t, "data:text/plain;base64,Zmlyc3Q=", encoded[0])
	assert.True(t, strings.HasSuffix(encoded[2], "dGhpcmQ="))
}
