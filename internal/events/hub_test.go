package events

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecolife/internal/models"
	"ecolife/internal/workorder"
)

func dial(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 10*time.Millisecond)
	return conn
}

func TestHub_BroadcastsTaskChanges(t *testing.T) {
	h := NewHub()
	conn := dial(t, h)

	task := models.InteractiveTask{ID: "task-abc1234", Status: models.TaskStatusInProgress}
	h.TaskChanged(workorder.Change{WorkOrderID: "OL-20250314-0042", Kind: workorder.ChangeStarted, Task: task})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var e Event
	require.NoError(t, conn.ReadJSON(&e))
	assert.Equal(t, TypeTaskChanged, e.Type)
	assert.Equal(t, "OL-20250314-0042", e.WorkOrderID)
	assert.Equal(t, workorder.ChangeStarted, e.Change)
	require.NotNil(t, e.Task)
	assert.Equal(t, "task-abc1234", e.Task.ID)
	assert.False(t, e.At.IsZero())
}

func TestHub_ArchiveEventCarriesPersistence(t *testing.T) {
	h := NewHub()
	conn := dial(t, h)

	h.WorkOrderArchived(models.WorkOrder{ID: "OL-1", Line: 2}, false)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var e Event
	require.NoError(t, conn.ReadJSON(&e))
	assert.Equal(t, TypeWorkOrderArchived, e.Type)
	require.NotNil(t, e.Persisted)
	assert.False(t, *e.Persisted)
	assert.Equal(t, 2, e.Line)
}

func TestHub_RemovesClosedClients(t *testing.T) {
	h := NewHub()
	conn := dial(t, h)

	conn.Close()
	assert.Eventually(t, func() bool { return h.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)

	h.ScheduleComputed(1, 3, 0)
}
