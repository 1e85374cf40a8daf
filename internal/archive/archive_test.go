package archive

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecolife/internal/database"
	"ecolife/internal/models"
)

func order(id string) models.WorkOrder {
	start := time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC)
	return models.WorkOrder{
		ID:             id,
		Date:           "07.03.2024",
		Line:           1,
		TechnicianName: "Ion",
		Tasks: []models.InteractiveTask{{
			ScheduledTask: models.ScheduledTask{
				EquipmentName: "Conveior B1",
				Task:          models.PreventiveTask{Description: "Nivel ulei reductor", Frequency: 480},
				HoursUntilDue: 4,
			},
			ID:        "task-abc1234",
			Status:    models.TaskStatusCompleted,
			StartTime: &start,
			Photos:    models.StringSlice{"data:image/png;base64,AQID"},
		}},
	}
}

func TestAppend_GrowsByOneAndPersistsFullList(t *testing.T) {
	store := &MemoryStore{}
	a := New(store)
	assert.Equal(t, 0, a.Load())

	require.NoError(t, a.Append(order("OL-20240307-0001")))
	require.NoError(t, a.Append(order("OL-20240307-0002")))

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 2, store.Saves)

	stored, err := store.Load()
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "OL-20240307-0001", stored[0].ID)
	assert.Equal(t, "OL-20240307-0002", stored[1].ID)
}

func TestAppend_StoresCopy(t *testing.T) {
	a := New(&MemoryStore{})
	wo := order("OL-1")
	require.NoError(t, a.Append(wo))

	wo.Tasks[0].Photos[0] = "changed"
	wo.TechnicianName = "altcineva"

	got := a.List()[0]
	assert.Equal(t, "Ion", got.TechnicianName)
	assert.Equal(t, "data:image/png;base64,AQID", got.Tasks[0].Photos[0])
}

func TestAppend_SaveFailureKeepsMemory(t *testing.T) {
	store := &MemoryStore{SaveErr: errors.New("disk full")}
	a := New(store)

	err := a.Append(order("OL-1"))
	assert.Error(t, err)
	assert.Equal(t, 1, a.Len())

	store.SaveErr = nil
	require.NoError(t, a.Append(order("OL-2")))
	stored, _ := store.Load()
	assert.Len(t, stored, 2)
}

func TestLoad_FailureStartsEmpty(t *testing.T) {
	a := New(&MemoryStore{LoadErr: errors.New("corrupt")})
	assert.Equal(t, 0, a.Load())
	assert.Empty(t, a.List())
}

func TestGormStore_RoundTripKeepsOrder(t *testing.T) {
	db, err := database.Open(database.DriverSQLite, filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	defer database.Close(db)

	store := NewGormStore(db)
	a := New(store)
	a.Load()

	// ids deliberately out of lexical order
	require.NoError(t, a.Append(order("OL-20240307-9999")))
	require.NoError(t, a.Append(order("OL-20240301-0001")))
	require.NoError(t, a.Append(order("OL-20240305-5000")))

	var count int
	require.NoError(t, db.Model(&models.ArchivedWorkOrder{}).Count(&count).Error)
	assert.Equal(t, 3, count)

	reloaded := New(store)
	assert.Equal(t, 3, reloaded.Load())
	list := reloaded.List()
	assert.Equal(t, "OL-20240307-9999", list[0].ID)
	assert.Equal(t, "OL-20240301-0001", list[1].ID)
	assert.Equal(t, "OL-20240305-5000", list[2].ID)
	assert.Equal(t, models.TaskStatusCompleted, list[0].Tasks[0].Status)
	require.NotNil(t, list[0].Tasks[0].StartTime)
	assert.True(t, list[0].Tasks[0].StartTime.Equal(time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC)))

	var record models.ArchivedWorkOrder
	require.NoError(t, db.Where("work_order_id = ?", "OL-20240301-0001").First(&record).Error)
	assert.Equal(t, models.StringSlice{"Conveior B1"}, record.Equipment)
}

// lengthStore records the length of every saved list, slowing down the shorter ones
type lengthStore struct {
	mu      sync.Mutex
	lengths []int
}

func (s *lengthStore) Load() ([]models.WorkOrder, error) { return nil, nil }

func (s *lengthStore) Save(orders []models.WorkOrder) error {
	if len(orders)%2 == 1 {
		time.Sleep(5 * time.Millisecond)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lengths = append(s.lengths, len(orders))
	return nil
}

func TestAppend_ConcurrentSavesEndWithNewestList(t *testing.T) {
	store := &lengthStore{}
	a := New(store)
	a.Load()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, a.Append(order(fmt.Sprintf("OL-20240307-%04d", i))))
		}(i)
	}
	wg.Wait()

	require.Len(t, store.lengths, 10)
	for i, n := range store.lengths {
		assert.Equal(t, i+1, n)
	}
}
