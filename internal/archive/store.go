package archive

import (
	"fmt"
	"sync"

	"github.com/jinzhu/gorm"

	"ecolife/internal/models"
)

// GormStore keeps the archive in the archived_work_orders table
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store over an open, migrated database
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load returns the stored work orders ordered by archive position
func (s *GormStore) Load() ([]models.WorkOrder, error) {
	var records []models.ArchivedWorkOrder
	if err := s.db.Order("position asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("query archive: %w", err)
	}

	orders := make([]models.WorkOrder, 0, len(records))
	for i := range records {
		wo, err := records[i].GetWorkOrder()
		if err != nil {
			return nil, fmt.Errorf("decode archived work order %s: %w", records[i].WorkOrderID, err)
		}
		orders = append(orders, wo)
	}
	return orders, nil
}

// Save replaces the stored list with orders in a single transaction
func (s *GormStore) Save(orders []models.WorkOrder) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Unscoped().Delete(&models.ArchivedWorkOrder{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("clear archive: %w", err)
	}
	for i, wo := range orders {
		record := models.ArchivedWorkOrder{Position: i}
		if err := record.SetWorkOrder(wo); err != nil {
			tx.Rollback()
			return fmt.Errorf("encode work order %s: %w", wo.ID, err)
		}
		if err := tx.Create(&record).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("insert work order %s: %w", wo.ID, err)
		}
	}

	return tx.Commit().Error
}

// MemoryStore keeps the archive in process, for tests and the schedule command
type MemoryStore struct {
	mu      sync.Mutex
	orders  []models.WorkOrder
	LoadErr error
	SaveErr error
	Saves   int
}

// Load returns the last saved list
func (m *MemoryStore) Load() ([]models.WorkOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]models.WorkOrder{}, m.orders...), nil
}

// Save records orders as the full list
func (m *MemoryStore) Save(orders []models.WorkOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.orders = append([]models.WorkOrder{}, orders...)
	return nil
}
