package archive

import (
	"fmt"
	"log"
	"sync"

	"ecolife/internal/models"
)

// Store persists the full archive list
type Store interface {
	Load() ([]models.WorkOrder, error)
	Save(orders []models.WorkOrder) error
}

// Archive keeps finished work orders in creation order.
// The in-memory list is authoritative; the store is a best-effort copy.
type Archive struct {
	mu     sync.RWMutex
	orders []models.WorkOrder
	store  Store

	// saveMu orders snapshots and saves so the store always ends with the newest list
	saveMu sync.Mutex
}

// New creates an empty archive backed by store
func New(store Store) *Archive {
	return &Archive{store: store}
}

// Load reads the stored list once at startup.
// A failing store leaves the archive empty.
func (a *Archive) Load() int {
	orders, err := a.store.Load()
	if err != nil {
		log.Printf("Failed to load work order archive, starting empty: %v", err)
		orders = nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.orders = make([]models.WorkOrder, 0, len(orders))
	for _, wo := range orders {
		a.orders = append(a.orders, wo.Clone())
	}
	return len(a.orders)
}

// Append adds a copy of the work order and rewrites the stored list.
// A non-nil error reports that persistence failed; the order is archived in memory regardless.
func (a *Archive) Append(wo models.WorkOrder) error {
	a.saveMu.Lock()
	defer a.saveMu.Unlock()

	a.mu.Lock()
	a.orders = append(a.orders, wo.Clone())
	snapshot := a.snapshotLocked()
	a.mu.Unlock()

	if err := a.store.Save(snapshot); err != nil {
		log.Printf("Failed to save work order archive: %v", err)
		return fmt.Errorf("archive kept in memory only: %w", err)
	}
	return nil
}

// List returns the archived work orders in creation order
func (a *Archive) List() []models.WorkOrder {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshotLocked()
}

// Len returns the number of archived work orders
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.orders)
}

func (a *Archive) snapshotLocked() []models.WorkOrder {
	out := make([]models.WorkOrder, len(a.orders))
	for i, wo := range a.orders {
		out[i] = wo.Clone()
	}
	return out
}
