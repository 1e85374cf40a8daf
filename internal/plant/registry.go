package plant

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"ecolife/internal/catalog"
	"ecolife/internal/models"
)

var (
	ErrEquipmentNotFound    = errors.New("equipment not found")
	ErrFindingNotFound      = errors.New("non-conformity not found")
	ErrNegativeHours        = errors.New("operating hours must not be negative")
	ErrTypeRequired         = errors.New("non-conformity type is required")
	ErrUnknownNonConformity = errors.New("non-conformity type is not valid for this equipment")
	ErrUnknownChecklistItem = errors.New("maintenance task is not in this equipment's checklist")
)

// Catalog is the reference data the registry validates against
type Catalog interface {
	IsKnownNonConformity(t models.EquipmentType, ncType string) bool
	IsChecklistItem(eq models.Equipment, item string) bool
}

// Registry holds the mutable state of one line's equipment for a session.
// Writers replace the whole slice so readers never observe a partial update.
type Registry struct {
	mu        sync.RWMutex
	line      int
	equipment []models.Equipment
	catalog   Catalog
	now       func() time.Time
}

// NewLineRegistry builds a fresh roster for the line
func NewLineRegistry(line int, cat Catalog) (*Registry, error) {
	equipment, err := catalog.Roster(line)
	if err != nil {
		return nil, err
	}
	return NewRegistry(line, equipment, cat), nil
}

// NewRegistry wraps an explicit equipment collection
func NewRegistry(line int, equipment []models.Equipment, cat Catalog) *Registry {
	return &Registry{
		line:      line,
		equipment: cloneAll(equipment),
		catalog:   cat,
		now:       time.Now,
	}
}

func cloneAll(in []models.Equipment) []models.Equipment {
	out := make([]models.Equipment, len(in))
	for i, eq := range in {
		out[i] = eq.Clone()
	}
	return out
}

// Line returns the production line of the registry
func (r *Registry) Line() int {
	return r.line
}

// List returns a snapshot of all equipment in roster order
func (r *Registry) List() []models.Equipment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAll(r.equipment)
}

// Get returns a snapshot of one piece of equipment
func (r *Registry) Get(id string) (models.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return models.Equipment{}, fmt.Errorf("%w: %s", ErrEquipmentNotFound, id)
	}
	return r.equipment[i].Clone(), nil
}

func (r *Registry) indexOf(id string) int {
	for i := range r.equipment {
		if r.equipment[i].ID == id {
			return i
		}
	}
	return -1
}

// update applies fn to a copy of the collection and publishes it in one step
func (r *Registry) update(fn func(equipment []models.Equipment) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := cloneAll(r.equipment)
	if err := fn(next); err != nil {
		return err
	}
	r.equipment = next
	return nil
}

func (r *Registry) mutate(id string, fn func(eq *models.Equipment) error) (models.Equipment, error) {
	var out models.Equipment
	err := r.update(func(equipment []models.Equipment) error {
		i := -1
		for j := range equipment {
			if equipment[j].ID == id {
				i = j
				break
			}
		}
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrEquipmentNotFound, id)
		}
		if err := fn(&equipment[i]); err != nil {
			return err
		}
		out = equipment[i].Clone()
		return nil
	})
	return out, err
}

// SetOperatingHours records the hour counter of one machine.
// Setting a conveyor sets the whole conveyor group of the line.
func (r *Registry) SetOperatingHours(id string, hours int) ([]models.Equipment, error) {
	if hours < 0 {
		return nil, ErrNegativeHours
	}
	var changed []models.Equipment
	err := r.update(func(equipment []models.Equipment) error {
		i := -1
		for j := range equipment {
			if equipment[j].ID == id {
				i = j
				break
			}
		}
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrEquipmentNotFound, id)
		}
		if equipment[i].EquipmentType == models.EquipmentTypeConveyor {
			changed = setGroupHours(equipment, equipment[i].Line, hours)
			return nil
		}
		equipment[i].OperatingHours = hours
		changed = []models.Equipment{equipment[i].Clone()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return changed, nil
}

// SetGroupOperatingHours sets every conveyor of the line to hours in a single update
func (r *Registry) SetGroupOperatingHours(line, hours int) ([]models.Equipment, error) {
	if hours < 0 {
		return nil, ErrNegativeHours
	}
	var changed []models.Equipment
	err := r.update(func(equipment []models.Equipment) error {
		changed = setGroupHours(equipment, line, hours)
		return nil
	})
	return changed, err
}

func setGroupHours(equipment []models.Equipment, line, hours int) []models.Equipment {
	var changed []models.Equipment
	for i := range equipment {
		if equipment[i].Line == line && equipment[i].EquipmentType == models.EquipmentTypeConveyor {
			equipment[i].OperatingHours = hours
			changed = append(changed, equipment[i].Clone())
		}
	}
	return changed
}

// FindingInput carries the editable fields of a non-conformity
type FindingInput struct {
	Type           string                 `json:"type"`
	Notes          string                 `json:"notes"`
	Photo          string                 `json:"photo,omitempty"`
	DiscoveryDate  string                 `json:"discoveryDate,omitempty"`
	Recommendation *models.Recommendation `json:"recommendation,omitempty"`
}

func (r *Registry) validateFinding(eq *models.Equipment, in FindingInput) error {
	if strings.TrimSpace(in.Type) == "" {
		return ErrTypeRequired
	}
	if r.catalog != nil && !r.catalog.IsKnownNonConformity(eq.EquipmentType, in.Type) {
		return fmt.Errorf("%w: %q", ErrUnknownNonConformity, in.Type)
	}
	return nil
}

// AddFinding records a non-conformity on the equipment
func (r *Registry) AddFinding(id string, in FindingInput) (models.NonConformity, error) {
	var nc models.NonConformity
	_, err := r.mutate(id, func(eq *models.Equipment) error {
		if err := r.validateFinding(eq, in); err != nil {
			return err
		}
		nc = models.NonConformity{
			ID:             r.findingID(eq),
			Type:           in.Type,
			Notes:          in.Notes,
			Photo:          in.Photo,
			DiscoveryDate:  in.DiscoveryDate,
			Recommendation: in.Recommendation,
		}
		eq.NonConformities = append(eq.NonConformities, nc)
		nc = nc.Clone()
		return nil
	})
	return nc, err
}

// findingID returns nc-<unix millis>, bumped until unique on the equipment
func (r *Registry) findingID(eq *models.Equipment) string {
	ms := r.now().UnixMilli()
	for {
		id := fmt.Sprintf("nc-%d", ms)
		taken := false
		for _, existing := range eq.NonConformities {
			if existing.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		ms++
	}
}

// UpdateFinding replaces the editable fields of an existing non-conformity
func (r *Registry) UpdateFinding(id, findingID string, in FindingInput) (models.NonConformity, error) {
	var nc models.NonConformity
	_, err := r.mutate(id, func(eq *models.Equipment) error {
		if err := r.validateFinding(eq, in); err != nil {
			return err
		}
		for i := range eq.NonConformities {
			if eq.NonConformities[i].ID == findingID {
				eq.NonConformities[i] = models.NonConformity{
					ID:             findingID,
					Type:           in.Type,
					Notes:          in.Notes,
					Photo:          in.Photo,
					DiscoveryDate:  in.DiscoveryDate,
					Recommendation: in.Recommendation,
				}
				nc = eq.NonConformities[i].Clone()
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrFindingNotFound, findingID)
	})
	return nc, err
}

// SetRecommendation attaches an AI recommendation to an existing finding.
func (r *Registry) SetRecommendation(id, findingID string, rec models.Recommendation) (models.NonConformity, error) {
	var nc models.NonConformity
	_, err := r.mutate(id, func(eq *models.Equipment) error {
		for i := range eq.NonConformities {
			if eq.NonConformities[i].ID == findingID {
				eq.NonConformities[i].Recommendation = &rec
				nc = eq.NonConformities[i].Clone()
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrFindingNotFound, findingID)
	})
	return nc, err
}

// RemoveFinding deletes a non-conformity from the equipment
func (r *Registry) RemoveFinding(id, findingID string) error {
	_, err := r.mutate(id, func(eq *models.Equipment) error {
		for i := range eq.NonConformities {
			if eq.NonConformities[i].ID == findingID {
				eq.NonConformities = append(eq.NonConformities[:i], eq.NonConformities[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrFindingNotFound, findingID)
	})
	return err
}

// SetCompletedTasks replaces the completed-maintenance checklist of the equipment
func (r *Registry) SetCompletedTasks(id string, tasks []string) (models.Equipment, error) {
	return r.mutate(id, func(eq *models.Equipment) error {
		done := models.StringSlice{}
		for _, t := range tasks {
			if r.catalog != nil && !r.catalog.IsChecklistItem(*eq, t) {
				return fmt.Errorf("%w: %q", ErrUnknownChecklistItem, t)
			}
			if !done.Contains(t) {
				done = append(done, t)
			}
		}
		eq.CompletedMaintenanceTasks = done
		return nil
	})
}

// Reportable returns the equipment that has findings or completed checklist items
func (r *Registry) Reportable() []models.Equipment {
	var out []models.Equipment
	for _, eq := range r.List() {
		if eq.HasReportableState() {
			out = append(out, eq)
		}
	}
	return out
}
