package catalog

import (
	"strings"

	"ecolife/internal/models"
)

// UnspecifiedNonConformity is the only finding type offered for unclassified equipment
const UnspecifiedNonConformity = "Neconformitate nespecificată"

// classificationRule maps a lower-cased equipment name to a type
type classificationRule struct {
	match         func(name string) bool
	equipmentType models.EquipmentType
}

func prefix(p string) func(string) bool {
	return func(name string) bool { return strings.HasPrefix(name, p) }
}

func contains(s string) func(string) bool {
	return func(name string) bool { return strings.Contains(name, s) }
}

// Evaluated in order, first match wins.
var classificationRules = []classificationRule{
	{prefix("conveior"), models.EquipmentTypeConveyor},
	{contains("optic"), models.EquipmentTypeOpticalSorter},
	{contains("balistic"), models.EquipmentTypeBallisticSeparator},
	{contains("neferoase"), models.EquipmentTypeNonFerrousSeparator},
	{contains("metale"), models.EquipmentTypeMetalSeparator},
	{contains("sita rotativa"), models.EquipmentTypeRotaryScreen},
	{contains("desfăcător de saci"), models.EquipmentTypeBagOpener},
	{contains("presa de balotat"), models.EquipmentTypeBaler},
	{contains("compresor aer"), models.EquipmentTypeAirCompressor},
}

// Classify determines the equipment type from its plant name
func Classify(name string) models.EquipmentType {
	lower := strings.ToLower(name)
	for _, r := range classificationRules {
		if r.match(lower) {
			return r.equipmentType
		}
	}
	return models.EquipmentTypeUnknown
}

// NamedOverride binds a task list to every equipment whose lower-cased name contains Match.
// Overrides are checked before the type lookup.
type NamedOverride[T any] struct {
	Match string
	Items []T
}

// Catalog resolves the reference data attached to a piece of equipment
type Catalog struct {
	preventiveOverrides []NamedOverride[models.PreventiveTask]
	preventiveByType    map[models.EquipmentType][]models.PreventiveTask
	checklistOverrides  []NamedOverride[string]
	checklistByType     map[models.EquipmentType][]string
	nonConformities     map[models.EquipmentType][]string
}

// Option customizes a Catalog
type Option func(*Catalog)

// WithPreventiveTasks replaces the preventive task tables
func WithPreventiveTasks(overrides []NamedOverride[models.PreventiveTask], byType map[models.EquipmentType][]models.PreventiveTask) Option {
	return func(c *Catalog) {
		c.preventiveOverrides = overrides
		c.preventiveByType = byType
	}
}

// New creates a catalog holding the plant's reference data, adjusted by opts
func New(opts ...Option) *Catalog {
	c := &Catalog{
		preventiveOverrides: []NamedOverride[models.PreventiveTask]{
			{Match: "hsm", Items: hsmBalerTasks},
			{Match: "mac107", Items: mac107BalerTasks},
		},
		preventiveByType: map[models.EquipmentType][]models.PreventiveTask{
			models.EquipmentTypeConveyor:            conveyorLikeTasks,
			models.EquipmentTypeMetalSeparator:      conveyorLikeTasks,
			models.EquipmentTypeNonFerrousSeparator: conveyorLikeTasks,
			models.EquipmentTypeBallisticSeparator:  ballisticSeparatorTasks,
			models.EquipmentTypeBagOpener:           bagOpenerTasks,
			models.EquipmentTypeOpticalSorter:       opticalSorterTasks,
		},
		checklistOverrides: []NamedOverride[string]{
			{Match: "hsm", Items: hsmBalerChecklist},
			{Match: "mac107", Items: mac107BalerChecklist},
			{Match: "anis", Items: anisBalerChecklist},
			{Match: "pal", Items: palBalerChecklist},
		},
		checklistByType: map[models.EquipmentType][]string{
			models.EquipmentTypeConveyor:           conveyorChecklist,
			models.EquipmentTypeBallisticSeparator: ballisticSeparatorChecklist,
			models.EquipmentTypeBagOpener:          bagOpenerChecklist,
			models.EquipmentTypeOpticalSorter:      opticalSorterChecklist,
		},
		nonConformities: nonConformitiesByType,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func resolve[T any](name string, equipmentType models.EquipmentType, overrides []NamedOverride[T], byType map[models.EquipmentType][]T) []T {
	lower := strings.ToLower(name)
	for _, o := range overrides {
		if strings.Contains(lower, o.Match) {
			return append([]T{}, o.Items...)
		}
	}
	return append([]T{}, byType[equipmentType]...)
}

// PreventiveTasks returns the ordered preventive tasks for the equipment.
// A named override always wins over the type list; types without a list get none.
func (c *Catalog) PreventiveTasks(eq models.Equipment) []models.PreventiveTask {
	return resolve(eq.Name, eq.EquipmentType, c.preventiveOverrides, c.preventiveByType)
}

// ChecklistItems returns the completed-maintenance checklist offered for the equipment
func (c *Catalog) ChecklistItems(eq models.Equipment) []string {
	return resolve(eq.Name, eq.EquipmentType, c.checklistOverrides, c.checklistByType)
}

// NonConformityTypes returns the finding types that may be recorded for an equipment type
func (c *Catalog) NonConformityTypes(t models.EquipmentType) []string {
	if list, ok := c.nonConformities[t]; ok {
		return append([]string{}, list...)
	}
	return []string{UnspecifiedNonConformity}
}

// IsKnownNonConformity reports whether ncType belongs to the catalog of t
func (c *Catalog) IsKnownNonConformity(t models.EquipmentType, ncType string) bool {
	for _, s := range c.NonConformityTypes(t) {
		if s == ncType {
			return true
		}
	}
	return false
}

// IsChecklistItem reports whether item is offered in the checklist of eq
func (c *Catalog) IsChecklistItem(eq models.Equipment, item string) bool {
	for _, s := range c.ChecklistItems(eq) {
		if s == item {
			return true
		}
	}
	return false
}
