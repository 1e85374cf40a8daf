package models

// EquipmentType represents the maintenance category of a piece of plant equipment
type EquipmentType string

const (
	// Equipment types
	EquipmentTypeConveyor            EquipmentType = "conveyor"
	EquipmentTypeOpticalSorter       EquipmentType = "optical_sorter"
	EquipmentTypeBallisticSeparator  EquipmentType = "ballistic_separator"
	EquipmentTypeNonFerrousSeparator EquipmentType = "non_ferrous_separator"
	EquipmentTypeMetalSeparator      EquipmentType = "metal_separator"
	EquipmentTypeBagOpener           EquipmentType = "bag_opener"
	EquipmentTypeRotaryScreen        EquipmentType = "rotary_screen"
	EquipmentTypeBaler               EquipmentType = "baler"
	EquipmentTypeAirCompressor       EquipmentType = "air_compressor"
	EquipmentTypeUnknown             EquipmentType = "unknown"
)

var equipmentTypeLabels = map[EquipmentType]string{
	EquipmentTypeConveyor:            "Conveior",
	EquipmentTypeOpticalSorter:       "Sortator Optic",
	EquipmentTypeBallisticSeparator:  "Separator Balistic",
	EquipmentTypeNonFerrousSeparator: "Separator Neferoase",
	EquipmentTypeMetalSeparator:      "Separator Metale",
	EquipmentTypeBagOpener:           "Desfacator de Saci",
	EquipmentTypeRotaryScreen:        "Sita Rotativa",
	EquipmentTypeBaler:               "Presa de Balotat",
	EquipmentTypeAirCompressor:       "Compresor Aer",
	EquipmentTypeUnknown:             "Necunoscut",
}

// Label returns the plant-floor display name of the type
func (t EquipmentType) Label() string {
	if l, ok := equipmentTypeLabels[t]; ok {
		return l
	}
	return equipmentTypeLabels[EquipmentTypeUnknown]
}

// IsValid reports whether t is one of the known equipment types
func (t EquipmentType) IsValid() bool {
	_, ok := equipmentTypeLabels[t]
	return ok
}

// Production lines
const (
	Line1 = 1
	Line2 = 2
)

// IsValidLine reports whether line names one of the plant's production lines
func IsValidLine(line int) bool {
	return line == Line1 || line == Line2
}

// Equipment is the per-session snapshot of one machine on a production line.
// OperatingHours is entered manually and is not persisted between sessions.
type Equipment struct {
	ID                        string          `json:"id"`
	Name                      string          `json:"name"`
	Line                      int             `json:"line"`
	EquipmentType             EquipmentType   `json:"equipmentType"`
	NonConformities           []NonConformity `json:"nonConformities"`
	CompletedMaintenanceTasks StringSlice     `json:"completedMaintenanceTasks"`
	OperatingHours            int             `json:"operatingHours"`
}

// Clone returns a deep copy so callers never share slices with the registry
func (e Equipment) Clone() Equipment {
	out := e
	out.NonConformities = make([]NonConformity, len(e.NonConformities))
	for i, nc := range e.NonConformities {
		out.NonConformities[i] = nc.Clone()
	}
	out.CompletedMaintenanceTasks = append(StringSlice{}, e.CompletedMaintenanceTasks...)
	return out
}

// HasReportableState reports whether the equipment belongs in an inspection report
func (e Equipment) HasReportableState() bool {
	return len(e.NonConformities) > 0 || len(e.CompletedMaintenanceTasks) > 0
}
