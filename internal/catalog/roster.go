package catalog

import (
	"fmt"
	"strings"

	"ecolife/internal/models"
)

func conveyors(from, to int) []string {
	names := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		names = append(names, fmt.Sprintf("Conveior B%d", i))
	}
	return names
}

func line1Names() []string {
	names := []string{"Desfăcător de Saci"}
	names = append(names, conveyors(1, 20)...)
	return append(names,
		"Separator Balistic",
		"Separator Optic SO1",
		"Separator Optic SO2",
		"Separator Optic SO3",
		"Separator Optic SO4",
		"Separator Neferoase (Eddy curent)",
		"Separator Metale",
		"Presa de Balotat Anis",
		"Presa de Balotat MAC107",
		"Presa de Balotat PAL",
		"Compresor Aer Atlas Copco CA1",
	)
}

func line2Names() []string {
	names := []string{"Sita Rotativa"}
	names = append(names, conveyors(21, 41)...)
	return append(names,
		"Separator Balistic",
		"Separator Optic SO1(2)",
		"Separator Optic SO2(2)",
		"Separator Neferoase (Eddy curent)",
		"Separator Metale",
		"Presa de Balotat HSM",
		"Compresor Aer Atlas Copco CA2",
	)
}

// RosterNames returns the equipment names of a production line in floor order
func RosterNames(line int) ([]string, error) {
	switch line {
	case models.Line1:
		return line1Names(), nil
	case models.Line2:
		return line2Names(), nil
	}
	return nil, fmt.Errorf("unknown production line %d", line)
}

// EquipmentID derives the stable id of a named machine on a line
func EquipmentID(line int, name string) string {
	sanitized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, name)
	return fmt.Sprintf("%d-%s", line, sanitized)
}

// Roster builds fresh equipment for a line with zero hours and no findings
func Roster(line int) ([]models.Equipment, error) {
	names, err := RosterNames(line)
	if err != nil {
		return nil, err
	}
	equipment := make([]models.Equipment, 0, len(names))
	for _, name := range names {
		equipment = append(equipment, models.Equipment{
			ID:                        EquipmentID(line, name),
			Name:                      name,
			Line:                      line,
			EquipmentType:             Classify(name),
			NonConformities:           []models.NonConformity{},
			CompletedMaintenanceTasks: models.StringSlice{},
		})
	}
	return equipment, nil
}

// ConveyorGroupLabel names the shared hour counter of a line's conveyors
func ConveyorGroupLabel(line int) string {
	if line == models.Line2 {
		return "Conveioare B21-B41"
	}
	return "Conveioare B1-B20"
}
