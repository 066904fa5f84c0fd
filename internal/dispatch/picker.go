package dispatch

import (
	"math/rand"
	"time"
)

const (
	minEquipmentUnits = 1
	maxEquipmentUnits = 3
)

// Picker selects vehicles and equipment allocations. The random source is
// injected so that tests can seed it for deterministic output.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a Picker. A nil rng gets a time-seeded source.
func NewPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{rng: rng}
}

// PickVehicle selects a vehicle uniformly at random from the configured
// roster and returns its name together with a copy of its officer crew.
func (p *Picker) PickVehicle() (string, []string) {
	names := VehicleNames()
	name := names[p.rng.Intn(len(names))]
	return name, Officers(name)
}

// AllocateEquipment assigns each selected equipment label a unit count drawn
// uniformly from [1,3]. The result's key set equals the selection exactly;
// an empty selection yields an empty map.
func (p *Picker) AllocateEquipment(selected []string) map[string]int {
	counts := make(map[string]int, len(selected))
	for _, item := range selected {
		counts[item] = minEquipmentUnits + p.rng.Intn(maxEquipmentUnits-minEquipmentUnits+1)
	}
	return counts
}
