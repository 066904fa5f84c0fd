package dispatch_test

import (
	"math/rand"
	"testing"

	"github.com/emberops/firedesk/internal/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededPicker(seed int64) *dispatch.Picker {
	return dispatch.NewPicker(rand.New(rand.NewSource(seed))) //nolint:gosec // deterministic test source
}

func TestPicker_PickVehicle(t *testing.T) {
	t.Parallel()
	picker := seededPicker(1)

	for i := 0; i < 50; i++ {
		vehicle, officers := picker.PickVehicle()
		require.True(t, dispatch.KnownVehicle(vehicle), "picked unknown vehicle %q", vehicle)
		assert.Equal(t, dispatch.Officers(vehicle), officers)
		assert.NotEmpty(t, officers)
	}
}

func TestPicker_AllocateEquipment(t *testing.T) {
	t.Parallel()
	picker := seededPicker(2)

	selected := []string{"🧯 Fire Extinguisher", "💧 Water Hose", "🧤 Protective Gear"}
	for i := 0; i < 50; i++ {
		counts := picker.AllocateEquipment(selected)
		require.Len(t, counts, len(selected))
		for _, item := range selected {
			units, ok := counts[item]
			require.True(t, ok, "missing allocation for %q", item)
			assert.GreaterOrEqual(t, units, 1)
			assert.LessOrEqual(t, units, 3)
		}
	}
}

func TestPicker_AllocateEquipment_empty(t *testing.T) {
	t.Parallel()
	picker := seededPicker(3)

	counts := picker.AllocateEquipment(nil)
	assert.Empty(t, counts)
}

func TestPicker_deterministicWithSameSeed(t *testing.T) {
	t.Parallel()
	first := seededPicker(42)
	second := seededPicker(42)

	for i := 0; i < 10; i++ {
		v1, _ := first.PickVehicle()
		v2, _ := second.PickVehicle()
		assert.Equal(t, v1, v2)
	}
}
