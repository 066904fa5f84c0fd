package chart_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/emberops/firedesk/internal/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePNG(t *testing.T, data []byte) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "output is not a decodable PNG")
	bounds := img.Bounds()
	assert.Positive(t, bounds.Dx())
	assert.Positive(t, bounds.Dy())
}

func TestEquipment(t *testing.T) {
	t.Parallel()

	data, err := chart.Equipment(map[string]int{
		"🧯 Fire Extinguisher": 2,
		"💧 Water Hose":        3,
		"🧤 Protective Gear":   1,
	})
	require.NoError(t, err)
	decodePNG(t, data)
}

func TestEquipment_empty(t *testing.T) {
	t.Parallel()

	data, err := chart.Equipment(nil)
	require.NoError(t, err)
	decodePNG(t, data)
}

func TestWater(t *testing.T) {
	t.Parallel()

	data, err := chart.Water([]float64{500, 250, 1000})
	require.NoError(t, err)
	decodePNG(t, data)
}

func TestWater_empty(t *testing.T) {
	t.Parallel()

	empty, err := chart.Water(nil)
	require.NoError(t, err)
	decodePNG(t, empty)

	// The placeholder differs from a chart with bars.
	withBars, err := chart.Water([]float64{500})
	require.NoError(t, err)
	assert.NotEqual(t, empty, withBars)
}
