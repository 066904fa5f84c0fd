package dispatch_test

import (
	"testing"
	"time"

	"github.com/emberops/firedesk/internal/dispatch"
	"github.com/stretchr/testify/assert"
)

func TestFormatReport(t *testing.T) {
	t.Parallel()

	rec := dispatch.Record{
		ID:           "b2c9",
		IncidentType: "Building Fire",
		Latitude:     12.9756,
		Longitude:    77.595,
		Severity:     dispatch.SeverityHigh,
		Vehicle:      "🚒 Fire Engine 1",
		Officers:     []string{"Officer A", "Officer B", "Officer C"},
		RouteLabel:   "🛣 Emergency Green Corridor",
		ETAMinutes:   12,
		Equipment:    []string{"🧯 Fire Extinguisher", "💧 Water Hose"},
		WaterLiters:  500,
		CreatedAt:    time.Now(),
	}
	timeline := []string{dispatch.StageDispatched, dispatch.StageOnScene, dispatch.StageResolved}

	report := dispatch.FormatReport(rec, timeline)

	assert.Contains(t, report, "🚨 INCIDENT RESPONSE REPORT")
	assert.Contains(t, report, "🔥 Incident Type : Building Fire")
	assert.Contains(t, report, "📍 Location      : 12.9756, 77.595")
	assert.Contains(t, report, "⚠ Severity      : High")
	assert.Contains(t, report, "🚒 Fire Engine 1")
	assert.Contains(t, report, "Officer A, Officer B, Officer C")
	assert.Contains(t, report, "🛣 Emergency Green Corridor")
	assert.Contains(t, report, "⏱ ETA           : 12 minutes")
	assert.Contains(t, report, "🧯 Fire Extinguisher, 💧 Water Hose")
	assert.Contains(t, report, "💧 Water Used: 500 Liters")
	assert.Contains(t, report, dispatch.StageDispatched)
	assert.Contains(t, report, dispatch.StageOnScene)
	assert.Contains(t, report, dispatch.StageResolved)
	assert.Contains(t, report, "✅ Status: INCIDENT SUCCESSFULLY RESOLVED")
}

func TestFormatReport_wholeNumbersWithoutDecimals(t *testing.T) {
	t.Parallel()

	rec := dispatch.Record{ //nolint:exhaustruct // only the formatted fields matter
		Latitude:    13,
		Longitude:   77.5,
		WaterLiters: 1250,
	}

	report := dispatch.FormatReport(rec, nil)

	assert.Contains(t, report, "📍 Location      : 13, 77.5")
	assert.Contains(t, report, "💧 Water Used: 1250 Liters")
}
