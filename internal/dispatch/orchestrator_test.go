package dispatch_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/emberops/firedesk/internal/dispatch"
	"github.com/emberops/firedesk/internal/errors"
	"github.com/emberops/firedesk/internal/geomap"
	"github.com/emberops/firedesk/internal/history"
	"github.com/emberops/firedesk/internal/sqlite"
	"github.com/emberops/firedesk/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStation = geomap.LatLng{Lat: 12.9716, Lon: 77.5946}

func newTestOrchestrator(t *testing.T) (*dispatch.Orchestrator, *history.Store) {
	t.Helper()
	ctx := context.Background()
	logger := testhelpers.NewLogger(io.Discard)

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})

	store := history.NewStore(db, logger)
	noSleep := func(time.Duration) {}
	return dispatch.NewOrchestrator(store, seededPicker(7), testStation, time.Second, noSleep, logger), store
}

func TestOrchestrator_Dispatch(t *testing.T) {
	t.Parallel()
	orchestrator, store := newTestOrchestrator(t)
	ctx := context.Background()

	outcome, err := orchestrator.Dispatch(ctx, dispatch.Request{
		IncidentType: "Building Fire",
		Severity:     dispatch.SeverityHigh,
		Latitude:     "12.9756",
		Longitude:    " 77.5950 ",
		Equipment:    []string{"🧯 Fire Extinguisher", "💧 Water Hose"},
		WaterLiters:  500,
	})
	require.NoError(t, err)

	rec := outcome.Record
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Building Fire", rec.IncidentType)
	assert.InDelta(t, 12.9756, rec.Latitude, 1e-9)
	assert.InDelta(t, 77.595, rec.Longitude, 1e-9)
	assert.True(t, dispatch.KnownVehicle(rec.Vehicle))
	assert.Equal(t, dispatch.Officers(rec.Vehicle), rec.Officers)
	assert.Equal(t, "🛣 Emergency Green Corridor", rec.RouteLabel)
	assert.Equal(t, 12, rec.ETAMinutes)

	// Every selected equipment item got a unit count in [1, 3].
	require.Len(t, outcome.Equipment, 2)
	for item, units := range outcome.Equipment {
		assert.Contains(t, rec.Equipment, item)
		assert.GreaterOrEqual(t, units, 1)
		assert.LessOrEqual(t, units, 3)
	}

	// The report carries the full staged narrative.
	assert.Contains(t, outcome.Report, dispatch.StageDispatched)
	assert.Contains(t, outcome.Report, dispatch.StageOnScene)
	assert.Contains(t, outcome.Report, dispatch.StageResolved)

	// The map runs from the station to the incident.
	require.NotNil(t, outcome.Map)
	require.Len(t, outcome.Map.Markers, 2)
	assert.Equal(t, testStation, outcome.Map.Markers[0].At)
	assert.Equal(t, geomap.LatLng{Lat: 12.9756, Lon: 77.595}, outcome.Map.Markers[1].At)
	require.Len(t, outcome.Map.Path, 2)

	// Both charts rendered.
	assert.NotEmpty(t, outcome.EquipmentPNG)
	assert.NotEmpty(t, outcome.WaterPNG)

	// Exactly one record was appended.
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOrchestrator_Dispatch_appendsInOrder(t *testing.T) {
	t.Parallel()
	orchestrator, store := newTestOrchestrator(t)
	ctx := context.Background()

	incidents := []string{"Building Fire", "Road Accident", "Gas Leak"}
	for _, incidentType := range incidents {
		_, err := orchestrator.Dispatch(ctx, dispatch.Request{ //nolint:exhaustruct // minimal request
			IncidentType: incidentType,
			Severity:     dispatch.SeverityLow,
			Latitude:     "12.97",
			Longitude:    "77.59",
			WaterLiters:  100,
		})
		require.NoError(t, err)
	}

	records, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(incidents))
	for i, rec := range records {
		assert.Equal(t, incidents[i], rec.IncidentType)
	}
}

func TestOrchestrator_Dispatch_badCoordinate(t *testing.T) {
	t.Parallel()
	orchestrator, store := newTestOrchestrator(t)
	ctx := context.Background()

	tests := []struct {
		name string
		lat  string
		lon  string
	}{
		{name: "non-numeric latitude", lat: "abc", lon: "77.59"},
		{name: "non-numeric longitude", lat: "12.97", lon: "east"},
		{name: "empty coordinates", lat: "", lon: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := orchestrator.Dispatch(ctx, dispatch.Request{ //nolint:exhaustruct // minimal request
				IncidentType: "Building Fire",
				Severity:     dispatch.SeverityHigh,
				Latitude:     tt.lat,
				Longitude:    tt.lon,
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, geomap.ErrBadCoordinate))
			assert.Nil(t, outcome)
		})
	}

	// Failed dispatches record nothing.
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
