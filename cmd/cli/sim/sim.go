// Package sim implements the dispatch simulator subcommand. It drives the
// same pipeline as the web dashboard without the HTTP surface, which makes it
// handy for eyeballing reports and chart output during development.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/emberops/firedesk/internal/dispatch"
	"github.com/emberops/firedesk/internal/errors"
	"github.com/emberops/firedesk/internal/geomap"
	"github.com/emberops/firedesk/internal/history"
	"github.com/emberops/firedesk/internal/sqlite"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "sim",
	Title: "Simulator",
}

var (
	simCount int
	simSeed  int64
	simOut   string
)

var incidentTypes = []string{
	"Building Fire",
	"Road Accident",
	"Gas Leak",
	"Forest Fire",
	"Chemical Spill",
}

var Simulate = &cobra.Command{ //nolint:exhaustruct // rest are defaults
	Use:     "simulate",
	GroupID: "sim",
	Short:   "Run simulated dispatches",
	Long: "Dispatches randomly generated incidents through the full pipeline, " +
		"prints each report, and optionally writes chart and map artifacts.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return simulate(cmd.Context())
	},
}

func init() {
	Simulate.Flags().IntVar(&simCount, "count", 3, "Number of incidents to dispatch")
	Simulate.Flags().Int64Var(&simSeed, "seed", 0, "Random seed; 0 seeds from the current time")
	Simulate.Flags().StringVar(&simOut, "out", "", "Directory to write chart PNGs and the map document into")
}

func simulate(ctx context.Context) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ //nolint:exhaustruct // rest are defaults
		Level: slog.LevelWarn,
	}))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		return errors.Wrap(err, "open in-memory database")
	}
	defer func() {
		_ = db.Close()
	}()

	seed := simSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // simulation, not crypto

	store := history.NewStore(db, logger)
	station := geomap.LatLng{Lat: 12.9716, Lon: 77.5946}
	noSleep := func(time.Duration) {}
	orchestrator := dispatch.NewOrchestrator(store, dispatch.NewPicker(rng), station, 0, noSleep, logger)

	severities := dispatch.Severities()
	catalog := dispatch.EquipmentCatalog()

	var outcome *dispatch.Outcome
	for i := 0; i < simCount; i++ {
		req := dispatch.Request{
			IncidentType: incidentTypes[rng.Intn(len(incidentTypes))],
			Severity:     severities[rng.Intn(len(severities))],
			Latitude:     formatCoord(station.Lat + jitter(rng)),
			Longitude:    formatCoord(station.Lon + jitter(rng)),
			Equipment:    pickEquipment(rng, catalog),
			WaterLiters:  float64(rng.Intn(10)+1) * 100,
		}
		if outcome, err = orchestrator.Dispatch(ctx, req); err != nil {
			return errors.Wrap(err, "dispatch simulated incident")
		}
		fmt.Println(outcome.Report)
	}

	if simOut == "" || outcome == nil {
		return nil
	}
	return writeArtifacts(simOut, outcome)
}

// jitter offsets a coordinate by up to ±0.05 degrees, a few kilometers.
func jitter(rng *rand.Rand) float64 {
	return (rng.Float64() - 0.5) / 10
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// pickEquipment selects a random non-empty subset of the catalog.
func pickEquipment(rng *rand.Rand, catalog []string) []string {
	n := rng.Intn(len(catalog)) + 1
	picked := make([]string, 0, n)
	for _, i := range rng.Perm(len(catalog))[:n] {
		picked = append(picked, catalog[i])
	}
	return picked
}

// writeArtifacts dumps the last outcome's charts and map document into dir.
func writeArtifacts(dir string, outcome *dispatch.Outcome) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	mapHTML, err := outcome.Map.HTML("")
	if err != nil {
		return errors.Wrap(err, "render map document")
	}
	files := map[string][]byte{
		"equipment-usage.png": outcome.EquipmentPNG,
		"water-usage.png":     outcome.WaterPNG,
		"movement-map.html":   mapHTML,
	}
	for name, contents := range files {
		if err = os.WriteFile(filepath.Join(dir, name), contents, 0o600); err != nil {
			return errors.Wrap(err, "write artifact", slog.String("name", name))
		}
	}
	return nil
}
