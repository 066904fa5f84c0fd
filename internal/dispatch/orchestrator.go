package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/emberops/firedesk/internal/chart"
	"github.com/emberops/firedesk/internal/errors"
	"github.com/emberops/firedesk/internal/geomap"
	"github.com/google/uuid"
)

// Timeline narrative stages. Generated as static text to pace the UI, they do
// not reflect real elapsed time.
const (
	StageDispatched = "🚨 Dispatched: Vehicle is on the way..."
	StageOnScene    = "🟡 On Scene: Firefighters reached incident site..."
	StageResolved   = "🟢 Resolved: Incident cleared successfully!"
)

// History is the append-only incident store the orchestrator records into.
type History interface {
	Append(ctx context.Context, rec Record) error
	WaterUsage(ctx context.Context) ([]float64, error)
}

// Request carries the form input for one dispatch. Latitude and longitude
// arrive as raw text and are coerced during dispatch; everything else is
// accepted as-is.
type Request struct {
	IncidentType string
	Severity     Severity
	Latitude     string
	Longitude    string
	Equipment    []string
	WaterLiters  float64
}

// Outcome bundles everything one dispatch produces.
type Outcome struct {
	Record       Record
	Report       string
	Equipment    map[string]int
	EquipmentPNG []byte
	WaterPNG     []byte
	Map          *geomap.Document
}

// Orchestrator runs the dispatch pipeline: coordinate coercion, the staged
// Dispatched → On Scene → Resolved narrative, resource picking, history
// append, chart rendering, and map building. Once started, a dispatch always
// reaches Resolved; there is no cancellation mid-flight.
type Orchestrator struct {
	picker     *Picker
	history    History
	station    geomap.LatLng
	stageDelay time.Duration
	sleep      func(time.Duration)
	logger     *slog.Logger
}

// NewOrchestrator wires the pipeline. A nil sleep uses time.Sleep; tests pass
// a no-op to run instantly.
func NewOrchestrator(
	history History,
	picker *Picker,
	station geomap.LatLng,
	stageDelay time.Duration,
	sleep func(time.Duration),
	logger *slog.Logger,
) *Orchestrator {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Orchestrator{
		picker:     picker,
		history:    history,
		station:    station,
		stageDelay: stageDelay,
		sleep:      sleep,
		logger:     logger.With("source", "Orchestrator"),
	}
}

// Dispatch runs one synchronous dispatch. A coordinate that is not
// numeric-coercible fails the whole request with [geomap.ErrBadCoordinate]
// before anything is recorded. Every successful call appends exactly one
// record to the history.
func (o *Orchestrator) Dispatch(ctx context.Context, req Request) (*Outcome, error) {
	incident, err := geomap.ParseLatLng(req.Latitude, req.Longitude)
	if err != nil {
		return nil, errors.Wrap(err, "coerce incident coordinate")
	}

	timeline := []string{StageDispatched}
	o.logger.LogAttrs(ctx, slog.LevelInfo, "incident dispatched",
		slog.String("incidentType", req.IncidentType),
		slog.String("severity", string(req.Severity)))
	o.sleep(o.stageDelay)

	vehicle, officers := o.picker.PickVehicle()
	route := RouteFor(req.Severity)
	equipmentCounts := o.picker.AllocateEquipment(req.Equipment)

	timeline = append(timeline, StageOnScene)
	o.sleep(o.stageDelay)

	rec := Record{
		ID:           uuid.NewString(),
		IncidentType: req.IncidentType,
		Latitude:     incident.Lat,
		Longitude:    incident.Lon,
		Severity:     req.Severity,
		Vehicle:      vehicle,
		Officers:     officers,
		RouteLabel:   route.Label,
		ETAMinutes:   route.ETAMinutes,
		Equipment:    req.Equipment,
		WaterLiters:  req.WaterLiters,
		CreatedAt:    time.Now().UTC(),
	}
	if err = o.history.Append(ctx, rec); err != nil {
		return nil, errors.Wrap(err, "append incident record")
	}

	timeline = append(timeline, StageResolved)
	o.sleep(o.stageDelay)

	equipmentPNG, err := chart.Equipment(equipmentCounts)
	if err != nil {
		return nil, errors.Wrap(err, "render equipment chart")
	}

	var waterUsage []float64
	if waterUsage, err = o.history.WaterUsage(ctx); err != nil {
		return nil, errors.Wrap(err, "load water usage")
	}
	waterPNG, err := chart.Water(waterUsage)
	if err != nil {
		return nil, errors.Wrap(err, "render water chart")
	}

	return &Outcome{
		Record:       rec,
		Report:       FormatReport(rec, timeline),
		Equipment:    equipmentCounts,
		EquipmentPNG: equipmentPNG,
		WaterPNG:     waterPNG,
		Map:          geomap.Build(o.station, incident),
	}, nil
}
