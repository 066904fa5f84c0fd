// Package history keeps the append-only sequence of dispatched incidents.
// It is backed by the process-lifetime SQLite database: nothing survives a
// restart, but appends and reads are safe even if the handler model ever
// grows concurrent.
package history

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/emberops/firedesk/internal/dispatch"
	"github.com/emberops/firedesk/internal/errors"
	"github.com/emberops/firedesk/internal/sqlite"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// listSeparator joins officer and equipment lists into their table columns.
const listSeparator = ", "

type Store struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewStore(db *sqlite.Database, logger *slog.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger.With("source", "HistoryStore"),
	}
}

type incidentRow struct {
	Seq          int64     `db:"seq"`
	ID           string    `db:"id"`
	IncidentType string    `db:"incident_type"`
	Latitude     float64   `db:"latitude"`
	Longitude    float64   `db:"longitude"`
	Severity     string    `db:"severity"`
	Vehicle      string    `db:"vehicle"`
	Officers     string    `db:"officers"`
	Route        string    `db:"route"`
	ETAMinutes   int       `db:"eta_minutes"`
	Equipment    string    `db:"equipment"`
	WaterLiters  float64   `db:"water_liters"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r incidentRow) toRecord() dispatch.Record {
	return dispatch.Record{
		ID:           r.ID,
		IncidentType: r.IncidentType,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		Severity:     dispatch.Severity(r.Severity),
		Vehicle:      r.Vehicle,
		Officers:     splitList(r.Officers),
		RouteLabel:   r.Route,
		ETAMinutes:   r.ETAMinutes,
		Equipment:    splitList(r.Equipment),
		WaterLiters:  r.WaterLiters,
		CreatedAt:    r.CreatedAt,
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSeparator)
}

// Append inserts one incident record. Records are immutable once inserted;
// there is no update or delete.
func (s *Store) Append(ctx context.Context, rec dispatch.Record) error {
	row := incidentRow{
		ID:           rec.ID,
		IncidentType: rec.IncidentType,
		Latitude:     rec.Latitude,
		Longitude:    rec.Longitude,
		Severity:     string(rec.Severity),
		Vehicle:      rec.Vehicle,
		Officers:     strings.Join(rec.Officers, listSeparator),
		Route:        rec.RouteLabel,
		ETAMinutes:   rec.ETAMinutes,
		Equipment:    strings.Join(rec.Equipment, listSeparator),
		WaterLiters:  rec.WaterLiters,
		CreatedAt:    rec.CreatedAt,
	}

	stmt := `INSERT INTO incidents
	(id, incident_type, latitude, longitude, severity, vehicle, officers, route, eta_minutes, equipment, water_liters, created_at)
	VALUES (:id, :incident_type, :latitude, :longitude, :severity, :vehicle, :officers, :route, :eta_minutes, :equipment, :water_liters, :created_at)`
	if _, err := s.db.ReadWrite.NamedExecContext(ctx, stmt, row); err != nil {
		return errors.Wrap(err, "insert incident", slog.String("id", rec.ID))
	}
	return nil
}

// All returns every recorded incident in dispatch order.
func (s *Store) All(ctx context.Context) ([]dispatch.Record, error) {
	var rows []incidentRow
	stmt := `SELECT seq, id, incident_type, latitude, longitude, severity, vehicle, officers, route, eta_minutes, equipment, water_liters, created_at
	FROM incidents ORDER BY seq`
	if err := s.db.ReadOnly.SelectContext(ctx, &rows, stmt); err != nil {
		return nil, errors.Wrap(err, "select incidents")
	}

	records := make([]dispatch.Record, len(rows))
	for i, row := range rows {
		records[i] = row.toRecord()
	}
	return records, nil
}

// Count returns the number of recorded incidents.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.ReadOnly.GetContext(ctx, &count, `SELECT COUNT(*) FROM incidents`); err != nil {
		return 0, errors.Wrap(err, "count incidents")
	}
	return count, nil
}

// WaterUsage returns the water-used column in dispatch order, feeding the
// water chart.
func (s *Store) WaterUsage(ctx context.Context) ([]float64, error) {
	var liters []float64
	if err := s.db.ReadOnly.SelectContext(ctx, &liters,
		`SELECT water_liters FROM incidents ORDER BY seq`); err != nil {
		return nil, errors.Wrap(err, "select water usage")
	}
	return liters, nil
}

// Stats summarizes water consumption across the history.
type Stats struct {
	Incidents  int
	TotalWater float64
	MeanWater  float64
}

// Stats computes summary statistics over the recorded incidents.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	liters, err := s.WaterUsage(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "load water usage")
	}
	stats := Stats{Incidents: len(liters)}
	if len(liters) > 0 {
		stats.TotalWater = floats.Sum(liters)
		stats.MeanWater = stat.Mean(liters, nil)
	}
	return stats, nil
}
