// Package dispatch implements the incident dispatch pipeline: route policy,
// resource picking, report formatting, and the staged dispatch orchestrator.
package dispatch

import (
	"slices"
	"time"
)

// Severity is the incident urgency tier. The form offers Low, Medium, and
// High, but the pipeline is permissive: unknown values flow through and the
// route policy falls back to the normal route.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Severities lists the tiers offered on the dispatch form, in display order.
func Severities() []Severity {
	return []Severity{SeverityLow, SeverityMedium, SeverityHigh}
}

// vehicleRoster maps each response vehicle to its fixed officer crew.
// Read-only reference data.
var vehicleRoster = map[string][]string{
	"🚒 Fire Engine 1": {"Officer A", "Officer B", "Officer C"},
	"🚒 Fire Engine 2": {"Officer D", "Officer E"},
	"🚑 Rescue Van 1":  {"Officer F", "Officer G"},
}

// equipmentCatalog is the fixed set of equipment labels offered on the form.
var equipmentCatalog = []string{
	"🧯 Fire Extinguisher",
	"💧 Water Hose",
	"🫁 Oxygen Cylinder",
	"✂ Hydraulic Cutter",
	"🧤 Protective Gear",
}

// VehicleNames returns the roster keys in stable sorted order.
func VehicleNames() []string {
	names := make([]string, 0, len(vehicleRoster))
	for name := range vehicleRoster {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Officers returns a copy of the officer crew for the named vehicle.
func Officers(vehicle string) []string {
	return slices.Clone(vehicleRoster[vehicle])
}

// KnownVehicle reports whether name is part of the configured roster.
func KnownVehicle(name string) bool {
	_, ok := vehicleRoster[name]
	return ok
}

// EquipmentCatalog returns the available equipment labels in display order.
func EquipmentCatalog() []string {
	return slices.Clone(equipmentCatalog)
}

// KnownEquipment reports whether label is part of the catalog.
func KnownEquipment(label string) bool {
	return slices.Contains(equipmentCatalog, label)
}

// Record is one dispatched incident. Created once per dispatch and immutable
// thereafter; the history store keeps them in dispatch order for the lifetime
// of the process.
type Record struct {
	ID           string
	IncidentType string
	Latitude     float64
	Longitude    float64
	Severity     Severity
	Vehicle      string
	Officers     []string
	RouteLabel   string
	ETAMinutes   int
	Equipment    []string
	WaterLiters  float64
	CreatedAt    time.Time
}
