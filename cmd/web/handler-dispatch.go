package main

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/emberops/firedesk/internal/dispatch"
	"github.com/emberops/firedesk/internal/errors"
	"github.com/emberops/firedesk/internal/geomap"
)

// dispatch runs one synchronous dispatch from the form input and renders the
// dashboard with the outcome. htmx requests get the results fragment only.
func (app *application) dispatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	form := parseDispatchForm(r)

	outcome, err := app.dispatcher.Dispatch(r.Context(), dispatch.Request{
		IncidentType: form.IncidentType,
		Severity:     form.Severity,
		Latitude:     form.Latitude,
		Longitude:    form.Longitude,
		Equipment:    form.Equipment,
		WaterLiters:  form.WaterLiters,
	})
	if err != nil {
		if errors.Is(err, geomap.ErrBadCoordinate) {
			app.renderDispatchError(w, r, form)
			return
		}
		app.serverError(w, r, errors.Wrap(err, "dispatch incident"))
		return
	}

	app.sessionManager.Put(r.Context(), lastIncidentSessionKey, outcome.Record.ID)
	app.setLatest(outcome)
	app.writeMapArtifact(r, outcome)

	data, err := app.homeData(r, defaultDispatchForm(), "")
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "build home data"))
		return
	}

	h := app.htmx.NewHandler(w, r)
	if h.IsHxRequest() {
		app.renderTemplate(w, r, http.StatusOK, "home", "results", data)
		return
	}
	app.render(w, r, http.StatusOK, "home", data)
}

// parseDispatchForm reads the form permissively: severity defaults to Medium,
// water to 500 liters, and only catalog equipment labels are kept. Latitude
// and longitude stay raw text; the orchestrator coerces them.
func parseDispatchForm(r *http.Request) dispatchFormData {
	form := dispatchFormData{ //nolint:exhaustruct // equipment filled below
		IncidentType: r.PostForm.Get("incident_type"),
		Severity:     dispatch.Severity(r.PostForm.Get("severity")),
		Latitude:     r.PostForm.Get("latitude"),
		Longitude:    r.PostForm.Get("longitude"),
		WaterLiters:  defaultWaterLiters,
	}
	if form.Severity == "" {
		form.Severity = dispatch.SeverityMedium
	}
	if v := r.PostForm.Get("water_liters"); v != "" {
		if liters, err := strconv.ParseFloat(v, 64); err == nil {
			form.WaterLiters = liters
		}
	}
	for _, item := range r.PostForm["equipment"] {
		if dispatch.KnownEquipment(item) {
			form.Equipment = append(form.Equipment, item)
		}
	}
	return form
}

// renderDispatchError re-renders the dashboard with the submitted form and a
// coordinate error. The failed dispatch recorded nothing.
func (app *application) renderDispatchError(w http.ResponseWriter, r *http.Request, form dispatchFormData) {
	data, err := app.homeData(r, form, "Latitude and longitude must be numeric coordinates.")
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "build home data"))
		return
	}
	app.render(w, r, http.StatusUnprocessableEntity, "home", data)
}

// writeMapArtifact persists the latest map document to the configured
// temporary path, overwriting the previous one. Failure to write the artifact
// does not fail the dispatch.
func (app *application) writeMapArtifact(r *http.Request, outcome *dispatch.Outcome) {
	html, err := outcome.Map.HTML("")
	if err == nil {
		err = os.WriteFile(app.mapPath, html, 0o600)
	}
	if err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelWarn, "write map artifact",
			slog.String("path", app.mapPath), errors.SlogError(err))
	}
}
