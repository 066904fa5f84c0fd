package main

import (
	"encoding/base64"
	"html/template"
	"net/http"

	"github.com/emberops/firedesk/internal/chart"
	"github.com/emberops/firedesk/internal/dispatch"
	"github.com/emberops/firedesk/internal/errors"
	"github.com/emberops/firedesk/internal/history"
)

const defaultWaterLiters = 500

// dispatchFormData mirrors the dispatch form fields for re-rendering.
type dispatchFormData struct {
	IncidentType string
	Severity     dispatch.Severity
	Latitude     string
	Longitude    string
	WaterLiters  float64
	Equipment    []string
}

func defaultDispatchForm() dispatchFormData {
	return dispatchFormData{ //nolint:exhaustruct // text fields start empty
		Severity:    dispatch.SeverityMedium,
		WaterLiters: defaultWaterLiters,
	}
}

// latestResultData is the report panel for the most recent dispatch.
type latestResultData struct {
	Report         string
	EquipmentChart template.URL
}

type homeTemplateData struct {
	BaseTemplateData

	Form             dispatchFormData
	FormError        string
	Severities       []dispatch.Severity
	EquipmentCatalog []string
	History          []dispatch.Record
	Stats            history.Stats
	WaterChart       template.URL
	Latest           *latestResultData
	LastIncidentID   string
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	data, err := app.homeData(r, defaultDispatchForm(), "")
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "build home data"))
		return
	}

	app.render(w, r, http.StatusOK, "home", data)
}

// homeData assembles everything the dashboard shows: the form, the full
// history with stats, the recomputed water chart, and the latest dispatch
// outcome when one exists.
func (app *application) homeData(r *http.Request, form dispatchFormData, formError string) (homeTemplateData, error) {
	ctx := r.Context()

	records, err := app.history.All(ctx)
	if err != nil {
		return homeTemplateData{}, errors.Wrap(err, "load history")
	}

	stats, err := app.history.Stats(ctx)
	if err != nil {
		return homeTemplateData{}, errors.Wrap(err, "load history stats")
	}

	liters, err := app.history.WaterUsage(ctx)
	if err != nil {
		return homeTemplateData{}, errors.Wrap(err, "load water usage")
	}
	waterPNG, err := chart.Water(liters)
	if err != nil {
		return homeTemplateData{}, errors.Wrap(err, "render water chart")
	}

	var latest *latestResultData
	if outcome := app.latestOutcome(); outcome != nil {
		latest = &latestResultData{
			Report:         outcome.Report,
			EquipmentChart: pngDataURI(outcome.EquipmentPNG),
		}
	}

	return homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Form:             form,
		FormError:        formError,
		Severities:       dispatch.Severities(),
		EquipmentCatalog: dispatch.EquipmentCatalog(),
		History:          records,
		Stats:            stats,
		WaterChart:       pngDataURI(waterPNG),
		Latest:           latest,
		LastIncidentID:   app.sessionManager.GetString(ctx, lastIncidentSessionKey),
	}, nil
}

// pngDataURI inlines a rendered chart into the page. Charts are recomputed
// per request, so there is nothing worth caching behind a URL.
func pngDataURI(png []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)) //nolint:gosec // server-rendered PNG
}
