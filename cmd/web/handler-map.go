package main

import (
	"net/http"

	"github.com/emberops/firedesk/internal/contexthelpers"
	"github.com/emberops/firedesk/internal/errors"
)

// mapDocument serves the vehicle-movement map for the latest dispatch as a
// standalone page embedded in the dashboard iframe. The document is
// regenerated on every request with the request's CSP nonce.
func (app *application) mapDocument(w http.ResponseWriter, r *http.Request) {
	outcome := app.latestOutcome()
	if outcome == nil {
		app.notFound(w, r)
		return
	}

	html, err := outcome.Map.HTML(contexthelpers.CSPNonce(r.Context()))
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "render map document"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(html)
}
