package main

import (
	"net/http"

	"github.com/emberops/firedesk/ui"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /static/", http.StripPrefix("/static", cacheForeverHeaders(http.FileServerFS(ui.StaticFS))))
	mux.HandleFunc("GET /api/healthy", app.healthy)

	session := alice.New(app.sessionManager.LoadAndSave, noSurf, app.commonContext)

	mux.Handle("GET /{$}", session.ThenFunc(app.home))
	mux.Handle("POST /dispatch", session.ThenFunc(app.dispatch))
	mux.Handle("GET /map", session.ThenFunc(app.mapDocument))

	return app.recoverPanic(app.logRequest(secureHeaders(mux)))
}
