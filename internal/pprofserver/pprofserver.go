package pprofserver

import (
	"log/slog"
	"net/http"
	"net/http/pprof"

	"github.com/emberops/firedesk/internal/errors"
)

// Handle registers the pprof handlers on the given mux.
func Handle(mux *http.ServeMux) {
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
}

func newServer(addr string) *http.Server {
	mux := http.NewServeMux()
	Handle(mux)
	return &http.Server{ //nolint:exhaustruct // defaults are fine for a local profiling server
		Addr:    addr,
		Handler: mux,
	}
}

// Launch a standard pprof server listening on the given loopback address.
// An empty addr disables the server. The server runs until the process exits.
func Launch(addr string, logger *slog.Logger) {
	if addr == "" {
		return
	}
	go func() {
		logger.Info("starting pprof server", "pprofAddr", addr)
		if err := newServer(addr).ListenAndServe(); err != nil {
			logger.Error("pprof server stopped", errors.SlogError(err))
		}
	}()
}
