package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/emberops/firedesk/internal/dispatch"
	"github.com/emberops/firedesk/internal/envstruct"
	"github.com/emberops/firedesk/internal/errors"
	"github.com/emberops/firedesk/internal/geomap"
	"github.com/emberops/firedesk/internal/history"
	"github.com/emberops/firedesk/internal/logging"
	"github.com/emberops/firedesk/internal/pprofserver"
	"github.com/emberops/firedesk/internal/sqlite"
	"github.com/joho/godotenv"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	htmx           *htmx.HTMX
	history        *history.Store
	dispatcher     *dispatch.Orchestrator
	mapPath        string

	// latest is the outcome of the most recent dispatch. It backs the
	// report panel, equipment chart, and /map document until the next
	// dispatch replaces it.
	mu     sync.RWMutex
	latest *dispatch.Outcome
}

type config struct {
	Addr       string        `env:"FIREDESK_ADDR" envDefault:"localhost:4000"`
	PprofAddr  string        `env:"FIREDESK_PPROF_ADDR" envDefault:""`
	SQLiteURL  string        `env:"FIREDESK_SQLITE_URL" envDefault:":memory:"`
	StageDelay time.Duration `env:"FIREDESK_STAGE_DELAY" envDefault:"1s"`
	StationLat float64       `env:"FIREDESK_STATION_LAT" envDefault:"12.9716"`
	StationLon float64       `env:"FIREDESK_STATION_LON" envDefault:"77.5946"`
	// MapPath is where the latest map document artifact is written.
	// Defaults to a file under the OS temp directory.
	MapPath string `env:"FIREDESK_MAP_PATH" envDefault:""`
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{ //nolint:exhaustruct // rest are defaults
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	// The .env file is a local development convenience; it's fine if it doesn't exist.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.LogAttrs(ctx, slog.LevelError, "load .env", errors.SlogError(err))
		os.Exit(1)
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server failed", errors.SlogError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}
	if cfg.MapPath == "" {
		cfg.MapPath = filepath.Join(os.TempDir(), "firedesk-map.html")
	}

	pprofserver.Launch(cfg.PprofAddr, logger)

	db, err := sqlite.NewDatabase(ctx, cfg.SQLiteURL, logger)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "close database", errors.SlogError(closeErr))
		}
	}()

	store := history.NewStore(db, logger)

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(db.ReadWrite.DB, 24*time.Hour)
	sessionManager.Lifetime = 12 * time.Hour

	station := geomap.LatLng{Lat: cfg.StationLat, Lon: cfg.StationLon}
	dispatcher := dispatch.NewOrchestrator(store, dispatch.NewPicker(nil), station, cfg.StageDelay, nil, logger)

	app := application{ //nolint:exhaustruct // latest starts empty
		logger:         logger,
		sessionManager: sessionManager,
		htmx:           htmx.New(),
		history:        store,
		dispatcher:     dispatcher,
		mapPath:        cfg.MapPath,
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}

func (app *application) setLatest(outcome *dispatch.Outcome) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.latest = outcome
}

func (app *application) latestOutcome() *dispatch.Outcome {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.latest
}
