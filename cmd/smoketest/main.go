package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/emberops/firedesk/internal/e2etest"
	"github.com/emberops/firedesk/internal/errors"
	"github.com/emberops/firedesk/internal/logging"
)

// TestDispatch submits one high-severity incident through the deployed
// dashboard and verifies that a report came back.
func TestDispatch(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second) //nolint:mnd // covers three staged delays
	defer cancel()

	if err := client.WaitForReady(ctx, "/api/healthy"); err != nil {
		return errors.Wrap(err, "wait for ready")
	}

	doc, err := client.SubmitForm(ctx, "/", "/dispatch", url.Values{
		"incident_type": {"Smoke Test Fire"},
		"severity":      {"High"},
		"latitude":      {"12.9756"},
		"longitude":     {"77.5950"},
		"water_liters":  {"500"},
		"equipment":     {"🧯 Fire Extinguisher"},
	})
	if err != nil {
		return errors.Wrap(err, "submit dispatch form")
	}

	report := doc.Find("#dispatch-report").Text()
	if !strings.Contains(report, "Emergency Green Corridor") {
		return errors.New("report missing expected route", slog.String("report", report))
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only the base URL to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <base-url>")
		os.Exit(1)
	}

	var (
		baseURL = strings.TrimSuffix(os.Args[1], "/")
		client  *e2etest.Client
		err     error
	)
	ctx = logging.WithAttrs(ctx, slog.String("url", baseURL))

	if client, err = e2etest.NewClient(baseURL); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = TestDispatch(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing dispatch", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
