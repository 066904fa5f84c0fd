package main

import (
	"context"
	"io"
	"testing"

	"github.com/emberops/firedesk/internal/e2etest"
	"github.com/stretchr/testify/require"
)

// testLookupEnv configures the server for tests: a dynamically allocated
// port, no staged delays, and the in-memory database.
func testLookupEnv(key string) (string, bool) {
	switch key {
	case "FIREDESK_ADDR":
		return "localhost:0", true
	case "FIREDESK_STAGE_DELAY":
		return "0s", true
	default:
		return "", false
	}
}

// startTestServer starts the test server, waits for it to be ready, and
// returns it for driving over HTTP.
func startTestServer(t *testing.T) *e2etest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server, err := e2etest.StartServer(ctx, io.Discard, testLookupEnv, run)
	require.NoError(t, err)
	return server
}
