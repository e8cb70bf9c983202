package httpserver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"titan-server/internal/config"
	"titan-server/internal/infrastructure"
	"titan-server/internal/infrastructure/logger"
	"titan-server/internal/infrastructure/realtime"
	"titan-server/internal/interfaces/httpserver/routes/api"
	"titan-server/internal/interfaces/httpserver/routes/api/contentitems"
	"titan-server/internal/interfaces/httpserver/routes/api/personas"
	"titan-server/internal/interfaces/httpserver/routes/api/projects"
	"titan-server/internal/interfaces/httpserver/routes/api/roadmap"
	"titan-server/internal/interfaces/httpserver/routes/api/system"
	"titan-server/internal/interfaces/httpserver/routes/api/webaccounts"
)

// routes bound to nil handlers are fine here; nothing dials the server.
func testServer(t *testing.T) *HTTPServer {
	t.Helper()
	apiRoute := api.NewApiRoute(
		projects.NewProjectRoute(nil, nil),
		roadmap.NewRoadmapRoute(nil),
		personas.NewPersonaRoute(nil, nil, nil),
		contentitems.NewContentRoute(nil),
		webaccounts.NewWebAccountRoute(nil),
		system.NewSystemRoute(nil),
	)
	infra := infrastructure.NewInfrastructure(nil, realtime.NewHub(), logger.GetLogger())
	cfg := &config.Config{HTTPPort: 0, ServiceName: "titan-test"}
	return NewHttpServer(apiRoute, infra, cfg)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	server := testServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx)
	}()

	// give the listener a moment to come up before cancelling
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}
