package probe_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"gamedeals/pkg/probe"
)

func TestServer(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name          string
		listenAddress string
		endpoint      string
		statusCode    int
		appName       string
		appVersion    string
		body          []byte
	}{
		{
			name:          "Health handler",
			listenAddress: ":10001",
			endpoint:      "http://:10001/healthz",
			statusCode:    http.StatusOK,
			appName:       "gamedeals",
			appVersion:    "v0.0.1",
			body:          []byte(`{"name":"gamedeals","version":"v0.0.1"}`),
		},
		{
			name:          "Ready handler",
			listenAddress: ":10002",
			endpoint:      "http://:10002/ready",
			statusCode:    http.StatusOK,
			appName:       "gamedeals",
			appVersion:    "v0.0.2",
			body:          []byte(`{"name":"gamedeals","version":"v0.0.2"}`),
		},
		{
			name:          "Invalid endpoint",
			listenAddress: ":10003",
			endpoint:      "http://:10003/invalid",
			statusCode:    http.StatusNotFound,
			body:          []byte("404 page not found\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			probeServer := probe.NewServer(
				tc.listenAddress,
				probe.Options{
					Name:    tc.appName,
					Version: tc.appVersion,
				},
			)

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return probeServer.Run(ctx)
			})

			// Wait for server to start.
			time.Sleep(time.Second)

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.endpoint, http.NoBody)
			rq.NoError(err)

			resp, err := http.DefaultClient.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			bodyBytes, err := io.ReadAll(resp.Body)
			rq.NoError(err)

			rq.Equal(tc.body, bodyBytes)

			cancel()

			rq.NoError(g.Wait())
		})
	}
}

func TestServerReadinessChecks(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		checks     []probe.ReadinessCheck
		statusCode int
	}{
		{
			name:       "No checks",
			statusCode: http.StatusOK,
		},
		{
			name: "Passing check",
			checks: []probe.ReadinessCheck{
				func(context.Context) error { return nil },
			},
			statusCode: http.StatusOK,
		},
		{
			name: "Failing check",
			checks: []probe.ReadinessCheck{
				func(context.Context) error { return nil },
				func(context.Context) error { return errors.New("redis: connection refused") },
			},
			statusCode: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			probeServer := probe.NewServer(":0", probe.Options{Name: "gamedeals"}, tc.checks...)

			rec := httptest.NewRecorder()
			probeServer.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", http.NoBody))

			rq.Equal(tc.statusCode, rec.Code)

			// Liveness never depends on readiness checks.
			rec = httptest.NewRecorder()
			probeServer.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))

			rq.Equal(http.StatusOK, rec.Code)
		})
	}
}
