// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNew(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{"/test": okHandler}))
	require.NotNil(t, s)

	assert.NotNil(t, s.config)
	assert.NotNil(t, s.httpServer)
	assert.NotNil(t, s.rateLimiter)
	assert.Equal(t, ":8080", s.httpServer.Addr)
	assert.False(t, s.isReady(), "server must not be ready before Start")
}

func TestOptions(t *testing.T) {
	t.Run("default name", func(t *testing.T) {
		assert.Equal(t, "server", New().config.Name)
	})

	t.Run("name and version", func(t *testing.T) {
		s := New(WithName("bmid"), WithVersion("v1.2.3"))
		assert.Equal(t, "bmid", s.config.Name)
		assert.Equal(t, "v1.2.3", s.config.Version)
	})

	t.Run("handlers accumulate", func(t *testing.T) {
		s := New(
			WithHandler(map[string]http.HandlerFunc{"/v1/bmi": okHandler}),
			WithHandler(map[string]http.HandlerFunc{"/v1/categories": okHandler}),
		)
		assert.Len(t, s.config.Handlers, 2)
		assert.Contains(t, s.config.Handlers, "/v1/bmi")
		assert.Contains(t, s.config.Handlers, "/v1/categories")
	})

	t.Run("config then name", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Name = "test-server"
		cfg.Port = 9090
		cfg.RateLimit = 500

		s := New(WithConfig(cfg), WithVersion("dev"))
		assert.Equal(t, "test-server", s.config.Name)
		assert.Equal(t, "dev", s.config.Version)
		assert.Equal(t, ":9090", s.httpServer.Addr)
		assert.InDelta(t, 500, float64(s.rateLimiter.Limit()), 0)
	})

	t.Run("nil config ignored", func(t *testing.T) {
		s := New(WithConfig(nil))
		assert.NotNil(t, s.config)
	})
}

func TestHealthEndpoint(t *testing.T) {
	s := New()

	w := httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)

	w = httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestReadyEndpoint(t *testing.T) {
	s := New()

	tests := []struct {
		name       string
		ready      bool
		wantStatus int
		wantBody   string
	}{
		{"ready state", true, http.StatusOK, "ready"},
		{"not ready state", false, http.StatusServiceUnavailable, "not_ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.setReady(tt.ready)

			w := httptest.NewRecorder()
			s.handleReady(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp HealthResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantBody, resp.Status)
		})
	}
}

func TestRateLimiting(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1
	cfg.Handlers = map[string]http.HandlerFunc{"/test": okHandler}

	s := New(WithConfig(cfg))
	handler := s.withMiddleware(s.config.Handlers["/test"])

	w1 := httptest.NewRecorder()
	handler(w1, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w1.Code)

	w2 := httptest.NewRecorder()
	handler(w2, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusTooManyRequests, w2.Code)
	assert.Equal(t, "1", w2.Header().Get("Retry-After"))

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w2.Body).Decode(&resp))
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", resp.Code)
	assert.True(t, resp.Retryable)
}

func TestRoutes(t *testing.T) {
	s := New(
		WithName("bmid"),
		WithVersion("v0.1.0"),
		WithHandler(map[string]http.HandlerFunc{
			"/v1/bmi":        okHandler,
			"/v1/categories": okHandler,
		}),
	)
	mux := s.httpServer.Handler

	t.Run("root index", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Name    string   `json:"name"`
			Version string   `json:"version"`
			Routes  []string `json:"routes"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "bmid", resp.Name)
		assert.Equal(t, "v0.1.0", resp.Version)
		assert.Equal(t, []string{"/v1/bmi", "/v1/categories", "/health", "/ready", "/metrics"}, resp.Routes)
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v2/bmi", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "NOT_FOUND", resp.Code)
	})

	t.Run("api route goes through middleware", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/bmi", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
		assert.Equal(t, DefaultAPIVersion, w.Header().Get("X-API-Version"))
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "bmi_http_requests_total")
	})
}

func TestGracefulShutdown(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = 0
	cfg.ShutdownTimeout = 2 * time.Second

	s := New(WithConfig(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start(ctx)
	}()

	require.Eventually(t, s.isReady, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
	assert.False(t, s.isReady())
}
