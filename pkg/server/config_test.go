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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		cfg := parseConfig()

		assert.Empty(t, cfg.Address)
		assert.Equal(t, 8080, cfg.Port)
		assert.InDelta(t, 100, float64(cfg.RateLimit), 0)
		assert.Equal(t, 200, cfg.RateLimitBurst)
		assert.Equal(t, 100, cfg.MaxBulkRequests)
		assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 5*time.Second, cfg.ReadHeaderTimeout)
		assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
		assert.Equal(t, 120*time.Second, cfg.IdleTimeout)
		assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	})

	tests := []struct {
		name         string
		port         string
		shutdown     string
		wantPort     int
		wantShutdown time.Duration
	}{
		{"port from env", "9090", "", 9090, 30 * time.Second},
		{"invalid port uses default", "invalid", "", 8080, 30 * time.Second},
		{"out of range port uses default", "70000", "", 8080, 30 * time.Second},
		{"shutdown from env", "", "5", 8080, 5 * time.Second},
		{"negative shutdown uses default", "", "-3", 8080, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)
			t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", tt.shutdown)

			cfg := parseConfig()
			assert.Equal(t, tt.wantPort, cfg.Port)
			assert.Equal(t, tt.wantShutdown, cfg.ShutdownTimeout)
		})
	}
}
