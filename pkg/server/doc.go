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

// Package server provides the HTTP server shared by the BMI API.
//
// API handlers are registered by URL pattern and wrapped in a middleware
// chain that records Prometheus metrics, negotiates the API version,
// assigns request IDs, recovers from panics, applies a token bucket rate
// limit (golang.org/x/time/rate) and logs each request with slog.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("bmid"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/bmi": calc.HandleCalculate,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until ctx is canceled or the process receives SIGINT or
// SIGTERM, then drains in-flight requests within Config.ShutdownTimeout.
//
// # System Endpoints
//
//	GET /         route index, name, version
//	GET /health   liveness, always 200
//	GET /ready    readiness, 503 before start and during shutdown
//	GET /metrics  Prometheus exposition
//
// System endpoints bypass rate limiting.
//
// # Configuration
//
// NewConfig returns defaults from pkg/defaults, overridden by:
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown window (default 30)
//
// # Request IDs
//
// Clients may send X-Request-Id with a UUID. Missing or malformed IDs are
// replaced with a generated one. The ID is echoed in the response header
// and in every error body.
//
// # Rate Limiting
//
// Responses carry X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset. Rejected requests get 429 with Retry-After.
//
// # Errors
//
// Errors are written as:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "invalid height or weight",
//	  "details": {"heightMeters": 0},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-01T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr derives status, code and retryability from a
// pkg/errors StructuredError anywhere in the error chain.
package server
