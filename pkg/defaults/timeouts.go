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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// CalculateHandlerTimeout bounds a single /v1/bmi request.
	CalculateHandlerTimeout = 5 * time.Second

	// BatchHandlerTimeout bounds a /v1/bmi/batch request.
	BatchHandlerTimeout = 15 * time.Second

	// ResultCacheTTL is the Cache-Control max-age for category listings,
	// which never change for a given build.
	ResultCacheTTL = 1 * time.Hour
)

// Request limits.
const (
	// MaxBatchSize is the largest number of measurements accepted in one batch.
	MaxBatchSize = 100

	// MaxRequestBodyBytes caps POST bodies read by the handlers.
	MaxRequestBodyBytes = 1 << 20
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// ConfigMap timeouts for Kubernetes ConfigMap operations.
const (
	// ConfigMapWriteTimeout is the timeout for writing results to ConfigMaps.
	ConfigMapWriteTimeout = 30 * time.Second
)
