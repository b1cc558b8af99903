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

// Package api wires the BMI calculator into the HTTP server and runs it.
//
// # Usage
//
//	import (
//	    "log"
//	    "github.com/bmicalc/bmicalc/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET /v1/bmi        calculate from query parameters
//   - POST /v1/bmi       calculate from a JSON or YAML request body
//   - POST /v1/bmi/batch calculate a list of requests
//   - GET /v1/categories category thresholds, colors and recommendations
//
// System endpoints (no rate limiting):
//   - GET /health  - liveness probe
//   - GET /ready   - readiness probe
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (GET /v1/bmi)
//
//   - height: height value (required)
//   - heightUnit: cm or inch, aliases accepted (default cm)
//   - weight: weight value (required)
//   - weightUnit: kg or lb, aliases accepted (default kg)
//
// Example:
//
//	curl "http://localhost:8080/v1/bmi?height=67&heightUnit=in&weight=154&weightUnit=lb"
//
// # Request Body (POST /v1/bmi)
//
//	height:
//	  value: 170
//	  unit: cm
//	weight:
//	  value: 70
//	  unit: kg
//
// Send YAML with Content-Type: application/yaml; anything else is read as
// JSON. Batch bodies wrap a list of these under "requests".
//
// # Configuration
//
// PORT, SHUTDOWN_TIMEOUT_SECONDS and LOG_LEVEL are read from the
// environment. See pkg/server for details.
package api
