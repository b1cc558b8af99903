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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bmicalc/bmicalc/pkg/bmi"
	"github.com/bmicalc/bmicalc/pkg/logging"
	"github.com/bmicalc/bmicalc/pkg/server"
)

const (
	name           = "bmid"
	versionDefault = "dev"
	resultSource   = "api"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/bmicalc/bmicalc/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg := server.NewConfig()
	cfg.Name = name
	cfg.Version = version

	calc := bmi.NewCalculator(
		bmi.WithVersion(version),
		bmi.WithSource(resultSource),
		bmi.WithMaxBatchSize(cfg.MaxBulkRequests),
	)

	s := server.New(
		server.WithConfig(cfg),
		server.WithHandler(routes(calc)),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// routes maps API paths to calculator handlers.
func routes(calc *bmi.Calculator) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/bmi":        calc.HandleCalculate,
		"/v1/bmi/batch":  calc.HandleBatch,
		"/v1/categories": calc.HandleCategories,
	}
}
