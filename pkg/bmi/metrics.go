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

package bmi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bmi_calculations_total",
			Help: "Total number of successful BMI calculations by category",
		},
		[]string{"category"},
	)

	calculationRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bmi_calculation_rejects_total",
			Help: "Total number of calculations rejected due to invalid input",
		},
	)

	calculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bmi_calculation_duration_seconds",
			Help:    "Duration of BMI calculations in seconds",
			Buckets: prometheus.ExponentialBuckets(0.000001, 10, 6),
		},
	)

	bmiValues = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bmi_value",
			Help:    "Distribution of calculated BMI values",
			Buckets: []float64{NormalMin, OverweightMin, ObeseMin, 35, 40},
		},
	)
)
