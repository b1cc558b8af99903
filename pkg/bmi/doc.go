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

// Package bmi computes Body Mass Index, classifies it and attaches
// recommendations for the resulting category.
//
// The engine is a set of pure functions:
//
//	heightM, weightKg := bmi.Convert(67, bmi.Inches, 154, bmi.Pounds)
//	value, err := bmi.ComputeBMI(heightM, weightKg) // ErrInvalidInput for <= 0
//	category := bmi.Classify(value)                 // Normal
//	tips := bmi.RecommendationsFor(category)        // four items
//
// Calculator wraps them with validation, rounding, a result header and
// Prometheus metrics, and serves them over HTTP:
//
//	calc := bmi.NewCalculator(bmi.WithVersion(version))
//	res, err := calc.Calculate(ctx, bmi.Request{
//	    Height: bmi.Height{Value: 170, Unit: bmi.Centimeters},
//	    Weight: bmi.Weight{Value: 70, Unit: bmi.Kilograms},
//	})
//
// # Categories
//
//	Underweight  bmi < 18.5
//	Normal       18.5 <= bmi < 25
//	Overweight   25 <= bmi < 30
//	Obese        bmi >= 30
//
// Classification uses the unrounded value; Result.BMI is rounded to one
// decimal place for display.
//
// # Errors
//
// A zero or negative height or weight is rejected with ErrInvalidInput
// rather than producing a zero BMI. Unit names outside cm/inch and kg/lb
// are rejected with ErrUnknownUnit. Calculator methods wrap both in an
// INVALID_REQUEST pkg/errors.StructuredError, so errors.Is still matches.
package bmi
