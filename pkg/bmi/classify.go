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
	"fmt"
	"math"
)

// Category thresholds. Each category covers [lower, upper).
const (
	NormalMin     = 18.5
	OverweightMin = 25.0
	ObeseMin      = 30.0
)

// ComputeBMI returns weightKg / heightM². Non-positive or non-finite inputs
// return ErrInvalidInput, as do inputs whose quotient over- or underflows
// float64; there is no zero or infinite BMI result.
func ComputeBMI(heightM, weightKg float64) (float64, error) {
	if !isPositiveFinite(heightM) {
		return 0, fmt.Errorf("%w: height must be greater than zero, got %v m", ErrInvalidInput, heightM)
	}
	if !isPositiveFinite(weightKg) {
		return 0, fmt.Errorf("%w: weight must be greater than zero, got %v kg", ErrInvalidInput, weightKg)
	}
	bmi := weightKg / (heightM * heightM)
	if !isPositiveFinite(bmi) {
		return 0, fmt.Errorf("%w: bmi out of range for height %v m and weight %v kg", ErrInvalidInput, heightM, weightKg)
	}
	return bmi, nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}

// Classify maps a BMI value to its category. Thresholds are evaluated in
// ascending order and the first match wins.
func Classify(bmi float64) Category {
	switch {
	case bmi < NormalMin:
		return Underweight
	case bmi < OverweightMin:
		return Normal
	case bmi < ObeseMin:
		return Overweight
	default:
		return Obese
	}
}

// Bounds returns the [min, max) interval of a category. Obese has no upper
// bound and returns +Inf.
func (c Category) Bounds() (lower, upper float64) {
	switch c {
	case Underweight:
		return 0, NormalMin
	case Normal:
		return NormalMin, OverweightMin
	case Overweight:
		return OverweightMin, ObeseMin
	case Obese:
		return ObeseMin, math.Inf(1)
	default:
		return math.NaN(), math.NaN()
	}
}

type display struct {
	color string
	icon  string
}

var displays = map[Category]display{
	Underweight: {color: "#1E88E5", icon: "🔵"},
	Normal:      {color: "#43A047", icon: "🟢"},
	Overweight:  {color: "#FB8C00", icon: "🟠"},
	Obese:       {color: "#E53935", icon: "🔴"},
}

// Color returns the hex display color of the category, or "" if unknown.
func (c Category) Color() string {
	return displays[c].color
}

// Icon returns the display icon of the category, or "" if unknown.
func (c Category) Icon() string {
	return displays[c].icon
}

var recommendations = map[Category][]string{
	Underweight: {
		"Add nutrient-dense foods such as nuts, dairy, whole grains and lean protein.",
		"Eat smaller meals more often if large portions are hard to finish.",
		"Include strength training to build muscle mass.",
		"Talk to a clinician to rule out underlying causes of low weight.",
	},
	Normal: {
		"Keep a balanced diet rich in vegetables, fruit and whole grains.",
		"Aim for at least 150 minutes of moderate activity per week.",
		"Keep regular sleep and hydration habits.",
		"Check your weight periodically to stay in range.",
	},
	Overweight: {
		"Reduce sugary drinks and highly processed foods.",
		"Build up to 150 to 300 minutes of moderate activity per week.",
		"Watch portion sizes and eat slowly.",
		"Set small, sustainable goals and track progress.",
	},
	Obese: {
		"Consult a clinician for a personalized weight management plan.",
		"Start with low-impact activity such as walking or swimming.",
		"Focus on whole foods and cut down on added sugar and refined carbs.",
		"Consider support from a dietitian or a structured program.",
	},
}

// RecommendationsFor returns the fixed recommendation list of a category.
// Unknown categories get an empty, non-nil slice. The returned slice is a
// copy and may be modified by the caller.
func RecommendationsFor(c Category) []string {
	recs, ok := recommendations[c]
	if !ok {
		return []string{}
	}
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
