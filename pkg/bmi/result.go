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
	"math"

	"github.com/bmicalc/bmicalc/pkg/header"
)

// Result is the outcome of one calculation.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	Input Request `json:"input" yaml:"input"`

	// HeightMeters and WeightKilograms are the converted values the BMI was computed from.
	HeightMeters    float64 `json:"heightMeters" yaml:"heightMeters"`
	WeightKilograms float64 `json:"weightKilograms" yaml:"weightKilograms"`

	// BMI is rounded to one decimal place. Category is derived from the unrounded value.
	BMI             float64  `json:"bmi" yaml:"bmi"`
	Category        Category `json:"category" yaml:"category"`
	Color           string   `json:"color,omitempty" yaml:"color,omitempty"`
	Icon            string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// BatchResult holds one Result per request, in request order.
type BatchResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Count   int       `json:"count" yaml:"count"`
	Results []*Result `json:"results" yaml:"results"`
}

// CategoryInfo describes a category for display: its BMI interval, colors
// and recommendations.
type CategoryInfo struct {
	Category Category `json:"category" yaml:"category"`
	Min      float64  `json:"min" yaml:"min"`
	// Max is exclusive; nil for the open-ended top category.
	Max             *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Color           string   `json:"color" yaml:"color"`
	Icon            string   `json:"icon" yaml:"icon"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// CategoryList is the serializable list of all categories.
type CategoryList struct {
	header.Header `json:",inline" yaml:",inline"`

	Categories []CategoryInfo `json:"categories" yaml:"categories"`
}

// Categories describes every category in ascending BMI order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(AllCategories()))
	for _, c := range AllCategories() {
		lower, upper := c.Bounds()
		info := CategoryInfo{
			Category:        c,
			Min:             lower,
			Color:           c.Color(),
			Icon:            c.Icon(),
			Recommendations: RecommendationsFor(c),
		}
		if !math.IsInf(upper, 1) {
			info.Max = &upper
		}
		out = append(out, info)
	}
	return out
}
