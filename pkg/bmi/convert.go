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

const (
	metersPerInch     = 0.0254
	centimetersPerM   = 100.0
	kilogramsPerPound = 0.453592
)

// Convert turns a height and weight in any supported unit into meters and
// kilograms. Any height unit other than inches is treated as centimeters and
// any weight unit other than pounds as kilograms; unit validation belongs to
// the caller. Values are not checked here.
func Convert(height float64, heightUnit HeightUnit, weight float64, weightUnit WeightUnit) (heightM, weightKg float64) {
	return HeightToMeters(height, heightUnit), WeightToKilograms(weight, weightUnit)
}

// HeightToMeters converts a height value to meters.
func HeightToMeters(v float64, u HeightUnit) float64 {
	if u == Inches {
		return v * metersPerInch
	}
	return v / centimetersPerM
}

// WeightToKilograms converts a weight value to kilograms.
func WeightToKilograms(v float64, u WeightUnit) float64 {
	if u == Pounds {
		return v * kilogramsPerPound
	}
	return v
}

// MetersToHeight converts meters back into the given height unit.
func MetersToHeight(m float64, u HeightUnit) float64 {
	if u == Inches {
		return m / metersPerInch
	}
	return m * centimetersPerM
}
