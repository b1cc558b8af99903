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
	"strings"

	"golang.org/x/text/cases"
)

// HeightUnit is the unit a height measurement is expressed in.
type HeightUnit string

// WeightUnit is the unit a weight measurement is expressed in.
type WeightUnit string

const (
	Centimeters HeightUnit = "cm"
	Inches      HeightUnit = "inch"

	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lb"
)

var folder = cases.Fold()

var heightAliases = map[string]HeightUnit{
	"cm":          Centimeters,
	"centimeter":  Centimeters,
	"centimeters": Centimeters,
	"inch":        Inches,
	"inches":      Inches,
	"in":          Inches,
}

var weightAliases = map[string]WeightUnit{
	"kg":        Kilograms,
	"kgs":       Kilograms,
	"kilogram":  Kilograms,
	"kilograms": Kilograms,
	"lb":        Pounds,
	"lbs":       Pounds,
	"pound":     Pounds,
	"pounds":    Pounds,
}

// String returns the string representation of the HeightUnit.
func (u HeightUnit) String() string {
	return string(u)
}

// IsValid returns true if the unit is a supported height unit.
func (u HeightUnit) IsValid() bool {
	return u == Centimeters || u == Inches
}

// String returns the string representation of the WeightUnit.
func (u WeightUnit) String() string {
	return string(u)
}

// IsValid returns true if the unit is a supported weight unit.
func (u WeightUnit) IsValid() bool {
	return u == Kilograms || u == Pounds
}

// SupportedHeightUnits returns the canonical height unit names.
func SupportedHeightUnits() []string {
	return []string{string(Centimeters), string(Inches)}
}

// SupportedWeightUnits returns the canonical weight unit names.
func SupportedWeightUnits() []string {
	return []string{string(Kilograms), string(Pounds)}
}

// ParseHeightUnit resolves a case-insensitive unit name or alias
// (e.g. "CM", "in", "inches") into a HeightUnit.
func ParseHeightUnit(s string) (HeightUnit, error) {
	if u, ok := heightAliases[folder.String(strings.TrimSpace(s))]; ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: height unit %q, supported values: %v", ErrUnknownUnit, s, SupportedHeightUnits())
}

// ParseWeightUnit resolves a case-insensitive unit name or alias
// (e.g. "KG", "lbs", "pounds") into a WeightUnit.
func ParseWeightUnit(s string) (WeightUnit, error) {
	if u, ok := weightAliases[folder.String(strings.TrimSpace(s))]; ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: weight unit %q, supported values: %v", ErrUnknownUnit, s, SupportedWeightUnits())
}

// Height is a height measurement.
type Height struct {
	Value float64    `json:"value" yaml:"value"`
	Unit  HeightUnit `json:"unit" yaml:"unit"`
}

// Weight is a weight measurement.
type Weight struct {
	Value float64    `json:"value" yaml:"value"`
	Unit  WeightUnit `json:"unit" yaml:"unit"`
}

// Request is one calculation input: a height and a weight with their units.
type Request struct {
	Height Height `json:"height" yaml:"height"`
	Weight Weight `json:"weight" yaml:"weight"`
}

// NewRequest builds a Request from raw values and unit names, resolving
// unit aliases. It doesn't check the values; Calculate does that.
func NewRequest(height float64, heightUnit string, weight float64, weightUnit string) (*Request, error) {
	hu, err := ParseHeightUnit(heightUnit)
	if err != nil {
		return nil, err
	}
	wu, err := ParseWeightUnit(weightUnit)
	if err != nil {
		return nil, err
	}
	return &Request{
		Height: Height{Value: height, Unit: hu},
		Weight: Weight{Value: weight, Unit: wu},
	}, nil
}

// Normalize resolves unit aliases in place so decoded bodies like
// {"unit": "LBS"} are accepted.
func (r *Request) Normalize() error {
	hu, err := ParseHeightUnit(string(r.Height.Unit))
	if err != nil {
		return err
	}
	wu, err := ParseWeightUnit(string(r.Weight.Unit))
	if err != nil {
		return err
	}
	r.Height.Unit = hu
	r.Weight.Unit = wu
	return nil
}

// Category is the BMI classification bucket.
type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid returns true if the category is one of the four known buckets.
func (c Category) IsValid() bool {
	switch c {
	case Underweight, Normal, Overweight, Obese:
		return true
	default:
		return false
	}
}

// AllCategories returns the categories in ascending BMI order.
func AllCategories() []Category {
	return []Category{Underweight, Normal, Overweight, Obese}
}
