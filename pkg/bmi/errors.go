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

import "errors"

var (
	// ErrInvalidInput is returned when a height or weight is zero, negative or not finite.
	ErrInvalidInput = errors.New("invalid measurement")

	// ErrUnknownUnit is returned when a unit name can't be resolved.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrBatchTooLarge is returned when a batch exceeds the calculator's limit.
	ErrBatchTooLarge = errors.New("batch too large")
)
