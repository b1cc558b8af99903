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

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidRequest, "height is required"),
			want: "[INVALID_REQUEST] height is required",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeInvalidRequest, "invalid measurement", stderrors.New("zero height")),
			want: "[INVALID_REQUEST] invalid measurement: zero height",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuredError_Unwrap(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := WrapWithContext(ErrCodeInvalidRequest, "bad input", sentinel, map[string]any{"field": "weight"})

	if !stderrors.Is(err, sentinel) {
		t.Error("expected errors.Is to find the wrapped cause")
	}

	wrapped := fmt.Errorf("calc failed: %w", err)
	var se *StructuredError
	if !stderrors.As(wrapped, &se) {
		t.Fatal("expected errors.As to find the StructuredError")
	}
	if se.Context["field"] != "weight" {
		t.Errorf("expected context field=weight, got %v", se.Context["field"])
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"structured", New(ErrCodeTimeout, "slow"), ErrCodeTimeout},
		{"wrapped structured", fmt.Errorf("outer: %w", NewWithContext(ErrCodeNotFound, "missing", nil)), ErrCodeNotFound},
		{"plain error", stderrors.New("boom"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}
