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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bmicalc/bmicalc/pkg/bmi"
)

// runCLI runs the root command with args and returns what it wrote to
// stdout and stderr. HOME points at an empty directory so no user config
// is picked up.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		configMu.Lock()
		config = viper.New()
		configMu.Unlock()
	})

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.Writer = &stdout
	root.ErrWriter = &stderr

	err := root.Run(context.Background(), append([]string{name}, args...))
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, fileName, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), fileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCalcCmd_WritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "result.json")

	_, _, err := runCLI(t, "--quiet", "calc",
		"--height", "170", "--weight", "70",
		"--format", "json", "--output", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var res bmi.Result
	require.NoError(t, json.Unmarshal(data, &res))
	assert.InDelta(t, 24.2, res.BMI, 1e-9)
	assert.Equal(t, bmi.Normal, res.Category)
	assert.Len(t, res.Recommendations, 4)
	assert.Equal(t, "dev", res.Metadata["version"])
	assert.Equal(t, "cli", res.Metadata["source"])
}

func TestCalcCmd_StdoutAndDisclaimer(t *testing.T) {
	stdout, stderr, err := runCLI(t, "calc",
		"--height", "67", "--height-unit", "in",
		"--weight", "154", "--weight-unit", "lbs",
		"--format", "json")
	require.NoError(t, err)

	var res bmi.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.InDelta(t, 24.1, res.BMI, 1e-9)
	assert.Equal(t, bmi.Inches, res.Input.Height.Unit)
	assert.Equal(t, bmi.Pounds, res.Input.Weight.Unit)
	assert.Contains(t, stderr, disclaimer)
}

func TestCalcCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"zero height", []string{"calc", "--height", "0", "--weight", "70"}, bmi.ErrInvalidInput},
		{"negative weight", []string{"calc", "--height", "170", "--weight=-1"}, bmi.ErrInvalidInput},
		{"unknown height unit", []string{"calc", "--height", "5", "--height-unit", "ft", "--weight", "70"}, bmi.ErrUnknownUnit},
		{"unknown format", []string{"calc", "--height", "170", "--weight", "70", "--format", "xml"}, nil},
		{"missing weight", []string{"calc", "--height", "170"}, nil},
		{"overflowing height", []string{"calc", "--height", "1e200", "--weight", "70"}, bmi.ErrInvalidInput},
		{"unwritable output", []string{"calc", "--height", "170", "--weight", "70",
			"--output", filepath.Join(t.TempDir(), "no", "such", "dir", "result.json")}, nil},
		{"malformed configmap uri", []string{"calc", "--height", "170", "--weight", "70", "--output", "cm://only-namespace"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, append([]string{"--quiet"}, tt.args...)...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCalcCmd_ConfigFileDefaults(t *testing.T) {
	cfg := writeFile(t, "bmi.yaml", "height-unit: inch\nweight-unit: lb\nformat: json\nquiet: true\n")

	stdout, stderr, err := runCLI(t, "--config", cfg, "calc", "--height", "67", "--weight", "154")
	require.NoError(t, err)

	var res bmi.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.InDelta(t, 24.1, res.BMI, 1e-9)
	assert.Empty(t, stderr)

	t.Run("flags win over config", func(t *testing.T) {
		stdout, _, err := runCLI(t, "--config", cfg, "calc",
			"--height", "170", "--height-unit", "cm",
			"--weight", "70", "--weight-unit", "kg")
		require.NoError(t, err)

		var res bmi.Result
		require.NoError(t, json.Unmarshal([]byte(stdout), &res))
		assert.InDelta(t, 24.2, res.BMI, 1e-9)
	})
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	_, _, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "categories")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestBatchCmd(t *testing.T) {
	input := writeFile(t, "requests.yaml", `requests:
  - height: {value: 170, unit: cm}
    weight: {value: 70, unit: kg}
  - height: {value: 67, unit: inches}
    weight: {value: 154, unit: pounds}
  - height: {value: 150, unit: cm}
    weight: {value: 90, unit: kg}
`)

	t.Run("all results", func(t *testing.T) {
		stdout, _, err := runCLI(t, "-q", "batch", "--input", input, "--format", "yaml")
		require.NoError(t, err)

		var res bmi.BatchResult
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &res))
		assert.Equal(t, 3, res.Count)
		require.Len(t, res.Results, 3)
		assert.Equal(t, bmi.Normal, res.Results[0].Category)
		assert.Equal(t, bmi.Normal, res.Results[1].Category)
		assert.Equal(t, bmi.Obese, res.Results[2].Category)
	})

	t.Run("batch limit", func(t *testing.T) {
		_, _, err := runCLI(t, "-q", "batch", "--input", input, "--max-batch-size", "2")
		assert.ErrorIs(t, err, bmi.ErrBatchTooLarge)
	})

	t.Run("invalid item fails batch", func(t *testing.T) {
		bad := writeFile(t, "bad.json", `{"requests":[{"height":{"value":170,"unit":"cm"},"weight":{"value":0,"unit":"kg"}}]}`)
		_, _, err := runCLI(t, "-q", "batch", "--input", bad)
		assert.ErrorIs(t, err, bmi.ErrInvalidInput)
	})

	t.Run("unknown unit", func(t *testing.T) {
		bad := writeFile(t, "bad.yaml", "requests:\n  - height: {value: 5, unit: ft}\n    weight: {value: 70, unit: kg}\n")
		_, _, err := runCLI(t, "-q", "batch", "--input", bad)
		assert.ErrorIs(t, err, bmi.ErrUnknownUnit)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := runCLI(t, "-q", "batch", "--input", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestCategoriesCmd(t *testing.T) {
	stdout, _, err := runCLI(t, "-q", "categories", "--format", "json")
	require.NoError(t, err)

	var list bmi.CategoryList
	require.NoError(t, json.Unmarshal([]byte(stdout), &list))
	require.Len(t, list.Categories, 4)
	assert.Equal(t, bmi.Underweight, list.Categories[0].Category)
	assert.Equal(t, bmi.Obese, list.Categories[3].Category)

	t.Run("table", func(t *testing.T) {
		stdout, _, err := runCLI(t, "-q", "categories")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Overweight")
	})
}
