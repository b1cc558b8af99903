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

package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"in.json":  FormatJSON,
		"IN.YAML":  FormatYAML,
		"in.yml":   FormatYAML,
		"out.txt":  FormatTable,
		"out.bin":  FormatJSON,
		"noextens": FormatJSON,
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatFromPath(path), path)
	}
}

func TestNewReader_RejectsTable(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err)

	_, err = NewReader(Format("xml"), strings.NewReader(""))
	assert.Error(t, err)
}

func TestReader_Deserialize(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader("name: Obese\nbmi: 40\n"))
	require.NoError(t, err)

	var got sample
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, "Obese", got.Name)
	assert.InDelta(t, 40.0, got.BMI, 1e-9)
	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close())

	var nilReader *Reader
	assert.Error(t, nilReader.Deserialize(&got))
	assert.NoError(t, nilReader.Close())
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"name":"a","bmi":20},{"name":"b","bmi":31}]`), 0o600))

	items, err := FromFile[[]sample](jsonPath)
	require.NoError(t, err)
	require.Len(t, *items, 2)
	assert.Equal(t, "b", (*items)[1].Name)

	yamlPath := filepath.Join(dir, "item.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: c\nbmi: 18\n"), 0o600))

	item, err := FromFile[sample](yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "c", item.Name)

	_, err = FromFile[sample](filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("{not json"), 0o600))
	_, err = FromFile[sample](badPath)
	assert.Error(t, err)
}
