// Copyright 2025 go-pcl Authors
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

package morphology

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-pcl/pcl/contrib/image"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	op, se, opts, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, KindMedian, op.Kind())
	assert.Equal(t, 9, se.Count())
	assert.Len(t, opts, 3)
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
operator: selection
percentile: 0.25
structure:
  shape: circle
  size: 5
iterations: 2
amount: 0.8
boundary: clamp
workers: 8
`)
	cfg, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, "selection", cfg.Operator)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 0.2, cfg.Trim, "unset fields keep their defaults")

	op, se, opts, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, "selection(0.25)", op.String())
	assert.Equal(t, 21, se.Count())

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	assert.Equal(t, 2, o.iterations)
	assert.Equal(t, 0.8, o.amount)
	assert.Equal(t, image.BoundaryClamp, o.boundary)
}

func TestParseConfigTrimmedMean(t *testing.T) {
	cfg, err := ParseConfig([]byte("operator: alpha-trimmed-mean\ntrim: 0.5\n"))
	require.NoError(t, err)
	op, _, _, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, KindAlphaTrimmedMean, op.Kind())
	assert.Equal(t, 0.5, op.Param())
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{"unknown field", "operatr: median\n", ErrCodeInvalidConfig},
		{"bad yaml", "operator: [median\n", ErrCodeInvalidConfig},
		{"unknown operator", "operator: opening\n", ErrCodeInvalidOperator},
		{"percentile out of range", "operator: selection\npercentile: 2\n", ErrCodeInvalidParameter},
		{"even structure", "structure: {shape: box, size: 4}\n", ErrCodeInvalidStructure},
		{"unknown shape", "structure: {shape: star, size: 3}\n", ErrCodeInvalidStructure},
		{"unknown boundary", "boundary: reflect\n", ErrCodeInvalidOption},
		{"zero iterations", "iterations: 0\n", ErrCodeInvalidOption},
		{"negative workers", "workers: -1\n", ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, tt.code, Code(err))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "morph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("operator: dilation\nstructure: {shape: cross, size: 7}\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dilation", cfg.Operator)
	assert.Equal(t, 7, cfg.Structure.Size)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, ErrCodeInvalidConfig, Code(err))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("iterations: -2\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.Equal(t, ErrCodeInvalidConfig, Code(err))
}
