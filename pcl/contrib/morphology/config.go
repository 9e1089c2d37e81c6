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
	"bytes"
	goerrors "errors"
	"io"
	"os"

	"github.com/agilira/go-errors"
	"go.yaml.in/yaml/v3"

	"github.com/ajroetker/go-pcl/pcl/contrib/image"
)

// Config is the YAML form of a transform:
//
//	operator: selection
//	percentile: 0.25
//	structure:
//	  shape: circle
//	  size: 5
//	iterations: 2
//	amount: 0.8
//	boundary: clamp
//	workers: 8
//
// percentile is read for the selection operator and trim for the
// alpha-trimmed mean. Missing fields keep their DefaultConfig values.
type Config struct {
	Operator   string          `yaml:"operator"`
	Percentile float64         `yaml:"percentile"`
	Trim       float64         `yaml:"trim"`
	Structure  StructureConfig `yaml:"structure"`
	Iterations int             `yaml:"iterations"`
	Amount     float64         `yaml:"amount"`
	Boundary   string          `yaml:"boundary"`
	Workers    int             `yaml:"workers"`
}

// StructureConfig selects a built-in structuring element.
type StructureConfig struct {
	Shape string `yaml:"shape"`
	Size  int    `yaml:"size"`
}

// DefaultConfig returns a 3x3 box median with mirrored borders.
func DefaultConfig() Config {
	return Config{
		Operator:   KindMedian.String(),
		Percentile: 0.5,
		Trim:       0.2,
		Structure:  StructureConfig{Shape: string(ShapeBox), Size: 3},
		Iterations: 1,
		Amount:     1,
		Boundary:   image.BoundaryMirror.String(),
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !goerrors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, ErrCodeInvalidConfig, "cannot decode configuration")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file. Errors carry
// PCL_INVALID_CONFIG and wrap the validation error, if any.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, ErrCodeInvalidConfig, "cannot read configuration file").
			WithContext("path", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.Wrap(err, ErrCodeInvalidConfig, "invalid configuration file").
			WithContext("path", path)
	}
	return cfg, nil
}

// Validate checks every field without building anything.
func (c Config) Validate() error {
	_, _, _, err := c.Build()
	if err != nil {
		return err
	}
	if c.Workers < 0 {
		return errors.New(ErrCodeInvalidConfig, "workers must not be negative").
			WithContext("workers", c.Workers)
	}
	return nil
}

// operator returns the configured operator.
func (c Config) operator() (Operator, error) {
	kind, err := ParseKind(c.Operator)
	if err != nil {
		return Operator{}, err
	}
	param := 0.0
	switch kind {
	case KindSelection:
		param = c.Percentile
	case KindAlphaTrimmedMean:
		param = c.Trim
	}
	return NewOperator(kind, param)
}

// Build returns the operator, structuring element and transform options
// described by c. The worker count is left to the caller, who owns the pool.
func (c Config) Build() (Operator, *Structure, []Option, error) {
	op, err := c.operator()
	if err != nil {
		return Operator{}, nil, nil, err
	}
	se, err := NewShape(Shape(c.Structure.Shape), c.Structure.Size)
	if err != nil {
		return Operator{}, nil, nil, err
	}
	boundary, err := image.ParseBoundary(c.Boundary)
	if err != nil {
		return Operator{}, nil, nil, errors.Wrap(err, ErrCodeInvalidOption, "invalid boundary mode").
			WithContext("boundary", c.Boundary)
	}

	opts := []Option{
		WithIterations(c.Iterations),
		WithAmount(c.Amount),
		WithBoundary(boundary),
	}
	probe := options{}
	for _, opt := range opts {
		opt(&probe)
	}
	if err := probe.validate(); err != nil {
		return Operator{}, nil, nil, err
	}
	return op, se, opts, nil
}
