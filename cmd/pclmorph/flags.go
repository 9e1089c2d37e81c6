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

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	flashflags "github.com/agilira/flash-flags"

	"github.com/ajroetker/go-pcl/pcl/contrib/morphology"
)

const version = "0.1.0"

var errHelp = errors.New("help requested")

// cliOptions holds the parsed command line. Empty strings and zero sizes
// mean "not given" and leave the configuration untouched.
type cliOptions struct {
	configPath string
	inputs     []string
	outDir     string
	verbose    bool

	op         string
	percentile string
	trim       string
	shape      string
	size       int
	iterations int
	amount     string
	boundary   string
	workers    int
}

func newFlagSet() *flashflags.FlagSet {
	fs := flashflags.New("pclmorph")
	fs.SetDescription("Apply a morphological operator to PNG images")
	fs.SetVersion(version)

	fs.String("config", "", "YAML configuration file")
	fs.StringSlice("input", nil, "Comma-separated PNG files to process")
	fs.String("outdir", ".", "Output directory")
	fs.Bool("verbose", false, "Log debug events")

	fs.String("op", "", "Operator: erosion, dilation, median, selection, midpoint, alpha-trimmed-mean")
	fs.String("k", "", "Percentile in [0, 1] for the selection operator")
	fs.String("d", "", "Trimming fraction in [0, 1] for the alpha-trimmed mean")
	fs.String("shape", "", "Structuring element: box, circle, diamond, cross")
	fs.Int("size", 0, "Structuring element size (odd)")
	fs.Int("iterations", 0, "Number of passes")
	fs.String("amount", "", "Blend amount in [0, 1]")
	fs.String("boundary", "", "Boundary mode: mirror, clamp, wrap")
	fs.Int("workers", -1, "Worker goroutines (0 uses GOMAXPROCS)")
	return fs
}

// parseArgs parses the command line. It returns errHelp after printing the
// help text when -h or --help is present.
func parseArgs(args []string) (cliOptions, error) {
	fs := newFlagSet()
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			fs.PrintHelp()
			return cliOptions{}, errHelp
		}
	}
	if err := fs.Parse(args); err != nil {
		return cliOptions{}, fmt.Errorf("failed to parse command-line flags: %w", err)
	}

	var inputs []string
	for _, in := range fs.GetStringSlice("input") {
		if in = strings.TrimSpace(in); in != "" {
			inputs = append(inputs, in)
		}
	}

	return cliOptions{
		configPath: fs.GetString("config"),
		inputs:     inputs,
		outDir:     fs.GetString("outdir"),
		verbose:    fs.GetBool("verbose"),
		op:         fs.GetString("op"),
		percentile: fs.GetString("k"),
		trim:       fs.GetString("d"),
		shape:      fs.GetString("shape"),
		size:       fs.GetInt("size"),
		iterations: fs.GetInt("iterations"),
		amount:     fs.GetString("amount"),
		boundary:   fs.GetString("boundary"),
		workers:    fs.GetInt("workers"),
	}, nil
}

// apply overrides cfg with every option given on the command line.
func (o cliOptions) apply(cfg *morphology.Config) error {
	if o.op != "" {
		cfg.Operator = o.op
	}
	if o.shape != "" {
		cfg.Structure.Shape = o.shape
	}
	if o.size != 0 {
		cfg.Structure.Size = o.size
	}
	if o.iterations != 0 {
		cfg.Iterations = o.iterations
	}
	if o.boundary != "" {
		cfg.Boundary = o.boundary
	}
	if o.workers >= 0 {
		cfg.Workers = o.workers
	}

	floats := []struct {
		flag  string
		value string
		dst   *float64
	}{
		{"k", o.percentile, &cfg.Percentile},
		{"d", o.trim, &cfg.Trim},
		{"amount", o.amount, &cfg.Amount},
	}
	for _, f := range floats {
		if f.value == "" {
			continue
		}
		v, err := strconv.ParseFloat(f.value, 64)
		if err != nil {
			return fmt.Errorf("invalid --%s %q: %w", f.flag, f.value, err)
		}
		*f.dst = v
	}
	return nil
}
