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
	"context"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-pcl/pcl"
	"github.com/ajroetker/go-pcl/pcl/contrib/image"
	"github.com/ajroetker/go-pcl/pcl/contrib/morphology"
	"github.com/ajroetker/go-pcl/pcl/contrib/workerpool"
)

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// loadConfig layers the YAML file and the command line over DefaultConfig.
func loadConfig(o cliOptions) (morphology.Config, error) {
	cfg := morphology.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = morphology.LoadConfig(o.configPath); err != nil {
			return cfg, err
		}
	}
	if err := o.apply(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, logOut io.Writer) error {
	o, err := parseArgs(args)
	if err != nil {
		return err
	}
	if len(o.inputs) == 0 {
		return fmt.Errorf("no input files (use --input a.png,b.png)")
	}

	logger := newLogger(logOut, o.verbose)
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	op, se, opts, err := cfg.Build()
	if err != nil {
		return err
	}
	outputs, err := outputPaths(o.inputs, o.outDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(o.outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()
	opts = append(opts, morphology.WithPool(pool), morphology.WithLogger(logger))

	logger.Info().
		Str("operator", op.String()).
		Str("structure", fmt.Sprintf("%s %dx%d", cfg.Structure.Shape, se.Size(), se.Size())).
		Int("files", len(o.inputs)).
		Int("workers", pool.NumWorkers()).
		Str("dispatch", pcl.CurrentName()).
		Msg("starting")

	g, ctx := errgroup.WithContext(ctx)
	for i, in := range o.inputs {
		out := outputs[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			if err := processFile(in, out, op, se, opts); err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			logger.Info().
				Str("input", in).
				Str("output", out).
				Dur("elapsed", time.Since(start)).
				Msg("processed")
			return nil
		})
	}
	return g.Wait()
}

// outputPaths maps each input to outDir/<base name>. Two inputs sharing a
// base name would be written concurrently to the same file, so they are
// rejected.
func outputPaths(inputs []string, outDir string) ([]string, error) {
	outputs := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, in := range inputs {
		out := filepath.Join(outDir, filepath.Base(in))
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("inputs %s and %s would both be written to %s", prev, in, out)
		}
		seen[out] = in
		outputs[i] = out
	}
	return outputs, nil
}

func processFile(in, out string, op morphology.Operator, se *morphology.Structure, opts []morphology.Option) error {
	src, err := readPNG(in)
	if err != nil {
		return err
	}
	dst, err := morphology.Transform(src, op, se, opts...)
	if err != nil {
		return err
	}
	return writePNG(out, dst)
}

func readPNG(path string) (*image.Image[uint16], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return image.FromGray16(decoded), nil
}

func writePNG(path string, img *image.Image[uint16]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, image.ToGray16(img)); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
