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
	"math"
	"time"

	"github.com/agilira/go-errors"
	"github.com/rs/zerolog"

	"github.com/ajroetker/go-pcl/pcl"
	"github.com/ajroetker/go-pcl/pcl/contrib/image"
	"github.com/ajroetker/go-pcl/pcl/contrib/workerpool"
)

// rowBatch is the number of rows a worker takes per grab.
const rowBatch = 4

type options struct {
	iterations int
	amount     float64
	boundary   image.Boundary
	pool       *workerpool.Pool
	logger     zerolog.Logger
}

// Option configures Transform.
type Option func(*options)

// WithIterations sets how many times the operator is applied, each pass
// reading the output of the previous one. The default is 1.
func WithIterations(n int) Option {
	return func(o *options) { o.iterations = n }
}

// WithAmount blends the result with the original image:
// out = amount*filtered + (1-amount)*original. The default is 1.
func WithAmount(amount float64) Option {
	return func(o *options) { o.amount = amount }
}

// WithBoundary sets how neighborhoods are completed outside the image.
// The default is image.BoundaryMirror.
func WithBoundary(b image.Boundary) Option {
	return func(o *options) { o.boundary = b }
}

// WithPool runs the transform on pool. Without it, Transform creates and
// closes a pool of GOMAXPROCS workers per call.
func WithPool(pool *workerpool.Pool) Option {
	return func(o *options) { o.pool = pool }
}

// WithLogger sets the logger receiving one debug event per transform.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func (o *options) validate() error {
	if o.iterations < 1 {
		return errors.New(ErrCodeInvalidOption, "iterations must be at least 1").
			WithContext("iterations", o.iterations)
	}
	if math.IsNaN(o.amount) || o.amount < 0 || o.amount > 1 {
		return errors.New(ErrCodeInvalidOption, "amount must be in [0, 1]").
			WithContext("amount", o.amount)
	}
	if o.boundary > image.BoundaryWrap {
		return errors.New(ErrCodeInvalidOption, "unknown boundary mode").
			WithContext("boundary", o.boundary.String())
	}
	return nil
}

// scratch is the per-worker gathering state.
type scratch[T pcl.Samples] struct {
	buf  []T
	rows [][]T
}

// Transform applies op to the neighborhood of every pixel of src, as
// selected by se, and returns a new image. src is not modified.
func Transform[T pcl.Samples](src *image.Image[T], op Operator, se *Structure, opts ...Option) (*image.Image[T], error) {
	o := options{
		iterations: 1,
		amount:     1,
		boundary:   image.BoundaryMirror,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if se == nil || se.Count() == 0 {
		return nil, errors.New(ErrCodeInvalidStructure, "structuring element is required")
	}
	if src == nil || src.IsEmpty() {
		return nil, errors.New(ErrCodeEmptyImage, "cannot transform an empty image")
	}

	start := time.Now()
	pool := o.pool
	if pool == nil {
		pool = workerpool.New(0)
		defer pool.Close()
	}

	work := make([]scratch[T], pool.NumWorkers())
	for i := range work {
		work[i] = scratch[T]{
			buf:  make([]T, se.Count()),
			rows: make([][]T, se.Count()),
		}
	}

	height := src.Height()
	cur := src
	if o.amount > 0 {
		for range o.iterations {
			dst := image.NewImage[T](src.Width(), height)
			pool.ParallelForBatched(height, rowBatch, func(worker, y0, y1 int) {
				w := &work[worker]
				for y := y0; y < y1; y++ {
					filterRow(cur, dst, y, op, se, o.boundary, w)
				}
			})
			cur = dst
		}
	}

	var out *image.Image[T]
	switch {
	case cur == src:
		out = src.Clone()
	case o.amount < 1:
		out = cur
		blend(src, out, o.amount, pool)
	default:
		out = cur
	}

	o.logger.Debug().
		Str("operator", op.String()).
		Int("structure_size", se.Size()).
		Int("structure_count", se.Count()).
		Int("iterations", o.iterations).
		Float64("amount", o.amount).
		Str("boundary", o.boundary.String()).
		Int("width", src.Width()).
		Int("height", height).
		Int("workers", pool.NumWorkers()).
		Str("dispatch", pcl.CurrentName()).
		Dur("elapsed", time.Since(start)).
		Msg("morphological transform")
	return out, nil
}

// filterRow computes row y of dst from the neighborhoods in src.
func filterRow[T pcl.Samples](src, dst *image.Image[T], y int, op Operator, se *Structure, b image.Boundary, w *scratch[T]) {
	width, height := src.Width(), src.Height()
	offsets := se.Offsets()
	for k, off := range offsets {
		w.rows[k] = src.RowSlice(b.Resolve(y+off.DY, height))
	}

	r := se.Radius()
	out := dst.RowSlice(y)
	for x := range out {
		if x >= r && x < width-r {
			for k, off := range offsets {
				w.buf[k] = w.rows[k][x+off.DX]
			}
		} else {
			for k, off := range offsets {
				w.buf[k] = w.rows[k][b.Resolve(x+off.DX, width)]
			}
		}
		out[x] = Apply(op, w.buf)
	}
}

// blend replaces dst with amount*dst + (1-amount)*orig, in float64.
func blend[T pcl.Samples](orig, dst *image.Image[T], amount float64, pool *workerpool.Pool) {
	pool.ParallelFor(dst.Height(), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			src := orig.RowSlice(y)
			row := dst.RowSlice(y)
			for x, v := range row {
				f := amount*pcl.ToDouble(v) + (1-amount)*pcl.ToDouble(src[x])
				row[x] = pcl.ToSample[T](f)
			}
		}
	})
}
