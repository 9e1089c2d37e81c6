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
	"math/rand"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-pcl/pcl"
	"github.com/ajroetker/go-pcl/pcl/contrib/image"
	"github.com/ajroetker/go-pcl/pcl/contrib/workerpool"
)

// referenceTransform gathers every neighborhood with AtBoundary and applies
// op to a fresh buffer, one pixel at a time.
func referenceTransform[T pcl.Samples](src *image.Image[T], op Operator, se *Structure, b image.Boundary) *image.Image[T] {
	dst := image.NewImage[T](src.Width(), src.Height())
	for y := range src.Height() {
		for x := range src.Width() {
			var buf []T
			for _, off := range se.Offsets() {
				buf = append(buf, src.AtBoundary(x+off.DX, y+off.DY, b))
			}
			dst.Set(x, y, Apply(op, buf))
		}
	}
	return dst
}

func randomImage(rng *rand.Rand, w, h int) *image.Image[uint16] {
	img := image.NewImage[uint16](w, h)
	for y := range h {
		for x := range w {
			img.Set(x, y, uint16(rng.Intn(65536)))
		}
	}
	return img
}

func TestTransformMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	src := randomImage(rng, 37, 23)
	pool := workerpool.New(4)
	defer pool.Close()

	sel, err := Selection(0.3)
	require.NoError(t, err)
	atm, err := AlphaTrimmedMean(0.4)
	require.NoError(t, err)
	ops := []Operator{Erosion(), Dilation(), Median(), Midpoint(), sel, atm}

	shapes := []Shape{ShapeBox, ShapeCircle, ShapeDiamond, ShapeCross}
	boundaries := []image.Boundary{image.BoundaryMirror, image.BoundaryClamp, image.BoundaryWrap}

	for _, op := range ops {
		for _, shape := range shapes {
			se, err := NewShape(shape, 5)
			require.NoError(t, err)
			for _, b := range boundaries {
				got, err := Transform(src, op, se, WithBoundary(b), WithPool(pool))
				require.NoError(t, err)
				want := referenceTransform(src, op, se, b)
				require.Equal(t, want.Pixels(), got.Pixels(), "%s %s %s", op, shape, b)
			}
		}
	}
}

func TestTransformErosionDilation(t *testing.T) {
	img := image.NewImage[uint8](7, 7)
	img.Set(3, 3, 200)
	box, err := NewBox(3)
	require.NoError(t, err)

	eroded, err := Transform(img, Erosion(), box)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), eroded.At(3, 3), "erosion removes an isolated pixel")

	dilated, err := Transform(img, Dilation(), box)
	require.NoError(t, err)
	for y := range 7 {
		for x := range 7 {
			want := uint8(0)
			if x >= 2 && x <= 4 && y >= 2 && y <= 4 {
				want = 200
			}
			assert.Equal(t, want, dilated.At(x, y), "dilated (%d, %d)", x, y)
		}
	}

	// Two passes grow the square to 5x5.
	twice, err := Transform(img, Dilation(), box, WithIterations(2))
	require.NoError(t, err)
	assert.Equal(t, uint8(200), twice.At(1, 1))
	assert.Equal(t, uint8(0), twice.At(0, 0))

	// The source is never modified.
	assert.Equal(t, uint8(200), img.At(3, 3))
	assert.Equal(t, uint8(0), img.At(2, 2))
}

func TestTransformMedianRemovesSaltNoise(t *testing.T) {
	img := image.NewImage[float32](16, 16)
	img.Fill(0.5)
	img.Set(4, 4, 1)
	img.Set(10, 7, 0)
	se, err := NewCircle(3)
	require.NoError(t, err)

	out, err := Transform(img, Median(), se)
	require.NoError(t, err)
	for _, v := range out.Pixels() {
		assert.Equal(t, float32(0.5), v)
	}
}

func TestTransformAmount(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	src := randomImage(rng, 12, 9)
	box, err := NewBox(3)
	require.NoError(t, err)

	identity, err := Transform(src, Dilation(), box, WithAmount(0))
	require.NoError(t, err)
	assert.Equal(t, src.Pixels(), identity.Pixels())
	identity.Set(0, 0, src.At(0, 0)+1)
	assert.NotEqual(t, src.At(0, 0), identity.At(0, 0), "amount 0 returns a copy")

	full, err := Transform(src, Dilation(), box)
	require.NoError(t, err)
	half, err := Transform(src, Dilation(), box, WithAmount(0.5))
	require.NoError(t, err)
	for y := range src.Height() {
		for x := range src.Width() {
			want := pcl.ToSample[uint16](0.5*float64(full.At(x, y)) + 0.5*float64(src.At(x, y)))
			require.Equal(t, want, half.At(x, y), "(%d, %d)", x, y)
		}
	}
}

// TestTransformTrimmedMean checks a float transform against gonum's mean of
// the trimmed, sorted neighborhood.
func TestTransformTrimmedMean(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	src := image.NewImage[float64](9, 8)
	for y := range 8 {
		for x := range 9 {
			src.Set(x, y, rng.NormFloat64())
		}
	}
	se, err := NewBox(5)
	require.NoError(t, err)
	op, err := AlphaTrimmedMean(0.5)
	require.NoError(t, err)

	out, err := Transform(src, op, se, WithBoundary(image.BoundaryClamp))
	require.NoError(t, err)

	for _, p := range [][2]int{{0, 0}, {4, 4}, {8, 7}} {
		var nb []float64
		for _, off := range se.Offsets() {
			nb = append(nb, src.AtBoundary(p[0]+off.DX, p[1]+off.DY, image.BoundaryClamp))
		}
		slices.Sort(nb)
		i1 := 6 // round(0.5 * (24 >> 1))
		want := stat.Mean(nb[i1:len(nb)-i1], nil)
		assert.InDelta(t, want, out.At(p[0], p[1]), 1e-12, "pixel %v", p)
	}
}

func TestTransformPoolIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	src := randomImage(rng, 64, 40)
	se, err := NewDiamond(7)
	require.NoError(t, err)

	single := workerpool.New(1)
	defer single.Close()
	many := workerpool.New(8)
	defer many.Close()
	closed := workerpool.New(2)
	closed.Close()

	a, err := Transform(src, Median(), se, WithPool(single))
	require.NoError(t, err)
	b, err := Transform(src, Median(), se, WithPool(many))
	require.NoError(t, err)
	c, err := Transform(src, Median(), se, WithPool(closed))
	require.NoError(t, err)
	d, err := Transform(src, Median(), se)
	require.NoError(t, err)

	assert.Equal(t, a.Pixels(), b.Pixels())
	assert.Equal(t, a.Pixels(), c.Pixels())
	assert.Equal(t, a.Pixels(), d.Pixels())
}

func TestTransformErrors(t *testing.T) {
	src := image.NewImage[uint16](4, 4)
	box, err := NewBox(3)
	require.NoError(t, err)

	tests := []struct {
		name string
		src  *image.Image[uint16]
		se   *Structure
		opts []Option
		code string
	}{
		{"empty image", image.NewImage[uint16](0, 0), box, nil, ErrCodeEmptyImage},
		{"nil image", nil, box, nil, ErrCodeEmptyImage},
		{"nil structure", src, nil, nil, ErrCodeInvalidStructure},
		{"zero iterations", src, box, []Option{WithIterations(0)}, ErrCodeInvalidOption},
		{"negative amount", src, box, []Option{WithAmount(-0.1)}, ErrCodeInvalidOption},
		{"amount above one", src, box, []Option{WithAmount(1.1)}, ErrCodeInvalidOption},
		{"bad boundary", src, box, []Option{WithBoundary(image.Boundary(7))}, ErrCodeInvalidOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Transform(tt.src, Median(), tt.se, tt.opts...)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.Equal(t, tt.code, Code(err))
		})
	}
}

func TestTransformLogsDebugEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	box, err := NewBox(3)
	require.NoError(t, err)

	_, err = Transform(image.NewImage[uint8](5, 5), Median(), box, WithLogger(logger), WithIterations(2))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"morphological transform"`)
	assert.Contains(t, out, `"operator":"median"`)
	assert.Contains(t, out, `"iterations":2`)
	assert.Contains(t, out, `"dispatch":"`+pcl.CurrentName()+`"`)

	buf.Reset()
	quiet := zerolog.New(&buf).Level(zerolog.InfoLevel)
	_, err = Transform(image.NewImage[uint8](5, 5), Median(), box, WithLogger(quiet))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func BenchmarkTransformMedian(b *testing.B) {
	rng := rand.New(rand.NewSource(0))
	src := randomImage(rng, 256, 256)
	se, _ := NewCircle(5)
	pool := workerpool.New(0)
	defer pool.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Transform(src, Median(), se, WithPool(pool))
	}
}
