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

package image

import (
	"unsafe"

	"github.com/ajroetker/go-pcl/pcl"
)

// Image is a single-channel 2D array with lane-aligned rows.
// Each row is padded to a multiple of pcl.MaxLanes[T]().
type Image[T pcl.Samples] struct {
	data        []T
	width       int
	height      int
	stride      int // elements per row (includes padding)
	bytesPerRow int
}

// NewImage creates a new zeroed image with the specified dimensions.
// Non-positive dimensions yield an empty 0x0 image.
func NewImage[T pcl.Samples](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}

	lanes := pcl.MaxLanes[T]()

	// Calculate stride (elements per row, rounded up to vector width)
	stride := ((width + lanes - 1) / lanes) * lanes

	var zero T
	elemSize := int(unsafe.Sizeof(zero))

	return &Image[T]{
		data:        make([]T, stride*height),
		width:       width,
		height:      height,
		stride:      stride,
		bytesPerRow: stride * elemSize,
	}
}

// FromSlice creates an image from width*height samples laid out row by row.
// It returns an empty image when len(pixels) is not width*height.
func FromSlice[T pcl.Samples](width, height int, pixels []T) *Image[T] {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return &Image[T]{}
	}
	img := NewImage[T](width, height)
	for y := range height {
		copy(img.RowSlice(y), pixels[y*width:(y+1)*width])
	}
	return img
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Stride returns the number of elements per row (including padding).
func (img *Image[T]) Stride() int {
	return img.stride
}

// BytesPerRow returns the number of bytes per row.
func (img *Image[T]) BytesPerRow() int {
	return img.bytesPerRow
}

// IsEmpty returns true if the image has no pixels.
func (img *Image[T]) IsEmpty() bool {
	return img.data == nil
}

// Row returns a mutable slice for the specified row.
// The slice includes padding elements beyond the image width.
// These can be safely read/written but are not part of the image.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.stride]
}

// RowSlice returns a mutable slice for the specified row,
// limited to the actual image width (excluding padding).
func (img *Image[T]) RowSlice(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width]
}

// At returns the value at position (x, y), or zero outside the image.
func (img *Image[T]) At(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		var zero T
		return zero
	}
	return img.data[y*img.stride+x]
}

// AtBoundary returns the value at (x, y), resolving coordinates outside the
// image with b.
func (img *Image[T]) AtBoundary(x, y int, b Boundary) T {
	if img.data == nil {
		var zero T
		return zero
	}
	return img.data[b.Resolve(y, img.height)*img.stride+b.Resolve(x, img.width)]
}

// Set sets the value at position (x, y).
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return
	}
	img.data[y*img.stride+x] = value
}

// Pixels returns the image samples row by row without padding.
func (img *Image[T]) Pixels() []T {
	out := make([]T, 0, img.width*img.height)
	for y := range img.height {
		out = append(out, img.RowSlice(y)...)
	}
	return out
}

// SameSize returns true if both images have the same dimensions.
func SameSize[T, U pcl.Samples](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Clone creates a deep copy of the image.
func (img *Image[T]) Clone() *Image[T] {
	if img.data == nil {
		return NewImage[T](0, 0)
	}

	clone := &Image[T]{
		data:        make([]T, len(img.data)),
		width:       img.width,
		height:      img.height,
		stride:      img.stride,
		bytesPerRow: img.bytesPerRow,
	}
	copy(clone.data, img.data)
	return clone
}

// CopyFrom copies the pixels of src, which must have the same size.
func (img *Image[T]) CopyFrom(src *Image[T]) {
	if !SameSize(img, src) {
		return
	}
	for y := range img.height {
		copy(img.RowSlice(y), src.RowSlice(y))
	}
}

// Clear sets all pixels to zero.
func (img *Image[T]) Clear() {
	clear(img.data)
}

// Fill sets all pixels to the specified value.
func (img *Image[T]) Fill(value T) {
	for i := range img.data {
		img.data[i] = value
	}
}
