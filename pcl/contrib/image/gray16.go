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
	stdimage "image"
	"image/color"
)

// FromGray16 converts any standard library image to 16-bit gray samples,
// using the color.Gray16Model luminance conversion.
func FromGray16(src stdimage.Image) *Image[uint16] {
	b := src.Bounds()
	img := NewImage[uint16](b.Dx(), b.Dy())
	if g, ok := src.(*stdimage.Gray16); ok {
		for y := range img.height {
			row := img.RowSlice(y)
			off := g.PixOffset(b.Min.X, b.Min.Y+y)
			for x := range row {
				row[x] = uint16(g.Pix[off+2*x])<<8 | uint16(g.Pix[off+2*x+1])
			}
		}
		return img
	}
	for y := range img.height {
		row := img.RowSlice(y)
		for x := range row {
			row[x] = color.Gray16Model.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16).Y
		}
	}
	return img
}

// ToGray16 converts 16-bit samples back to a standard library image.
func ToGray16(img *Image[uint16]) *stdimage.Gray16 {
	dst := stdimage.NewGray16(stdimage.Rect(0, 0, img.width, img.height))
	for y := range img.height {
		off := dst.PixOffset(0, y)
		for x, v := range img.RowSlice(y) {
			dst.Pix[off+2*x] = uint8(v >> 8)
			dst.Pix[off+2*x+1] = uint8(v)
		}
	}
	return dst
}
