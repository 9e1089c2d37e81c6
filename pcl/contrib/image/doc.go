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

// Package image provides the single-channel sample image consumed by the
// morphological transforms.
//
// Image[T] stores rows padded to a multiple of the widest SIMD vector for T,
// so row buffers can be handed to vectorized code without tail handling.
//
// # Edge Handling
//
// Neighborhood gathering reads outside the image through a Boundary:
//
//	BoundaryMirror - reflect at boundaries
//	BoundaryClamp  - repeat edge pixels
//	BoundaryWrap   - tile/wrap around
//
// The same rules are available as plain coordinate helpers: Mirror, Clamp and
// Wrap.
//
// # Usage Example
//
//	img := image.NewImage[uint16](640, 480)
//	for y := 0; y < img.Height(); y++ {
//	    row := img.RowSlice(y)
//	    for x := range row {
//	        row[x] = uint16(x * y)
//	    }
//	}
//	v := img.AtBoundary(-2, 10, image.BoundaryMirror) // reads img.At(1, 10)
package image
