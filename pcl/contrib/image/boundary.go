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
	"fmt"
	"strings"
)

// Boundary selects how coordinates outside an image are mapped back inside.
type Boundary uint8

const (
	// BoundaryMirror reflects at the edges: -1 maps to 0, -2 to 1.
	BoundaryMirror Boundary = iota
	// BoundaryClamp repeats the edge pixels.
	BoundaryClamp
	// BoundaryWrap tiles the image.
	BoundaryWrap
)

var boundaryNames = [...]string{
	BoundaryMirror: "mirror",
	BoundaryClamp:  "clamp",
	BoundaryWrap:   "wrap",
}

// String returns the lower-case name of b.
func (b Boundary) String() string {
	if int(b) < len(boundaryNames) {
		return boundaryNames[b]
	}
	return fmt.Sprintf("Boundary(%d)", uint8(b))
}

// ParseBoundary parses a boundary name as returned by String. Matching is
// case-insensitive.
func ParseBoundary(s string) (Boundary, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for b, name := range boundaryNames {
		if name == s {
			return Boundary(b), nil
		}
	}
	return BoundaryMirror, fmt.Errorf("unknown boundary %q (want mirror, clamp or wrap)", s)
}

// Resolve maps index into [0, size) according to b.
func (b Boundary) Resolve(index, size int) int {
	if index >= 0 && index < size {
		return index
	}
	switch b {
	case BoundaryClamp:
		return Clamp(index, size)
	case BoundaryWrap:
		return Wrap(index, size)
	default:
		return Mirror(index, size)
	}
}

// Mirror returns the mirrored index for out-of-bounds coordinates.
// Given bounds [0, size), mirrors index to stay within bounds.
func Mirror(index, size int) int {
	if size <= 0 {
		return 0
	}
	if index < 0 {
		index = -index - 1
	}
	if index >= size {
		// Wrap around using modulo with mirroring
		period := 2 * size
		index = index % period
		if index >= size {
			index = period - index - 1
		}
	}
	return index
}

// Clamp returns index clamped to [0, size-1].
func Clamp(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return max(size-1, 0)
	}
	return index
}

// Wrap returns index wrapped to [0, size) using modulo.
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	index = index % size
	if index < 0 {
		index += size
	}
	return index
}
