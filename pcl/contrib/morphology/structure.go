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
	"strings"

	"github.com/agilira/go-errors"
)

// MaxStructureSize is the largest accepted structuring element side.
const MaxStructureSize = 101

// Offset is the position of a structuring element pixel relative to its
// center.
type Offset struct {
	DX, DY int
}

// Structure is an odd-sized square structuring element. Only the pixels set
// in its mask take part in a neighborhood.
type Structure struct {
	size    int
	mask    []bool
	offsets []Offset
}

// Shape names the built-in structuring element shapes.
type Shape string

const (
	ShapeBox     Shape = "box"
	ShapeCircle  Shape = "circle"
	ShapeDiamond Shape = "diamond"
	ShapeCross   Shape = "cross"
)

// NewShape builds a built-in structuring element by name.
func NewShape(shape Shape, size int) (*Structure, error) {
	switch Shape(strings.ToLower(string(shape))) {
	case ShapeBox:
		return NewBox(size)
	case ShapeCircle:
		return NewCircle(size)
	case ShapeDiamond:
		return NewDiamond(size)
	case ShapeCross:
		return NewCross(size)
	}
	return nil, errors.New(ErrCodeInvalidStructure, "unknown structure shape").
		WithContext("shape", string(shape))
}

// NewBox returns a structure using every pixel of a size x size square.
func NewBox(size int) (*Structure, error) {
	return newShape(size, func(dx, dy, r int) bool { return true })
}

// NewCircle returns a disk of diameter size.
func NewCircle(size int) (*Structure, error) {
	return newShape(size, func(dx, dy, r int) bool {
		// Distance from the center at most size/2.
		return 4*(dx*dx+dy*dy) <= (2*r+1)*(2*r+1)
	})
}

// NewDiamond returns the pixels within Manhattan distance size/2.
func NewDiamond(size int) (*Structure, error) {
	return newShape(size, func(dx, dy, r int) bool { return abs(dx)+abs(dy) <= r })
}

// NewCross returns the central row and column.
func NewCross(size int) (*Structure, error) {
	return newShape(size, func(dx, dy, r int) bool { return dx == 0 || dy == 0 })
}

func newShape(size int, in func(dx, dy, r int) bool) (*Structure, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	r := size / 2
	mask := make([]bool, size*size)
	for y := range size {
		for x := range size {
			mask[y*size+x] = in(x-r, y-r, r)
		}
	}
	return NewStructure(size, mask)
}

// NewStructure builds a structure from a row-major size x size mask. At
// least one pixel must be set.
func NewStructure(size int, mask []bool) (*Structure, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if len(mask) != size*size {
		return nil, errors.New(ErrCodeInvalidStructure, "structure mask must have size*size entries").
			WithContext("size", size).
			WithContext("mask_length", len(mask))
	}

	r := size / 2
	s := &Structure{size: size, mask: append([]bool(nil), mask...)}
	for i, set := range mask {
		if set {
			s.offsets = append(s.offsets, Offset{DX: i%size - r, DY: i/size - r})
		}
	}
	if len(s.offsets) == 0 {
		return nil, errors.New(ErrCodeInvalidStructure, "structure mask is empty").
			WithContext("size", size)
	}
	return s, nil
}

func checkSize(size int) error {
	if size < 1 || size%2 == 0 || size > MaxStructureSize {
		return errors.New(ErrCodeInvalidStructure, "structure size must be odd and in [1, 101]").
			WithContext("size", size)
	}
	return nil
}

// Size returns the side of the structure.
func (s *Structure) Size() int { return s.size }

// Radius returns size/2, the largest offset in any direction.
func (s *Structure) Radius() int { return s.size / 2 }

// Count returns the number of pixels in a neighborhood.
func (s *Structure) Count() int { return len(s.offsets) }

// Offsets returns the set pixels relative to the center, in row-major order.
// The slice must not be modified.
func (s *Structure) Offsets() []Offset { return s.offsets }

// Contains reports whether the pixel at offset (dx, dy) is set.
func (s *Structure) Contains(dx, dy int) bool {
	r := s.size / 2
	if abs(dx) > r || abs(dy) > r {
		return false
	}
	return s.mask[(dy+r)*s.size+dx+r]
}

// String draws the mask with one line per row.
func (s *Structure) String() string {
	var sb strings.Builder
	r := s.size / 2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if s.Contains(dx, dy) {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		if dy < r {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
