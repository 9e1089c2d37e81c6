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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinShapes(t *testing.T) {
	tests := []struct {
		shape Shape
		size  int
		count int
		draw  string
	}{
		{ShapeBox, 3, 9, "xxx\nxxx\nxxx"},
		{ShapeCircle, 3, 9, "xxx\nxxx\nxxx"},
		{ShapeCircle, 5, 21, ".xxx.\nxxxxx\nxxxxx\nxxxxx\n.xxx."},
		{ShapeDiamond, 5, 13, "..x..\n.xxx.\nxxxxx\n.xxx.\n..x.."},
		{ShapeCross, 5, 9, "..x..\n..x..\nxxxxx\n..x..\n..x.."},
		{ShapeBox, 1, 1, "x"},
	}
	for _, tt := range tests {
		se, err := NewShape(tt.shape, tt.size)
		require.NoError(t, err, "%s %d", tt.shape, tt.size)
		assert.Equal(t, tt.size, se.Size())
		assert.Equal(t, tt.size/2, se.Radius())
		assert.Equal(t, tt.count, se.Count(), "%s %d", tt.shape, tt.size)
		assert.Equal(t, tt.draw, se.String(), "%s %d", tt.shape, tt.size)
	}

	se, err := NewShape("CROSS", 3)
	require.NoError(t, err)
	assert.Equal(t, 5, se.Count())

	_, err = NewShape("hexagon", 3)
	assert.Equal(t, ErrCodeInvalidStructure, Code(err))
}

func TestStructureSizeValidation(t *testing.T) {
	for _, size := range []int{0, -3, 4, MaxStructureSize + 2} {
		_, err := NewBox(size)
		assert.Equal(t, ErrCodeInvalidStructure, Code(err), "size %d", size)
	}
	_, err := NewBox(MaxStructureSize)
	assert.NoError(t, err)
}

func TestNewStructure(t *testing.T) {
	mask := []bool{
		false, true, false,
		false, true, true,
		false, false, false,
	}
	se, err := NewStructure(3, mask)
	require.NoError(t, err)

	assert.Equal(t, []Offset{{0, -1}, {0, 0}, {1, 0}}, se.Offsets())
	assert.True(t, se.Contains(1, 0))
	assert.False(t, se.Contains(-1, 0))
	assert.False(t, se.Contains(2, 0))

	// The structure keeps its own copy of the mask.
	mask[0] = true
	assert.False(t, se.Contains(-1, -1))

	_, err = NewStructure(3, mask[:8])
	assert.Equal(t, ErrCodeInvalidStructure, Code(err))

	_, err = NewStructure(3, make([]bool, 9))
	assert.Equal(t, ErrCodeInvalidStructure, Code(err))
}
