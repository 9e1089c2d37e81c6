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

package array

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayZeroValue(t *testing.T) {
	var a Array[int]
	assert.Equal(t, 0, a.Length())
	assert.Equal(t, 0, a.Capacity())
	assert.True(t, a.IsEmpty())
	assert.True(t, a.IsUnique())
	assert.Nil(t, a.Slice())

	a.Append(1, 2)
	assert.Equal(t, []int{1, 2}, a.Slice())
	assert.Equal(t, 1, a.RefCount())
}

func TestArrayConstructors(t *testing.T) {
	assert.Equal(t, []int{0, 0, 0}, NewLength[int](3).Slice())
	assert.Equal(t, []string{"x", "x"}, NewFilled(2, "x").Slice())
	assert.True(t, NewFilled(0, "x").IsEmpty())

	src := []int{1, 2, 3}
	a := FromSlice(src)
	src[0] = 99
	assert.Equal(t, 1, a.At(0), "FromSlice must copy its input")
}

func TestArrayCopyOnWrite(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := a.Copy()

	require.True(t, b.IsAliasOf(a))
	assert.Equal(t, 2, a.RefCount())
	assert.False(t, a.IsUnique())
	assert.True(t, Equal(a, b, func(x, y int) bool { return x == y }))

	b.Append(4)

	assert.Equal(t, []int{1, 2, 3}, a.Slice())
	assert.Equal(t, []int{1, 2, 3, 4}, b.Slice())
	assert.False(t, b.IsAliasOf(a))
	assert.True(t, a.IsUnique())
	assert.True(t, b.IsUnique())
}

func TestArrayMutationsNeverLeakIntoAliases(t *testing.T) {
	mutations := map[string]func(a *Array[int]){
		"Insert":      func(a *Array[int]) { a.Insert(1, 9) },
		"InsertN":     func(a *Array[int]) { a.InsertN(0, 3, 7) },
		"Append":      func(a *Array[int]) { a.Append(7) },
		"AppendArray": func(a *Array[int]) { a.AppendArray(a) },
		"Prepend":     func(a *Array[int]) { a.Prepend(0) },
		"Remove":      func(a *Array[int]) { a.Remove(0, 1) },
		"RemoveFirst": func(a *Array[int]) { a.RemoveFirst(2) },
		"RemoveLast":  func(a *Array[int]) { a.RemoveLast(2) },
		"RemoveIf":    func(a *Array[int]) { a.RemoveIf(func(v int) bool { return v%2 == 0 }) },
		"Replace":     func(a *Array[int]) { a.Replace(1, 2, 8) },
		"Set":         func(a *Array[int]) { a.Set(0, 42) },
		"Ref":         func(a *Array[int]) { *a.Ref(0) = 42 },
		"Sort":        func(a *Array[int]) { a.Sort(cmp.Compare[int]) },
		"Reverse":     func(a *Array[int]) { a.Reverse() },
		"Fill":        func(a *Array[int]) { a.Fill(0) },
		"Clear":       func(a *Array[int]) { a.Clear() },
		"Resize":      func(a *Array[int]) { a.Resize(2) },
		"Reserve":     func(a *Array[int]) { a.Reserve(100) },
		"Squeeze":     func(a *Array[int]) { a.Squeeze() },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			a := FromSlice([]int{5, 3, 1, 4})
			alias := a.Copy()

			mutate(a)

			assert.Equal(t, []int{5, 3, 1, 4}, alias.Slice())
			assert.True(t, a.IsUnique())
			assert.True(t, alias.IsUnique())
		})
	}
}

func TestArrayInsertRemove(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})

	assert.Equal(t, 1, a.Insert(1, 10, 11))
	assert.Equal(t, []int{1, 10, 11, 2, 3}, a.Slice())

	// Positions are clamped.
	assert.Equal(t, 0, a.Insert(-5, 0))
	assert.Equal(t, 6, a.Insert(100, 4))
	assert.Equal(t, []int{0, 1, 10, 11, 2, 3, 4}, a.Slice())

	a.Remove(2, 2)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, a.Slice())

	a.Remove(3, 100)
	assert.Equal(t, []int{0, 1, 2}, a.Slice())

	a.Remove(-1, 2)
	assert.Equal(t, []int{1, 2}, a.Slice())

	a.Remove(5, 1)
	assert.Equal(t, []int{1, 2}, a.Slice())

	a.Replace(0, 1, 7, 8, 9)
	assert.Equal(t, []int{7, 8, 9, 2}, a.Slice())

	assert.Equal(t, 2, a.RemoveIf(func(v int) bool { return v > 8 || v < 3 }))
	assert.Equal(t, []int{7, 8}, a.Slice())
	assert.Equal(t, 0, a.RemoveIf(func(v int) bool { return v > 100 }))

	assert.Equal(t, 7, a.First())
	assert.Equal(t, 8, a.Last())
}

func TestArrayGrowth(t *testing.T) {
	var a Array[int]
	reallocations := 0
	lastCap := a.Capacity()
	for i := range 1000 {
		a.Append(i)
		if a.Capacity() != lastCap {
			reallocations++
			lastCap = a.Capacity()
		}
	}
	assert.Equal(t, 1000, a.Length())
	assert.GreaterOrEqual(t, a.Capacity(), a.Length())
	assert.Less(t, reallocations, 20, "appends must grow geometrically")

	a.Squeeze()
	assert.Equal(t, a.Length(), a.Capacity())
	assert.Equal(t, 0, a.Available())

	a.Reserve(5000)
	assert.GreaterOrEqual(t, a.Capacity(), 5000)
	assert.Equal(t, 1000, a.Length())
}

func TestArrayResize(t *testing.T) {
	a := FromSlice([]int{1, 2})
	a.Resize(4)
	assert.Equal(t, []int{1, 2, 0, 0}, a.Slice())
	a.Resize(1)
	assert.Equal(t, []int{1}, a.Slice())
	a.Resize(-1)
	assert.True(t, a.IsEmpty())
}

func TestArrayClear(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := a.Copy()

	a.Clear()

	assert.True(t, a.IsEmpty())
	assert.True(t, a.IsUnique())
	assert.Equal(t, []int{1, 2, 3}, b.Slice())
	assert.Equal(t, 1, b.RefCount())
}

func TestArrayAssignTransferRelease(t *testing.T) {
	a := FromSlice([]int{1, 2})
	b := FromSlice([]int{3})

	b.Assign(a)
	assert.True(t, b.IsAliasOf(a))
	assert.Equal(t, 2, a.RefCount())

	c := New[int]()
	c.Transfer(b)
	assert.True(t, b.IsEmpty())
	assert.True(t, c.IsAliasOf(a))
	assert.Equal(t, 2, a.RefCount())

	c.Release()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 1, a.RefCount())
	assert.True(t, a.IsUnique())

	a.Assign(a)
	assert.Equal(t, 1, a.RefCount())
}

func TestArrayIterators(t *testing.T) {
	a := FromSlice([]string{"a", "b", "c"})

	var forward []string
	for i, v := range a.All() {
		assert.Equal(t, a.At(i), v)
		forward = append(forward, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, forward)

	var backward []string
	for _, v := range a.Backward() {
		backward = append(backward, v)
	}
	assert.Equal(t, []string{"c", "b", "a"}, backward)

	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(a.Values()))
}

func TestArraySortStable(t *testing.T) {
	type pair struct{ key, seq int }
	a := FromSlice([]pair{{2, 0}, {1, 1}, {2, 2}, {1, 3}})
	a.Sort(func(x, y pair) int { return cmp.Compare(x.key, y.key) })
	assert.Equal(t, []pair{{1, 1}, {1, 3}, {2, 0}, {2, 2}}, a.Slice())
}
