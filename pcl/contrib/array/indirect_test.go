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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingAllocator records how many times each object is released.
type countingAllocator[T any] struct {
	allocated int
	released  map[*T]int
}

func newCountingAllocator[T any]() *countingAllocator[T] {
	return &countingAllocator[T]{released: make(map[*T]int)}
}

func (c *countingAllocator[T]) Allocate() *T {
	c.allocated++
	return new(T)
}

func (c *countingAllocator[T]) Deallocate(p *T) {
	c.released[p]++
}

func (c *countingAllocator[T]) totalReleased() int {
	n := 0
	for _, v := range c.released {
		n += v
	}
	return n
}

func ptr[T any](v T) *T { return &v }

type resource struct {
	name     string
	disposed *int
}

func (r *resource) Dispose() { *r.disposed++ }

type deepValue struct {
	items []int
}

func (d deepValue) Clone() deepValue {
	return deepValue{items: append([]int(nil), d.items...)}
}

func TestIndirectDeleteKeepsLengthAndReleasesOnce(t *testing.T) {
	alloc := newCountingAllocator[int]()
	p1, p2, p3 := ptr(1), ptr(2), ptr(3)

	a := IndirectArrayOf(p1, nil, p2, nil, p3)
	a.SetAllocator(alloc)
	alias := a.Copy()

	assert.Equal(t, 3, a.Delete())

	assert.Equal(t, 5, a.Length())
	for i, p := range a.All() {
		assert.Nil(t, p, "slot %d", i)
	}

	// The alias shares the block, so it observes the nulled slots and has
	// nothing left to release.
	assert.True(t, alias.IsAliasOf(a))
	assert.Equal(t, 5, alias.NullCount())
	assert.Equal(t, 0, alias.Delete())

	assert.Equal(t, 1, alloc.released[p1])
	assert.Equal(t, 1, alloc.released[p2])
	assert.Equal(t, 1, alloc.released[p3])
	assert.Equal(t, 3, alloc.totalReleased())
}

func TestIndirectDeleteDuplicatePointers(t *testing.T) {
	alloc := newCountingAllocator[int]()
	p, q := ptr(1), ptr(2)

	a := IndirectArrayOf(p, q, p)
	a.SetAllocator(alloc)

	assert.Equal(t, 1, a.DeleteRange(0, 1))
	assert.Equal(t, []*int{nil, q, nil}, a.Pointers())
	assert.Equal(t, 1, alloc.released[p])

	assert.Equal(t, 1, a.Delete())
	assert.Equal(t, 2, alloc.totalReleased())
}

func TestIndirectDeletePointerAndPredicate(t *testing.T) {
	alloc := newCountingAllocator[int]()
	p1, p2, p3 := ptr(10), ptr(20), ptr(30)

	a := IndirectArrayOf(p1, p2, p3, p2)
	a.SetAllocator(alloc)

	assert.Equal(t, 1, a.DeletePointer(p2))
	assert.Equal(t, []*int{p1, nil, p3, nil}, a.Pointers())
	assert.Equal(t, 0, a.DeletePointer(p2))
	assert.Equal(t, 0, a.DeletePointer(nil))

	assert.Equal(t, 1, a.DeleteIf(func(v *int) bool { return *v > 15 }))
	assert.Equal(t, []*int{p1, nil, nil, nil}, a.Pointers())
	assert.Equal(t, 1, alloc.released[p3])
}

func TestIndirectDestroy(t *testing.T) {
	alloc := newCountingAllocator[int]()
	p1, p2, p3 := ptr(1), ptr(2), ptr(3)

	a := IndirectArrayOf(p1, p2, nil, p3)
	a.SetAllocator(alloc)
	alias := a.Copy()

	assert.Equal(t, 1, a.DestroyIf(func(v *int) bool { return *v == 2 }))
	assert.Equal(t, []*int{p1, nil, p3}, a.Pointers())
	assert.True(t, a.IsUnique())

	// The release went through the shared block before the removal took a
	// private copy.
	assert.Equal(t, []*int{p1, nil, nil, p3}, alias.Pointers())

	assert.Equal(t, 1, a.DestroyRange(0, 2))
	assert.Equal(t, []*int{p3}, a.Pointers())

	assert.Equal(t, 1, a.DestroyPointer(p3))
	assert.True(t, a.IsEmpty())

	assert.Equal(t, 3, alloc.totalReleased())
	for p, n := range alloc.released {
		assert.Equal(t, 1, n, "object %d released %d times", *p, n)
	}
}

func TestIndirectDestroyRangeDuplicateOutsideRange(t *testing.T) {
	alloc := newCountingAllocator[int]()
	p1, p2, p3 := ptr(1), ptr(2), ptr(3)

	a := IndirectArrayOf(p1, p2, p3, p1)
	a.SetAllocator(alloc)

	assert.Equal(t, 1, a.DestroyRange(0, 1))
	assert.Equal(t, []*int{p2, p3, nil}, a.Pointers())
	assert.Equal(t, 1, a.NullCount())
	assert.Equal(t, 1, alloc.released[p1])
	assert.Equal(t, 1, alloc.totalReleased())
}

func TestIndirectDestroyAll(t *testing.T) {
	alloc := newCountingAllocator[int]()
	a := IndirectArrayOf(ptr(1), ptr(2))
	a.SetAllocator(alloc)

	assert.Equal(t, 2, a.Destroy())
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 2, alloc.totalReleased())
}

func TestIndirectStructuralOperationsUniquify(t *testing.T) {
	p1, p2, p3 := ptr(1), ptr(2), ptr(3)
	a := IndirectArrayOf(p1, p2)
	alias := a.Copy()

	a.Insert(1, p3)
	a.Append(nil)
	a.Prepend(p3)

	assert.Equal(t, []*int{p3, p1, p3, p2, nil}, a.Pointers())
	assert.Equal(t, []*int{p1, p2}, alias.Pointers())

	assert.Equal(t, 2, a.RemovePointer(p3))
	assert.Equal(t, 1, a.Pack())
	assert.Equal(t, []*int{p1, p2}, a.Pointers())
	assert.False(t, a.IsAliasOf(alias))
}

func TestIndirectHeapAllocatorDisposes(t *testing.T) {
	disposed := 0
	r1 := &resource{name: "a", disposed: &disposed}
	r2 := &resource{name: "b", disposed: &disposed}

	a := IndirectArrayOf(r1, r2)
	assert.Equal(t, 2, a.Delete())
	assert.Equal(t, 2, disposed)
	assert.Equal(t, "", r1.name, "released objects are zeroed")
}

func TestIndirectQueries(t *testing.T) {
	p1, p2 := ptr(5), ptr(7)
	a := IndirectArrayOf(p1, nil, p2, p1)

	assert.True(t, a.Has(p2))
	assert.False(t, a.Has(ptr(5)))
	assert.Equal(t, 2, a.Find(p2))
	assert.Equal(t, -1, a.Find(ptr(0)))
	assert.Equal(t, 2, a.Count(p1))
	assert.Equal(t, 1, a.NullCount())
	assert.Equal(t, 2, a.FindIf(func(v *int) bool { return *v > 6 }))
	assert.Equal(t, 3, a.CountIf(func(v *int) bool { return *v > 0 }))
}

func TestIndirectSortNilFirst(t *testing.T) {
	p1, p2, p3 := ptr(3), ptr(1), ptr(2)
	a := IndirectArrayOf(p1, nil, p2, p3)
	a.Sort(func(x, y *int) int { return cmp.Compare(*x, *y) })
	assert.Equal(t, []*int{nil, p2, p3, p1}, a.Pointers())

	a.Reverse()
	assert.Equal(t, []*int{p1, p3, p2, nil}, a.Pointers())
}

func TestIndirectCloneAssign(t *testing.T) {
	alloc := newCountingAllocator[deepValue]()
	src := []deepValue{{items: []int{1, 2}}, {items: []int{3}}}

	a := NewIndirectArray[deepValue]()
	a.SetAllocator(alloc)
	a.CloneAssign(src)

	require.Equal(t, 2, a.Length())
	assert.Equal(t, 2, alloc.allocated)
	assert.Equal(t, []int{1, 2}, a.At(0).items)

	src[0].items[0] = 99
	assert.Equal(t, 1, a.At(0).items[0], "CloneAssign must deep-copy through Clone")

	b := NewIndirectArray[deepValue]()
	b.SetAllocator(alloc)
	b.Append(a.At(1), nil)
	b.CloneAssignArray(b)
	require.Equal(t, 2, b.Length())
	assert.NotSame(t, a.At(1), b.At(0))
	assert.Equal(t, []int{3}, b.At(0).items)
	assert.Nil(t, b.At(1))
}

func TestIndirectConstructors(t *testing.T) {
	a := NewIndirectArrayN[int](3, nil)
	assert.Equal(t, 3, a.Length())
	assert.Equal(t, 3, a.NullCount())

	p := ptr(4)
	b := NewIndirectArrayN(2, p)
	assert.Equal(t, 2, b.Count(p))

	b.Resize(4)
	assert.Equal(t, []*int{p, p, nil, nil}, b.Pointers())

	var zero IndirectArray[int]
	assert.True(t, zero.IsEmpty())
	assert.Equal(t, 0, zero.Delete())
}
