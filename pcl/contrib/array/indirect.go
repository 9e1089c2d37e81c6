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
	"iter"
	"slices"

	"github.com/samber/lo"
)

// IndirectArray is a copy-on-write array of pointers to objects of type T.
// Slots may be nil.
//
// Copying an IndirectArray (Copy, Assign) duplicates pointers, never objects.
// Structural operations manipulate pointers only; the Delete and Destroy
// families additionally release the pointed objects through the array's
// Allocator, and CloneAssign is the only operation that allocates copies of
// objects.
//
// The zero value is an empty array using HeapAllocator.
type IndirectArray[T any] struct {
	array Array[*T]
	alloc Allocator[T]
}

// NewIndirectArray returns an empty indirect array.
func NewIndirectArray[T any]() *IndirectArray[T] {
	return &IndirectArray[T]{}
}

// NewIndirectArrayN returns an array of n slots, each holding p (which may be nil).
func NewIndirectArrayN[T any](n int, p *T) *IndirectArray[T] {
	return &IndirectArray[T]{array: *NewFilled(n, p)}
}

// IndirectArrayOf returns an array holding the given pointers.
func IndirectArrayOf[T any](ptrs ...*T) *IndirectArray[T] {
	return &IndirectArray[T]{array: *FromSlice(ptrs)}
}

// SetAllocator sets the allocator used to release and clone objects.
// A nil allocator selects HeapAllocator.
func (a *IndirectArray[T]) SetAllocator(alloc Allocator[T]) {
	a.alloc = alloc
}

func (a *IndirectArray[T]) allocator() Allocator[T] {
	if a.alloc == nil {
		return HeapAllocator[T]{}
	}
	return a.alloc
}

// Copy returns an alias sharing this array's pointer storage and allocator.
func (a *IndirectArray[T]) Copy() *IndirectArray[T] {
	return &IndirectArray[T]{array: *a.array.Copy(), alloc: a.alloc}
}

// Assign makes a share src's pointer storage.
func (a *IndirectArray[T]) Assign(src *IndirectArray[T]) {
	a.array.Assign(&src.array)
}

// Transfer moves src's pointer storage into a. src becomes empty.
func (a *IndirectArray[T]) Transfer(src *IndirectArray[T]) {
	a.array.Transfer(&src.array)
}

// Release drops this array's reference to its pointer storage. Pointed
// objects are not released.
func (a *IndirectArray[T]) Release() { a.array.Release() }

// Length returns the number of slots, including nil slots.
func (a *IndirectArray[T]) Length() int { return a.array.Length() }

// Capacity returns the slot capacity of the storage.
func (a *IndirectArray[T]) Capacity() int { return a.array.Capacity() }

// IsEmpty returns true if there are no slots.
func (a *IndirectArray[T]) IsEmpty() bool { return a.array.IsEmpty() }

// IsUnique returns true if no other array shares this storage.
func (a *IndirectArray[T]) IsUnique() bool { return a.array.IsUnique() }

// IsAliasOf returns true if both arrays share the same storage.
func (a *IndirectArray[T]) IsAliasOf(b *IndirectArray[T]) bool {
	return a.array.IsAliasOf(&b.array)
}

// RefCount returns the number of arrays sharing this storage.
func (a *IndirectArray[T]) RefCount() int { return a.array.RefCount() }

// EnsureUnique gives this array a private copy of its pointer slots.
func (a *IndirectArray[T]) EnsureUnique() { a.array.EnsureUnique() }

// At returns the pointer in slot i (unchecked).
func (a *IndirectArray[T]) At(i int) *T { return a.array.At(i) }

// First returns the pointer in the first slot.
func (a *IndirectArray[T]) First() *T { return a.array.First() }

// Last returns the pointer in the last slot.
func (a *IndirectArray[T]) Last() *T { return a.array.Last() }

// Set stores p in slot i.
func (a *IndirectArray[T]) Set(i int, p *T) { a.array.Set(i, p) }

// Pointers returns the slots. The slice aliases shared storage and must be
// treated as read-only.
func (a *IndirectArray[T]) Pointers() []*T { return a.array.Slice() }

// Reserve ensures room for at least n slots.
func (a *IndirectArray[T]) Reserve(n int) { a.array.Reserve(n) }

// Squeeze releases unused slot capacity.
func (a *IndirectArray[T]) Squeeze() { a.array.Squeeze() }

// Resize sets the number of slots to n. New slots are nil.
func (a *IndirectArray[T]) Resize(n int) { a.array.Resize(n) }

// Append adds pointers at the end.
func (a *IndirectArray[T]) Append(ptrs ...*T) { a.array.Append(ptrs...) }

// AppendArray adds the slots of b at the end. b may alias a.
func (a *IndirectArray[T]) AppendArray(b *IndirectArray[T]) {
	a.array.AppendArray(&b.array)
}

// Prepend inserts pointers at the beginning.
func (a *IndirectArray[T]) Prepend(ptrs ...*T) { a.array.Prepend(ptrs...) }

// Insert inserts pointers before slot i and returns the index of the first
// inserted slot.
func (a *IndirectArray[T]) Insert(i int, ptrs ...*T) int {
	return a.array.Insert(i, ptrs...)
}

// InsertN inserts n copies of p before slot i.
func (a *IndirectArray[T]) InsertN(i, n int, p *T) int {
	return a.array.InsertN(i, n, p)
}

// Remove removes n slots starting at i. Pointed objects are not released.
func (a *IndirectArray[T]) Remove(i, n int) { a.array.Remove(i, n) }

// RemovePointer removes every slot holding p and returns how many were removed.
func (a *IndirectArray[T]) RemovePointer(p *T) int {
	return a.array.RemoveIf(func(q *T) bool { return q == p })
}

// RemoveIf removes every non-nil slot whose object satisfies pred.
func (a *IndirectArray[T]) RemoveIf(pred func(*T) bool) int {
	return a.array.RemoveIf(func(q *T) bool { return q != nil && pred(q) })
}

// Replace replaces the n slots starting at i with ptrs.
func (a *IndirectArray[T]) Replace(i, n int, ptrs ...*T) {
	a.array.Replace(i, n, ptrs...)
}

// Clear drops this array's reference to the shared slots and leaves it
// empty. Pointed objects are not released.
func (a *IndirectArray[T]) Clear() { a.array.Clear() }

// Pack removes all nil slots and returns how many were removed.
func (a *IndirectArray[T]) Pack() int {
	return a.array.RemoveIf(func(q *T) bool { return q == nil })
}

// Sort orders the slots by the pointed objects using cmp. Nil slots sort
// first; cmp is only called with non-nil pointers.
func (a *IndirectArray[T]) Sort(cmp func(x, y *T) int) {
	a.array.Sort(func(x, y *T) int {
		switch {
		case x == nil && y == nil:
			return 0
		case x == nil:
			return -1
		case y == nil:
			return 1
		}
		return cmp(x, y)
	})
}

// Reverse reverses the slot order.
func (a *IndirectArray[T]) Reverse() { a.array.Reverse() }

// Has returns true if some slot holds p.
func (a *IndirectArray[T]) Has(p *T) bool {
	return lo.Contains(a.Pointers(), p)
}

// Find returns the index of the first slot holding p, or -1.
func (a *IndirectArray[T]) Find(p *T) int {
	return lo.IndexOf(a.Pointers(), p)
}

// FindIf returns the index of the first non-nil slot whose object satisfies
// pred, or -1.
func (a *IndirectArray[T]) FindIf(pred func(*T) bool) int {
	return slices.IndexFunc(a.Pointers(), func(q *T) bool { return q != nil && pred(q) })
}

// Count returns the number of slots holding p.
func (a *IndirectArray[T]) Count(p *T) int {
	return lo.Count(a.Pointers(), p)
}

// CountIf returns the number of non-nil slots whose object satisfies pred.
func (a *IndirectArray[T]) CountIf(pred func(*T) bool) int {
	return lo.CountBy(a.Pointers(), func(q *T) bool { return q != nil && pred(q) })
}

// NullCount returns the number of nil slots.
func (a *IndirectArray[T]) NullCount() int {
	return lo.Count(a.Pointers(), nil)
}

// deleteMatching releases every distinct non-nil object in slots [i, j) that
// satisfies match, then nulls every slot of the storage holding a released
// pointer. It writes into the storage as-is, without uniquification, so all
// aliases of a shared block observe the nulled slots. It returns the number
// of released objects and the indices of the nulled slots.
func (a *IndirectArray[T]) deleteMatching(i, j int, match func(*T) bool) (int, []int) {
	slots := a.array.shared()
	i = max(i, 0)
	j = min(j, len(slots))
	if i >= j {
		return 0, nil
	}

	alloc := a.allocator()
	var released map[*T]struct{}
	for k := i; k < j; k++ {
		p := slots[k]
		if p == nil {
			continue
		}
		if _, done := released[p]; done {
			continue
		}
		if match != nil && !match(p) {
			continue
		}
		if released == nil {
			released = make(map[*T]struct{})
		}
		released[p] = struct{}{}
		alloc.Deallocate(p)
	}
	if len(released) == 0 {
		return 0, nil
	}

	var nulled []int
	for k, p := range slots {
		if p == nil {
			continue
		}
		if _, ok := released[p]; ok {
			slots[k] = nil
			nulled = append(nulled, k)
		}
	}
	return len(released), nulled
}

// Delete releases every pointed object and nulls all slots. The length is
// unchanged.
//
// Delete does not call EnsureUnique: when the storage is shared, every alias
// sees its slots nulled. This is what prevents a second alias from releasing
// the same objects again, and it also means a pointer obtained earlier through
// any alias must not be dereferenced after Delete. It returns the number of
// released objects.
func (a *IndirectArray[T]) Delete() int {
	n, _ := a.deleteMatching(0, a.Length(), nil)
	return n
}

// DeleteRange releases the objects in slots [i, i+n) and nulls their slots
// (and any other slot holding the same pointers), without uniquification.
func (a *IndirectArray[T]) DeleteRange(i, n int) int {
	released, _ := a.deleteMatching(i, i+n, nil)
	return released
}

// DeletePointer releases p if some slot holds it and nulls every slot
// holding it, without uniquification.
func (a *IndirectArray[T]) DeletePointer(p *T) int {
	if p == nil {
		return 0
	}
	n, _ := a.deleteMatching(0, a.Length(), func(q *T) bool { return q == p })
	return n
}

// DeleteIf releases every object satisfying pred and nulls its slots,
// without uniquification.
func (a *IndirectArray[T]) DeleteIf(pred func(*T) bool) int {
	n, _ := a.deleteMatching(0, a.Length(), pred)
	return n
}

// removeIndices removes the slots at the given ascending indices.
func (a *IndirectArray[T]) removeIndices(indices []int) {
	if len(indices) == 0 {
		return
	}
	b := a.array.unique()
	kept := b.items[:0]
	next := 0
	for k, p := range b.items {
		if next < len(indices) && indices[next] == k {
			next++
			continue
		}
		kept = append(kept, p)
	}
	clear(b.items[len(kept):])
	b.items = kept
}

// Destroy releases every pointed object and removes all slots.
func (a *IndirectArray[T]) Destroy() int {
	n := a.Delete()
	a.Clear()
	return n
}

// DestroyRange releases the objects in slots [i, i+n) and removes those slots.
// Slots outside the range holding one of the released pointers are set to
// nil but kept, as with DeleteRange.
func (a *IndirectArray[T]) DestroyRange(i, n int) int {
	released := a.DeleteRange(i, n)
	a.Remove(i, n)
	return released
}

// DestroyPointer releases p and removes every slot holding it.
func (a *IndirectArray[T]) DestroyPointer(p *T) int {
	if p == nil {
		return 0
	}
	n, nulled := a.deleteMatching(0, a.Length(), func(q *T) bool { return q == p })
	a.removeIndices(nulled)
	return n
}

// DestroyIf releases every object satisfying pred and removes its slots.
func (a *IndirectArray[T]) DestroyIf(pred func(*T) bool) int {
	n, nulled := a.deleteMatching(0, a.Length(), pred)
	a.removeIndices(nulled)
	return n
}

// CloneAssign replaces the contents of a with pointers to newly allocated
// copies of values. Objects previously referenced by a are not released.
//
// This is the only bulk operation that duplicates objects: Assign and Copy
// share pointers, CloneAssign allocates len(values) new objects.
func (a *IndirectArray[T]) CloneAssign(values []T) {
	alloc := a.allocator()
	ptrs := make([]*T, len(values))
	for i, v := range values {
		p := alloc.Allocate()
		*p = cloneValue(v)
		ptrs[i] = p
	}
	a.array.Release()
	a.array = *FromSlice(ptrs)
}

// CloneAssignArray replaces the contents of a with pointers to newly
// allocated copies of the objects referenced by src. Nil slots stay nil.
// src may alias a.
func (a *IndirectArray[T]) CloneAssignArray(src *IndirectArray[T]) {
	alloc := a.allocator()
	ptrs := make([]*T, src.Length())
	for i, q := range src.Pointers() {
		if q == nil {
			continue
		}
		p := alloc.Allocate()
		*p = cloneValue(*q)
		ptrs[i] = p
	}
	a.array.Release()
	a.array = *FromSlice(ptrs)
}

// All returns an iterator over slot index/pointer pairs, nil slots included.
func (a *IndirectArray[T]) All() iter.Seq2[int, *T] { return a.array.All() }

// Values returns an iterator over the slot pointers, nil slots included.
func (a *IndirectArray[T]) Values() iter.Seq[*T] { return a.array.Values() }

// Backward returns an iterator over slot index/pointer pairs from last to first.
func (a *IndirectArray[T]) Backward() iter.Seq2[int, *T] { return a.array.Backward() }
