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

	"github.com/samber/lo"
)

// ReferenceArray is a copy-on-write array of pointers that are never nil, so
// callers can dereference every element without checking.
//
// Every entry point that stores pointers silently ignores nil: constructors,
// Append, Prepend, Insert, InsertN and Replace drop nil pointers, and Set with
// a nil pointer leaves the slot untouched. Operations that report a count
// report the pointers actually stored.
//
// A reference array has no Delete family, since nulling a slot would break
// the invariant. Destroy releases objects and removes their slots; it first
// takes a private copy of shared storage, so aliases keep their (now released)
// pointers rather than nil slots.
type ReferenceArray[T any] struct {
	ia IndirectArray[T]
}

func nonNil[T any](ptrs []*T) []*T {
	if !lo.Contains(ptrs, nil) {
		return ptrs
	}
	return lo.Filter(ptrs, func(p *T, _ int) bool { return p != nil })
}

// NewReferenceArray returns an empty reference array.
func NewReferenceArray[T any]() *ReferenceArray[T] {
	return &ReferenceArray[T]{}
}

// NewReferenceArrayN returns an array of n slots, each holding p. A nil p
// yields an empty array.
func NewReferenceArrayN[T any](n int, p *T) *ReferenceArray[T] {
	if p == nil {
		return &ReferenceArray[T]{}
	}
	return &ReferenceArray[T]{ia: *NewIndirectArrayN(n, p)}
}

// ReferenceArrayOf returns an array holding the non-nil pointers among ptrs.
func ReferenceArrayOf[T any](ptrs ...*T) *ReferenceArray[T] {
	return &ReferenceArray[T]{ia: *IndirectArrayOf(nonNil(ptrs)...)}
}

// SetAllocator sets the allocator used to release and clone objects.
func (a *ReferenceArray[T]) SetAllocator(alloc Allocator[T]) { a.ia.SetAllocator(alloc) }

// Copy returns an alias sharing this array's storage.
func (a *ReferenceArray[T]) Copy() *ReferenceArray[T] {
	return &ReferenceArray[T]{ia: *a.ia.Copy()}
}

// Assign makes a share src's storage.
func (a *ReferenceArray[T]) Assign(src *ReferenceArray[T]) { a.ia.Assign(&src.ia) }

// Transfer moves src's storage into a. src becomes empty.
func (a *ReferenceArray[T]) Transfer(src *ReferenceArray[T]) { a.ia.Transfer(&src.ia) }

// Release drops this array's reference to its storage.
func (a *ReferenceArray[T]) Release() { a.ia.Release() }

// Length returns the number of elements.
func (a *ReferenceArray[T]) Length() int { return a.ia.Length() }

// Capacity returns the slot capacity of the storage.
func (a *ReferenceArray[T]) Capacity() int { return a.ia.Capacity() }

// IsEmpty returns true if there are no elements.
func (a *ReferenceArray[T]) IsEmpty() bool { return a.ia.IsEmpty() }

// IsUnique returns true if no other array shares this storage.
func (a *ReferenceArray[T]) IsUnique() bool { return a.ia.IsUnique() }

// IsAliasOf returns true if both arrays share the same storage.
func (a *ReferenceArray[T]) IsAliasOf(b *ReferenceArray[T]) bool { return a.ia.IsAliasOf(&b.ia) }

// EnsureUnique gives this array a private copy of its slots.
func (a *ReferenceArray[T]) EnsureUnique() { a.ia.EnsureUnique() }

// At returns element i (unchecked). The result is never nil.
func (a *ReferenceArray[T]) At(i int) *T { return a.ia.At(i) }

// First returns the first element.
func (a *ReferenceArray[T]) First() *T { return a.ia.First() }

// Last returns the last element.
func (a *ReferenceArray[T]) Last() *T { return a.ia.Last() }

// Set stores p in slot i. A nil p is ignored.
func (a *ReferenceArray[T]) Set(i int, p *T) {
	if p == nil {
		return
	}
	a.ia.Set(i, p)
}

// Pointers returns the elements. The slice aliases shared storage and must be
// treated as read-only.
func (a *ReferenceArray[T]) Pointers() []*T { return a.ia.Pointers() }

// Reserve ensures room for at least n elements.
func (a *ReferenceArray[T]) Reserve(n int) { a.ia.Reserve(n) }

// Squeeze releases unused capacity.
func (a *ReferenceArray[T]) Squeeze() { a.ia.Squeeze() }

// Append adds the non-nil pointers among ptrs at the end and returns how
// many were stored.
func (a *ReferenceArray[T]) Append(ptrs ...*T) int {
	ptrs = nonNil(ptrs)
	a.ia.Append(ptrs...)
	return len(ptrs)
}

// AppendArray adds the elements of b at the end.
func (a *ReferenceArray[T]) AppendArray(b *ReferenceArray[T]) { a.ia.AppendArray(&b.ia) }

// Prepend inserts the non-nil pointers among ptrs at the beginning.
func (a *ReferenceArray[T]) Prepend(ptrs ...*T) int {
	ptrs = nonNil(ptrs)
	a.ia.Prepend(ptrs...)
	return len(ptrs)
}

// Insert inserts the non-nil pointers among ptrs before index i and returns
// the index of the first inserted element.
func (a *ReferenceArray[T]) Insert(i int, ptrs ...*T) int {
	return a.ia.Insert(i, nonNil(ptrs)...)
}

// InsertN inserts n copies of p before index i. A nil p inserts nothing.
func (a *ReferenceArray[T]) InsertN(i, n int, p *T) int {
	if p == nil {
		n = 0
	}
	return a.ia.InsertN(i, n, p)
}

// Remove removes n elements starting at i. Objects are not released.
func (a *ReferenceArray[T]) Remove(i, n int) { a.ia.Remove(i, n) }

// RemovePointer removes every element equal to p.
func (a *ReferenceArray[T]) RemovePointer(p *T) int { return a.ia.RemovePointer(p) }

// RemoveIf removes every element satisfying pred.
func (a *ReferenceArray[T]) RemoveIf(pred func(*T) bool) int { return a.ia.RemoveIf(pred) }

// Replace replaces the n elements starting at i with the non-nil pointers
// among ptrs.
func (a *ReferenceArray[T]) Replace(i, n int, ptrs ...*T) {
	a.ia.Replace(i, n, nonNil(ptrs)...)
}

// Clear leaves the array empty. Objects are not released.
func (a *ReferenceArray[T]) Clear() { a.ia.Clear() }

// Sort orders the elements by the pointed objects using cmp.
func (a *ReferenceArray[T]) Sort(cmp func(x, y *T) int) { a.ia.Sort(cmp) }

// Reverse reverses the element order.
func (a *ReferenceArray[T]) Reverse() { a.ia.Reverse() }

// Has returns true if some element is p.
func (a *ReferenceArray[T]) Has(p *T) bool { return a.ia.Has(p) }

// Find returns the index of the first element equal to p, or -1.
func (a *ReferenceArray[T]) Find(p *T) int { return a.ia.Find(p) }

// FindIf returns the index of the first element satisfying pred, or -1.
func (a *ReferenceArray[T]) FindIf(pred func(*T) bool) int { return a.ia.FindIf(pred) }

// Count returns the number of elements equal to p.
func (a *ReferenceArray[T]) Count(p *T) int { return a.ia.Count(p) }

// CountIf returns the number of elements satisfying pred.
func (a *ReferenceArray[T]) CountIf(pred func(*T) bool) int { return a.ia.CountIf(pred) }

// Destroy releases every object and removes all elements.
func (a *ReferenceArray[T]) Destroy() int {
	a.ia.EnsureUnique()
	return a.ia.Destroy()
}

// DestroyRange releases the objects of elements [i, i+n) and removes them.
// Slots outside the range holding one of the released pointers are removed
// as well.
func (a *ReferenceArray[T]) DestroyRange(i, n int) int {
	a.ia.EnsureUnique()
	released, nulled := a.ia.deleteMatching(i, i+n, nil)
	a.ia.removeIndices(nulled)
	return released
}

// DestroyPointer releases p and removes every element equal to it.
func (a *ReferenceArray[T]) DestroyPointer(p *T) int {
	a.ia.EnsureUnique()
	return a.ia.DestroyPointer(p)
}

// DestroyIf releases every object satisfying pred and removes its elements.
func (a *ReferenceArray[T]) DestroyIf(pred func(*T) bool) int {
	a.ia.EnsureUnique()
	return a.ia.DestroyIf(pred)
}

// CloneAssign replaces the contents with pointers to newly allocated copies
// of values.
func (a *ReferenceArray[T]) CloneAssign(values []T) { a.ia.CloneAssign(values) }

// All returns an iterator over index/element pairs.
func (a *ReferenceArray[T]) All() iter.Seq2[int, *T] { return a.ia.All() }

// Values returns an iterator over the elements.
func (a *ReferenceArray[T]) Values() iter.Seq[*T] { return a.ia.Values() }

// Backward returns an iterator over index/element pairs from last to first.
func (a *ReferenceArray[T]) Backward() iter.Seq2[int, *T] { return a.ia.Backward() }
