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
)

// block is a storage block shared by every Array aliasing it.
type block[T any] struct {
	items []T
	refs  int
}

// minCapacity is the smallest capacity allocated for a non-empty block.
const minCapacity = 8

// growCapacity returns the capacity to allocate for n elements when the
// current capacity is c. Growth is geometric so that Append is amortized O(1).
func growCapacity(n, c int) int {
	if n <= c {
		return c
	}
	newCap := max(c+c/2, minCapacity)
	if newCap < n {
		newCap = n
	}
	return newCap
}

// Array is a reference-counted dynamic array with copy-on-write semantics.
// The zero value is an empty array ready to use. An Array must not be copied
// by value once used; Copy returns a properly counted alias.
type Array[T any] struct {
	data *block[T]
}

// New returns an empty array.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// NewLength returns an array of n zero values.
func NewLength[T any](n int) *Array[T] {
	var zero T
	return NewFilled(n, zero)
}

// NewFilled returns an array of n copies of v.
func NewFilled[T any](n int, v T) *Array[T] {
	a := &Array[T]{}
	if n > 0 {
		a.data = &block[T]{items: make([]T, n, growCapacity(n, 0)), refs: 1}
		for i := range a.data.items {
			a.data.items[i] = v
		}
	}
	return a
}

// FromSlice returns an array holding a copy of s.
func FromSlice[T any](s []T) *Array[T] {
	a := &Array[T]{}
	if len(s) > 0 {
		a.data = &block[T]{items: make([]T, len(s), growCapacity(len(s), 0)), refs: 1}
		copy(a.data.items, s)
	}
	return a
}

// Copy returns an alias sharing this array's storage.
func (a *Array[T]) Copy() *Array[T] {
	if a.data != nil {
		a.data.refs++
	}
	return &Array[T]{data: a.data}
}

// Assign makes a share src's storage, releasing its previous block.
func (a *Array[T]) Assign(src *Array[T]) {
	if a == src || a.data == src.data {
		return
	}
	a.Release()
	if src.data != nil {
		src.data.refs++
	}
	a.data = src.data
}

// Transfer moves src's storage into a. src becomes empty.
func (a *Array[T]) Transfer(src *Array[T]) {
	if a == src {
		return
	}
	a.Release()
	a.data = src.data
	src.data = nil
}

// Release drops this array's reference to its storage and leaves it empty.
// Storage whose reference count reaches zero is left to the garbage collector.
func (a *Array[T]) Release() {
	if a.data == nil {
		return
	}
	a.data.refs--
	if a.data.refs == 0 {
		clear(a.data.items)
	}
	a.data = nil
}

// Length returns the number of elements.
func (a *Array[T]) Length() int {
	if a.data == nil {
		return 0
	}
	return len(a.data.items)
}

// Capacity returns the number of elements the storage can hold without
// reallocation.
func (a *Array[T]) Capacity() int {
	if a.data == nil {
		return 0
	}
	return cap(a.data.items)
}

// Available returns Capacity() - Length().
func (a *Array[T]) Available() int {
	return a.Capacity() - a.Length()
}

// IsEmpty returns true if the array has no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.Length() == 0
}

// IsUnique returns true if no other array shares this storage.
func (a *Array[T]) IsUnique() bool {
	return a.data == nil || a.data.refs == 1
}

// IsAliasOf returns true if both arrays share the same storage block.
func (a *Array[T]) IsAliasOf(b *Array[T]) bool {
	return a.data != nil && a.data == b.data
}

// RefCount returns the number of arrays sharing this storage.
func (a *Array[T]) RefCount() int {
	if a.data == nil {
		return 0
	}
	return a.data.refs
}

// EnsureUnique gives this array a private copy of its storage if the block
// is shared. Elements are copied by value, so for pointer element types the
// pointers are duplicated, not the objects.
func (a *Array[T]) EnsureUnique() {
	if a.data == nil || a.data.refs == 1 {
		return
	}
	items := make([]T, len(a.data.items), cap(a.data.items))
	copy(items, a.data.items)
	a.data.refs--
	a.data = &block[T]{items: items, refs: 1}
}

// At returns the element at index i. There is no bounds checking beyond the
// runtime's own: i must be in [0, Length()).
func (a *Array[T]) At(i int) T {
	return a.data.items[i]
}

// First returns the first element. The array must not be empty.
func (a *Array[T]) First() T {
	return a.data.items[0]
}

// Last returns the last element. The array must not be empty.
func (a *Array[T]) Last() T {
	return a.data.items[len(a.data.items)-1]
}

// Ref returns a pointer to element i for in-place modification.
func (a *Array[T]) Ref(i int) *T {
	a.EnsureUnique()
	return &a.data.items[i]
}

// Set replaces element i with v.
func (a *Array[T]) Set(i int, v T) {
	a.EnsureUnique()
	a.data.items[i] = v
}

// Slice returns the live elements. The slice aliases shared storage: it must
// be treated as read-only and is invalidated by any structural mutation.
func (a *Array[T]) Slice() []T {
	if a.data == nil {
		return nil
	}
	return a.data.items
}

// shared returns the storage slots without uniquification.
func (a *Array[T]) shared() []T {
	return a.Slice()
}

// unique returns a uniquely owned block, allocating one if needed.
func (a *Array[T]) unique() *block[T] {
	if a.data == nil {
		a.data = &block[T]{refs: 1}
	} else {
		a.EnsureUnique()
	}
	return a.data
}

// Reserve ensures room for at least n elements.
func (a *Array[T]) Reserve(n int) {
	b := a.unique()
	if n <= cap(b.items) {
		return
	}
	items := make([]T, len(b.items), n)
	copy(items, b.items)
	b.items = items
}

// Squeeze releases unused capacity.
func (a *Array[T]) Squeeze() {
	if a.Available() == 0 {
		return
	}
	b := a.unique()
	items := make([]T, len(b.items))
	copy(items, b.items)
	b.items = items
}

// Resize sets the length to n, appending zero values or truncating.
func (a *Array[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	l := a.Length()
	switch {
	case n < l:
		a.Remove(n, l-n)
	case n > l:
		var zero T
		a.InsertN(l, n-l, zero)
	}
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	if a.IsEmpty() {
		return
	}
	b := a.unique()
	for i := range b.items {
		b.items[i] = v
	}
}

// makeRoom opens a gap of n elements at index i and returns the storage.
func (a *Array[T]) makeRoom(i, n int) []T {
	b := a.unique()
	l := len(b.items)
	if i < 0 {
		i = 0
	} else if i > l {
		i = l
	}
	if c := growCapacity(l+n, cap(b.items)); c != cap(b.items) {
		items := make([]T, l+n, c)
		copy(items, b.items[:i])
		copy(items[i+n:], b.items[i:])
		b.items = items
		return b.items
	}
	b.items = b.items[:l+n]
	copy(b.items[i+n:], b.items[i:l])
	return b.items
}

// Insert inserts values before index i and returns the index of the first
// inserted element. i is clamped to [0, Length()]. values must not alias the
// array's own storage; use AppendArray or clone first.
func (a *Array[T]) Insert(i int, values ...T) int {
	i = min(max(i, 0), a.Length())
	if len(values) == 0 {
		return i
	}
	items := a.makeRoom(i, len(values))
	copy(items[i:], values)
	return i
}

// InsertN inserts n copies of v before index i.
func (a *Array[T]) InsertN(i, n int, v T) int {
	i = min(max(i, 0), a.Length())
	if n <= 0 {
		return i
	}
	items := a.makeRoom(i, n)
	for j := i; j < i+n; j++ {
		items[j] = v
	}
	return i
}

// Append adds values at the end.
func (a *Array[T]) Append(values ...T) {
	a.Insert(a.Length(), values...)
}

// AppendArray adds the elements of b at the end. b may alias a.
func (a *Array[T]) AppendArray(b *Array[T]) {
	a.Append(slices.Clone(b.Slice())...)
}

// Prepend inserts values at the beginning.
func (a *Array[T]) Prepend(values ...T) {
	a.Insert(0, values...)
}

// Remove removes n elements starting at index i. Out-of-range portions are
// ignored.
func (a *Array[T]) Remove(i, n int) {
	l := a.Length()
	if i < 0 {
		n += i
		i = 0
	}
	if n <= 0 || i >= l {
		return
	}
	n = min(n, l-i)
	b := a.unique()
	b.items = slices.Delete(b.items, i, i+n)
}

// RemoveFirst removes the first n elements.
func (a *Array[T]) RemoveFirst(n int) {
	a.Remove(0, n)
}

// RemoveLast removes the last n elements.
func (a *Array[T]) RemoveLast(n int) {
	n = min(n, a.Length())
	a.Remove(a.Length()-n, n)
}

// RemoveIf removes every element for which pred returns true and returns the
// number of removed elements.
func (a *Array[T]) RemoveIf(pred func(T) bool) int {
	if !slices.ContainsFunc(a.Slice(), pred) {
		return 0
	}
	b := a.unique()
	l := len(b.items)
	b.items = slices.DeleteFunc(b.items, pred)
	return l - len(b.items)
}

// Replace replaces the n elements starting at i with values.
func (a *Array[T]) Replace(i, n int, values ...T) {
	l := a.Length()
	i = min(max(i, 0), l)
	n = min(max(n, 0), l-i)
	if n == 0 && len(values) == 0 {
		return
	}
	b := a.unique()
	b.items = slices.Replace(b.items, i, i+n, values...)
}

// Clear drops this array's reference to the shared storage and leaves the
// array empty with a fresh private block.
func (a *Array[T]) Clear() {
	if a.data == nil {
		return
	}
	a.Release()
	a.data = &block[T]{refs: 1}
}

// Sort sorts the elements with cmp, which follows the slices.SortFunc
// convention.
func (a *Array[T]) Sort(cmp func(x, y T) int) {
	if a.Length() < 2 {
		return
	}
	b := a.unique()
	slices.SortStableFunc(b.items, cmp)
}

// Reverse reverses the element order.
func (a *Array[T]) Reverse() {
	if a.Length() < 2 {
		return
	}
	b := a.unique()
	slices.Reverse(b.items)
}

// All returns an iterator over index/value pairs.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return slices.All(a.Slice())
}

// Values returns an iterator over the elements.
func (a *Array[T]) Values() iter.Seq[T] {
	return slices.Values(a.Slice())
}

// Backward returns an iterator over index/value pairs from last to first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(a.Slice())
}

// Equal reports whether a and b hold equal elements according to eq.
func Equal[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	if a.IsAliasOf(b) {
		return true
	}
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}
