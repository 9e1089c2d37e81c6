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

// Allocator creates and releases the objects referenced by indirect arrays.
type Allocator[T any] interface {
	// Allocate returns a new zero-valued object.
	Allocate() *T

	// Deallocate releases an object returned by Allocate (or any object the
	// array has been told it owns). It is called at most once per object by
	// the Delete and Destroy families.
	Deallocate(p *T)
}

// Disposer is implemented by objects that hold resources which must be
// released when the owning array deletes them.
type Disposer interface {
	Dispose()
}

// Cloner is implemented by values that need more than a shallow copy when an
// array clones them with CloneAssign.
type Cloner[T any] interface {
	Clone() T
}

// HeapAllocator allocates objects on the Go heap. Deallocate calls Dispose
// when *T implements Disposer and then zeroes the object, so that a stale
// pointer held elsewhere observes a zero value instead of live state.
type HeapAllocator[T any] struct{}

// Allocate returns new(T).
func (HeapAllocator[T]) Allocate() *T {
	return new(T)
}

// Deallocate disposes and zeroes *p.
func (HeapAllocator[T]) Deallocate(p *T) {
	if p == nil {
		return
	}
	if d, ok := any(p).(Disposer); ok {
		d.Dispose()
	}
	var zero T
	*p = zero
}

func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
