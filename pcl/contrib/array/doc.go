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

// Package array provides copy-on-write, reference-counted dynamic arrays.
//
// Three containers share one storage discipline:
//
//   - Array[T] is a generic dynamic array whose storage block may be shared by
//     several Array values until one of them mutates it.
//   - IndirectArray[T] stores pointers to heap objects; a slot may be nil.
//     Structural operations (Insert, Remove, ...) manipulate pointers only,
//     while the Delete and Destroy families release the pointed objects.
//   - ReferenceArray[T] stores pointers that are never nil.
//
// # Copy-on-write
//
// Copy returns an alias that shares the receiver's storage block. Every
// structural mutation calls EnsureUnique first: if the block is shared, the
// mutating array takes a private copy of the slots and the other aliases keep
// observing the original contents. The one deliberate exception is the
// IndirectArray Delete family, which writes nil directly into the shared
// block so that every alias sees the released slots and no object is ever
// released twice.
//
// # Concurrency
//
// None of the containers are synchronized and the reference count is a plain
// integer. A set of aliases must be used by one goroutine at a time; callers
// sharing aliases between goroutines must lock externally.
//
// # Usage Example
//
//	a := array.FromSlice([]int{3, 1, 2})
//	b := a.Copy()          // shares storage
//	b.Append(4)            // b takes a private copy first
//	fmt.Println(a.Slice()) // [3 1 2]
//	fmt.Println(b.Slice()) // [3 1 2 4]
package array
