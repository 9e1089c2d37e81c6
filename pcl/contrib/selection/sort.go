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

package selection

import "github.com/ajroetker/go-pcl/pcl"

// sortInsertionThreshold: use insertion sort for ranges this size or smaller.
const sortInsertionThreshold = 32

// Sort sorts data in place in ascending order. This is an introsort variant
// that combines:
//   - Insertion sort for small ranges
//   - Sampled pivot with 3-way partitioning for larger ranges
//   - Heapsort fallback for worst-case guarantee
func Sort[T pcl.Samples](data []T) {
	if len(data) <= 1 {
		return
	}
	sortImpl(data, depthLimit(len(data)))
}

func sortImpl[T pcl.Samples](data []T, depth int) {
	for {
		n := len(data)
		if n <= sortInsertionThreshold {
			insertionSort(data)
			return
		}

		// Fallback to heapsort if recursion too deep
		if depth == 0 {
			heapSort(data)
			return
		}
		depth--

		lt, gt := partition3Way(data, pivotSampled(data))

		// Recurse into the smaller side, loop on the larger one.
		if lt < n-gt {
			sortImpl(data[:lt], depth)
			data = data[gt:]
		} else {
			sortImpl(data[gt:], depth)
			data = data[:lt]
		}
	}
}

// IsSorted reports whether data is sorted in ascending order.
func IsSorted[T pcl.Samples](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
