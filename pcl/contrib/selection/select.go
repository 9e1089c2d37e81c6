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

import (
	"math"

	"github.com/ajroetker/go-pcl/pcl"
)

// selectInsertionThreshold: finish with insertion sort once the active range
// is this size or smaller.
const selectInsertionThreshold = 16

// Select rearranges data so that data[k] holds the element that would be at
// position k if data were sorted, and returns it. Elements before k are
// <= data[k], elements after are >= data[k]. Values are permuted, never
// approximated.
//
// Select may be called again on a buffer it has already partially ordered,
// for any k. It panics if k is outside [0, len(data)).
func Select[T pcl.Samples](data []T, k int) T {
	_ = data[k]

	lo, hi := 0, len(data)
	depth := depthLimit(len(data))
	for hi-lo > selectInsertionThreshold {
		if depth == 0 {
			heapSort(data[lo:hi])
			return data[k]
		}
		depth--

		part := data[lo:hi]
		lt, gt := partition3Way(part, pivotMedianOf3(part))
		switch {
		case k < lo+lt:
			hi = lo + lt
		case k >= lo+gt:
			lo += gt
		default:
			// k landed in the run of elements equal to the pivot.
			return data[k]
		}
	}
	insertionSort(data[lo:hi])
	return data[k]
}

// Percentile returns the element of rank round(k*(len(data)-1)), with k
// clamped to [0, 1]. It never averages two ranks. data is permuted. An empty
// buffer yields the zero value.
func Percentile[T pcl.Samples](data []T, k float64) T {
	n := len(data)
	if n == 0 {
		var zero T
		return zero
	}
	return Select(data, Rank(n, k))
}

// Rank returns the index selected by Percentile for n elements.
func Rank(n int, k float64) int {
	if n <= 1 {
		return 0
	}
	k = clampUnit(k)
	return int(math.Round(k * float64(n-1)))
}
