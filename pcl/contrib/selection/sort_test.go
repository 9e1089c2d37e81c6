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
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSortEmptyAndSingle(t *testing.T) {
	var empty []float32
	Sort(empty)
	data := []float32{42}
	Sort(data)
	if data[0] != 42 {
		t.Errorf("Sort([42]) = %v", data)
	}
}

func TestSortPatterns(t *testing.T) {
	sizes := []int{2, 7, 31, 32, 33, 100, 1000, 10000}
	patterns := map[string]func(rng *rand.Rand, i, n int) int32{
		"random":     func(rng *rand.Rand, i, n int) int32 { return rng.Int31() - 1<<30 },
		"sorted":     func(rng *rand.Rand, i, n int) int32 { return int32(i) },
		"reverse":    func(rng *rand.Rand, i, n int) int32 { return int32(n - i) },
		"allSame":    func(rng *rand.Rand, i, n int) int32 { return 5 },
		"fewUnique":  func(rng *rand.Rand, i, n int) int32 { return int32(rng.Intn(3)) },
		"organPipe":  func(rng *rand.Rand, i, n int) int32 { return int32(min(i, n-i)) },
		"nearSorted": func(rng *rand.Rand, i, n int) int32 { return int32(i + rng.Intn(5)) },
	}

	for name, gen := range patterns {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(len(name))))
			for _, n := range sizes {
				data := make([]int32, n)
				for i := range data {
					data[i] = gen(rng, i, n)
				}
				want := slices.Sorted(slices.Values(data))
				Sort(data)
				if diff := cmp.Diff(want, data); diff != "" {
					t.Fatalf("n=%d: Sort mismatch (-want +got):\n%s", n, diff)
				}
			}
		})
	}
}

func TestSortFloats(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	data := make([]float64, 5000)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	Sort(data)
	if !IsSorted(data) {
		t.Error("Sort produced unsorted float64 data")
	}
}

func TestHeapSortFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	data := make([]uint16, 300)
	for i := range data {
		data[i] = uint16(rng.Intn(1000))
	}
	want := slices.Sorted(slices.Values(data))
	// Depth 0 goes straight to heapsort.
	sortImpl(data, 0)
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("heapsort mismatch (-want +got):\n%s", diff)
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted([]int{}) || !IsSorted([]int{1}) || !IsSorted([]int{1, 1, 2}) {
		t.Error("IsSorted rejected a sorted slice")
	}
	if IsSorted([]int{2, 1}) {
		t.Error("IsSorted accepted [2 1]")
	}
}
