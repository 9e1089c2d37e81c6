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

// Statistics over a sample buffer. All of them accept an empty buffer and
// return the zero value for it; neighborhood gathering code is expected to
// never produce one.

// Min returns the smallest element.
func Min[T pcl.Samples](data []T) T {
	if len(data) == 0 {
		var zero T
		return zero
	}
	m := data[0]
	for _, v := range data[1:] {
		m = min(m, v)
	}
	return m
}

// Max returns the largest element.
func Max[T pcl.Samples](data []T) T {
	if len(data) == 0 {
		var zero T
		return zero
	}
	m := data[0]
	for _, v := range data[1:] {
		m = max(m, v)
	}
	return m
}

// MinMax returns the smallest and largest elements in a single pass.
func MinMax[T pcl.Samples](data []T) (lo, hi T) {
	if len(data) == 0 {
		return lo, hi
	}
	lo, hi = data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		} else if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Median returns the median of data. For even lengths it is the mean of the
// two central order statistics, converted with pcl.ToSample. data is
// permuted and must be treated as scratch afterwards.
func Median[T pcl.Samples](data []T) T {
	n := len(data)
	switch {
	case n == 0:
		var zero T
		return zero
	case n == 1:
		return data[0]
	case n <= MaxNetworkSize:
		lo, hi := runNetwork(data)
		if n&1 != 0 {
			return lo
		}
		return average(lo, hi)
	}

	hi := Select(data, n/2)
	if n&1 != 0 {
		return hi
	}
	// Second, independent pass over the partially ordered buffer.
	lo := Select(data, n/2-1)
	return average(lo, hi)
}

// Midpoint returns (min+max)/2, computed in float64.
func Midpoint[T pcl.Samples](data []T) T {
	if len(data) == 0 {
		var zero T
		return zero
	}
	lo, hi := MinMax(data)
	return average(lo, hi)
}

// Mean returns the arithmetic mean of data, computed in float64.
func Mean[T pcl.Samples](data []T) T {
	if len(data) == 0 {
		var zero T
		return zero
	}
	return pcl.ToSample[T](mean(data))
}

// AlphaTrimmedMean sorts data, discards i1 = round(d*((n-1)>>1)) elements
// from each end and returns the mean of the rest. d is clamped to [0, 1]:
// d == 0 is the plain mean, d == 1 keeps only the central one or two
// elements, which equals Median.
func AlphaTrimmedMean[T pcl.Samples](data []T, d float64) T {
	n := len(data)
	if n == 0 {
		var zero T
		return zero
	}
	Sort(data)
	i1 := TrimCount(n, d)
	return pcl.ToSample[T](mean(data[i1 : n-i1]))
}

// TrimCount returns how many elements AlphaTrimmedMean discards from each end
// of an n-element buffer.
func TrimCount(n int, d float64) int {
	if n <= 1 {
		return 0
	}
	return int(math.Round(clampUnit(d) * float64((n-1)>>1)))
}

func average[T pcl.Samples](a, b T) T {
	return pcl.ToSample[T]((pcl.ToDouble(a) + pcl.ToDouble(b)) / 2)
}

func mean[T pcl.Samples](data []T) float64 {
	var sum float64
	for _, v := range data {
		sum += pcl.ToDouble(v)
	}
	return sum / float64(len(data))
}

func clampUnit(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return min(max(x, 0), 1)
}
