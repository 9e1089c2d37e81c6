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

package pcl

import (
	"math"
	"unsafe"
)

// half is a variable so that T(half) is a run-time conversion: it truncates
// to zero for integer types and is exact for floating-point types.
var half = 0.5

// IsFloat reports whether T is a floating-point sample type.
func IsFloat[T Samples]() bool {
	return T(half) != 0
}

// IsSigned reports whether T can represent negative values.
func IsSigned[T Samples]() bool {
	var zero T
	return zero-1 < zero
}

// ToSample converts a float64 intermediate into the native representation of
// T. This is the float-to-sample mapping used wherever a statistic is computed
// in double precision (means, midpoints, blends):
//   - floating-point types convert directly;
//   - integer types round half away from zero and clamp to the range of T;
//     NaN maps to zero.
func ToSample[T Samples](x float64) T {
	if IsFloat[T]() {
		return T(x)
	}
	if math.IsNaN(x) {
		return 0
	}

	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if IsSigned[T]() {
		// [-2^(bits-1), 2^(bits-1)) are exactly representable as float64
		// bounds even for 64-bit types.
		limit := math.Ldexp(1, bits-1)
		minVal := T(-limit)
		r := math.Round(x)
		if r <= -limit {
			return minVal
		}
		if r >= limit {
			return -(minVal + 1)
		}
		return T(r)
	}

	if x <= 0 {
		return 0
	}
	if x >= math.Ldexp(1, bits) {
		return zero - 1
	}
	r := math.Round(x)
	if r >= math.Ldexp(1, bits) {
		return zero - 1
	}
	return T(r)
}

// ToDouble widens a sample to float64.
func ToDouble[T Samples](v T) float64 {
	return float64(v)
}

// SampleRange returns the smallest and largest values representable by T.
// Floating-point types report ±MaxFloat.
func SampleRange[T Samples]() (lo, hi T) {
	if IsFloat[T]() {
		var zero T
		limit := math.MaxFloat64
		if unsafe.Sizeof(zero) == 4 {
			limit = math.MaxFloat32
		}
		return T(-limit), T(limit)
	}
	return ToSample[T](math.Inf(-1)), ToSample[T](math.Inf(1))
}
