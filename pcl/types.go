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

// Package pcl holds the pieces shared by every contrib package: the numeric
// sample constraints, the pixel-sample conversion contract and the runtime
// CPU dispatch level used to size lane-aligned buffers.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-pcl/pcl"
//
//	// Convert a float64 intermediate back into a 16-bit sample.
//	v := pcl.ToSample[uint16](32767.5) // 32768
//
//	// Row strides are rounded up to this many elements.
//	lanes := pcl.MaxLanes[float32]()
package pcl

import "golang.org/x/exp/constraints"

// Floats is a constraint for floating-point sample types.
type Floats interface {
	constraints.Float
}

// SignedInts is a constraint for signed integer sample types.
type SignedInts interface {
	constraints.Signed
}

// UnsignedInts is a constraint for unsigned integer sample types.
type UnsignedInts interface {
	constraints.Unsigned
}

// Integers is a constraint for all integer sample types.
type Integers interface {
	constraints.Integer
}

// Samples is a constraint for every scalar type a pixel sample can be stored as.
type Samples interface {
	Floats | Integers
}
