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

//go:generate go run ../../../cmd/netgen -output network_table.go -pkg selection -max 32

// opKind tells which outputs of a comparator are written back.
type opKind uint8

const (
	// cx writes the minimum to i and the maximum to j.
	cx opKind = iota
	// cmin writes the minimum to i only.
	cmin
	// cmax writes the maximum to j only.
	cmax
)

// comparator is one compare-exchange step between slots i < j.
type comparator struct {
	i, j uint8
	kind opKind
}

// network is the comparator sequence for one buffer length. After it runs,
// slots lo and hi hold the two central order statistics (lo == hi for odd
// lengths).
type network struct {
	lo, hi uint8
	ops    []comparator
}

// NetworkSize returns the number of comparators used for buffers of length n,
// or 0 when no network serves that length.
func NetworkSize(n int) int {
	if n < 2 || n > MaxNetworkSize {
		return 0
	}
	return len(networks[n].ops)
}

// runNetwork applies the network for len(data) and returns the values at its
// extraction positions. len(data) must be in [2, MaxNetworkSize].
func runNetwork[T pcl.Samples](data []T) (lo, hi T) {
	nw := &networks[len(data)]
	for _, c := range nw.ops {
		a, b := data[c.i], data[c.j]
		switch c.kind {
		case cx:
			data[c.i], data[c.j] = min(a, b), max(a, b)
		case cmin:
			data[c.i] = min(a, b)
		case cmax:
			data[c.j] = max(a, b)
		}
	}
	return data[nw.lo], data[nw.hi]
}
