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

// Package selection provides the order-statistic engine behind the
// morphological operators: fixed selection networks for small buffers,
// quickselect for larger ones, and the statistics built on top of them.
//
// # Algorithm
//
// Median picks its strategy by buffer length:
//   - 0 elements: the zero value (callers must not pass empty neighborhoods)
//   - 1 element: the element itself
//   - 2-32 elements: a per-length selection network
//   - more than 32 elements: quickselect, run twice for even lengths
//
// A selection network is a fixed list of compare-exchange operations. The
// networks in this package are Bose-Nelson sorting networks trimmed to the
// comparators that can influence the central positions. Some comparators only
// need one of their outputs and write either the minimum or the maximum. The
// table lives in network_table.go and is produced by cmd/netgen.
//
// For even lengths the median is the mean of the two central order
// statistics, computed in float64 and converted back with pcl.ToSample.
// Percentile never averages: Percentile(data, 0.5) returns a single rank and
// can differ from Median for even lengths.
//
// # Buffers
//
// Every function permutes its input in place and is allocation free. After a
// network runs, the buffer is scratch: slots may hold duplicated values. Do
// not pass buffers containing NaN.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-pcl/pcl/contrib/selection"
//
//	func Despeckle(window []uint16) uint16 {
//	    return selection.Median(window)
//	}
package selection
