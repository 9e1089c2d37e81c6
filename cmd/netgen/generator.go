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

package main

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/tools/imports"
)

// opsPerLine is the number of comparators written on one line of the table.
const opsPerLine = 6

// Generate returns the formatted Go source of the network table for lengths
// 2 through maxN.
func Generate(pkg string, maxN int) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by netgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// MaxNetworkSize is the largest buffer length served by a selection network.\n")
	fmt.Fprintf(&buf, "const MaxNetworkSize = %d\n\n", maxN)
	fmt.Fprintf(&buf, "// networks[n] is the selection network for buffers of length n.\n")
	fmt.Fprintf(&buf, "var networks = [MaxNetworkSize + 1]network{\n")

	for n := 2; n <= maxN; n++ {
		fmt.Fprintf(&buf, "\t%d: {lo: %d, hi: %d, ops: []comparator{\n", n, (n-1)/2, n/2)
		ops := Network(n)
		for start := 0; start < len(ops); start += opsPerLine {
			line := ops[start:min(start+opsPerLine, len(ops))]
			parts := make([]string, len(line))
			for k, op := range line {
				parts[k] = fmt.Sprintf("{%d, %d, %s},", op.I, op.J, goNames[op.Kind])
			}
			fmt.Fprintf(&buf, "\t\t%s\n", strings.Join(parts, " "))
		}
		fmt.Fprintf(&buf, "\t}},\n")
	}
	fmt.Fprintf(&buf, "}\n")

	formatted, err := imports.Process("network_table.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format network table: %w", err)
	}
	return formatted, nil
}
