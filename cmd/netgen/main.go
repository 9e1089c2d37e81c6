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

// Command netgen generates the selection network table used by
// pcl/contrib/selection.
//
// Usage:
//
//	netgen -output network_table.go -pkg selection -max 32
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/netgen -output network_table.go -pkg selection -max 32
//
// For every length n in [2, max] the generator builds the Bose-Nelson sorting
// network, then walks it backwards from the two central positions and keeps
// only the comparators that can reach them. A kept comparator whose minimum
// (or maximum) output is never read again is emitted as a half comparator
// that writes a single slot.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "network_table.go", "Output Go file")
	packageOut = flag.String("pkg", "selection", "Output package name")
	maxSize    = flag.Int("max", 32, "Largest buffer length served by a network (2-255)")
)

func main() {
	flag.Parse()

	if *maxSize < 2 || *maxSize > 255 {
		fmt.Fprintf(os.Stderr, "Error: -max must be in [2, 255], got %d\n\n", *maxSize)
		flag.Usage()
		os.Exit(1)
	}

	src, err := Generate(*packageOut, *maxSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *outputFile, err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d networks in %s\n", *maxSize-1, *outputFile)
}
