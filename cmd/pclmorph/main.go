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

// Command pclmorph applies a morphological operator to PNG images.
//
// Usage:
//
//	pclmorph --input a.png,b.png --outdir out --op median --shape circle --size 5
//	pclmorph --config morph.yaml --input scan.png --outdir out --iterations 2
//
// Settings come from DefaultConfig, then the YAML file given by --config,
// then the command line. Images are converted to 16-bit grayscale, filtered
// concurrently on one shared worker pool, and written to --outdir under their
// original base names.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stderr)
	if errors.Is(err, errHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
