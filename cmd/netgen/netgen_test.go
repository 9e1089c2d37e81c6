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
	"go/ast"
	"go/parser"
	"go/token"
	"math/bits"
	"math/rand"
	"os"
	"slices"
	"strconv"
	"testing"
)

// TestBoseNelsonSorts checks the full networks on every 0-1 input.
func TestBoseNelsonSorts(t *testing.T) {
	for n := 1; n <= 12; n++ {
		net := BoseNelson(n)
		ops := make([]Op, len(net))
		for k, c := range net {
			if c.I >= c.J || c.J >= n {
				t.Fatalf("n=%d: bad comparator %v", n, c)
			}
			ops[k] = Op{I: c.I, J: c.J}
		}
		for mask := 0; mask < 1<<n; mask++ {
			data := make([]int, n)
			for i := range data {
				data[i] = mask >> i & 1
			}
			Run(ops, data)
			if !slices.IsSorted(data) {
				t.Fatalf("n=%d mask=%b: not sorted: %v", n, mask, data)
			}
		}
	}
}

func TestNetworkSelectsCenter(t *testing.T) {
	for n := 2; n <= 14; n++ {
		ops := Network(n)
		for mask := uint(0); mask < 1<<n; mask++ {
			data := make([]int, n)
			for i := range data {
				data[i] = int(mask>>i) & 1
			}
			zeros := n - bits.OnesCount(mask)
			Run(ops, data)
			for _, p := range Targets(n) {
				want := 0
				if p >= zeros {
					want = 1
				}
				if data[p] != want {
					t.Fatalf("n=%d mask=%b: slot %d = %d, want %d", n, mask, p, data[p], want)
				}
			}
		}
	}

	rng := rand.New(rand.NewSource(1))
	for n := 15; n <= 32; n++ {
		ops := Network(n)
		for trial := 0; trial < 2000; trial++ {
			data := make([]int, n)
			for i := range data {
				data[i] = rng.Intn(10)
			}
			sorted := slices.Sorted(slices.Values(data))
			Run(ops, data)
			for _, p := range Targets(n) {
				if data[p] != sorted[p] {
					t.Fatalf("n=%d: slot %d = %d, want %d", n, p, data[p], sorted[p])
				}
			}
		}
	}
}

func TestClassifyHalfComparators(t *testing.T) {
	// n=3: the last two comparators each feed a single live slot.
	want := []Op{{1, 2, Exchange}, {0, 2, MinOnly}, {0, 1, MaxOnly}}
	if got := Network(3); !slices.Equal(got, want) {
		t.Errorf("Network(3) = %v, want %v", got, want)
	}
	if got := Network(2); !slices.Equal(got, []Op{{0, 1, Exchange}}) {
		t.Errorf("Network(2) = %v", got)
	}
}

func TestGenerate(t *testing.T) {
	src, err := Generate("selection", 8)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	ops := parseTable(t, "network_table.go", src)
	if len(ops) != 7 {
		t.Fatalf("generated %d networks, want 7", len(ops))
	}
	for n, got := range ops {
		if want := Network(n); !slices.Equal(got, want) {
			t.Errorf("n=%d: table %v, want %v", n, got, want)
		}
	}
}

// TestCheckedInTable fails when the committed table is stale.
func TestCheckedInTable(t *testing.T) {
	const path = "../../pcl/contrib/selection/network_table.go"
	src, err := os.ReadFile(path)
	if err != nil {
		t.Skipf("table not found: %v", err)
	}
	ops := parseTable(t, path, src)
	if len(ops) != 31 {
		t.Fatalf("%s holds %d networks, want 31", path, len(ops))
	}
	for n, got := range ops {
		if want := Network(n); !slices.Equal(got, want) {
			t.Errorf("n=%d: %s is stale; run go generate", n, path)
		}
	}
}

// parseTable extracts the comparator lists of the networks variable.
func parseTable(t *testing.T, name string, src []byte) map[int][]Op {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, 0)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}

	kinds := map[string]Kind{}
	for k, s := range goNames {
		kinds[s] = Kind(k)
	}
	atoi := func(e ast.Expr) int {
		lit, ok := e.(*ast.BasicLit)
		if !ok {
			t.Fatalf("expected an integer literal, got %T", e)
		}
		v, err := strconv.Atoi(lit.Value)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}

	out := map[int][]Op{}
	ast.Inspect(f, func(node ast.Node) bool {
		spec, ok := node.(*ast.ValueSpec)
		if !ok || len(spec.Names) != 1 || spec.Names[0].Name != "networks" {
			return true
		}
		table := spec.Values[0].(*ast.CompositeLit)
		for _, elt := range table.Elts {
			kv := elt.(*ast.KeyValueExpr)
			n := atoi(kv.Key)
			for _, field := range kv.Value.(*ast.CompositeLit).Elts {
				fkv := field.(*ast.KeyValueExpr)
				if fkv.Key.(*ast.Ident).Name != "ops" {
					continue
				}
				var ops []Op
				for _, c := range fkv.Value.(*ast.CompositeLit).Elts {
					triple := c.(*ast.CompositeLit).Elts
					ops = append(ops, Op{
						I:    atoi(triple[0]),
						J:    atoi(triple[1]),
						Kind: kinds[triple[2].(*ast.Ident).Name],
					})
				}
				out[n] = ops
			}
		}
		return false
	})
	return out
}
