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

// Kind tells which outputs of a comparator are kept.
type Kind int

const (
	// Exchange keeps both outputs.
	Exchange Kind = iota
	// MinOnly keeps the minimum, written to the lower slot.
	MinOnly
	// MaxOnly keeps the maximum, written to the upper slot.
	MaxOnly
)

// goNames are the identifiers of the kinds in the generated table.
var goNames = [...]string{
	Exchange: "cx",
	MinOnly:  "cmin",
	MaxOnly:  "cmax",
}

// Comparator orders slots I < J.
type Comparator struct {
	I, J int
}

// Op is a comparator of a selection network.
type Op struct {
	I, J int
	Kind Kind
}

// BoseNelson returns the Bose-Nelson sorting network for n inputs.
func BoseNelson(n int) []Comparator {
	var net []Comparator
	add := func(i, j int) { net = append(net, Comparator{i, j}) }

	// bracket merges the sorted runs [i, i+x) and [j, j+y).
	var bracket func(i, x, j, y int)
	bracket = func(i, x, j, y int) {
		switch {
		case x == 1 && y == 1:
			add(i, j)
		case x == 1 && y == 2:
			add(i, j+1)
			add(i, j)
		case x == 2 && y == 1:
			add(i, j)
			add(i+1, j)
		default:
			a := x / 2
			b := (y + 1) / 2
			if x&1 != 0 {
				b = y / 2
			}
			bracket(i, a, j, b)
			bracket(i+a, x-a, j+b, y-b)
			bracket(i+a, x-a, j, b)
		}
	}

	var star func(i, m int)
	star = func(i, m int) {
		if m > 1 {
			a := m / 2
			star(i, a)
			star(i+a, m-a)
			bracket(i, a, i+a, m-a)
		}
	}

	star(0, n)
	return net
}

// Targets returns the central positions of an n-element buffer: (n-1)/2 and
// n/2, which coincide for odd n.
func Targets(n int) []int {
	if n&1 != 0 {
		return []int{n / 2}
	}
	return []int{n/2 - 1, n / 2}
}

// Classify walks net backwards from the target slots. Comparators touching
// no live slot are dropped; the others become Exchange, MinOnly or MaxOnly
// depending on which of their outputs is live.
func Classify(net []Comparator, targets []int) []Op {
	live := make(map[int]bool, len(targets))
	for _, t := range targets {
		live[t] = true
	}

	var rev []Op
	for k := len(net) - 1; k >= 0; k-- {
		c := net[k]
		li, lj := live[c.I], live[c.J]
		if !li && !lj {
			continue
		}
		kind := Exchange
		switch {
		case li && !lj:
			kind = MinOnly
		case !li && lj:
			kind = MaxOnly
		}
		rev = append(rev, Op{I: c.I, J: c.J, Kind: kind})
		live[c.I], live[c.J] = true, true
	}

	ops := make([]Op, len(rev))
	for k, op := range rev {
		ops[len(rev)-1-k] = op
	}
	return ops
}

// Network returns the selection network for n inputs.
func Network(n int) []Op {
	return Classify(BoseNelson(n), Targets(n))
}

// Run applies ops to data in place.
func Run(ops []Op, data []int) {
	for _, op := range ops {
		a, b := data[op.I], data[op.J]
		switch op.Kind {
		case Exchange:
			data[op.I], data[op.J] = min(a, b), max(a, b)
		case MinOnly:
			data[op.I] = min(a, b)
		case MaxOnly:
			data[op.J] = max(a, b)
		}
	}
}
