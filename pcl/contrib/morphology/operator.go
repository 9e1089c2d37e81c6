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

package morphology

import (
	"fmt"
	"math"
	"strings"

	"github.com/agilira/go-errors"

	"github.com/ajroetker/go-pcl/pcl"
	"github.com/ajroetker/go-pcl/pcl/contrib/selection"
)

// Kind enumerates the morphological operators.
type Kind uint8

const (
	KindErosion Kind = iota
	KindDilation
	KindMedian
	KindSelection
	KindMidpoint
	KindAlphaTrimmedMean
)

var kindNames = [...]string{
	KindErosion:          "erosion",
	KindDilation:         "dilation",
	KindMedian:           "median",
	KindSelection:        "selection",
	KindMidpoint:         "midpoint",
	KindAlphaTrimmedMean: "alpha-trimmed-mean",
}

// kindAliases are alternative names accepted by ParseKind.
var kindAliases = map[string]Kind{
	"min":          KindErosion,
	"max":          KindDilation,
	"percentile":   KindSelection,
	"trimmed-mean": KindAlphaTrimmedMean,
}

// String returns the canonical name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// HasParameter reports whether operators of this kind take a parameter in
// [0, 1].
func (k Kind) HasParameter() bool {
	return k == KindSelection || k == KindAlphaTrimmedMean
}

// ParseKind parses an operator name. Matching is case-insensitive and also
// accepts the aliases min, max, percentile and trimmed-mean.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return 0, errors.New(ErrCodeInvalidOperator, "unknown morphological operator").
		WithContext("operator", s)
}

// Operator describes one statistic to compute over a neighborhood.
// The zero value is erosion.
type Operator struct {
	kind  Kind
	param float64
}

// Erosion returns the minimum operator.
func Erosion() Operator { return Operator{kind: KindErosion} }

// Dilation returns the maximum operator.
func Dilation() Operator { return Operator{kind: KindDilation} }

// Median returns the median operator. Even-sized neighborhoods yield the
// mean of the two central values.
func Median() Operator { return Operator{kind: KindMedian} }

// Midpoint returns the (min+max)/2 operator.
func Midpoint() Operator { return Operator{kind: KindMidpoint} }

// Selection returns the operator picking the element of rank
// round(k*(n-1)). k must be in [0, 1]: 0 is erosion and 1 is dilation.
func Selection(k float64) (Operator, error) {
	return NewOperator(KindSelection, k)
}

// AlphaTrimmedMean returns the operator averaging what is left after
// discarding round(d*((n-1)>>1)) elements from each end. d must be in [0, 1].
func AlphaTrimmedMean(d float64) (Operator, error) {
	return NewOperator(KindAlphaTrimmedMean, d)
}

// NewOperator builds an operator of any kind. param is only used, and only
// validated, for KindSelection and KindAlphaTrimmedMean.
func NewOperator(kind Kind, param float64) (Operator, error) {
	if int(kind) >= len(kindNames) {
		return Operator{}, errors.New(ErrCodeInvalidOperator, "unknown morphological operator").
			WithContext("kind", uint8(kind))
	}
	if !kind.HasParameter() {
		return Operator{kind: kind}, nil
	}
	if math.IsNaN(param) || param < 0 || param > 1 {
		return Operator{}, errors.New(ErrCodeInvalidParameter, "operator parameter must be in [0, 1]").
			WithContext("operator", kind.String()).
			WithContext("value", param)
	}
	return Operator{kind: kind, param: param}, nil
}

// Kind returns the operator kind.
func (op Operator) Kind() Kind { return op.kind }

// Param returns the percentile of a selection operator or the trimming
// fraction of an alpha-trimmed mean, and 0 for the other kinds.
func (op Operator) Param() float64 { return op.param }

// String returns the operator name, with its parameter when it has one.
func (op Operator) String() string {
	if op.kind.HasParameter() {
		return fmt.Sprintf("%s(%g)", op.kind, op.param)
	}
	return op.kind.String()
}

// Apply evaluates op over buf and returns the result. buf is permuted and
// must be treated as scratch afterwards. An empty buffer yields the zero
// value.
func Apply[T pcl.Samples](op Operator, buf []T) T {
	switch op.kind {
	case KindDilation:
		return selection.Max(buf)
	case KindMedian:
		return selection.Median(buf)
	case KindSelection:
		return selection.Percentile(buf, op.param)
	case KindMidpoint:
		return selection.Midpoint(buf)
	case KindAlphaTrimmedMean:
		return selection.AlphaTrimmedMean(buf, op.param)
	default:
		return selection.Min(buf)
	}
}
