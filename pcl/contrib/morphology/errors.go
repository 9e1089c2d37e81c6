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
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes reported by this package.
const (
	ErrCodeInvalidOperator  = "PCL_INVALID_OPERATOR"
	ErrCodeInvalidParameter = "PCL_INVALID_PARAMETER"
	ErrCodeInvalidStructure = "PCL_INVALID_STRUCTURE"
	ErrCodeInvalidOption    = "PCL_INVALID_OPTION"
	ErrCodeInvalidConfig    = "PCL_INVALID_CONFIG"
	ErrCodeEmptyImage       = "PCL_EMPTY_IMAGE"
)

// Code returns the PCL_* code of the outermost coded error in err's chain,
// or "" when there is none.
func Code(err error) string {
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return string(coder.ErrorCode())
	}
	return ""
}
