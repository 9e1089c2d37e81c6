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

// Package morphology applies order-statistic operators over pixel
// neighborhoods.
//
// An Operator names one statistic of the selection engine: erosion (minimum),
// dilation (maximum), median, selection at a percentile, midpoint or
// alpha-trimmed mean. Apply evaluates an operator over a flat sample buffer;
// Transform gathers the neighborhood of every pixel under a Structure and
// applies the operator to it, in parallel over image rows.
//
// Median averages the two central order statistics for even neighborhood
// sizes, while Selection(0.5) returns a single rank. The two can therefore
// differ for even-sized structuring elements.
//
// Example:
//
//	se, _ := morphology.NewCircle(5)
//	out, err := morphology.Transform(img, morphology.Median(), se,
//	    morphology.WithIterations(2),
//	    morphology.WithBoundary(image.BoundaryClamp))
//
// Parameters and configuration are validated up front; failures carry one of
// the PCL_* codes declared in this package.
package morphology
