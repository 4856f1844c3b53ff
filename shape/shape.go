// Copyright 2026 The Shapekit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package shape provides the public API for the shape and rank model.
//
// The package defines the core types and operations for shape bookkeeping
// over nested numeric arrays:
//   - Shape: ordered dimension sizes, outermost first
//   - Rank: the closed set of supported dimension counts (1 to 6)
//   - Element: a nested-array value, either sequence or scalar
//
// Example:
//
//	s := shape.Infer(shape.Seq(
//	    shape.Seq(shape.Scalar(1), shape.Scalar(2)),
//	    shape.Seq(shape.Scalar(3), shape.Scalar(4)),
//	))
//	// s = [2 2], s.NumElements() = 4
//	flat := s.To1D() // [4]
package shape

import (
	"github.com/shapekit/shapekit/internal/shape"
)

// Type aliases for public API

// Shape represents the dimensions of a nested numeric array.
// Example: Shape{2, 3, 4} describes a rank-3 nest with dimensions 2×3×4.
type Shape = shape.Shape

// Rank identifies how many dimensions a shape has (1 through 6).
type Rank = shape.Rank

// Supported ranks.
const (
	Rank1 Rank = shape.Rank1
	Rank2 Rank = shape.Rank2
	Rank3 Rank = shape.Rank3
	Rank4 Rank = shape.Rank4
	Rank5 Rank = shape.Rank5
	Rank6 Rank = shape.Rank6
)

// Element is one node of a nested numeric array: a sequence of child
// elements or a scalar number.
type Element = shape.Element

// Construction functions

// Scalar creates a scalar element.
//
// Example:
//
//	e := shape.Scalar(3.14)
func Scalar(v float64) Element {
	return shape.Scalar(v)
}

// Seq creates a sequence element from its children.
//
// Example:
//
//	row := shape.Seq(shape.Scalar(1), shape.Scalar(2))
func Seq(elems ...Element) Element {
	return shape.Seq(elems...)
}

// FromAny converts a decoded dynamic value (nested []any with numeric
// leaves, the form encoding/json produces) into an Element tree.
//
// Example:
//
//	var v any
//	_ = json.Unmarshal([]byte("[[1,2],[3,4]]"), &v)
//	e, err := shape.FromAny(v)
func FromAny(v any) (Element, error) {
	return shape.FromAny(v)
}

// Shape operations

// Infer returns the shape of a nested array, one dimension per nesting
// level along the first-element path. See the internal documentation for
// the empty-sequence and ragged-nest boundary behavior.
//
// Example:
//
//	s := shape.Infer(e) // [[1,2],[3,4]] -> [2 2]
func Infer(e Element) Shape {
	return shape.Infer(e)
}

// Iteration functions

// Iterate1D invokes fn for each index in [0, n), in order.
func Iterate1D(n int, fn func(i int)) {
	shape.Iterate1D(n, fn)
}

// Iterate2D invokes fn for every index pair of a rank-2 shape, in
// row-major order (the last axis varies fastest).
func Iterate2D(s Shape, fn func(i, j int)) {
	shape.Iterate2D(s, fn)
}

// Iterate3D invokes fn for every index triple of a rank-3 shape, in
// row-major order.
func Iterate3D(s Shape, fn func(i, j, k int)) {
	shape.Iterate3D(s, fn)
}

// Iterate4D invokes fn for every index quadruple of a rank-4 shape, in
// row-major order. Ranks 5 and 6 have no iteration helper.
func Iterate4D(s Shape, fn func(i, j, k, l int)) {
	shape.Iterate4D(s, fn)
}
