// Copyright 2026 The Shapekit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package shape provides shape bookkeeping for nested numeric arrays.
//
// # Overview
//
// A Shape is an ordered sequence of positive dimension sizes, outermost
// first, with a rank between 1 and 6. This package provides:
//   - Shape inference from nested data (first-element path)
//   - Element counts and row-major strides
//   - Rank conversion that preserves the element count
//   - Row-major index iteration for ranks 1 to 4
//
// # Basic Usage
//
//	import "github.com/shapekit/shapekit/shape"
//
//	func main() {
//	    s := shape.Shape{2, 3, 4}
//	    n := s.NumElements() // 24
//
//	    flat := s.To1D()          // [24]
//	    wide := s.ToRank(shape.Rank4) // [1 2 3 4]
//
//	    shape.Iterate2D(shape.Shape{2, 2}, func(i, j int) {
//	        // (0,0) (0,1) (1,0) (1,1)
//	    })
//	}
//
// # Boundary Behavior
//
// Inference follows only the first element at each nesting level; ragged
// nests are not detected. An empty outermost sequence infers the
// degenerate shape [0], which Shape.Validate rejects.
//
// All operations are pure and safe for concurrent use; iteration invokes
// its callback synchronously on the calling goroutine.
package shape
