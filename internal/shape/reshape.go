// Copyright 2026 The Shapekit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package shape

// ToRank converts the shape to exactly rank dimensions, preserving the
// total element count.
//
// Dimensions are right-aligned into the result. Expanding pads the
// leading positions with 1s:
//
//	Shape{1, 2, 3}.ToRank(Rank4)  // [1 1 2 3]
//
// Collapsing keeps the innermost rank-1 dimensions in place and multiplies
// every leading dimension that no longer fits into the new leading slot:
//
//	Shape{1, 2, 3}.ToRank(Rank2)  // [2 3]
//	Shape{4, 2, 3}.ToRank(Rank1)  // [24]
//
// The conversion is total for any rank in [1, 6] and any non-empty source
// shape; it never fails. The result is always a fresh shape owned by the
// caller.
func (s Shape) ToRank(rank Rank) Shape {
	n := len(s)
	r := int(rank)
	if r == n {
		return s.Clone()
	}

	result := make(Shape, r)
	for i := range result {
		result[i] = 1
	}
	// Walk the source from the innermost dimension outward. Positions
	// rank-1 down to 1 take source values directly; everything left over
	// collapses multiplicatively into position 0.
	for i := 1; i <= n; i++ {
		if dst := r - i; dst >= 1 {
			result[dst] = s[n-i]
		} else {
			result[0] *= s[n-i]
		}
	}
	return result
}

// To1D converts the shape to rank 1.
func (s Shape) To1D() Shape { return s.ToRank(Rank1) }

// To2D converts the shape to rank 2.
func (s Shape) To2D() Shape { return s.ToRank(Rank2) }

// To3D converts the shape to rank 3.
func (s Shape) To3D() Shape { return s.ToRank(Rank3) }

// To4D converts the shape to rank 4.
func (s Shape) To4D() Shape { return s.ToRank(Rank4) }
