// Copyright 2026 The Shapekit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package shape

// Iterate1D invokes fn once for each index in [0, n), in order.
//
// The callback runs synchronously on the calling goroutine and cannot
// terminate the iteration early.
func Iterate1D(n int, fn func(i int)) {
	for i := 0; i < n; i++ {
		fn(i)
	}
}

// Iterate2D invokes fn once for every index pair of a rank-2 shape, in
// row-major order (the last axis varies fastest).
func Iterate2D(s Shape, fn func(i, j int)) {
	Iterate1D(s[0], func(i int) {
		Iterate1D(s[1], func(j int) {
			fn(i, j)
		})
	})
}

// Iterate3D invokes fn once for every index triple of a rank-3 shape, in
// row-major order.
func Iterate3D(s Shape, fn func(i, j, k int)) {
	Iterate1D(s[0], func(i int) {
		Iterate2D(s[1:], func(j, k int) {
			fn(i, j, k)
		})
	})
}

// Iterate4D invokes fn once for every index quadruple of a rank-4 shape,
// in row-major order.
//
// Ranks 5 and 6 are valid Shape ranks but have no iteration helper; a
// caller needing them composes Iterate4D with outer loops by hand.
func Iterate4D(s Shape, fn func(i, j, k, l int)) {
	Iterate1D(s[0], func(i int) {
		Iterate3D(s[1:], func(j, k, l int) {
			fn(i, j, k, l)
		})
	})
}
