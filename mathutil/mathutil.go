// Copyright 2026 The Shapekit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mathutil provides the public API for the scalar math and slice
// helpers used alongside the shape core.
package mathutil

import (
	"cmp"

	"github.com/shapekit/shapekit/internal/mathutil"
)

// Clamp limits v to the range [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return mathutil.Clamp(v, lo, hi)
}

// Lerp linearly interpolates between a and b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return mathutil.Lerp(a, b, t)
}

// Bezier evaluates a cubic Bezier curve with control points p0..p3 at t.
func Bezier(p0, p1, p2, p3, t float64) float64 {
	return mathutil.Bezier(p0, p1, p2, p3, t)
}

// Mean returns the arithmetic mean of vs, 0 for an empty slice.
func Mean(vs []float64) float64 {
	return mathutil.Mean(vs)
}

// Factorial returns n! for n >= 0. It panics for negative n.
func Factorial(n int) int64 {
	return mathutil.Factorial(n)
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float64) bool {
	return mathutil.ApproxEqual(a, b, eps)
}

// Swap exchanges the elements at indices i and j in place.
func Swap[E any](s []E, i, j int) {
	mathutil.Swap(s, i, j)
}
