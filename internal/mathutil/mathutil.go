// Copyright 2026 The Shapekit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mathutil provides small scalar math and slice helpers used
// alongside the shape core.
package mathutil

import (
	"cmp"
	"math"
)

// Clamp limits v to the range [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Bezier evaluates a cubic Bezier curve with control points p0..p3 at t.
func Bezier(p0, p1, p2, p3, t float64) float64 {
	u := 1 - t
	return u*u*u*p0 + 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t*p3
}

// Mean returns the arithmetic mean of vs, 0 for an empty slice.
func Mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// Factorial returns n! for n >= 0. It panics for negative n.
// Results overflow int64 past n = 20.
func Factorial(n int) int64 {
	if n < 0 {
		panic("mathutil: factorial of negative number")
	}
	result := int64(1)
	for i := 2; i <= n; i++ {
		result *= int64(i)
	}
	return result
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Swap exchanges the elements at indices i and j in place.
func Swap[E any](s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
}
