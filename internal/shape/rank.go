// Copyright 2026 The Shapekit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package shape

import "strconv"

// Rank identifies how many dimensions a shape has. The model supports
// ranks 1 through 6; there is no rank 0 (scalar) and no rank above 6.
type Rank int

// Supported ranks.
const (
	Rank1 Rank = 1
	Rank2 Rank = 2
	Rank3 Rank = 3
	Rank4 Rank = 4
	Rank5 Rank = 5
	Rank6 Rank = 6
)

// Valid reports whether r is within the supported range [1, 6].
//
// Library entry points assume a valid rank; behavior outside the range is
// undefined. Guard at the boundary where ranks come from untrusted input.
func (r Rank) Valid() bool {
	return r >= Rank1 && r <= Rank6
}

// String returns a human-readable rank name.
func (r Rank) String() string {
	if !r.Valid() {
		return "rank(" + strconv.Itoa(int(r)) + ")"
	}
	return "rank" + strconv.Itoa(int(r))
}
