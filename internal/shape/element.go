// Copyright 2026 The Shapekit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package shape

import "fmt"

// Element is one node of a nested numeric array: either a sequence of
// child elements or a scalar number. The zero value is the scalar 0.
type Element struct {
	seq    []Element
	scalar float64
	isSeq  bool
}

// Scalar creates a scalar element.
func Scalar(v float64) Element {
	return Element{scalar: v}
}

// Seq creates a sequence element from its children.
func Seq(elems ...Element) Element {
	return Element{seq: elems, isSeq: true}
}

// IsSeq reports whether the element is a sequence.
func (e Element) IsSeq() bool {
	return e.isSeq
}

// Len returns the number of children of a sequence element, 0 for a scalar.
func (e Element) Len() int {
	return len(e.seq)
}

// At returns the i-th child of a sequence element.
// It panics if e is a scalar or i is out of range.
func (e Element) At(i int) Element {
	if !e.isSeq {
		panic("shape: At called on scalar element")
	}
	return e.seq[i]
}

// Value returns the numeric value of a scalar element, 0 for a sequence.
func (e Element) Value() float64 {
	return e.scalar
}

// FromAny converts a decoded dynamic value into an Element tree.
//
// Sequences are []any (the form encoding/json produces for arrays) and
// scalars are any numeric Go type. Anything else is an error.
func FromAny(v any) (Element, error) {
	switch x := v.(type) {
	case []any:
		elems := make([]Element, len(x))
		for i, child := range x {
			e, err := FromAny(child)
			if err != nil {
				return Element{}, err
			}
			elems[i] = e
		}
		return Seq(elems...), nil
	case float64:
		return Scalar(x), nil
	case float32:
		return Scalar(float64(x)), nil
	case int:
		return Scalar(float64(x)), nil
	case int32:
		return Scalar(float64(x)), nil
	case int64:
		return Scalar(float64(x)), nil
	default:
		return Element{}, fmt.Errorf("unsupported element value %T (want sequence or number)", v)
	}
}

// Infer walks a nested array from the outermost level inward and returns
// one dimension per nesting level: at each level it records the length of
// the current sequence, then descends into its first element, stopping
// when the current value is no longer a sequence.
//
// Only the first-element path is inspected. Ragged nests (sibling
// sequences of differing lengths) are not detected; the result describes
// the first-element path only. An empty outermost sequence yields [0] and
// inference stops there, since there is no first element to descend into.
// A scalar input yields a nil shape.
//
// The caller must keep nesting depth within 1 to 6 if downstream code
// expects a bounded Shape; depth is not checked here.
func Infer(e Element) Shape {
	var s Shape
	for cur := e; cur.IsSeq(); {
		s = append(s, cur.Len())
		if cur.Len() == 0 {
			break
		}
		cur = cur.At(0)
	}
	return s
}
