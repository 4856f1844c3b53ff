// Copyright 2026 The Shapekit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package signal provides the public API for the reactive value cell.
//
// A Signal holds a value and notifies subscribers synchronously on every
// assignment:
//
//	dims := signal.New(shape.Shape{2, 3})
//	unsub := dims.Subscribe(func(s shape.Shape) { recompute(s) })
//	dims.Set(shape.Shape{4, 3}) // recompute runs before Set returns
//	unsub()
package signal

import (
	"github.com/shapekit/shapekit/internal/signal"
)

// Signal holds a value of type T and notifies subscribers synchronously,
// in subscription order, on every Set. It is not goroutine-safe.
type Signal[T any] = signal.Signal[T]

// New creates a signal holding the initial value. No notification is
// delivered for the initial value.
func New[T any](initial T) *Signal[T] {
	return signal.New(initial)
}
