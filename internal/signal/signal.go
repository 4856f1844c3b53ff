// Copyright 2026 The Shapekit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package signal provides a reactive value cell that notifies
// subscribers synchronously on assignment.
package signal

// Signal holds a value of type T and a set of subscribers. Setting the
// value invokes every subscriber with the new value, synchronously and
// in subscription order, before Set returns.
//
// Signal is not goroutine-safe; concurrent use requires external
// synchronization by the caller.
type Signal[T any] struct {
	value  T
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// New creates a signal holding the initial value. No notification is
// delivered for the initial value.
func New[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	return s.value
}

// Set assigns a new value and notifies every subscriber with it. Every
// assignment notifies, including assignments of an equal value.
func (s *Signal[T]) Set(v T) {
	s.value = v
	for _, sub := range s.subs {
		sub.fn(v)
	}
}

// Subscribe registers fn to be called on every subsequent Set. It returns
// a function that removes the subscription; calling it more than once is
// harmless.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
