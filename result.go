// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb

import (
	"fmt"

	"go4.org/mem"
)

// A Result is the outcome of applying a parser to an input. A successful
// result carries a value and the unconsumed remainder of the input; a failed
// result carries nothing. The zero Result is a failure.
type Result[T any] struct {
	value T
	rest  mem.RO
	ok    bool
}

// Match constructs a successful result with the given value and remainder.
func Match[T any](value T, rest mem.RO) Result[T] {
	return Result[T]{value: value, rest: rest, ok: true}
}

// NoMatch returns a failed result.
func NoMatch[T any]() Result[T] { return Result[T]{} }

// OK reports whether r is a successful result.
func (r Result[T]) OK() bool { return r.ok }

// Value returns the value of r, or a zero value if r is a failure.
func (r Result[T]) Value() T { return r.value }

// Rest returns the unconsumed remainder of the input. It is empty if r is a
// failure.
func (r Result[T]) Rest() mem.RO { return r.rest }

// Remaining returns a copy of the unconsumed remainder as a string.
func (r Result[T]) Remaining() string { return r.rest.StringCopy() }

// Get returns the value and remainder of r, and reports whether r is a
// successful result.
func (r Result[T]) Get() (T, mem.RO, bool) { return r.value, r.rest, r.ok }

func (r Result[T]) String() string {
	if !r.ok {
		return "no match"
	}
	return fmt.Sprintf("match(%v, rest=%q)", r.value, r.rest.StringCopy())
}
