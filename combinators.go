// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb

import (
	"slices"

	"go4.org/mem"
)

// Many returns a parser that applies p repeatedly to successive remainders of
// its input, collecting the values in order, until p fails. The remainder is
// the input just before the failing attempt. Many never fails; if p does not
// match at all, the value is an empty slice.
//
// If p succeeds without consuming any input, repetition stops at that point
// and the empty match is not included in the result.
func Many[T any](p Parser[T]) Parser[[]T] { return many[T]{p} }

type many[T any] struct{ p Parser[T] }

func (m many[T]) Parse(in mem.RO) Result[[]T] {
	vs := []T{}
	cur := in
	for {
		v, rest, ok := m.p.Parse(cur).Get()
		if !ok || rest.Len() >= cur.Len() {
			return Match(vs, cur)
		}
		vs = append(vs, v)
		cur = rest
	}
}

// Alt is an ordered alternation of parsers. Each alternative is tried in order
// on the same input, and the result of the first one that succeeds is
// returned. An Alt fails if all its alternatives fail; an empty Alt fails on
// all inputs.
type Alt[T any] []Parser[T]

// OneOf returns an Alt of the given parsers, in order.
func OneOf[T any](ps ...Parser[T]) Alt[T] { return Alt[T](slices.Clone(ps)) }

// Parse satisfies the Parser interface.
func (a Alt[T]) Parse(in mem.RO) Result[T] {
	for _, p := range a {
		if r := p.Parse(in); r.OK() {
			return r
		}
	}
	return NoMatch[T]()
}

// Seq is a sequential composition of parsers. Each parser is applied to the
// remainder left by its predecessor, and the values are collected in order.
// A Seq fails if any of its elements fails, and no partial values are
// reported. An empty Seq matches every input, consuming nothing.
type Seq[T any] []Parser[T]

// Combine returns a Seq of the given parsers, in order.
func Combine[T any](ps ...Parser[T]) Seq[T] { return Seq[T](slices.Clone(ps)) }

// Parse satisfies the Parser interface.
func (s Seq[T]) Parse(in mem.RO) Result[[]T] {
	vs := make([]T, 0, len(s))
	cur := in
	for _, p := range s {
		v, rest, ok := p.Parse(cur).Get()
		if !ok {
			return NoMatch[[]T]()
		}
		vs = append(vs, v)
		cur = rest
	}
	return Match(vs, cur)
}

// Map returns a parser that applies p and, if it succeeds, replaces its value
// with the result of calling f on that value.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return Func[U](func(in mem.RO) Result[U] {
		v, rest, ok := p.Parse(in).Get()
		if !ok {
			return NoMatch[U]()
		}
		return Match(f(v), rest)
	})
}

// Consumed returns a parser that applies p and, if it succeeds, yields the
// portion of the input that p consumed in place of its value.
func Consumed[T any](p Parser[T]) Parser[mem.RO] {
	return Func[mem.RO](func(in mem.RO) Result[mem.RO] {
		_, rest, ok := p.Parse(in).Get()
		if !ok {
			return NoMatch[mem.RO]()
		}
		return Match(in.SliceTo(in.Len()-rest.Len()), rest)
	})
}

// Skip returns a parser that applies skip and then p to the remainder,
// discarding the value of skip. It fails if either parser fails.
func Skip[S, T any](skip Parser[S], p Parser[T]) Parser[T] {
	return Func[T](func(in mem.RO) Result[T] {
		_, rest, ok := skip.Parse(in).Get()
		if !ok {
			return NoMatch[T]()
		}
		return p.Parse(rest)
	})
}
