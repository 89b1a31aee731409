// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb

import (
	"go4.org/mem"
)

// A Parser consumes a prefix of its input and reports a Result. On success,
// the remainder of the result is a suffix of the input. Implementations must
// not retain or modify state between calls.
type Parser[T any] interface {
	Parse(mem.RO) Result[T]
}

// Func adapts a plain function to the Parser interface.
type Func[T any] func(mem.RO) Result[T]

// Parse satisfies the Parser interface.
func (f Func[T]) Parse(in mem.RO) Result[T] { return f(in) }

// Parse applies p to the string s.
func Parse[T any](p Parser[T], s string) Result[T] { return p.Parse(mem.S(s)) }

// ParseBytes applies p to the contents of b. The caller must not modify b
// while the result is in use.
func ParseBytes[T any](p Parser[T], b []byte) Result[T] { return p.Parse(mem.B(b)) }

var (
	// Space matches a single space character (U+0020).
	Space = Character(' ')

	// Digit matches a single decimal digit 0-9.
	Digit = Satisfy(isDigit)

	// Spaces matches zero or more space characters. It never fails.
	Spaces = Many(Space)
)

// Satisfy returns a parser that consumes a single rune for which f reports
// true. It fails on empty input. Input that is not valid UTF-8 is decoded one
// byte at a time as utf8.RuneError.
func Satisfy(f func(rune) bool) Parser[rune] { return satisfy(f) }

type satisfy func(rune) bool

func (s satisfy) Parse(in mem.RO) Result[rune] {
	if in.Len() == 0 {
		return NoMatch[rune]()
	}
	r, n := mem.DecodeRune(in)
	if !s(r) {
		return NoMatch[rune]()
	}
	return Match(r, in.SliceFrom(n))
}

// Character returns a parser that consumes a single rune equal to r.
func Character(r rune) Parser[rune] {
	return Satisfy(func(c rune) bool { return c == r })
}

// NotCharacter returns a parser that consumes a single rune not equal to r.
// It fails on empty input.
func NotCharacter(r rune) Parser[rune] {
	return Satisfy(func(c rune) bool { return c != r })
}

// Literal returns a parser that matches the exact string s at the front of
// its input, and yields s. An empty s matches every input without consuming
// anything.
func Literal(s string) Parser[string] { return literal(s) }

type literal string

func (l literal) Parse(in mem.RO) Result[string] {
	if !mem.HasPrefix(in, mem.S(string(l))) {
		return NoMatch[string]()
	}
	return Match(string(l), in.SliceFrom(len(l)))
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
