// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

var (
	// ErrNoMatch is reported by Run when the parser does not match its input.
	ErrNoMatch = errors.New("no match")

	// ErrExtraInput is reported by Run when the parser matched, but did not
	// consume the entire input.
	ErrExtraInput = errors.New("extra input after value")
)

// A SyntaxError reports a failure to parse a complete input.  The Location
// spans the portion of the input that was not consumed. Err is either
// ErrNoMatch or ErrExtraInput.
type SyntaxError struct {
	Location Location
	Err      error
}

// Offset returns the byte offset at which the error occurred.
func (s *SyntaxError) Offset() int { return s.Location.Pos }

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %v (offset %d)", s.Location.First, s.Err, s.Location.Pos)
}

func (s *SyntaxError) Unwrap() error { return s.Err }

// Run applies p to s and requires it to consume all of s. If p does not
// match, Run reports a *SyntaxError wrapping ErrNoMatch. If p matches but
// leaves input unconsumed, Run returns the value along with a *SyntaxError
// wrapping ErrExtraInput.
func Run[T any](p Parser[T], s string) (T, error) { return run(p, mem.S(s)) }

// RunBytes behaves as Run, but parses the contents of b.
func RunBytes[T any](p Parser[T], b []byte) (T, error) { return run(p, mem.B(b)) }

// MustRun behaves as Run, but panics if p does not consume all of s.
func MustRun[T any](p Parser[T], s string) T {
	v, err := Run(p, s)
	if err != nil {
		panic(fmt.Sprintf("parse %q: %v", s, err))
	}
	return v
}

func run[T any](p Parser[T], in mem.RO) (T, error) {
	v, rest, ok := p.Parse(in).Get()
	if !ok {
		var zero T
		return zero, &SyntaxError{
			Location: locateSpan(in, Span{Pos: 0, End: in.Len()}),
			Err:      ErrNoMatch,
		}
	} else if rest.Len() != 0 {
		pos := in.Len() - rest.Len()
		return v, &SyntaxError{
			Location: locateSpan(in, Span{Pos: pos, End: in.Len()}),
			Err:      ErrExtraInput,
		}
	}
	return v, nil
}
