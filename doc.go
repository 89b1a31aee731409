// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package pcomb implements a small library of parser combinators.
//
// # Parsers
//
// A Parser consumes a prefix of its input and returns a Result. A successful
// result carries a typed value and the unconsumed remainder of the input,
// which is always a suffix of the input; a failed result carries nothing:
//
//	r := pcomb.Parse(pcomb.Literal("null"), "nullx")
//	if v, rest, ok := r.Get(); ok {
//	   log.Printf("Matched %q, remaining %q", v, rest.StringCopy())
//	}
//
// Inputs are read-only views (mem.RO) of a string or byte slice, so parsing
// never copies the input. Characters are decoded as UTF-8 runes.
//
// Parsers do not retain state between calls, and it is safe to use the same
// parser concurrently from multiple goroutines.
//
// # Primitives
//
// The primitive parsers match a single rune (Space, Digit, Character,
// NotCharacter, Satisfy) or a fixed string (Literal).
//
// # Combinators
//
// Combinators build larger parsers from smaller ones:
//
//	Combinator    | Description
//	------------- | ------------------------------------------------------
//	Many          | zero or more repetitions, never fails
//	OneOf, Alt    | ordered alternation, first match wins
//	Combine, Seq  | ordered sequence, fails if any element fails
//	Map           | transform the value of a successful match
//	Consumed      | yield the input consumed by a successful match
//	Skip          | match one parser, then another, keeping the second value
//
// None of the combinators recurse on the length of the input, so long inputs
// do not exhaust the stack.
//
// # Complete inputs
//
// To parse an entire input, use Run. Run reports a *SyntaxError if the parser
// fails, or if it does not consume the whole input:
//
//	v, err := pcomb.Run(grammar.JSON, input)
//	if errors.Is(err, pcomb.ErrExtraInput) {
//	   log.Printf("Trailing data: %v", err)
//	}
package pcomb
