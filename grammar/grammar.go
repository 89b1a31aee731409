// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package grammar defines a minimal grammar of JSON-like values built from
// the combinators of package pcomb.
//
// The grammar covers quoted strings without escape sequences, non-negative
// decimal integers, and the constant null:
//
//	  json = string | number | null
//	string = '"' { any rune except '"' } '"'
//	number = digit { digit }
//	  null = "null"
//
// Booleans, arrays, and objects are not supported.
package grammar

import (
	"github.com/creachadair/pcomb"
	"github.com/creachadair/pcomb/ast"
	"go4.org/mem"
)

var (
	digits = pcomb.Consumed(pcomb.Many(pcomb.Digit))
	quote  = pcomb.Character('"')
	body   = pcomb.Consumed(pcomb.Many(pcomb.NotCharacter('"')))
)

// Number matches a sequence of one or more decimal digits and yields its
// integer value. It fails if there are no digits, or if the value does not
// fit in an int64.
var Number pcomb.Parser[int64] = pcomb.Func[int64](func(in mem.RO) pcomb.Result[int64] {
	text, rest, _ := digits.Parse(in).Get()
	if text.Len() == 0 {
		return pcomb.NoMatch[int64]()
	}
	v, err := mem.ParseInt(text, 10, 64)
	if err != nil {
		return pcomb.NoMatch[int64]()
	}
	return pcomb.Match(v, rest)
})

// Null matches the literal "null" and yields ast.Null.
var Null = pcomb.Map(pcomb.Literal("null"), func(string) ast.NullValue { return ast.Null })

// String matches a double-quoted string and yields the text between the
// quotation marks. There are no escape sequences: the first '"' after the
// opening mark ends the string.
var String pcomb.Parser[string] = pcomb.Func[string](func(in mem.RO) pcomb.Result[string] {
	_, rest, ok := quote.Parse(in).Get()
	if !ok {
		return pcomb.NoMatch[string]()
	}
	text, rest, _ := body.Parse(rest).Get()
	if _, rest, ok = quote.Parse(rest).Get(); !ok {
		return pcomb.NoMatch[string]()
	}
	return pcomb.Match(text.StringCopy(), rest)
})

// JSON matches a String, Number, or Null, tried in that order, and yields
// the corresponding ast.Value.
var JSON = pcomb.OneOf(
	pcomb.Map(String, func(s string) ast.Value { return ast.String(s) }),
	pcomb.Map(Number, func(z int64) ast.Value { return ast.Int(z) }),
	pcomb.Map(Null, func(n ast.NullValue) ast.Value { return n }),
)
