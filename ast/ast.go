// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the values produced by the grammar package.
package ast

import (
	"fmt"
	"strconv"

	"github.com/creachadair/pcomb/internal/escape"
	"go4.org/mem"
)

// A Value is a parsed value. The concrete type is one of String, Int, or
// NullValue.
type Value interface {
	// JSON renders the value as JSON source text.
	JSON() string
}

// A String is a string value.
type String string

// JSON renders the string as a quoted JSON string.
func (s String) JSON() string { return escape.Quote(mem.S(string(s))) }

func (s String) String() string { return string(s) }

// Len returns the length of the string in bytes.
func (s String) Len() int { return len(s) }

// An Int is an integer value.
type Int int64

// JSON renders the integer in decimal.
func (z Int) JSON() string { return strconv.FormatInt(int64(z), 10) }

func (z Int) String() string { return z.JSON() }

// NullValue is the type of the Null constant.
type NullValue struct{}

// Null is the null constant.
var Null NullValue

// JSON renders the constant null.
func (NullValue) JSON() string { return "null" }

func (NullValue) String() string { return "null" }

// ToValue converts a Go value to an equivalent Value. It panics if v does not
// have one of the types string, int, int64, nil, or Value.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case string:
		return String(t)
	case int:
		return Int(t)
	case int64:
		return Int(t)
	case Value:
		return t
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
