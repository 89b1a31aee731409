// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package pcomb

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous range of an input, as byte offsets.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Pos, s.End) }

// A LineCol describes the line number and column offset of a location in an
// input.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes a span of an input together with the line and column
// of its endpoints.
type Location struct {
	Span
	First, Last LineCol
}

func (loc Location) String() string {
	if loc.First.Line == loc.Last.Line {
		return fmt.Sprintf("%s-%d", loc.First, loc.Last.Column)
	}
	return fmt.Sprintf("%s-%s", loc.First, loc.Last)
}

// Locate returns the line and column of the given byte offset in input.
// Offsets outside the input are clamped to its bounds.
func Locate(input mem.RO, offset int) LineCol {
	offset = max(0, min(offset, input.Len()))
	lc := LineCol{Line: 1}
	for {
		i := mem.IndexByte(input.SliceTo(offset), '\n')
		if i < 0 {
			break
		}
		lc.Line++
		input = input.SliceFrom(i + 1)
		offset -= i + 1
	}
	lc.Column = offset
	return lc
}

// locateSpan returns the complete location of sp in input.
func locateSpan(input mem.RO, sp Span) Location {
	return Location{
		Span:  sp,
		First: Locate(input, sp.Pos),
		Last:  Locate(input, sp.End),
	}
}
