// Package index resolves caller-facing string positions into absolute
// character offsets.
//
// Positions are 1-based counted from the start when positive and 1-based
// counted from the end when negative (-1 is the last character). Zero and
// out-of-range positions are clamped to the nearest boundary rather than
// rejected; indexing beyond the string silently truncates. All offsets
// are rune offsets: the data model is a sequence of characters, not bytes.
package index

import (
	"math"

	"github.com/kolkov/strvec/internal/broadcast"
)

// None is the sentinel for an omitted position argument. An omitted
// start resolves to the beginning of the string, an omitted end to its
// length.
const None = math.MinInt

// Span is a resolved half-open [Start, End) range of rune offsets,
// 0 <= Start <= End <= length. A zero-length span is valid and denotes
// an empty extraction or an empty match.
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes covered by the span.
func (sp Span) Len() int {
	return sp.End - sp.Start
}

// IsEmpty returns true for a zero-length span.
func (sp Span) IsEmpty() bool {
	return sp.Start == sp.End
}

// ResolveStart converts a start position into an absolute offset in
// [0, length]. None resolves to 0. Positive p resolves to p-1; negative
// p to length+p (so -1 is the offset of the last character). Zero and
// out-of-range positions clamp to the nearest boundary, never reject.
func ResolveStart(length, pos int) int {
	if pos == None {
		return 0
	}
	var off int
	if pos >= 0 {
		off = pos - 1
	} else {
		off = length + pos
	}
	return clamp(off, length)
}

// ResolveEnd converts an inclusive 1-based end position into an
// exclusive absolute offset in [0, length]. None resolves to length.
// Positive p resolves to p (the offset just past the p-th character);
// negative p to length+p+1 (so -1 includes the last character). Zero
// resolves to 0, an empty bound.
func ResolveEnd(length, pos int) int {
	if pos == None {
		return length
	}
	var off int
	if pos >= 0 {
		off = pos
	} else {
		off = length + pos + 1
	}
	return clamp(off, length)
}

// InRange reports whether pos denotes a character that actually exists
// in a string of the given length, i.e. whether resolving it needs no
// clamping. Omitted positions are always in range. Only the strict
// bounds mode consults this; the default mode clamps silently.
func InRange(length, pos int) bool {
	if pos == None {
		return true
	}
	if pos > 0 {
		return pos <= length
	}
	return pos < 0 && -pos <= length
}

// ResolveSpan resolves a start/end pair against one string length,
// guaranteeing Start <= End by collapsing an inverted pair to an empty
// span at the start offset.
func ResolveSpan(length, start, end int) Span {
	sp := Span{Start: ResolveStart(length, start), End: ResolveEnd(length, end)}
	if sp.End < sp.Start {
		sp.End = sp.Start
	}
	return sp
}

// ResolveSpans resolves parallel start and end sequences against one
// string length, recycling the shorter sequence. This is the recursive
// form: one span per aligned pair, letting a single string be diced
// into many pieces in one call. The partial flag reports uneven
// recycling between the two bound sequences.
func ResolveSpans(length int, starts, ends []int) (spans []Span, partial bool) {
	a := broadcast.Align(len(starts), len(ends))
	spans = make([]Span, a.Length)
	for i := range spans {
		spans[i] = ResolveSpan(length, starts[a.Index(0, i)], ends[a.Index(1, i)])
	}
	return spans, a.Partial
}

func clamp(off, length int) int {
	if off < 0 {
		return 0
	}
	if off > length {
		return length
	}
	return off
}
