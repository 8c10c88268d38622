package strvec

import (
	"github.com/kolkov/strvec/internal/index"
	"github.com/kolkov/strvec/internal/types"
)

// Value is one element of a string vector: a present string or the
// distinguished missing marker. Values are immutable.
type Value = types.Value

// NA returns the missing value.
func NA() Value {
	return types.NA()
}

// Str creates a present string value.
func Str(s string) Value {
	return types.Str(s)
}

// Strings builds a vector of present values from plain strings.
func Strings(ss ...string) []Value {
	return types.FromStrings(ss)
}

// Span is a resolved half-open [Start, End) range of rune offsets
// within a string. A zero-length span is valid and denotes an empty
// match or extraction.
type Span = index.Span

// Bool is a three-valued boolean. A detect over a missing subject is
// missing, not false.
type Bool uint8

const (
	False Bool = iota
	True
	BoolNA // Missing subject
)

// String returns a string representation of the boolean.
func (b Bool) String() string {
	switch b {
	case False:
		return "false"
	case True:
		return "true"
	case BoolNA:
		return "NA"
	default:
		return "unknown"
	}
}

// Loc is the located span of a first match. Found false means the
// pattern did not match; NA true means the subject itself was missing.
// A found zero-length span is a real match, distinct from not found.
type Loc struct {
	Span  Span
	Found bool
	NA    bool
}
