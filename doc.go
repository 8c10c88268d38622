// Package strvec provides vectorized string pattern matching and
// transformation.
//
// strvec operates on vectors of string values: every operation applies
// element-wise across one or more parallel argument sequences, recycling
// shorter sequences to the length of the longest and collapsing the
// per-element results into the simplest faithful representation.
//
// # Quick Start
//
// Extract every digit run from a vector of strings:
//
//	res, err := strvec.ExtractAll(
//	    strvec.Strings("a22bc1d", "ab3453cd46"),
//	    strvec.Pats(`\d+`), nil)
//	// res.Nested() = [["22" "1"] ["3453" "46"]]
//
// Bidirectional substring indexing, counted from either end:
//
//	res, err := strvec.Substr(strvec.Strings("hello"), []int{-3}, []int{-1}, nil)
//	// res.Nested() = [["llo"]]
//
// # Patterns
//
// A [Pattern] is either literal text or an expression over a small
// pattern language: the metacharacters . \ | ( ) [ { $ * + ?, escape
// classes such as \d and \s, bracket expressions, named POSIX classes
// such as [[:alpha:]], and the quantifiers * + ? {n} {n,} {n,m}.
// Case sensitivity is fixed at compile time on the Pattern, never a
// per-call toggle. For repeated use outside a single batch, [Compile]
// produces a reusable [Matcher].
//
// # Missing Values
//
// The missing value [NA] propagates: any operation touching a missing
// element yields a missing result, never an error, so a batch never
// aborts because of one element's condition.
//
// # Positions
//
// Positions are 1-based. Positive positions count from the start,
// negative from the end (-1 is the last character). Out-of-range
// positions clamp to the string's boundaries unless
// [Config.StrictBounds] is set.
//
// # Result Shapes
//
// Operations whose elements can produce several values return a
// [Result] tagged with the inferred [Shape]: Flat when every element
// produced exactly one value, Table when all elements produced the same
// number (>1) of values, and Nested otherwise. The nested form is
// always available and the flatter forms re-expand to it losslessly.
//
// # Error Handling
//
// Errors surface as specific types:
//   - [SyntaxError]: a malformed pattern specification
//   - [BoundsError]: an out-of-range position in strict bounds mode
//
// Non-fatal conditions, such as recycling a sequence whose length does
// not evenly divide the batch length, are reported as [Warning] values
// on the Result rather than raised.
//
// # Thread Safety
//
// All values are immutable and every operation is free of shared
// mutable state. Compiled [Matcher] objects are safe for concurrent
// use, and [Config.Workers] spreads a batch across goroutines with
// results identical to sequential execution.
package strvec

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'strvec'
func tracer() tracing.Trace {
	return tracing.Select("strvec")
}
