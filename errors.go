package strvec

import "fmt"

// SyntaxError reports a malformed pattern specification: unbalanced
// brackets or braces, an unknown POSIX class, a malformed quantifier.
// It is fatal to the single compile that produced it and leaves the
// compiler usable for subsequent calls.
type SyntaxError struct {
	Pos     int    // Byte offset into the pattern text
	Message string // Error description
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pattern syntax error at offset %d: %s", e.Pos, e.Message)
}

// BoundsError reports a position that does not address an existing
// character. It is returned only in strict bounds mode; the default
// behavior clamps out-of-range positions silently.
type BoundsError struct {
	Pos    int // The offending position argument
	Length int // Rune length of the subject string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("position %d out of range for string of length %d", e.Pos, e.Length)
}

// Warning is a reported, non-fatal condition of a batch operation. The
// operation still completes; warnings accumulate on the result.
type Warning interface {
	Warning() string
}

// PartialRecycleWarning reports a broadcast where a recycled sequence's
// length does not evenly divide the common batch length. The operation
// proceeds with modular reuse.
type PartialRecycleWarning struct {
	Op string // The operation that recycled unevenly
}

func (w *PartialRecycleWarning) Warning() string {
	return fmt.Sprintf("%s: longer argument length is not a multiple of shorter argument length", w.Op)
}
