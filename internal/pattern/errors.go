package pattern

import "fmt"

// SyntaxError reports a malformed pattern specification: unbalanced
// brackets or braces, an unrecognized named class, a malformed
// quantifier. It is fatal to the single Compile call that produced it
// and leaves the compiler usable for subsequent calls.
type SyntaxError struct {
	Pos     int    // Byte offset into the specification
	Message string // Human-readable error message
}

// Error returns a formatted error message with the offending position.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pattern syntax error at offset %d: %s", e.Pos, e.Message)
}

// errorf creates a SyntaxError at the given position with formatted message.
func errorf(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
