package strvec

import (
	"github.com/kolkov/strvec/internal/pattern"
)

// Pattern is a search specification: literal text, or an expression
// over the supported pattern subset. Case sensitivity is part of the
// specification and fixed at compile time.
type Pattern struct {
	// Text is the specification itself.
	Text string

	// Literal treats every character of Text as ordinary text.
	Literal bool

	// FoldCase makes matching case-insensitive.
	FoldCase bool
}

// Pats builds a pattern vector from expression texts. Each spec is
// broadcast against the subject vector by the batch operations.
func Pats(texts ...string) []Pattern {
	ps := make([]Pattern, len(texts))
	for i, t := range texts {
		ps[i] = Pattern{Text: t}
	}
	return ps
}

// Literals builds a pattern vector of literal specifications, with no
// metacharacters.
func Literals(texts ...string) []Pattern {
	ps := make([]Pattern, len(texts))
	for i, t := range texts {
		ps[i] = Pattern{Text: t, Literal: true}
	}
	return ps
}

// Match is one occurrence of a pattern in a subject string: its span in
// rune offsets and the matched text. "No match" is the absence of a
// Match, never a zero-length one.
type Match struct {
	Span Span
	Text string
}

// Matcher is a compiled pattern, reusable across many subject strings
// and batches. It is safe for concurrent use.
type Matcher struct {
	m *pattern.Matcher
}

// Compile builds a reusable matcher from a pattern specification.
// Matching is leftmost-longest: quantifiers consume the longest span
// consistent with finding a match.
//
// Batch operations compile and memoize their pattern arguments
// internally; Compile is for callers that reuse one pattern across
// many separate calls.
func Compile(p Pattern) (*Matcher, error) {
	m, err := pattern.Compile(p.Text, pattern.Opts{Literal: p.Literal, FoldCase: p.FoldCase})
	if err != nil {
		return nil, publicErr(err)
	}
	return &Matcher{m: m}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be
// compiled. It simplifies initialization of package-level matchers.
func MustCompile(p Pattern) *Matcher {
	m, err := Compile(p)
	if err != nil {
		panic(err)
	}
	return m
}

// Spec returns the pattern this matcher was compiled from.
func (m *Matcher) Spec() Pattern {
	opts := m.m.Opts()
	return Pattern{Text: m.m.Spec(), Literal: opts.Literal, FoldCase: opts.FoldCase}
}

// FindFirst returns the first match in s, scanning left to right.
func (m *Matcher) FindFirst(s string) (Match, bool) {
	im, ok := m.m.FindFirst(s)
	if !ok {
		return Match{}, false
	}
	return Match{Span: im.Span, Text: im.Text}, true
}

// FindAll returns every non-overlapping match in s, left to right. A
// zero-length match advances the scan by one rune.
func (m *Matcher) FindAll(s string) []Match {
	ims := m.m.FindAll(s)
	if ims == nil {
		return nil
	}
	ms := make([]Match, len(ims))
	for i, im := range ims {
		ms[i] = Match{Span: im.Span, Text: im.Text}
	}
	return ms
}

// Detect reports whether s contains a match.
func (m *Matcher) Detect(s string) bool {
	return m.m.Detect(s)
}

// Count returns the number of non-overlapping matches in s.
func (m *Matcher) Count(s string) int {
	return m.m.Count(s)
}

// ReplaceFirst substitutes the first match in s with repl, taken
// literally.
func (m *Matcher) ReplaceFirst(s, repl string) string {
	return m.m.ReplaceFirst(s, repl)
}

// ReplaceAll substitutes every non-overlapping match in s with repl,
// taken literally.
func (m *Matcher) ReplaceAll(s, repl string) string {
	return m.m.ReplaceAll(s, repl)
}

// Split slices s into the substrings between separator matches.
func (m *Matcher) Split(s string) []string {
	return m.m.Split(s)
}

// publicErr converts internal compile errors to the public type.
func publicErr(err error) error {
	if se, ok := err.(*pattern.SyntaxError); ok {
		return &SyntaxError{Pos: se.Pos, Message: se.Message}
	}
	return &SyntaxError{Message: err.Error()}
}
