package pattern

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/coregex"

	"github.com/kolkov/strvec/internal/index"
)

// foldPrefix enables case-insensitive matching in the execution engine.
const foldPrefix = "(?i)"

// Opts are the compile-time options of a matcher. Case sensitivity is
// fixed at compile time; there is no per-call override.
type Opts struct {
	// Literal treats every character of the specification as ordinary
	// text, with no metacharacters.
	Literal bool

	// FoldCase makes matching case-insensitive.
	FoldCase bool
}

// Match is one occurrence of a pattern in a subject string: its span in
// rune offsets and the matched text. "No match" is represented by the
// absence of a Match, never by a zero-length one.
type Match struct {
	Span index.Span
	Text string
}

// Matcher is a compiled pattern specification, reusable across many
// subject strings and safe for concurrent use.
type Matcher struct {
	spec string
	opts Opts
	re   *coregex.Regexp
}

// Compile validates spec against the supported subset and builds an
// executable matcher. Matching is leftmost-longest: a quantifier
// consumes the longest span consistent with finding a match.
func Compile(spec string, opts Opts) (*Matcher, error) {
	src := spec
	if opts.Literal {
		src = coregex.QuoteMeta(spec)
	} else if err := validate(spec); err != nil {
		return nil, err
	}
	if opts.FoldCase {
		src = foldPrefix + src
	}

	re, err := coregex.Compile(src)
	if err != nil {
		// The validator admits only what the engine accepts, so this
		// indicates a gap between the two; surface it as a syntax error.
		return nil, &SyntaxError{Message: err.Error()}
	}
	re.Longest()

	return &Matcher{spec: spec, opts: opts, re: re}, nil
}

// MustCompile is like Compile but panics on error. It simplifies
// initialization of package-level matchers.
func MustCompile(spec string, opts Opts) *Matcher {
	m, err := Compile(spec, opts)
	if err != nil {
		panic(err)
	}
	return m
}

// Spec returns the original specification text.
func (m *Matcher) Spec() string {
	return m.spec
}

// Opts returns the compile-time options.
func (m *Matcher) Opts() Opts {
	return m.opts
}

// FindFirst returns the first match in s, scanning left to right.
func (m *Matcher) FindFirst(s string) (Match, bool) {
	loc := m.re.FindStringIndex(s)
	if loc == nil {
		return Match{}, false
	}
	start := utf8.RuneCountInString(s[:loc[0]])
	length := utf8.RuneCountInString(s[loc[0]:loc[1]])
	return Match{
		Span: index.Span{Start: start, End: start + length},
		Text: s[loc[0]:loc[1]],
	}, true
}

// FindAll returns every non-overlapping match in s, scanned left to
// right. After a match the scan resumes past it; a zero-length match
// advances by one rune so the scan always terminates.
func (m *Matcher) FindAll(s string) []Match {
	locs := m.re.FindAllStringIndex(s, -1)
	if locs == nil {
		return nil
	}
	matches := make([]Match, len(locs))
	// Byte offsets arrive in ascending order, so rune offsets are
	// recovered in a single pass over s.
	byteOff, runeOff := 0, 0
	for i, loc := range locs {
		runeOff += utf8.RuneCountInString(s[byteOff:loc[0]])
		length := utf8.RuneCountInString(s[loc[0]:loc[1]])
		matches[i] = Match{
			Span: index.Span{Start: runeOff, End: runeOff + length},
			Text: s[loc[0]:loc[1]],
		}
		runeOff += length
		byteOff = loc[1]
	}
	return matches
}

// Detect reports whether s contains a match. Defined via FindFirst so
// the two can never disagree.
func (m *Matcher) Detect(s string) bool {
	_, ok := m.FindFirst(s)
	return ok
}

// Count returns the number of non-overlapping matches in s.
func (m *Matcher) Count(s string) int {
	return m.re.CountString(s, -1)
}

// ReplaceFirst substitutes the first match in s with repl, taken
// literally. Without a match s is returned unchanged.
func (m *Matcher) ReplaceFirst(s, repl string) string {
	loc := m.re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}

// ReplaceAll substitutes every non-overlapping match in s with repl,
// taken literally. The output is spliced in one left-to-right pass over
// the match spans.
func (m *Matcher) ReplaceAll(s, repl string) string {
	locs := m.re.FindAllStringIndex(s, -1)
	if locs == nil {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	prev := 0
	for _, loc := range locs {
		b.WriteString(s[prev:loc[0]])
		b.WriteString(repl)
		prev = loc[1]
	}
	b.WriteString(s[prev:])
	return b.String()
}

// Split slices s into the substrings between separator matches. A
// separator that never matches yields s as the single token; an empty
// subject yields one empty token. A zero-length separator match would
// never advance the scan, so it is treated as an unmatched boundary and
// terminates the split with the remainder as the final token.
func (m *Matcher) Split(s string) []string {
	if s == "" {
		return []string{""}
	}
	var out []string
	rest := s
	for {
		loc := m.re.FindStringIndex(rest)
		if loc == nil || loc[0] == loc[1] {
			return append(out, rest)
		}
		out = append(out, rest[:loc[0]])
		rest = rest[loc[1]:]
	}
}
