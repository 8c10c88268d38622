// Package pattern compiles search specifications into executable
// matchers.
//
// A specification is either literal text (every metacharacter ordinary)
// or a pattern expression over the supported subset: the metacharacters
// . \ | ( ) [ { $ * + ? and the ^ anchor, escape classes \d \D \s \S
// \w \W, bracket expressions with negation and ranges, named POSIX
// classes such as [[:alpha:]], and the quantifiers * + ? {n} {n,} {n,m}.
// The compiler validates the specification against this subset and hands
// the vetted pattern to coregex for execution with leftmost-longest
// matching. Compiled matchers are reusable across many subject strings.
package pattern

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'strvec'
func tracer() tracing.Trace {
	return tracing.Select("strvec")
}
