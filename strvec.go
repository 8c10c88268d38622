package strvec

import (
	"github.com/kolkov/strvec/internal/broadcast"
	"github.com/kolkov/strvec/internal/pattern"
)

// Version is the strvec version string.
const Version = "0.1.0"

// compileMatchers compiles every pattern of a batch up front through a
// batch-scoped cache, so a recycled pattern compiles once and a syntax
// error surfaces before any element is processed.
func compileMatchers(pats []Pattern) ([]*pattern.Matcher, error) {
	cache := pattern.NewCache()
	ms := make([]*pattern.Matcher, len(pats))
	for i, p := range pats {
		m, err := cache.Get(p.Text, pattern.Opts{Literal: p.Literal, FoldCase: p.FoldCase})
		if err != nil {
			return nil, publicErr(err)
		}
		ms[i] = m
	}
	return ms, nil
}

// Detect reports, per element, whether the aligned pattern matches.
// Missing subjects yield BoolNA.
func Detect(v []Value, pats []Pattern, cfg *Config) ([]Bool, []Warning, error) {
	cfg = defaults(cfg)
	ms, err := compileMatchers(pats)
	if err != nil {
		return nil, nil, err
	}

	a := broadcast.Align(len(v), len(ms))
	out := make([]Bool, a.Length)
	forEach(cfg.Workers, a.Length, func(i int) {
		s := v[a.Index(0, i)]
		switch {
		case s.IsNA():
			out[i] = BoolNA
		case ms[a.Index(1, i)].Detect(s.Text()):
			out[i] = True
		default:
			out[i] = False
		}
	})
	return out, recycled("detect", a, cfg), nil
}

// Count returns, per element, the number of non-overlapping matches of
// the aligned pattern. Missing subjects count zero.
func Count(v []Value, pats []Pattern, cfg *Config) ([]int, []Warning, error) {
	cfg = defaults(cfg)
	ms, err := compileMatchers(pats)
	if err != nil {
		return nil, nil, err
	}

	a := broadcast.Align(len(v), len(ms))
	out := make([]int, a.Length)
	forEach(cfg.Workers, a.Length, func(i int) {
		s := v[a.Index(0, i)]
		if !s.IsNA() {
			out[i] = ms[a.Index(1, i)].Count(s.Text())
		}
	})
	return out, recycled("count", a, cfg), nil
}

// LocateFirst returns, per element, the span of the first match of the
// aligned pattern, without the matched text.
func LocateFirst(v []Value, pats []Pattern, cfg *Config) ([]Loc, []Warning, error) {
	cfg = defaults(cfg)
	ms, err := compileMatchers(pats)
	if err != nil {
		return nil, nil, err
	}

	a := broadcast.Align(len(v), len(ms))
	out := make([]Loc, a.Length)
	forEach(cfg.Workers, a.Length, func(i int) {
		s := v[a.Index(0, i)]
		if s.IsNA() {
			out[i] = Loc{NA: true}
			return
		}
		if m, ok := ms[a.Index(1, i)].FindFirst(s.Text()); ok {
			out[i] = Loc{Span: m.Span, Found: true}
		}
	})
	return out, recycled("locateFirst", a, cfg), nil
}

// LocateAll returns, per element, the spans of every non-overlapping
// match of the aligned pattern. An element with no match (or a missing
// subject) contributes no spans.
func LocateAll(v []Value, pats []Pattern, cfg *Config) ([][]Span, []Warning, error) {
	cfg = defaults(cfg)
	ms, err := compileMatchers(pats)
	if err != nil {
		return nil, nil, err
	}

	a := broadcast.Align(len(v), len(ms))
	out := make([][]Span, a.Length)
	forEach(cfg.Workers, a.Length, func(i int) {
		s := v[a.Index(0, i)]
		if s.IsNA() {
			return
		}
		matches := ms[a.Index(1, i)].FindAll(s.Text())
		spans := make([]Span, len(matches))
		for j, m := range matches {
			spans[j] = m.Span
		}
		out[i] = spans
	})
	return out, recycled("locateAll", a, cfg), nil
}

// ExtractFirst returns, per element, the text of the first match of
// the aligned pattern. An element with no match yields the missing
// value, distinguishing "no match" from a matched empty span.
func ExtractFirst(v []Value, pats []Pattern, cfg *Config) (*Result, error) {
	cfg = defaults(cfg)
	ms, err := compileMatchers(pats)
	if err != nil {
		return nil, err
	}

	a := broadcast.Align(len(v), len(ms))
	elems := make([][]Value, a.Length)
	forEach(cfg.Workers, a.Length, func(i int) {
		s := v[a.Index(0, i)]
		if s.IsNA() {
			elems[i] = []Value{NA()}
			return
		}
		if m, ok := ms[a.Index(1, i)].FindFirst(s.Text()); ok {
			elems[i] = []Value{Str(m.Text)}
		} else {
			elems[i] = []Value{NA()}
		}
	})
	return newResult(elems, recycled("extractFirst", a, cfg)), nil
}

// ExtractAll returns, per element, the texts of every non-overlapping
// match of the aligned pattern. A missing subject yields the
// one-element sequence containing the missing value.
func ExtractAll(v []Value, pats []Pattern, cfg *Config) (*Result, error) {
	cfg = defaults(cfg)
	ms, err := compileMatchers(pats)
	if err != nil {
		return nil, err
	}

	a := broadcast.Align(len(v), len(ms))
	elems := make([][]Value, a.Length)
	forEach(cfg.Workers, a.Length, func(i int) {
		s := v[a.Index(0, i)]
		if s.IsNA() {
			elems[i] = []Value{NA()}
			return
		}
		matches := ms[a.Index(1, i)].FindAll(s.Text())
		vals := make([]Value, len(matches))
		for j, m := range matches {
			vals[j] = Str(m.Text)
		}
		elems[i] = vals
	})
	return newResult(elems, recycled("extractAll", a, cfg)), nil
}

// ReplaceFirst substitutes the first match of the aligned pattern in
// each element with the aligned replacement, taken literally. A missing
// subject or replacement yields a missing result.
func ReplaceFirst(v []Value, pats []Pattern, repl []Value, cfg *Config) (*Result, error) {
	return replace(v, pats, repl, cfg, "replaceFirst", (*pattern.Matcher).ReplaceFirst)
}

// ReplaceAll substitutes every non-overlapping match of the aligned
// pattern in each element with the aligned replacement, taken
// literally. A missing subject or replacement yields a missing result.
func ReplaceAll(v []Value, pats []Pattern, repl []Value, cfg *Config) (*Result, error) {
	return replace(v, pats, repl, cfg, "replaceAll", (*pattern.Matcher).ReplaceAll)
}

func replace(v []Value, pats []Pattern, repl []Value, cfg *Config, op string,
	apply func(*pattern.Matcher, string, string) string) (*Result, error) {

	cfg = defaults(cfg)
	ms, err := compileMatchers(pats)
	if err != nil {
		return nil, err
	}

	a := broadcast.Align(len(v), len(ms), len(repl))
	elems := make([][]Value, a.Length)
	forEach(cfg.Workers, a.Length, func(i int) {
		s := v[a.Index(0, i)]
		rp := repl[a.Index(2, i)]
		if s.IsNA() || rp.IsNA() {
			elems[i] = []Value{NA()}
			return
		}
		elems[i] = []Value{Str(apply(ms[a.Index(1, i)], s.Text(), rp.Text()))}
	})
	return newResult(elems, recycled(op, a, cfg)), nil
}

// Split slices each element into the substrings between matches of the
// aligned separator pattern. A separator that never matches yields the
// whole element as one token; an empty element yields one empty token;
// a missing subject yields the one-element sequence containing the
// missing value.
func Split(v []Value, pats []Pattern, cfg *Config) (*Result, error) {
	cfg = defaults(cfg)
	ms, err := compileMatchers(pats)
	if err != nil {
		return nil, err
	}

	a := broadcast.Align(len(v), len(ms))
	elems := make([][]Value, a.Length)
	forEach(cfg.Workers, a.Length, func(i int) {
		s := v[a.Index(0, i)]
		if s.IsNA() {
			elems[i] = []Value{NA()}
			return
		}
		tokens := ms[a.Index(1, i)].Split(s.Text())
		vals := make([]Value, len(tokens))
		for j, tok := range tokens {
			vals[j] = Str(tok)
		}
		elems[i] = vals
	})
	return newResult(elems, recycled("split", a, cfg)), nil
}
