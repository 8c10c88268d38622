package strvec

import (
	"github.com/kolkov/strvec/internal/broadcast"
	"github.com/kolkov/strvec/internal/index"
)

// omitted substitutes for a nil bounds vector: a single omitted
// position recycled across the whole batch.
var omitted = []int{index.None}

// Substr extracts one bounded span from each element of v. The starts
// and ends vectors are recycled against the subjects; nil means the
// bound is omitted (start of string, end of string respectively).
// Missing subjects yield missing results. Out-of-range bounds clamp
// unless cfg.StrictBounds is set.
func Substr(v []Value, starts, ends []int, cfg *Config) (*Result, error) {
	cfg = defaults(cfg)
	starts, ends = bounds(starts), bounds(ends)

	a := broadcast.Align(len(v), len(starts), len(ends))
	if err := checkBounds(cfg, v, a, starts, ends); err != nil {
		return nil, err
	}

	elems := make([][]Value, a.Length)
	forEach(cfg.Workers, a.Length, func(i int) {
		s := v[a.Index(0, i)]
		if s.IsNA() {
			elems[i] = []Value{NA()}
			return
		}
		r := []rune(s.Text())
		sp := index.ResolveSpan(len(r), starts[a.Index(1, i)], ends[a.Index(2, i)])
		elems[i] = []Value{Str(string(r[sp.Start:sp.End]))}
	})
	return newResult(elems, recycled("substr", a, cfg)), nil
}

// SubstrReplace overwrites one bounded span in each element of v with
// the aligned replacement, preserving everything outside the span. The
// replacement may differ in length from the span it replaces. A missing
// subject or replacement yields a missing result.
func SubstrReplace(v []Value, starts, ends []int, repl []Value, cfg *Config) (*Result, error) {
	cfg = defaults(cfg)
	starts, ends = bounds(starts), bounds(ends)

	a := broadcast.Align(len(v), len(starts), len(ends), len(repl))
	if err := checkBounds(cfg, v, a, starts, ends); err != nil {
		return nil, err
	}

	elems := make([][]Value, a.Length)
	forEach(cfg.Workers, a.Length, func(i int) {
		s := v[a.Index(0, i)]
		rp := repl[a.Index(3, i)]
		if s.IsNA() || rp.IsNA() {
			elems[i] = []Value{NA()}
			return
		}
		r := []rune(s.Text())
		sp := index.ResolveSpan(len(r), starts[a.Index(1, i)], ends[a.Index(2, i)])
		elems[i] = []Value{Str(string(r[:sp.Start]) + rp.Text() + string(r[sp.End:]))}
	})
	return newResult(elems, recycled("substrReplace", a, cfg)), nil
}

// SubstrAll is the recursive form of Substr: it dices a single string
// into one piece per resolved span. The start and end vectors recycle
// against each other, independently of the string. The result has one
// element per span.
func SubstrAll(s Value, starts, ends []int, cfg *Config) (*Result, error) {
	cfg = defaults(cfg)
	starts, ends = bounds(starts), bounds(ends)

	if s.IsNA() {
		return newResult([][]Value{{NA()}}, nil), nil
	}
	r := []rune(s.Text())
	if cfg.StrictBounds {
		if err := checkSpanBounds(len(r), starts, ends); err != nil {
			return nil, err
		}
	}

	spans, partial := index.ResolveSpans(len(r), starts, ends)
	elems := make([][]Value, len(spans))
	for i, sp := range spans {
		elems[i] = []Value{Str(string(r[sp.Start:sp.End]))}
	}
	var warns []Warning
	if partial {
		warns = warn("substrAll", cfg)
	}
	return newResult(elems, warns), nil
}

// SubstrReplaceAll is the recursive form of SubstrReplace: each
// resolved span is overwritten independently in the original string,
// one result per span.
func SubstrReplaceAll(s Value, starts, ends []int, repl []Value, cfg *Config) (*Result, error) {
	cfg = defaults(cfg)
	starts, ends = bounds(starts), bounds(ends)

	if s.IsNA() {
		return newResult([][]Value{{NA()}}, nil), nil
	}
	r := []rune(s.Text())
	if cfg.StrictBounds {
		if err := checkSpanBounds(len(r), starts, ends); err != nil {
			return nil, err
		}
	}

	spans, partial := index.ResolveSpans(len(r), starts, ends)
	a := broadcast.Align(len(spans), len(repl))
	elems := make([][]Value, a.Length)
	forEach(cfg.Workers, a.Length, func(i int) {
		sp := spans[a.Index(0, i)]
		rp := repl[a.Index(1, i)]
		if rp.IsNA() {
			elems[i] = []Value{NA()}
			return
		}
		elems[i] = []Value{Str(string(r[:sp.Start]) + rp.Text() + string(r[sp.End:]))}
	})
	warns := recycled("substrReplaceAll", a, cfg)
	if partial {
		warns = append(warns, warn("substrReplaceAll", cfg)...)
	}
	return newResult(elems, warns), nil
}

// bounds substitutes the omitted marker for a nil bounds vector.
func bounds(b []int) []int {
	if b == nil {
		return omitted
	}
	return b
}

// checkBounds enforces strict bounds over every aligned subject/bound
// pair before any element is produced.
func checkBounds(cfg *Config, v []Value, a broadcast.Alignment, starts, ends []int) error {
	if !cfg.StrictBounds {
		return nil
	}
	for i := 0; i < a.Length; i++ {
		s := v[a.Index(0, i)]
		if s.IsNA() {
			continue
		}
		n := s.Len()
		if p := starts[a.Index(1, i)]; !index.InRange(n, p) {
			return &BoundsError{Pos: p, Length: n}
		}
		if p := ends[a.Index(2, i)]; !index.InRange(n, p) {
			return &BoundsError{Pos: p, Length: n}
		}
	}
	return nil
}

// checkSpanBounds is the strict check for the single-subject recursive
// forms.
func checkSpanBounds(n int, starts, ends []int) error {
	for _, p := range starts {
		if !index.InRange(n, p) {
			return &BoundsError{Pos: p, Length: n}
		}
	}
	for _, p := range ends {
		if !index.InRange(n, p) {
			return &BoundsError{Pos: p, Length: n}
		}
	}
	return nil
}

// defaults returns a usable config, filling in zero values.
func defaults(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.applyDefaults()
	return cfg
}

// recycled reports a partial-recycle warning for the alignment, if any.
func recycled(op string, a broadcast.Alignment, cfg *Config) []Warning {
	if !a.Partial {
		return nil
	}
	return warn(op, cfg)
}

func warn(op string, cfg *Config) []Warning {
	w := &PartialRecycleWarning{Op: op}
	tracer().Debugf("%s", w.Warning())
	if cfg.Warn != nil {
		cfg.Warn(w)
	}
	return []Warning{w}
}
