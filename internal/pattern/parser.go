package pattern

import (
	"unicode"
	"unicode/utf8"
)

// maxRepeat bounds counted quantifiers, matching the execution engine's
// repetition limit.
const maxRepeat = 1000

// posixClasses is the set of recognized named classes usable inside a
// bracket expression as [:name:].
var posixClasses = map[string]bool{
	"alnum": true, "alpha": true, "ascii": true, "blank": true,
	"cntrl": true, "digit": true, "graph": true, "lower": true,
	"print": true, "punct": true, "space": true, "upper": true,
	"word": true, "xdigit": true,
}

// parser validates a pattern specification against the supported
// subset using recursive descent. It consumes the specification rune by
// rune and reports the first violation with its byte offset.
type parser struct {
	src string
	pos int // Current byte offset
}

// validate checks src against the supported pattern subset.
func validate(src string) error {
	p := &parser{src: src}
	if err := p.parseAlternation(); err != nil {
		return err
	}
	if p.pos < len(p.src) {
		// parseAlternation stops only at eof or an unconsumed ')'.
		return errorf(p.pos, "unmatched )")
	}
	return nil
}

// parseAlternation handles the | operator at the current grouping level.
func (p *parser) parseAlternation() error {
	if err := p.parseConcat(); err != nil {
		return err
	}
	for p.peek() == '|' {
		p.next()
		if err := p.parseConcat(); err != nil {
			return err
		}
	}
	return nil
}

// parseConcat handles a run of terms. It tracks whether the previous
// term can take a quantifier: quantifiers bind to the immediately
// preceding atom, so a quantifier with no atom (or stacked on another
// quantifier or an anchor) is malformed.
func (p *parser) parseConcat() error {
	quantifiable := false
	for {
		r := p.peek()
		switch r {
		case eof, '|', ')':
			return nil
		case '*', '+', '?':
			if !quantifiable {
				return errorf(p.pos, "quantifier %q follows nothing it can repeat", r)
			}
			p.next()
			quantifiable = false
		case '{':
			if !quantifiable {
				return errorf(p.pos, "quantifier {…} follows nothing it can repeat")
			}
			if err := p.parseRepeat(); err != nil {
				return err
			}
			quantifiable = false
		case '(':
			open := p.pos
			p.next()
			if err := p.parseAlternation(); err != nil {
				return err
			}
			if p.peek() != ')' {
				return errorf(open, "unbalanced (")
			}
			p.next()
			quantifiable = true
		case '[':
			if err := p.parseClass(); err != nil {
				return err
			}
			quantifiable = true
		case '\\':
			if err := p.parseEscape(); err != nil {
				return err
			}
			quantifiable = true
		case '^', '$':
			p.next()
			quantifiable = false
		default:
			p.next()
			quantifiable = true
		}
	}
}

// parseRepeat validates a counted quantifier: {n}, {n,} or {n,m}.
func (p *parser) parseRepeat() error {
	open := p.pos
	p.next() // consume '{'

	n, ok := p.parseNumber()
	if !ok {
		return errorf(open, "malformed quantifier: expected count after {")
	}
	m := n
	if p.peek() == ',' {
		p.next()
		if p.peek() == '}' {
			m = -1 // {n,} means n or more
		} else {
			if m, ok = p.parseNumber(); !ok {
				return errorf(open, "malformed quantifier: expected upper count after ,")
			}
		}
	}
	if p.peek() != '}' {
		return errorf(open, "unbalanced {")
	}
	p.next()

	if n > maxRepeat || m > maxRepeat {
		return errorf(open, "quantifier count exceeds %d", maxRepeat)
	}
	if m >= 0 && m < n {
		return errorf(open, "malformed quantifier: {%d,%d} has upper bound below lower", n, m)
	}
	return nil
}

// parseNumber reads a decimal count. Returns false if no digit follows.
func (p *parser) parseNumber() (int, bool) {
	start := p.pos
	n := 0
	for {
		r := p.peek()
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > maxRepeat+1 {
			n = maxRepeat + 1 // saturate; range check happens in parseRepeat
		}
		p.next()
	}
	return n, p.pos > start
}

// parseClass validates a bracket expression: optional ^ negation, then
// literal runes, ranges, escape classes, and named POSIX classes, closed
// by ].
func (p *parser) parseClass() error {
	open := p.pos
	p.next() // consume '['
	if p.peek() == '^' {
		p.next()
	}

	empty := true
	var lastLit rune = eof
	for {
		switch r := p.peek(); r {
		case eof:
			return errorf(open, "unbalanced [")
		case ']':
			if empty {
				return errorf(open, "empty character class")
			}
			p.next()
			return nil
		case '[':
			if p.peekAt(1) == ':' {
				if err := p.parsePosixClass(); err != nil {
					return err
				}
				lastLit = eof
			} else {
				p.next() // literal [ inside a class
				lastLit = '['
			}
			empty = false
		case '\\':
			if err := p.parseEscape(); err != nil {
				return err
			}
			lastLit = eof // escape classes cannot anchor a range
			empty = false
		case '-':
			p.next()
			hi := p.peek()
			if hi == ']' || lastLit == eof {
				// leading or trailing - is a literal
				lastLit = '-'
				empty = false
				continue
			}
			if hi == '\\' || hi == '[' {
				return errorf(p.pos, "invalid character class range endpoint")
			}
			p.next()
			if hi < lastLit {
				return errorf(p.pos, "invalid character class range %q-%q", lastLit, hi)
			}
			lastLit = eof
			empty = false
		default:
			p.next()
			lastLit = r
			empty = false
		}
	}
}

// parsePosixClass validates a [:name:] item inside a bracket expression.
func (p *parser) parsePosixClass() error {
	open := p.pos
	p.next() // '['
	p.next() // ':'

	start := p.pos
	for unicode.IsLower(p.peek()) {
		p.next()
	}
	name := p.src[start:p.pos]
	if p.peek() != ':' || p.peekAt(1) != ']' {
		return errorf(open, "malformed POSIX class, expected [:name:]")
	}
	p.next()
	p.next()

	if !posixClasses[name] {
		return errorf(open, "unknown POSIX class [:%s:]", name)
	}
	return nil
}

// parseEscape validates an escape sequence: a class escape (\d \D \s \S
// \w \W), a control escape (\n \t and friends) or an escaped
// punctuation character matching itself literally. Escaping a letter or
// digit outside this set is an error rather than a silent literal.
func (p *parser) parseEscape() error {
	open := p.pos
	p.next() // consume '\'
	r := p.peek()
	if r == eof {
		return errorf(open, "trailing escape")
	}
	switch r {
	case 'd', 'D', 's', 'S', 'w', 'W', 'n', 't', 'r', 'f', 'v', 'a':
		p.next()
		return nil
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return errorf(open, "invalid escape sequence \\%c", r)
	}
	p.next()
	return nil
}

const eof rune = -1

// next consumes and returns the current rune.
func (p *parser) next() rune {
	if p.pos >= len(p.src) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += w
	return r
}

// peek returns the current rune without consuming it.
func (p *parser) peek() rune {
	if p.pos >= len(p.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return r
}

// peekAt returns the rune n runes ahead of the current position.
func (p *parser) peekAt(n int) rune {
	pos := p.pos
	for ; n > 0; n-- {
		if pos >= len(p.src) {
			return eof
		}
		_, w := utf8.DecodeRuneInString(p.src[pos:])
		pos += w
	}
	if pos >= len(p.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(p.src[pos:])
	return r
}
