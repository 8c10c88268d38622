package strvec

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Highlighter renders subject strings with matched spans emphasized,
// for diagnostic inspection of a pattern against sample data. It only
// hands finished strings to the output sink; matching itself stays in
// the engine.
type Highlighter struct {
	// Accent styles the matched spans. Nil renders without emphasis.
	Accent *color.Color
}

// NewHighlighter creates a highlighter with the default accent style.
func NewHighlighter() *Highlighter {
	return &Highlighter{Accent: color.New(color.FgRed, color.Bold)}
}

// Fprint writes each element of v to w, one line per element, with
// every non-overlapping match of m emphasized. Missing elements render
// as "NA".
func (h *Highlighter) Fprint(w io.Writer, v []Value, m *Matcher) error {
	for _, s := range v {
		if s.IsNA() {
			if _, err := fmt.Fprintln(w, "NA"); err != nil {
				return err
			}
			continue
		}
		if err := h.printLine(w, s.Text(), m); err != nil {
			return err
		}
	}
	return nil
}

func (h *Highlighter) printLine(w io.Writer, text string, m *Matcher) error {
	r := []rune(text)
	prev := 0
	for _, mt := range m.FindAll(text) {
		if _, err := io.WriteString(w, string(r[prev:mt.Span.Start])); err != nil {
			return err
		}
		if err := h.accent(w, string(r[mt.Span.Start:mt.Span.End])); err != nil {
			return err
		}
		prev = mt.Span.End
	}
	if _, err := io.WriteString(w, string(r[prev:])); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (h *Highlighter) accent(w io.Writer, s string) error {
	if h.Accent == nil {
		_, err := io.WriteString(w, s)
		return err
	}
	_, err := h.Accent.Fprint(w, s)
	return err
}
