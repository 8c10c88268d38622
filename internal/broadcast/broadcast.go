// Package broadcast aligns parallel argument sequences of different
// lengths by cyclic recycling, the way vectorized string operations
// pair each subject element with a pattern, replacement, or bound.
package broadcast

// Alignment describes how a set of parallel sequences iterate together.
// The common length is the maximum input length; shorter sequences are
// reused cyclically via Index. No sequence is ever materialized.
type Alignment struct {
	Length  int   // Common iteration length
	lengths []int // Original per-sequence lengths
	Partial bool  // Some non-empty length does not divide Length
}

// Align computes the common iteration length for the given sequence
// lengths. Any zero length collapses the whole alignment to zero: an
// empty argument means there is no data to iterate.
//
// When a non-empty sequence's length does not evenly divide the common
// length, recycling is partial. The operation still proceeds; Partial is
// set so the caller can surface a warning.
func Align(lengths ...int) Alignment {
	a := Alignment{lengths: lengths}
	for _, n := range lengths {
		if n == 0 {
			return Alignment{lengths: lengths}
		}
		if n > a.Length {
			a.Length = n
		}
	}
	for _, n := range lengths {
		if n > 0 && a.Length%n != 0 {
			a.Partial = true
			break
		}
	}
	return a
}

// Index maps iteration position i to the element index of sequence seq.
// Recycling is modular reuse, not duplication.
func (a Alignment) Index(seq, i int) int {
	n := a.lengths[seq]
	if n == 0 {
		return 0
	}
	return i % n
}
