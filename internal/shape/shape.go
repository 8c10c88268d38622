// Package shape decides what representation a batch of per-element
// results collapses into. The decision is a pure function of the
// per-element result lengths; the contents of the results are never
// consulted, so two batches with the same length profile always infer
// the same shape.
package shape

// Shape tags the representation of a batch of per-element results.
type Shape uint8

const (
	// Flat: every element produced exactly one value; the batch is a
	// single sequence, one value per input element.
	Flat Shape = iota

	// Table: every element produced the same number of values, more
	// than one; the batch is a rectangular grid.
	Table

	// Nested: mixed lengths, empty results, or a mixture of scalars
	// and sequences; the batch stays a sequence of sequences.
	Nested
)

// String returns a string representation of the shape.
func (s Shape) String() string {
	switch s {
	case Flat:
		return "flat"
	case Table:
		return "table"
	case Nested:
		return "nested"
	default:
		return "unknown"
	}
}

// Infer decides the shape for the given per-element result lengths.
// An empty batch is Flat: a sequence with no elements.
func Infer(lengths []int) Shape {
	if len(lengths) == 0 {
		return Flat
	}
	common := lengths[0]
	uniform := true
	for _, n := range lengths[1:] {
		if n != common {
			uniform = false
			break
		}
	}
	switch {
	case uniform && common == 1:
		return Flat
	case uniform && common > 1:
		return Table
	default:
		return Nested
	}
}
