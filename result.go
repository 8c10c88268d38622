package strvec

import "github.com/kolkov/strvec/internal/shape"

// Shape tags the representation a batch of per-element results
// collapsed into. It is decided once per batch from the per-element
// result lengths alone, never re-inferred by consumers.
type Shape = shape.Shape

const (
	// Flat: every element produced exactly one value.
	Flat = shape.Flat
	// Table: every element produced the same number (>1) of values.
	Table = shape.Table
	// Nested: mixed lengths, so no collapsing is attempted.
	Nested = shape.Nested
)

// Result is the outcome of a batch operation: one sequence of values
// per input element, the inferred shape of the whole batch, and any
// warnings reported while the batch ran.
//
// The nested form is always available. The flatter accessors succeed
// only when the shape permits and re-expand losslessly: a Flat or Table
// view contains exactly the values of the nested form, in order.
type Result struct {
	shape shape.Shape
	elems [][]Value
	warns []Warning
}

func newResult(elems [][]Value, warns []Warning) *Result {
	lengths := make([]int, len(elems))
	for i, e := range elems {
		lengths[i] = len(e)
	}
	return &Result{shape: shape.Infer(lengths), elems: elems, warns: warns}
}

// Shape returns the inferred representation tag.
func (r *Result) Shape() Shape {
	return r.shape
}

// Len returns the number of input elements the batch processed.
func (r *Result) Len() int {
	return len(r.elems)
}

// Nested returns the per-element result sequences in input order. The
// returned slices are owned by the result; callers must not modify them.
func (r *Result) Nested() [][]Value {
	return r.elems
}

// Flat returns the batch as a single sequence, one value per input
// element. It reports false unless every element produced exactly one
// value.
func (r *Result) Flat() ([]Value, bool) {
	if r.shape != shape.Flat {
		return nil, false
	}
	vs := make([]Value, len(r.elems))
	for i, e := range r.elems {
		vs[i] = e[0]
	}
	return vs, true
}

// Table returns the batch as a rectangular grid, one row per input
// element, and reports false unless every element produced the same
// number (>1) of values.
func (r *Result) Table() ([][]Value, bool) {
	if r.shape != shape.Table {
		return nil, false
	}
	rows := make([][]Value, len(r.elems))
	copy(rows, r.elems)
	return rows, true
}

// Warnings returns the non-fatal conditions reported while the batch
// ran, in detection order.
func (r *Result) Warnings() []Warning {
	return r.warns
}
