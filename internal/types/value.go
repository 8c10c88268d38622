// Package types defines runtime value types for strvec.
package types

import (
	"fmt"
	"unicode/utf8"
)

// Kind represents the type of a string value.
type Kind uint8

const (
	KindNA  Kind = iota // Missing value
	KindStr             // Present string value
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNA:
		return "na"
	case KindStr:
		return "str"
	default:
		return "unknown"
	}
}

// Value represents one element of a string vector: either a present string
// or the distinguished missing marker.
// Uses tagged union pattern for type safety and performance.
// Values are passed by value and immutable once constructed; missingness
// propagates through every operation instead of raising an error.
type Value struct {
	kind Kind
	str  string
}

// Constructors

// NA returns the missing value.
func NA() Value {
	return Value{kind: KindNA}
}

// Str creates a present string value.
func Str(s string) Value {
	return Value{kind: KindStr, str: s}
}

// Accessors

// Kind returns the value's type.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNA returns true if the value is missing.
func (v Value) IsNA() bool {
	return v.kind == KindNA
}

// Text returns the underlying string. For a missing value it returns "";
// callers that must distinguish check IsNA first.
func (v Value) Text() string {
	return v.str
}

// Len returns the length of the value in runes, or 0 for a missing value.
func (v Value) Len() int {
	return utf8.RuneCountInString(v.str)
}

// Equal reports whether two values are the same: both missing, or both
// present with equal text.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	return v.kind == KindNA || v.str == w.str
}

// String returns a debug representation of the value.
func (v Value) String() string {
	if v.kind == KindNA {
		return "NA()"
	}
	return fmt.Sprintf("Str(%q)", v.str)
}

// Vector helpers

// FromStrings converts plain strings to present values.
func FromStrings(ss []string) []Value {
	vs := make([]Value, len(ss))
	for i, s := range ss {
		vs[i] = Str(s)
	}
	return vs
}

// ToStrings converts values to plain strings. Missing values become "",
// so this is for display paths that have already handled missingness.
func ToStrings(vs []Value) []string {
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = v.str
	}
	return ss
}
