// Package types defines runtime value types for strvec.
package types

import "testing"

func TestValueConstructors(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"NA", NA(), KindNA},
		{"Str empty", Str(""), KindStr},
		{"Str hello", Str("hello"), KindStr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.v.Kind(), tt.kind)
			}
		})
	}
}

func TestValuePredicates(t *testing.T) {
	if !NA().IsNA() {
		t.Error("NA().IsNA() should be true")
	}
	if Str("").IsNA() {
		t.Error("Str(\"\").IsNA() should be false: empty is not missing")
	}
}

func TestValueText(t *testing.T) {
	if got := Str("abc").Text(); got != "abc" {
		t.Errorf("Text() = %q, want %q", got, "abc")
	}
	if got := NA().Text(); got != "" {
		t.Errorf("NA().Text() = %q, want empty", got)
	}
}

func TestValueLen(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want int
	}{
		{"NA", NA(), 0},
		{"empty", Str(""), 0},
		{"ascii", Str("hello"), 5},
		{"multibyte", Str("héllo"), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"NA == NA", NA(), NA(), true},
		{"NA != empty", NA(), Str(""), false},
		{"same text", Str("x"), Str("x"), true},
		{"different text", Str("x"), Str("y"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromToStrings(t *testing.T) {
	vs := FromStrings([]string{"a", "b"})
	if len(vs) != 2 || vs[0].IsNA() || vs[1].Text() != "b" {
		t.Fatalf("FromStrings gave %v", vs)
	}
	ss := ToStrings(vs)
	if len(ss) != 2 || ss[0] != "a" || ss[1] != "b" {
		t.Fatalf("ToStrings gave %v", ss)
	}
}

func TestValueString(t *testing.T) {
	if got := NA().String(); got != "NA()" {
		t.Errorf("String() = %q", got)
	}
	if got := Str("a").String(); got != `Str("a")` {
		t.Errorf("String() = %q", got)
	}
}
