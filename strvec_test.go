package strvec_test

import (
	"reflect"
	"testing"

	"github.com/kolkov/strvec"
)

func texts(vs []strvec.Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		if v.IsNA() {
			out[i] = "<NA>"
		} else {
			out[i] = v.Text()
		}
	}
	return out
}

func nestedTexts(r *strvec.Result) [][]string {
	out := make([][]string, len(r.Nested()))
	for i, elem := range r.Nested() {
		out[i] = texts(elem)
	}
	return out
}

func TestSubstr(t *testing.T) {
	tests := []struct {
		name         string
		v            []strvec.Value
		starts, ends []int
		want         []string
	}{
		{
			name: "inner span",
			v:    strvec.Strings("hello world"),
			starts: []int{1}, ends: []int{5},
			want: []string{"hello"},
		},
		{
			name: "negative positions count from the end",
			v:    strvec.Strings("hello"),
			starts: []int{-3}, ends: []int{-1},
			want: []string{"llo"},
		},
		{
			name: "omitted bounds take the whole string",
			v:    strvec.Strings("abc"),
			want: []string{"abc"},
		},
		{
			name: "out of range clamps",
			v:    strvec.Strings("abc"),
			starts: []int{-99}, ends: []int{99},
			want: []string{"abc"},
		},
		{
			name: "inverted bounds give empty",
			v:    strvec.Strings("abc"),
			starts: []int{3}, ends: []int{1},
			want: []string{""},
		},
		{
			name: "bounds recycle across subjects",
			v:    strvec.Strings("abcd", "wxyz"),
			starts: []int{2}, ends: []int{3},
			want: []string{"bc", "xy"},
		},
		{
			name: "positions are rune positions",
			v:    strvec.Strings("héllo"),
			starts: []int{2}, ends: []int{3},
			want: []string{"él"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := strvec.Substr(tt.v, tt.starts, tt.ends, nil)
			if err != nil {
				t.Fatalf("Substr failed: %v", err)
			}
			if res.Shape() != strvec.Flat {
				t.Fatalf("Shape = %v, want flat", res.Shape())
			}
			flat, _ := res.Flat()
			if got := texts(flat); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Substr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubstrMissingPropagates(t *testing.T) {
	res, err := strvec.Substr([]strvec.Value{strvec.NA(), strvec.Str("ab")}, []int{1}, []int{1}, nil)
	if err != nil {
		t.Fatalf("Substr failed: %v", err)
	}
	flat, _ := res.Flat()
	if !flat[0].IsNA() {
		t.Error("missing subject should yield missing result")
	}
	if flat[1].Text() != "a" {
		t.Errorf("present subject gave %q, want %q", flat[1].Text(), "a")
	}
}

func TestSubstrStrictBounds(t *testing.T) {
	cfg := &strvec.Config{StrictBounds: true}
	_, err := strvec.Substr(strvec.Strings("abc"), []int{5}, nil, cfg)
	be, ok := err.(*strvec.BoundsError)
	if !ok {
		t.Fatalf("got %v (%T), want *BoundsError", err, err)
	}
	if be.Pos != 5 || be.Length != 3 {
		t.Errorf("BoundsError = %+v, want Pos 5 Length 3", be)
	}

	// Default mode clamps the same call silently.
	if _, err := strvec.Substr(strvec.Strings("abc"), []int{5}, nil, nil); err != nil {
		t.Errorf("default mode should clamp, got %v", err)
	}
}

func TestSubstrReplaceRoundTrip(t *testing.T) {
	// Extracting the replacement's own span out of the rewritten string
	// reproduces the replacement exactly.
	v := strvec.Strings("hello world")
	res, err := strvec.SubstrReplace(v, []int{1}, []int{5}, strvec.Strings("HEY"), nil)
	if err != nil {
		t.Fatalf("SubstrReplace failed: %v", err)
	}
	flat, _ := res.Flat()
	if flat[0].Text() != "HEY world" {
		t.Fatalf("SubstrReplace = %q, want %q", flat[0].Text(), "HEY world")
	}

	back, err := strvec.Substr(flat, []int{1}, []int{3}, nil)
	if err != nil {
		t.Fatalf("Substr failed: %v", err)
	}
	flatBack, _ := back.Flat()
	if flatBack[0].Text() != "HEY" {
		t.Errorf("round trip gave %q, want %q", flatBack[0].Text(), "HEY")
	}
}

func TestSubstrAllDicesOneString(t *testing.T) {
	res, err := strvec.SubstrAll(strvec.Str("2026-08-26"), []int{1, 6, 9}, []int{4, 7, 10}, nil)
	if err != nil {
		t.Fatalf("SubstrAll failed: %v", err)
	}
	flat, ok := res.Flat()
	if !ok {
		t.Fatalf("one result per span should be flat, got %v", res.Shape())
	}
	want := []string{"2026", "08", "26"}
	if got := texts(flat); !reflect.DeepEqual(got, want) {
		t.Errorf("SubstrAll = %q, want %q", got, want)
	}
}

func TestSubstrReplaceAllPerSpan(t *testing.T) {
	res, err := strvec.SubstrReplaceAll(strvec.Str("abcdef"), []int{1, 4}, []int{3, 6}, strvec.Strings("X"), nil)
	if err != nil {
		t.Fatalf("SubstrReplaceAll failed: %v", err)
	}
	flat, _ := res.Flat()
	want := []string{"Xdef", "abcX"}
	if got := texts(flat); !reflect.DeepEqual(got, want) {
		t.Errorf("SubstrReplaceAll = %q, want %q", got, want)
	}
}

func TestDetect(t *testing.T) {
	v := []strvec.Value{strvec.Str("a1"), strvec.Str("bc"), strvec.NA()}
	got, warns, err := strvec.Detect(v, strvec.Pats(`\d`), nil)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
	want := []strvec.Bool{strvec.True, strvec.False, strvec.BoolNA}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Detect = %v, want %v", got, want)
	}
}

func TestPartialRecycleWarning(t *testing.T) {
	var sunk []strvec.Warning
	cfg := &strvec.Config{Warn: func(w strvec.Warning) { sunk = append(sunk, w) }}

	// Three subjects against two patterns: recycling is uneven but the
	// batch still completes.
	got, warns, err := strvec.Detect(
		strvec.Strings("a", "1", "3"),
		strvec.Pats(`[[:alpha:]]`, `[[:digit:]]`), cfg)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	want := []strvec.Bool{strvec.True, strvec.True, strvec.False}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Detect = %v, want %v", got, want)
	}
	if len(warns) != 1 || len(sunk) != 1 {
		t.Fatalf("warnings = %v, sink = %v, want one each", warns, sunk)
	}
	if _, ok := warns[0].(*strvec.PartialRecycleWarning); !ok {
		t.Errorf("warning has type %T, want *PartialRecycleWarning", warns[0])
	}
}

func TestLocateAllDigitRuns(t *testing.T) {
	v := strvec.Strings("abcd", "a22bc1d", "ab3453cd46", "a1bc44d")
	spans, _, err := strvec.LocateAll(v, strvec.Pats(`\d+`), nil)
	if err != nil {
		t.Fatalf("LocateAll failed: %v", err)
	}
	if len(spans[0]) != 0 {
		t.Errorf("element 0 has %d spans, want none", len(spans[0]))
	}
	want := []strvec.Span{{Start: 1, End: 3}, {Start: 5, End: 6}}
	if !reflect.DeepEqual(spans[1], want) {
		t.Errorf("element 1 spans = %+v, want %+v", spans[1], want)
	}
}

func TestExtractAllDigitRuns(t *testing.T) {
	v := strvec.Strings("abcd", "a22bc1d", "ab3453cd46", "a1bc44d")
	res, err := strvec.ExtractAll(v, strvec.Pats(`\d+`), nil)
	if err != nil {
		t.Fatalf("ExtractAll failed: %v", err)
	}
	want := [][]string{{}, {"22", "1"}, {"3453", "46"}, {"1", "44"}}
	if got := nestedTexts(res); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractAll = %q, want %q", got, want)
	}
	if res.Shape() != strvec.Nested {
		t.Errorf("Shape = %v, want nested (element 0 is empty)", res.Shape())
	}
}

func TestExtractFirstDistinguishesNoMatch(t *testing.T) {
	v := []strvec.Value{strvec.Str("ab1"), strvec.Str("cd"), strvec.NA()}
	res, err := strvec.ExtractFirst(v, strvec.Pats(`\d*$`), nil)
	if err != nil {
		t.Fatalf("ExtractFirst failed: %v", err)
	}
	flat, ok := res.Flat()
	if !ok {
		t.Fatalf("ExtractFirst should be flat, got %v", res.Shape())
	}
	// "ab1" matches "1"; "cd" matches the empty span at the end, which
	// is a real match, not a missing result; NA stays missing.
	if flat[0].Text() != "1" {
		t.Errorf("flat[0] = %q, want %q", flat[0].Text(), "1")
	}
	if flat[1].IsNA() || flat[1].Text() != "" {
		t.Errorf("flat[1] = %v, want matched empty string", flat[1])
	}
	if !flat[2].IsNA() {
		t.Error("flat[2] should be missing")
	}
}

func TestExtractFirstNoMatchIsMissing(t *testing.T) {
	res, err := strvec.ExtractFirst(strvec.Strings("abcd"), strvec.Pats(`\d+`), nil)
	if err != nil {
		t.Fatalf("ExtractFirst failed: %v", err)
	}
	flat, _ := res.Flat()
	if !flat[0].IsNA() {
		t.Error("no match should yield the missing value, not empty string")
	}
}

func TestReplaceAllSentence(t *testing.T) {
	v := strvec.Strings("Tomorrow I plzn do lezrn zbout dexduzl znzlysis.")
	step, err := strvec.ReplaceAll(v, strvec.Pats("d"), strvec.Strings("t"), nil)
	if err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	flat, _ := step.Flat()
	step, err = strvec.ReplaceAll(flat, strvec.Pats("z"), strvec.Strings("a"), nil)
	if err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	flat, _ = step.Flat()
	want := "Tomorrow I plan to learn about textual analysis."
	if flat[0].Text() != want {
		t.Errorf("corrected = %q, want %q", flat[0].Text(), want)
	}
}

func TestReplaceFirstOnlyFirst(t *testing.T) {
	res, err := strvec.ReplaceFirst(strvec.Strings("a1b2"), strvec.Pats(`\d`), strvec.Strings("#"), nil)
	if err != nil {
		t.Fatalf("ReplaceFirst failed: %v", err)
	}
	flat, _ := res.Flat()
	if flat[0].Text() != "a#b2" {
		t.Errorf("ReplaceFirst = %q, want %q", flat[0].Text(), "a#b2")
	}
}

func TestSplitSentence(t *testing.T) {
	v := strvec.Strings("The day after I will take a break and drink a beer.")
	res, err := strvec.Split(v, strvec.Literals(" "), nil)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	tokens := res.Nested()[0]
	if len(tokens) != 11 {
		t.Fatalf("Split produced %d tokens, want 11", len(tokens))
	}
	if last := tokens[len(tokens)-1].Text(); last != "beer." {
		t.Errorf("last token = %q, want %q", last, "beer.")
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	subjects := []string{"a,b,c", "", "no separators", ",leading", "trailing,"}
	res, err := strvec.Split(strvec.Strings(subjects...), strvec.Literals(","), nil)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	for i, elem := range res.Nested() {
		joined := ""
		for j, tok := range elem {
			if j > 0 {
				joined += ","
			}
			joined += tok.Text()
		}
		if joined != subjects[i] {
			t.Errorf("rejoined %q, want %q", joined, subjects[i])
		}
	}
}

func TestSplitMissingSubject(t *testing.T) {
	res, err := strvec.Split([]strvec.Value{strvec.NA()}, strvec.Literals(","), nil)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	elem := res.Nested()[0]
	if len(elem) != 1 || !elem[0].IsNA() {
		t.Errorf("Split(NA) = %v, want the one-element missing sequence", elem)
	}
}

func TestCount(t *testing.T) {
	v := []strvec.Value{strvec.Str("a22bc1d"), strvec.Str("abcd"), strvec.NA()}
	got, _, err := strvec.Count(v, strvec.Pats(`\d+`), nil)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	want := []int{2, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Count = %v, want %v", got, want)
	}
}

func TestShapeScenarios(t *testing.T) {
	// Every element one value: flat.
	res, err := strvec.ReplaceAll(strvec.Strings("a", "b", "c"), strvec.Pats("x"), strvec.Strings("y"), nil)
	if err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	if res.Shape() != strvec.Flat {
		t.Errorf("scalar results infer %v, want flat", res.Shape())
	}

	// Every element the same number of values: table.
	res, err = strvec.ExtractAll(strvec.Strings("a1b2", "c3d4", "e5f6"), strvec.Pats(`\d`), nil)
	if err != nil {
		t.Fatalf("ExtractAll failed: %v", err)
	}
	if res.Shape() != strvec.Table {
		t.Fatalf("uniform results infer %v, want table", res.Shape())
	}
	rows, ok := res.Table()
	if !ok || len(rows) != 3 || len(rows[0]) != 2 {
		t.Errorf("Table() = %v rows, ok=%v", len(rows), ok)
	}

	// Mixed lengths: nested, and the flatter accessors refuse.
	res, err = strvec.ExtractAll(strvec.Strings("a1", "bc", "d2e3"), strvec.Pats(`\d`), nil)
	if err != nil {
		t.Fatalf("ExtractAll failed: %v", err)
	}
	if res.Shape() != strvec.Nested {
		t.Errorf("mixed results infer %v, want nested", res.Shape())
	}
	if _, ok := res.Flat(); ok {
		t.Error("Flat() must refuse a nested batch")
	}
	if _, ok := res.Table(); ok {
		t.Error("Table() must refuse a nested batch")
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	subjects := make([]string, 100)
	for i := range subjects {
		subjects[i] = "ab3453cd46 item " + string(rune('a'+i%26))
	}
	v := strvec.Strings(subjects...)

	seq, err := strvec.ExtractAll(v, strvec.Pats(`\d+`), nil)
	if err != nil {
		t.Fatalf("sequential ExtractAll failed: %v", err)
	}
	par, err := strvec.ExtractAll(v, strvec.Pats(`\d+`), &strvec.Config{Workers: 8})
	if err != nil {
		t.Fatalf("parallel ExtractAll failed: %v", err)
	}
	if !reflect.DeepEqual(nestedTexts(seq), nestedTexts(par)) {
		t.Error("parallel results differ from sequential")
	}
	if seq.Shape() != par.Shape() {
		t.Errorf("shapes differ: %v vs %v", seq.Shape(), par.Shape())
	}
}

func TestSyntaxErrorSurfacesImmediately(t *testing.T) {
	_, _, err := strvec.Detect(strvec.Strings("x"), strvec.Pats("[bad"), nil)
	se, ok := err.(*strvec.SyntaxError)
	if !ok {
		t.Fatalf("got %v (%T), want *SyntaxError", err, err)
	}
	if se.Message == "" {
		t.Error("SyntaxError should carry a message")
	}

	// The compiler survives a failed call.
	if _, _, err := strvec.Detect(strvec.Strings("x"), strvec.Pats("[good]"), nil); err != nil {
		t.Errorf("Detect after failed compile: %v", err)
	}
}

func TestEmptyVector(t *testing.T) {
	res, err := strvec.ExtractAll(nil, strvec.Pats(`\d`), nil)
	if err != nil {
		t.Fatalf("ExtractAll failed: %v", err)
	}
	if res.Len() != 0 {
		t.Errorf("Len = %d, want 0", res.Len())
	}
	if res.Shape() != strvec.Flat {
		t.Errorf("empty batch infers %v, want flat", res.Shape())
	}
}

func TestCompiledMatcher(t *testing.T) {
	m := strvec.MustCompile(strvec.Pattern{Text: `[[:digit:]]+`})
	if !m.Detect("a22b") {
		t.Error("Detect should find the digit run")
	}
	got, ok := m.FindFirst("a22b")
	if !ok || got.Text != "22" || got.Span != (strvec.Span{Start: 1, End: 3}) {
		t.Errorf("FindFirst = %+v ok=%v", got, ok)
	}
	if n := m.Count("a1b2c3"); n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
	if out := m.ReplaceAll("a1b22", "#"); out != "a#b#" {
		t.Errorf("ReplaceAll = %q, want %q", out, "a#b#")
	}
	if toks := m.Split("a1b2c"); !reflect.DeepEqual(toks, []string{"a", "b", "c"}) {
		t.Errorf("Split = %q", toks)
	}
}

func TestFoldCaseIsCompileTime(t *testing.T) {
	folded := []strvec.Pattern{{Text: "beer", FoldCase: true}}
	got, _, err := strvec.Detect(strvec.Strings("BEER."), folded, nil)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if got[0] != strvec.True {
		t.Error("folded pattern should match uppercase subject")
	}

	exact, _, err := strvec.Detect(strvec.Strings("BEER."), strvec.Pats("beer"), nil)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if exact[0] != strvec.False {
		t.Error("case-sensitive pattern should not match uppercase subject")
	}
}
