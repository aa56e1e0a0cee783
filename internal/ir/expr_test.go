package ir

import "testing"

func TestNewExpression_Trims(t *testing.T) {
	cases := map[string]string{
		"  x + 1 ":        "x + 1",
		"n":               "n",
		"\ta[i] * b[i]\t": "a[i] * b[i]",
		"   ":             "",
		"":                "",
	}
	for in, want := range cases {
		e := NewExpression(in)
		if e.Raw != want {
			t.Fatalf("NewExpression(%q).Raw = %q, want %q", in, e.Raw, want)
		}
		if e.IsEmpty() != (want == "") {
			t.Fatalf("IsEmpty(%q) = %v", in, e.IsEmpty())
		}
	}
}

func TestArraySection_String(t *testing.T) {
	expr := func(s string) *Expression {
		e := NewExpression(s)
		return &e
	}
	cases := []struct {
		sec  ArraySection
		want string
	}{
		{ArraySection{}, ""},
		{ArraySection{Lower: expr("i")}, "i"},
		{ArraySection{Lower: expr("0"), Extent: expr("N")}, "0:N"},
		{ArraySection{Lower: expr("0"), Extent: expr("N"), Stride: expr("2")}, "0:N:2"},
		{ArraySection{Extent: expr("N")}, ":N"},
		{ArraySection{Lower: expr("0"), Stride: expr("2")}, "0::2"},
		{ArraySection{Stride: expr("2")}, "::2"},
	}
	for _, c := range cases {
		if got := c.sec.String(); got != c.want {
			t.Fatalf("ArraySection.String() = %q, want %q", got, c.want)
		}
	}
}

func TestVariable_String(t *testing.T) {
	expr := func(s string) *Expression {
		e := NewExpression(s)
		return &e
	}

	plain := NewVariable("  count ")
	if plain.Name != "count" {
		t.Fatalf("NewVariable did not trim: %q", plain.Name)
	}
	if plain.HasSections() {
		t.Fatalf("plain variable reports sections")
	}
	if got := plain.String(); got != "count" {
		t.Fatalf("String() = %q, want count", got)
	}

	matrix := Variable{
		Name: "matrix",
		Sections: []ArraySection{
			{Lower: expr("0"), Extent: expr("N")},
			{Lower: expr("i")},
		},
	}
	if !matrix.HasSections() {
		t.Fatalf("sectioned variable reports no sections")
	}
	if got := matrix.String(); got != "matrix[0:N][i]" {
		t.Fatalf("String() = %q, want matrix[0:N][i]", got)
	}
}
