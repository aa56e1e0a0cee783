package ir

import "strings"

// Expression is an opaque span of source text. The parser validates that
// delimiters inside it balance and that quotes terminate, but it never
// decomposes the text; consumers parse it with their own frontend.
type Expression struct {
	Raw string
}

// NewExpression wraps raw source text, trimming surrounding whitespace.
func NewExpression(raw string) Expression {
	return Expression{Raw: strings.TrimSpace(raw)}
}

func (e Expression) String() string { return e.Raw }

// IsEmpty reports whether the expression holds no text.
func (e Expression) IsEmpty() bool { return e.Raw == "" }

// ArraySection is one l:e:s group attached to a variable. Absent parts
// stay nil so the original spelling can be reproduced. Extent is a length
// in C sources and an upper bound in Fortran sources; the owning
// directive's Language carries that distinction.
type ArraySection struct {
	Lower  *Expression
	Extent *Expression
	Stride *Expression
}

// String renders the section body without brackets, writing only the
// parts that were present: "i", "0:N", "0:N:2", ":N", or "".
func (s ArraySection) String() string {
	var b strings.Builder
	if s.Lower != nil {
		b.WriteString(s.Lower.Raw)
	}
	if s.Extent != nil || s.Stride != nil {
		b.WriteByte(':')
	}
	if s.Extent != nil {
		b.WriteString(s.Extent.Raw)
	}
	if s.Stride != nil {
		b.WriteByte(':')
		b.WriteString(s.Stride.Raw)
	}
	return b.String()
}

// Variable is a list item: an identifier plus zero or more chained array
// sections (matrix[0:rows][0:cols]). The name is kept verbatim and never
// case-folded.
type Variable struct {
	Name     string
	Sections []ArraySection
}

// NewVariable builds a plain variable with a trimmed name and no sections.
func NewVariable(name string) Variable {
	return Variable{Name: strings.TrimSpace(name)}
}

// HasSections reports whether the variable carries array sections.
func (v Variable) HasSections() bool { return len(v.Sections) > 0 }

// String renders the variable in C surface syntax. Rendering that follows
// the owning directive's language lives in the render package.
func (v Variable) String() string {
	if len(v.Sections) == 0 {
		return v.Name
	}
	var b strings.Builder
	b.WriteString(v.Name)
	for _, s := range v.Sections {
		b.WriteByte('[')
		b.WriteString(s.String())
		b.WriteByte(']')
	}
	return b.String()
}
