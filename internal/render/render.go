// Package render reconstructs directive text from IR. Output is
// canonical, not byte-preserving: keywords come from the registries'
// canonical spellings, list separators are normalized, and fixed-form
// Fortran input renders with the free-form sentinel. Re-parsing a Full
// rendering yields a structurally equal directive.
package render

import (
	"strings"

	"prag/internal/ir"
)

// Mode selects how much of the directive's user content the renderer
// emits.
type Mode uint8

const (
	// Full renders identifiers and expressions verbatim.
	Full Mode = iota

	// Plain keeps directive, clause and modifier keywords but replaces
	// every variable and expression leaf with "...". It never fails,
	// degrading to a structural skeleton on degenerate input.
	Plain
)

func (m Mode) String() string {
	if m == Plain {
		return "plain"
	}
	return "full"
}

const placeholder = "..."

// Directive renders one directive line, sentinel included.
func Directive(d *ir.DirectiveIR, mode Mode) string {
	w := writer{lang: d.Language(), plain: mode == Plain}
	w.sb.WriteString(Sentinel(d.Language(), d.Kind().Dialect()))
	w.directive(d)
	return w.sb.String()
}

// Sentinel returns the line prefix for a language and dialect pair,
// trailing space included. Both Fortran forms render the free-form
// sentinel.
func Sentinel(lang ir.Language, d ir.Dialect) string {
	if lang.IsFortran() {
		return "!$" + d.Keyword() + " "
	}
	return "#pragma " + d.Keyword() + " "
}

// Clause renders one clause in isolation, keyword and payload. The
// language selects the array section surface syntax for list items.
func Clause(c ir.Clause, lang ir.Language, mode Mode) string {
	w := writer{lang: lang, plain: mode == Plain}
	w.clause(c)
	return w.sb.String()
}

// Parameter renders a directive's own argument without the directive
// keyword: "(name)" for named forms, "(x, y)" for lists, the bare
// construct keyword for cancellation forms. Nil renders empty.
func Parameter(p *ir.DirectiveParameter, lang ir.Language, mode Mode) string {
	if p == nil {
		return ""
	}
	w := writer{lang: lang, plain: mode == Plain}
	w.parameter(p)
	return strings.TrimPrefix(w.sb.String(), " ")
}

// Selectors renders a context-selector list in its canonical spelling,
// no enclosing parentheses.
func Selectors(sets []ir.TraitSet) string {
	var w writer
	w.selectors(sets)
	return w.sb.String()
}

type writer struct {
	sb    strings.Builder
	lang  ir.Language
	plain bool
}

// directive writes the sentinel-less body: canonical keyword, the
// directive's own parameter, then the clauses. Metadirective variants
// recurse through here, which is why the sentinel stays outside.
func (w *writer) directive(d *ir.DirectiveIR) {
	w.sb.WriteString(d.Kind().String())
	w.parameter(d.Parameter())
	acc := d.Kind().Dialect() == ir.DialectOpenACC
	for i := 0; i < d.ClauseCount(); i++ {
		if i > 0 && acc {
			w.sb.WriteString(", ")
		} else {
			w.sb.WriteByte(' ')
		}
		w.clause(d.ClauseAt(i))
	}
}

func (w *writer) parameter(p *ir.DirectiveParameter) {
	if p == nil {
		return
	}
	switch p.Kind {
	case ir.ParamConstruct:
		w.sb.WriteByte(' ')
		w.sb.WriteString(p.Construct.String())
	case ir.ParamName:
		w.sb.WriteByte('(')
		w.leaf(p.Name)
		w.sb.WriteByte(')')
	case ir.ParamItems:
		w.sb.WriteByte('(')
		if p.Readonly {
			w.sb.WriteString("readonly: ")
		}
		w.items(p.Items)
		w.sb.WriteByte(')')
	case ir.ParamExprs:
		w.sb.WriteByte('(')
		w.exprs(p.Exprs, ", ")
		w.sb.WriteByte(')')
	case ir.ParamReduction:
		w.reductionSpec(p.Reduction)
	case ir.ParamMapper:
		w.mapperSpec(p.Mapper)
	}
}

func (w *writer) reductionSpec(spec *ir.ReductionSpec) {
	w.sb.WriteByte('(')
	if spec.Op == ir.ReduceCustom {
		w.leaf(spec.Custom)
	} else {
		w.sb.WriteString(spec.Op.String())
	}
	w.sb.WriteString(" : ")
	for i, t := range spec.Types {
		if i > 0 {
			w.sb.WriteString(", ")
		}
		w.leaf(t)
	}
	w.sb.WriteString(" : ")
	w.expr(spec.Combiner)
	w.sb.WriteByte(')')
	if spec.Initializer != nil {
		w.sb.WriteString(" initializer(")
		w.expr(*spec.Initializer)
		w.sb.WriteByte(')')
	}
}

func (w *writer) mapperSpec(spec *ir.MapperSpec) {
	w.sb.WriteByte('(')
	if spec.ID != "" {
		w.leaf(spec.ID)
		w.sb.WriteString(" : ")
	}
	w.leaf(spec.Decl)
	w.sb.WriteByte(')')
}

// leaf writes user-provided text, scrubbed in plain mode.
func (w *writer) leaf(s string) {
	if w.plain {
		w.sb.WriteString(placeholder)
		return
	}
	w.sb.WriteString(s)
}

func (w *writer) expr(e ir.Expression) {
	w.leaf(e.Raw)
}

func (w *writer) exprs(list []ir.Expression, sep string) {
	for i, e := range list {
		if i > 0 {
			w.sb.WriteString(sep)
		}
		w.expr(e)
	}
}

func (w *writer) items(items []ir.Variable) {
	for i, v := range items {
		if i > 0 {
			w.sb.WriteString(", ")
		}
		w.variable(v)
	}
}

// variable renders one list item in the directive's own surface syntax:
// chained bracket sections for C, a single parenthesized dimension list
// for Fortran.
func (w *writer) variable(v ir.Variable) {
	if w.plain {
		w.sb.WriteString(placeholder)
		return
	}
	if !w.lang.IsFortran() || !v.HasSections() {
		w.sb.WriteString(v.String())
		return
	}
	w.sb.WriteString(v.Name)
	w.sb.WriteByte('(')
	for i, s := range v.Sections {
		if i > 0 {
			w.sb.WriteString(", ")
		}
		w.sb.WriteString(s.String())
	}
	w.sb.WriteByte(')')
}
