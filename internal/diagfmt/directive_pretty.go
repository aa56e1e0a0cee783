package diagfmt

import (
	"fmt"
	"io"

	"prag/internal/ir"
	"prag/internal/render"
)

// PrettyDirective prints one parsed directive as a tree: a header line
// with the canonical keyword, dialect, language and source position,
// then one connector row per parameter and clause. Metadirective
// variant directives nest as subtrees rather than rendering inline.
func PrettyDirective(w io.Writer, d *ir.DirectiveIR, opts PrettyOpts) {
	if d == nil {
		return
	}
	directiveHead(w, d, opts)
	directiveRows(w, d, "", opts)
}

func directiveHead(w io.Writer, d *ir.DirectiveIR, opts PrettyOpts) {
	meta := fmt.Sprintf("(%s, %s)", d.Kind().Dialect(), d.Language())
	if loc := d.Location(); loc.Line > 0 {
		meta = fmt.Sprintf("%s at %d:%d", meta, loc.Line, loc.Column)
	}
	fmt.Fprintf(w, "%s %s\n",
		paint(codeColor, opts.Color, d.Kind().String()),
		paint(noteColor, opts.Color, meta))
}

// directiveRows prints the parameter and clause rows under an already
// printed header. prefix is the accumulated gutter of the enclosing
// tree levels.
func directiveRows(w io.Writer, d *ir.DirectiveIR, prefix string, opts PrettyOpts) {
	type row struct {
		text  string
		child *ir.DirectiveIR
	}
	rows := make([]row, 0, d.ClauseCount()+1)
	if p := d.Parameter(); p != nil {
		rows = append(rows, row{text: "parameter " + render.Parameter(p, d.Language(), render.Full)})
	}
	for i := 0; i < d.ClauseCount(); i++ {
		c := d.ClauseAt(i)
		switch arg := c.Data.(type) {
		case *ir.WhenArg:
			// The variant moves to a child subtree; the row keeps the
			// clause keyword and selector list.
			text := c.Kind.String()
			if len(arg.Selectors) > 0 {
				text += "(" + render.Selectors(arg.Selectors) + ")"
			}
			rows = append(rows, row{text: text, child: arg.Directive})
		case *ir.OtherwiseArg:
			rows = append(rows, row{text: c.Kind.String(), child: arg.Directive})
		default:
			rows = append(rows, row{text: render.Clause(c, d.Language(), render.Full)})
		}
	}
	for i, r := range rows {
		connector, childPrefix := "├─ ", prefix+"│  "
		if i == len(rows)-1 {
			connector, childPrefix = "└─ ", prefix+"   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, r.text)
		if r.child != nil {
			fmt.Fprintf(w, "%s└─ ", childPrefix)
			directiveHead(w, r.child, opts)
			directiveRows(w, r.child, childPrefix+"   ", opts)
		}
	}
}
