package render

import "prag/internal/ir"

// Translate returns a copy of d retargeted at another host language:
// the language field is swapped and loop spellings map to the target's
// for/do form, nested metadirective variants included. Expressions and
// variable names travel verbatim; rewriting C subscripts into Fortran
// ones is the caller's problem, not this package's.
func Translate(d *ir.DirectiveIR, target ir.Language) *ir.DirectiveIR {
	if d == nil {
		return nil
	}
	var clauses []ir.Clause
	if n := d.ClauseCount(); n > 0 {
		clauses = make([]ir.Clause, n)
		for i := range clauses {
			c := d.ClauseAt(i)
			clauses[i] = ir.Clause{Kind: c.Kind, Data: translateData(c.Data, target)}
		}
	}
	kind := ir.LoopForLanguage(d.Kind(), target)
	return ir.NewDirective(kind, target, d.Location(), translateParam(d.Parameter(), target), clauses)
}

// translateData rebuilds the payloads that embed directives; everything
// else is immutable and shared with the source tree.
func translateData(data ir.ClauseData, target ir.Language) ir.ClauseData {
	switch arg := data.(type) {
	case *ir.WhenArg:
		out := *arg
		out.Directive = Translate(arg.Directive, target)
		return &out
	case *ir.OtherwiseArg:
		out := *arg
		out.Directive = Translate(arg.Directive, target)
		return &out
	}
	return data
}

func translateParam(p *ir.DirectiveParameter, target ir.Language) *ir.DirectiveParameter {
	if p == nil || p.Kind != ir.ParamConstruct {
		return p
	}
	// cancel for becomes cancel do and back.
	out := *p
	out.Construct = ir.LoopForLanguage(p.Construct, target)
	return &out
}
