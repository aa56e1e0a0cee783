package render

import "prag/internal/ir"

func (w *writer) clause(c ir.Clause) {
	w.sb.WriteString(c.Kind.String())
	if c.Data == nil {
		return
	}
	w.sb.WriteByte('(')
	w.payload(c)
	w.sb.WriteByte(')')
}

// payload writes the text between a clause's parentheses. The clause
// kind rides along because a few payloads render differently under
// different keywords (num_teams bounds, match selectors).
func (w *writer) payload(c ir.Clause) {
	switch arg := c.Data.(type) {
	case *ir.ExprArg:
		w.expr(arg.X)

	case *ir.ExprList:
		// num_teams carries lower:upper bounds; every other
		// expression list is comma-separated.
		sep := ", "
		if c.Kind == ir.OmpClauseNumTeams {
			sep = ":"
		}
		w.exprs(arg.List, sep)

	case *ir.ItemList:
		w.items(arg.Items)

	case *ir.IfArg:
		if arg.DirectiveName != "" {
			w.sb.WriteString(arg.DirectiveName)
			w.sb.WriteString(": ")
		}
		w.expr(arg.Cond)

	case *ir.DefaultArg:
		w.sb.WriteString(arg.Kind.String())

	case *ir.ReductionArg:
		if arg.HasModifier {
			w.sb.WriteString(arg.Modifier.String())
			w.sb.WriteString(", ")
		}
		if arg.Op == ir.ReduceCustom {
			w.leaf(arg.Custom)
		} else {
			w.sb.WriteString(arg.Op.String())
		}
		w.sb.WriteString(": ")
		w.items(arg.Items)

	case *ir.MapArg:
		for _, m := range arg.Modifiers {
			w.mapModifier(m)
			w.sb.WriteString(", ")
		}
		if arg.HasType {
			w.sb.WriteString(arg.Type.String())
			w.sb.WriteString(": ")
		}
		w.items(arg.Items)

	case *ir.ScheduleArg:
		for i, m := range arg.Modifiers {
			if i > 0 {
				w.sb.WriteString(", ")
			}
			w.sb.WriteString(m.String())
		}
		if len(arg.Modifiers) > 0 {
			w.sb.WriteString(": ")
		}
		w.sb.WriteString(arg.Kind.String())
		if arg.Chunk != nil {
			w.sb.WriteString(", ")
			w.expr(*arg.Chunk)
		}

	case *ir.DistScheduleArg:
		w.sb.WriteString(arg.Kind.String())
		if arg.Chunk != nil {
			w.sb.WriteString(", ")
			w.expr(*arg.Chunk)
		}

	case *ir.DependArg:
		w.sb.WriteString(arg.Type.String())
		if len(arg.Items) > 0 {
			w.sb.WriteString(": ")
			w.items(arg.Items)
		}

	case *ir.LinearArg:
		if arg.HasModifier {
			w.sb.WriteString(arg.Modifier.String())
			w.sb.WriteByte('(')
			w.items(arg.Items)
			w.sb.WriteByte(')')
		} else {
			w.items(arg.Items)
		}
		if arg.Step != nil {
			w.sb.WriteString(": ")
			w.expr(*arg.Step)
		}

	case *ir.AlignedArg:
		w.items(arg.Items)
		if arg.Alignment != nil {
			w.sb.WriteString(": ")
			w.expr(*arg.Alignment)
		}

	case *ir.LastprivateArg:
		if arg.Conditional {
			w.sb.WriteString("conditional: ")
		}
		w.items(arg.Items)

	case *ir.ProcBindArg:
		w.sb.WriteString(arg.Kind.String())

	case *ir.OrderArg:
		if arg.HasModifier {
			w.sb.WriteString(arg.Modifier.String())
			w.sb.WriteString(": ")
		}
		w.sb.WriteString(arg.Kind.String())

	case *ir.MemOrderArg:
		w.sb.WriteString(arg.Order.String())

	case *ir.DeviceTypeArg:
		w.sb.WriteString(arg.Kind.String())

	case *ir.BindArg:
		w.sb.WriteString(arg.Binding.String())

	case *ir.DefaultmapArg:
		w.sb.WriteString(arg.Behavior.String())
		if arg.HasCategory {
			w.sb.WriteString(": ")
			w.sb.WriteString(arg.Category.String())
		}

	case *ir.AllocateArg:
		if arg.Allocator != nil {
			w.expr(*arg.Allocator)
			w.sb.WriteString(": ")
		}
		w.items(arg.Items)

	case *ir.AccParallelismArg:
		w.accParallelism(arg)

	case *ir.AccDataArg:
		if arg.HasModifier {
			w.sb.WriteString(arg.Modifier.String())
			w.sb.WriteString(": ")
		}
		w.items(arg.Items)

	case *ir.WhenArg:
		w.selectors(arg.Selectors)
		if c.Kind == ir.OmpClauseMatch {
			return
		}
		w.sb.WriteByte(':')
		if arg.Directive != nil {
			w.sb.WriteByte(' ')
			w.directive(arg.Directive)
		}

	case *ir.OtherwiseArg:
		if arg.Directive != nil {
			w.directive(arg.Directive)
		}
	}
}

func (w *writer) mapModifier(m ir.MapModifier) {
	w.sb.WriteString(m.Kind.String())
	if m.Kind == ir.MapModMapper {
		w.sb.WriteByte('(')
		w.leaf(m.Mapper)
		w.sb.WriteByte(')')
	}
}

// accParallelism writes gang/worker/vector arguments with their
// canonical tags, whether or not the source spelled them.
func (w *writer) accParallelism(arg *ir.AccParallelismArg) {
	first := true
	part := func(tag string, e *ir.Expression) {
		if e == nil {
			return
		}
		if !first {
			w.sb.WriteString(", ")
		}
		first = false
		w.sb.WriteString(tag)
		w.sb.WriteString(": ")
		w.expr(*e)
	}
	part("num", arg.Num)
	part("static", arg.Static)
	part("length", arg.Length)
	part("dim", arg.Dim)
}

func (w *writer) selectors(sets []ir.TraitSet) {
	for i, ts := range sets {
		if i > 0 {
			w.sb.WriteString(", ")
		}
		w.sb.WriteString(ts.Set.String())
		w.sb.WriteString("={")
		for j, sel := range ts.Selectors {
			if j > 0 {
				w.sb.WriteString(", ")
			}
			w.sb.WriteString(sel.Name)
			if len(sel.Props) > 0 {
				w.sb.WriteByte('(')
				w.exprs(sel.Props, ", ")
				w.sb.WriteByte(')')
			}
		}
		w.sb.WriteByte('}')
	}
}
