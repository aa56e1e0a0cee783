package diagfmt

import (
	"encoding/json"
	"io"

	"prag/internal/ir"
	"prag/internal/render"
)

// DirectiveJSON is the machine-readable form of one parsed directive.
// Tags are the stable integer kind values; names are the canonical
// registry spellings.
type DirectiveJSON struct {
	Tag       uint32         `json:"tag"`
	Name      string         `json:"name"`
	Dialect   string         `json:"dialect"`
	Language  string         `json:"language"`
	Line      uint32         `json:"line,omitempty"`
	Column    uint32         `json:"column,omitempty"`
	EndMarker bool           `json:"end_marker,omitempty"`
	Parameter *ParameterJSON `json:"parameter,omitempty"`
	Clauses   []ClauseJSON   `json:"clauses"`
	Canonical string         `json:"canonical"`
}

// ParameterJSON is a directive's own parenthesized argument.
type ParameterJSON struct {
	Kind      string         `json:"kind"`
	Construct string         `json:"construct,omitempty"`
	Name      string         `json:"name,omitempty"`
	Items     []VariableJSON `json:"items,omitempty"`
	Exprs     []string       `json:"exprs,omitempty"`
	Readonly  bool           `json:"readonly,omitempty"`
	Reduction *ReductionJSON `json:"reduction,omitempty"`
	Mapper    *MapperJSON    `json:"mapper,omitempty"`
}

// ReductionJSON mirrors a declare reduction parameter.
type ReductionJSON struct {
	Op          string   `json:"op"`
	Types       []string `json:"types"`
	Combiner    string   `json:"combiner"`
	Initializer string   `json:"initializer,omitempty"`
}

// MapperJSON mirrors a declare mapper parameter.
type MapperJSON struct {
	ID   string `json:"id,omitempty"`
	Decl string `json:"decl"`
}

// ClauseJSON is one clause with its payload shape tag and a flattened
// payload. Absent payload fields are omitted, so a bare clause carries
// only tag, name and shape.
type ClauseJSON struct {
	Tag     uint32       `json:"tag"`
	Name    string       `json:"name"`
	Shape   string       `json:"shape"`
	Payload *PayloadJSON `json:"payload,omitempty"`
}

// PayloadJSON is the union of clause payload fields. Which fields are
// set follows from the clause's shape.
type PayloadJSON struct {
	Exprs       []string          `json:"exprs,omitempty"`
	Items       []VariableJSON    `json:"items,omitempty"`
	Modifiers   []string          `json:"modifiers,omitempty"`
	Keyword     string            `json:"keyword,omitempty"`
	Category    string            `json:"category,omitempty"`
	Prefix      string            `json:"prefix,omitempty"`
	Chunk       string            `json:"chunk,omitempty"`
	Step        string            `json:"step,omitempty"`
	Alignment   string            `json:"alignment,omitempty"`
	Conditional bool              `json:"conditional,omitempty"`
	Args        map[string]string `json:"args,omitempty"`
	Selectors   []TraitSetJSON    `json:"selectors,omitempty"`
	Directive   *DirectiveJSON    `json:"directive,omitempty"`
}

// TraitSetJSON is one name={...} selector group.
type TraitSetJSON struct {
	Set       string         `json:"set"`
	Selectors []SelectorJSON `json:"selectors"`
}

// SelectorJSON is one trait selector with optional properties.
type SelectorJSON struct {
	Name  string   `json:"name"`
	Props []string `json:"props,omitempty"`
}

// VariableJSON is one list item with its structural array sections.
type VariableJSON struct {
	Name     string        `json:"name"`
	Sections []SectionJSON `json:"sections,omitempty"`
}

// SectionJSON is one lower:extent:stride group; absent parts are
// omitted rather than defaulted.
type SectionJSON struct {
	Lower  string `json:"lower,omitempty"`
	Extent string `json:"extent,omitempty"`
	Stride string `json:"stride,omitempty"`
}

// BuildDirectiveOutput flattens a parsed directive into its wire form,
// canonical rendering included. Nested metadirective variants recurse.
func BuildDirectiveOutput(d *ir.DirectiveIR) *DirectiveJSON {
	if d == nil {
		return nil
	}
	out := &DirectiveJSON{
		Tag:       uint32(d.Kind()),
		Name:      d.Kind().String(),
		Dialect:   d.Kind().Dialect().String(),
		Language:  d.Language().String(),
		Line:      d.Location().Line,
		Column:    d.Location().Column,
		EndMarker: d.Kind().IsEnd(),
		Parameter: buildParameter(d.Parameter()),
		Clauses:   make([]ClauseJSON, 0, d.ClauseCount()),
		Canonical: render.Directive(d, render.Full),
	}
	for i := 0; i < d.ClauseCount(); i++ {
		out.Clauses = append(out.Clauses, buildClause(d.ClauseAt(i)))
	}
	return out
}

// DirectiveAsJSON serializes one parsed directive as an indented JSON
// document.
func DirectiveAsJSON(w io.Writer, d *ir.DirectiveIR) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDirectiveOutput(d))
}

func buildParameter(p *ir.DirectiveParameter) *ParameterJSON {
	if p == nil {
		return nil
	}
	out := &ParameterJSON{Kind: p.Kind.String(), Readonly: p.Readonly}
	switch p.Kind {
	case ir.ParamConstruct:
		out.Construct = p.Construct.String()
	case ir.ParamName:
		out.Name = p.Name
	case ir.ParamItems:
		out.Items = buildVariables(p.Items)
	case ir.ParamExprs:
		out.Exprs = buildExprs(p.Exprs)
	case ir.ParamReduction:
		if spec := p.Reduction; spec != nil {
			r := &ReductionJSON{
				Op:       spec.Identifier(),
				Types:    append([]string(nil), spec.Types...),
				Combiner: spec.Combiner.Raw,
			}
			if spec.Initializer != nil {
				r.Initializer = spec.Initializer.Raw
			}
			out.Reduction = r
		}
	case ir.ParamMapper:
		if spec := p.Mapper; spec != nil {
			out.Mapper = &MapperJSON{ID: spec.ID, Decl: spec.Decl}
		}
	}
	return out
}

func buildClause(c ir.Clause) ClauseJSON {
	out := ClauseJSON{
		Tag:   uint32(c.Kind),
		Name:  c.Kind.String(),
		Shape: c.Shape().String(),
	}
	out.Payload = buildPayload(c.Data)
	return out
}

func buildPayload(data ir.ClauseData) *PayloadJSON {
	switch arg := data.(type) {
	case *ir.ExprArg:
		return &PayloadJSON{Exprs: []string{arg.X.Raw}}

	case *ir.ExprList:
		return &PayloadJSON{Exprs: buildExprs(arg.List)}

	case *ir.ItemList:
		return &PayloadJSON{Items: buildVariables(arg.Items)}

	case *ir.IfArg:
		return &PayloadJSON{Prefix: arg.DirectiveName, Exprs: []string{arg.Cond.Raw}}

	case *ir.DefaultArg:
		return &PayloadJSON{Keyword: arg.Kind.String()}

	case *ir.ReductionArg:
		p := &PayloadJSON{Keyword: arg.Op.String(), Items: buildVariables(arg.Items)}
		if arg.Op == ir.ReduceCustom {
			p.Prefix = arg.Custom
		}
		if arg.HasModifier {
			p.Modifiers = []string{arg.Modifier.String()}
		}
		return p

	case *ir.MapArg:
		p := &PayloadJSON{Items: buildVariables(arg.Items)}
		for _, m := range arg.Modifiers {
			name := m.Kind.String()
			if m.Kind == ir.MapModMapper {
				name += "(" + m.Mapper + ")"
			}
			p.Modifiers = append(p.Modifiers, name)
		}
		if arg.HasType {
			p.Keyword = arg.Type.String()
		}
		return p

	case *ir.ScheduleArg:
		p := &PayloadJSON{Keyword: arg.Kind.String()}
		for _, m := range arg.Modifiers {
			p.Modifiers = append(p.Modifiers, m.String())
		}
		if arg.Chunk != nil {
			p.Chunk = arg.Chunk.Raw
		}
		return p

	case *ir.DistScheduleArg:
		p := &PayloadJSON{Keyword: arg.Kind.String()}
		if arg.Chunk != nil {
			p.Chunk = arg.Chunk.Raw
		}
		return p

	case *ir.DependArg:
		return &PayloadJSON{Keyword: arg.Type.String(), Items: buildVariables(arg.Items)}

	case *ir.LinearArg:
		p := &PayloadJSON{Items: buildVariables(arg.Items)}
		if arg.HasModifier {
			p.Modifiers = []string{arg.Modifier.String()}
		}
		if arg.Step != nil {
			p.Step = arg.Step.Raw
		}
		return p

	case *ir.AlignedArg:
		p := &PayloadJSON{Items: buildVariables(arg.Items)}
		if arg.Alignment != nil {
			p.Alignment = arg.Alignment.Raw
		}
		return p

	case *ir.LastprivateArg:
		return &PayloadJSON{Conditional: arg.Conditional, Items: buildVariables(arg.Items)}

	case *ir.ProcBindArg:
		return &PayloadJSON{Keyword: arg.Kind.String()}

	case *ir.OrderArg:
		p := &PayloadJSON{Keyword: arg.Kind.String()}
		if arg.HasModifier {
			p.Modifiers = []string{arg.Modifier.String()}
		}
		return p

	case *ir.MemOrderArg:
		return &PayloadJSON{Keyword: arg.Order.String()}

	case *ir.DeviceTypeArg:
		return &PayloadJSON{Keyword: arg.Kind.String()}

	case *ir.BindArg:
		return &PayloadJSON{Keyword: arg.Binding.String()}

	case *ir.DefaultmapArg:
		p := &PayloadJSON{Keyword: arg.Behavior.String()}
		if arg.HasCategory {
			p.Category = arg.Category.String()
		}
		return p

	case *ir.AllocateArg:
		p := &PayloadJSON{Items: buildVariables(arg.Items)}
		if arg.Allocator != nil {
			p.Prefix = arg.Allocator.Raw
		}
		return p

	case *ir.AccParallelismArg:
		args := make(map[string]string, 4)
		put := func(tag string, e *ir.Expression) {
			if e != nil {
				args[tag] = e.Raw
			}
		}
		put("num", arg.Num)
		put("static", arg.Static)
		put("length", arg.Length)
		put("dim", arg.Dim)
		return &PayloadJSON{Args: args}

	case *ir.AccDataArg:
		p := &PayloadJSON{Items: buildVariables(arg.Items)}
		if arg.HasModifier {
			p.Modifiers = []string{arg.Modifier.String()}
		}
		return p

	case *ir.WhenArg:
		return &PayloadJSON{
			Selectors: buildTraitSets(arg.Selectors),
			Directive: BuildDirectiveOutput(arg.Directive),
		}

	case *ir.OtherwiseArg:
		return &PayloadJSON{Directive: BuildDirectiveOutput(arg.Directive)}
	}
	return nil
}

func buildTraitSets(sets []ir.TraitSet) []TraitSetJSON {
	out := make([]TraitSetJSON, len(sets))
	for i, ts := range sets {
		tj := TraitSetJSON{
			Set:       ts.Set.String(),
			Selectors: make([]SelectorJSON, len(ts.Selectors)),
		}
		for j, sel := range ts.Selectors {
			tj.Selectors[j] = SelectorJSON{Name: sel.Name, Props: buildExprs(sel.Props)}
		}
		out[i] = tj
	}
	return out
}

func buildVariables(items []ir.Variable) []VariableJSON {
	if len(items) == 0 {
		return nil
	}
	out := make([]VariableJSON, len(items))
	for i, v := range items {
		vj := VariableJSON{Name: v.Name}
		for _, s := range v.Sections {
			sj := SectionJSON{}
			if s.Lower != nil {
				sj.Lower = s.Lower.Raw
			}
			if s.Extent != nil {
				sj.Extent = s.Extent.Raw
			}
			if s.Stride != nil {
				sj.Stride = s.Stride.Raw
			}
			vj.Sections = append(vj.Sections, sj)
		}
		out[i] = vj
	}
	return out
}

func buildExprs(list []ir.Expression) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Raw
	}
	return out
}
