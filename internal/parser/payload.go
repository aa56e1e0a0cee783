package parser

import (
	"fmt"

	"prag/internal/diag"
	"prag/internal/ir"
	"prag/internal/token"
)

// Payload parsers receive the tokens between a clause's parentheses and
// build the matching typed ir payload. They are only called when the
// parentheses exist; empty ones are each shape's own problem.

func (p *parser) parseExprArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	if len(toks) == 0 {
		return nil, p.argErr(sc, nil, ErrMissingArgument, diag.SynMissingArgument, "empty argument")
	}
	return &ir.ExprArg{X: p.exprOf(toks)}, nil
}

func (p *parser) parseExprListArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	list := p.exprRuns(toks, token.Comma)
	if len(list) == 0 {
		return nil, p.argErr(sc, nil, ErrEmptyList, diag.SynEmptyList, "empty argument list")
	}
	return &ir.ExprList{List: list}, nil
}

// parseBoundsArg handles num_teams, whose argument is a single value or
// a low:high pair.
func (p *parser) parseBoundsArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	list := p.exprRuns(toks, token.Colon)
	if len(list) == 0 {
		return nil, p.argErr(sc, nil, ErrMissingArgument, diag.SynMissingArgument, "empty argument")
	}
	return &ir.ExprList{List: list}, nil
}

func (p *parser) parseItemListArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	items, err := p.requireItems(sc, toks)
	if err != nil {
		return nil, err
	}
	return &ir.ItemList{Items: items}, nil
}

func (p *parser) requireItems(sc scope, toks []token.Token) ([]ir.Variable, error) {
	items, err := p.parseItemsIn(sc, toks)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, p.argErr(sc, nil, ErrEmptyList, diag.SynEmptyList, "empty list")
	}
	return items, nil
}

func (p *parser) parseIfArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	head, tail, found := cutTopLevel(toks, token.Colon)
	if !found {
		if len(toks) == 0 {
			return nil, p.argErr(sc, nil, ErrMissingArgument, diag.SynMissingArgument, "missing condition")
		}
		return &ir.IfArg{Cond: p.exprOf(toks)}, nil
	}
	if len(head) == 0 {
		return nil, p.argErr(sc, nil, ErrExpectedModifier, diag.SynExpectedModifier,
			"missing directive name before ':'")
	}
	if len(tail) == 0 {
		return nil, p.argErr(sc, nil, ErrMissingArgument, diag.SynMissingArgument, "missing condition")
	}
	return &ir.IfArg{DirectiveName: p.textOf(head), Cond: p.exprOf(tail)}, nil
}

func (p *parser) parseDefaultArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	if len(toks) == 1 && toks[0].Kind == token.Ident {
		if kind, ok := ir.ParseDefaultKind(p.fold(toks[0].Text)); ok && p.defaultAllowed(kind) {
			return &ir.DefaultArg{Kind: kind}, nil
		}
	}
	// OpenMP metadirectives may spell their fallback variant as
	// default(<directive>).
	if p.dialect == ir.DialectOpenMP && len(toks) > 0 {
		d, err := p.parseNested(sc, toks)
		if err != nil {
			return nil, err
		}
		return &ir.OtherwiseArg{Directive: d}, nil
	}
	return nil, p.argErr(sc, toks, ErrUnknownModifier, diag.SynUnknownModifier,
		fmt.Sprintf("invalid default kind %q", p.textOf(toks)))
}

func (p *parser) defaultAllowed(kind ir.DefaultKind) bool {
	if p.dialect == ir.DialectOpenACC {
		return kind == ir.DefaultNone || kind == ir.DefaultPresent
	}
	return kind != ir.DefaultPresent
}

func (p *parser) parseReductionArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	head, rest, found := cutTopLevel(toks, token.Colon)
	if !found {
		return nil, p.argErr(sc, toks, ErrExpectedModifier, diag.SynExpectedModifier,
			"missing ':' after the reduction identifier")
	}

	arg := &ir.ReductionArg{}
	opToks := head
	if modToks, opRest, ok := cutTopLevel(head, token.Comma); ok {
		name := p.textOf(modToks)
		mod, known := ir.ParseReductionModifier(p.fold(name))
		if !known {
			return nil, p.argErr(sc, modToks, ErrUnknownModifier, diag.SynUnknownModifier,
				fmt.Sprintf("unknown reduction modifier %q", name))
		}
		arg.Modifier, arg.HasModifier = mod, true
		opToks = opRest
	}

	opText := p.textOf(opToks)
	if opText == "" {
		return nil, p.argErr(sc, nil, ErrExpectedModifier, diag.SynExpectedModifier,
			"missing reduction identifier")
	}
	if op, ok := ir.ParseReductionOperator(p.fold(opText)); ok {
		arg.Op = op
	} else {
		arg.Op, arg.Custom = ir.ReduceCustom, opText
	}

	items, err := p.requireItems(sc, rest)
	if err != nil {
		return nil, err
	}
	arg.Items = items
	return arg, nil
}

func (p *parser) parseMapArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	arg := &ir.MapArg{}
	rest := toks
	if head, tail, found := cutTopLevel(toks, token.Colon); found {
		mods, mapType, err := p.parseMapHead(sc, head)
		if err != nil {
			return nil, err
		}
		arg.Modifiers, arg.Type, arg.HasType = mods, mapType, true
		rest = tail
	}
	items, err := p.requireItems(sc, rest)
	if err != nil {
		return nil, err
	}
	arg.Items = items
	return arg, nil
}

// parseMapHead reads the modifier and map-type section before the ':'.
// Commas between modifiers are optional; the last keyword is the type.
func (p *parser) parseMapHead(sc scope, toks []token.Token) ([]ir.MapModifier, ir.MapType, error) {
	type elem struct {
		name   string
		mapper string
		hasArg bool
		toks   []token.Token
	}
	var elems []elem
	for i := 0; i < len(toks); {
		tok := toks[i]
		if tok.Kind == token.Comma {
			i++
			continue
		}
		if tok.Kind != token.Ident {
			return nil, 0, p.argErr(sc, toks[i:], ErrExpectedModifier, diag.SynExpectedModifier,
				"expected a map-type keyword")
		}
		e := elem{name: tok.Text, toks: toks[i : i+1]}
		i++
		if i < len(toks) && toks[i].Kind == token.LParen {
			inside, tail, ok := matchGroup(toks[i:], token.LParen, token.RParen)
			if !ok {
				return nil, 0, p.argErr(sc, toks[i:], ErrUnbalancedDelimiter, diag.SynUnbalancedGroup,
					"unclosed '('")
			}
			e.mapper, e.hasArg = p.textOf(inside), true
			i = len(toks) - len(tail)
		}
		elems = append(elems, e)
	}
	if len(elems) == 0 {
		return nil, 0, p.argErr(sc, nil, ErrExpectedModifier, diag.SynExpectedModifier,
			"missing map type before ':'")
	}

	last := elems[len(elems)-1]
	mapType, ok := ir.ParseMapType(p.fold(last.name))
	if !ok || last.hasArg {
		return nil, 0, p.argErr(sc, last.toks, ErrUnknownModifier, diag.SynUnknownModifier,
			fmt.Sprintf("unknown map type %q", last.name))
	}
	var mods []ir.MapModifier
	for _, e := range elems[:len(elems)-1] {
		kind, ok := ir.ParseMapModifier(p.fold(e.name))
		if !ok {
			return nil, 0, p.argErr(sc, e.toks, ErrUnknownModifier, diag.SynUnknownModifier,
				fmt.Sprintf("unknown map-type modifier %q", e.name))
		}
		if (kind == ir.MapModMapper) != e.hasArg {
			return nil, 0, p.argErr(sc, e.toks, ErrExpectedModifier, diag.SynExpectedModifier,
				fmt.Sprintf("modifier %q used with the wrong arity", e.name))
		}
		mods = append(mods, ir.MapModifier{Kind: kind, Mapper: e.mapper})
	}
	return mods, mapType, nil
}

func (p *parser) parseScheduleArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	arg := &ir.ScheduleArg{}
	rest := toks
	if head, tail, found := cutTopLevel(toks, token.Colon); found {
		for _, run := range splitTopLevel(head, token.Comma) {
			name := p.textOf(run)
			mod, ok := ir.ParseScheduleModifier(p.fold(name))
			if !ok {
				return nil, p.argErr(sc, run, ErrUnknownModifier, diag.SynUnknownModifier,
					fmt.Sprintf("unknown schedule modifier %q", name))
			}
			arg.Modifiers = append(arg.Modifiers, mod)
		}
		rest = tail
	}
	kind, chunk, err := p.parseScheduleTail(sc, rest)
	if err != nil {
		return nil, err
	}
	arg.Kind, arg.Chunk = kind, chunk
	return arg, nil
}

func (p *parser) parseDistScheduleArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	kind, chunk, err := p.parseScheduleTail(sc, toks)
	if err != nil {
		return nil, err
	}
	return &ir.DistScheduleArg{Kind: kind, Chunk: chunk}, nil
}

// parseScheduleTail reads "kind" or "kind, chunk"; everything after the
// first comma is the chunk expression verbatim.
func (p *parser) parseScheduleTail(sc scope, toks []token.Token) (ir.ScheduleKind, *ir.Expression, error) {
	kindToks, chunkToks, found := cutTopLevel(toks, token.Comma)
	name := p.textOf(kindToks)
	if name == "" {
		return 0, nil, p.argErr(sc, nil, ErrMissingArgument, diag.SynMissingArgument, "missing schedule kind")
	}
	kind, ok := ir.ParseScheduleKind(p.fold(name))
	if !ok {
		return 0, nil, p.argErr(sc, kindToks, ErrUnknownModifier, diag.SynUnknownModifier,
			fmt.Sprintf("unknown schedule kind %q", name))
	}
	if !found {
		return kind, nil, nil
	}
	if len(chunkToks) == 0 {
		return 0, nil, p.argErr(sc, nil, ErrMissingArgument, diag.SynMissingArgument,
			"missing chunk size after ','")
	}
	chunk := p.exprOf(chunkToks)
	return kind, &chunk, nil
}

func (p *parser) parseDependArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	head, rest, found := cutTopLevel(toks, token.Colon)
	name := p.textOf(head)
	depType, ok := ir.ParseDependType(p.fold(name))
	if !ok {
		return nil, p.argErr(sc, head, ErrUnknownModifier, diag.SynUnknownModifier,
			fmt.Sprintf("unknown dependence type %q", name))
	}
	arg := &ir.DependArg{Type: depType}
	if found {
		items, err := p.requireItems(sc, rest)
		if err != nil {
			return nil, err
		}
		arg.Items = items
	}
	return arg, nil
}

func (p *parser) parseLinearArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	itemToks, stepToks, found := cutTopLevel(toks, token.Colon)
	arg := &ir.LinearArg{}
	if found {
		if len(stepToks) == 0 {
			return nil, p.argErr(sc, nil, ErrMissingArgument, diag.SynMissingArgument,
				"missing step after ':'")
		}
		step := p.exprOf(stepToks)
		arg.Step = &step
	}

	// linear(val(x, y)) wraps the list in a modifier; a lone "val" with
	// no parentheses is just an item called val.
	if len(itemToks) >= 2 && itemToks[0].Kind == token.Ident && itemToks[1].Kind == token.LParen {
		if mod, ok := ir.ParseLinearModifier(p.fold(itemToks[0].Text)); ok {
			inside, tail, ok2 := matchGroup(itemToks[1:], token.LParen, token.RParen)
			if ok2 && len(tail) == 0 {
				arg.Modifier, arg.HasModifier = mod, true
				itemToks = inside
			}
		}
	}
	items, err := p.requireItems(sc, itemToks)
	if err != nil {
		return nil, err
	}
	arg.Items = items
	return arg, nil
}

func (p *parser) parseAlignedArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	itemToks, alignToks, found := cutTopLevel(toks, token.Colon)
	arg := &ir.AlignedArg{}
	if found {
		if len(alignToks) == 0 {
			return nil, p.argErr(sc, nil, ErrMissingArgument, diag.SynMissingArgument,
				"missing alignment after ':'")
		}
		alignment := p.exprOf(alignToks)
		arg.Alignment = &alignment
	}
	items, err := p.requireItems(sc, itemToks)
	if err != nil {
		return nil, err
	}
	arg.Items = items
	return arg, nil
}

func (p *parser) parseLastprivateArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	arg := &ir.LastprivateArg{}
	rest := toks
	if head, tail, found := cutTopLevel(toks, token.Colon); found {
		name := p.textOf(head)
		if p.fold(name) != "conditional" {
			return nil, p.argErr(sc, head, ErrUnknownModifier, diag.SynUnknownModifier,
				fmt.Sprintf("unknown lastprivate modifier %q", name))
		}
		arg.Conditional = true
		rest = tail
	}
	items, err := p.requireItems(sc, rest)
	if err != nil {
		return nil, err
	}
	arg.Items = items
	return arg, nil
}

// keywordArg parses a single-identifier argument against a closed set.
func keywordArg[T any](p *parser, sc scope, toks []token.Token, what string, parse func(string) (T, bool)) (T, error) {
	var zero T
	if len(toks) == 0 {
		return zero, p.argErr(sc, nil, ErrMissingArgument, diag.SynMissingArgument,
			fmt.Sprintf("missing %s", what))
	}
	if len(toks) == 1 && toks[0].Kind == token.Ident {
		if v, ok := parse(p.fold(toks[0].Text)); ok {
			return v, nil
		}
	}
	return zero, p.argErr(sc, toks, ErrUnknownModifier, diag.SynUnknownModifier,
		fmt.Sprintf("invalid %s %q", what, p.textOf(toks)))
}

func (p *parser) parseProcBindArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	kind, err := keywordArg(p, sc, toks, "proc_bind policy", ir.ParseProcBindKind)
	if err != nil {
		return nil, err
	}
	return &ir.ProcBindArg{Kind: kind}, nil
}

func (p *parser) parseMemOrderArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	order, err := keywordArg(p, sc, toks, "memory order", ir.ParseMemoryOrder)
	if err != nil {
		return nil, err
	}
	return &ir.MemOrderArg{Order: order}, nil
}

func (p *parser) parseDeviceTypeArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	kind, err := keywordArg(p, sc, toks, "device type", ir.ParseDeviceTypeKind)
	if err != nil {
		return nil, err
	}
	return &ir.DeviceTypeArg{Kind: kind}, nil
}

func (p *parser) parseBindArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	kind, err := keywordArg(p, sc, toks, "binding", ir.ParseBindKind)
	if err != nil {
		return nil, err
	}
	return &ir.BindArg{Binding: kind}, nil
}

func (p *parser) parseOrderArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	arg := &ir.OrderArg{}
	rest := toks
	if head, tail, found := cutTopLevel(toks, token.Colon); found {
		mod, err := keywordArg(p, sc, head, "order modifier", ir.ParseOrderModifier)
		if err != nil {
			return nil, err
		}
		arg.Modifier, arg.HasModifier = mod, true
		rest = tail
	}
	_, err := keywordArg(p, sc, rest, "order kind", func(s string) (struct{}, bool) {
		return struct{}{}, s == "concurrent"
	})
	if err != nil {
		return nil, err
	}
	arg.Kind = ir.OrderConcurrent
	return arg, nil
}

func (p *parser) parseDefaultmapArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	behaviorToks, categoryToks, found := cutTopLevel(toks, token.Colon)
	behavior, err := keywordArg(p, sc, behaviorToks, "defaultmap behavior", ir.ParseDefaultmapBehavior)
	if err != nil {
		return nil, err
	}
	arg := &ir.DefaultmapArg{Behavior: behavior}
	if found {
		category, err := keywordArg(p, sc, categoryToks, "variable category", ir.ParseDefaultmapCategory)
		if err != nil {
			return nil, err
		}
		arg.Category, arg.HasCategory = category, true
	}
	return arg, nil
}

func (p *parser) parseAllocateArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	arg := &ir.AllocateArg{}
	rest := toks
	if head, tail, found := cutTopLevel(toks, token.Colon); found {
		if len(head) == 0 {
			return nil, p.argErr(sc, nil, ErrExpectedModifier, diag.SynExpectedModifier,
				"missing allocator before ':'")
		}
		allocator := p.exprOf(head)
		arg.Allocator = &allocator
		rest = tail
	}
	items, err := p.requireItems(sc, rest)
	if err != nil {
		return nil, err
	}
	arg.Items = items
	return arg, nil
}

// OpenACC parallelism arguments are comma-separated runs, each either a
// tagged value (num: 2) or untagged, in which case it lands in the
// field the clause defaults to.

func (p *parser) parseGangArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	return p.parseAccParallelism(sc, toks, "num", "static", "dim")
}

func (p *parser) parseWorkerArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	return p.parseAccParallelism(sc, toks, "num")
}

func (p *parser) parseVectorArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	return p.parseAccParallelism(sc, toks, "length")
}

func (p *parser) parseAccParallelism(sc scope, toks []token.Token, allowed ...string) (ir.ClauseData, error) {
	arg := &ir.AccParallelismArg{}
	assign := func(tag string, e ir.Expression) {
		switch tag {
		case "num":
			arg.Num = &e
		case "static":
			arg.Static = &e
		case "length":
			arg.Length = &e
		case "dim":
			arg.Dim = &e
		}
	}
	seen := false
	for _, run := range splitTopLevel(toks, token.Comma) {
		if len(run) == 0 {
			continue
		}
		seen = true
		tag, valToks, tagged := leadingTag(run)
		if !tagged {
			assign(allowed[0], p.exprOf(run))
			continue
		}
		folded := p.fold(tag)
		if !containsString(allowed, folded) {
			return nil, p.argErr(sc, run, ErrUnknownModifier, diag.SynUnknownModifier,
				fmt.Sprintf("unknown %s argument tag %q", sc.name, tag))
		}
		if len(valToks) == 0 {
			return nil, p.argErr(sc, run, ErrMissingArgument, diag.SynMissingArgument,
				fmt.Sprintf("missing value after %q", tag+":"))
		}
		assign(folded, p.exprOf(valToks))
	}
	if !seen {
		return nil, p.argErr(sc, nil, ErrMissingArgument, diag.SynMissingArgument, "empty argument")
	}
	return arg, nil
}

func (p *parser) parseReadonlyListArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	return p.parseAccDataArg(sc, toks, ir.AccDataReadonly)
}

func (p *parser) parseZeroListArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	return p.parseAccDataArg(sc, toks, ir.AccDataZero)
}

func (p *parser) parseAccDataArg(sc scope, toks []token.Token, allowed ir.AccDataModifier) (ir.ClauseData, error) {
	arg := &ir.AccDataArg{}
	rest := toks
	if tag, tail, tagged := leadingTag(toks); tagged {
		mod, ok := ir.ParseAccDataModifier(p.fold(tag))
		if !ok || mod != allowed {
			return nil, p.argErr(sc, toks[:1], ErrUnknownModifier, diag.SynUnknownModifier,
				fmt.Sprintf("unknown %s modifier %q", sc.name, tag))
		}
		arg.Modifier, arg.HasModifier = mod, true
		rest = tail
	}
	items, err := p.requireItems(sc, rest)
	if err != nil {
		return nil, err
	}
	arg.Items = items
	return arg, nil
}

// leadingTag matches an "ident :" prefix. A qualified name never
// matches because the lexer keeps '::' whole.
func leadingTag(toks []token.Token) (tag string, rest []token.Token, ok bool) {
	if len(toks) < 2 || toks[0].Kind != token.Ident || toks[1].Kind != token.Colon {
		return "", nil, false
	}
	return toks[0].Text, toks[2:], true
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
