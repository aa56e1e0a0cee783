package parser

import (
	"fmt"

	"prag/internal/diag"
	"prag/internal/ir"
	"prag/internal/source"
	"prag/internal/token"
)

// group consumes a '(...)' run at the cursor and returns the tokens
// inside, with the span covering both parentheses. The caller has
// checked that the cursor sits on '('.
func (p *parser) group() ([]token.Token, source.Span, error) {
	open := p.toks[p.pos]
	inside, rest, ok := matchGroup(p.toks[p.pos:], token.LParen, token.RParen)
	if !ok {
		return nil, source.Span{}, p.fail(ErrUnbalancedDelimiter, diag.SynUnbalancedGroup,
			p.tokenSpan(open), "", "unclosed '('")
	}
	consumed := len(p.toks) - p.pos - len(rest)
	span := source.Span{File: p.file.ID, Start: open.Off, End: p.toks[p.pos+consumed-1].End()}
	p.pos += consumed
	return inside, span, nil
}

// parseParameter reads the directive's own argument for the handful of
// kinds that take one, before any clauses. The cursor sits on the first
// token after the directive name.
func (p *parser) parseParameter(kind ir.DirectiveKind) (*ir.DirectiveParameter, error) {
	switch kind {
	case ir.OmpCritical, ir.OmpDeclareSimd, ir.OmpDeclareVariant,
		ir.OmpBeginDeclareVariant, ir.AccRoutine:
		return p.parseNameParameter(kind)
	case ir.OmpCancel, ir.OmpCancellationPoint:
		return p.parseConstructParameter(kind)
	case ir.OmpFlush, ir.OmpAllocate:
		return p.parseItemsParameter(kind, false)
	case ir.OmpDepobj, ir.OmpThreadprivate:
		return p.parseItemsParameter(kind, true)
	case ir.OmpDeclareReduction:
		return p.parseReductionParameter(kind)
	case ir.OmpDeclareMapper:
		return p.parseMapperParameter(kind)
	case ir.AccCache:
		return p.parseCacheParameter(kind)
	case ir.AccWait:
		return p.parseWaitParameter()
	}
	return nil, nil
}

func (p *parser) requireGroup(kind ir.DirectiveKind) ([]token.Token, source.Span, error) {
	if !p.at(token.LParen) {
		return nil, source.Span{}, p.fail(ErrDirectiveParameter, diag.SynDirectiveParameter,
			p.hereSpan(), "", fmt.Sprintf("%s requires a parenthesized argument", kind))
	}
	return p.group()
}

// parseNameParameter reads an optional "(name)" group. The name is kept
// verbatim, so qualified spellings like ns::fn survive.
func (p *parser) parseNameParameter(kind ir.DirectiveKind) (*ir.DirectiveParameter, error) {
	if !p.at(token.LParen) {
		return nil, nil
	}
	inside, span, err := p.group()
	if err != nil {
		return nil, err
	}
	if len(inside) == 0 {
		sc := scope{name: kind.String(), span: span}
		return nil, p.argErr(sc, nil, ErrDirectiveParameter, diag.SynDirectiveParameter,
			fmt.Sprintf("%s expects a name between the parentheses", kind))
	}
	return ir.NameParameter(p.textOf(inside)), nil
}

// parseConstructParameter reads the construct named after cancel and
// cancellation point. The cancellable constructs are all one word, so
// the greedy multi-word match never applies here.
func (p *parser) parseConstructParameter(kind ir.DirectiveKind) (*ir.DirectiveParameter, error) {
	if !p.at(token.Ident) {
		return nil, p.fail(ErrDirectiveParameter, diag.SynDirectiveParameter, p.hereSpan(), "",
			fmt.Sprintf("%s requires a construct name", kind))
	}
	tok := p.toks[p.pos]
	construct, ok := directivesFor(p.dialect)[p.fold(tok.Text)]
	if !ok {
		return nil, p.fail(ErrDirectiveParameter, diag.SynDirectiveParameter, p.tokenSpan(tok), "",
			fmt.Sprintf("unknown construct %q", tok.Text))
	}
	p.pos++
	return ir.ConstructParameter(construct), nil
}

func (p *parser) parseItemsParameter(kind ir.DirectiveKind, required bool) (*ir.DirectiveParameter, error) {
	var (
		inside []token.Token
		span   source.Span
		err    error
	)
	if required {
		inside, span, err = p.requireGroup(kind)
	} else {
		if !p.at(token.LParen) {
			return nil, nil
		}
		inside, span, err = p.group()
	}
	if err != nil {
		return nil, err
	}
	items, err := p.requireItems(scope{name: kind.String(), span: span}, inside)
	if err != nil {
		return nil, err
	}
	return ir.ItemsParameter(items), nil
}

// parseReductionParameter reads "(identifier : type-list : combiner)"
// with an optional trailing "initializer(...)" group.
func (p *parser) parseReductionParameter(kind ir.DirectiveKind) (*ir.DirectiveParameter, error) {
	inside, span, err := p.requireGroup(kind)
	if err != nil {
		return nil, err
	}
	sc := scope{name: kind.String(), span: span}
	parts := splitTopLevel(inside, token.Colon)
	if len(parts) != 3 {
		return nil, p.argErr(sc, inside, ErrDirectiveParameter, diag.SynDirectiveParameter,
			"expected 'identifier : type-list : combiner'")
	}

	spec := &ir.ReductionSpec{}
	opText := p.textOf(parts[0])
	if opText == "" {
		return nil, p.argErr(sc, nil, ErrDirectiveParameter, diag.SynDirectiveParameter,
			"missing reduction identifier")
	}
	if op, ok := ir.ParseReductionOperator(p.fold(opText)); ok {
		spec.Op = op
	} else {
		spec.Op, spec.Custom = ir.ReduceCustom, opText
	}
	for _, run := range splitTopLevel(parts[1], token.Comma) {
		if len(run) == 0 {
			continue
		}
		spec.Types = append(spec.Types, p.textOf(run))
	}
	if len(spec.Types) == 0 {
		return nil, p.argErr(sc, parts[1], ErrDirectiveParameter, diag.SynDirectiveParameter,
			"missing type list")
	}
	if len(parts[2]) == 0 {
		return nil, p.argErr(sc, nil, ErrDirectiveParameter, diag.SynDirectiveParameter,
			"missing combiner expression")
	}
	spec.Combiner = p.exprOf(parts[2])

	if p.at(token.Ident) && p.fold(p.toks[p.pos].Text) == "initializer" {
		p.pos++
		if !p.at(token.LParen) {
			return nil, p.fail(ErrDirectiveParameter, diag.SynDirectiveParameter, p.hereSpan(),
				sc.name, "initializer requires a parenthesized expression")
		}
		init, initSpan, err := p.group()
		if err != nil {
			return nil, err
		}
		if len(init) == 0 {
			return nil, p.fail(ErrDirectiveParameter, diag.SynDirectiveParameter, initSpan,
				sc.name, "empty initializer")
		}
		e := p.exprOf(init)
		spec.Initializer = &e
	}
	return &ir.DirectiveParameter{Kind: ir.ParamReduction, Reduction: spec}, nil
}

// parseMapperParameter reads "([mapper-id :] type declarator)". The
// declarator text stays opaque.
func (p *parser) parseMapperParameter(kind ir.DirectiveKind) (*ir.DirectiveParameter, error) {
	inside, span, err := p.requireGroup(kind)
	if err != nil {
		return nil, err
	}
	sc := scope{name: kind.String(), span: span}
	spec := &ir.MapperSpec{}
	declToks := inside
	if head, tail, found := cutTopLevel(inside, token.Colon); found && len(head) == 1 && head[0].Kind == token.Ident {
		spec.ID = head[0].Text
		declToks = tail
	}
	spec.Decl = p.textOf(declToks)
	if spec.Decl == "" {
		return nil, p.argErr(sc, nil, ErrDirectiveParameter, diag.SynDirectiveParameter,
			"missing mapper declaration")
	}
	return &ir.DirectiveParameter{Kind: ir.ParamMapper, Mapper: spec}, nil
}

func (p *parser) parseCacheParameter(kind ir.DirectiveKind) (*ir.DirectiveParameter, error) {
	inside, span, err := p.requireGroup(kind)
	if err != nil {
		return nil, err
	}
	sc := scope{name: kind.String(), span: span}
	rest := inside
	readonly := false
	if tag, tail, tagged := leadingTag(inside); tagged {
		if p.fold(tag) != "readonly" {
			return nil, p.argErr(sc, inside[:1], ErrDirectiveParameter, diag.SynDirectiveParameter,
				fmt.Sprintf("unknown cache modifier %q", tag))
		}
		readonly = true
		rest = tail
	}
	items, err := p.requireItems(sc, rest)
	if err != nil {
		return nil, err
	}
	param := ir.ItemsParameter(items)
	param.Readonly = readonly
	return param, nil
}

// parseWaitParameter reads the optional wait argument list. Runs keep
// any devnum: or queues: prefixes verbatim.
func (p *parser) parseWaitParameter() (*ir.DirectiveParameter, error) {
	if !p.at(token.LParen) {
		return nil, nil
	}
	inside, _, err := p.group()
	if err != nil {
		return nil, err
	}
	exprs := p.exprRuns(inside, token.Comma)
	if len(exprs) == 0 {
		return nil, nil
	}
	return ir.ExprsParameter(exprs), nil
}
