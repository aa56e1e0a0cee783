package parser

import (
	"fmt"
	"strings"

	"prag/internal/diag"
	"prag/internal/ir"
	"prag/internal/token"
)

// Metadirective payloads. A when clause is "selector-list : variant",
// match is a bare selector list, otherwise is a bare variant.

func (p *parser) parseWhenArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	head, tail, found := cutTopLevel(toks, token.Colon)
	if !found {
		return nil, p.argErr(sc, toks, ErrSelector, diag.SynSelector,
			"missing ':' after the context selector")
	}
	sets, err := p.parseTraitSets(sc, head)
	if err != nil {
		return nil, err
	}
	arg := &ir.WhenArg{Selectors: sets}
	if len(tail) > 0 {
		d, err := p.parseNested(sc, tail)
		if err != nil {
			return nil, err
		}
		arg.Directive = d
	}
	return arg, nil
}

func (p *parser) parseMatchArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	sets, err := p.parseTraitSets(sc, toks)
	if err != nil {
		return nil, err
	}
	return &ir.WhenArg{Selectors: sets}, nil
}

func (p *parser) parseOtherwiseArg(sc scope, toks []token.Token) (ir.ClauseData, error) {
	arg := &ir.OtherwiseArg{}
	if len(toks) > 0 {
		d, err := p.parseNested(sc, toks)
		if err != nil {
			return nil, err
		}
		arg.Directive = d
	}
	return arg, nil
}

func (p *parser) parseTraitSets(sc scope, toks []token.Token) ([]ir.TraitSet, error) {
	var sets []ir.TraitSet
	for _, run := range splitTopLevel(toks, token.Comma) {
		if len(run) == 0 {
			continue
		}
		set, err := p.parseTraitSet(sc, run)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	if len(sets) == 0 {
		return nil, p.argErr(sc, toks, ErrSelector, diag.SynSelector, "empty context selector")
	}
	return sets, nil
}

// parseTraitSet parses one "name = { selector, ... }" group.
func (p *parser) parseTraitSet(sc scope, toks []token.Token) (ir.TraitSet, error) {
	var set ir.TraitSet
	if toks[0].Kind != token.Ident {
		return set, p.argErr(sc, toks[:1], ErrSelector, diag.SynSelector,
			"expected a trait-set name")
	}
	name, ok := ir.ParseTraitSetName(p.fold(toks[0].Text))
	if !ok {
		return set, p.argErr(sc, toks[:1], ErrSelector, diag.SynSelector,
			fmt.Sprintf("unknown trait set %q", toks[0].Text))
	}
	set.Set = name
	if len(toks) < 2 || !toks[1].Is(token.Punct, "=") {
		return set, p.argErr(sc, toks, ErrSelector, diag.SynSelector,
			fmt.Sprintf("expected '=' after trait set %q", toks[0].Text))
	}
	if len(toks) < 3 || toks[2].Kind != token.LBrace {
		return set, p.argErr(sc, toks, ErrSelector, diag.SynSelector,
			fmt.Sprintf("expected '{' after trait set %q", toks[0].Text))
	}
	inside, tail, ok := matchGroup(toks[2:], token.LBrace, token.RBrace)
	if !ok {
		return set, p.argErr(sc, toks[2:], ErrUnbalancedDelimiter, diag.SynUnbalancedGroup,
			"unclosed '{'")
	}
	if len(tail) > 0 {
		return set, p.argErr(sc, tail, ErrSelector, diag.SynSelector,
			"unexpected text after '}'")
	}
	for _, run := range splitTopLevel(inside, token.Comma) {
		if len(run) == 0 {
			continue
		}
		sel, err := p.parseTraitSelector(sc, run)
		if err != nil {
			return set, err
		}
		set.Selectors = append(set.Selectors, sel)
	}
	if len(set.Selectors) == 0 {
		return set, p.argErr(sc, inside, ErrSelector, diag.SynSelector,
			fmt.Sprintf("empty trait set %q", toks[0].Text))
	}
	return set, nil
}

// parseTraitSelector parses "name" or "name(prop, ...)". Construct
// selectors such as "parallel for" may span several words.
func (p *parser) parseTraitSelector(sc scope, toks []token.Token) (ir.TraitSelector, error) {
	var sel ir.TraitSelector
	var words []string
	i := 0
	for i < len(toks) && toks[i].Kind == token.Ident {
		words = append(words, toks[i].Text)
		i++
	}
	if len(words) == 0 {
		return sel, p.argErr(sc, toks, ErrSelector, diag.SynSelector,
			fmt.Sprintf("expected a selector name, found %q", p.textOf(toks)))
	}
	sel.Name = strings.Join(words, " ")
	if i == len(toks) {
		return sel, nil
	}
	if toks[i].Kind != token.LParen {
		return sel, p.argErr(sc, toks[i:], ErrSelector, diag.SynSelector,
			fmt.Sprintf("unexpected text after selector %q", sel.Name))
	}
	inside, tail, ok := matchGroup(toks[i:], token.LParen, token.RParen)
	if !ok {
		return sel, p.argErr(sc, toks[i:], ErrUnbalancedDelimiter, diag.SynUnbalancedGroup,
			"unclosed '('")
	}
	if len(tail) > 0 {
		return sel, p.argErr(sc, tail, ErrSelector, diag.SynSelector,
			fmt.Sprintf("unexpected text after selector %q", sel.Name))
	}
	sel.Props = p.exprRuns(inside, token.Comma)
	if len(sel.Props) == 0 {
		return sel, p.argErr(sc, inside, ErrSelector, diag.SynSelector,
			fmt.Sprintf("selector %q has empty properties", sel.Name))
	}
	return sel, nil
}

// parseNested parses a directive variant embedded in a clause argument.
func (p *parser) parseNested(sc scope, toks []token.Token) (*ir.DirectiveIR, error) {
	if p.depth+1 > p.opts.maxDepth() {
		return nil, p.argErr(sc, toks, ErrNestingTooDeep, diag.SynNestingTooDeep,
			fmt.Sprintf("directive variants nested deeper than %d", p.opts.maxDepth()))
	}
	sub := &parser{
		file:    p.file,
		opts:    p.opts,
		lang:    p.lang,
		dialect: p.dialect,
		toks:    toks,
		depth:   p.depth + 1,
		start:   p.start,
	}
	if len(toks) > 0 {
		sub.start = toks[0].Off
	}
	return sub.parseDirective()
}
