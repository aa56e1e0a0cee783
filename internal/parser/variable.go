package parser

import (
	"prag/internal/diag"
	"prag/internal/ir"
	"prag/internal/token"
)

// parseItemsIn splits an argument group into variables on top-level
// commas. Empty segments are dropped; whether zero items is acceptable
// is the caller's call.
func (p *parser) parseItemsIn(sc scope, toks []token.Token) ([]ir.Variable, error) {
	var items []ir.Variable
	for _, run := range splitTopLevel(toks, token.Comma) {
		if len(run) == 0 {
			continue
		}
		v, err := p.parseVariable(sc, run)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// parseVariable parses one list item: an identifier (kept verbatim,
// never case-folded) with optional chained array sections. C sections
// use brackets, Fortran sections one parenthesized dimension list.
func (p *parser) parseVariable(sc scope, toks []token.Token) (ir.Variable, error) {
	if p.lang.IsFortran() {
		return p.parseVariableFortran(sc, toks)
	}
	return p.parseVariableC(sc, toks)
}

func (p *parser) parseVariableC(sc scope, toks []token.Token) (ir.Variable, error) {
	nameEnd := -1
	depth := 0
scan:
	for i, tok := range toks {
		switch tok.Kind {
		case token.LParen, token.LBrace:
			depth++
		case token.RParen, token.RBrace:
			depth--
		case token.LBracket:
			if depth == 0 {
				nameEnd = i
				break scan
			}
		}
	}
	if nameEnd < 0 {
		return ir.NewVariable(p.textOf(toks)), nil
	}
	if nameEnd == 0 {
		return ir.Variable{}, p.argErr(sc, toks, ErrInvalidArraySection, diag.SynArraySection,
			"array section without a base identifier")
	}

	v := ir.NewVariable(p.textOf(toks[:nameEnd]))
	rest := toks[nameEnd:]
	for len(rest) > 0 {
		if rest[0].Kind != token.LBracket {
			return ir.Variable{}, p.argErr(sc, rest, ErrInvalidArraySection, diag.SynArraySection,
				"unexpected text after array sections")
		}
		inside, tail, ok := matchGroup(rest, token.LBracket, token.RBracket)
		if !ok {
			return ir.Variable{}, p.argErr(sc, rest, ErrUnbalancedDelimiter, diag.SynUnbalancedGroup,
				"unclosed '['")
		}
		sec, err := p.parseSection(sc, inside)
		if err != nil {
			return ir.Variable{}, err
		}
		v.Sections = append(v.Sections, sec)
		rest = tail
	}
	return v, nil
}

func (p *parser) parseVariableFortran(sc scope, toks []token.Token) (ir.Variable, error) {
	nameEnd := -1
	depth := 0
scan:
	for i, tok := range toks {
		switch tok.Kind {
		case token.LBracket, token.LBrace:
			depth++
		case token.RBracket, token.RBrace:
			depth--
		case token.LParen:
			if depth == 0 {
				nameEnd = i
				break scan
			}
		}
	}
	if nameEnd < 0 {
		return ir.NewVariable(p.textOf(toks)), nil
	}
	if nameEnd == 0 {
		return ir.Variable{}, p.argErr(sc, toks, ErrInvalidArraySection, diag.SynArraySection,
			"array section without a base identifier")
	}

	v := ir.NewVariable(p.textOf(toks[:nameEnd]))
	inside, tail, ok := matchGroup(toks[nameEnd:], token.LParen, token.RParen)
	if !ok {
		return ir.Variable{}, p.argErr(sc, toks[nameEnd:], ErrUnbalancedDelimiter, diag.SynUnbalancedGroup,
			"unclosed '('")
	}
	if len(tail) > 0 {
		return ir.Variable{}, p.argErr(sc, tail, ErrInvalidArraySection, diag.SynArraySection,
			"unexpected text after array sections")
	}
	for _, dim := range splitTopLevel(inside, token.Comma) {
		if len(dim) == 0 {
			continue
		}
		sec, err := p.parseSection(sc, dim)
		if err != nil {
			return ir.Variable{}, err
		}
		v.Sections = append(v.Sections, sec)
	}
	return v, nil
}

// parseSection parses one dimension: up to three colon-separated
// optional bounds. A single part is a plain index; absent parts stay
// nil so the original spelling survives reconstruction.
func (p *parser) parseSection(sc scope, toks []token.Token) (ir.ArraySection, error) {
	parts := sectionRuns(toks)
	if len(parts) > 3 {
		return ir.ArraySection{}, p.argErr(sc, toks, ErrInvalidArraySection, diag.SynArraySection,
			"array section has more than three ':'-separated parts")
	}
	bound := func(run []token.Token) *ir.Expression {
		if len(run) == 0 {
			return nil
		}
		e := p.exprOf(run)
		return &e
	}
	var sec ir.ArraySection
	sec.Lower = bound(parts[0])
	if len(parts) > 1 {
		sec.Extent = bound(parts[1])
	}
	if len(parts) > 2 {
		sec.Stride = bound(parts[2])
	}
	return sec, nil
}

// sectionRuns splits one dimension at its top-level colons. Unlike the
// clause splitter it counts a '::' token as two separators with an
// empty bound between them, so a(1::2) keeps its stride. Scope pairs
// cannot occur between section bounds.
func sectionRuns(toks []token.Token) [][]token.Token {
	runs := make([][]token.Token, 0, 3)
	depth := 0
	start := 0
	for i, tok := range toks {
		switch {
		case tok.Kind.IsOpen():
			depth++
		case tok.Kind.IsClose():
			depth--
		case depth > 0:
		case tok.Kind == token.Colon:
			runs = append(runs, toks[start:i])
			start = i + 1
		case tok.Is(token.Punct, "::"):
			runs = append(runs, toks[start:i], nil)
			start = i + 1
		}
	}
	return append(runs, toks[start:])
}
