package parser

import (
	"fmt"

	"prag/internal/diag"
	"prag/internal/ir"
	"prag/internal/source"
	"prag/internal/token"
)

// scope names the clause or directive keyword an argument group belongs
// to, with the span of that group for error locations.
type scope struct {
	name string
	span source.Span
}

func (p *parser) fold(s string) string { return p.lang.Fold(s) }

func (p *parser) eof() bool { return p.pos >= len(p.toks) }

func (p *parser) at(k token.Kind) bool {
	return p.pos < len(p.toks) && p.toks[p.pos].Kind == k
}

// textOf recovers the verbatim source text covered by a token run,
// interior spacing included.
func (p *parser) textOf(toks []token.Token) string {
	if len(toks) == 0 {
		return ""
	}
	return string(p.file.Content[toks[0].Off:toks[len(toks)-1].End()])
}

func (p *parser) exprOf(toks []token.Token) ir.Expression {
	return ir.NewExpression(p.textOf(toks))
}

// exprRuns splits toks at sep and keeps each non-empty run as one
// opaque expression.
func (p *parser) exprRuns(toks []token.Token, sep token.Kind) []ir.Expression {
	var list []ir.Expression
	for _, run := range splitTopLevel(toks, sep) {
		if len(run) == 0 {
			continue
		}
		list = append(list, p.exprOf(run))
	}
	return list
}

func (p *parser) tokenSpan(tok token.Token) source.Span {
	return source.Span{File: p.file.ID, Start: tok.Off, End: tok.End()}
}

func (p *parser) spanOf(toks []token.Token) source.Span {
	if len(toks) == 0 {
		return p.hereSpan()
	}
	return source.Span{File: p.file.ID, Start: toks[0].Off, End: toks[len(toks)-1].End()}
}

// hereSpan points at the current token, or just past the last consumed
// one when the line is exhausted.
func (p *parser) hereSpan() source.Span {
	if p.pos < len(p.toks) {
		return p.tokenSpan(p.toks[p.pos])
	}
	if len(p.toks) > 0 {
		end := p.toks[len(p.toks)-1].End()
		return source.Span{File: p.file.ID, Start: end, End: end}
	}
	return source.Span{File: p.file.ID}
}

func (p *parser) locOf(span source.Span) ir.SourceLocation {
	lc := p.file.Position(span.Start)
	return ir.SourceLocation{Line: lc.Line, Column: lc.Col}
}

// fail builds the parse error and mirrors it to the reporter.
func (p *parser) fail(kind ErrorKind, code diag.Code, span source.Span, clause, msg string) error {
	p.opts.reporter().Report(code, diag.SevError, span, msg, nil, nil)
	return &Error{Kind: kind, Code: code, Message: msg, Loc: p.locOf(span), Clause: clause}
}

// failSuggest is fail plus a did-you-mean note and a replacement fix on
// the reported diagnostic. The returned *Error is unchanged; suggestions
// ride on the reporter surface only.
func (p *parser) failSuggest(kind ErrorKind, code diag.Code, span source.Span, msg, what, suggestion string) error {
	if suggestion == "" {
		return p.fail(kind, code, span, "", msg)
	}
	notes := []diag.Note{{Span: span, Msg: fmt.Sprintf("nearest %s keyword is %q", what, suggestion)}}
	fixes := []diag.Fix{{
		Title: fmt.Sprintf("replace with %q", suggestion),
		Edits: []diag.FixEdit{{Span: span, NewText: suggestion}},
	}}
	p.opts.reporter().Report(code, diag.SevError, span, msg, notes, fixes)
	return &Error{Kind: kind, Code: code, Message: msg, Loc: p.locOf(span)}
}

// argErr reports a failure inside a clause or directive argument group,
// pinned to the given token run when there is one.
func (p *parser) argErr(sc scope, toks []token.Token, kind ErrorKind, code diag.Code, msg string) error {
	span := sc.span
	if len(toks) > 0 {
		span = p.spanOf(toks)
	}
	return p.fail(kind, code, span, sc.name, msg)
}
