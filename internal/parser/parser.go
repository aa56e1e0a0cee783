// Package parser turns OpenMP and OpenACC directive lines into typed
// ir directives.
//
// Parsing is all or nothing: a line either yields a complete
// DirectiveIR or a single *Error, never a partial value. Directive and
// clause keywords live in closed registries per dialect, so an
// unregistered spelling fails the line instead of passing through as
// opaque text. Expression and variable payloads, by contrast, are kept
// verbatim; the parser splits them at top-level separators but never
// evaluates them.
package parser

import (
	"errors"
	"fmt"

	"prag/internal/diag"
	"prag/internal/ir"
	"prag/internal/lexer"
	"prag/internal/source"
	"prag/internal/token"
)

type parser struct {
	file    *source.File
	opts    Options
	lang    ir.Language
	dialect ir.Dialect
	toks    []token.Token
	pos     int
	depth   int
	start   uint32
}

// Parse lexes and parses the directive line held in file.
func Parse(file *source.File, opts Options) (*ir.DirectiveIR, error) {
	res, err := lexer.Tokenize(file, lexer.Options{
		Reporter:      opts.Reporter,
		Language:      opts.Language,
		ForceLanguage: opts.ForceLanguage,
		MaxTokens:     opts.MaxTokens,
	})
	if err != nil {
		return nil, lexFailure(file, err)
	}
	p := &parser{
		file:    file,
		opts:    opts,
		lang:    res.Language,
		dialect: res.Dialect,
		toks:    res.Tokens,
		start:   res.Sentinel.Span.Start,
	}
	return p.parseDirective()
}

// ParseLine parses one directive line held in memory, for callers that
// have no file to hand. The line carries its own sentinel, so the
// language and dialect come from the text itself.
func ParseLine(line string, opts Options) (*ir.DirectiveIR, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<directive>", []byte(line))
	return Parse(fs.Get(id), opts)
}

// lexFailure converts a lexer error into the parser's error type so
// callers see one failure surface.
func lexFailure(file *source.File, err error) error {
	var lerr *lexer.Error
	if !errors.As(err, &lerr) {
		return err
	}
	kind := ErrLex
	if lerr.Code == diag.LexUnbalancedDelimiter {
		kind = ErrUnbalancedDelimiter
	}
	lc := file.Position(lerr.Span.Start)
	return &Error{
		Kind:    kind,
		Code:    lerr.Code,
		Message: lerr.Msg,
		Loc:     ir.SourceLocation{Line: lc.Line, Column: lc.Col},
	}
}

func (p *parser) parseDirective() (*ir.DirectiveIR, error) {
	loc := p.locOf(source.Span{File: p.file.ID, Start: p.start, End: p.start})
	kind, err := p.resolveDirective()
	if err != nil {
		return nil, err
	}
	param, err := p.parseParameter(kind)
	if err != nil {
		return nil, err
	}
	clauses, err := p.parseClauses()
	if err != nil {
		return nil, err
	}
	d := ir.NewDirective(kind, p.lang, loc, param, clauses)
	return d.Normalized(p.opts.Normalization), nil
}

// parseClauses drains the rest of the line as a clause sequence.
// OpenACC permits commas between clauses; OpenMP separates them with
// whitespace alone.
func (p *parser) parseClauses() ([]ir.Clause, error) {
	var clauses []ir.Clause
	table := clausesFor(p.dialect)
	for !p.eof() {
		if p.dialect == ir.DialectOpenACC && p.at(token.Comma) {
			p.pos++
			continue
		}
		tok := p.toks[p.pos]
		if tok.Kind != token.Ident {
			return nil, p.fail(ErrUnknownClause, diag.SynTrailingTokens, p.tokenSpan(tok), "",
				fmt.Sprintf("stray %q where a clause keyword was expected", tok.Text))
		}
		entry, ok := table[p.fold(tok.Text)]
		if !ok {
			return nil, p.failSuggest(ErrUnknownClause, diag.SynUnknownClause, p.tokenSpan(tok),
				fmt.Sprintf("unknown clause %q", tok.Text),
				"clause", nearestKey(table, p.fold(tok.Text)))
		}
		p.pos++
		clause, err := p.parseClauseArg(tok, entry)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	return clauses, nil
}

func (p *parser) parseClauseArg(tok token.Token, entry clauseEntry) (ir.Clause, error) {
	name := tok.Text
	clause := ir.Clause{Kind: entry.kind}
	if !p.at(token.LParen) {
		if entry.rule == ArgRequired {
			return clause, p.fail(ErrMissingArgument, diag.SynMissingArgument, p.hereSpan(), name,
				fmt.Sprintf("clause %q requires a parenthesized argument", name))
		}
		return clause, nil
	}
	if entry.rule == ArgNone {
		return clause, p.fail(ErrUnknownClause, diag.SynTrailingTokens, p.hereSpan(), name,
			fmt.Sprintf("clause %q takes no argument", name))
	}
	inside, span, err := p.group()
	if err != nil {
		return clause, err
	}
	data, err := entry.parse(p, scope{name: name, span: span}, inside)
	if err != nil {
		return clause, err
	}
	clause.Data = data
	return clause, nil
}
