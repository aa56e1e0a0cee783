package parser

import (
	"fmt"
	"strings"

	"prag/internal/diag"
	"prag/internal/ir"
	"prag/internal/token"
)

// maxDirectiveWords is the word count of the longest registered name,
// "target teams distribute parallel for simd".
const maxDirectiveWords = 6

// The directive registries are closed: every spelling either resolves
// to a DirectiveKind or the line fails with an unknown-directive error.
// Names are keyed normalized, lowercase with single spaces.
var (
	ompDirectives = buildDirectiveTable(ir.DialectOpenMP, nil)

	// OpenACC additionally admits the underscore spellings its grammar
	// allows alongside the spaced forms.
	accDirectives = buildDirectiveTable(ir.DialectOpenACC, map[string]string{
		"enter_data":    "enter data",
		"exit_data":     "exit data",
		"host_data":     "host data",
		"end host_data": "end host data",
	})
)

func buildDirectiveTable(d ir.Dialect, aliases map[string]string) map[string]ir.DirectiveKind {
	table := make(map[string]ir.DirectiveKind)
	for _, kind := range ir.Directives(d) {
		table[kind.String()] = kind
	}
	for alias, canonical := range aliases {
		if kind, ok := table[canonical]; ok {
			table[alias] = kind
		}
	}
	return table
}

func directivesFor(d ir.Dialect) map[string]ir.DirectiveKind {
	if d == ir.DialectOpenACC {
		return accDirectives
	}
	return ompDirectives
}

// LookupDirective resolves one spelling against a dialect's registry.
// The name is trimmed and lowercased, so it answers for both C and
// Fortran inputs; multi-word names use single spaces.
func LookupDirective(d ir.Dialect, name string) (ir.DirectiveKind, bool) {
	key := strings.Join(strings.Fields(strings.ToLower(name)), " ")
	kind, ok := directivesFor(d)[key]
	return kind, ok
}

// resolveDirective consumes the leading identifier tokens that name the
// directive. Matching is greedy: the longest registered keyword
// sequence wins, so "target teams distribute" never stops at "target".
func (p *parser) resolveDirective() (ir.DirectiveKind, error) {
	table := directivesFor(p.dialect)

	words := make([]string, 0, maxDirectiveWords)
	for i := 0; i < maxDirectiveWords && p.pos+i < len(p.toks); i++ {
		tok := p.toks[p.pos+i]
		if tok.Kind != token.Ident {
			break
		}
		words = append(words, p.fold(tok.Text))
	}
	if len(words) == 0 {
		return 0, p.fail(ErrUnknownDirective, diag.SynUnknownDirective, p.hereSpan(), "",
			"expected a directive name")
	}
	for n := len(words); n > 0; n-- {
		if kind, ok := table[strings.Join(words[:n], " ")]; ok {
			p.pos += n
			return kind, nil
		}
	}
	tok := p.toks[p.pos]
	return 0, p.failSuggest(ErrUnknownDirective, diag.SynUnknownDirective, p.tokenSpan(tok),
		fmt.Sprintf("unknown %s directive %q", p.dialect, tok.Text),
		"directive", nearestKey(table, words[0]))
}
