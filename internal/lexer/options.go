package lexer

import (
	"prag/internal/diag"
	"prag/internal/ir"
	"prag/internal/source"
)

// defaultMaxTokens bounds one logical line. Real directives stay far
// below this; the cap exists for generated or corrupt input.
const defaultMaxTokens = 4096

// Options configures a Lexer. The zero value auto-detects the language
// from the sentinel and discards diagnostics.
type Options struct {
	// Reporter receives warnings and error diagnostics. May be nil.
	Reporter diag.Reporter

	// Language pins the input language when ForceLanguage is set.
	// Otherwise the sentinel decides.
	Language      ir.Language
	ForceLanguage bool

	// MaxTokens caps how many tokens Tokenize will produce for one
	// line; 0 means defaultMaxTokens.
	MaxTokens int
}

func (o Options) maxTokens() int {
	if o.MaxTokens > 0 {
		return o.MaxTokens
	}
	return defaultMaxTokens
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil, nil)
	}
}
