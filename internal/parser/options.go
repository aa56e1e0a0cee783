package parser

import (
	"prag/internal/diag"
	"prag/internal/ir"
)

// DefaultMaxNestingDepth bounds how deep directive variants may nest
// inside metadirective selectors before parsing fails.
const DefaultMaxNestingDepth = 64

// Options configure one parse call. The zero value auto-detects the
// language from the sentinel, applies no normalization and discards
// diagnostics.
type Options struct {
	// Language is the assumed input language. Unless ForceLanguage is
	// set it only breaks ties the sentinel cannot settle.
	Language      ir.Language
	ForceLanguage bool

	// Normalization is applied to the clause list after assembly.
	Normalization ir.ClauseNormalizationMode

	// MaxNestingDepth caps metadirective variant recursion. Zero means
	// DefaultMaxNestingDepth.
	MaxNestingDepth int

	// MaxTokens is handed through to the lexer. Zero keeps its default.
	MaxTokens int

	// Reporter receives error and warning diagnostics as they are
	// found. Nil discards them; the returned *Error is authoritative
	// either way.
	Reporter diag.Reporter
}

func (o Options) reporter() diag.Reporter {
	if o.Reporter == nil {
		return diag.NopReporter{}
	}
	return o.Reporter
}

func (o Options) maxDepth() int {
	if o.MaxNestingDepth <= 0 {
		return DefaultMaxNestingDepth
	}
	return o.MaxNestingDepth
}
