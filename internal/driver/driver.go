// Package driver runs the parse pipeline end to end: single directive
// lines, whole files with continuation splicing, and parallel directory
// scans with a content-addressed result cache.
package driver

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"prag/internal/diag"
	"prag/internal/ir"
	"prag/internal/parser"
	"prag/internal/project"
	"prag/internal/source"
)

// DefaultMaxDiagnostics caps each file's diagnostic bag unless the
// caller asks for more.
const DefaultMaxDiagnostics = 64

// Options configure every driver entry point. The zero value detects
// the language from sentinels, accepts both dialects, applies no
// normalization and runs without cache, observer or events.
type Options struct {
	// Language fixes the input language instead of trusting the
	// sentinel when ForceLanguage is set.
	Language      ir.Language
	ForceLanguage bool

	// Dialects lists the dialects to extract and parse. Empty enables
	// both.
	Dialects []ir.Dialect

	Normalization ir.ClauseNormalizationMode
	MaxNesting    int

	// MaxDiagnostics caps each file's bag. Zero means
	// DefaultMaxDiagnostics.
	MaxDiagnostics int

	// Encoding applies to files loaded from disk during ParseFile and
	// Scan.
	Encoding source.Encoding

	// Jobs bounds scan concurrency. Zero means one worker per
	// processor.
	Jobs int

	// Selects filters scan files by root-relative path. Nil selects
	// every file with a recognized extension.
	Selects func(rel string) bool

	// Cache, when non-nil, memoizes per-file scan results keyed by
	// content hash and options fingerprint.
	Cache *DiskCache

	// Observer receives coarse phase boundaries; Sink receives
	// per-file progress during Scan. Either may be nil.
	Observer PhaseObserver
	Sink     ProgressSink
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// dialectEnabled reports whether directives of dialect d should be
// extracted and parsed.
func (o Options) dialectEnabled(d ir.Dialect) bool {
	if len(o.Dialects) == 0 {
		return true
	}
	for _, enabled := range o.Dialects {
		if enabled == d {
			return true
		}
	}
	return false
}

// parserOptions maps driver options onto one parse call.
func (o Options) parserOptions(reporter diag.Reporter) parser.Options {
	return parser.Options{
		Language:        o.Language,
		ForceLanguage:   o.ForceLanguage,
		Normalization:   o.Normalization,
		MaxNestingDepth: o.MaxNesting,
		Reporter:        reporter,
	}
}

// fingerprint digests every option that changes parse results, so the
// cache never serves output produced under different settings.
func (o Options) fingerprint() project.Digest {
	var b strings.Builder
	fmt.Fprintf(&b, "lang=%d force=%t norm=%d nest=%d maxdiag=%d dialects=",
		o.Language, o.ForceLanguage, o.Normalization, o.MaxNesting, o.maxDiagnostics())
	if len(o.Dialects) == 0 {
		b.WriteString("all")
	}
	for _, d := range o.Dialects {
		fmt.Fprintf(&b, "%d,", d)
	}
	return sha256.Sum256([]byte(b.String()))
}
