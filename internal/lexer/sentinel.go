package lexer

import (
	"prag/internal/diag"
	"prag/internal/ir"
	"prag/internal/source"
)

// Sentinel is the directive prefix that opens a logical line: #pragma
// omp for C, !$omp for free-form Fortran, c$omp / C$OMP / *$omp for
// fixed form, with acc in place of omp for OpenACC.
type Sentinel struct {
	Language ir.Language
	Dialect  ir.Dialect
	Span     source.Span
	Text     string
}

// DetectLanguage classifies a line by its first sentinel bytes without
// consuming anything. It looks past leading blanks: #pragma means C,
// !$ free-form Fortran, and c$, C$ or *$ fixed form.
func DetectLanguage(line []byte) (ir.Language, bool) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	rest := line[i:]
	switch {
	case len(rest) > 0 && rest[0] == '#':
		return ir.LangC, true
	case len(rest) >= 2 && rest[0] == '!' && rest[1] == '$':
		return ir.LangFortranFree, true
	case len(rest) >= 2 && (rest[0] == 'c' || rest[0] == 'C' || rest[0] == '*') && rest[1] == '$':
		return ir.LangFortranFixed, true
	}
	return ir.LangC, false
}

// DetectDirective reports whether a physical line opens a directive and
// which language and dialect its sentinel selects, without building a
// lexer. The extraction pass uses it to pick directive lines out of
// whole source files; the match rules are the same as ScanSentinel's.
func DetectDirective(line []byte) (ir.Language, ir.Dialect, bool) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	rest := line[i:]
	lang, ok := DetectLanguage(rest)
	if !ok {
		return 0, 0, false
	}
	switch lang {
	case ir.LangC:
		if !hasWordPrefix(rest, "#pragma", false) {
			return 0, 0, false
		}
		rest = rest[len("#pragma"):]
		blanks := 0
		for len(rest) > 0 && (rest[0] == ' ' || rest[0] == '\t') {
			rest = rest[1:]
			blanks++
		}
		if blanks == 0 {
			return 0, 0, false
		}
		d, ok := detectDialectWord(rest, false)
		return ir.LangC, d, ok
	case ir.LangFortranFree:
		d, ok := detectDialectWord(rest[2:], true)
		return ir.LangFortranFree, d, ok
	case ir.LangFortranFixed:
		d, ok := detectDialectWord(rest[2:], true)
		return ir.LangFortranFixed, d, ok
	}
	return 0, 0, false
}

func detectDialectWord(rest []byte, fold bool) (ir.Dialect, bool) {
	switch {
	case hasWordPrefix(rest, "omp", fold):
		return ir.DialectOpenMP, true
	case hasWordPrefix(rest, "acc", fold):
		return ir.DialectOpenACC, true
	}
	return 0, false
}

// hasWordPrefix matches w at the start of rest with a word boundary
// after it, so ompx never passes as omp.
func hasWordPrefix(rest []byte, w string, fold bool) bool {
	if len(rest) < len(w) {
		return false
	}
	for i := 0; i < len(w); i++ {
		b := rest[i]
		if fold {
			b = lowerByte(b)
		}
		if b != w[i] {
			return false
		}
	}
	if len(rest) > len(w) && isIdentContinueByte(rest[len(w)]) {
		return false
	}
	return true
}

// ScanSentinel consumes the sentinel at the start of the line and
// reports which language and dialect it selects. Call it once, before
// the first Next; Tokenize does so itself. The C spelling is matched
// case-sensitively, both Fortran spellings case-insensitively.
func (lx *Lexer) ScanSentinel() (Sentinel, error) {
	lx.skipSpace()
	start := lx.cursor.Mark()

	lang := lx.opts.Language
	if !lx.opts.ForceLanguage {
		detected, ok := DetectLanguage(lx.file.Content[lx.cursor.Off:lx.cursor.limit()])
		if !ok {
			sp := lx.cursor.SpanFrom(start)
			lx.fail(diag.LexNoSentinel, sp, "line does not start with #pragma omp/acc, !$omp/acc or a fixed-form sentinel")
			return Sentinel{}, lx.err
		}
		lang = detected
	}

	var (
		dialect ir.Dialect
		ok      bool
	)
	switch lang {
	case ir.LangC:
		dialect, ok = lx.eatCSentinel()
	case ir.LangFortranFree:
		dialect, ok = lx.eatFreeSentinel()
	case ir.LangFortranFixed:
		dialect, ok = lx.eatFixedSentinel()
	}
	if !ok {
		lx.cursor.Reset(start)
		sp := lx.cursor.SpanFrom(start)
		lx.fail(diag.LexNoSentinel, sp, "expected "+sentinelHint(lang))
		return Sentinel{}, lx.err
	}

	sp := lx.cursor.SpanFrom(start)
	s := Sentinel{
		Language: lang,
		Dialect:  dialect,
		Span:     sp,
		Text:     string(lx.file.Content[sp.Start:sp.End]),
	}
	if lang == ir.LangFortranFixed && sp.End > 6 {
		// Columns are 1-based, so the exclusive span end equals the
		// column of the last sentinel character.
		lx.warnLex(diag.LexSentinelColumn, sp, "fixed-form sentinel extends past column 6")
	}
	return s, nil
}

func sentinelHint(lang ir.Language) string {
	switch lang {
	case ir.LangFortranFree:
		return "'!$omp' or '!$acc'"
	case ir.LangFortranFixed:
		return "a fixed-form sentinel such as 'c$omp' or '*$acc'"
	default:
		return "'#pragma omp' or '#pragma acc'"
	}
}

func (lx *Lexer) eatCSentinel() (ir.Dialect, bool) {
	for i := 0; i < len("#pragma"); i++ {
		if !lx.cursor.Eat("#pragma"[i]) {
			return 0, false
		}
	}
	blanks := 0
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
		blanks++
	}
	if blanks == 0 {
		return 0, false
	}
	return lx.eatDialectWord(false)
}

func (lx *Lexer) eatFreeSentinel() (ir.Dialect, bool) {
	if !lx.cursor.Eat('!') || !lx.cursor.Eat('$') {
		return 0, false
	}
	return lx.eatDialectWord(true)
}

func (lx *Lexer) eatFixedSentinel() (ir.Dialect, bool) {
	b := lx.cursor.Peek()
	if b != 'c' && b != 'C' && b != '*' {
		return 0, false
	}
	lx.cursor.Bump()
	if !lx.cursor.Eat('$') {
		return 0, false
	}
	return lx.eatDialectWord(true)
}

// eatDialectWord matches omp or acc followed by a word boundary, so
// that ompx style extensions never pass as the base sentinel.
func (lx *Lexer) eatDialectWord(fold bool) (ir.Dialect, bool) {
	switch {
	case lx.eatWord("omp", fold):
		return ir.DialectOpenMP, true
	case lx.eatWord("acc", fold):
		return ir.DialectOpenACC, true
	}
	return 0, false
}

func (lx *Lexer) eatWord(w string, fold bool) bool {
	start := lx.cursor.Mark()
	for i := 0; i < len(w); i++ {
		b := lx.cursor.Peek()
		if fold {
			b = lowerByte(b)
		}
		if b != w[i] {
			lx.cursor.Reset(start)
			return false
		}
		lx.cursor.Bump()
	}
	if isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Reset(start)
		return false
	}
	return true
}
