package lexer

import (
	"unicode/utf8"

	"prag/internal/diag"
	"prag/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdent scans an identifier. Keyword matching and case folding
// happen downstream; the token text is always the verbatim source
// slice.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if r == utf8.RuneError && sz <= 1 {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.fail(diag.LexInvalidUTF8, sp, "invalid UTF-8 byte in directive text")
		return token.Token{Kind: token.Invalid, Off: sp.Start, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	if r < utf8RuneSelf {
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		if !isIdentStartRune(r) {
			// A non-letter rune is loose punctuation inside an
			// expression span.
			return lx.scanPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Ident, Off: sp.Start, Text: string(lx.file.Content[sp.Start:sp.End])}
}
