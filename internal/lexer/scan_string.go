package lexer

import (
	"prag/internal/diag"
	"prag/internal/token"
)

// scanString scans a quoted literal, single or double quoted, keeping
// the quotes in the token text. Backslash escapes and Fortran doubled
// quotes ('it''s') keep the literal open. A line break before the
// closing quote is an unterminated literal.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() && !isLineBreak(lx.cursor.Peek()) {
		b := lx.cursor.Peek()
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() || isLineBreak(lx.cursor.Peek()) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == quote {
			lx.cursor.Bump()
			if lx.cursor.Peek() == quote {
				lx.cursor.Bump()
				continue
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.String, Off: sp.Start, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.fail(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Off: sp.Start, Text: string(lx.file.Content[sp.Start:sp.End])}
}
