package lexer

import (
	"prag/internal/token"
)

// scanNumber scans a numeric literal as one opaque blob: base prefixes,
// decimal points, digit separators and type suffixes all stay in the
// token text (0x1F, 1_000, 100ull, 1.5f, 2_ik). Expressions are
// reassembled from byte offsets, so finer numeric structure is never
// needed here.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // first digit, or the dot ahead of one
	for {
		b := lx.cursor.Peek()
		if !isDec(b) && !isIdentStartByte(b) && b != '.' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Off: sp.Start, Text: string(lx.file.Content[sp.Start:sp.End])}
}
