package lexer

import (
	"prag/internal/token"
)

// singleKinds maps the structural glyphs to dedicated kinds; everything
// else lexes as Punct with its text preserved.
var singleKinds = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
	',': token.Comma,
	':': token.Colon,
	'?': token.Question,
	'<': token.Lt,
	'>': token.Gt,
}

// scanPunct scans one punctuation token. Three doubled glyphs stay
// whole: && and || so reduction operators survive as single tokens,
// and :: so a C++ scope qualifier is never mistaken for a clause
// modifier separator.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()

	b := lx.cursor.Peek()
	if b >= utf8RuneSelf {
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Punct, Off: sp.Start, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	if lx.try2('&', '&') || lx.try2('|', '|') || lx.try2(':', ':') {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Punct, Off: sp.Start, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	lx.cursor.Bump()
	kind := token.Punct
	if k, ok := singleKinds[b]; ok {
		kind = k
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Off: sp.Start, Text: string(lx.file.Content[sp.Start:sp.End])}
}
