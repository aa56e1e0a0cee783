package parser

import "prag/internal/token"

// The argument splitter is the kernel the payload parsers share. A
// separator only counts at top level: outside every ()/[]/{} group,
// outside a heuristically tracked <...> template argument list and not
// the ':' of a ternary conditional. C++ scope pairs need no guard here
// because the lexer keeps '::' whole.

type nesting struct {
	group   int
	angle   int
	ternary int
	angles  bool
}

func (n *nesting) topLevel() bool { return n.group == 0 && n.angle == 0 }

// step advances the tracker over toks[i] and reports whether that token
// splits at sep.
func (n *nesting) step(toks []token.Token, i int, sep token.Kind) bool {
	switch tok := toks[i]; tok.Kind {
	case token.LParen, token.LBracket, token.LBrace:
		n.group++
	case token.RParen, token.RBracket, token.RBrace:
		n.group--
	case token.Lt:
		if n.angles && n.topLevel() && opensTemplate(toks, i) {
			n.angle++
		}
	case token.Gt:
		if n.angle > 0 {
			n.angle--
		}
	case token.Question:
		if n.topLevel() {
			n.ternary++
		}
	case token.Colon:
		if !n.topLevel() {
			break
		}
		if n.ternary > 0 {
			n.ternary--
			break
		}
		return sep == token.Colon
	case token.Comma:
		return sep == token.Comma && n.topLevel()
	}
	return false
}

// splitTopLevel splits toks at every top-level sep. Empty runs between
// adjacent separators are kept; callers drop them where their grammar
// says so. If the template-angle heuristic misreads a lone comparison
// and leaves an angle open, the split is redone without it.
func splitTopLevel(toks []token.Token, sep token.Kind) [][]token.Token {
	parts, dangling := splitRuns(toks, sep, true)
	if dangling {
		parts, _ = splitRuns(toks, sep, false)
	}
	return parts
}

func splitRuns(toks []token.Token, sep token.Kind, angles bool) ([][]token.Token, bool) {
	n := nesting{angles: angles}
	parts := make([][]token.Token, 0, 4)
	start := 0
	for i := range toks {
		if n.step(toks, i, sep) {
			parts = append(parts, toks[start:i])
			start = i + 1
		}
	}
	parts = append(parts, toks[start:])
	return parts, n.angle != 0
}

// cutTopLevel splits toks around the first top-level sep.
func cutTopLevel(toks []token.Token, sep token.Kind) (before, after []token.Token, found bool) {
	parts := splitTopLevel(toks, sep)
	if len(parts) == 1 {
		return toks, nil, false
	}
	return parts[0], toks[len(parts[0])+1:], true
}

// opensTemplate guesses whether the '<' at i opens a template argument
// list rather than a comparison: glued to an identifier on its left,
// glued to its argument on its right, and not the start of <=, << or <>.
func opensTemplate(toks []token.Token, i int) bool {
	if i == 0 || i+1 >= len(toks) {
		return false
	}
	lt := toks[i]
	prev, next := toks[i-1], toks[i+1]
	if prev.Kind != token.Ident || prev.End() != lt.Off || next.Off != lt.End() {
		return false
	}
	switch next.Kind {
	case token.Lt, token.Gt:
		return false
	case token.Punct:
		return next.Text != "="
	}
	return true
}

// matchGroup peels one balanced delimiter group off the front of toks.
// toks[0] must be the opening token; inside excludes both delimiters.
func matchGroup(toks []token.Token, open, close token.Kind) (inside, rest []token.Token, ok bool) {
	depth := 0
	for i, tok := range toks {
		switch tok.Kind {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return toks[1:i], toks[i+1:], true
			}
		}
	}
	return nil, nil, false
}
