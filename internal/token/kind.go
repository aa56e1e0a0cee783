package token

// Kind represents the category of a directive-line token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the logical line.
	EOF

	// Ident represents an identifier token.
	Ident
	// Number represents a numeric literal token.
	Number
	// String represents a quoted literal, kept opaque including quotes.
	String

	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace

	// Comma represents ','.
	Comma
	// Colon represents ':'.
	Colon
	// Question represents '?'.
	Question
	// Lt represents '<'.
	Lt
	// Gt represents '>'.
	Gt

	// Punct represents any other punctuation glyph ('+', '-', '*', '&',
	// '|', '^', '=', '.', ';', ...). Doubled '&&' and '||' lex as one
	// token so reduction operators stay whole.
	Punct
)

var kindNames = [...]string{
	Invalid:  "invalid",
	EOF:      "eof",
	Ident:    "ident",
	Number:   "number",
	String:   "string",
	LParen:   "lparen",
	RParen:   "rparen",
	LBracket: "lbracket",
	RBracket: "rbracket",
	LBrace:   "lbrace",
	RBrace:   "rbrace",
	Comma:    "comma",
	Colon:    "colon",
	Question: "question",
	Lt:       "lt",
	Gt:       "gt",
	Punct:    "punct",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind?"
}

// IsOpen reports whether the kind opens a bracket group.
func (k Kind) IsOpen() bool {
	return k == LParen || k == LBracket || k == LBrace
}

// IsClose reports whether the kind closes a bracket group.
func (k Kind) IsClose() bool {
	return k == RParen || k == RBracket || k == RBrace
}

// Match returns the closing kind for an opening bracket and vice versa.
// Non-bracket kinds map to Invalid.
func (k Kind) Match() Kind {
	switch k {
	case LParen:
		return RParen
	case RParen:
		return LParen
	case LBracket:
		return RBracket
	case RBracket:
		return LBracket
	case LBrace:
		return RBrace
	case RBrace:
		return LBrace
	default:
		return Invalid
	}
}
