package token

// Token represents a single token within one logical directive line.
type Token struct {
	Kind Kind
	Off  uint32 // byte offset of Text within the logical line
	Text string // verbatim slice of the line
}

// End returns the byte offset one past the token text.
func (t Token) End() uint32 {
	return t.Off + uint32(len(t.Text))
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Is reports whether the token is a punctuation token with the given text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}
