package token

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{EOF, "eof"},
		{Ident, "ident"},
		{LParen, "lparen"},
		{Colon, "colon"},
		{Punct, "punct"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestBracketMatching(t *testing.T) {
	pairs := map[Kind]Kind{
		LParen:   RParen,
		LBracket: RBracket,
		LBrace:   RBrace,
	}
	for open, close := range pairs {
		if !open.IsOpen() || open.IsClose() {
			t.Errorf("%v misclassified", open)
		}
		if !close.IsClose() || close.IsOpen() {
			t.Errorf("%v misclassified", close)
		}
		if open.Match() != close || close.Match() != open {
			t.Errorf("%v/%v do not match", open, close)
		}
	}
	if Ident.Match() != Invalid {
		t.Error("non-bracket kind must match Invalid")
	}
}

func TestTokenEnd(t *testing.T) {
	tok := Token{Kind: Ident, Off: 12, Text: "reduction"}
	if tok.End() != 21 {
		t.Errorf("End = %d, want 21", tok.End())
	}
	if !tok.IsIdent() {
		t.Error("IsIdent = false")
	}
	if !(Token{Kind: Punct, Text: "+"}).Is(Punct, "+") {
		t.Error("Is(Punct, +) = false")
	}
}
