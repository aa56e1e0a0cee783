package lexer

import (
	"fmt"

	"prag/internal/diag"
	"prag/internal/ir"
	"prag/internal/source"
	"prag/internal/token"
)

// Lexer tokenizes one logical directive line. It is a pure function of
// its input: the only side channel is the Reporter in Options.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
	err    *Error
}

// Error is a hard lexical failure: missing sentinel, unterminated
// string, unbalanced brackets, or a blown token budget.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Msg)
}

// New creates a lexer over one logical line. The cursor starts at the
// sentinel; callers scan it with ScanSentinel before reading tokens.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file), opts: opts}
}

// Err returns the first hard failure encountered, if any.
func (lx *Lexer) Err() *Error {
	return lx.err
}

// Next returns the next token. After the line is exhausted it always
// returns EOF; a stray line break also ends the stream.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	lx.skipSpace()
	if lx.cursor.EOF() || isLineBreak(lx.cursor.Peek()) {
		return token.Token{Kind: token.EOF, Off: lx.cursor.Off}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdent()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	case ch == '"' || ch == '\'':
		return lx.scanString()
	default:
		return lx.scanPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) skipSpace() {
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			return
		}
		lx.cursor.Bump()
	}
}

// fail reports a hard error and remembers the first one for Err.
func (lx *Lexer) fail(code diag.Code, sp source.Span, msg string) {
	lx.errLex(code, sp, msg)
	if lx.err == nil {
		lx.err = &Error{Code: code, Span: sp, Msg: msg}
	}
}

func (lx *Lexer) spanOf(tok token.Token) source.Span {
	return source.Span{File: lx.file.ID, Start: tok.Off, End: tok.End()}
}

// Result is one fully tokenized logical line: the language and dialect
// the sentinel selected plus every token after it, EOF excluded.
type Result struct {
	Language ir.Language
	Dialect  ir.Dialect
	Sentinel Sentinel
	Tokens   []token.Token
}

// Tokenize scans the sentinel and drains the whole line. Brackets must
// balance, the line must carry at least one token after the sentinel,
// and the token count must stay within Options.MaxTokens.
func Tokenize(file *source.File, opts Options) (Result, error) {
	lx := New(file, opts)
	sent, err := lx.ScanSentinel()
	if err != nil {
		return Result{}, err
	}

	res := Result{Language: sent.Language, Dialect: sent.Dialect, Sentinel: sent}
	var open []token.Kind
	limit := opts.maxTokens()
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.Invalid {
			return Result{}, lx.err
		}
		if len(res.Tokens) >= limit {
			sp := lx.spanOf(tok)
			lx.fail(diag.LexTooManyTokens, sp, fmt.Sprintf("line exceeds %d tokens", limit))
			return Result{}, lx.err
		}
		switch {
		case tok.Kind.IsOpen():
			open = append(open, tok.Kind)
		case tok.Kind.IsClose():
			if len(open) == 0 || open[len(open)-1] != tok.Kind.Match() {
				sp := lx.spanOf(tok)
				lx.fail(diag.LexUnbalancedDelimiter, sp, fmt.Sprintf("unexpected %q", tok.Text))
				return Result{}, lx.err
			}
			open = open[:len(open)-1]
		}
		res.Tokens = append(res.Tokens, tok)
	}
	if len(open) > 0 {
		sp := source.Span{File: file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
		lx.fail(diag.LexUnbalancedDelimiter, sp, fmt.Sprintf("%d unclosed delimiter(s) at end of line", len(open)))
		return Result{}, lx.err
	}
	if len(res.Tokens) == 0 {
		lx.fail(diag.LexEmptyDirective, sent.Span, "directive has no keyword after the sentinel")
		return Result{}, lx.err
	}
	return res, nil
}
