package parser

import (
	"fmt"

	"prag/internal/diag"
	"prag/internal/ir"
)

// ErrorKind is the coarse classification of a parse failure. Every
// failure is fatal for its directive line: no partial IR is produced
// and no recovery is attempted.
type ErrorKind uint8

const (
	// ErrLex wraps a tokenizer failure (bad sentinel, unterminated
	// string, blown token budget).
	ErrLex ErrorKind = iota
	// ErrUnknownDirective means the leading keywords matched no
	// registered directive name.
	ErrUnknownDirective
	// ErrUnknownClause means a clause keyword is not registered for the
	// active dialect, or a stray token sits where a clause should.
	ErrUnknownClause
	// ErrUnbalancedDelimiter means a bracket group never closed.
	ErrUnbalancedDelimiter
	// ErrInvalidArraySection means a bracketed section had too many
	// colons, no base identifier, or trailing text.
	ErrInvalidArraySection
	// ErrExpectedModifier means a required modifier or separator was
	// absent from a clause argument.
	ErrExpectedModifier
	// ErrUnknownModifier means a keyword slot held a spelling outside
	// its closed set.
	ErrUnknownModifier
	// ErrEmptyList means a clause that requires list items got none.
	ErrEmptyList
	// ErrMissingArgument means a clause that requires a parenthesized
	// argument had none, or the parentheses were empty.
	ErrMissingArgument
	// ErrDirectiveParameter means the argument of the directive itself,
	// before any clauses, was malformed.
	ErrDirectiveParameter
	// ErrSelector means a metadirective context selector was malformed.
	ErrSelector
	// ErrNestingTooDeep means directive variants nested past the
	// configured depth limit.
	ErrNestingTooDeep
)

var errorKindNames = [...]string{
	ErrLex:                 "lex",
	ErrUnknownDirective:    "unknown-directive",
	ErrUnknownClause:       "unknown-clause",
	ErrUnbalancedDelimiter: "unbalanced-delimiter",
	ErrInvalidArraySection: "invalid-array-section",
	ErrExpectedModifier:    "expected-modifier",
	ErrUnknownModifier:     "unknown-modifier",
	ErrEmptyList:           "empty-list",
	ErrMissingArgument:     "missing-argument",
	ErrDirectiveParameter:  "directive-parameter",
	ErrSelector:            "selector",
	ErrNestingTooDeep:      "nesting-too-deep",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("errorkind(%d)", k)
}

// Error is a hard parse failure. Code refines Kind with the exact
// diagnostic identity; Clause names the clause or directive keyword
// whose argument was being parsed, when there is one.
type Error struct {
	Kind    ErrorKind
	Code    diag.Code
	Message string
	Loc     ir.SourceLocation
	Clause  string
}

func (e *Error) Error() string {
	if e.Clause != "" {
		return fmt.Sprintf("%s: %s: clause %q: %s", e.Loc, e.Code.ID(), e.Clause, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Loc, e.Code.ID(), e.Message)
}
