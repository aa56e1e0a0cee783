package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical: sentinel recognition and tokenization.
	LexInfo                Code = 1000
	LexNoSentinel          Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnbalancedDelimiter Code = 1003
	LexInvalidUTF8         Code = 1004
	LexEmptyDirective      Code = 1005
	LexSentinelColumn      Code = 1006 // fixed-form sentinel outside columns 1-6, warning only
	LexBadContinuation     Code = 1007
	LexTooManyTokens       Code = 1008

	// Syntax: directive and clause structure.
	SynInfo               Code = 2000
	SynUnknownDirective   Code = 2001
	SynUnknownClause      Code = 2002
	SynUnbalancedGroup    Code = 2003
	SynArraySection       Code = 2004
	SynExpectedModifier   Code = 2005
	SynUnknownModifier    Code = 2006
	SynEmptyList          Code = 2007
	SynMissingArgument    Code = 2008
	SynTrailingTokens     Code = 2009
	SynSelector           Code = 2010
	SynNestingTooDeep     Code = 2011
	SynDirectiveParameter Code = 2012

	// I/O: file loading and cache access during a scan.
	IOLoadFile   Code = 3001
	IOCacheRead  Code = 3002
	IOCacheWrite Code = 3003
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexInfo:                "lexical info",
	LexNoSentinel:          "line does not start with a recognized directive sentinel",
	LexUnterminatedString:  "unterminated string literal",
	LexUnbalancedDelimiter: "unbalanced delimiter",
	LexInvalidUTF8:         "invalid UTF-8 in directive text",
	LexEmptyDirective:      "directive has no keyword after the sentinel",
	LexSentinelColumn:      "fixed-form sentinel outside columns 1-6",
	LexBadContinuation:     "malformed line continuation",
	LexTooManyTokens:       "token count limit exceeded",

	SynInfo:               "syntax info",
	SynUnknownDirective:   "unknown directive keyword",
	SynUnknownClause:      "unknown clause keyword",
	SynUnbalancedGroup:    "unbalanced delimiter in clause arguments",
	SynArraySection:       "malformed array section",
	SynExpectedModifier:   "expected a clause modifier",
	SynUnknownModifier:    "unknown clause modifier",
	SynEmptyList:          "clause requires a non-empty list",
	SynMissingArgument:    "clause requires an argument",
	SynTrailingTokens:     "unconsumed tokens after directive",
	SynSelector:           "malformed context selector",
	SynNestingTooDeep:     "nested directive depth limit exceeded",
	SynDirectiveParameter: "malformed directive parameter",

	IOLoadFile:   "failed to load source file",
	IOCacheRead:  "failed to read scan cache entry",
	IOCacheWrite: "failed to write scan cache entry",
}

// ID returns the short stable identifier, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
