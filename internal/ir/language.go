package ir

import (
	"strconv"
	"strings"
)

// Language identifies the host language a directive was written in.
// It decides sentinel spelling, keyword case folding and which surface
// syntax array sections use (C brackets carry a length, Fortran
// parentheses carry an upper bound).
type Language uint8

const (
	// LangC covers both C and C++ pragma sources.
	LangC Language = iota
	// LangFortranFree is free-form Fortran (!$omp sentinels).
	LangFortranFree
	// LangFortranFixed is fixed-form Fortran (c$omp, C$omp, *$omp in column 1).
	LangFortranFixed
)

var languageNames = [...]string{
	LangC:            "c",
	LangFortranFree:  "fortran-free",
	LangFortranFixed: "fortran-fixed",
}

func (l Language) String() string {
	if int(l) < len(languageNames) {
		return languageNames[l]
	}
	return "language(" + strconv.Itoa(int(l)) + ")"
}

// IsFortran reports whether l is either Fortran form.
func (l Language) IsFortran() bool {
	return l == LangFortranFree || l == LangFortranFixed
}

// Fold normalizes keyword text for matching. Fortran keywords compare
// case-insensitively; C keywords compare verbatim.
func (l Language) Fold(s string) string {
	if l.IsFortran() {
		return strings.ToLower(s)
	}
	return s
}

var languageAliases = map[string]Language{
	"c":             LangC,
	"c++":           LangC,
	"cpp":           LangC,
	"cxx":           LangC,
	"fortran":       LangFortranFree,
	"fortran-free":  LangFortranFree,
	"free":          LangFortranFree,
	"f90":           LangFortranFree,
	"fortran-fixed": LangFortranFixed,
	"fixed":         LangFortranFixed,
	"f77":           LangFortranFixed,
}

// ParseLanguage maps a user-facing language name to a Language.
// Accepted spellings include "c", "c++", "fortran", "fortran-free",
// "fortran-fixed", "f77" and "f90".
func ParseLanguage(s string) (Language, bool) {
	l, ok := languageAliases[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}

// Dialect identifies the directive namespace a line belongs to.
// OpenMP and OpenACC tags never overlap even when spellings collide.
type Dialect uint8

const (
	DialectOpenMP Dialect = iota
	DialectOpenACC
)

func (d Dialect) String() string {
	switch d {
	case DialectOpenMP:
		return "openmp"
	case DialectOpenACC:
		return "openacc"
	}
	return "dialect(" + strconv.Itoa(int(d)) + ")"
}

// Keyword returns the sentinel word of the dialect ("omp" or "acc").
func (d Dialect) Keyword() string {
	if d == DialectOpenACC {
		return "acc"
	}
	return "omp"
}

var dialectAliases = map[string]Dialect{
	"omp":     DialectOpenMP,
	"openmp":  DialectOpenMP,
	"acc":     DialectOpenACC,
	"openacc": DialectOpenACC,
}

// ParseDialect maps a user-facing dialect name ("omp", "openmp", "acc",
// "openacc") to a Dialect.
func ParseDialect(s string) (Dialect, bool) {
	d, ok := dialectAliases[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}
