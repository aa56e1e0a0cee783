package ir

import "testing"

func TestLanguage_Fold(t *testing.T) {
	// Keyword folding is a property of the language: Fortran directives
	// match case-insensitively, C directives do not.
	if got := LangC.Fold("PARALLEL"); got != "PARALLEL" {
		t.Fatalf("LangC.Fold = %q, want unchanged", got)
	}
	if got := LangFortranFree.Fold("PaRaLLeL"); got != "parallel" {
		t.Fatalf("LangFortranFree.Fold = %q, want parallel", got)
	}
	if got := LangFortranFixed.Fold("NUM_THREADS"); got != "num_threads" {
		t.Fatalf("LangFortranFixed.Fold = %q, want num_threads", got)
	}
}

func TestLanguage_IsFortran(t *testing.T) {
	if LangC.IsFortran() {
		t.Fatalf("LangC.IsFortran() = true")
	}
	if !LangFortranFree.IsFortran() || !LangFortranFixed.IsFortran() {
		t.Fatalf("Fortran variants must report IsFortran")
	}
}

func TestParseLanguage_Aliases(t *testing.T) {
	cases := map[string]Language{
		"c":             LangC,
		"C":             LangC,
		"c++":           LangC,
		"cpp":           LangC,
		"fortran":       LangFortranFree,
		"Fortran-Free":  LangFortranFree,
		"free":          LangFortranFree,
		"f90":           LangFortranFree,
		"fortran-fixed": LangFortranFixed,
		"fixed":         LangFortranFixed,
		"f77":           LangFortranFixed,
		" c ":           LangC,
	}
	for in, want := range cases {
		got, ok := ParseLanguage(in)
		if !ok || got != want {
			t.Fatalf("ParseLanguage(%q) = %v, %v, want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseLanguage("cobol"); ok {
		t.Fatalf("ParseLanguage(cobol) must fail")
	}
}

func TestParseDialect(t *testing.T) {
	cases := map[string]Dialect{
		"omp":     DialectOpenMP,
		"openmp":  DialectOpenMP,
		"OpenMP":  DialectOpenMP,
		"acc":     DialectOpenACC,
		"openacc": DialectOpenACC,
	}
	for in, want := range cases {
		got, ok := ParseDialect(in)
		if !ok || got != want {
			t.Fatalf("ParseDialect(%q) = %v, %v, want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseDialect("opencl"); ok {
		t.Fatalf("ParseDialect(opencl) must fail")
	}
	if DialectOpenMP.Keyword() != "omp" || DialectOpenACC.Keyword() != "acc" {
		t.Fatalf("dialect keywords are the sentinel spellings")
	}
}

func TestSourceLocation_String(t *testing.T) {
	if got := StartOfFile().String(); got != "1:1" {
		t.Fatalf("StartOfFile().String() = %q", got)
	}
	loc := SourceLocation{Line: 3, Column: 17}
	if got := loc.String(); got != "3:17" {
		t.Fatalf("SourceLocation.String() = %q", got)
	}
}
