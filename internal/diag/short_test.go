package diag

import (
	"testing"

	"prag/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()

	mainFile := fs.Add("kernels/saxpy.c", []byte("#pragma omp parallel for\nfor (i = 0; i < n; i++)\n"), 0)
	otherFile := fs.Add("kernels/init.f90", []byte("!$omp do\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnknownClause,
			Message:  "unknown clause\n'shred'",
			Primary:  source.Span{File: mainFile, Start: 0, End: 7},
			Notes: []Note{
				{Span: source.Span{File: mainFile, Start: 25, End: 28}, Msg: "loop begins here"},
			},
		},
		{
			Severity: SevWarning,
			Code:     LexSentinelColumn,
			Message:  "sentinel past column 6",
			Primary:  source.Span{File: otherFile, Start: 0, End: 5},
		},
	}

	expected := "warning LEX1006 kernels/init.f90:1:1 sentinel past column 6\n" +
		"error SYN2002 kernels/saxpy.c:1:1 unknown clause 'shred'\n" +
		"note SYN2002 kernels/saxpy.c:2:1 loop begins here"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatShortDiagnosticsEmpty(t *testing.T) {
	fs := source.NewFileSet()
	if got := FormatShortDiagnostics(nil, fs, false); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := FormatShortDiagnostics([]Diagnostic{{}}, nil, false); got != "" {
		t.Fatalf("expected empty output for nil FileSet, got %q", got)
	}
}
