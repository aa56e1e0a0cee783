package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"prag/internal/diag"
	"prag/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("#pragma omp parallel privte(x)\n")
	fileID := fs.AddVirtual("loop.c", content)

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(
		diag.SynUnknownClause,
		source.Span{File: fileID, Start: 21, End: 27},
		`unknown clause keyword "privte"`,
	))

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\noutput: %s", err, buf.String())
	}

	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got count=%d len=%d", output.Count, len(output.Diagnostics))
	}
	d := output.Diagnostics[0]
	if d.Severity != "ERROR" {
		t.Errorf("severity = %q, want ERROR", d.Severity)
	}
	if d.Code != "SYN2002" {
		t.Errorf("code = %q, want SYN2002", d.Code)
	}
	if d.Location.File != "loop.c" {
		t.Errorf("file = %q, want loop.c", d.Location.File)
	}
	if d.Location.StartByte != 21 || d.Location.EndByte != 27 {
		t.Errorf("bytes = %d..%d, want 21..27", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 22 {
		t.Errorf("position = %d:%d, want 1:22", d.Location.StartLine, d.Location.StartCol)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.c", []byte("#pragma omp nothing\n"))

	bag := diag.NewBag(10)
	for i := 0; i < 5; i++ {
		bag.Add(diag.NewError(diag.SynUnknownDirective,
			source.Span{File: id, Start: 12, End: 19}, "unknown directive"))
	}

	output := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if output.Count != 2 || len(output.Diagnostics) != 2 {
		t.Fatalf("Max=2 should truncate, got count=%d len=%d", output.Count, len(output.Diagnostics))
	}
	if bag.Len() != 5 {
		t.Fatalf("truncation must not touch the bag, len=%d", bag.Len())
	}
}

func TestJSONFixPreviews(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("#pragma omp parallel privte(x)\n")
	id := fs.AddVirtual("fix.c", content)

	span := source.Span{File: id, Start: 21, End: 27}
	d := diag.NewError(diag.SynUnknownClause, span, `unknown clause keyword "privte"`).
		WithNote(span, `nearest clause keyword is "private"`).
		WithFix(`replace with "private"`, diag.FixEdit{Span: span, NewText: "private"})

	bag := diag.NewBag(4)
	bag.Add(d)

	output := BuildDiagnosticsOutput(bag, fs, JSONOpts{
		IncludeNotes:    true,
		IncludeFixes:    true,
		IncludePreviews: true,
	})
	if len(output.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(output.Diagnostics))
	}
	got := output.Diagnostics[0]
	if len(got.Notes) != 1 || got.Notes[0].Message != `nearest clause keyword is "private"` {
		t.Fatalf("notes = %+v", got.Notes)
	}
	if len(got.Fixes) != 1 || len(got.Fixes[0].Edits) != 1 {
		t.Fatalf("fixes = %+v", got.Fixes)
	}
	edit := got.Fixes[0].Edits[0]
	if edit.NewText != "private" {
		t.Errorf("new_text = %q, want private", edit.NewText)
	}
	if len(edit.BeforeLines) != 1 || edit.BeforeLines[0] != "#pragma omp parallel privte(x)" {
		t.Errorf("before = %q", edit.BeforeLines)
	}
	if len(edit.AfterLines) != 1 || edit.AfterLines[0] != "#pragma omp parallel private(x)" {
		t.Errorf("after = %q", edit.AfterLines)
	}
}
