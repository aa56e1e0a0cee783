package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"prag/internal/diag"
	"prag/internal/ir"
	"prag/internal/parser"
)

func TestParseLine(t *testing.T) {
	res := ParseLine("!$omp parallel do", Options{})
	if res.Err != nil {
		t.Fatalf("ParseLine: %v", res.Err)
	}
	if res.Directive.Kind() != ir.OmpParallelDo {
		t.Errorf("kind = %v, want OmpParallelDo", res.Directive.Kind())
	}
	if res.Directive.Language() != ir.LangFortranFree {
		t.Errorf("language = %v, want fortran-free", res.Directive.Language())
	}
	if res.Bag.HasErrors() {
		t.Errorf("bag has errors on success")
	}
}

func TestParseLineError(t *testing.T) {
	res := ParseLine("#pragma omp nonesuch", Options{})
	if res.Err == nil {
		t.Fatalf("ParseLine accepted an unknown directive")
	}
	if res.Directive != nil {
		t.Errorf("error result still carries a directive")
	}
	var perr *parser.Error
	if !errors.As(res.Err, &perr) || perr.Kind != parser.ErrUnknownDirective {
		t.Errorf("err = %v, want unknown-directive", res.Err)
	}
	if !res.Bag.HasErrors() {
		t.Errorf("parse error not mirrored into the bag")
	}
}

func TestParseFileRemapsSpans(t *testing.T) {
	content := strings.Join([]string{
		"int main(void) {",
		"  #pragma omp parallel bogus_clause(x)",
		"  #pragma omp parallel for schedule(static, 4)",
		"}",
	}, "\n")
	path := filepath.Join(t.TempDir(), "main.c")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fr, err := ParseFile(path, Options{})
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(fr.Items) != 2 {
		t.Fatalf("parsed %d items, want 2", len(fr.Items))
	}

	bad := fr.Items[0]
	if bad.Err == nil || bad.Directive != nil {
		t.Fatalf("item 0: err = %v directive = %v", bad.Err, bad.Directive)
	}
	if bad.Err.Kind != parser.ErrUnknownClause {
		t.Errorf("item 0 kind = %v, want unknown-clause", bad.Err.Kind)
	}
	// Line 2, sentinel at column 3, clause keyword 21 bytes in.
	if bad.Err.Loc.Line != 2 || bad.Err.Loc.Column != 24 {
		t.Errorf("item 0 loc = %d:%d, want 2:24", bad.Err.Loc.Line, bad.Err.Loc.Column)
	}

	good := fr.Items[1]
	if good.Err != nil {
		t.Fatalf("item 1: %v", good.Err)
	}
	if good.Directive.Kind() != ir.OmpParallelFor || good.Directive.ClauseCount() != 1 {
		t.Errorf("item 1 = %v with %d clauses", good.Directive.Kind(), good.Directive.ClauseCount())
	}
	// Line 3, sentinel at column 3 of the file.
	if loc := good.Directive.Location(); loc.Line != 3 || loc.Column != 3 {
		t.Errorf("item 1 directive loc = %d:%d, want 3:3", loc.Line, loc.Column)
	}

	var found bool
	for _, d := range fr.Bag.Items() {
		if d.Code != diag.SynUnknownClause {
			continue
		}
		found = true
		slice := string(fr.File.Content[d.Primary.Start:d.Primary.End])
		if slice != "bogus_clause" {
			t.Errorf("remapped primary covers %q, want bogus_clause", slice)
		}
	}
	if !found {
		t.Errorf("no SynUnknownClause diagnostic in bag")
	}
}

func TestParseFileSplicedErrorFallsBackToWholeSpan(t *testing.T) {
	content := "#pragma omp parallel for \\\n    bogus(x)\n"
	path := filepath.Join(t.TempDir(), "loop.c")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fr, err := ParseFile(path, Options{})
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(fr.Items) != 1 || fr.Items[0].Err == nil {
		t.Fatalf("items = %+v", fr.Items)
	}
	it := fr.Items[0]
	if it.Err.Loc.Line != 1 || it.Err.Loc.Column != 1 {
		t.Errorf("loc = %d:%d, want 1:1", it.Err.Loc.Line, it.Err.Loc.Column)
	}
	items := fr.Bag.Items()
	if len(items) == 0 {
		t.Fatalf("no diagnostics in bag")
	}
	if items[0].Primary != it.Span {
		t.Errorf("primary = %+v, want the logical span %+v", items[0].Primary, it.Span)
	}
}

func TestParseFileSplicedDirectiveLocation(t *testing.T) {
	content := "  #pragma omp parallel \\\n      private(x)\n"
	path := filepath.Join(t.TempDir(), "joined.c")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fr, err := ParseFile(path, Options{})
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(fr.Items) != 1 || fr.Items[0].Err != nil {
		t.Fatalf("items = %+v", fr.Items)
	}
	// Columns are meaningless after splicing; only the line survives.
	if loc := fr.Items[0].Directive.Location(); loc.Line != 1 || loc.Column != 1 {
		t.Errorf("loc = %d:%d, want 1:1", loc.Line, loc.Column)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "absent.c"), Options{}); err == nil {
		t.Fatalf("ParseFile succeeded on a missing path")
	}
}
