package parser_test

import (
	"strings"
	"testing"

	"prag/internal/diag"
	"prag/internal/parser"
)

// Misspelled keywords fail the line as usual, but the reported
// diagnostic carries a nearest-keyword note and a replacement fix.
func TestParseSuggestsNearestClause(t *testing.T) {
	bag := diag.NewBag(4)
	_, err := parser.ParseLine("#pragma omp parallel privte(x)",
		parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err == nil {
		t.Fatal("misspelled clause must fail")
	}

	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || !strings.Contains(d.Notes[0].Msg, `"private"`) {
		t.Fatalf("notes = %+v, want a private suggestion", d.Notes)
	}
	if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 {
		t.Fatalf("fixes = %+v", d.Fixes)
	}
	edit := d.Fixes[0].Edits[0]
	if edit.NewText != "private" {
		t.Fatalf("fix text = %q, want private", edit.NewText)
	}
	if edit.Span.Start != 21 || edit.Span.End != 27 {
		t.Fatalf("fix span = %d..%d, want the keyword 21..27", edit.Span.Start, edit.Span.End)
	}
}

func TestParseSuggestsNearestDirective(t *testing.T) {
	bag := diag.NewBag(4)
	_, err := parser.ParseLine("#pragma omp parallell",
		parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err == nil {
		t.Fatal("misspelled directive must fail")
	}
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || !strings.Contains(d.Notes[0].Msg, `"parallel"`) {
		t.Fatalf("notes = %+v, want a parallel suggestion", d.Notes)
	}
}

// A keyword with no close neighbor reports without any suggestion.
func TestParseNoSuggestionWhenFar(t *testing.T) {
	bag := diag.NewBag(4)
	_, err := parser.ParseLine("#pragma omp parallel zzzzqqqq(x)",
		parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err == nil {
		t.Fatal("unknown clause must fail")
	}
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 0 || len(d.Fixes) != 0 {
		t.Fatalf("no suggestion expected, got notes=%+v fixes=%+v", d.Notes, d.Fixes)
	}
}
