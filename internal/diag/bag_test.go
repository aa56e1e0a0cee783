package diag

import (
	"testing"

	"prag/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagCapacityAndDropped(t *testing.T) {
	bag := NewBag(2)

	if ok := bag.Add(NewError(SynUnknownDirective, span(0, 0, 4), "first")); !ok {
		t.Fatal("first add should fit")
	}
	if ok := bag.Add(NewError(SynUnknownClause, span(0, 5, 9), "second")); !ok {
		t.Fatal("second add should fit")
	}
	if ok := bag.Add(NewError(SynEmptyList, span(0, 10, 12), "third")); ok {
		t.Fatal("third add should be dropped")
	}

	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
	if bag.Dropped() != 1 {
		t.Fatalf("Dropped = %d, want 1", bag.Dropped())
	}
	if !bag.HasErrors() {
		t.Fatal("HasErrors should be true")
	}
}

func TestBagSortOrdersBySpanThenSeverity(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewWarning(LexSentinelColumn, span(0, 10, 12), "late warning"))
	bag.Add(NewError(SynUnknownClause, span(0, 2, 6), "clause"))
	bag.Add(NewWarning(LexSentinelColumn, span(0, 2, 6), "same span warning"))
	bag.Add(NewError(SynUnknownDirective, span(0, 0, 4), "directive"))

	bag.Sort()

	items := bag.Items()
	wantCodes := []Code{SynUnknownDirective, SynUnknownClause, LexSentinelColumn, LexSentinelColumn}
	for i, want := range wantCodes {
		if items[i].Code != want {
			t.Fatalf("items[%d].Code = %s, want %s", i, items[i].Code.ID(), want.ID())
		}
	}
	// Error sorts before warning on an identical span.
	if items[1].Severity != SevError || items[2].Severity != SevWarning {
		t.Fatalf("severity order on equal spans = %v, %v", items[1].Severity, items[2].Severity)
	}
}

func TestBagDedupRemovesRepeats(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewError(SynUnknownClause, span(0, 3, 8), "noawit"))
	bag.Add(NewError(SynUnknownClause, span(0, 3, 8), "noawit"))
	bag.Add(NewError(SynUnknownClause, span(0, 9, 14), "shred"))

	bag.Dedup()

	if bag.Len() != 2 {
		t.Fatalf("Len after Dedup = %d, want 2", bag.Len())
	}
}

func TestBagMergeGrowsCapacity(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(SynUnknownDirective, span(0, 0, 3), "a"))
	a.Add(NewError(SynUnknownDirective, span(0, 4, 7), "overflow"))

	b := NewBag(2)
	b.Add(NewWarning(LexSentinelColumn, span(1, 0, 5), "b"))
	b.Add(NewWarning(LexSentinelColumn, span(1, 6, 9), "c"))

	a.Merge(b)

	if a.Len() != 3 {
		t.Fatalf("Len after Merge = %d, want 3", a.Len())
	}
	if a.Dropped() != 1 {
		t.Fatalf("Dropped after Merge = %d, want 1", a.Dropped())
	}
	if !a.HasWarnings() {
		t.Fatal("merged bag should carry warnings")
	}
}

func TestDedupReporterSuppressesRepeats(t *testing.T) {
	bag := NewBag(8)
	rep := NewDedupReporter(BagReporter{Bag: bag})

	sp := span(0, 0, 7)
	rep.Report(SynUnknownClause, SevError, sp, "unknown clause 'shred'", nil, nil)
	rep.Report(SynUnknownClause, SevError, sp, "unknown clause 'shred'", nil, nil)
	rep.Report(SynUnknownClause, SevError, sp, "unknown clause 'mangle'", nil, nil)

	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(4)
	rep := BagReporter{Bag: bag}

	b := ReportError(rep, SynMissingArgument, span(0, 12, 20), "clause 'num_threads' requires an argument").
		WithNote(span(0, 0, 11), "directive starts here")
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	got := bag.Items()[0]
	if got.Code != SynMissingArgument || got.Severity != SevError {
		t.Fatalf("unexpected diagnostic: %+v", got)
	}
	if len(got.Notes) != 1 || got.Notes[0].Msg != "directive starts here" {
		t.Fatalf("unexpected notes: %+v", got.Notes)
	}
}

func TestCodeIDAndString(t *testing.T) {
	if got := LexNoSentinel.ID(); got != "LEX1001" {
		t.Fatalf("LexNoSentinel.ID() = %q", got)
	}
	if got := SynUnknownDirective.ID(); got != "SYN2001" {
		t.Fatalf("SynUnknownDirective.ID() = %q", got)
	}
	if got := SynNestingTooDeep.String(); got != "[SYN2011]: nested directive depth limit exceeded" {
		t.Fatalf("SynNestingTooDeep.String() = %q", got)
	}
	if got := Code(9999).ID(); got != "E0000" {
		t.Fatalf("out-of-range ID = %q", got)
	}
}
