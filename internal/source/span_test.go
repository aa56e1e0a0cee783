package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 1, Start: 4, End: 9}
	if s.Empty() {
		t.Error("span with extent reported empty")
	}
	if s.Len() != 5 {
		t.Errorf("Len = %d, want 5", s.Len())
	}
	if got := s.String(); got != "1:4-9" {
		t.Errorf("String = %q", got)
	}

	empty := Span{File: 1, Start: 7, End: 7}
	if !empty.Empty() {
		t.Error("zero-length span not reported empty")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 10, End: 20}
	b := Span{File: 0, Start: 5, End: 15}
	c := a.Cover(b)
	if c.Start != 5 || c.End != 20 {
		t.Errorf("Cover = %v", c)
	}

	// Spans from another file leave the receiver unchanged.
	other := Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file Cover = %v, want %v", got, a)
	}
}

func TestSpanShiftRight(t *testing.T) {
	s := Span{File: 2, Start: 3, End: 8}
	got := s.ShiftRight(4)
	if got.Start != 7 || got.End != 12 || got.File != 2 {
		t.Errorf("ShiftRight = %v", got)
	}
}
