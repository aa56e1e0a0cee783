package source

import "testing"

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\n"))
	if !changed {
		t.Error("expected change flag")
	}
	if string(out) != "a\nb\rc\n" {
		t.Errorf("normalizeCRLF = %q", out)
	}

	same, changed := normalizeCRLF([]byte("plain\n"))
	if changed || string(same) != "plain\n" {
		t.Errorf("clean input rewritten: %q changed=%v", same, changed)
	}
}

func TestToLineCol(t *testing.T) {
	// content: "ab\ncde\n" -> newline offsets 2, 6
	idx := []uint32{2, 6}
	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{3, LineCol{2, 1}},
		{5, LineCol{2, 3}},
		{7, LineCol{3, 1}},
	}
	for _, tc := range cases {
		if got := toLineCol(idx, tc.off); got != tc.want {
			t.Errorf("toLineCol(%d) = %v, want %v", tc.off, got, tc.want)
		}
	}
}
