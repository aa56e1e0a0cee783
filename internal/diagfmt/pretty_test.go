package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"prag/internal/diag"
	"prag/internal/source"
)

func TestPrettyHeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("#pragma omp parallel privte(x)\n")
	id := fs.AddVirtual("loop.c", content)

	bag := diag.NewBag(4)
	bag.Add(diag.NewError(
		diag.SynUnknownClause,
		source.Span{File: id, Start: 21, End: 27},
		`unknown clause keyword "privte"`,
	))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	out := buf.String()

	wantHeader := `loop.c:1:22: ERROR SYN2002: unknown clause keyword "privte"`
	if !strings.Contains(out, wantHeader) {
		t.Fatalf("missing header %q in:\n%s", wantHeader, out)
	}
	if !strings.Contains(out, "    1 | #pragma omp parallel privte(x)") {
		t.Fatalf("missing source excerpt in:\n%s", out)
	}
	// Six-byte span starting at column 22 underlines with ^ and five ~.
	if !strings.Contains(out, "      |                      ^~~~~~") {
		t.Fatalf("missing caret line in:\n%s", out)
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("fix.c", []byte("#pragma omp parallel privte(x)\n"))
	span := source.Span{File: id, Start: 21, End: 27}

	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.SynUnknownClause, span, "unknown clause").
		WithNote(span, `nearest clause keyword is "private"`).
		WithFix(`replace with "private"`, diag.FixEdit{Span: span, NewText: "private"}))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true, ShowFixes: true})
	out := buf.String()

	if !strings.Contains(out, `note: nearest clause keyword is "private"`) {
		t.Errorf("missing note in:\n%s", out)
	}
	if !strings.Contains(out, `fix: replace with "private"`) {
		t.Errorf("missing fix in:\n%s", out)
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "note:") || strings.Contains(buf.String(), "fix:") {
		t.Errorf("notes and fixes should be opt-in, got:\n%s", buf.String())
	}
}

func TestPrettyDroppedCount(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("d.c", []byte("#pragma omp nothing\n"))

	bag := diag.NewBag(1)
	for i := 0; i < 3; i++ {
		bag.Add(diag.NewError(diag.SynUnknownDirective,
			source.Span{File: id, Start: 12, End: 19}, "unknown directive"))
	}

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "2 more diagnostics dropped") {
		t.Fatalf("missing drop count in:\n%s", buf.String())
	}
}

func TestCaretLine(t *testing.T) {
	tests := []struct {
		line  string
		col   uint32
		width uint32
		want  string
	}{
		{"abcdef", 1, 3, "^~~"},
		{"abcdef", 3, 1, "  ^"},
		{"abcdef", 3, 0, "  ^"},
		{"\tabc", 2, 2, "\t^~"},
		// Width clamps at the end of the visible line.
		{"abc", 2, 10, " ^~"},
	}
	for _, tt := range tests {
		if got := caretLine(tt.line, tt.col, tt.width); got != tt.want {
			t.Errorf("caretLine(%q, %d, %d) = %q, want %q", tt.line, tt.col, tt.width, got, tt.want)
		}
	}
}

func TestDisplayPath(t *testing.T) {
	if got := displayPath("src/kernels/loop.c", PathModeBasename); got != "loop.c" {
		t.Errorf("basename = %q", got)
	}
	if got := displayPath("src/kernels/loop.c", PathModeAuto); got != "src/kernels/loop.c" {
		t.Errorf("auto = %q", got)
	}
}
