package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"prag/internal/parser"
)

func prettyLine(t *testing.T, line string) string {
	t.Helper()
	d, err := parser.ParseLine(line, parser.Options{})
	if err != nil {
		t.Fatalf("ParseLine(%q) failed: %v", line, err)
	}
	var buf bytes.Buffer
	PrettyDirective(&buf, d, PrettyOpts{})
	return buf.String()
}

func TestPrettyDirectiveTree(t *testing.T) {
	out := prettyLine(t, "#pragma omp parallel for schedule(static, 4) private(i, j)")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3:\n%s", len(lines), out)
	}
	if lines[0] != "parallel for (openmp, c) at 1:1" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "├─ schedule(static, 4)" {
		t.Errorf("row 0 = %q", lines[1])
	}
	if lines[2] != "└─ private(i, j)" {
		t.Errorf("row 1 = %q", lines[2])
	}
}

func TestPrettyDirectiveParameterRow(t *testing.T) {
	out := prettyLine(t, "#pragma omp critical(reduce_lock) hint(2)")

	if !strings.Contains(out, "├─ parameter (reduce_lock)") {
		t.Errorf("missing parameter row in:\n%s", out)
	}
	if !strings.Contains(out, "└─ hint(2)") {
		t.Errorf("missing clause row in:\n%s", out)
	}
}

func TestPrettyDirectiveNestedVariant(t *testing.T) {
	out := prettyLine(t,
		"#pragma omp metadirective when(device={arch(nvptx)}: parallel for) otherwise(simd)")

	// The variant directive hangs under its when row instead of
	// rendering inline.
	if !strings.Contains(out, "├─ when(device={arch(nvptx)})") {
		t.Errorf("missing when row in:\n%s", out)
	}
	if !strings.Contains(out, "│  └─ parallel for (openmp, c)") {
		t.Errorf("missing nested variant head in:\n%s", out)
	}
	if !strings.Contains(out, "└─ otherwise\n") {
		t.Errorf("missing otherwise row in:\n%s", out)
	}
	if !strings.Contains(out, "   └─ simd (openmp, c)") {
		t.Errorf("missing otherwise variant head in:\n%s", out)
	}
}

func TestPrettyDirectiveNil(t *testing.T) {
	var buf bytes.Buffer
	PrettyDirective(&buf, nil, PrettyOpts{})
	if buf.Len() != 0 {
		t.Fatalf("nil directive printed %q", buf.String())
	}
}
