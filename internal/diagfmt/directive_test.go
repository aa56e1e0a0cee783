package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"prag/internal/parser"
)

func TestDirectiveOutputShape(t *testing.T) {
	d, err := parser.ParseLine("#pragma omp parallel for num_threads(4) map(tofrom: a[0:n]) nowait", parser.Options{})
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}

	out := BuildDirectiveOutput(d)
	if out.Name != "parallel for" || out.Dialect != "openmp" || out.Language != "c" {
		t.Fatalf("identity = %q/%q/%q", out.Name, out.Dialect, out.Language)
	}
	if out.Tag == 0 {
		t.Fatal("tag must be the non-zero kind value")
	}
	if out.Canonical != "#pragma omp parallel for num_threads(4) map(tofrom: a[0:n]) nowait" {
		t.Fatalf("canonical = %q", out.Canonical)
	}
	if len(out.Clauses) != 3 {
		t.Fatalf("clauses = %d, want 3", len(out.Clauses))
	}

	nt := out.Clauses[0]
	if nt.Name != "num_threads" || nt.Shape != "expr" {
		t.Fatalf("clause 0 = %q/%q", nt.Name, nt.Shape)
	}
	if nt.Payload == nil || len(nt.Payload.Exprs) != 1 || nt.Payload.Exprs[0] != "4" {
		t.Fatalf("clause 0 payload = %+v", nt.Payload)
	}

	mp := out.Clauses[1]
	if mp.Shape != "map" || mp.Payload.Keyword != "tofrom" {
		t.Fatalf("clause 1 = %q keyword %q", mp.Shape, mp.Payload.Keyword)
	}
	if len(mp.Payload.Items) != 1 {
		t.Fatalf("map items = %+v", mp.Payload.Items)
	}
	item := mp.Payload.Items[0]
	if item.Name != "a" || len(item.Sections) != 1 {
		t.Fatalf("map item = %+v", item)
	}
	if sec := item.Sections[0]; sec.Lower != "0" || sec.Extent != "n" || sec.Stride != "" {
		t.Fatalf("section = %+v", sec)
	}

	nw := out.Clauses[2]
	if nw.Name != "nowait" || nw.Shape != "bare" || nw.Payload != nil {
		t.Fatalf("clause 2 = %+v", nw)
	}
}

func TestDirectiveOutputNestedVariant(t *testing.T) {
	d, err := parser.ParseLine(
		"#pragma omp metadirective when(device={arch(nvptx)}: parallel for) otherwise(simd)",
		parser.Options{})
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}

	out := BuildDirectiveOutput(d)
	if len(out.Clauses) != 2 {
		t.Fatalf("clauses = %d, want 2", len(out.Clauses))
	}

	when := out.Clauses[0].Payload
	if when == nil || len(when.Selectors) != 1 {
		t.Fatalf("when payload = %+v", when)
	}
	ts := when.Selectors[0]
	if ts.Set != "device" || len(ts.Selectors) != 1 || ts.Selectors[0].Name != "arch" {
		t.Fatalf("trait set = %+v", ts)
	}
	if len(ts.Selectors[0].Props) != 1 || ts.Selectors[0].Props[0] != "nvptx" {
		t.Fatalf("selector props = %+v", ts.Selectors[0].Props)
	}
	if when.Directive == nil || when.Directive.Name != "parallel for" {
		t.Fatalf("when variant = %+v", when.Directive)
	}

	otherwise := out.Clauses[1].Payload
	if otherwise == nil || otherwise.Directive == nil || otherwise.Directive.Name != "simd" {
		t.Fatalf("otherwise variant = %+v", otherwise)
	}
}

func TestDirectiveAsJSONRoundTrips(t *testing.T) {
	d, err := parser.ParseLine("!$acc parallel loop gang(num: 4), copyin(readonly: x)", parser.Options{})
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}

	var buf bytes.Buffer
	if err := DirectiveAsJSON(&buf, d); err != nil {
		t.Fatalf("DirectiveAsJSON failed: %v", err)
	}

	var out DirectiveJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Dialect != "openacc" || out.Language != "fortran-free" {
		t.Fatalf("identity = %q/%q", out.Dialect, out.Language)
	}
	gang := out.Clauses[0]
	if gang.Shape != "acc-parallelism" || gang.Payload.Args["num"] != "4" {
		t.Fatalf("gang = %+v", gang)
	}
	copyin := out.Clauses[1]
	if len(copyin.Payload.Modifiers) != 1 || copyin.Payload.Modifiers[0] != "readonly" {
		t.Fatalf("copyin = %+v", copyin.Payload)
	}
}
