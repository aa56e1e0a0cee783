package render_test

import (
	"testing"

	"prag/internal/ir"
	"prag/internal/render"
)

func translate(t *testing.T, line string, target ir.Language) string {
	t.Helper()
	return render.Directive(render.Translate(parse(t, line), target), render.Full)
}

// TestTranslateLoopSpelling checks that retargeting swaps for/do loop
// spellings while clauses travel verbatim.
func TestTranslateLoopSpelling(t *testing.T) {
	tests := []struct {
		in     string
		target ir.Language
		want   string
	}{
		{
			"#pragma omp parallel for private(i) schedule(static, 4)",
			ir.LangFortranFree,
			"!$omp parallel do private(i) schedule(static, 4)",
		},
		{
			"!$omp parallel do reduction(+: sum)",
			ir.LangC,
			"#pragma omp parallel for reduction(+: sum)",
		},
		{
			"#pragma omp target teams distribute parallel for simd collapse(2)",
			ir.LangFortranFree,
			"!$omp target teams distribute parallel do simd collapse(2)",
		},
		{
			"#pragma omp for nowait",
			ir.LangFortranFree,
			"!$omp do nowait",
		},
		{
			"!$omp do simd",
			ir.LangC,
			"#pragma omp for simd",
		},
		{
			// Same spelling family: fixed-form input, free-form target.
			"c$omp parallel do private(i)",
			ir.LangFortranFree,
			"!$omp parallel do private(i)",
		},
		{
			// Non-loop directives keep their kind.
			"#pragma omp parallel num_threads(4)",
			ir.LangFortranFree,
			"!$omp parallel num_threads(4)",
		},
		{
			// The cancelled construct twins along with the directive.
			"#pragma omp cancel for",
			ir.LangFortranFree,
			"!$omp cancel do",
		},
		{
			"!$omp cancellation point do",
			ir.LangC,
			"#pragma omp cancellation point for",
		},
		{
			// End markers only exist in their do spelling and pass
			// through untouched.
			"!$omp end parallel do",
			ir.LangC,
			"#pragma omp end parallel do",
		},
		{
			// OpenACC has one loop spelling per construct.
			"!$acc loop gang",
			ir.LangC,
			"#pragma acc loop gang",
		},
	}
	for _, tt := range tests {
		got := translate(t, tt.in, tt.target)
		if got != tt.want {
			t.Errorf("translate(%q, %v)\n got %q\nwant %q", tt.in, tt.target, got, tt.want)
		}
	}
}

// Array sections are structural, so the surface syntax follows the
// target language. The bound expressions themselves are not rewritten.
func TestTranslateSectionSyntax(t *testing.T) {
	tests := []struct {
		in     string
		target ir.Language
		want   string
	}{
		{
			"#pragma omp target map(to: a[0:n])",
			ir.LangFortranFree,
			"!$omp target map(to: a(0:n))",
		},
		{
			"!$omp target enter data map(alloc: a(1:n))",
			ir.LangC,
			"#pragma omp target enter data map(alloc: a[1:n])",
		},
	}
	for _, tt := range tests {
		got := translate(t, tt.in, tt.target)
		if got != tt.want {
			t.Errorf("translate(%q, %v)\n got %q\nwant %q", tt.in, tt.target, got, tt.want)
		}
	}
}

// Metadirective variants are directives in their own right and twin
// their loop spellings along with the enclosing line.
func TestTranslateMetadirectiveVariants(t *testing.T) {
	in := "#pragma omp metadirective when(device={arch(nvptx)}: parallel for) otherwise(simd)"
	want := "!$omp metadirective when(device={arch(nvptx)}: parallel do) otherwise(simd)"
	if got := translate(t, in, ir.LangFortranFree); got != want {
		t.Fatalf("translate(%q)\n got %q\nwant %q", in, got, want)
	}
}

func TestTranslateLeavesOriginalIntact(t *testing.T) {
	d := parse(t, "#pragma omp parallel for private(i)")
	before := render.Directive(d, render.Full)

	out := render.Translate(d, ir.LangFortranFree)
	if out.Language() != ir.LangFortranFree {
		t.Fatalf("translated language = %v, want FortranFree", out.Language())
	}
	if d.Language() != ir.LangC || render.Directive(d, render.Full) != before {
		t.Fatalf("Translate mutated its input: %q", render.Directive(d, render.Full))
	}
}

func TestTranslateNil(t *testing.T) {
	if render.Translate(nil, ir.LangC) != nil {
		t.Fatal("Translate(nil) should stay nil")
	}
}
