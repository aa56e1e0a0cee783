package render_test

import (
	"testing"

	"prag/internal/ir"
	"prag/internal/parser"
	"prag/internal/render"
)

func parse(t *testing.T, line string) *ir.DirectiveIR {
	t.Helper()
	d, err := parser.ParseLine(line, parser.Options{})
	if err != nil {
		t.Fatalf("ParseLine(%q) failed: %v", line, err)
	}
	return d
}

func renderFull(t *testing.T, line string) string {
	t.Helper()
	return render.Directive(parse(t, line), render.Full)
}

// TestRenderCanonical checks that rendering normalizes spelling and
// spacing, and that a rendering is a fixed point: parsing the output
// and rendering again reproduces it byte for byte.
func TestRenderCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			"#pragma omp parallel for num_threads(4) private(i, j)",
			"#pragma omp parallel for num_threads(4) private(i, j)",
		},
		{
			"#pragma omp target map( always , close , tofrom : a[0:N:2] )",
			"#pragma omp target map(always, close, tofrom: a[0:N:2])",
		},
		{
			"!$OMP PARALLEL DO PRIVATE(A(1:N)) SCHEDULE(STATIC, 4)",
			"!$omp parallel do private(A(1:N)) schedule(static, 4)",
		},
		{
			"#pragma acc parallel loop gang(num:4) vector(length: 128) copyin(readonly: x, y)",
			"#pragma acc parallel loop gang(num: 4), vector(length: 128), copyin(readonly: x, y)",
		},
		{
			"#pragma acc enter_data copyin(a)",
			"#pragma acc enter data copyin(a)",
		},
		{
			"!$acc data copyin(a(1:n)) copyout(b)",
			"!$acc data copyin(a(1:n)), copyout(b)",
		},
		{
			"#pragma omp critical(lock) hint(2)",
			"#pragma omp critical(lock) hint(2)",
		},
		{
			"#pragma omp cancel for if(cancel: done)",
			"#pragma omp cancel for if(cancel: done)",
		},
		{
			"#pragma omp teams num_teams(4 : 8) thread_limit(64)",
			"#pragma omp teams num_teams(4:8) thread_limit(64)",
		},
		{
			"#pragma omp flush(a , b)",
			"#pragma omp flush(a, b)",
		},
		{
			"#pragma omp flush acq_rel",
			"#pragma omp flush acq_rel",
		},
		{
			"#pragma omp depobj(obj) update(inout)",
			"#pragma omp depobj(obj) update(inout)",
		},
		{
			"#pragma omp task depend(in: x, y) priority(3)",
			"#pragma omp task depend(in: x, y) priority(3)",
		},
		{
			"#pragma omp simd linear(val(x, y) : 2) aligned(p : 64)",
			"#pragma omp simd linear(val(x, y): 2) aligned(p: 64)",
		},
		{
			"#pragma omp for order(reproducible : concurrent) lastprivate(conditional : v)",
			"#pragma omp for order(reproducible: concurrent) lastprivate(conditional: v)",
		},
		{
			"#pragma omp target defaultmap(firstprivate : scalar)",
			"#pragma omp target defaultmap(firstprivate: scalar)",
		},
		{
			"#pragma omp task allocate(alloc1 : x) firstprivate(x)",
			"#pragma omp task allocate(alloc1: x) firstprivate(x)",
		},
		{
			"#pragma omp declare reduction(merge : std::vector<int> : omp_out = merge(omp_out, omp_in)) initializer(omp_priv = omp_orig)",
			"#pragma omp declare reduction(merge : std::vector<int> : omp_out = merge(omp_out, omp_in)) initializer(omp_priv = omp_orig)",
		},
		{
			"#pragma omp declare variant(vec_fn) match(construct={simd})",
			"#pragma omp declare variant(vec_fn) match(construct={simd})",
		},
		{
			"#pragma omp metadirective when(device={arch(nvptx)}: target teams) otherwise(parallel)",
			"#pragma omp metadirective when(device={arch(nvptx)}: target teams) otherwise(parallel)",
		},
		{
			"#pragma acc wait(1, 2) async",
			"#pragma acc wait(1, 2) async",
		},
	}
	for _, tt := range tests {
		got := renderFull(t, tt.in)
		if got != tt.want {
			t.Errorf("render(%q)\n got %q\nwant %q", tt.in, got, tt.want)
			continue
		}
		if again := renderFull(t, got); again != got {
			t.Errorf("render(%q) is not a fixed point:\nfirst  %q\nsecond %q", tt.in, got, again)
		}
	}
}

// TestRenderReparse checks structural equality across a render cycle
// for directives whose input is already canonical.
func TestRenderReparse(t *testing.T) {
	lines := []string{
		"#pragma omp target teams distribute parallel for simd collapse(2) map(tofrom: a[0:n])",
		"!$omp parallel do reduction(+: sum) schedule(dynamic, 8)",
		"#pragma acc kernels loop independent, private(tmp)",
	}
	for _, line := range lines {
		d := parse(t, line)
		r := parse(t, render.Directive(d, render.Full))
		if r.Kind() != d.Kind() || r.Language() != d.Language() {
			t.Errorf("reparse of %q changed identity: %v/%v to %v/%v",
				line, d.Kind(), d.Language(), r.Kind(), r.Language())
		}
		if r.ClauseCount() != d.ClauseCount() {
			t.Errorf("reparse of %q changed clause count: %d to %d",
				line, d.ClauseCount(), r.ClauseCount())
			continue
		}
		for i := 0; i < d.ClauseCount(); i++ {
			if r.ClauseAt(i).Kind != d.ClauseAt(i).Kind {
				t.Errorf("reparse of %q clause %d: %v to %v",
					line, i, d.ClauseAt(i).Kind, r.ClauseAt(i).Kind)
			}
		}
	}
}

// Fixed-form input renders with the free-form sentinel. The two forms
// share a directive grammar, only the comment prefix differs.
func TestRenderFixedFormSentinel(t *testing.T) {
	d := parse(t, "c$omp do private(i)")
	if d.Language() != ir.LangFortranFixed {
		t.Fatalf("language = %v, want FortranFixed", d.Language())
	}
	got := render.Directive(d, render.Full)
	want := "!$omp do private(i)"
	if got != want {
		t.Fatalf("render = %q, want %q", got, want)
	}
}

func TestSentinel(t *testing.T) {
	tests := []struct {
		lang ir.Language
		d    ir.Dialect
		want string
	}{
		{ir.LangC, ir.DialectOpenMP, "#pragma omp "},
		{ir.LangC, ir.DialectOpenACC, "#pragma acc "},
		{ir.LangFortranFree, ir.DialectOpenMP, "!$omp "},
		{ir.LangFortranFixed, ir.DialectOpenACC, "!$acc "},
	}
	for _, tt := range tests {
		if got := render.Sentinel(tt.lang, tt.d); got != tt.want {
			t.Errorf("Sentinel(%v, %v) = %q, want %q", tt.lang, tt.d, got, tt.want)
		}
	}
}

// TestRenderPlain checks that plain mode replaces every user leaf with
// a placeholder while keywords, enum spellings and modifiers survive.
func TestRenderPlain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			"#pragma omp parallel num_threads(4)",
			"#pragma omp parallel num_threads(...)",
		},
		{
			"#pragma omp target map(always, tofrom: a[0:n], b) if(target: n > 0)",
			"#pragma omp target map(always, tofrom: ..., ...) if(target: ...)",
		},
		{
			"#pragma omp parallel for schedule(monotonic: static, 16) reduction(+: sum)",
			"#pragma omp parallel for schedule(monotonic: static, ...) reduction(+: ...)",
		},
		{
			"#pragma omp critical(lock) hint(4)",
			"#pragma omp critical(...) hint(...)",
		},
		{
			"!$omp barrier",
			"!$omp barrier",
		},
		{
			"#pragma acc parallel loop gang(4) copyin(readonly: buf)",
			"#pragma acc parallel loop gang(num: ...), copyin(readonly: ...)",
		},
		{
			"#pragma omp metadirective when(device={arch(nvptx)}: parallel for num_threads(8)) otherwise(simd simdlen(4))",
			"#pragma omp metadirective when(device={arch(...)}: parallel for num_threads(...)) otherwise(simd simdlen(...))",
		},
		{
			"#pragma omp cancel for",
			"#pragma omp cancel for",
		},
	}
	for _, tt := range tests {
		got := render.Directive(parse(t, tt.in), render.Plain)
		if got != tt.want {
			t.Errorf("plain(%q)\n got %q\nwant %q", tt.in, got, tt.want)
		}
	}
}

func TestModeString(t *testing.T) {
	if render.Full.String() != "full" || render.Plain.String() != "plain" {
		t.Fatalf("mode names = %q, %q", render.Full.String(), render.Plain.String())
	}
}

// Clause and Parameter render fragments for tree output; each must
// match the corresponding piece of the full directive rendering.
func TestRenderFragments(t *testing.T) {
	d := parse(t, "#pragma omp critical(reduce_lock) hint(2)")
	if got := render.Parameter(d.Parameter(), d.Language(), render.Full); got != "(reduce_lock)" {
		t.Errorf("parameter = %q, want %q", got, "(reduce_lock)")
	}
	if got := render.Clause(d.ClauseAt(0), d.Language(), render.Full); got != "hint(2)" {
		t.Errorf("clause = %q, want %q", got, "hint(2)")
	}

	d = parse(t, "#pragma omp cancel parallel")
	if got := render.Parameter(d.Parameter(), d.Language(), render.Full); got != "parallel" {
		t.Errorf("construct parameter = %q, want %q", got, "parallel")
	}
	if got := render.Parameter(nil, ir.LangC, render.Full); got != "" {
		t.Errorf("nil parameter = %q, want empty", got)
	}

	d = parse(t, "!$omp target map(tofrom: a(1:n))")
	if got := render.Clause(d.ClauseAt(0), d.Language(), render.Plain); got != "map(tofrom: ...)" {
		t.Errorf("plain clause = %q, want %q", got, "map(tofrom: ...)")
	}
}

func TestRenderSelectors(t *testing.T) {
	d := parse(t, "#pragma omp metadirective when(device={arch(nvptx), isa(sm_70)}: parallel)")
	arg, ok := d.ClauseAt(0).Data.(*ir.WhenArg)
	if !ok {
		t.Fatalf("clause payload = %T", d.ClauseAt(0).Data)
	}
	want := "device={arch(nvptx), isa(sm_70)}"
	if got := render.Selectors(arg.Selectors); got != want {
		t.Errorf("selectors = %q, want %q", got, want)
	}
}
