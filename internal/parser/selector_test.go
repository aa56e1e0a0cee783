package parser_test

import (
	"testing"

	"prag/internal/diag"
	"prag/internal/ir"
	"prag/internal/parser"
)

func TestParseWhenClause(t *testing.T) {
	d := parse(t, "#pragma omp metadirective when(device={arch(nvptx)}: target teams loop) otherwise(parallel loop)")
	if d.Kind() != ir.OmpMetadirective || d.ClauseCount() != 2 {
		t.Fatalf("kind/count = %v/%d", d.Kind(), d.ClauseCount())
	}

	when := d.ClauseAt(0).Data.(*ir.WhenArg)
	if len(when.Selectors) != 1 {
		t.Fatalf("selectors = %+v", when.Selectors)
	}
	set := when.Selectors[0]
	if set.Set != ir.TraitDevice || len(set.Selectors) != 1 || set.Selectors[0].Name != "arch" {
		t.Fatalf("trait set = %+v", set)
	}
	if len(set.Selectors[0].Props) != 1 || set.Selectors[0].Props[0].Raw != "nvptx" {
		t.Fatalf("props = %+v", set.Selectors[0].Props)
	}
	if when.Directive == nil || when.Directive.Kind() != ir.OmpTargetTeamsLoop {
		t.Fatalf("variant = %+v", when.Directive)
	}

	otherwise := d.ClauseAt(1).Data.(*ir.OtherwiseArg)
	if otherwise.Directive == nil || otherwise.Directive.Kind() != ir.OmpParallelLoop {
		t.Fatalf("otherwise = %+v", otherwise.Directive)
	}
}

func TestParseWhenMultipleTraitSets(t *testing.T) {
	d := parse(t, "#pragma omp metadirective when(construct={target, parallel for}, user={condition(n > 1024)}: nothing)")
	when := d.ClauseAt(0).Data.(*ir.WhenArg)
	if len(when.Selectors) != 2 {
		t.Fatalf("selectors = %+v", when.Selectors)
	}

	construct := when.Selectors[0]
	if construct.Set != ir.TraitConstruct || len(construct.Selectors) != 2 {
		t.Fatalf("construct set = %+v", construct)
	}
	if construct.Selectors[1].Name != "parallel for" {
		t.Fatalf("multi-word selector = %q", construct.Selectors[1].Name)
	}

	user := when.Selectors[1]
	if user.Set != ir.TraitUser || user.Selectors[0].Props[0].Raw != "n > 1024" {
		t.Fatalf("user set = %+v", user)
	}
}

func TestParseWhenWithoutVariant(t *testing.T) {
	d := parse(t, "#pragma omp metadirective when(user={condition(debug)}:)")
	when := d.ClauseAt(0).Data.(*ir.WhenArg)
	if when.Directive != nil {
		t.Fatalf("variant = %+v", when.Directive)
	}
}

func TestParseMatchClause(t *testing.T) {
	d := parse(t, "#pragma omp declare variant(avx_fn) match(implementation={vendor(gnu), extension(disable_implicit_base)})")
	match := mustFirst(t, d, ir.OmpClauseMatch).(*ir.WhenArg)
	if match.Directive != nil || len(match.Selectors) != 1 {
		t.Fatalf("match = %+v", match)
	}
	impl := match.Selectors[0]
	if impl.Set != ir.TraitImplementation || len(impl.Selectors) != 2 {
		t.Fatalf("implementation set = %+v", impl)
	}
}

func TestParseBareOtherwise(t *testing.T) {
	d := parse(t, "#pragma omp metadirective when(user={condition(x)}: parallel) otherwise()")
	otherwise := d.ClauseAt(1).Data.(*ir.OtherwiseArg)
	if otherwise.Directive != nil {
		t.Fatalf("otherwise = %+v", otherwise.Directive)
	}
}

func TestParseSelectorErrors(t *testing.T) {
	expectErr(t, "#pragma omp metadirective when(device={arch(gpu)} parallel)",
		parser.ErrSelector, diag.SynSelector)
	expectErr(t, "#pragma omp metadirective when(compiler={gcc}: parallel)",
		parser.ErrSelector, diag.SynSelector)
	expectErr(t, "#pragma omp metadirective when(device: parallel)",
		parser.ErrSelector, diag.SynSelector)
	expectErr(t, "#pragma omp metadirective when(device={}: parallel)",
		parser.ErrSelector, diag.SynSelector)
	expectErr(t, "#pragma omp declare variant(f) match(user={condition()})",
		parser.ErrSelector, diag.SynSelector)
}

func TestParseNestedVariantDirective(t *testing.T) {
	d := parse(t, "#pragma omp metadirective when(user={condition(deep)}: metadirective when(user={condition(deeper)}: target) otherwise(loop))")
	// The inner metadirective parses recursively; reach through both
	// layers.
	outer := d.ClauseAt(0).Data.(*ir.WhenArg)
	inner := outer.Directive
	if inner == nil || inner.Kind() != ir.OmpMetadirective || inner.ClauseCount() != 2 {
		t.Fatalf("inner = %+v", inner)
	}
}

func TestParseNestingDepthLimit(t *testing.T) {
	line := "#pragma omp metadirective when(user={condition(a)}: metadirective when(user={condition(b)}: parallel))"
	if _, err := parser.ParseLine(line, parser.Options{}); err != nil {
		t.Fatalf("default depth rejected a two-level variant: %v", err)
	}

	_, err := parser.ParseLine(line, parser.Options{MaxNestingDepth: 1})
	perr, ok := err.(*parser.Error)
	if !ok || perr.Kind != parser.ErrNestingTooDeep || perr.Code != diag.SynNestingTooDeep {
		t.Fatalf("err = %v, want nesting-too-deep", err)
	}
}
