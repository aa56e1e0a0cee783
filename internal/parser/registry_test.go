package parser_test

import (
	"testing"

	"prag/internal/ir"
	"prag/internal/parser"
)

func TestLookupDirective(t *testing.T) {
	tests := []struct {
		dialect ir.Dialect
		name    string
		kind    ir.DirectiveKind
		ok      bool
	}{
		{ir.DialectOpenMP, "parallel", ir.OmpParallel, true},
		{ir.DialectOpenMP, "Target  Teams", ir.OmpTargetTeams, true},
		{ir.DialectOpenMP, "TARGET TEAMS DISTRIBUTE PARALLEL FOR SIMD", ir.OmpTargetTeamsDistributeParallelForSimd, true},
		{ir.DialectOpenMP, "enter data", ir.OmpTargetEnterData, false},
		{ir.DialectOpenACC, "enter data", ir.AccEnterData, true},
		{ir.DialectOpenACC, "enter_data", ir.AccEnterData, true},
		{ir.DialectOpenACC, "host_data", ir.AccHostData, true},
		{ir.DialectOpenACC, "end host_data", ir.AccEndHostData, true},
		{ir.DialectOpenACC, "simd", 0, false},
		{ir.DialectOpenMP, "", 0, false},
	}
	for _, tt := range tests {
		kind, ok := parser.LookupDirective(tt.dialect, tt.name)
		if ok != tt.ok || (ok && kind != tt.kind) {
			t.Errorf("LookupDirective(%v, %q) = %v/%v, want %v/%v",
				tt.dialect, tt.name, kind, ok, tt.kind, tt.ok)
		}
	}
}

func TestLookupClause(t *testing.T) {
	tests := []struct {
		dialect ir.Dialect
		name    string
		kind    ir.ClauseKind
		rule    parser.ArgRule
		ok      bool
	}{
		{ir.DialectOpenMP, "nowait", ir.OmpClauseNowait, parser.ArgNone, true},
		{ir.DialectOpenMP, "private", ir.OmpClausePrivate, parser.ArgRequired, true},
		{ir.DialectOpenMP, "ordered", ir.OmpClauseOrdered, parser.ArgOptional, true},
		{ir.DialectOpenMP, "num_gangs", 0, 0, false},
		{ir.DialectOpenACC, "num_gangs", ir.AccClauseNumGangs, parser.ArgRequired, true},
		{ir.DialectOpenACC, "async", ir.AccClauseAsync, parser.ArgOptional, true},
		{ir.DialectOpenACC, "seq", ir.AccClauseSeq, parser.ArgNone, true},
		{ir.DialectOpenACC, "schedule", 0, 0, false},
	}
	for _, tt := range tests {
		kind, rule, ok := parser.LookupClause(tt.dialect, tt.name)
		if ok != tt.ok || (ok && (kind != tt.kind || rule != tt.rule)) {
			t.Errorf("LookupClause(%v, %q) = %v/%v/%v, want %v/%v/%v",
				tt.dialect, tt.name, kind, rule, ok, tt.kind, tt.rule, tt.ok)
		}
	}
}

func TestArgRuleString(t *testing.T) {
	if parser.ArgNone.String() != "bare" || parser.ArgOptional.String() != "optional" || parser.ArgRequired.String() != "required" {
		t.Fatalf("ArgRule strings = %q/%q/%q",
			parser.ArgNone, parser.ArgOptional, parser.ArgRequired)
	}
}

// Every directive name a dialect registry serves must resolve through a
// real parse, so the two tables cannot drift apart.
func TestRegistryRoundTrip(t *testing.T) {
	for _, dialect := range []ir.Dialect{ir.DialectOpenMP, ir.DialectOpenACC} {
		for _, kind := range ir.Directives(dialect) {
			got, ok := parser.LookupDirective(dialect, kind.String())
			if !ok || got != kind {
				t.Errorf("LookupDirective(%v, %q) = %v/%v, want %v", dialect, kind.String(), got, ok, kind)
			}
		}
	}
}
