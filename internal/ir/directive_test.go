package ir

import (
	"strings"
	"testing"
)

func TestDirectiveKind_String(t *testing.T) {
	cases := map[DirectiveKind]string{
		OmpParallel:              "parallel",
		OmpParallelFor:           "parallel for",
		OmpTargetTeamsDistribute: "target teams distribute",
		OmpEndParallel:           "end parallel",
		OmpCancellationPoint:     "cancellation point",
		OmpBeginDeclareTarget:    "begin declare target",
		AccParallel:              "parallel",
		AccHostData:              "host data",
		AccEnterData:             "enter data",
		AccEndHostData:           "end host data",
		DirectiveKind(0):         "DirectiveKind(0x0000)",
		DirectiveKind(0x0FFF):    "DirectiveKind(0x0FFF)",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("String(%#04x) = %q, want %q", uint16(kind), got, want)
		}
	}
}

func TestDirectiveNames_Canonical(t *testing.T) {
	for kind, name := range directiveNames {
		if name == "" {
			t.Fatalf("kind %#04x has an empty name", uint16(kind))
		}
		if name != strings.ToLower(name) {
			t.Fatalf("name %q is not lowercase", name)
		}
		if strings.Contains(name, "_") {
			t.Fatalf("name %q uses an underscore; canonical spellings are space separated", name)
		}
		if strings.TrimSpace(name) != name || strings.Contains(name, "  ") {
			t.Fatalf("name %q has stray whitespace", name)
		}
	}
}

func TestDirectiveKind_DialectPartition(t *testing.T) {
	for kind := range directiveNames {
		want := DialectOpenMP
		if kind&0x1000 != 0 {
			want = DialectOpenACC
		}
		if got := kind.Dialect(); got != want {
			t.Fatalf("Dialect(%v) = %v, want %v", kind, got, want)
		}
	}
	if !OmpParallel.Valid() || !AccKernels.Valid() {
		t.Fatalf("registered kinds must be valid")
	}
	if DirectiveKind(0).Valid() {
		t.Fatalf("zero kind must be invalid")
	}
}

func TestEndOf_BaseOf(t *testing.T) {
	pairs := [...][2]DirectiveKind{
		{OmpParallel, OmpEndParallel},
		{OmpDo, OmpEndDo},
		{OmpTargetTeamsDistributeParallelDoSimd, OmpEndTargetTeamsDistributeParallelDoSimd},
		{OmpDeclareTarget, OmpEndDeclareTarget},
		{OmpBeginDeclareVariant, OmpEndDeclareVariant},
		{OmpBeginAssumes, OmpEndAssumes},
		{OmpBeginMetadirective, OmpEndMetadirective},
		{OmpAllocators, OmpEndAllocators},
		{AccParallel, AccEndParallel},
		{AccHostData, AccEndHostData},
		{AccAtomic, AccEndAtomic},
	}
	for _, p := range pairs {
		base, end := p[0], p[1]
		got, ok := EndOf(base)
		if !ok || got != end {
			t.Fatalf("EndOf(%v) = %v, %v, want %v, true", base, got, ok, end)
		}
		back, ok := BaseOf(end)
		if !ok {
			t.Fatalf("BaseOf(%v) = !ok", end)
		}
		if back != base && endOverrides[back] != end {
			t.Fatalf("BaseOf(%v) = %v, want %v", end, back, base)
		}
	}

	// begin declare target shares end declare target with the plain form.
	if got, ok := EndOf(OmpBeginDeclareTarget); !ok || got != OmpEndDeclareTarget {
		t.Fatalf("EndOf(begin declare target) = %v, %v", got, ok)
	}
	if got, ok := BaseOf(OmpEndDeclareTarget); !ok || got != OmpDeclareTarget {
		t.Fatalf("BaseOf(end declare target) = %v, %v", got, ok)
	}

	if _, ok := EndOf(OmpBarrier); ok {
		t.Fatalf("barrier must not have an end form")
	}
	if _, ok := EndOf(OmpEndParallel); ok {
		t.Fatalf("EndOf of an end marker must fail")
	}
	if _, ok := BaseOf(OmpParallel); ok {
		t.Fatalf("BaseOf of a non-end marker must fail")
	}
}

func TestDirectiveKind_IsEnd(t *testing.T) {
	ends := []DirectiveKind{OmpEndParallel, OmpEndDeclareTarget, AccEndKernels, AccEndAtomic}
	for _, k := range ends {
		if !k.IsEnd() {
			t.Fatalf("%v should be an end marker", k)
		}
	}
	notEnds := []DirectiveKind{OmpParallel, OmpTargetEnterData, AccEnterData, AccExitData, DirectiveKind(0)}
	for _, k := range notEnds {
		if k.IsEnd() {
			t.Fatalf("%v should not be an end marker", k)
		}
	}
}

func TestFamilyPredicates(t *testing.T) {
	type expect struct {
		kind     DirectiveKind
		parallel bool
		workshr  bool
		simd     bool
		task     bool
		target   bool
		teams    bool
		loop     bool
	}
	cases := []expect{
		{kind: OmpParallel, parallel: true},
		{kind: OmpParallelFor, parallel: true},
		{kind: OmpParallelDoSimd, parallel: true, simd: true},
		{kind: OmpFor, workshr: true},
		{kind: OmpDoSimd, workshr: true, simd: true},
		{kind: OmpSingle, workshr: true},
		{kind: OmpWorkshare, workshr: true},
		{kind: OmpTarget, target: true},
		{kind: OmpTargetParallel, target: true},
		{kind: OmpTargetTeamsDistributeParallelForSimd, target: true, teams: true, simd: true},
		{kind: OmpTaskloop, task: true},
		{kind: OmpMaskedTaskloopSimd, task: true, simd: true},
		{kind: OmpTaskwait, task: true},
		{kind: OmpLoop, loop: true},
		{kind: OmpParallelLoop, parallel: true, loop: true},
		{kind: OmpTeamsLoop, teams: true, loop: true},
		{kind: OmpEndParallel},
		{kind: AccParallel, parallel: true},
		{kind: AccParallelLoop, parallel: true, loop: true},
		{kind: AccLoop, loop: true},
	}
	for _, c := range cases {
		if got := c.kind.IsParallel(); got != c.parallel {
			t.Fatalf("IsParallel(%v) = %v, want %v", c.kind, got, c.parallel)
		}
		if got := c.kind.IsWorksharing(); got != c.workshr {
			t.Fatalf("IsWorksharing(%v) = %v, want %v", c.kind, got, c.workshr)
		}
		if got := c.kind.IsSimd(); got != c.simd {
			t.Fatalf("IsSimd(%v) = %v, want %v", c.kind, got, c.simd)
		}
		if got := c.kind.IsTask(); got != c.task {
			t.Fatalf("IsTask(%v) = %v, want %v", c.kind, got, c.task)
		}
		if got := c.kind.IsTarget(); got != c.target {
			t.Fatalf("IsTarget(%v) = %v, want %v", c.kind, got, c.target)
		}
		if got := c.kind.IsTeams(); got != c.teams {
			t.Fatalf("IsTeams(%v) = %v, want %v", c.kind, got, c.teams)
		}
		if got := c.kind.IsLoop(); got != c.loop {
			t.Fatalf("IsLoop(%v) = %v, want %v", c.kind, got, c.loop)
		}
	}
}

func TestSynchronizationAndDeclarative(t *testing.T) {
	syncs := []DirectiveKind{
		OmpBarrier, OmpCritical, OmpFlush, OmpOrdered, OmpAtomic,
		OmpAtomicCapture, AccAtomic, AccAtomicUpdate, AccWait,
	}
	for _, k := range syncs {
		if !k.IsSynchronization() {
			t.Fatalf("IsSynchronization(%v) = false", k)
		}
	}
	if OmpParallel.IsSynchronization() || OmpEndAtomic.IsSynchronization() {
		t.Fatalf("non-sync kinds must answer false")
	}

	decls := []DirectiveKind{
		OmpThreadprivate, OmpDeclareSimd, OmpDeclareTarget, OmpDeclareReduction,
		OmpDeclareMapper, OmpRequires, OmpAssumes, AccDeclare, AccRoutine,
	}
	for _, k := range decls {
		if !k.IsDeclarative() {
			t.Fatalf("IsDeclarative(%v) = false", k)
		}
	}
	if OmpTarget.IsDeclarative() {
		t.Fatalf("target is not declarative")
	}
}

func TestHasStructuredBlock(t *testing.T) {
	withBlock := []DirectiveKind{
		OmpParallel, OmpFor, OmpTask, OmpTarget, OmpCritical, OmpAtomic,
		AccParallel, AccKernels, AccData, AccLoop,
	}
	for _, k := range withBlock {
		if !k.HasStructuredBlock() {
			t.Fatalf("HasStructuredBlock(%v) = false", k)
		}
	}
	standalone := []DirectiveKind{
		OmpBarrier, OmpTaskwait, OmpFlush, OmpTargetUpdate, OmpThreadprivate,
		OmpCancel, OmpEndParallel, AccWait, AccUpdate, AccCache,
		DirectiveKind(0),
	}
	for _, k := range standalone {
		if k.HasStructuredBlock() {
			t.Fatalf("HasStructuredBlock(%v) = true", k)
		}
	}
}

func TestLoopTwin(t *testing.T) {
	pairs := [...][2]DirectiveKind{
		{OmpFor, OmpDo},
		{OmpForSimd, OmpDoSimd},
		{OmpParallelFor, OmpParallelDo},
		{OmpTargetTeamsDistributeParallelForSimd, OmpTargetTeamsDistributeParallelDoSimd},
	}
	for _, p := range pairs {
		if got := LoopTwin(p[0]); got != p[1] {
			t.Fatalf("LoopTwin(%v) = %v, want %v", p[0], got, p[1])
		}
		if got := LoopTwin(p[1]); got != p[0] {
			t.Fatalf("LoopTwin(%v) = %v, want %v", p[1], got, p[0])
		}
	}
	for _, k := range []DirectiveKind{OmpSimd, OmpBarrier, OmpWorkshare, AccLoop} {
		if got := LoopTwin(k); got != k {
			t.Fatalf("LoopTwin(%v) = %v, want identity", k, got)
		}
	}
}

func TestEndForms_NoFamilyFlags(t *testing.T) {
	for kind, name := range directiveNames {
		if !strings.HasPrefix(name, "end ") && name != "end" {
			continue
		}
		if directiveFlags[kind] != 0 {
			t.Fatalf("end form %q carries family flags %#x", name, directiveFlags[kind])
		}
	}
}
