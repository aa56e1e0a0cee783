package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"prag/internal/driver"
	"prag/internal/ir"
	"prag/internal/observ"
	"prag/internal/project"
)

func TestResolveLanguage(t *testing.T) {
	cases := []struct {
		input string
		want  ir.Language
		force bool
	}{
		{"", ir.LangC, false},
		{"auto", ir.LangC, false},
		{"c", ir.LangC, true},
		{"C++", ir.LangC, true},
		{"f90", ir.LangFortranFree, true},
		{"fortran-fixed", ir.LangFortranFixed, true},
	}
	for _, tc := range cases {
		lang, force, err := resolveLanguage(tc.input)
		if err != nil {
			t.Fatalf("resolveLanguage(%q) error: %v", tc.input, err)
		}
		if lang != tc.want || force != tc.force {
			t.Fatalf("resolveLanguage(%q) = (%v, %v), want (%v, %v)",
				tc.input, lang, force, tc.want, tc.force)
		}
	}
	if _, _, err := resolveLanguage("cobol"); err == nil {
		t.Fatalf("expected error for unknown language")
	}
}

func TestResolveDialects(t *testing.T) {
	ds, err := resolveDialects("")
	if err != nil || ds != nil {
		t.Fatalf("resolveDialects(\"\") = (%v, %v), want (nil, nil)", ds, err)
	}
	ds, err = resolveDialects("omp, acc")
	if err != nil {
		t.Fatalf("resolveDialects: %v", err)
	}
	if len(ds) != 2 || ds[0] != ir.DialectOpenMP || ds[1] != ir.DialectOpenACC {
		t.Fatalf("resolveDialects(\"omp, acc\") = %v", ds)
	}
	if _, err := resolveDialects("omp,hpf"); err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
}

func TestDialectAllowed(t *testing.T) {
	open := driver.Options{}
	if !dialectAllowed(open, ir.DialectOpenMP) || !dialectAllowed(open, ir.DialectOpenACC) {
		t.Fatalf("empty filter should allow both dialects")
	}
	accOnly := driver.Options{Dialects: []ir.Dialect{ir.DialectOpenACC}}
	if dialectAllowed(accOnly, ir.DialectOpenMP) {
		t.Fatalf("acc filter should reject openmp")
	}
	if !dialectAllowed(accOnly, ir.DialectOpenACC) {
		t.Fatalf("acc filter should allow openacc")
	}
}

func TestDefaultManifestLoads(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "prag.toml")
	if err := os.WriteFile(path, []byte(buildDefaultManifest("demo")), 0o600); err != nil {
		t.Fatalf("write prag.toml: %v", err)
	}
	cfg, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Project.Name != "demo" {
		t.Fatalf("Project.Name = %q, want demo", cfg.Project.Name)
	}
	if !cfg.Scan.Cache {
		t.Fatalf("starter manifest should enable the cache")
	}
	if got := cfg.Parse.ResolvedDialects(); len(got) != 2 {
		t.Fatalf("ResolvedDialects = %v, want both", got)
	}
	if cfg.Scan.Selects("build/gen.c") {
		t.Fatalf("starter manifest should exclude build/")
	}
	if !cfg.Scan.Selects("src/kern.c") {
		t.Fatalf("starter manifest should keep src/")
	}
}

func TestReadUIMode(t *testing.T) {
	for input, want := range map[string]uiMode{
		"":     uiModeAuto,
		"auto": uiModeAuto,
		"ON":   uiModeOn,
		"off":  uiModeOff,
	} {
		got, err := readUIMode(input)
		if err != nil {
			t.Fatalf("readUIMode(%q) error: %v", input, err)
		}
		if got != want {
			t.Fatalf("readUIMode(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := readUIMode("maybe"); err == nil {
		t.Fatalf("expected error for invalid ui mode")
	}
	if !shouldUseTUI(uiModeOn) {
		t.Fatalf("ui mode on should force the TUI")
	}
	if shouldUseTUI(uiModeOff) {
		t.Fatalf("ui mode off should disable the TUI")
	}
}

func TestPrintScanSummary(t *testing.T) {
	res := &driver.ScanResult{
		Root: ".",
		Files: []driver.FileReport{
			{Path: "empty.c"},
			{
				Path:      "kern.c",
				Records:   make([]driver.DirectiveRecord, 3),
				FromCache: true,
				Elapsed:   2 * time.Millisecond,
			},
		},
		Totals: driver.ScanTotals{
			Files: 2, Directives: 3, Parsed: 3,
			CacheHits: 1,
		},
	}
	var buf bytes.Buffer
	printScanSummary(&buf, res)
	out := buf.String()

	if strings.Contains(out, "empty.c") {
		t.Fatalf("files without directives should be omitted:\n%s", out)
	}
	if !strings.Contains(out, "kern.c") || !strings.Contains(out, "3 directives") {
		t.Fatalf("missing per-file row:\n%s", out)
	}
	if !strings.Contains(out, "(cached)") {
		t.Fatalf("missing cache note:\n%s", out)
	}
	if !strings.Contains(out, "2 files scanned, 3 directives (3 parsed, 0 failed), 0 errors, 0 warnings, 1 cache hits") {
		t.Fatalf("missing totals line:\n%s", out)
	}
}

func TestPrintPhaseTimings(t *testing.T) {
	report := observ.Report{
		TotalMS: 4.5,
		Phases: []observ.PhaseReport{
			{Name: "extract", DurationMS: 1.0},
			{Name: "parse", DurationMS: 3.5, Note: "12 files"},
		},
	}
	var buf bytes.Buffer
	printPhaseTimings(&buf, report)
	out := buf.String()

	for _, want := range []string{"extract", "parse", "(12 files)", "total"} {
		if !strings.Contains(out, want) {
			t.Fatalf("timing output missing %q:\n%s", want, out)
		}
	}
	if len(strings.Split(strings.TrimRight(out, "\n"), "\n")) != 3 {
		t.Fatalf("want one row per phase plus total:\n%s", out)
	}
}

func TestDirectiveTraits(t *testing.T) {
	cases := []struct {
		kind ir.DirectiveKind
		want []string
	}{
		{ir.OmpParallelFor, []string{"parallel"}},
		{ir.OmpFor, []string{"worksharing"}},
		{ir.AccParallelLoop, []string{"parallel", "loop associated"}},
		{ir.OmpTargetTeamsDistributeParallelForSimd, []string{"simd", "device offload", "teams"}},
		{ir.OmpEndParallel, []string{"end marker"}},
	}
	for _, tc := range cases {
		got := directiveTraits(tc.kind)
		if len(got) != len(tc.want) {
			t.Fatalf("directiveTraits(%v) = %v, want %v", tc.kind, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("directiveTraits(%v) = %v, want %v", tc.kind, got, tc.want)
			}
		}
	}
}
