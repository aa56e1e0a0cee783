package diagfmt

import (
	"encoding/json"
	"io"

	"prag/internal/driver"
	"prag/internal/observ"
)

// ScanRecordJSON is one extracted directive inside a scan report. A
// record with OK false carries only the extraction fields; kind and
// canonical come from a successful parse.
type ScanRecordJSON struct {
	Line      uint32 `json:"line"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Language  string `json:"language"`
	Dialect   string `json:"dialect"`
	Kind      string `json:"kind,omitempty"`
	Clauses   int    `json:"clauses"`
	OK        bool   `json:"ok"`
	Canonical string `json:"canonical,omitempty"`
}

// ScanFileJSON is one scanned file with its directives and diagnostics.
type ScanFileJSON struct {
	Path        string           `json:"path"`
	FromCache   bool             `json:"from_cache,omitempty"`
	ElapsedMS   float64          `json:"elapsed_ms"`
	Directives  []ScanRecordJSON `json:"directives"`
	Diagnostics []DiagnosticJSON `json:"diagnostics,omitempty"`
}

// ScanTotalsJSON aggregates the scan counters.
type ScanTotalsJSON struct {
	Files      int `json:"files"`
	Directives int `json:"directives"`
	Parsed     int `json:"parsed"`
	Failed     int `json:"failed"`
	Errors     int `json:"errors"`
	Warnings   int `json:"warnings"`
	CacheHits  int `json:"cache_hits"`
}

// ScanOutput is the root of the scan report JSON document.
type ScanOutput struct {
	Root   string         `json:"root"`
	Files  []ScanFileJSON `json:"files"`
	Totals ScanTotalsJSON `json:"totals"`
	Timing *observ.Report `json:"timing,omitempty"`
}

// BuildScanOutput flattens a scan result into its wire form. Timing is
// included only when withTiming is set; per-file diagnostics follow
// opts the same way the standalone diagnostics document does.
func BuildScanOutput(res *driver.ScanResult, opts JSONOpts, withTiming bool) *ScanOutput {
	out := &ScanOutput{
		Root:  res.Root,
		Files: make([]ScanFileJSON, 0, len(res.Files)),
		Totals: ScanTotalsJSON{
			Files:      res.Totals.Files,
			Directives: res.Totals.Directives,
			Parsed:     res.Totals.Parsed,
			Failed:     res.Totals.Failed,
			Errors:     res.Totals.Errors,
			Warnings:   res.Totals.Warnings,
			CacheHits:  res.Totals.CacheHits,
		},
	}
	for i := range res.Files {
		out.Files = append(out.Files, buildScanFile(res, &res.Files[i], opts))
	}
	if withTiming {
		timing := res.Timing
		out.Timing = &timing
	}
	return out
}

func buildScanFile(res *driver.ScanResult, f *driver.FileReport, opts JSONOpts) ScanFileJSON {
	out := ScanFileJSON{
		Path:       f.Path,
		FromCache:  f.FromCache,
		ElapsedMS:  float64(f.Elapsed.Microseconds()) / 1000,
		Directives: make([]ScanRecordJSON, 0, len(f.Records)),
	}
	for _, rec := range f.Records {
		out.Directives = append(out.Directives, ScanRecordJSON{
			Line:      rec.Line,
			StartByte: rec.Start,
			EndByte:   rec.End,
			Language:  rec.Language,
			Dialect:   rec.Dialect,
			Kind:      rec.Kind,
			Clauses:   rec.Clauses,
			OK:        rec.OK,
			Canonical: rec.Canonical,
		})
	}
	if f.Bag != nil && len(f.Bag.Items()) > 0 {
		doc := BuildDiagnosticsOutput(f.Bag, res.FileSet, opts)
		out.Diagnostics = doc.Diagnostics
	}
	return out
}

// ScanJSON serializes a scan result as an indented JSON document.
func ScanJSON(w io.Writer, res *driver.ScanResult, opts JSONOpts, withTiming bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildScanOutput(res, opts, withTiming))
}
