package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"prag/internal/diag"
	"prag/internal/observ"
	"prag/internal/project"
	"prag/internal/render"
	"prag/internal/source"
)

// sourceExtensions lists the extensions a scan considers: C and C++
// first, then fixed-form and free-form Fortran.
var sourceExtensions = map[string]bool{
	".c":   true,
	".h":   true,
	".cpp": true,
	".cc":  true,
	".cxx": true,
	".hpp": true,
	".f":   true,
	".F":   true,
	".f77": true,
	".f90": true,
	".F90": true,
	".f95": true,
	".f03": true,
	".f08": true,
}

// FileReport is the scan outcome for one file.
type FileReport struct {
	Path      string // root-relative, slash separators
	FileID    source.FileID
	Records   []DirectiveRecord
	Bag       *diag.Bag
	FromCache bool
	Elapsed   time.Duration
}

// ScanTotals aggregates counts across a whole scan.
type ScanTotals struct {
	Files      int
	Directives int
	Parsed     int
	Failed     int
	Errors     int
	Warnings   int
	CacheHits  int
}

// ScanResult is the outcome of scanning a directory tree.
type ScanResult struct {
	Root    string
	FileSet *source.FileSet
	Files   []FileReport
	Totals  ScanTotals
	Timing  observ.Report
}

// Scan extracts and parses every directive under root. Files are
// preloaded serially, then parsed in parallel with one worker slot per
// file index, so no result needs a lock. Jobs come from Options.Jobs,
// defaulting to GOMAXPROCS.
func Scan(ctx context.Context, root string, opts Options) (*ScanResult, error) {
	timer := observ.NewTimer()

	opts.observe(PhaseEvent{Name: "list", Status: PhaseStart})
	listStart := time.Now()
	idx := timer.Begin("list")
	files, err := ListSourceFiles(root, opts.Selects)
	timer.End(idx, fmt.Sprintf("%d files", len(files)))
	opts.observe(PhaseEvent{Name: "list", Status: PhaseEnd, Elapsed: time.Since(listStart)})
	if err != nil {
		return nil, err
	}

	fileSet := source.NewFileSet()
	result := &ScanResult{Root: root, FileSet: fileSet, Files: make([]FileReport, len(files))}
	if len(files) == 0 {
		result.Timing = timer.Report()
		return result, nil
	}

	for _, rel := range files {
		opts.emit(Event{File: rel, Status: StatusQueued})
	}

	// Preload serially; the FileSet is not safe for concurrent writes.
	// The fileless event updates the sink's overall stage label.
	opts.emit(Event{Stage: StageLoad, Status: StatusWorking})
	opts.observe(PhaseEvent{Name: "load", Status: PhaseStart})
	loadStart := time.Now()
	idx = timer.Begin("load")
	ids := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, rel := range files {
		ids[i], loadErrs[i] = fileSet.LoadEncoded(filepath.Join(root, filepath.FromSlash(rel)), opts.Encoding)
	}
	timer.End(idx, "")
	opts.observe(PhaseEvent{Name: "load", Status: PhaseEnd, Elapsed: time.Since(loadStart)})

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fprint := opts.fingerprint()
	var extractNS, parseNS, cacheNS atomic.Int64

	opts.emit(Event{Stage: StageParse, Status: StatusWorking})
	opts.observe(PhaseEvent{Name: "parse", Status: PhaseStart})
	scanStart := time.Now()
	idx = timer.Begin("parse")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, rel := range files {
		g.Go(func(i int, rel string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				began := time.Now()
				bag := diag.NewBag(opts.maxDiagnostics())

				if loadErr := loadErrs[i]; loadErr != nil {
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.IOLoadFile,
						Message:  "failed to load file: " + loadErr.Error(),
					})
					result.Files[i] = FileReport{Path: rel, Bag: bag, Elapsed: time.Since(began)}
					opts.emit(Event{File: rel, Stage: StageLoad, Status: StatusError, Err: loadErr})
					return nil
				}

				opts.emit(Event{File: rel, Stage: StageParse, Status: StatusWorking})

				report := scanOne(fileSet.Get(ids[i]), rel, bag, opts, fprint, &extractNS, &parseNS, &cacheNS)
				report.FileID = ids[i]
				report.Elapsed = time.Since(began)
				// Index i is unique per goroutine, no lock needed.
				result.Files[i] = report

				status := StatusDone
				if bag.HasErrors() {
					status = StatusError
				}
				stage := StageParse
				if report.FromCache {
					stage = StageCache
				}
				opts.emit(Event{
					File:       rel,
					Stage:      stage,
					Status:     status,
					Elapsed:    report.Elapsed,
					FromCache:  report.FromCache,
					Directives: len(report.Records),
				})
				return nil
			}
		}(i, rel))
	}

	if err := g.Wait(); err != nil {
		return result, err
	}
	timer.End(idx, fmt.Sprintf("%d jobs", min(jobs, len(files))))
	opts.observe(PhaseEvent{Name: "parse", Status: PhaseEnd, Elapsed: time.Since(scanStart)})

	timer.Add("extract (cpu)", time.Duration(extractNS.Load()), "summed across workers")
	timer.Add("parse (cpu)", time.Duration(parseNS.Load()), "summed across workers")
	if opts.Cache != nil {
		timer.Add("cache (cpu)", time.Duration(cacheNS.Load()), "summed across workers")
	}

	result.Totals = tallyTotals(result.Files)
	result.Timing = timer.Report()
	return result, nil
}

// scanOne processes one loaded file: cache probe, then extraction and
// parsing on a miss, then a cache fill.
func scanOne(file *source.File, rel string, bag *diag.Bag, opts Options, fprint project.Digest, extractNS, parseNS, cacheNS *atomic.Int64) FileReport {
	report := FileReport{Path: rel, Bag: bag}

	var key project.Digest
	if opts.Cache != nil {
		key = project.Combine(file.Hash, fprint)
		cacheStart := time.Now()
		var payload filePayload
		hit, err := opts.Cache.Get(key, &payload)
		cacheNS.Add(int64(time.Since(cacheStart)))
		if err != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.IOCacheRead,
				Message:  "cache read failed: " + err.Error(),
			})
		}
		if hit {
			restoreDiags(payload.Diags, file, bag)
			report.Records = payload.Records
			report.FromCache = true
			return report
		}
	}

	extractStart := time.Now()
	extracted := ExtractDirectives(file, opts)
	extractNS.Add(int64(time.Since(extractStart)))

	parseStart := time.Now()
	items := parseDirectives(file, extracted, bag, opts)
	parseNS.Add(int64(time.Since(parseStart)))

	report.Records = makeRecords(items)

	if opts.Cache != nil {
		cacheStart := time.Now()
		payload := filePayload{
			Schema:  cacheSchemaVersion,
			Records: report.Records,
			Diags:   snapshotDiags(bag),
		}
		if err := opts.Cache.Put(key, &payload); err != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.IOCacheWrite,
				Message:  "cache write failed: " + err.Error(),
			})
		}
		cacheNS.Add(int64(time.Since(cacheStart)))
	}
	return report
}

// makeRecords summarizes parse outcomes for reports and the cache.
func makeRecords(items []Parsed) []DirectiveRecord {
	if len(items) == 0 {
		return nil
	}
	out := make([]DirectiveRecord, 0, len(items))
	for _, it := range items {
		rec := DirectiveRecord{
			Line:     it.Line,
			Start:    it.Span.Start,
			End:      it.Span.End,
			Language: it.Language.String(),
			Dialect:  it.Dialect.String(),
			OK:       it.Err == nil,
		}
		if it.Directive != nil {
			rec.Kind = it.Directive.Kind().String()
			rec.Clauses = it.Directive.ClauseCount()
			rec.Canonical = render.Directive(it.Directive, render.Full)
		}
		out = append(out, rec)
	}
	return out
}

func tallyTotals(files []FileReport) ScanTotals {
	var t ScanTotals
	t.Files = len(files)
	for i := range files {
		f := &files[i]
		t.Directives += len(f.Records)
		for _, rec := range f.Records {
			if rec.OK {
				t.Parsed++
			} else {
				t.Failed++
			}
		}
		if f.FromCache {
			t.CacheHits++
		}
		if f.Bag == nil {
			continue
		}
		for _, d := range f.Bag.Items() {
			switch d.Severity {
			case diag.SevError:
				t.Errors++
			case diag.SevWarning:
				t.Warnings++
			}
		}
	}
	return t
}

// ListSourceFiles returns the sorted, root-relative slash paths of
// every recognized source file under root, honoring an optional
// selector. Scan calls it internally; the CLI calls it up front when
// the progress UI needs its file rows before the scan starts.
func ListSourceFiles(root string, selects func(rel string) bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !sourceExtensions[filepath.Ext(path)] {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if selects != nil && !selects(rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
