package driver

import (
	"errors"
	"fmt"

	"prag/internal/diag"
	"prag/internal/ir"
	"prag/internal/parser"
	"prag/internal/source"
)

// LineResult is the outcome of parsing one directive line held in
// memory.
type LineResult struct {
	FileSet   *source.FileSet
	File      *source.File
	Directive *ir.DirectiveIR
	Err       error
	Bag       *diag.Bag
}

// Parsed pairs an extracted directive with its parse outcome. Exactly
// one of Directive and Err is set.
type Parsed struct {
	Extracted
	Directive *ir.DirectiveIR
	Err       *parser.Error
}

// FileResult is the outcome of extracting and parsing every directive
// in one file.
type FileResult struct {
	FileSet *source.FileSet
	File    *source.File
	Items   []Parsed
	Bag     *diag.Bag
}

// ParseLine parses a single directive line. The dialect filter does
// not apply here; an explicitly given line is always parsed.
func ParseLine(line string, opts Options) *LineResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<directive>", []byte(line))
	file := fs.Get(id)
	bag := diag.NewBag(opts.maxDiagnostics())
	d, err := parser.Parse(file, opts.parserOptions(&diag.BagReporter{Bag: bag}))
	return &LineResult{FileSet: fs, File: file, Directive: d, Err: err, Bag: bag}
}

// ParseFile loads a file, extracts its directives and parses each one.
// Diagnostics land in the result bag with spans remapped into the real
// file, so excerpts and fixes point at the caller's source.
func ParseFile(path string, opts Options) (*FileResult, error) {
	fs := source.NewFileSet()
	id, err := fs.LoadEncoded(path, opts.Encoding)
	if err != nil {
		return nil, err
	}
	file := fs.Get(id)
	bag := diag.NewBag(opts.maxDiagnostics())
	items := parseExtracted(file, bag, opts)
	return &FileResult{FileSet: fs, File: file, Items: items, Bag: bag}, nil
}

// parseExtracted extracts and parses every directive in file,
// reporting into bag.
func parseExtracted(file *source.File, bag *diag.Bag, opts Options) []Parsed {
	return parseDirectives(file, ExtractDirectives(file, opts), bag, opts)
}

// parseDirectives parses already-extracted logical lines. Each line is
// parsed out of a throwaway virtual file; diagnostics are remapped
// into the enclosing file on the way to the bag.
func parseDirectives(file *source.File, extracted []Extracted, bag *diag.Bag, opts Options) []Parsed {
	if len(extracted) == 0 {
		return nil
	}
	items := make([]Parsed, 0, len(extracted))
	for _, ext := range extracted {
		lfs := source.NewFileSet()
		lid := lfs.AddVirtual(fmt.Sprintf("%s:%d", file.Path, ext.Line), []byte(ext.Text))
		reporter := &remapReporter{bag: bag, ext: ext}
		d, err := parser.Parse(lfs.Get(lid), opts.parserOptions(reporter))
		if d != nil {
			d = d.Relocated(fileLocation(d.Location(), ext, file))
		}
		items = append(items, Parsed{
			Extracted: ext,
			Directive: d,
			Err:       remapError(err, ext, file),
		})
	}
	return items
}

// fileLocation moves a logical-line location into file coordinates,
// with the same column policy as remapError: exact for unspliced
// directives, column 1 after splicing.
func fileLocation(loc ir.SourceLocation, ext Extracted, file *source.File) ir.SourceLocation {
	loc.Line = ext.Line
	if ext.Spliced {
		loc.Column = 1
		return loc
	}
	loc.Column = file.Position(ext.Span.Start).Col + loc.Column - 1
	return loc
}

// remapReporter translates diagnostic spans from logical-line
// coordinates into the enclosing file before they reach the bag. For
// unspliced directives the mapping is exact; spliced directives fall
// back to the whole logical span, since offsets past the first join no
// longer correspond to file bytes.
type remapReporter struct {
	bag *diag.Bag
	ext Extracted
}

func (r *remapReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	remappedNotes := make([]diag.Note, len(notes))
	for i, n := range notes {
		remappedNotes[i] = diag.Note{Span: r.remap(n.Span), Msg: n.Msg}
	}
	remappedFixes := make([]diag.Fix, len(fixes))
	for i, f := range fixes {
		edits := make([]diag.FixEdit, len(f.Edits))
		for j, e := range f.Edits {
			edits[j] = diag.FixEdit{Span: r.remap(e.Span), NewText: e.NewText}
		}
		remappedFixes[i] = diag.Fix{Title: f.Title, Edits: edits}
	}
	(&diag.BagReporter{Bag: r.bag}).Report(code, sev, r.remap(primary), msg, remappedNotes, remappedFixes)
}

func (r *remapReporter) remap(sp source.Span) source.Span {
	e := r.ext
	if e.Spliced {
		return e.Span
	}
	start := e.Span.Start + sp.Start
	end := e.Span.Start + sp.End
	if start > e.Span.End {
		start = e.Span.End
	}
	if end > e.Span.End {
		end = e.Span.End
	}
	return source.Span{File: e.Span.File, Start: start, End: end}
}

// remapError rewrites a parse failure's location into file
// coordinates. Columns stay exact for unspliced directives and fall
// back to the directive start otherwise.
func remapError(err error, ext Extracted, file *source.File) *parser.Error {
	if err == nil {
		return nil
	}
	var perr *parser.Error
	if !errors.As(err, &perr) {
		return &parser.Error{
			Kind:    parser.ErrLex,
			Code:    diag.UnknownCode,
			Message: err.Error(),
			Loc:     ir.SourceLocation{Line: ext.Line, Column: 1},
		}
	}
	fixed := *perr
	fixed.Loc.Line = ext.Line
	if ext.Spliced {
		fixed.Loc.Column = 1
	} else {
		sentinelCol := file.Position(ext.Span.Start).Col
		fixed.Loc.Column = sentinelCol + perr.Loc.Column - 1
	}
	return &fixed
}
