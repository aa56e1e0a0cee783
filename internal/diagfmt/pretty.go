package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"prag/internal/diag"
	"prag/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	codeColor    = color.New(color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
	noteColor    = color.New(color.FgCyan)
	fixColor     = color.New(color.FgGreen)
)

// Pretty formats diagnostics for terminals. Expects bag.Sort() to have
// run for deterministic order. Each diagnostic prints as
//
//	<path>:<line>:<col>: <severity> <CODE>: <message>
//
// followed by the offending source line with a caret run under the
// span, then notes and fix suggestions when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	items := bag.Items()
	for i := range items {
		prettyOne(w, &items[i], fs, opts)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "... %d more diagnostics dropped\n", n)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	if file == nil {
		fmt.Fprintf(w, "%s %s: %s\n",
			paint(severityColor(d.Severity), opts.Color, d.Severity.String()),
			paint(codeColor, opts.Color, d.Code.ID()),
			d.Message)
		return
	}
	start, _ := fs.Resolve(d.Primary)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(file.Path, opts.PathMode),
		start.Line, start.Col,
		paint(severityColor(d.Severity), opts.Color, d.Severity.String()),
		paint(codeColor, opts.Color, d.Code.ID()),
		d.Message)

	excerpt(w, file, d.Primary, start, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(w, "  %s %s\n", paint(noteColor, opts.Color, "note:"), note.Msg)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", paint(fixColor, opts.Color, "fix:"), fix.Title)
		}
	}
}

// excerpt prints the primary line inside a numbered gutter, the caret
// run under the span, and up to opts.Context lines of context on each
// side.
func excerpt(w io.Writer, file *source.File, span source.Span, start source.LineCol, opts PrettyOpts) {
	first, last := start.Line, start.Line
	if opts.Context > 0 {
		c := uint32(opts.Context)
		if first > c {
			first -= c
		} else {
			first = 1
		}
		if n := file.NumLines(); last+c <= n {
			last += c
		} else {
			last = n
		}
	}
	for line := first; line <= last; line++ {
		text := strings.TrimRight(file.GetLine(line), "\n")
		fmt.Fprintf(w, "%5d | %s\n", line, text)
		if line == start.Line {
			fmt.Fprintf(w, "      | %s\n", paint(caretColor, opts.Color, caretLine(text, start.Col, span.Len())))
		}
	}
}

// caretLine builds the underline row: padding that mirrors tabs in the
// source line, then a caret and tildes covering the span, clamped to
// the visible line.
func caretLine(line string, col uint32, width uint32) string {
	var b strings.Builder
	for i := 0; i < int(col)-1 && i < len(line); i++ {
		if line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	if width == 0 {
		width = 1
	}
	if rest := len(line) - int(col) + 1; rest > 0 && int(width) > rest {
		width = uint32(rest)
	}
	b.WriteByte('^')
	for i := uint32(1); i < width; i++ {
		b.WriteByte('~')
	}
	return b.String()
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func paint(c *color.Color, enabled bool, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}
