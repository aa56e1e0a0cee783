package driver

import (
	"strings"

	"prag/internal/ir"
	"prag/internal/lexer"
	"prag/internal/source"
)

// Extracted is one logical directive line lifted out of a source file.
// Text is the spliced line the parser sees, sentinel included. Span
// covers the sentinel through the end of the last physical line the
// directive occupies; for unspliced directives it covers exactly the
// trimmed directive text, so offsets into Text map one to one.
type Extracted struct {
	Text     string
	Span     source.Span
	Line     uint32 // 1-based line of the sentinel
	Language ir.Language
	Dialect  ir.Dialect
	Spliced  bool
}

// ExtractDirectives walks the physical lines of file and returns every
// logical directive line for the enabled dialects. C directives
// continue while a physical line ends in a backslash. Free-form
// Fortran continues past a trailing '&' when the next line repeats the
// sentinel; fixed form continues when the next sentinel carries a
// continuation marker in the column after it. Directives of a disabled
// dialect are skipped whole, continuations included.
func ExtractDirectives(file *source.File, opts Options) []Extracted {
	var out []Extracted
	numLines := file.NumLines()
	for line := uint32(1); line <= numLines; {
		text := file.GetLine(line)
		lang, dialect, ok := lexer.DetectDirective([]byte(text))
		if !ok {
			line++
			continue
		}
		ext, next := spliceLogical(file, line, lang, dialect)
		line = next + 1
		if !opts.dialectEnabled(dialect) {
			continue
		}
		out = append(out, ext)
	}
	return out
}

// spliceLogical assembles the logical directive line starting at
// startLine and reports the last physical line it consumed.
func spliceLogical(file *source.File, startLine uint32, lang ir.Language, dialect ir.Dialect) (Extracted, uint32) {
	first := file.GetLine(startLine)
	indent := uint32(len(first) - len(strings.TrimLeft(first, " \t")))
	start := file.LineStart(startLine) + indent

	text := strings.TrimSpace(first)
	line := startLine
	numLines := file.NumLines()

	switch lang {
	case ir.LangC:
		for strings.HasSuffix(text, "\\") && line < numLines {
			// The backslash-newline pair disappears, as in the
			// preprocessor.
			text = text[:len(text)-1] + strings.TrimSpace(file.GetLine(line+1))
			line++
		}
	case ir.LangFortranFree:
		for strings.HasSuffix(text, "&") && line < numLines {
			rest, ok := freeContinuationRest(file.GetLine(line+1), dialect)
			if !ok {
				break
			}
			text = strings.TrimSpace(text[:len(text)-1]) + " " + rest
			line++
		}
	case ir.LangFortranFixed:
		for line < numLines {
			rest, ok := fixedContinuationRest(file.GetLine(line+1), dialect)
			if !ok {
				break
			}
			text = text + " " + rest
			line++
		}
	}

	spliced := line != startLine
	ext := Extracted{
		Text:     text,
		Line:     startLine,
		Language: lang,
		Dialect:  dialect,
		Spliced:  spliced,
	}
	if spliced {
		end := file.LineStart(line) + uint32(len(file.GetLine(line)))
		ext.Span = source.Span{File: file.ID, Start: start, End: end}
	} else {
		ext.Span = source.Span{File: file.ID, Start: start, End: start + uint32(len(text))}
	}
	return ext, line
}

// freeContinuationRest strips the repeated sentinel and optional
// leading '&' from a free-form continuation line. A line that is not a
// same-dialect sentinel is not a continuation.
func freeContinuationRest(lineText string, want ir.Dialect) (string, bool) {
	lang, dialect, ok := lexer.DetectDirective([]byte(lineText))
	if !ok || lang != ir.LangFortranFree || dialect != want {
		return "", false
	}
	rest := strings.TrimLeft(lineText, " \t")[len("!$omp"):]
	rest = strings.TrimLeft(rest, " \t")
	rest = strings.TrimPrefix(rest, "&")
	return strings.TrimSpace(rest), true
}

// fixedContinuationRest recognizes a fixed-form continuation: the
// sentinel repeated with a marker other than blank or '0' in the next
// column, conventionally '&'.
func fixedContinuationRest(lineText string, want ir.Dialect) (string, bool) {
	lang, dialect, ok := lexer.DetectDirective([]byte(lineText))
	if !ok || lang != ir.LangFortranFixed || dialect != want {
		return "", false
	}
	rest := strings.TrimLeft(lineText, " \t")[len("c$omp"):]
	if rest == "" {
		return "", false
	}
	marker := rest[0]
	if marker == ' ' || marker == '\t' || marker == '0' {
		return "", false
	}
	return strings.TrimSpace(rest[1:]), true
}
