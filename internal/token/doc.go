// Package token defines the lexical token kinds for directive text.
// Invariants:
//   - Token.Text is a slice of the original logical line (no copies).
//   - Token.Off is the byte offset of Text within that line, so any
//     half-open token range maps back to a verbatim source span.
//   - Directive and clause keywords are plain Ident tokens; keyword
//     recognition (and Fortran case folding) happens in the parser,
//     never in the lexer.
//   - Expression content is never reassembled from tokens: consumers
//     slice the original line between token offsets.
package token
