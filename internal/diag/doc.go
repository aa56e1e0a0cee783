// Package diag defines the diagnostic model shared by the lexer, parser,
// and driver layers.
//
// Diagnostic is the central record: severity, a compact numeric Code with a
// stable string form, a human message, the primary source span, and optional
// notes and fix suggestions. Producers emit through a Reporter so they never
// couple to storage or formatting; Bag aggregates with a hard capacity so a
// pathological input cannot balloon memory. Rendering lives in
// internal/diagfmt, never here.
//
// Code blocks: 1000-1999 lexical (sentinel and tokenization), 2000-2999
// syntax (directive and clause structure). Codes are append-only; renumbering
// breaks cached scan reports.
package diag
