// Package testkit holds invariant checkers shared by tests and the
// fuzz targets. Nothing here is wired into the production pipeline.
package testkit

import (
	"fmt"

	"prag/internal/ir"
	"prag/internal/parser"
	"prag/internal/render"
)

// CheckDirectiveInvariants runs structural invariants on a parsed
// directive:
//  1. the kind is registered and every clause kind belongs to the
//     directive's dialect
//  2. list payloads are non-empty (the parser rejects empty lists)
//  3. metadirective variants satisfy the same invariants recursively
func CheckDirectiveInvariants(d *ir.DirectiveIR) error {
	return checkDirective(d, 0)
}

func checkDirective(d *ir.DirectiveIR, depth int) error {
	if d == nil {
		return fmt.Errorf("nil directive")
	}
	if depth > parser.DefaultMaxNestingDepth {
		return fmt.Errorf("variant nesting beyond %d levels", parser.DefaultMaxNestingDepth)
	}
	if !d.Kind().Valid() {
		return fmt.Errorf("unregistered directive kind 0x%04X", uint16(d.Kind()))
	}
	dialect := d.Kind().Dialect()
	for i := 0; i < d.ClauseCount(); i++ {
		c := d.ClauseAt(i)
		if !c.Kind.Valid() {
			return fmt.Errorf("clause %d: unregistered kind 0x%04X", i, uint16(c.Kind))
		}
		if c.Kind.Dialect() != dialect {
			return fmt.Errorf("clause %d (%s): dialect %v on a %v directive", i, c.Kind, c.Kind.Dialect(), dialect)
		}
		if err := checkPayload(c, depth); err != nil {
			return fmt.Errorf("clause %d (%s): %w", i, c.Kind, err)
		}
	}
	return nil
}

func checkPayload(c ir.Clause, depth int) error {
	switch arg := c.Data.(type) {
	case nil:
		return nil
	case *ir.ItemList:
		if len(arg.Items) == 0 {
			return fmt.Errorf("empty item list")
		}
	case *ir.ExprList:
		if len(arg.List) == 0 {
			return fmt.Errorf("empty expression list")
		}
	case *ir.WhenArg:
		if len(arg.Selectors) == 0 {
			return fmt.Errorf("when clause without selectors")
		}
		if arg.Directive != nil {
			return checkDirective(arg.Directive, depth+1)
		}
	case *ir.OtherwiseArg:
		if arg.Directive != nil {
			return checkDirective(arg.Directive, depth+1)
		}
	}
	return nil
}

// CheckRenderFixedPoint verifies that the canonical rendering of d
// parses back to a directive that renders identically. Every IR the
// parser produces must satisfy this.
func CheckRenderFixedPoint(d *ir.DirectiveIR) error {
	if d == nil {
		return fmt.Errorf("nil directive")
	}
	first := render.Directive(d, render.Full)
	reparsed, err := parser.ParseLine(first, parser.Options{
		Language:      d.Language(),
		ForceLanguage: true,
	})
	if err != nil {
		return fmt.Errorf("canonical form %q does not reparse: %w", first, err)
	}
	if reparsed.Kind() != d.Kind() {
		return fmt.Errorf("canonical form %q reparsed as %v, want %v", first, reparsed.Kind(), d.Kind())
	}
	second := render.Directive(reparsed, render.Full)
	if second != first {
		return fmt.Errorf("render not a fixed point:\n first %q\nsecond %q", first, second)
	}
	return nil
}
