package ir

import "fmt"

// ClauseNormalizationMode selects how much clause rewriting Normalize
// applies after a parse. The zero value keeps the directive exactly as
// written.
type ClauseNormalizationMode uint8

const (
	// NormalizeDisabled keeps every clause in source order, duplicates
	// included.
	NormalizeDisabled ClauseNormalizationMode = 0

	// NormalizeMergeLists merges repeated list clauses of the same kind
	// into the first occurrence, preserving item order.
	NormalizeMergeLists ClauseNormalizationMode = 1

	// NormalizeReferenceParity merges like NormalizeMergeLists and also
	// deduplicates items, case-sensitively for C and case-insensitively
	// for Fortran.
	NormalizeReferenceParity ClauseNormalizationMode = 2
)

var normalizationNames = map[ClauseNormalizationMode]string{
	NormalizeDisabled:        "none",
	NormalizeMergeLists:      "merge",
	NormalizeReferenceParity: "parity",
}

func (m ClauseNormalizationMode) String() string {
	if name, ok := normalizationNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ClauseNormalizationMode(%d)", uint8(m))
}

// ParseNormalizationMode maps the CLI spellings onto a mode.
func ParseNormalizationMode(s string) (ClauseNormalizationMode, bool) {
	switch s {
	case "none", "off", "disabled":
		return NormalizeDisabled, true
	case "merge", "lists":
		return NormalizeMergeLists, true
	case "parity", "reference":
		return NormalizeReferenceParity, true
	}
	return NormalizeDisabled, false
}

// Normalized returns a copy of the directive rewritten under the given
// mode. Only plain variable-list clauses merge; payloads that carry
// modifiers (reduction, map, linear, ...) are never combined because the
// modifiers could differ. The receiver is not mutated.
func (d *DirectiveIR) Normalized(mode ClauseNormalizationMode) *DirectiveIR {
	if mode == NormalizeDisabled || len(d.clauses) == 0 {
		return d
	}

	out := make([]Clause, 0, len(d.clauses))
	first := make(map[ClauseKind]int)

	for _, c := range d.clauses {
		list, ok := c.Data.(*ItemList)
		if !ok {
			out = append(out, c)
			continue
		}
		if i, seen := first[c.Kind]; seen {
			merged := out[i].Data.(*ItemList)
			merged.Items = append(merged.Items, list.Items...)
			continue
		}
		first[c.Kind] = len(out)
		// Copy so the receiver's payload stays untouched.
		out = append(out, Clause{
			Kind: c.Kind,
			Data: &ItemList{Items: append([]Variable(nil), list.Items...)},
		})
	}

	if mode == NormalizeReferenceParity {
		for _, c := range out {
			if list, ok := c.Data.(*ItemList); ok {
				list.Items = dedupItems(list.Items, d.lang)
			}
		}
	}

	return &DirectiveIR{
		kind:    d.kind,
		lang:    d.lang,
		loc:     d.loc,
		param:   d.param,
		clauses: out,
	}
}

// dedupItems drops repeated variables, keeping the first occurrence.
// Fortran compares case-insensitively, C verbatim.
func dedupItems(items []Variable, lang Language) []Variable {
	seen := make(map[string]bool, len(items))
	kept := items[:0]
	for _, v := range items {
		key := lang.Fold(v.String())
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, v)
	}
	return kept
}
