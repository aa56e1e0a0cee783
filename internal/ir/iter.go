package ir

import "slices"

// Directives returns every registered directive kind of one dialect in
// ascending tag order. End markers are included.
func Directives(d Dialect) []DirectiveKind {
	out := make([]DirectiveKind, 0, len(directiveNames))
	for k := range directiveNames {
		if k.Dialect() == d {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// Clauses returns every registered clause kind of one dialect in
// ascending tag order.
func Clauses(d Dialect) []ClauseKind {
	out := make([]ClauseKind, 0, len(clauseNames))
	for k := range clauseNames {
		if k.Dialect() == d {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
