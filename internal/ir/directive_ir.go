package ir

// DirectiveIR is one fully parsed directive line. It is immutable after
// assembly: the parser builds it once and every consumer reads it through
// accessors. Clause order is the source order and is significant for
// round-tripping.
type DirectiveIR struct {
	kind    DirectiveKind
	lang    Language
	loc     SourceLocation
	param   *DirectiveParameter
	clauses []Clause
}

// NewDirective assembles a directive tree node. The clause slice is owned
// by the new node; callers must not retain or mutate it afterwards.
func NewDirective(kind DirectiveKind, lang Language, loc SourceLocation, param *DirectiveParameter, clauses []Clause) *DirectiveIR {
	return &DirectiveIR{
		kind:    kind,
		lang:    lang,
		loc:     loc,
		param:   param,
		clauses: clauses,
	}
}

// Relocated returns a copy of the directive positioned at loc. The
// driver uses it to move logical-line coordinates into file
// coordinates after continuation splicing. Clauses are shared with the
// receiver, not copied.
func (d *DirectiveIR) Relocated(loc SourceLocation) *DirectiveIR {
	c := *d
	c.loc = loc
	return &c
}

// Kind reports which directive this node represents.
func (d *DirectiveIR) Kind() DirectiveKind { return d.kind }

// Language reports the source language the directive was written in.
// Translation between languages happens at render time; the tree always
// remembers the original.
func (d *DirectiveIR) Language() Language { return d.lang }

// Location is the position of the first sentinel character in the input.
func (d *DirectiveIR) Location() SourceLocation { return d.loc }

// Parameter returns the directive's own parenthesized argument, or nil
// when the directive has none.
func (d *DirectiveIR) Parameter() *DirectiveParameter { return d.param }

// ClauseCount reports how many clauses the directive carries.
func (d *DirectiveIR) ClauseCount() int { return len(d.clauses) }

// ClauseAt returns the i-th clause in source order.
func (d *DirectiveIR) ClauseAt(i int) Clause { return d.clauses[i] }

// FirstClause returns the first clause of the given kind in source order.
func (d *DirectiveIR) FirstClause(kind ClauseKind) (Clause, bool) {
	for _, c := range d.clauses {
		if c.Kind == kind {
			return c, true
		}
	}
	return Clause{}, false
}

// AllClauses returns every clause of the given kind in source order. The
// result is freshly allocated; nil when the directive has none.
func (d *DirectiveIR) AllClauses(kind ClauseKind) []Clause {
	var out []Clause
	for _, c := range d.clauses {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// HasClause reports whether at least one clause of the given kind is
// present.
func (d *DirectiveIR) HasClause(kind ClauseKind) bool {
	_, ok := d.FirstClause(kind)
	return ok
}
