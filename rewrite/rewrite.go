package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2025–2026 The Coral Authors

*/

import "github.com/coral-lang/coral/term"

// Subst performs substitution: every variable occurrence in rhs bound in b
// is replaced by its binding; an unbound variable on the rhs is left as-is
// and behaves as a constant atom from then on; constants are unchanged.
// Substitution never mutates rhs. It produces a fresh term.
func Subst(rhs term.Term, b Binding) term.Term {
	switch r := rhs.(type) {
	case term.Atom:
		if r.IsVariable() {
			if v, ok := b[string(r)]; ok {
				return v
			}
		}
		return r
	case term.Application:
		children := make([]term.Term, len(r))
		for i, c := range r {
			children[i] = Subst(c, b)
		}
		return term.Application(children)
	default:
		return rhs
	}
}

// Step performs one reduction step: leftmost-outermost, first-rule-wins.
// It reports whether a redex was found; when it wasn't, t is already in
// normal form and is returned unchanged.
//
// An Application is tried at its own level first, against the rules under
// its head symbol in insertion order. Only if nothing matches there are
// its children tried, left to right, and the first child that steps is
// substituted back in place. Outermost-first matters: a rule like
// "if t A B = A" must fire without forcing B.
func Step(db *Database, t term.Term) (term.Term, bool) {
	if app, ok := t.(term.Application); ok {
		for _, rule := range db.RulesFor(app.Head()) {
			if b, matched := Match(rule.LHS, t, nil); matched {
				return Subst(rule.RHS, b), true
			}
		}
		for i, c := range app {
			if reduced, stepped := Step(db, c); stepped {
				children := make([]term.Term, len(app))
				copy(children, app)
				children[i] = reduced
				return term.Application(children), true
			}
		}
		return t, false
	}
	// t is an Atom: rules registered under this atom name match trivially.
	for _, rule := range db.RulesFor(t.Head()) {
		if b, matched := Match(rule.LHS, t, nil); matched {
			return Subst(rule.RHS, b), true
		}
	}
	return t, false
}

// Reduce iterates Step to a fixed point: Coral's normal-form reduction
// driver. There is no cycle detection and no step limit at this level;
// divergent programs diverge. Front ends wanting to bound a reduction
// drive Step themselves instead of calling Reduce, see
// engine.Session.EvalContext.
func Reduce(db *Database, t term.Term) term.Term {
	for {
		next, stepped := Step(db, t)
		if !stepped {
			return t
		}
		t = next
	}
}
