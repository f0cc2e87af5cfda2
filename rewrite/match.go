package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2025–2026 The Coral Authors

*/

import "github.com/coral-lang/coral/term"

// Binding is a mapping from variable name to term, produced by matching.
// Bindings are short-lived: they exist only during a single rewrite attempt
// and are discarded once substitution produces the new term. A nil Binding
// is a valid, empty binding.
type Binding map[string]term.Term

func (b Binding) extend(name string, t term.Term) Binding {
	nb := make(Binding, len(b)+1)
	for k, v := range b {
		nb[k] = v
	}
	nb[name] = t
	return nb
}

// Match attempts to bind pattern against t, starting from binding b.
// On success it returns the extended binding and true; on failure the
// returned binding is meaningless and false is returned.
//
// Constant atoms compare literally. A variable already bound must re-match
// its existing value, which is what makes non-linear patterns like
// "dup X X" impose equality. An Application only matches an Application of
// equal length, child by child. No backtracking beyond structural
// recursion; matching is deterministic and linear in pattern + term size.
// Bindings are copy-on-extend so a failed sibling match can never leak
// partial bindings into the caller's map.
func Match(pattern, t term.Term, b Binding) (Binding, bool) {
	switch p := pattern.(type) {
	case term.Atom:
		if p.IsVariable() {
			if existing, bound := b[string(p)]; bound {
				return b, existing.Equal(t)
			}
			return b.extend(string(p), t), true
		}
		ta, ok := t.(term.Atom)
		return b, ok && ta == p
	case term.Application:
		ta, ok := t.(term.Application)
		if !ok || len(ta) != len(p) {
			return nil, false
		}
		cur := b
		for i := range p {
			next, matched := Match(p[i], ta[i], cur)
			if !matched {
				return nil, false
			}
			cur = next
		}
		return cur, true
	default:
		return nil, false
	}
}
