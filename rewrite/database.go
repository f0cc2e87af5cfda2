// Package rewrite implements Coral's rule database, pattern matcher and
// rewrite driver: the denotational core of the language. Everything a
// program means is decided here, by which rule matches which subterm in
// which order.
package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2025–2026 The Coral Authors

*/

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/coral-lang/coral"
	"github.com/coral-lang/coral/term"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'coral.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("coral.rewrite")
}

// Rule is a loaded (lhs, rhs) pair. Its head symbol indexes it in the
// database; Pos records the source line it was loaded from, when known.
type Rule struct {
	LHS term.Term
	RHS term.Term
	Pos coral.Position
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s = %s", r.LHS, r.RHS)
}

// Fingerprint computes a structural hash of the rule. It exists for front
// ends that want to deduplicate rules across reloads; the database itself
// never consults it and always appends.
func (r *Rule) Fingerprint() (string, error) {
	return structhash.Hash(struct{ LHS, RHS string }{r.LHS.String(), r.RHS.String()}, 1)
}

// Database maps a head symbol to the ordered sequence of rules sharing
// that head. Insertion order is preserved and significant: the first
// matching rule wins. A linkedhashmap of arraylists keeps both the set of
// heads and each head's rule sequence in insertion order without a
// secondary bookkeeping structure.
type Database struct {
	byHead *linkedhashmap.Map // head string -> *arraylist.List of *Rule
}

// NewDatabase returns an empty rule database.
func NewDatabase() *Database {
	return &Database{byHead: linkedhashmap.New()}
}

// Add inserts a rule at the end of the sequence for its head symbol.
// Loading is append-only within a session: reloading the same source
// appends again, it is up to the front end to reset first. A
// variable-headed lhs is rejected with a *coral.RuleError.
func (db *Database) Add(lhs, rhs term.Term, pos coral.Position) error {
	if a, ok := lhs.(term.Atom); ok && a.IsVariable() {
		return &coral.RuleError{Pos: pos, Msg: fmt.Sprintf("variable head: %s", a)}
	}
	head := lhs.Head()
	list := db.listFor(head)
	list.Add(&Rule{LHS: lhs, RHS: rhs, Pos: pos})
	tracer().Debugf("added rule %s = %s under head %q (%d total)", lhs, rhs, head, list.Size())
	return nil
}

func (db *Database) listFor(head string) *arraylist.List {
	if v, found := db.byHead.Get(head); found {
		return v.(*arraylist.List)
	}
	list := arraylist.New()
	db.byHead.Put(head, list)
	return list
}

// RulesFor returns the rules registered under a head symbol, in insertion
// order. The slice is a fresh copy; callers may not rely on it aliasing
// internal storage.
func (db *Database) RulesFor(head string) []*Rule {
	v, found := db.byHead.Get(head)
	if !found {
		return nil
	}
	list := v.(*arraylist.List)
	rules := make([]*Rule, 0, list.Size())
	it := list.Iterator()
	for it.Next() {
		rules = append(rules, it.Value().(*Rule))
	}
	return rules
}

// Len returns the total number of loaded rules across all heads.
func (db *Database) Len() int {
	n := 0
	it := db.byHead.Iterator()
	for it.Next() {
		n += it.Value().(*arraylist.List).Size()
	}
	return n
}

// Heads returns the set of head symbols with at least one rule, in the
// order they were first encountered.
func (db *Database) Heads() []string {
	heads := make([]string, 0, db.byHead.Size())
	it := db.byHead.Iterator()
	for it.Next() {
		heads = append(heads, it.Key().(string))
	}
	return heads
}
