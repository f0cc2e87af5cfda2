// Package term implements Coral's uniform term representation: an Atom (an
// identifier) or an Application (an ordered sequence of two or more child
// terms denoting juxtaposition). It is the data model shared by the lexer,
// parser, rewrite and engine packages.
//
// Application is a flat ordered sequence, not a binary cons-list: the
// surface syntax juxtaposes N primaries with no implicit right-association,
// and the flat form keeps pattern matching a single pairwise walk.
package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2025–2026 The Coral Authors

*/

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// Term is the sum type Atom | Application. Both variants satisfy it.
type Term interface {
	// Equal reports whether two terms are structurally equal: both Atoms
	// with equal names, or both Applications of equal length with
	// pairwise-equal children.
	Equal(other Term) bool
	// Head returns the head symbol: the leftmost Atom obtained by
	// descending the first child repeatedly.
	Head() string
	String() string
	isTerm()
}

// Atom is an identifier; the only primitive value. Its name is a non-empty
// string of non-whitespace, non-bracket characters.
type Atom string

func (Atom) isTerm() {}

func (a Atom) Equal(other Term) bool {
	o, ok := other.(Atom)
	return ok && a == o
}

func (a Atom) Head() string {
	return string(a)
}

func (a Atom) String() string {
	return string(a)
}

// IsVariable reports whether, as a pattern atom, this is a variable: its
// name begins with an uppercase letter. Every other atom is a constant to
// be matched literally. This is purely a property of spelling, evaluated
// at match time; the parser treats all atoms uniformly, which keeps the
// grammar context-free.
func (a Atom) IsVariable() bool {
	r, _ := utf8.DecodeRuneInString(string(a))
	return unicode.IsUpper(r)
}

// Application is an ordered sequence of two or more child terms. Building
// one with fewer than two children is a programmer error; use New, which
// collapses a single child to itself.
type Application []Term

func (Application) isTerm() {}

func (a Application) Equal(other Term) bool {
	o, ok := other.(Application)
	if !ok {
		return false
	}
	return slices.EqualFunc(a, o, func(x, y Term) bool { return x.Equal(y) })
}

func (a Application) Head() string {
	if len(a) == 0 {
		return ""
	}
	return a[0].Head()
}

func (a Application) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range a {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	return b.String()
}

// New builds a term from one or more children. A single child collapses to
// itself: an Application with fewer than two children is not representable.
// New panics if called with zero children; every call site in this module
// is guarded by a grammar rule that never produces an empty sequence.
func New(children ...Term) Term {
	switch len(children) {
	case 0:
		panic("term.New: no children")
	case 1:
		return children[0]
	default:
		return Application(slices.Clone(children))
	}
}

// Nil is the conventional empty-list atom, spelled "[]" by the parser.
var Nil Term = Atom("[]")

// Ellipsis is the conventional variadic-pattern sentinel atom, spelled "..".
// The matcher treats it as an ordinary atom; it has no special meaning
// below the library level.
var Ellipsis Term = Atom("..")
