package repl

import (
	"testing"

	"github.com/coral-lang/coral/term"
)

func TestNodeFromTermAtom(t *testing.T) {
	n := nodeFromTerm(term.Atom("foo"))
	if n.Text != "foo" {
		t.Fatalf("got %q, want foo", n.Text)
	}
	if len(n.Children) != 0 {
		t.Fatalf("atom node should have no children, got %d", len(n.Children))
	}
}

func TestNodeFromTermApplication(t *testing.T) {
	tm := term.New(term.Atom("f"), term.Atom("a"), term.Atom("b"))
	n := nodeFromTerm(tm)
	if len(n.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(n.Children))
	}
	if n.Children[0].Text != "f" || n.Children[1].Text != "a" || n.Children[2].Text != "b" {
		t.Fatalf("unexpected children: %+v", n.Children)
	}
}
