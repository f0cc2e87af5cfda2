package term

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAtomEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "coral.term")
	defer teardown()

	if !Atom("foo").Equal(Atom("foo")) {
		t.Fatal("equal atoms compared unequal")
	}
	if Atom("foo").Equal(Atom("bar")) {
		t.Fatal("unequal atoms compared equal")
	}
	if Atom("foo").Equal(New(Atom("foo"), Atom("bar"))) {
		t.Fatal("atom compared equal to an application")
	}
}

func TestApplicationEqual(t *testing.T) {
	a := New(Atom("f"), Atom("a"), Atom("b"))
	b := New(Atom("f"), Atom("a"), Atom("b"))
	c := New(Atom("f"), Atom("a"), Atom("c"))
	if !a.Equal(b) {
		t.Fatal("structurally equal applications compared unequal")
	}
	if a.Equal(c) {
		t.Fatal("structurally different applications compared equal")
	}
}

func TestNewCollapsesSingleChild(t *testing.T) {
	single := New(Atom("foo"))
	if _, ok := single.(Atom); !ok {
		t.Fatalf("New with one child should collapse to that child, got %T", single)
	}
}

func TestHeadSymbol(t *testing.T) {
	flat := Atom("foo")
	if flat.Head() != "foo" {
		t.Fatalf("atom head = %q, want foo", flat.Head())
	}
	nested := New(New(Atom("f"), Atom("x")), Atom("y"))
	if nested.Head() != "f" {
		t.Fatalf("nested head = %q, want f", nested.Head())
	}
}

func TestIsVariable(t *testing.T) {
	cases := map[Atom]bool{
		"X":    true,
		"Foo":  true,
		"foo":  false,
		"0":    false,
		"[]":   false,
		"..":   false,
		"_bar": false,
	}
	for a, want := range cases {
		if got := a.IsVariable(); got != want {
			t.Errorf("%q.IsVariable() = %v, want %v", a, got, want)
		}
	}
}

func TestStringRoundTripShape(t *testing.T) {
	tm := New(Atom("s"), New(Atom("s"), Atom("0")))
	if got, want := tm.String(), "(s (s 0))"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
