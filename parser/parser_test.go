package parser

import (
	"testing"

	"github.com/coral-lang/coral/term"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseTermAtom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "coral.parser")
	defer teardown()
	tm, err := ParseTerm("foo")
	if err != nil {
		t.Fatal(err)
	}
	if !tm.Equal(term.Atom("foo")) {
		t.Fatalf("got %s", tm)
	}
}

func TestParseTermApplication(t *testing.T) {
	tm, err := ParseTerm("f a b")
	if err != nil {
		t.Fatal(err)
	}
	want := term.New(term.Atom("f"), term.Atom("a"), term.Atom("b"))
	if !tm.Equal(want) {
		t.Fatalf("got %s, want %s", tm, want)
	}
}

func TestParseTermNested(t *testing.T) {
	tm, err := ParseTerm("s (s 0)")
	if err != nil {
		t.Fatal(err)
	}
	want := term.New(term.Atom("s"), term.New(term.Atom("s"), term.Atom("0")))
	if !tm.Equal(want) {
		t.Fatalf("got %s, want %s", tm, want)
	}
}

func TestParseTermSingleChildGroupCollapses(t *testing.T) {
	tm, err := ParseTerm("(foo)")
	if err != nil {
		t.Fatal(err)
	}
	if !tm.Equal(term.Atom("foo")) {
		t.Fatalf("got %s, want atom foo", tm)
	}
}

func TestParseTermEmptyList(t *testing.T) {
	tm, err := ParseTerm("[]")
	if err != nil {
		t.Fatal(err)
	}
	if !tm.Equal(term.Nil) {
		t.Fatalf("got %s, want []", tm)
	}
}

func TestParseTermEllipsis(t *testing.T) {
	tm, err := ParseTerm("..")
	if err != nil {
		t.Fatal(err)
	}
	if !tm.Equal(term.Ellipsis) {
		t.Fatalf("got %s, want ..", tm)
	}
}

func TestParseTermTrailingTokensFail(t *testing.T) {
	if _, err := ParseTerm("foo bar )"); err == nil {
		t.Fatal("expected a parse error for a stray ')'")
	}
}

func TestParseTermUnbalancedParens(t *testing.T) {
	if _, err := ParseTerm("(foo bar"); err == nil {
		t.Fatal("expected a parse error for unbalanced parentheses")
	}
}

func TestParseTermEmptyExpression(t *testing.T) {
	if _, err := ParseTerm("()"); err == nil {
		t.Fatal("expected a parse error for an empty expression in parens")
	}
	if _, err := ParseTerm(""); err == nil {
		t.Fatal("expected a parse error for a wholly empty term")
	}
}

func TestParseRulesBasic(t *testing.T) {
	src := "id X = X\ndup X X = t\n"
	rules, err := ParseRules(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rules))
	}
	if rules[0].Pos.Line != 1 || rules[1].Pos.Line != 2 {
		t.Fatalf("unexpected line numbers: %+v", rules)
	}
}

func TestParseRulesSkipsBlankAndCommentLines(t *testing.T) {
	src := "\n# a comment\n\nid X = X\n"
	rules, err := ParseRules(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 1 || rules[0].Pos.Line != 4 {
		t.Fatalf("got %+v", rules)
	}
}

func TestParseRulesMissingEqualsFails(t *testing.T) {
	if _, err := ParseRules("id X X\n"); err == nil {
		t.Fatal("expected a parse error for a missing '='")
	}
}

func TestParseRulesNoTrailingNewlineAtEOF(t *testing.T) {
	rules, err := ParseRules("id X = X")
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 1 {
		t.Fatalf("got %+v", rules)
	}
}

func TestParseRulesVariadicSentinel(t *testing.T) {
	rules, err := ParseRules("list A .. = p A (list ..)\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 1 {
		t.Fatalf("got %+v", rules)
	}
}
