package lexer

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func assertKinds(t *testing.T, src string, want ...Kind) {
	t.Helper()
	toks, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex(%q) error: %v", src, err)
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("Lex(%q) = %v, want %v", src, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("Lex(%q)[%d] = %v, want %v (full: %v)", src, i, got[i], want[i], got)
		}
	}
}

func TestLexBrackets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "coral.lexer")
	defer teardown()
	assertKinds(t, "( )[]", LParen, RParen, LBracket, RBracket, End)
}

func TestLexAtomRun(t *testing.T) {
	toks, err := Lex("foo")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 || toks[0].Kind != AtomTok || toks[0].Text != "foo" {
		t.Fatalf("unexpected tokens: %v", toks)
	}
}

func TestLexEqualsStandalone(t *testing.T) {
	assertKinds(t, "f X = X", AtomTok, AtomTok, Equals, AtomTok, End)
}

func TestLexEqualsInsideAtom(t *testing.T) {
	toks, err := Lex("a==b")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 || toks[0].Kind != AtomTok || toks[0].Text != "a==b" {
		t.Fatalf("expected single atom 'a==b', got %v", toks)
	}
}

func TestLexEllipsisStandalone(t *testing.T) {
	assertKinds(t, "list A .. = p A (list ..)",
		AtomTok, AtomTok, Ellipsis, Equals, AtomTok, AtomTok,
		LParen, AtomTok, Ellipsis, RParen, End)
}

func TestLexEllipsisInsideLongerRun(t *testing.T) {
	toks, err := Lex("...")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 || toks[0].Kind != AtomTok || toks[0].Text != "..." {
		t.Fatalf("a run of three dots must lex as one atom, got %v", toks)
	}
}

func TestLexCommentRetainsNewline(t *testing.T) {
	assertKinds(t, "foo # a comment\nbar", AtomTok, Newline, AtomTok, End)
}

func TestLexNewlineSignificant(t *testing.T) {
	assertKinds(t, "a = b\nc = d", AtomTok, Equals, AtomTok, Newline, AtomTok, Equals, AtomTok, End)
}

func TestLexLineNumbers(t *testing.T) {
	toks, err := Lex("a\nb\nc")
	if err != nil {
		t.Fatal(err)
	}
	var lines []int
	for _, tk := range toks {
		if tk.Kind == AtomTok {
			lines = append(lines, tk.Pos.Line)
		}
	}
	want := []int{1, 2, 3}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("atom %d on line %d, want %d", i, lines[i], w)
		}
	}
}

func TestLexBlankAndCommentOnlyLines(t *testing.T) {
	assertKinds(t, "\n  \n# just a comment\nfoo", Newline, Newline, Newline, AtomTok, End)
}
