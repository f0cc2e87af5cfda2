// Package lexer turns a Coral source string into a token stream.
//
// It is built on a lexmachine-compiled DFA. One regex rule matches every
// maximal run of non-whitespace, non-bracket bytes; a post-match step then
// reclassifies a run as Equals or Ellipsis when its text is exactly "=" or
// "..", and as a plain Atom otherwise. A standalone DFA rule for "=" or
// ".." would lose the longest-match tie against a longer atom that merely
// contains them ("a==b", "..."), so the reclassification happens after
// matching instead.
package lexer

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2025–2026 The Coral Authors

*/

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/coral-lang/coral"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'coral.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("coral.lexer")
}

// Kind categorizes a Token.
type Kind int

const (
	LParen Kind = iota
	RParen
	LBracket
	RBracket
	Equals
	AtomTok
	Ellipsis
	Newline
	End
)

func (k Kind) String() string {
	switch k {
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case Equals:
		return "Equals"
	case AtomTok:
		return "Atom"
	case Ellipsis:
		return "Ellipsis"
	case Newline:
		return "Newline"
	case End:
		return "End"
	}
	return "?"
}

// Token is one lexical unit, together with the source line it occurred on.
// Line is 1-based; interactive (single-line) sources still number from 1.
type Token struct {
	Kind Kind
	Text string
	Pos  coral.Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Pos)
}

var (
	lex     *lexmachine.Lexer
	lexOnce sync.Once
	lexErr  error
)

// a token kind carried as the lexmachine token type for fixed-shape tokens.
const (
	tLParen = iota + 100
	tRParen
	tLBracket
	tRBracket
	tNewline
	tRun // generic run of non-whitespace, non-bracket bytes; reclassified below
)

func buildLexer() (*lexmachine.Lexer, error) {
	l := lexmachine.NewLexer()
	l.Add([]byte(`#[^\n]*`), skip)
	l.Add([]byte(`( |\t|\r)+`), skip)
	l.Add([]byte(`\n`), fixedToken(tNewline))
	l.Add([]byte(`\(`), fixedToken(tLParen))
	l.Add([]byte(`\)`), fixedToken(tRParen))
	l.Add([]byte(`\[`), fixedToken(tLBracket))
	l.Add([]byte(`\]`), fixedToken(tRBracket))
	l.Add([]byte(`[^ \t\r\n()\[\]]+`), fixedToken(tRun))
	if err := l.Compile(); err != nil {
		return nil, err
	}
	return l, nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func fixedToken(typ int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(typ, string(m.Bytes), m), nil
	}
}

func getLexer() (*lexmachine.Lexer, error) {
	lexOnce.Do(func() {
		lex, lexErr = buildLexer()
	})
	return lex, lexErr
}

// Lex tokenizes src in full, returning the token stream terminated by a
// single End token. It fails with a *coral.LexError only on malformed
// UTF-8 or an otherwise-unconsumable byte run; the current token rules
// consume every byte sequence, so this path is reserved for future
// grammar growth.
func Lex(src string) ([]Token, error) {
	l, err := getLexer()
	if err != nil {
		return nil, err
	}
	scan, err := l.Scanner([]byte(src))
	if err != nil {
		return nil, &coral.LexError{Pos: coral.NoPosition, Msg: err.Error()}
	}
	var toks []Token
	line := 1
	for {
		tok, err, eof := scan.Next()
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, &coral.LexError{
					Pos: coral.Position{Line: line},
					Msg: fmt.Sprintf("unrecognized input at byte offset %d", ui.FailTC),
				}
			}
			return nil, &coral.LexError{Pos: coral.Position{Line: line}, Msg: err.Error()}
		}
		if eof {
			toks = append(toks, Token{Kind: End, Pos: coral.Position{Line: line}})
			break
		}
		lt := tok.(*lexmachine.Token)
		text := string(lt.Lexeme)
		t := Token{Text: text, Pos: coral.Position{Line: line}}
		switch lt.Type {
		case tLParen:
			t.Kind = LParen
		case tRParen:
			t.Kind = RParen
		case tLBracket:
			t.Kind = LBracket
		case tRBracket:
			t.Kind = RBracket
		case tNewline:
			t.Kind = Newline
			toks = append(toks, t)
			line++
			continue
		case tRun:
			switch text {
			case "=":
				t.Kind = Equals
			case "..":
				t.Kind = Ellipsis
			default:
				t.Kind = AtomTok
			}
		default:
			return nil, &coral.LexError{Pos: t.Pos, Msg: fmt.Sprintf("unexpected token type %d", lt.Type)}
		}
		tracer().Debugf("lexed %s", t)
		toks = append(toks, t)
	}
	return toks, nil
}
