// Package parser turns a Coral token stream into term.Term values, via the
// one expression grammar shared by both of Coral's entry points:
//
//	expr    := atom+                      -- one or more primaries
//	primary := Atom(name)
//	         | '(' expr ')'
//	         | '[' ']'                    -- empty list literal
//	         | Ellipsis                   -- the special atom ".."
//
// ParseRules (file mode) and ParseTerm (interactive mode) differ only in
// what surrounds an expr: rules are "expr = expr" lines, a term is a single
// expr running to end of input. The grammar has no precedence, ambiguity or
// left recursion, so a small hand-written recursive descent parser covers
// it exactly.
package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2025–2026 The Coral Authors

*/

import (
	"github.com/coral-lang/coral"
	"github.com/coral-lang/coral/lexer"
	"github.com/coral-lang/coral/term"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'coral.parser'.
func tracer() tracing.Trace {
	return tracing.Select("coral.parser")
}

// Rule is a loaded (lhs, rhs) pair together with the source line it was
// parsed from, for RuleError reporting downstream in rule loading.
type Rule struct {
	LHS term.Term
	RHS term.Term
	Pos coral.Position
}

type parser struct {
	toks []lexer.Token
	pos  int
}

func (p *parser) peek() lexer.Token {
	return p.toks[p.pos]
}

func (p *parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func startsPrimary(k lexer.Kind) bool {
	switch k {
	case lexer.AtomTok, lexer.LParen, lexer.LBracket, lexer.Ellipsis:
		return true
	}
	return false
}

func (p *parser) parsePrimary() (term.Term, error) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.AtomTok:
		p.advance()
		return term.Atom(tok.Text), nil
	case lexer.Ellipsis:
		p.advance()
		return term.Ellipsis, nil
	case lexer.LBracket:
		p.advance()
		if p.peek().Kind != lexer.RBracket {
			return nil, &coral.ParseError{Pos: p.peek().Pos, Msg: "expected ']' to close empty list literal"}
		}
		p.advance()
		return term.Nil, nil
	case lexer.LParen:
		p.advance()
		if !startsPrimary(p.peek().Kind) {
			return nil, &coral.ParseError{Pos: p.peek().Pos, Msg: "empty expression inside parentheses"}
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().Kind != lexer.RParen {
			return nil, &coral.ParseError{Pos: p.peek().Pos, Msg: "unbalanced parentheses: expected ')'"}
		}
		p.advance()
		return inner, nil
	default:
		return nil, &coral.ParseError{Pos: tok.Pos, Msg: "expected an atom, '(', '[' or '..'"}
	}
}

// parseExpr parses one or more primaries. A single primary collapses to
// itself; two or more become one Application.
func (p *parser) parseExpr() (term.Term, error) {
	if !startsPrimary(p.peek().Kind) {
		return nil, &coral.ParseError{Pos: p.peek().Pos, Msg: "empty expression"}
	}
	first, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	children := []term.Term{first}
	for startsPrimary(p.peek().Kind) {
		next, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	return term.New(children...), nil
}

func (p *parser) skipNewlines() {
	for p.peek().Kind == lexer.Newline {
		p.advance()
	}
}

// ParseTerm parses a single expr terminated by end-of-input: Coral's
// interactive-mode entry point.
func ParseTerm(src string) (term.Term, error) {
	toks, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	p.skipNewlines()
	t, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if p.peek().Kind != lexer.End {
		return nil, &coral.ParseError{Pos: p.peek().Pos, Msg: "trailing tokens after a complete term"}
	}
	tracer().Debugf("parsed term %s", t)
	return t, nil
}

// ParseRules parses a file: a sequence of `expr Equals expr` rules separated
// by newlines, skipping blank and comment-only lines.
func ParseRules(src string) ([]Rule, error) {
	toks, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	var rules []Rule
	for {
		p.skipNewlines()
		if p.peek().Kind == lexer.End {
			break
		}
		startPos := p.peek().Pos
		lhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().Kind != lexer.Equals {
			return nil, &coral.ParseError{Pos: p.peek().Pos, Msg: "expected '=' in rule"}
		}
		p.advance()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if k := p.peek().Kind; k != lexer.Newline && k != lexer.End {
			return nil, &coral.ParseError{Pos: p.peek().Pos, Msg: "trailing tokens after rule"}
		}
		if p.peek().Kind == lexer.Newline {
			p.advance()
		}
		rules = append(rules, Rule{LHS: lhs, RHS: rhs, Pos: startPos})
	}
	tracer().Infof("parsed %d rules", len(rules))
	return rules, nil
}
