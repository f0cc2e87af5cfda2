// Package repl implements an interactive Coral shell: read a line, treat
// it as a rule when it contains a '=' and as a term otherwise, load or
// evaluate it against a running engine.Session, print the result.
package repl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2025–2026 The Coral Authors

*/

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/coral-lang/coral/engine"
	"github.com/coral-lang/coral/term"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'coral.repl'.
func tracer() tracing.Trace {
	return tracing.Select("coral.repl")
}

func init() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " coral",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// REPL is an interactive session: a readline instance wired to an
// engine.Session. Not safe for concurrent use.
type REPL struct {
	rl      *readline.Instance
	session *engine.Session
}

// New returns a REPL bound to session, using prompt as its readline prompt.
func New(session *engine.Session, prompt string) (*REPL, error) {
	rl, err := readline.New(prompt)
	if err != nil {
		return nil, err
	}
	return &REPL{rl: rl, session: session}, nil
}

// Close releases the underlying readline instance.
func (r *REPL) Close() error {
	return r.rl.Close()
}

// LoadFile reads and loads a Coral rule file before the interactive loop
// starts. A missing or unreadable file is reported but does not prevent
// the REPL from starting.
func (r *REPL) LoadFile(path string, read func(string) (string, error)) {
	if path == "" {
		return
	}
	src, err := read(path)
	if err != nil {
		pterm.Error.Println("unable to open " + path + ": " + err.Error())
		return
	}
	n, err := r.session.Load(src)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	tracer().Infof("loaded %d rules from %s", n, path)
}

// Run enters the interactive loop: read a line, evaluate it, print the
// result, until EOF (ctrl-D) or a ":quit" command.
func (r *REPL) Run() {
	pterm.Info.Println("Welcome to coral. Quit with <ctrl>D, or :quit")
	for {
		line, err := r.rl.Readline()
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if quit := r.dispatch(line); quit {
			break
		}
	}
	pterm.Info.Println("bye")
}

func (r *REPL) dispatch(line string) (quit bool) {
	switch {
	case line == ":quit":
		return true
	case line == ":rules":
		r.printRules()
		return false
	case strings.HasPrefix(line, ":trace "):
		r.setTraceLevel(strings.TrimSpace(strings.TrimPrefix(line, ":trace ")))
		return false
	case strings.HasPrefix(line, ":tree "):
		r.evalAndPrintTree(strings.TrimSpace(strings.TrimPrefix(line, ":tree ")))
		return false
	case strings.Contains(line, "="):
		r.loadLine(line)
		return false
	default:
		r.evalLine(line)
		return false
	}
}

func (r *REPL) loadLine(line string) {
	if _, err := r.session.Load(line + "\n"); err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println("ok")
}

func (r *REPL) evalLine(line string) {
	t, err := r.session.Eval(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println(engine.Format(t))
}

func (r *REPL) evalAndPrintTree(line string) {
	t, err := r.session.Eval(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	root := nodeFromTerm(t)
	pterm.DefaultTree.WithRoot(root).Render()
}

func (r *REPL) printRules() {
	for _, head := range r.session.Database().Heads() {
		for _, rule := range r.session.Database().RulesFor(head) {
			pterm.Println(rule.String())
		}
	}
}

func (r *REPL) setTraceLevel(name string) {
	tracing.Select("coral.repl").SetTraceLevel(tracing.TraceLevelFromString(name))
	tracing.Select("coral.engine").SetTraceLevel(tracing.TraceLevelFromString(name))
	tracing.Select("coral.rewrite").SetTraceLevel(tracing.TraceLevelFromString(name))
	tracing.Select("coral.parser").SetTraceLevel(tracing.TraceLevelFromString(name))
	pterm.Info.Println("trace level set to " + name)
}

// nodeFromTerm builds a pterm tree node from a term: an Atom becomes a
// leaf, an Application becomes a node with one child per element (the
// head symbol included, since it carries information).
func nodeFromTerm(t term.Term) pterm.TreeNode {
	switch v := t.(type) {
	case term.Atom:
		return pterm.TreeNode{Text: string(v)}
	case term.Application:
		children := make([]pterm.TreeNode, len(v))
		for i, c := range v {
			children[i] = nodeFromTerm(c)
		}
		return pterm.TreeNode{Text: fmt.Sprintf("(%d)", len(v)), Children: children}
	default:
		return pterm.TreeNode{Text: t.String()}
	}
}
