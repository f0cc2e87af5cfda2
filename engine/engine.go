// Package engine provides the Session facade: the single entry point a
// front end (REPL, CLI, embedder) uses to load rules and evaluate terms.
// It wraps the parser and rewrite packages behind a small
// load/eval/format surface so callers never touch those packages
// directly.
package engine

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2025–2026 The Coral Authors

*/

import (
	"context"
	"errors"
	"fmt"

	"github.com/coral-lang/coral"
	"github.com/coral-lang/coral/parser"
	"github.com/coral-lang/coral/rewrite"
	"github.com/coral-lang/coral/term"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'coral.engine'.
func tracer() tracing.Trace {
	return tracing.Select("coral.engine")
}

// Session is a rewriting session: a rule database plus the load/eval/format
// facade. Sessions are not safe for concurrent use; a front end driving
// several evaluations at once should give each its own Session, or
// synchronize access to Load.
type Session struct {
	db   *rewrite.Database
	seen map[string]bool
}

// NewSession returns a session with an empty rule database.
func NewSession() *Session {
	return &Session{db: rewrite.NewDatabase()}
}

// Database exposes the session's underlying rule database, for front ends
// that want to inspect loaded heads or rule counts directly.
func (s *Session) Database() *rewrite.Database {
	return s.db
}

// Load parses source as a sequence of rules and appends all of them to
// the session's database. Loading is append-only: loading the same source
// twice doubles its rules, unless the caller uses LoadUnique instead. It
// returns the number of rules parsed, and a *coral.LexError,
// *coral.ParseError or *coral.RuleError on failure, at which point no
// rules from this call have been added.
func (s *Session) Load(source string) (int, error) {
	rules, err := parser.ParseRules(source)
	if err != nil {
		return 0, err
	}
	for _, r := range rules {
		if a, ok := r.LHS.(term.Atom); ok && a.IsVariable() {
			return 0, &coral.RuleError{Pos: r.Pos, Msg: fmt.Sprintf("variable head: %s", a)}
		}
	}
	for _, r := range rules {
		if err := s.db.Add(r.LHS, r.RHS, r.Pos); err != nil {
			return 0, err
		}
	}
	tracer().Infof("loaded %d rules (%d total)", len(rules), s.db.Len())
	return len(rules), nil
}

// LoadUnique behaves like Load, but skips any rule whose structural
// fingerprint (rewrite.Rule.Fingerprint) has already been loaded into
// this session. Front ends that reload libraries use this to avoid
// doubling every rule; the database itself stays strictly append-only.
func (s *Session) LoadUnique(source string) (int, error) {
	rules, err := parser.ParseRules(source)
	if err != nil {
		return 0, err
	}
	for _, r := range rules {
		if a, ok := r.LHS.(term.Atom); ok && a.IsVariable() {
			return 0, &coral.RuleError{Pos: r.Pos, Msg: fmt.Sprintf("variable head: %s", a)}
		}
	}
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	added := 0
	for _, r := range rules {
		fp, err := (&rewrite.Rule{LHS: r.LHS, RHS: r.RHS}).Fingerprint()
		if err != nil {
			return added, err
		}
		if s.seen[fp] {
			continue
		}
		if err := s.db.Add(r.LHS, r.RHS, r.Pos); err != nil {
			return added, err
		}
		s.seen[fp] = true
		added++
	}
	tracer().Infof("loaded %d unique rules of %d parsed", added, len(rules))
	return added, nil
}

// Eval parses a single term from source and reduces it to normal form
// against the session's current rule database. It fails with a
// *coral.LexError or *coral.ParseError if source is not a single
// well-formed term. There is no bound on how long reduction may run; a
// divergent program simply never returns. Use EvalContext to bound it.
func (s *Session) Eval(source string) (term.Term, error) {
	t, err := parser.ParseTerm(source)
	if err != nil {
		return nil, err
	}
	return rewrite.Reduce(s.db, t), nil
}

// ErrStepBudget is returned by EvalContext when a reduction exceeds the
// step budget given via WithStepBudget.
var ErrStepBudget = errors.New("coral: reduction exceeded its step budget")

type evalOptions struct {
	stepBudget int
}

// Option configures an EvalContext call.
type Option func(*evalOptions)

// WithStepBudget caps the number of Step calls EvalContext will take
// before giving up and returning ErrStepBudget along with the
// partially-reduced term. A budget of 0 (the default) means unbounded.
func WithStepBudget(n int) Option {
	return func(o *evalOptions) { o.stepBudget = n }
}

// EvalContext is like Eval, but drives reduction one Step at a time so it
// can honor ctx cancellation and an optional step budget. Use this instead
// of Eval whenever the term being reduced was not written by someone who
// controls the rule database (an interactive REPL, say), since Eval's
// call to Reduce cannot be interrupted once started.
func (s *Session) EvalContext(ctx context.Context, source string, opts ...Option) (term.Term, error) {
	var o evalOptions
	for _, opt := range opts {
		opt(&o)
	}
	t, err := parser.ParseTerm(source)
	if err != nil {
		return nil, err
	}
	steps := 0
	for {
		if err := ctx.Err(); err != nil {
			return t, err
		}
		if o.stepBudget > 0 && steps >= o.stepBudget {
			return t, ErrStepBudget
		}
		next, stepped := rewrite.Step(s.db, t)
		if !stepped {
			return t, nil
		}
		t = next
		steps++
	}
}

// Format returns t's canonical printable form: an Atom prints as its
// name, an Application prints as its children separated by single spaces
// and wrapped in parentheses. Format(t) is always accepted back by
// parser.ParseTerm, reproducing a term equal to t.
func Format(t term.Term) string {
	return t.String()
}
