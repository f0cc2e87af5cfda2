/*
Package coral implements Coral, a minimal functional language whose sole
computational mechanism is user-defined term rewriting. A program is a set
of rules of the form "pattern = result"; evaluation takes an input term and
repeatedly rewrites it until no rule applies.

Package structure mirrors the pipeline of the language, leaves first:

■ lexer: turns a byte stream into a token stream.

■ parser: turns a token stream into a term.Term (and, for files, a list of
rules).

■ term: the uniform term representation (Atom / Application) shared by
every other package.

■ rewrite: the rule database, the pattern matcher and the rewrite driver,
the actual denotational core of the language.

■ engine: the public Load/Eval/Format facade wrapping lexer+parser+rewrite
into sessions.

■ repl and cmd/coral: the interactive front end, outside of the core's
contract.

This root package holds the few types shared across all of the above:
source positions and the error taxonomy produced while lexing, parsing and
loading rules.
*/
package coral
