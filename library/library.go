// Package library embeds Coral's standard library source so front ends
// can load it without shipping a separate file alongside the binary.
package library

import "embed"

//go:embed prelude.coral
var files embed.FS

// Prelude returns the source of Coral's standard library: naturals, the
// boolean atoms t and f, and cons lists, as described in the language
// documentation. Callers typically pass it straight to an
// engine.Session's Load or LoadUnique.
func Prelude() string {
	b, err := files.ReadFile("prelude.coral")
	if err != nil {
		// files is a compile-time embed of a file in this package; a
		// missing entry here means the package itself fails to build.
		panic(err)
	}
	return string(b)
}
