// Command coral is the language's CLI: load rule files, evaluate a term
// given on the command line, or drop into the interactive shell.
package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2025–2026 The Coral Authors

*/

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/coral-lang/coral/engine"
	"github.com/coral-lang/coral/library"
	"github.com/coral-lang/coral/repl"
)

func tracer() tracing.Trace {
	return tracing.Select("coral.cmd")
}

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	traceLevel := flag.String("trace", "Error", "trace level [Debug|Info|Error]")
	libPath := flag.String("lib", "", "additional rule file to load into the interactive shell, after the standard library's rules")
	noPrelude := flag.Bool("no-prelude", false, "skip loading the standard library")
	flag.Parse()

	tracing.Select("coral.cmd").SetTraceLevel(tracing.TraceLevelFromString(*traceLevel))
	tracing.Select("coral.repl").SetTraceLevel(tracing.TraceLevelFromString(*traceLevel))
	tracing.Select("coral.engine").SetTraceLevel(tracing.TraceLevelFromString(*traceLevel))
	tracing.Select("coral.rewrite").SetTraceLevel(tracing.TraceLevelFromString(*traceLevel))
	tracing.Select("coral.parser").SetTraceLevel(tracing.TraceLevelFromString(*traceLevel))

	session := engine.NewSession()
	if !*noPrelude {
		if _, err := session.Load(library.Prelude()); err != nil {
			fmt.Fprintln(os.Stderr, "coral: loading standard library:", err)
			os.Exit(1)
		}
	}
	for _, path := range flag.Args() {
		if strings.HasSuffix(path, ".coral") {
			src, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, "coral:", err)
				os.Exit(1)
			}
			if _, err := session.Load(string(src)); err != nil {
				fmt.Fprintln(os.Stderr, "coral:", err)
				os.Exit(1)
			}
			tracer().Infof("loaded %s", path)
		}
	}

	input := strings.TrimSpace(evalArg(flag.Args()))
	if input != "" {
		t, err := session.Eval(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "coral:", err)
			os.Exit(1)
		}
		fmt.Println(engine.Format(t))
		return
	}

	r, err := repl.New(session, "coral> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "coral:", err)
		os.Exit(1)
	}
	defer r.Close()
	if *libPath != "" {
		r.LoadFile(*libPath, func(p string) (string, error) {
			b, err := os.ReadFile(p)
			return string(b), err
		})
	}
	r.Run()
}

// evalArg joins the non-file positional arguments into a single term
// source, so "coral '+ one one'" evaluates a term directly without
// entering the REPL.
func evalArg(args []string) string {
	var parts []string
	for _, a := range args {
		if !strings.HasSuffix(a, ".coral") {
			parts = append(parts, a)
		}
	}
	return strings.Join(parts, " ")
}
