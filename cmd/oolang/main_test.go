package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/oolang/oolang/internal/config"
)

// TestMain lets testscript drive `oolang` in-process: scripts under
// testdata/*.txtar that say `exec oolang ...` run this same test binary
// re-executed as the "oolang" command, driving the full
// lex→parse→analyze→execute pipeline end to end against literal
// golden-output scenarios.
func TestMain(m *testing.M) {
	config.IsTestMode = true
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"oolang": func() int {
			return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
		},
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
	})
}
