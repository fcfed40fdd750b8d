// Command oolang is the interpreter's entry point: an interactive REPL
// by default, or `oolang run <file>` to feed a whole source file through
// the same submission pipeline non-interactively. main itself stays
// thin, wiring config/history state and delegating the actual loop to
// pkg/cli.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oolang/oolang/internal/analyzer"
	"github.com/oolang/oolang/internal/config"
	"github.com/oolang/oolang/internal/history"
	"github.com/oolang/oolang/internal/parser"
	"github.com/oolang/oolang/internal/pipeline"
	"github.com/oolang/oolang/pkg/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run implements the whole CLI and returns a process exit code, kept
// separate from main so cmd/oolang/main_test.go's testscript harness can
// register it as the `oolang` command (via testscript.RunMain), which
// re-executes the test binary as a subprocess for each script command.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	dumpAST := false
	var filtered []string
	for _, a := range args {
		if a == "-dump-ast" {
			dumpAST = true
			continue
		}
		filtered = append(filtered, a)
	}
	args = filtered

	if len(args) >= 1 && args[0] == "run" {
		if len(args) != 2 {
			fmt.Fprintln(stderr, "usage: oolang run <file>")
			return 1
		}
		return runFile(args[1], dumpAST, stdout, stderr)
	}

	if len(args) >= 1 && args[0] == "check" {
		if len(args) != 2 {
			fmt.Fprintln(stderr, "usage: oolang check <file>")
			return 1
		}
		return checkFile(args[1], stdout, stderr)
	}

	if len(args) >= 1 && (args[0] == "-version" || args[0] == "--version") {
		fmt.Fprintln(stdout, config.Version)
		return 0
	}

	return runREPL(stdin, stdout, stderr)
}

func runREPL(stdin io.Reader, stdout, stderr io.Writer) int {
	hist, err := history.Open(config.HistoryDBFileName)
	if err != nil {
		fmt.Fprintf(stderr, "warning: history unavailable: %s\n", err)
		hist = nil
	} else {
		defer hist.Close()
	}

	if !config.IsTestMode {
		fmt.Fprintf(stdout, "oolang %s — interactive session. Definitions accumulate; `:quit` to exit.\n", config.Version)
	}

	repl := cli.New(stdin, stdout, stderr, hist)
	repl.Run()
	return 0
}

func runFile(path string, dumpAST bool, stdout, stderr io.Writer) int {
	if !config.HasSourceExt(path) {
		fmt.Fprintf(stderr, "oolang: warning: %s does not have a recognized source extension (%s)\n", path, strings.Join(config.SourceFileExtensions, ", "))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "oolang: %s\n", err)
		return 1
	}

	repl := cli.New(strings.NewReader(""), stdout, stderr, nil)
	sess := repl.Session()

	failed := false
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	collector := cli.NewCollector()
	for scanner.Scan() {
		if collector.Feed(scanner.Text()) != cli.Ready {
			continue
		}
		source := collector.Source()
		collector.Reset()
		result := sess.Submit(source)
		if !result.Ok() {
			failed = true
			for _, e := range result.Errors {
				fmt.Fprintln(stderr, e.Error())
			}
		}
	}
	if collector.Source() != "" {
		fmt.Fprintln(stderr, "oolang: unexpected end of file inside an unfinished submission")
		failed = true
	}

	if dumpAST {
		fmt.Fprintf(stdout, "%#v\n", sess.Program())
	}

	if failed {
		return 1
	}
	return 0
}

// checkFile runs the whole file through the lex→parse→analyze pipeline
// as a single submission and reports diagnostics without executing
// anything — a one-shot static check, unlike `run`'s incremental
// multi-submission replay through the session.
func checkFile(path string, stdout, stderr io.Writer) int {
	if !config.HasSourceExt(path) {
		fmt.Fprintf(stderr, "oolang: warning: %s does not have a recognized source extension (%s)\n", path, strings.Join(config.SourceFileExtensions, ", "))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "oolang: %s\n", err)
		return 1
	}

	ctx := pipeline.NewContext(string(data))
	parseStage := &parser.Processor{}
	analyzeStage := &analyzer.Processor{}
	pl := pipeline.New(parseStage, analyzeStage)
	ctx = pl.Run(ctx)

	if ctx.HasErrors() {
		for _, e := range ctx.Errors {
			fmt.Fprintln(stderr, e.Error())
		}
		return 1
	}

	userFuncs := 0
	for _, sigs := range analyzeStage.Result.Functions {
		for _, sig := range sigs {
			if sig.FuncDecl != nil {
				userFuncs++
			}
		}
	}
	fmt.Fprintf(stdout, "ok: %d class(es), %d function(s)\n", len(ctx.ClassTable.Names()), userFuncs)
	return 0
}
