package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"

	"github.com/oolang/oolang/internal/history"
	"github.com/oolang/oolang/internal/session"
	"github.com/oolang/oolang/internal/snapshot"
)

// REPL drives session.Session from an input/output pair, implementing
// the Idle → Collecting → Ready loop plus a small set of `:`-prefixed
// meta-commands that never reach the session's ordinary submission path.
type REPL struct {
	sess  *session.Session
	hist  *history.Store // nil if history persistence is unavailable
	in    *bufio.Scanner
	out   io.Writer
	errOut io.Writer

	interactive bool
	startSubmit int // submission counter, used by :stats
}

// New builds a REPL reading from in and writing session/banner output to
// out and diagnostics to errOut. hist may be nil to run without
// persistent history (e.g. under `oolang run`).
func New(in io.Reader, out, errOut io.Writer, hist *history.Store) *REPL {
	sess := session.New(out)
	return &REPL{
		sess:        sess,
		hist:        hist,
		in:          bufio.NewScanner(in),
		out:         out,
		errOut:      errOut,
		interactive: isInteractive(in),
	}
}

func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Session exposes the underlying session, used by the non-interactive
// `oolang run` driver to feed whole-file submissions through the same
// Submit path a REPL line uses.
func (r *REPL) Session() *session.Session { return r.sess }

// Run drives the Idle→Collecting→Ready loop until EOF or a `:quit`.
func (r *REPL) Run() {
	collector := NewCollector()
	for {
		if r.interactive {
			r.prompt(collector)
		}
		if !r.in.Scan() {
			break
		}
		line := r.in.Text()

		if collector.Source() == "" && strings.HasPrefix(strings.TrimSpace(line), ":") {
			if r.handleMeta(strings.TrimSpace(line)) {
				return
			}
			continue
		}

		if collector.Feed(line) != Ready {
			continue
		}

		source := collector.Source()
		collector.Reset()
		r.submit(source)
	}
}

func (r *REPL) prompt(c *Collector) {
	if c.Source() == "" {
		fmt.Fprint(r.out, "oolang> ")
	} else {
		fmt.Fprint(r.out, "...... ")
	}
}

func (r *REPL) submit(source string) {
	result := r.sess.Submit(source)
	outcome := "ok"
	if !result.Ok() {
		outcome = result.Errors[0].Error()
		for _, e := range result.Errors {
			fmt.Fprintln(r.errOut, e.Error())
		}
	}
	r.startSubmit++
	if r.hist != nil {
		_ = r.hist.Record(source, result.Kind.String(), outcome, history.Now())
	}
}

// handleMeta runs a `:`-prefixed command; it returns true if the REPL
// should stop (`:quit`/`:exit`).
func (r *REPL) handleMeta(line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case ":quit", ":exit":
		return true
	case ":classes":
		r.cmdClasses()
	case ":handles":
		r.cmdHandles()
	case ":ast":
		r.cmdAST()
	case ":stats":
		r.cmdStats()
	case ":history":
		r.cmdHistory(args)
	case ":save":
		r.cmdSave(args)
	case ":load":
		r.cmdLoad(args)
	default:
		fmt.Fprintf(r.errOut, "unknown command %q\n", cmd)
	}
	return false
}

func (r *REPL) cmdClasses() {
	names := r.sess.FunctionTable()
	var list []string
	for name := range names.Classes {
		list = append(list, name)
	}
	sort.Strings(list)
	for _, n := range list {
		fmt.Fprintln(r.out, n)
	}
}

func (r *REPL) cmdHandles() {
	for name, val := range r.sess.Handles() {
		fmt.Fprintf(r.out, "%s = %s\n", name, val.Inspect())
	}
}

func (r *REPL) cmdAST() {
	fmt.Fprintf(r.out, "%# v\n", pretty.Formatter(r.sess.Program()))
}

func (r *REPL) cmdStats() {
	classCount := len(r.sess.ClassNames())
	srcBytes := 0
	for _, s := range r.sess.DefinitionSources() {
		srcBytes += len(s)
	}
	fmt.Fprintf(r.out, "%s classes, %s of source, %s submissions this session\n",
		humanize.Comma(int64(classCount)),
		humanize.Bytes(uint64(srcBytes)),
		humanize.Comma(int64(r.startSubmit)))
}

func (r *REPL) cmdHistory(args []string) {
	if r.hist == nil {
		fmt.Fprintln(r.errOut, "history is not available in this session")
		return
	}
	var entries []history.Entry
	var err error
	if len(args) >= 2 && args[0] == "--grep" {
		entries, err = r.hist.Search(strings.Join(args[1:], " "))
	} else {
		entries, err = r.hist.Recent(20)
	}
	if err != nil {
		fmt.Fprintln(r.errOut, err)
		return
	}
	for _, e := range entries {
		fmt.Fprintln(r.out, e.FormatLine())
	}
}

func (r *REPL) cmdSave(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.errOut, "usage: :save <file.yaml>")
		return
	}
	if err := snapshot.Save(args[0], r.sess.DefinitionSources()); err != nil {
		fmt.Fprintln(r.errOut, err)
		return
	}
	fmt.Fprintf(r.out, "saved %d definitions to %s\n", len(r.sess.DefinitionSources()), args[0])
}

func (r *REPL) cmdLoad(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.errOut, "usage: :load <file.yaml>")
		return
	}
	sources, err := snapshot.Load(args[0])
	if err != nil {
		fmt.Fprintln(r.errOut, err)
		return
	}
	for _, src := range sources {
		if result := r.sess.Submit(src); !result.Ok() {
			for _, e := range result.Errors {
				fmt.Fprintln(r.errOut, e.Error())
			}
			fmt.Fprintf(r.errOut, "load aborted: definition failed to replay\n")
			return
		}
	}
	fmt.Fprintf(r.out, "loaded %d definitions from %s\n", len(sources), args[0])
}
