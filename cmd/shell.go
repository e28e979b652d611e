package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/analyzer"
	"github.com/etnz/analyzer/config"
	"github.com/etnz/analyzer/renderer"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "analyze portfolios interactively" }
func (*shellCmd) Usage() string {
	return `pfa shell

  Starts an interactive session reading one command per line:

` + shellHelp
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (*shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, ok := setup()
	if !ok {
		return subcommands.ExitFailure
	}
	sh := &shell{
		cfg:      cfg,
		session:  newSession(cfg, log),
		out:      os.Stdout,
		markdown: terminalMarkdown(),
		prompt:   term.IsTerminal(int(os.Stdin.Fd())),
	}
	if err := sh.run(ctx, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

const shellHelp = `  demo              load the sample portfolio
  analyze <file>    analyze an Excel export (.xlsx or .xls)
  search [query]    filter the holdings, no query shows them all
  sort <column>     sort the holdings by a column, again to reverse
  export [file]     write the displayed holdings as CSV ('-' prints them)
  show              display the dashboard
  unselect          forget the selected file, keep the portfolio
  clear             forget the portfolio and the selected file
  help              print this help
  quit              leave the shell
`

// errNotLoaded is reported by commands that need a portfolio.
var errNotLoaded = errors.New("no portfolio loaded, run demo or analyze <file>")

// shell is a line driven dashboard session.
type shell struct {
	cfg      *config.Config
	session  *analyzer.Session
	out      io.Writer
	markdown func(string) string // renders markdown for out
	prompt   bool
	source   string // what the loaded portfolio comes from
}

// run executes the commands read from r until quit or the end of r.
func (sh *shell) run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for {
		if sh.prompt {
			fmt.Fprint(sh.out, "pfa> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		quit, err := sh.exec(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintf(sh.out, "Error: %v\n", err)
		}
		if quit {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// exec executes one command line.
func (sh *shell) exec(ctx context.Context, line string) (quit bool, err error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "":
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprint(sh.out, shellHelp)
	case "demo":
		sh.session.Demo()
		sh.source = "demo"
		sh.show()
	case "analyze":
		if arg == "" {
			return false, analyzer.ErrNoFile
		}
		if err := selectFile(sh.session, arg); err != nil {
			return false, err
		}
		fmt.Fprintf(sh.out, "Analyzing %s...\n", arg)
		if _, err := sh.session.Analyze(ctx); err != nil {
			return false, err
		}
		u, _ := sh.session.Upload()
		sh.source = u.Name
		sh.show()
	case "search":
		if sh.session.Portfolio() == nil {
			return false, errNotLoaded
		}
		sh.session.Search(arg)
		sh.print(renderer.HoldingsMarkdown(sessionTable(sh.session)))
	case "sort":
		if sh.session.Portfolio() == nil {
			return false, errNotLoaded
		}
		key, err := analyzer.ParseSortKey(arg)
		if err != nil {
			return false, err
		}
		if _, _, err := sh.session.ToggleSort(key); err != nil {
			return false, err
		}
		sh.print(renderer.HoldingsMarkdown(sessionTable(sh.session)))
	case "export":
		if sh.session.Portfolio() == nil {
			return false, errNotLoaded
		}
		if arg == "-" {
			return false, sh.session.Export(sh.out)
		}
		if arg == "" {
			arg = sh.cfg.ExportFile
		}
		n, err := exportFile(sh.session, arg)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(sh.out, "Exported %d holdings to %s (%s)\n", n, arg, analyzer.ExportMIMEType)
	case "show":
		if sh.session.Portfolio() == nil {
			return false, errNotLoaded
		}
		sh.show()
	case "unselect":
		u, ok := sh.session.Upload()
		if !ok {
			return false, analyzer.ErrNoFile
		}
		sh.session.ClearFile()
		fmt.Fprintf(sh.out, "Unselected %s.\n", u)
	case "clear":
		sh.session.Clear()
		sh.source = ""
		fmt.Fprintln(sh.out, "Cleared.")
	default:
		return false, fmt.Errorf("unknown command %q, try help", name)
	}
	return false, nil
}

// show prints the dashboard of the loaded portfolio.
func (sh *shell) show() {
	sh.print(dashboard(sh.cfg, sh.session, sh.source))
}

func (sh *shell) print(md string) { fmt.Fprint(sh.out, sh.markdown(md)) }
