package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type analyzeCmd struct {
	file string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze a brokerage holdings export" }
func (*analyzeCmd) Usage() string {
	return `pfa analyze -f <file.xlsx>

  Analyzes an Excel holdings export (.xlsx or .xls) and displays the
  dashboard of the portfolio.

Usage Examples:
$ pfa analyze -f Holdings_N534952.xlsx
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Excel export to analyze (.xlsx or .xls)")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintf(os.Stderr, "Error: -f is required\n")
		return subcommands.ExitUsageError
	}
	cfg, log, ok := setup()
	if !ok {
		return subcommands.ExitFailure
	}

	s := newSession(cfg, log)
	if err := selectFile(s, c.file); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Analyzing %s...\n", c.file)
	if _, err := s.Analyze(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	u, _ := s.Upload()
	printMarkdown(dashboard(cfg, s, u.Name))
	return subcommands.ExitSuccess
}
