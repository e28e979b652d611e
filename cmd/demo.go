package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "display the dashboard of the sample portfolio" }
func (*demoCmd) Usage() string {
	return `pfa demo

  Loads the sample portfolio and displays its dashboard: summary, allocations,
  top performers and holdings.
`
}

func (*demoCmd) SetFlags(f *flag.FlagSet) {}

func (*demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Error: demo takes no argument\n")
		return subcommands.ExitUsageError
	}
	cfg, log, ok := setup()
	if !ok {
		return subcommands.ExitFailure
	}

	s := newSession(cfg, log)
	s.Demo()
	printMarkdown(dashboard(cfg, s, "demo"))
	return subcommands.ExitSuccess
}
