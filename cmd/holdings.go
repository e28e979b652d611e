package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/analyzer/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	source sourceFlags
	view   viewFlags
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the holdings table, searched and sorted" }
func (*holdingsCmd) Usage() string {
	return `pfa holdings [-in <doc.json> [-path <jsonpath>] | -csv <file>] [-q <query>] [-sort <column>] [-desc]

  Displays the holdings of a portfolio. The search matches symbols, companies
  and sectors ignoring case; the sort column shows an arrow in its title.

Usage Examples:
$ pfa holdings -q tech -sort gain_loss -desc
$ pfa holdings -in broker.json -path '$.data.portfolio'
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	c.source.SetFlags(f)
	c.view.SetFlags(f)
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, ok := setup()
	if !ok {
		return subcommands.ExitFailure
	}

	p, err := c.source.load(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	s := newSession(cfg, log)
	if err := s.LoadPortfolio(p, c.source.origin()); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := c.view.apply(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.HoldingsMarkdown(sessionTable(s)))
	return subcommands.ExitSuccess
}
