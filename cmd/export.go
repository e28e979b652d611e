package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
	source sourceFlags
	view   viewFlags
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the displayed holdings as CSV" }
func (*exportCmd) Usage() string {
	return `pfa export [-o <file>] [-in <doc.json> | -csv <file>] [-q <query>] [-sort <column>] [-desc]

  Writes the holdings, as they would be displayed, to a CSV file.
  The default file name comes from the configuration (portfolio_analysis.csv).
  Use -o - to write to the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, '-' for the standard output")
	c.source.SetFlags(f)
	c.view.SetFlags(f)
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	output := c.output
	if output == "" {
		output = cfg.ExportFile
	}
	if output == "-" {
		if err := s.Export(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting holdings: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	n, err := exportFile(s, output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Successfully exported %d holdings to %s\n", n, output)
	return subcommands.ExitSuccess
}
