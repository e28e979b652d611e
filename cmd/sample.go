package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/analyzer"
	"github.com/google/subcommands"
)

type sampleCmd struct {
	output string
}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "write the sample portfolio as JSON" }
func (*sampleCmd) Usage() string {
	return `pfa sample [-o <file>]

  Writes the sample portfolio as a JSON document, a starting point for the
  -in flag of the other commands.
`
}

func (c *sampleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "-", "Output file, '-' for the standard output")
}

func (c *sampleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "-" {
		if err := analyzer.EncodePortfolio(os.Stdout, analyzer.SampleData()); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing sample: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := analyzer.EncodePortfolio(out, analyzer.SampleData()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing sample: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
