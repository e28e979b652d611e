package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/analyzer/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show the user manual" }
func (*topicCmd) Usage() string {
	return `pfa topic [<topic>...]

  Shows the user manual pages of the given topics. Without a topic, lists
  the available ones. The topic '*' shows them all.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var doc string
	var err error
	if f.NArg() == 0 {
		doc, err = topicIndex()
	} else {
		doc, err = docs.GetTopics(f.Args()...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading the manual: %v\n", err)
		if index, err := topicIndex(); err == nil {
			fmt.Fprint(os.Stderr, index)
		}
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// topicIndex lists the manual topics with the title of their page.
func topicIndex() (string, error) {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("# Topics\n\nRun `pfa topic <topic>` to read one, `pfa topic '*'` to read them all.\n\n")
	for _, topic := range topics {
		content, err := docs.GetTopic(topic)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "* %s: %s\n", topic, pageTitle(content))
	}
	return b.String(), nil
}

// pageTitle returns the first level one heading of a markdown page.
func pageTitle(content string) string {
	for line := range strings.Lines(content) {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return ""
}
