package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/positions/renderer"
	"github.com/google/subcommands"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	date   string
	output string
	all    bool
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "display the open lots of every position" }
func (*lotsCmd) Usage() string {
	return `fifo lots [-d <date>] [-o <output>] [-all]

  Displays the queue of open lots behind every position, oldest first: the
  lot the next sale will consume comes first.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Show lots as of this date (YYYY-MM-DD). Defaults to the whole history.")
	f.StringVar(&c.output, "o", "term", "Output format: term, markdown, html, json")
	f.BoolVar(&c.all, "all", false, "Also list positions that have been sold out")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !validOutput(c.output) || c.output == "csv" {
		fmt.Fprintf(os.Stderr, "Error: unsupported output %q\n", c.output)
		return subcommands.ExitUsageError
	}
	on, err := parseAsOf(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook(on)
	if err != nil {
		return exitStatus("computing lots", err)
	}
	if !c.all {
		book.Prune()
	}

	report := renderer.NewLots(on, book)
	if c.output == "json" {
		err = renderer.WriteJSON(stdout, report)
	} else {
		err = printMarkdown(c.output, renderer.RenderLots(report))
	}
	if err != nil {
		return exitStatus("writing lots", err)
	}
	return subcommands.ExitSuccess
}
