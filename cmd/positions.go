package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/positions/renderer"
	"github.com/google/subcommands"
)

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct {
	date   string
	output string
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display the positions held, using FIFO lots" }
func (*positionsCmd) Usage() string {
	return `fifo positions [-d <date>] [-o <output>]

  Displays, for every broker, account, ticker, currency and asset class, the
  quantity held and its average unit cost.

  Rows are applied in the order of the trade history, which must be
  chronological. BUY and DRIP open lots, SELL consumes the oldest lots first,
  SPLIT rescales every open lot. Other actions are ignored.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Compute positions as of this date (YYYY-MM-DD). Defaults to the whole history.")
	f.StringVar(&c.output, "o", "term", "Output format: "+strings.Join(outputs, ", "))
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !validOutput(c.output) {
		fmt.Fprintf(os.Stderr, "Error: unknown output %q\n", c.output)
		return subcommands.ExitUsageError
	}
	on, err := parseAsOf(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook(on)
	if err != nil {
		return exitStatus("computing positions", err)
	}
	book.Prune()
	list, err := book.Positions()
	if err != nil {
		return exitStatus("resolving positions", err)
	}

	report := renderer.NewPositions(on, list)
	switch c.output {
	case "json":
		err = renderer.WriteJSON(stdout, report)
	case "csv":
		err = renderer.WriteCSV(stdout, list)
	default:
		err = printMarkdown(c.output, renderer.RenderPositions(report))
	}
	if err != nil {
		return exitStatus("writing positions", err)
	}
	return subcommands.ExitSuccess
}
