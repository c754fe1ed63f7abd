// Package cmd implements the CLI application to compute positions from a trade history.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/positions"
	"github.com/etnz/positions/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&positionsCmd{}, "reports")
	c.Register(&lotsCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var tradesFile = flag.String("trades-file", "trades.csv", "Path to the trade history, a csv or json file, '-' for stdin")
var tradesFormat = flag.String("trades-format", "", "Format of the trade history (csv, json). Defaults to the file extension, or csv.")
var skipHeader = flag.Bool("header", true, "The first csv row is a header")
var rowsPath = flag.String("rows-path", positions.DefaultRowsPath, "JSONPath of the rows in a json trade history")

// stdout is where the commands write their reports.
var stdout io.Writer = os.Stdout

// DecodeRows reads the rows of the app trade history, and the line number of the first one.
func DecodeRows() ([]positions.Row, int, error) {
	filename := *tradesFile
	var r io.Reader = os.Stdin
	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, 0, fmt.Errorf("cannot open trade history: %w", err)
		}
		defer f.Close()
		r = f
	}

	format := *tradesFormat
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	}
	switch format {
	case "json":
		rows, err := positions.DecodeJSON(r, *rowsPath)
		return rows, 1, err
	case "csv", "":
		return positions.DecodeCSV(r, *skipHeader)
	default:
		log.Printf("warning, unknown trade history format %q, reading it as csv", format)
		return positions.DecodeCSV(r, *skipHeader)
	}
}

// DecodeBook reads the app trade history and applies it up to the given date (zero for all).
func DecodeBook(asOf date.Date) (*positions.Book, error) {
	rows, first, err := DecodeRows()
	if err != nil {
		return nil, err
	}
	entries, err := positions.Entries(rows, first)
	if err != nil {
		return nil, err
	}
	if n := ignored(entries); n > 0 {
		log.Printf("%d rows with no effect on positions were ignored", n)
	}
	return positions.Fold(entries, positions.Options{AsOf: asOf})
}

// ignored counts entries with an action that has no effect on lots.
func ignored(entries []positions.Entry) (n int) {
	for _, e := range entries {
		if _, ok := e.Record.(positions.Other); ok {
			n++
		}
	}
	return n
}

// parseAsOf parses the value of a date flag, empty meaning the whole history.
func parseAsOf(s string) (date.Date, error) {
	if s == "" {
		return date.Date{}, nil
	}
	return date.Parse(s)
}

// exitStatus reports err on stderr and returns the matching exit status.
func exitStatus(what string, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	var oversell *positions.OversellError
	if errors.As(err, &oversell) {
		fmt.Fprintln(os.Stderr, "Check that the trade history is in chronological order and complete.")
	}
	return subcommands.ExitFailure
}
