// Command fifo computes the positions held in a portfolio from its trade history.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/positions/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
// Install it with COMP_INSTALL=1 fifo.
func completion() *complete.Command {
	global := map[string]complete.Predictor{
		"trades-file":   predict.Files("*"),
		"trades-format": predict.Set{"csv", "json"},
		"header":        predict.Nothing,
		"rows-path":     predict.Something,
	}
	report := func(outputs ...string) *complete.Command {
		return &complete.Command{Flags: map[string]complete.Predictor{
			"d": predict.Something,
			"o": predict.Set(outputs),
		}}
	}
	lots := report("term", "markdown", "html", "json")
	lots.Flags["all"] = predict.Nothing
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"positions": report("term", "markdown", "html", "json", "csv"),
			"lots":      lots,
			"help":      {},
			"flags":     {},
			"commands":  {},
		},
		Flags: global,
	}
}
