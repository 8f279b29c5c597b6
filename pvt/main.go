package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/privates/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion for subcommand names and global flags.
// It exits the process when invoked by the shell completion hook.
func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	sub["import"] = &complete.Command{Args: predict.Files("*.json")}
	sub["theme"] = &complete.Command{Args: predict.Set{"dark", "light"}}

	app := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data":     predict.Files("*"),
			"currency": predict.Set{"RUB", "USD", "EUR"},
		},
	}
	app.Complete("pvt")
}
