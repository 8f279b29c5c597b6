package cmd

import (
	"context"
	"flag"

	"github.com/etnz/privates/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the earnings history" }
func (*historyCmd) Usage() string {
	return `history

  Displays the earnings adjustments, newest first, and the running total.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, s := openTracker()
	defer s.Close()

	printMarkdown(tracker.Theme(), renderer.HistoryMarkdown(tracker.History(), tracker.EarningsTotal()))
	return subcommands.ExitSuccess
}
