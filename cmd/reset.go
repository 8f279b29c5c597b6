package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct {
	earnings bool
	all      bool
	yes      bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "erase the earnings ledger or everything" }
func (*resetCmd) Usage() string {
	return `reset -earnings | -all [-y]

  -earnings zeroes the earnings total and clears the history.
  -all additionally deletes every item. There is no undo; asks for
  confirmation unless -y is given.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.earnings, "earnings", false, "Reset the earnings total and history")
	f.BoolVar(&c.all, "all", false, "Reset items, earnings total and history")
	f.BoolVar(&c.yes, "y", false, "Reset without asking for confirmation")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.earnings == c.all {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -earnings or -all is required.")
		return subcommands.ExitUsageError
	}

	prompt := "Reset the earnings total and history?"
	if c.all {
		prompt = "Delete ALL items and earnings?"
	}
	if !c.yes && !confirm(prompt) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	tracker, s := openTracker()
	defer s.Close()

	if c.all {
		tracker.ResetAll()
		fmt.Println("✅ All data erased.")
	} else {
		tracker.ResetEarnings()
		fmt.Println("✅ Earnings erased.")
	}
	return subcommands.ExitSuccess
}
