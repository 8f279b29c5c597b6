package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/privates/date"
	"github.com/google/subcommands"
)

type toggleCmd struct{}

func (*toggleCmd) Name() string     { return "toggle" }
func (*toggleCmd) Synopsis() string { return "flip the rented state of an item" }
func (*toggleCmd) Usage() string {
	return `toggle <id>

  Flips the rented/free state of the item. The id may be the 8-character
  prefix shown by 'list'.
`
}

func (c *toggleCmd) SetFlags(f *flag.FlagSet) {}

func (c *toggleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item id is required.")
		return subcommands.ExitUsageError
	}

	tracker, s := openTracker()
	defer s.Close()

	item, ok := tracker.Resolve(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no item matches id %q.\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	tracker.ToggleRented(item.ID)

	item, _ = tracker.Find(item.ID)
	fmt.Printf("✅ %q is now %s.\n", item.Name, item.StatusLabel(date.Today()))
	return subcommands.ExitSuccess
}
