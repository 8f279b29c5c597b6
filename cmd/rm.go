package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "permanently delete an item" }
func (*rmCmd) Usage() string {
	return `rm [-y] <id>

  Permanently deletes the item. There is no undo; asks for confirmation
  unless -y is given.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Delete without asking for confirmation")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if !c.yes && !confirm(fmt.Sprintf("Delete %q forever?", item.Name)) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	tracker.RemoveItem(item.ID)
	fmt.Printf("✅ Deleted %q.\n", item.Name)
	return subcommands.ExitSuccess
}
