package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/privates"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore state from a JSON backup" }
func (*importCmd) Usage() string {
	return `import <file>

  Restores items, earnings total and earnings history from a backup written
  by 'export'. Fields missing from the payload (or of the wrong type) keep
  their current value. Use '-' for stdin.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one backup file is required.")
		return subcommands.ExitUsageError
	}

	in := os.Stdin
	if f.Arg(0) != "-" {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	tracker, s := openTracker()
	defer s.Close()

	if err := privates.ImportJSON(in, tracker); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Imported: %d items, total %s, %d history entries.\n",
		len(tracker.Items()), tracker.EarningsTotal(), len(tracker.History()))
	return subcommands.ExitSuccess
}
