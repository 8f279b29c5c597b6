package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type earnCmd struct {
	reason string
}

func (*earnCmd) Name() string     { return "earn" }
func (*earnCmd) Synopsis() string { return "apply a signed adjustment to the earnings total" }
func (*earnCmd) Usage() string {
	return `earn [-m <reason>] <delta>

  Applies a signed adjustment to the running earnings total and records it in
  the history: 'earn +300', 'earn -- -50 -m "refund"'. The delta accepts ','
  or '.' as decimal separator. Malformed input leaves the total untouched.
`
}

func (c *earnCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.reason, "m", "", "Optional reason recorded with the entry")
}

func (c *earnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one delta is required.")
		return subcommands.ExitUsageError
	}

	tracker, s := openTracker()
	defer s.Close()

	entry, ok := tracker.ApplyDelta(f.Arg(0), c.reason)
	if !ok {
		// Malformed deltas are dropped without touching the total.
		fmt.Fprintf(os.Stderr, "Ignored %q: not a signed amount.\n", f.Arg(0))
		return subcommands.ExitSuccess
	}

	fmt.Printf("✅ %s recorded, total is now %s.\n", entry.Delta.SignedString(), tracker.EarningsTotal())
	return subcommands.ExitSuccess
}
