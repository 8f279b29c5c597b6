package cmd

import (
	"context"
	"flag"

	"github.com/etnz/privates"
	"github.com/etnz/privates/date"
	"github.com/etnz/privates/renderer"
	"github.com/google/subcommands"
)

type noticesCmd struct{}

func (*noticesCmd) Name() string     { return "notices" }
func (*noticesCmd) Synopsis() string { return "display current notifications" }
func (*noticesCmd) Usage() string {
	return `notices

  Displays overdue and due-soon reminders, plus a warning when the earnings
  total is negative.
`
}

func (c *noticesCmd) SetFlags(f *flag.FlagSet) {}

func (c *noticesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, s := openTracker()
	defer s.Close()

	notices := privates.DeriveNotices(tracker.Items(), tracker.EarningsTotal(), date.Today())
	printMarkdown(tracker.Theme(), renderer.NoticesMarkdown(notices))
	return subcommands.ExitSuccess
}
