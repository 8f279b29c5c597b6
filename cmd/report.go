package cmd

import (
	"context"
	"flag"

	"github.com/etnz/privates"
	"github.com/etnz/privates/date"
	"github.com/etnz/privates/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the analytics report" }
func (*reportCmd) Usage() string {
	return `report

  Displays the aggregate numbers (items added today, current month earnings,
  average price, overdue count) and a 7-day earnings chart.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, s := openTracker()
	defer s.Close()

	today := date.Today()
	v := privates.DeriveView(tracker, privates.Query{Status: privates.FilterAll}, today)
	printMarkdown(tracker.Theme(), renderer.ReportMarkdown(v, today))
	return subcommands.ExitSuccess
}
