package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/privates"
	"github.com/etnz/privates/date"
	"github.com/etnz/privates/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	filter   string
	category string
	search   string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the items of the collection" }
func (*listCmd) Usage() string {
	return `list [-f all|rented|free|overdue] [-c <category>] [-q <text>]

  Lists items, newest first. The -f status filter is remembered across runs;
  -c and -q apply to this run only.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filter, "f", "", "Status filter, persisted for the next runs")
	f.StringVar(&c.category, "c", "", "Category to filter on")
	f.StringVar(&c.search, "q", "", "Free-text search")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, s := openTracker()
	defer s.Close()

	status := tracker.StatusFilter()
	if c.filter != "" {
		var err error
		if status, err = privates.ParseStatusFilter(c.filter); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		tracker.SetStatusFilter(status)
	}

	category, err := privates.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v, expected one of %v.\n", err, privates.Categories)
		return subcommands.ExitUsageError
	}

	today := date.Today()
	v := privates.DeriveView(tracker, privates.Query{Status: status, Category: category, Search: c.search}, today)
	printMarkdown(tracker.Theme(), renderer.ListMarkdown(v.Items, v.Stats, today))
	return subcommands.ExitSuccess
}
