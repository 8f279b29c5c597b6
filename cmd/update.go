package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/privates"
	"github.com/etnz/privates/date"
	"github.com/google/subcommands"
)

type updateCmd struct {
	name     string
	category string
	price    string
	due      string
	note     string
	rented   bool
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update fields of an existing item" }
func (*updateCmd) Usage() string {
	return `update [-name <name>] [-c <category>] [-p <price>] [-due <date>] [-n <note>] [-rented=<bool>] <id>

  Updates only the fields whose flags are given, the others keep their value.
  The id may be the 8-character prefix shown by 'list'. Passing -due "" clears
  the due date.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New item name")
	f.StringVar(&c.category, "c", "", "New category")
	f.StringVar(&c.price, "p", "", "New rental price")
	f.StringVar(&c.due, "due", "", "New due date (YYYY-MM-DD), empty clears it")
	f.StringVar(&c.note, "n", "", "New note")
	f.BoolVar(&c.rented, "rented", false, "New rented state")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item id is required.")
		return subcommands.ExitUsageError
	}

	// Only flags explicitly set on the command line become part of the update.
	var u privates.ItemUpdate
	var badFlag error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			u.Name = &c.name
		case "c":
			category, err := privates.ParseCategory(c.category)
			if err != nil {
				badFlag = fmt.Errorf("%w, expected one of %v", err, privates.Categories)
				return
			}
			u.Category = &category
		case "p":
			price, err := privates.ParseAmount(c.price)
			if err != nil {
				badFlag = fmt.Errorf("parsing price %q: %w", c.price, err)
				return
			}
			u.Price = &price
		case "due":
			var due date.Date
			if c.due != "" {
				var err error
				if due, err = date.Parse(c.due); err != nil {
					badFlag = fmt.Errorf("parsing due date %q: %w", c.due, err)
					return
				}
			}
			u.DueDate = &due
		case "n":
			u.Note = &c.note
		case "rented":
			u.Rented = &c.rented
		}
	})
	if badFlag != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", badFlag)
		return subcommands.ExitUsageError
	}

	tracker, s := openTracker()
	defer s.Close()

	item, ok := tracker.Resolve(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no item matches id %q.\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	if !tracker.UpdateItem(item.ID, u) {
		fmt.Fprintf(os.Stderr, "Error: item %q disappeared.\n", item.ID)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Updated %s.\n", item.ID[:8])
	return subcommands.ExitSuccess
}
