package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/privates"
	"github.com/etnz/privates/date"
	"github.com/google/subcommands"
)

type addCmd struct {
	category string
	price    string
	due      string
	note     string
	rented   bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new item to the collection" }
func (*addCmd) Usage() string {
	return `add [-c <category>] [-p <price>] [-due <date>] [-n <note>] [-rented] <name>

  Adds a new item. The name is the remaining arguments joined together:
  - category: one of jailbreak, modded, vanilla, custom, other.
  - price: rental price, accepts ',' or '.' as decimal separator.
  - due: return date in YYYY-MM-DD form.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Item category")
	f.StringVar(&c.price, "p", "", "Rental price")
	f.StringVar(&c.due, "due", "", "Return due date (YYYY-MM-DD)")
	f.StringVar(&c.note, "n", "", "Free-form note")
	f.BoolVar(&c.rented, "rented", false, "Mark the item as rented out")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.Join(f.Args(), " ")
	if strings.TrimSpace(name) == "" {
		fmt.Fprintln(os.Stderr, "Error: a non-empty item name is required.")
		return subcommands.ExitUsageError
	}

	category, err := privates.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v, expected one of %v.\n", err, privates.Categories)
		return subcommands.ExitUsageError
	}

	var price privates.Amount
	if c.price != "" {
		var err error
		if price, err = privates.ParseAmount(c.price); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", c.price, err)
			return subcommands.ExitUsageError
		}
	}

	var due date.Date
	if c.due != "" {
		var err error
		if due, err = date.Parse(c.due); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing due date %q: %v\n", c.due, err)
			return subcommands.ExitUsageError
		}
	}

	tracker, s := openTracker()
	defer s.Close()

	item, err := tracker.AddItem(name, category, price, due, c.note, c.rented)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding item: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Added %q (%s).\n", item.Name, item.ID[:8])
	return subcommands.ExitSuccess
}
