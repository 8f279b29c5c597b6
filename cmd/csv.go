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

type csvCmd struct {
	output string
}

func (*csvCmd) Name() string     { return "csv" }
func (*csvCmd) Synopsis() string { return "write a CSV export of the items" }
func (*csvCmd) Usage() string {
	return `csv [-o <file>]

  Writes the item list as CSV (UTF-8 with BOM) for spreadsheet software. The
  default filename is stamped with today's date. Use '-o -' for stdout.
`
}

func (c *csvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, '-' for stdout (default privates-<today>.csv)")
}

func (c *csvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, s := openTracker()
	defer s.Close()

	today := date.Today()
	output := c.output
	if output == "" {
		output = privates.CSVFilename(today)
	}

	if output == "-" {
		if err := privates.ExportCSV(os.Stdout, tracker, today); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting CSV: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	file, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := privates.ExportCSV(file, tracker, today); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting CSV: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ CSV written to %s.\n", output)
	return subcommands.ExitSuccess
}
