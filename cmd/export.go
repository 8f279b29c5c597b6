package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/privates"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a full JSON backup" }
func (*exportCmd) Usage() string {
	return `export [-o <file>]

  Writes the whole state (items, earnings total, earnings history) as a JSON
  payload that 'import' restores. Use '-o -' for stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", privates.BackupFilename, "Output file, '-' for stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, s := openTracker()
	defer s.Close()

	if c.output == "-" {
		if err := privates.ExportJSON(os.Stdout, tracker); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting backup: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	file, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := privates.ExportJSON(file, tracker); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting backup: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Backup written to %s.\n", c.output)
	return subcommands.ExitSuccess
}
