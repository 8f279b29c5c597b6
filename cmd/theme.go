package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "get or set the rendering theme" }
func (*themeCmd) Usage() string {
	return `theme [dark|light]

  Without argument prints the current theme. With an argument persists it;
  all markdown output is rendered with the selected theme.
`
}

func (c *themeCmd) SetFlags(f *flag.FlagSet) {}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, s := openTracker()
	defer s.Close()

	switch f.NArg() {
	case 0:
		fmt.Println(tracker.Theme())
	case 1:
		if err := tracker.SetTheme(f.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		fmt.Printf("✅ Theme set to %s.\n", f.Arg(0))
	default:
		fmt.Fprintln(os.Stderr, "Error: at most one theme is expected.")
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
