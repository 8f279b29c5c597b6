// Package cmd implements the CLI application to manage the tracker.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/privates"
	"github.com/etnz/privates/store"
	"github.com/google/subcommands"
)

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataFile = flag.String("data", defaultDataFile(), "Path to the local data file")
var currency = flag.String("currency", "RUB", "Currency code used to display amounts")

// Commands lists every subcommand a main should register.
var Commands = []subcommands.Command{
	&addCmd{},
	&updateCmd{},
	&toggleCmd{},
	&rmCmd{},
	&listCmd{},
	&earnCmd{},
	&historyCmd{},
	&reportCmd{},
	&noticesCmd{},
	&exportCmd{},
	&importCmd{},
	&csvCmd{},
	&resetCmd{},
	&themeCmd{},
	&topicCmd{},
}

func defaultDataFile() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".privates", "privates.db")
	}
	return "privates.db"
}

// openTracker opens the local store and loads the tracker state. The store
// never fails; worst case the state lives only for this run.
func openTracker() (*privates.Tracker, *store.Store) {
	privates.SetCurrency(*currency)
	// Ignore the error: store.Open degrades to memory when the path is unusable.
	os.MkdirAll(filepath.Dir(*dataFile), 0755)
	s := store.Open(*dataFile)
	return privates.Open(s), s
}

// printMarkdown renders markdown to the terminal using the persisted theme.
// On any rendering trouble the raw markdown is printed instead.
func printMarkdown(theme, content string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(content)
		return
	}
	out, err := r.Render(content)
	if err != nil {
		fmt.Println(content)
		return
	}
	fmt.Print(out)
}

// confirm asks an interactive yes/no question and reads the answer from
// stdin. Anything but an explicit yes declines.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "д", "да":
		return true
	}
	return false
}
