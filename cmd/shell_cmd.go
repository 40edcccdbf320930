package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/wallet"
	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage records with an interactive menu (default)" }
func (*shellCmd) Usage() string {
	return `wlt shell

  Asks for a record file, then displays a menu to show the balance, add,
  change and find records, save and load the file. Started when wlt is run
  without subcommand.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := runShell(stdin, stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runShell asks for the record file, opens it and runs the menu loop.
// An empty answer selects the configured record file.
func runShell(in io.Reader, out io.Writer) error {
	p := newPrompter(in, out)
	path, err := p.ask("Input file path: ")
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	if path == "" {
		path = cfg.File
	}

	w, err := wallet.Open(path)
	if err != nil {
		return err
	}
	s := &Shell{wallet: w, p: p}
	return s.Run()
}
