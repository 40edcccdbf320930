package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/wallet/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("wlt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	cmd.Setup()

	args := flag.Args()
	if len(args) == 0 {
		// no subcommand: start the interactive menu.
		args = []string{"shell"}
		if err := flag.CommandLine.Parse(append(os.Args[1:], args...)); err != nil {
			os.Exit(int(subcommands.ExitUsageError))
		}
	}

	if !isBuiltin(commander, args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// isBuiltin reports whether name is a registered subcommand.
func isBuiltin(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
