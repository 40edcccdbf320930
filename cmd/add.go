package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/date"
	"github.com/google/subcommands"
)

type addCmd struct {
	date     string
	category string
	amount   string
	comment  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a record and save the file" }
func (*addCmd) Usage() string {
	return `wlt add [-d <date>] -c <category> -a <amount> [-m <comment>]

  Adds a record to the record file. The file is saved sorted by date.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Record date (YYYY-MM-DD)")
	f.StringVar(&c.category, "c", "", "Record category, e.g. "+wallet.Income+" or "+wallet.Expense)
	f.StringVar(&c.amount, "a", "", "Record amount")
	f.StringVar(&c.comment, "m", "", "An optional comment")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := wallet.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	w, err := openWallet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	w.Add(wallet.NewRecord(day, c.category, amount, c.comment))
	if err := w.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "Successfully added record to %s\n", cfg.File)
	return subcommands.ExitSuccess
}
