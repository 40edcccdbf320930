package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/date"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

type findCmd struct {
	date     string
	category string
	amount   string
}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "list records matching a date, a category and an amount" }
func (*findCmd) Usage() string {
	return `wlt find [-d <date>] [-c <category>] [-a <amount>]

  Lists the records matching all the given filters, in file order. Without
  filters, all records are listed.
`
}

func (c *findCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Only records on this date (YYYY-MM-DD)")
	f.StringVar(&c.category, "c", "", "Only records in this category")
	f.StringVar(&c.amount, "a", "", "Only records with this amount")
}

// filter builds the record filter from the flags.
func (c *findCmd) filter() (f wallet.Filter, err error) {
	if c.date != "" {
		day, err := date.Parse(c.date)
		if err != nil {
			return f, err
		}
		f = f.ByDate(day)
	}
	if c.category != "" {
		f = f.ByCategory(c.category)
	}
	if c.amount != "" {
		amount, err := wallet.ParseAmount(c.amount)
		if err != nil {
			return f, err
		}
		f = f.ByAmount(amount)
	}
	return f, nil
}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.filter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing filters: %v\n", err)
		return subcommands.ExitUsageError
	}
	w, err := openWallet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Records("Records", w.Find(filter), cfg.Currency))
	return subcommands.ExitSuccess
}
