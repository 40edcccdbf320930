package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/date"
)

// prompter asks questions on a line oriented terminal.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

// ask prints label and returns the next input line, trimmed.
// It returns io.EOF when the input is exhausted.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// handler runs one menu entry against the wallet.
type handler func(p *prompter, w *wallet.Wallet) error

type menuItem struct {
	choice int
	label  string
	run    handler
}

// menu lists the entries of the interactive menu, in display order. Choice 0 exits.
var menu = []menuItem{
	{1, "Balance", showBalance},
	{2, "Add record", addRecord},
	{3, "Change record", changeRecord},
	{4, "Find record", findRecords},
	{5, "Save data", saveData},
	{6, "Load data", loadData},
}

// Shell is the interactive menu loop over a single wallet.
type Shell struct {
	wallet *wallet.Wallet
	p      *prompter
}

// NewShell returns a Shell reading answers from in and writing to out.
func NewShell(w *wallet.Wallet, in io.Reader, out io.Writer) *Shell {
	return &Shell{wallet: w, p: newPrompter(in, out)}
}

// Run displays the menu and dispatches choices until 0 is chosen or the
// input is exhausted. Any handler error stops the loop and is returned.
func (s *Shell) Run() error {
	for {
		choice, err := s.choose()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}

		item, ok := lookup(choice)
		if !ok {
			s.p.printf("Invalid choice\n")
			continue
		}
		if err := item.run(s.p, s.wallet); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return fmt.Errorf("%s: %w", strings.ToLower(item.label), err)
		}
	}
}

// choose prints the menu and reads the user's choice.
func (s *Shell) choose() (int, error) {
	s.p.printf("\n")
	for _, item := range menu {
		s.p.printf("%d. %s\n", item.choice, item.label)
	}
	s.p.printf("0. Exit\n")

	answer, err := s.p.ask("Your choice: ")
	if err != nil {
		return 0, err
	}
	choice, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("invalid choice %q: %w", answer, err)
	}
	return choice, nil
}

func lookup(choice int) (menuItem, bool) {
	for _, item := range menu {
		if item.choice == choice {
			return item, true
		}
	}
	return menuItem{}, false
}

func showBalance(p *prompter, w *wallet.Wallet) error {
	b := w.Balance()
	p.printf("Income: %s\nExpenses: %s\nBalance: %s\n",
		wallet.FormatAmount(b.Income), wallet.FormatAmount(b.Expenses), wallet.FormatAmount(b.Net))
	return nil
}

func addRecord(p *prompter, w *wallet.Wallet) error {
	r, err := askRecord(p)
	if err != nil {
		return err
	}
	w.Add(r)
	p.printf("Record added successfully\n")
	return nil
}

// changeRecord replaces the record with the same date, category and amount
// as the one entered.
func changeRecord(p *prompter, w *wallet.Wallet) error {
	r, err := askRecord(p)
	if err != nil {
		return err
	}
	if err := w.Change(r); err != nil {
		return err
	}
	p.printf("Record changed successfully\n")
	return nil
}

func findRecords(p *prompter, w *wallet.Wallet) error {
	f, err := askFilter(p)
	if err != nil {
		return err
	}
	found := w.Find(f)
	p.printf("Found %d records:\n", len(found))
	for _, r := range found {
		p.printf("%s %s %s %s\n", r.Date, r.Category, wallet.FormatAmount(r.Amount), r.Comment)
	}
	return nil
}

func saveData(p *prompter, w *wallet.Wallet) error {
	if err := w.Save(); err != nil {
		return err
	}
	p.printf("Data saved successfully\n")
	return nil
}

func loadData(p *prompter, w *wallet.Wallet) error {
	if err := w.Load(); err != nil {
		return err
	}
	p.printf("Data loaded successfully\n")
	return nil
}

// askRecord reads the four fields of a record.
func askRecord(p *prompter) (wallet.Record, error) {
	answer, err := p.ask("Date (YYYY-MM-DD): ")
	if err != nil {
		return wallet.Record{}, err
	}
	day, err := date.Parse(answer)
	if err != nil {
		return wallet.Record{}, err
	}
	category, err := p.ask("Category: ")
	if err != nil {
		return wallet.Record{}, err
	}
	answer, err = p.ask("Amount: ")
	if err != nil {
		return wallet.Record{}, err
	}
	amount, err := wallet.ParseAmount(answer)
	if err != nil {
		return wallet.Record{}, err
	}
	comment, err := p.ask("Comment: ")
	if err != nil {
		return wallet.Record{}, err
	}
	return wallet.NewRecord(day, category, amount, comment), nil
}

// askFilter reads the search filters. An empty answer leaves the filter unset.
func askFilter(p *prompter) (f wallet.Filter, err error) {
	answer, err := p.ask("Date (YYYY-MM-DD): ")
	if err != nil {
		return f, err
	}
	if answer != "" {
		day, err := date.Parse(answer)
		if err != nil {
			return f, err
		}
		f = f.ByDate(day)
	}
	answer, err = p.ask("Category: ")
	if err != nil {
		return f, err
	}
	if answer != "" {
		f = f.ByCategory(answer)
	}
	answer, err = p.ask("Amount: ")
	if err != nil {
		return f, err
	}
	if answer != "" {
		amount, err := wallet.ParseAmount(answer)
		if err != nil {
			return f, err
		}
		f = f.ByAmount(amount)
	}
	return f, nil
}
