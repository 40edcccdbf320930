// Package cmd implements the wlt command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/wallet"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// Commands lists the subcommands of wlt.
var Commands = []subcommands.Command{
	&shellCmd{},
	&balanceCmd{},
	&addCmd{},
	&findCmd{},
	&fmtCmd{},
	&exportCmd{},
	&queryCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	recordFile = flag.String("f", "", "Path to the record file (default $"+EnvFile+" or "+DefaultFile+")")
	currency   = flag.String("currency", "", "Currency used to display amounts in reports (default $"+EnvCurrency+" or "+DefaultCurrency+")")
	Verbose    = flag.Bool("v", false, "Print diagnostics on stderr")
)

// cfg is the configuration resolved by Setup.
var cfg = Config{File: DefaultFile, Currency: DefaultCurrency}

// stdin and stdout are the process standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// Setup resolves the configuration and configures logging. It must be called
// after the command line flags have been parsed.
func Setup() {
	cfg = LoadConfig()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.Debugf("using record file %q, currency %q", cfg.File, cfg.Currency)
}

// openWallet opens the configured record file, creating it if needed.
func openWallet() (*wallet.Wallet, error) {
	w, err := wallet.Open(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("could not open wallet %q: %w", cfg.File, err)
	}
	return w, nil
}

// printMarkdown renders markdown for the terminal, or prints it as is when
// stdout is not a terminal.
func printMarkdown(md string) {
	f, ok := stdout.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Debugf("could not render markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
