// Package renderer renders wallet records and balances as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/etnz/wallet"
	"github.com/shopspring/decimal"
)

//go:embed *.md
var templates embed.FS

// recordsView is the data of the records.md template.
type recordsView struct {
	Title   string
	Records []wallet.Record
}

// Records renders records as a markdown table, with amounts in currency.
func Records(title string, records []wallet.Record, currency string) string {
	return renderTemplate("records.md", currency, recordsView{Title: title, Records: records})
}

// Balance renders the income, expenses and net of b as a markdown table.
func Balance(b wallet.Balance, currency string) string {
	return renderTemplate("balance.md", currency, b)
}

// Money formats amount in currency, rounded to the currency minor unit,
// e.g. "$1,234.50" for 1234.5 USD.
func Money(amount float64, currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// cell escapes text so that it fits in a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// renderTemplate renders the embedded template file with data.
// Errors are rendered in place of the report.
func renderTemplate(file, currency string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	funcs := template.FuncMap{
		"money": func(amount float64) string { return Money(amount, currency) },
		"cell":  cell,
	}
	tmpl, err := template.New(file).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", file, err)
	}
	return b.String()
}
