package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/etnz/wallet/date"
)

// Category labels taken into account by Balance.
//
// Records with any other category are kept and searchable, but they count
// neither as income nor as expenses.
const (
	Income  = "Доход"
	Expense = "Расход"
)

// ErrNonFiniteAmount is returned when encoding a record whose amount is NaN or infinite.
var ErrNonFiniteAmount = errors.New("amount is not a finite number")

// Record is a single ledger entry.
type Record struct {
	Date     date.Date
	Category string
	Amount   float64
	Comment  string
}

// NewRecord creates a new Record.
func NewRecord(day date.Date, category string, amount float64, comment string) Record {
	return Record{Date: day, Category: category, Amount: amount, Comment: comment}
}

// sameKey reports whether r and x share the same (date, category, amount) triple.
// The comment is not part of the key.
func (r Record) sameKey(x Record) bool {
	return r.Date == x.Date && r.Category == x.Category && r.Amount == x.Amount
}

// MarshalJSON encodes r as {"date","category","amount","comment"}, in that order.
// The comment is omitted when empty. NaN and infinite amounts have no JSON
// representation and fail with ErrNonFiniteAmount.
func (r Record) MarshalJSON() ([]byte, error) {
	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) {
		return nil, fmt.Errorf("record on %v in %q: %w", r.Date, r.Category, ErrNonFiniteAmount)
	}
	var w jsonObjectWriter
	w.Append("date", r.Date)
	w.Append("category", r.Category)
	w.Append("amount", json.Number(FormatAmount(r.Amount)))
	w.Optional("comment", r.Comment)
	return w.MarshalJSON()
}
