package wallet

import "github.com/etnz/wallet/date"

// Filter selects records. A nil field matches every record; set fields are
// combined with a logical AND and compared for exact equality.
type Filter struct {
	Category *string
	Date     *date.Date
	Amount   *float64
}

// ByCategory returns a copy of f that also requires the given category.
func (f Filter) ByCategory(category string) Filter {
	f.Category = &category
	return f
}

// ByDate returns a copy of f that also requires the given date.
func (f Filter) ByDate(day date.Date) Filter {
	f.Date = &day
	return f
}

// ByAmount returns a copy of f that also requires the given amount.
func (f Filter) ByAmount(amount float64) Filter {
	f.Amount = &amount
	return f
}

// Match reports whether r satisfies every field set in f.
func (f Filter) Match(r Record) bool {
	if f.Category != nil && r.Category != *f.Category {
		return false
	}
	if f.Date != nil && r.Date != *f.Date {
		return false
	}
	if f.Amount != nil && r.Amount != *f.Amount {
		return false
	}
	return true
}
