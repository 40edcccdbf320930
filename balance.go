package wallet

import "github.com/shopspring/decimal"

// Balance is the income, expenses and net result of a set of records.
type Balance struct {
	Income   float64
	Expenses float64
	Net      float64
}

// computeBalance sums Income and Expense records. Other categories are ignored.
//
// Amounts are accumulated as decimals so that, for instance, 0.1 and 0.2
// of income add up to exactly 0.3.
func computeBalance(records []Record) Balance {
	income, expenses := decimal.Zero, decimal.Zero
	for _, r := range records {
		switch r.Category {
		case Income:
			income = income.Add(decimal.NewFromFloat(r.Amount))
		case Expense:
			expenses = expenses.Add(decimal.NewFromFloat(r.Amount))
		}
	}
	return Balance{
		Income:   income.InexactFloat64(),
		Expenses: expenses.InexactFloat64(),
		Net:      income.Sub(expenses).InexactFloat64(),
	}
}
