package renderer

import (
	"testing"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/date"
)

func TestMoney(t *testing.T) {
	testCases := []struct {
		amount   float64
		currency string
		want     string
	}{
		{amount: 100, currency: "USD", want: "$100.00"},
		{amount: 1234.5, currency: "USD", want: "$1,234.50"},
		{amount: -50, currency: "USD", want: "-$50.00"},
		{amount: 0.125, currency: "USD", want: "$0.13"},
		{amount: 0, currency: "USD", want: "$0.00"},
	}
	for _, tc := range testCases {
		if got := Money(tc.amount, tc.currency); got != tc.want {
			t.Errorf("Money(%v, %q) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

func TestRecords(t *testing.T) {
	records := []wallet.Record{
		wallet.NewRecord(date.MustParse("2024-01-01"), wallet.Income, 100, "salary"),
		wallet.NewRecord(date.MustParse("2024-01-02"), wallet.Expense, 40, "a|b"),
	}
	got := Records("Found", records, "USD")
	want := `# Found

| Date | Category | Amount | Comment |
|:-----|:---------|-------:|:--------|
| 2024-01-01 | Доход | $100.00 | salary |
| 2024-01-02 | Расход | $40.00 | a\|b |

2 records.
`
	if got != want {
		t.Errorf("Records() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestRecordsEmpty(t *testing.T) {
	got := Records("Found", nil, "USD")
	want := "# Found\n\nNo records.\n"
	if got != want {
		t.Errorf("Records() produced incorrect output.\nGot:\n%q\nWant:\n%q", got, want)
	}
}

func TestBalance(t *testing.T) {
	got := Balance(wallet.Balance{Income: 100, Expenses: 40, Net: 60}, "USD")
	want := `# Balance

|             |   Amount |
|:------------|---------:|
| Income      | $100.00 |
| Expenses    | $40.00 |
| **Balance** | **$60.00** |
`
	if got != want {
		t.Errorf("Balance() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}
