package ledger

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount renders amount in the display format of the currency code,
// e.g. "$1,234.50" for USD. Unknown codes fall back to two fraction digits.
func FormatAmount(amount decimal.Decimal, currency string) string {
	// money.New never returns a nil currency, unlike money.GetCurrency.
	cur := money.New(0, currency).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
