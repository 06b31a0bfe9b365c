package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimal places shown for cash amounts.
const MoneyPrecision = 2

// FormatMoney renders an amount the way receipts and notifications show it.
// Example: 1150 returns "$1150.00", -45.5 returns "-$45.50".
func FormatMoney(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Abs().StringFixed(MoneyPrecision)
	}
	return "$" + amount.StringFixed(MoneyPrecision)
}

