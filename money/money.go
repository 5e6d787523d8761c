// Package money holds the currency precision rules shared by the market and
// the ledger. Amounts are shopspring decimals; nothing here uses float64 for
// money.
package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CashDecimals is the number of decimal places kept for cash amounts.
const CashDecimals int32 = 2

// DefaultCurrency is used for display when no currency is configured.
const DefaultCurrency = "EUR"

// Cash rounds d to currency precision, half away from zero.
func Cash(d decimal.Decimal) decimal.Decimal {
	return d.Round(CashDecimals)
}

// FromFloat converts a configuration or literal value to a decimal.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// Plain renders d with exactly two decimals and no currency symbol.
func Plain(d decimal.Decimal) string {
	return d.StringFixed(CashDecimals)
}

// Format renders d in the given ISO currency using its grapheme, separators
// and fraction digits. Unknown codes render with go-money's generic format.
func Format(d decimal.Decimal, code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	// money.New never returns a nil currency, GetCurrency can.
	cur := *money.New(0, code).Currency()
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
