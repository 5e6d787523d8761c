package market

import "github.com/shopspring/decimal"

// PriceDecimals is the number of decimal places kept for instrument prices.
const PriceDecimals int32 = 4

// RoundPrice rounds p to price precision, half away from zero.
func RoundPrice(p decimal.Decimal) decimal.Decimal {
	return p.Round(PriceDecimals)
}

// FromFloat converts a literal price to a decimal at price precision.
func FromFloat(x float64) decimal.Decimal {
	return RoundPrice(decimal.NewFromFloat(x))
}
