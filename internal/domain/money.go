package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Commission computes amount * rate / 100 rounded to 2 fraction digits.
// All currency math stays in decimal; float64 is never used for money.
func Commission(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(hundred).Round(2)
}

// FeeFor computes the fee portion of a payout amount at the given percentage.
func FeeFor(amount, feePct decimal.Decimal) decimal.Decimal {
	return amount.Mul(feePct).Div(hundred).Round(2)
}
