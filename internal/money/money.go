// Package money holds the monetary arithmetic rules shared by every balance
// operation: exact decimals, half-up rounding on debits and a strict three-way
// comparison for the sufficiency check.
package money

import "github.com/shopspring/decimal"

// Three-way comparison results, used uniformly by the sufficiency check.
const (
	Less    = -1
	Equal   = 0
	Greater = 1
)

// Scale is the number of decimal places every debited balance is rounded to.
const Scale = 2

// Compare returns Less, Equal or Greater for a against b.
func Compare(a, b decimal.Decimal) int {
	return a.Cmp(b)
}

// IsSufficient reports whether balance covers amount.
// Exact zero remaining is sufficient.
func IsSufficient(balance, amount decimal.Decimal) bool {
	return Compare(balance.Sub(amount), decimal.Zero) != Less
}

// Debit subtracts amount from balance and rounds the result half-up to two
// decimal places. Rounding happens on every debit, not once at the end.
func Debit(balance, amount decimal.Decimal) decimal.Decimal {
	return balance.Sub(amount).Round(Scale)
}

// Credit adds amount to balance. Credits do not round.
func Credit(balance, amount decimal.Decimal) decimal.Decimal {
	return balance.Add(amount)
}
