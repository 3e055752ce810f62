// Package money provides fixed-point currency arithmetic for read-side
// totals and display formatting. Amounts are stored as integer cents; all
// arithmetic goes through decimal values with two fraction digits.
package money

import "github.com/shopspring/decimal"

// FromCents converts an integer cent amount into a two-decimal value.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Subtotal returns unit price times quantity.
func Subtotal(priceCents int64, quantity int) decimal.Decimal {
	return FromCents(priceCents).Mul(decimal.NewFromInt(int64(quantity)))
}

// Sum adds the given amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// String renders an amount as a fixed-point string with two decimals.
func String(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Format renders an amount with a currency prefix, e.g. "₹500.00".
func Format(prefix string, d decimal.Decimal) string {
	return prefix + d.StringFixed(2)
}
