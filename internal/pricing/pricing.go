// Package pricing computes order totals with exact decimal arithmetic.
package pricing

import "github.com/shopspring/decimal"

// Line is one order line as accepted at intake time. UnitPrice is the
// client-supplied snapshot of what the customer is charged: it is persisted
// verbatim and never re-read from the catalog, so a later menu price change
// cannot rewrite an existing order.
type Line struct {
	MenuItemID string
	Quantity   int
	UnitPrice  decimal.Decimal
}

// Subtotal returns the exact decimal product of unit price and quantity.
func Subtotal(l Line) decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Total sums every line subtotal with exact decimal addition.
func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(Subtotal(l))
	}
	return total
}
