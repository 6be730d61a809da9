package quotation

import "fmt"

// Totals is the financial summary of a quotation. It is derived, never
// stored, and recomputing it is idempotent and side-effect-free.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	TaxableAmount  float64
	TaxAmount      float64
	GrandTotal     float64
}

// Compute maps an item list plus discount/tax rates to a Totals.
// Malformed numeric input has already degraded to zero inside Number, so
// this function has no failure mode.
func Compute(items []LineItem, discountPercent, taxPercent float64) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += it.Total()
	}
	if discountPercent > 0 {
		t.DiscountAmount = t.Subtotal * discountPercent / 100
	}
	t.TaxableAmount = t.Subtotal - t.DiscountAmount
	t.TaxAmount = t.TaxableAmount * taxPercent / 100
	t.GrandTotal = t.TaxableAmount + t.TaxAmount
	return t
}

// FormatCurrency renders an amount the way both the form preview and the
// PDF show it: a literal N$ prefix and exactly two decimals, no
// thousands separators.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("N$%.2f", amount)
}
