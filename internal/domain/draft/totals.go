package draft

// Totals holds the derived monetary totals of a draft.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TaxTotal   float64 `json:"tax_total"`
	GrandTotal float64 `json:"grand_total"`
}

// LineTotal computes the tax-inclusive total of a single line. Unit prices
// are treated as tax-exclusive; tax is a simple percentage of the line.
func LineTotal(quantity int, unitPrice, taxRatePercent float64) float64 {
	return float64(quantity) * unitPrice * (1 + taxRatePercent/100)
}

// ComputeTotals derives subtotal, tax total and grand total from the given
// line items. It is a pure function of its input and is idempotent.
func ComputeTotals(items []LineItem) Totals {
	var t Totals
	for _, item := range items {
		net := float64(item.Quantity) * item.UnitPrice
		t.Subtotal += net
		t.TaxTotal += net * item.TaxRatePercent / 100
	}
	t.GrandTotal = t.Subtotal + t.TaxTotal
	return t
}
