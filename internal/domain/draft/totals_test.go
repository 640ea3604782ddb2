package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	assert.InDelta(t, 1190000, LineTotal(2, 500000, 19), 0.001)
	assert.InDelta(t, 300000, LineTotal(1, 300000, 0), 0.001)
	assert.InDelta(t, 0, LineTotal(5, 0, 19), 0.001)
}

func TestComputeTotals(t *testing.T) {
	items := []LineItem{
		{Description: "Consulting", Quantity: 2, UnitPrice: 500000, TaxRatePercent: 19},
		{Description: "License", Quantity: 1, UnitPrice: 300000, TaxRatePercent: 0},
	}

	got := ComputeTotals(items)

	assert.InDelta(t, 1300000, got.Subtotal, 0.001)
	assert.InDelta(t, 190000, got.TaxTotal, 0.001)
	assert.InDelta(t, 1490000, got.GrandTotal, 0.001)
}

func TestComputeTotalsEmpty(t *testing.T) {
	assert.Equal(t, Totals{}, ComputeTotals(nil))
	assert.Equal(t, Totals{}, ComputeTotals([]LineItem{}))
}

func TestComputeTotalsGrandTotalInvariant(t *testing.T) {
	items := []LineItem{
		{Quantity: 3, UnitPrice: 33.33, TaxRatePercent: 19},
		{Quantity: 7, UnitPrice: 120.5, TaxRatePercent: 5},
		{Quantity: 1, UnitPrice: 0, TaxRatePercent: 19},
	}

	got := ComputeTotals(items)

	assert.InDelta(t, got.Subtotal+got.TaxTotal, got.GrandTotal, 1e-9)
}
