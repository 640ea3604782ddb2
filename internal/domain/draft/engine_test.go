package draft

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviflow/serviflow-api/internal/domain/enum"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }
func floatPtr(f float64) *float64 { return &f }

func newTestEngine() *Engine {
	return NewEngine("COT-000001")
}

func TestNewEngineDefaults(t *testing.T) {
	e := newTestEngine()
	d := e.Snapshot()

	assert.Equal(t, "COT-000001", d.Number)
	assert.Equal(t, enum.QuotationStatusDraft, d.Status)
	assert.Empty(t, d.LineItems)
	assert.Zero(t, d.Subtotal)
	assert.Zero(t, d.TaxTotal)
	assert.Zero(t, d.GrandTotal)
	assert.Equal(t, StepCompany, e.Step())
	assert.Equal(t, DefaultValidity, d.ExpiryDate.Sub(d.IssueDate))
}

func TestAddLineItemComputesTotals(t *testing.T) {
	e := newTestEngine()

	item, err := e.AddLineItem(LineItemInput{
		Description:    "Consulting",
		Quantity:       2,
		UnitPrice:      500000,
		TaxRatePercent: 19,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.InDelta(t, 1190000, item.LineTotal, 0.001)

	d := e.Snapshot()
	assert.InDelta(t, 1000000, d.Subtotal, 0.001)
	assert.InDelta(t, 190000, d.TaxTotal, 0.001)
	assert.InDelta(t, 1190000, d.GrandTotal, 0.001)

	_, err = e.AddLineItem(LineItemInput{
		Description:    "License",
		Quantity:       1,
		UnitPrice:      300000,
		TaxRatePercent: 0,
	})
	require.NoError(t, err)

	d = e.Snapshot()
	assert.InDelta(t, 1300000, d.Subtotal, 0.001)
	assert.InDelta(t, 190000, d.TaxTotal, 0.001)
	assert.InDelta(t, 1490000, d.GrandTotal, 0.001)
}

func TestAddLineItemValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   LineItemInput
		wantErr error
	}{
		{"empty description", LineItemInput{Quantity: 1, UnitPrice: 10}, ErrEmptyDescription},
		{"zero quantity", LineItemInput{Description: "x", Quantity: 0, UnitPrice: 10}, ErrNonPositiveQuantity},
		{"negative quantity", LineItemInput{Description: "x", Quantity: -2, UnitPrice: 10}, ErrNonPositiveQuantity},
		{"negative price", LineItemInput{Description: "x", Quantity: 1, UnitPrice: -1}, ErrNegativeUnitPrice},
		{"negative tax rate", LineItemInput{Description: "x", Quantity: 1, UnitPrice: 1, TaxRatePercent: -5}, ErrNegativeTaxRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			_, err := e.AddLineItem(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)

			// Draft must be untouched on rejection
			d := e.Snapshot()
			assert.Empty(t, d.LineItems)
			assert.Zero(t, d.GrandTotal)
		})
	}
}

func TestUpdateLineItemRederivesTotals(t *testing.T) {
	e := newTestEngine()
	item, err := e.AddLineItem(LineItemInput{Description: "Consulting", Quantity: 2, UnitPrice: 100, TaxRatePercent: 19})
	require.NoError(t, err)

	require.NoError(t, e.UpdateLineItem(item.ID, LineItemUpdate{Quantity: intPtr(3)}))

	d := e.Snapshot()
	require.Len(t, d.LineItems, 1)
	assert.Equal(t, item.ID, d.LineItems[0].ID, "id must be stable across edits")
	assert.Equal(t, 3, d.LineItems[0].Quantity)
	assert.InDelta(t, 357, d.LineItems[0].LineTotal, 0.001)
	assert.InDelta(t, 300, d.Subtotal, 0.001)
	assert.InDelta(t, 57, d.TaxTotal, 0.001)
	assert.InDelta(t, 357, d.GrandTotal, 0.001)
}

func TestUpdateLineItemUnknownIDIsNoOp(t *testing.T) {
	e := newTestEngine()
	_, err := e.AddLineItem(LineItemInput{Description: "Consulting", Quantity: 1, UnitPrice: 50, TaxRatePercent: 0})
	require.NoError(t, err)
	before := e.Snapshot()

	require.NoError(t, e.UpdateLineItem(uuid.New(), LineItemUpdate{Quantity: intPtr(99)}))

	assert.Equal(t, before, e.Snapshot())
}

func TestUpdateLineItemRejectsInvalidMerge(t *testing.T) {
	e := newTestEngine()
	item, err := e.AddLineItem(LineItemInput{Description: "Consulting", Quantity: 1, UnitPrice: 50, TaxRatePercent: 0})
	require.NoError(t, err)
	before := e.Snapshot()

	err = e.UpdateLineItem(item.ID, LineItemUpdate{Quantity: intPtr(0)})
	assert.ErrorIs(t, err, ErrNonPositiveQuantity)
	assert.Equal(t, before, e.Snapshot())

	err = e.UpdateLineItem(item.ID, LineItemUpdate{Description: strPtr("")})
	assert.ErrorIs(t, err, ErrEmptyDescription)
	assert.Equal(t, before, e.Snapshot())
}

func TestRemoveLineItem(t *testing.T) {
	e := newTestEngine()
	first, err := e.AddLineItem(LineItemInput{Description: "A", Quantity: 1, UnitPrice: 100, TaxRatePercent: 19})
	require.NoError(t, err)
	second, err := e.AddLineItem(LineItemInput{Description: "B", Quantity: 2, UnitPrice: 200, TaxRatePercent: 0})
	require.NoError(t, err)

	e.RemoveLineItem(first.ID)

	d := e.Snapshot()
	require.Len(t, d.LineItems, 1)
	assert.Equal(t, second.ID, d.LineItems[0].ID, "remaining items are not renumbered")
	assert.InDelta(t, 400, d.Subtotal, 0.001)
	assert.InDelta(t, 0, d.TaxTotal, 0.001)
	assert.InDelta(t, 400, d.GrandTotal, 0.001)
}

func TestRemoveLineItemUnknownIDIsNoOp(t *testing.T) {
	e := newTestEngine()
	_, err := e.AddLineItem(LineItemInput{Description: "A", Quantity: 1, UnitPrice: 100, TaxRatePercent: 19})
	require.NoError(t, err)
	before := e.Snapshot()

	e.RemoveLineItem(uuid.New())

	assert.Equal(t, before, e.Snapshot())
}

func TestLineItemsKeepInsertionOrder(t *testing.T) {
	e := newTestEngine()
	for _, desc := range []string{"first", "second", "third"} {
		_, err := e.AddLineItem(LineItemInput{Description: desc, Quantity: 1, UnitPrice: 10})
		require.NoError(t, err)
	}

	d := e.Snapshot()
	require.Len(t, d.LineItems, 3)
	assert.Equal(t, "first", d.LineItems[0].Description)
	assert.Equal(t, "second", d.LineItems[1].Description)
	assert.Equal(t, "third", d.LineItems[2].Description)
}

func TestRecomputeTotalsIsIdempotent(t *testing.T) {
	e := newTestEngine()
	_, err := e.AddLineItem(LineItemInput{Description: "A", Quantity: 3, UnitPrice: 33.33, TaxRatePercent: 19})
	require.NoError(t, err)

	first := e.RecomputeTotals()
	second := e.RecomputeTotals()
	assert.Equal(t, first, second)
}

func TestUpdateIssuerAndClientMergePartials(t *testing.T) {
	e := newTestEngine()

	e.UpdateIssuer(IssuerUpdate{Name: strPtr("Serviflow SAS"), TaxID: strPtr("900123456-1")})
	e.UpdateIssuer(IssuerUpdate{Phone: strPtr("+57 601 555 0101")})

	d := e.Snapshot()
	assert.Equal(t, "Serviflow SAS", d.Issuer.Name)
	assert.Equal(t, "900123456-1", d.Issuer.TaxID)
	assert.Equal(t, "+57 601 555 0101", d.Issuer.Phone)

	clientID := uuid.New()
	e.UpdateClient(ClientUpdate{ID: &clientID, Name: strPtr("Acme Ltda"), TaxID: strPtr("800987654-2")})
	e.UpdateClient(ClientUpdate{Contact: strPtr("Laura Gomez")})

	d = e.Snapshot()
	require.NotNil(t, d.Client.ID)
	assert.Equal(t, clientID, *d.Client.ID)
	assert.Equal(t, "Acme Ltda", d.Client.Name)
	assert.Equal(t, "800987654-2", d.Client.TaxID)
	assert.Equal(t, "Laura Gomez", d.Client.Contact)
}

func TestSetExpiryDate(t *testing.T) {
	e := newTestEngine()
	expiry := time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)

	e.SetExpiryDate(expiry)

	assert.True(t, e.Snapshot().ExpiryDate.Equal(expiry))
}

func TestChangeStatusIsUnconditional(t *testing.T) {
	e := newTestEngine()

	// No transition graph: any status is reachable from any other.
	e.ChangeStatus(enum.QuotationStatusApproved)
	assert.Equal(t, enum.QuotationStatusApproved, e.Snapshot().Status)

	e.ChangeStatus(enum.QuotationStatusDraft)
	assert.Equal(t, enum.QuotationStatusDraft, e.Snapshot().Status)
}

func TestReset(t *testing.T) {
	e := newTestEngine()
	e.UpdateIssuer(IssuerUpdate{Name: strPtr("Serviflow SAS"), TaxID: strPtr("900123456-1")})
	e.UpdateClient(ClientUpdate{Name: strPtr("Acme"), TaxID: strPtr("800987654-2")})
	_, err := e.AddLineItem(LineItemInput{Description: "A", Quantity: 1, UnitPrice: 10})
	require.NoError(t, err)
	require.NoError(t, e.Next())
	e.ChangeStatus(enum.QuotationStatusSent)

	e.Reset("COT-000002")

	d := e.Snapshot()
	assert.Equal(t, "COT-000002", d.Number)
	assert.Equal(t, Client{}, d.Client)
	assert.Empty(t, d.LineItems)
	assert.Zero(t, d.GrandTotal)
	assert.Equal(t, enum.QuotationStatusDraft, d.Status)
	assert.Equal(t, StepCompany, e.Step())
}

func TestSnapshotIsIsolated(t *testing.T) {
	e := newTestEngine()
	_, err := e.AddLineItem(LineItemInput{Description: "A", Quantity: 1, UnitPrice: 10})
	require.NoError(t, err)

	d := e.Snapshot()
	d.LineItems[0].Description = "mutated"
	d.LineItems[0].UnitPrice = 9999

	assert.Equal(t, "A", e.Snapshot().LineItems[0].Description)
	assert.InDelta(t, 10, e.Snapshot().LineItems[0].UnitPrice, 0.001)
}

func TestCanSend(t *testing.T) {
	e := newTestEngine()
	d := e.Snapshot()
	assert.False(t, d.CanSend())

	e.UpdateIssuer(IssuerUpdate{Email: strPtr("facturacion@serviflow.co")})
	assert.False(t, e.Snapshot().CanSend(), "client email still missing")

	e.UpdateClient(ClientUpdate{Email: strPtr("compras@acme.co")})
	assert.True(t, e.Snapshot().CanSend())
}
