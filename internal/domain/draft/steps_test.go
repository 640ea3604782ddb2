package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeCompanyStep(e *Engine) {
	e.UpdateIssuer(IssuerUpdate{Name: strPtr("Serviflow SAS"), TaxID: strPtr("900123456-1")})
}

func completeClientStep(e *Engine) {
	e.UpdateClient(ClientUpdate{Name: strPtr("Acme Ltda"), TaxID: strPtr("800987654-2")})
}

func completeProductsStep(t *testing.T, e *Engine) {
	t.Helper()
	_, err := e.AddLineItem(LineItemInput{Description: "Consulting", Quantity: 1, UnitPrice: 100, TaxRatePercent: 19})
	require.NoError(t, err)
}

func TestParseStep(t *testing.T) {
	for _, name := range []string{"company", "client", "products", "preview"} {
		s, err := ParseStep(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}

	_, err := ParseStep("summary")
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestNextBlockedOnIncompleteIssuer(t *testing.T) {
	e := newTestEngine()

	err := e.Next()
	assert.ErrorIs(t, err, ErrIssuerIncomplete)
	assert.Equal(t, StepCompany, e.Step())

	// Name alone is not enough
	e.UpdateIssuer(IssuerUpdate{Name: strPtr("Serviflow SAS")})
	err = e.Next()
	assert.ErrorIs(t, err, ErrIssuerIncomplete)
	assert.Equal(t, StepCompany, e.Step())
}

func TestNextWalksAllSteps(t *testing.T) {
	e := newTestEngine()
	completeCompanyStep(e)
	require.NoError(t, e.Next())
	assert.Equal(t, StepClient, e.Step())

	err := e.Next()
	assert.ErrorIs(t, err, ErrClientIncomplete)
	assert.Equal(t, StepClient, e.Step())

	completeClientStep(e)
	require.NoError(t, e.Next())
	assert.Equal(t, StepProducts, e.Step())

	err = e.Next()
	assert.ErrorIs(t, err, ErrNoLineItems)
	assert.Equal(t, StepProducts, e.Step())

	completeProductsStep(t, e)
	require.NoError(t, e.Next())
	assert.Equal(t, StepPreview, e.Step())

	// Preview is terminal: Next is a no-op
	require.NoError(t, e.Next())
	assert.Equal(t, StepPreview, e.Step())
}

func TestNextFromProductsWithEmptyItemsNeverAdvances(t *testing.T) {
	e := newTestEngine()
	completeCompanyStep(e)
	completeClientStep(e)
	completeProductsStep(t, e)
	require.NoError(t, e.GoToStep(StepProducts))

	item := e.Snapshot().LineItems[0]
	e.RemoveLineItem(item.ID)

	err := e.Next()
	assert.ErrorIs(t, err, ErrNoLineItems)
	assert.Equal(t, StepProducts, e.Step())
}

func TestPreviousIsUnconditional(t *testing.T) {
	e := newTestEngine()

	// No-op at the first step.
	e.Previous()
	assert.Equal(t, StepCompany, e.Step())

	completeCompanyStep(e)
	completeClientStep(e)
	completeProductsStep(t, e)
	require.NoError(t, e.GoToStep(StepPreview))

	// Walks back regardless of state.
	e.Previous()
	assert.Equal(t, StepProducts, e.Step())
	e.Previous()
	assert.Equal(t, StepClient, e.Step())
	e.Previous()
	assert.Equal(t, StepCompany, e.Step())
}

func TestGoToStepForwardValidatesEverySkippedStep(t *testing.T) {
	e := newTestEngine()
	completeCompanyStep(e)

	// client step is incomplete, so jumping over it fails
	err := e.GoToStep(StepPreview)
	assert.ErrorIs(t, err, ErrClientIncomplete)
	assert.Equal(t, StepCompany, e.Step())

	completeClientStep(e)
	err = e.GoToStep(StepPreview)
	assert.ErrorIs(t, err, ErrNoLineItems)
	assert.Equal(t, StepCompany, e.Step())

	completeProductsStep(t, e)
	require.NoError(t, e.GoToStep(StepPreview))
	assert.Equal(t, StepPreview, e.Step())
}

func TestGoToStepBackwardIsUnconditional(t *testing.T) {
	e := newTestEngine()
	completeCompanyStep(e)
	completeClientStep(e)
	completeProductsStep(t, e)
	require.NoError(t, e.GoToStep(StepPreview))

	// Remove the only item; backward jump must still succeed.
	e.RemoveLineItem(e.Snapshot().LineItems[0].ID)
	require.NoError(t, e.GoToStep(StepCompany))
	assert.Equal(t, StepCompany, e.Step())
}

func TestGoToStepRejectsUnknownStep(t *testing.T) {
	e := newTestEngine()

	err := e.GoToStep(Step(7))
	assert.ErrorIs(t, err, ErrUnknownStep)
	assert.Equal(t, StepCompany, e.Step())
}

func TestBlockedNextLeavesDraftIntact(t *testing.T) {
	e := newTestEngine()
	completeCompanyStep(e)
	require.NoError(t, e.Next())
	before := e.Snapshot()

	err := e.Next()
	assert.ErrorIs(t, err, ErrClientIncomplete)
	assert.Equal(t, before, e.Snapshot())
}
