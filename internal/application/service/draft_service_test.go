package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/draft"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	infraRepo "github.com/serviflow/serviflow-api/internal/infrastructure/repository"
	"github.com/serviflow/serviflow-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDraftService(db *gorm.DB) *DraftService {
	return NewDraftService(
		infraRepo.NewQuotationRepository(db),
		infraRepo.NewQuotationLineItemRepository(db),
		infraRepo.NewClientRepository(db),
		infraRepo.NewCatalogRepository(db),
		infraRepo.NewCompanyProfileRepository(db),
		nil,
	)
}

func strPointer(s string) *string { return &s }

func TestStartDraftPrefillsIssuerFromProfile(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	newTestProfile(t, db)
	svc := newDraftService(db)

	state, err := svc.StartDraft(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, "COT-000001", state.Draft.Number)
	assert.Equal(t, draft.StepCompany, state.Step)
	assert.Equal(t, "ServiFlow SAS", state.Draft.Issuer.Name)
	assert.Equal(t, "900123456-7", state.Draft.Issuer.TaxID)
	assert.Equal(t, "facturacion@serviflow.test", state.Draft.Issuer.Email)
}

func TestStartDraftWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := newDraftService(db)

	state, err := svc.StartDraft(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, state.Draft.Issuer.Name)

	// Company step cannot advance until the issuer is filled in
	_, err = svc.NextStep(context.Background(), state.SessionID, user.ID)
	require.Error(t, err)
}

func TestDraftSessionOwnership(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := newDraftService(db)

	state, err := svc.StartDraft(context.Background(), user.ID)
	require.NoError(t, err)

	_, err = svc.GetDraft(context.Background(), state.SessionID, uuid.New())
	assert.Equal(t, apperror.ErrForbidden, err)

	_, err = svc.GetDraft(context.Background(), uuid.New(), user.ID)
	require.Error(t, err)
}

func TestSelectClientFillsClientBlock(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	newTestProfile(t, db)
	client := newTestClient(t, db, user.ID)
	svc := newDraftService(db)

	state, err := svc.StartDraft(context.Background(), user.ID)
	require.NoError(t, err)

	state, err = svc.SelectClient(context.Background(), state.SessionID, user.ID, client.ID)
	require.NoError(t, err)

	assert.Equal(t, client.Name, state.Draft.Client.Name)
	assert.Equal(t, client.TaxID, state.Draft.Client.TaxID)
	require.NotNil(t, state.Draft.Client.ID)
	assert.Equal(t, client.ID, *state.Draft.Client.ID)
	assert.True(t, state.CanSend)
}

func TestAddItemFromCatalog(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	newTestProfile(t, db)
	svc := newDraftService(db)

	item := &entity.CatalogItem{
		UserID:         user.ID,
		Code:           "SVC-001",
		Description:    "Soporte mensual",
		UnitPrice:      500000,
		TaxRatePercent: 19,
		Active:         true,
	}
	require.NoError(t, db.Create(item).Error)

	state, err := svc.StartDraft(context.Background(), user.ID)
	require.NoError(t, err)

	state, err = svc.AddItemFromCatalog(context.Background(), state.SessionID, user.ID, item.ID, 2)
	require.NoError(t, err)

	require.Len(t, state.Draft.LineItems, 1)
	assert.Equal(t, "Soporte mensual", state.Draft.LineItems[0].Description)
	assert.InDelta(t, 1190000, state.Draft.LineItems[0].LineTotal, 0.001)
	assert.InDelta(t, 1000000, state.Draft.Subtotal, 0.001)
}

func walkToPreview(t *testing.T, svc *DraftService, sessionID, userID, clientID uuid.UUID) *DraftState {
	t.Helper()
	ctx := context.Background()

	state, err := svc.NextStep(ctx, sessionID, userID)
	require.NoError(t, err)
	require.Equal(t, draft.StepClient, state.Step)

	state, err = svc.SelectClient(ctx, sessionID, userID, clientID)
	require.NoError(t, err)

	state, err = svc.NextStep(ctx, sessionID, userID)
	require.NoError(t, err)
	require.Equal(t, draft.StepProducts, state.Step)

	state, err = svc.AddLineItem(ctx, sessionID, userID, draft.LineItemInput{
		Description:    "Implementacion",
		Quantity:       2,
		UnitPrice:      500000,
		TaxRatePercent: 19,
	})
	require.NoError(t, err)

	state, err = svc.NextStep(ctx, sessionID, userID)
	require.NoError(t, err)
	require.Equal(t, draft.StepPreview, state.Step)
	return state
}

func TestSaveDraftPersistsQuotation(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	newTestProfile(t, db)
	client := newTestClient(t, db, user.ID)
	svc := newDraftService(db)
	ctx := context.Background()

	state, err := svc.StartDraft(ctx, user.ID)
	require.NoError(t, err)
	walkToPreview(t, svc, state.SessionID, user.ID, client.ID)

	quotation, err := svc.SaveDraft(ctx, state.SessionID, user.ID)
	require.NoError(t, err)

	assert.Equal(t, "COT-000001", quotation.Number)
	assert.Equal(t, enum.QuotationStatusDraft, quotation.Status)
	assert.Equal(t, client.Name, quotation.ClientName)
	assert.InDelta(t, 1000000, quotation.Subtotal, 0.001)
	assert.InDelta(t, 190000, quotation.TaxTotal, 0.001)
	assert.InDelta(t, 1190000, quotation.GrandTotal, 0.001)
	require.Len(t, quotation.Items, 1)
	assert.Equal(t, 1, quotation.Items[0].Position)

	// The session is gone once saved
	_, err = svc.GetDraft(ctx, state.SessionID, user.ID)
	require.Error(t, err)
}

func TestSaveDraftRequiresPreviewStep(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	newTestProfile(t, db)
	svc := newDraftService(db)

	state, err := svc.StartDraft(context.Background(), user.ID)
	require.NoError(t, err)

	_, err = svc.SaveDraft(context.Background(), state.SessionID, user.ID)
	require.Error(t, err)
}

func TestSaveDraftRenumbersOnCollision(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	newTestProfile(t, db)
	client := newTestClient(t, db, user.ID)
	svc := newDraftService(db)
	ctx := context.Background()

	// Two drafts started back to back reserve the same number
	first, err := svc.StartDraft(ctx, user.ID)
	require.NoError(t, err)
	second, err := svc.StartDraft(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, first.Draft.Number, second.Draft.Number)

	walkToPreview(t, svc, first.SessionID, user.ID, client.ID)
	walkToPreview(t, svc, second.SessionID, user.ID, client.ID)

	q1, err := svc.SaveDraft(ctx, first.SessionID, user.ID)
	require.NoError(t, err)
	q2, err := svc.SaveDraft(ctx, second.SessionID, user.ID)
	require.NoError(t, err)

	assert.Equal(t, "COT-000001", q1.Number)
	assert.Equal(t, "COT-000002", q2.Number)
}

func TestSendDraftRequiresEmails(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	newTestProfile(t, db)
	svc := newDraftService(db)
	ctx := context.Background()

	state, err := svc.StartDraft(ctx, user.ID)
	require.NoError(t, err)

	// Fill the client manually without an email address
	_, err = svc.UpdateClient(ctx, state.SessionID, user.ID, draft.ClientUpdate{
		Name:  strPointer("Acme Ltda"),
		TaxID: strPointer("800999-1"),
	})
	require.NoError(t, err)

	_, err = svc.SendDraft(ctx, state.SessionID, user.ID)
	require.Error(t, err)

	// The session survives a blocked send
	_, err = svc.GetDraft(ctx, state.SessionID, user.ID)
	require.NoError(t, err)
}

func TestDiscardDraft(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := newDraftService(db)
	ctx := context.Background()

	state, err := svc.StartDraft(ctx, user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DiscardDraft(ctx, state.SessionID, user.ID))
	_, err = svc.GetDraft(ctx, state.SessionID, user.ID)
	require.Error(t, err)

	// Nothing was persisted
	var count int64
	require.NoError(t, db.Model(&entity.Quotation{}).Count(&count).Error)
	assert.Zero(t, count)
}
