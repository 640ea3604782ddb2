package service

import (
	"context"
	"testing"
	"time"

	"github.com/serviflow/serviflow-api/internal/domain/enum"
	infraRepo "github.com/serviflow/serviflow-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCollectionService(db *gorm.DB) *CollectionService {
	return NewCollectionService(
		infraRepo.NewCollectionRepository(db),
		infraRepo.NewCollectionLineItemRepository(db),
		infraRepo.NewQuotationRepository(db),
		infraRepo.NewClientRepository(db),
	)
}

func TestCreateCollectionDerivesTotals(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	client := newTestClient(t, db, user.ID)
	svc := newCollectionService(db)

	collection, err := svc.CreateCollection(context.Background(), &CreateCollectionInput{
		UserID:   user.ID,
		ClientID: &client.ID,
		Date:     time.Now(),
		Items: []CollectionItemInput{
			{Description: "Soporte", Quantity: 2, UnitPrice: 500000, TaxRatePercent: 19},
			{Description: "Licencia", Quantity: 1, UnitPrice: 300000, TaxRatePercent: 0},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "REC-000001", collection.Number)
	assert.Equal(t, enum.CollectionStatusPending, collection.Status)
	assert.Equal(t, client.Name, collection.ClientName)
	assert.InDelta(t, 1300000, collection.Subtotal, 0.001)
	assert.InDelta(t, 190000, collection.TaxTotal, 0.001)
	assert.InDelta(t, 1490000, collection.GrandTotal, 0.001)
	require.Len(t, collection.Items, 2)
	assert.Equal(t, 1, collection.Items[0].Position)
	assert.Equal(t, "Soporte", collection.Items[0].Description)
}

func TestCreateCollectionValidation(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := newCollectionService(db)
	ctx := context.Background()

	_, err := svc.CreateCollection(ctx, &CreateCollectionInput{UserID: user.ID, Date: time.Now()})
	require.Error(t, err)

	_, err = svc.CreateCollection(ctx, &CreateCollectionInput{
		UserID: user.ID,
		Date:   time.Now(),
		Items:  []CollectionItemInput{{Description: "x", Quantity: 0, UnitPrice: 10}},
	})
	require.Error(t, err)

	_, err = svc.CreateCollection(ctx, &CreateCollectionInput{
		UserID: user.ID,
		Date:   time.Now(),
		Items:  []CollectionItemInput{{Description: "x", Quantity: 1, UnitPrice: -1}},
	})
	require.Error(t, err)

	_, err = svc.CreateCollection(ctx, &CreateCollectionInput{
		UserID: user.ID,
		Date:   time.Now(),
		Items:  []CollectionItemInput{{Description: "", Quantity: 1, UnitPrice: 10}},
	})
	require.Error(t, err, "empty item description must be rejected")
}

func TestRegisterPaymentTransitions(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := newCollectionService(db)
	ctx := context.Background()

	collection, err := svc.CreateCollection(ctx, &CreateCollectionInput{
		UserID: user.ID,
		Date:   time.Now(),
		Items:  []CollectionItemInput{{Description: "Servicio", Quantity: 1, UnitPrice: 1000000}},
	})
	require.NoError(t, err)

	collection, err = svc.RegisterPayment(ctx, user.ID, collection.ID, 400000, false)
	require.NoError(t, err)
	assert.Equal(t, enum.CollectionStatusPartial, collection.Status)
	assert.InDelta(t, 600000, collection.Outstanding(), 0.001)

	collection, err = svc.RegisterPayment(ctx, user.ID, collection.ID, 600000, false)
	require.NoError(t, err)
	assert.Equal(t, enum.CollectionStatusCollected, collection.Status)
	assert.InDelta(t, 0, collection.Outstanding(), 0.001)

	// Overpayment and payments on settled documents are rejected
	_, err = svc.RegisterPayment(ctx, user.ID, collection.ID, 1, false)
	require.Error(t, err)
}

func TestRegisterPaymentRejectsBadAmounts(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := newCollectionService(db)
	ctx := context.Background()

	collection, err := svc.CreateCollection(ctx, &CreateCollectionInput{
		UserID: user.ID,
		Date:   time.Now(),
		Items:  []CollectionItemInput{{Description: "Servicio", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)

	_, err = svc.RegisterPayment(ctx, user.ID, collection.ID, 0, false)
	require.Error(t, err)

	_, err = svc.RegisterPayment(ctx, user.ID, collection.ID, 200, false)
	require.Error(t, err)
}

func TestCancelCollection(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := newCollectionService(db)
	ctx := context.Background()

	collection, err := svc.CreateCollection(ctx, &CreateCollectionInput{
		UserID: user.ID,
		Date:   time.Now(),
		Items:  []CollectionItemInput{{Description: "Servicio", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)

	collection, err = svc.CancelCollection(ctx, user.ID, collection.ID, false)
	require.NoError(t, err)
	assert.Equal(t, enum.CollectionStatusCanceled, collection.Status)

	// Canceled documents take no payments
	_, err = svc.RegisterPayment(ctx, user.ID, collection.ID, 50, false)
	require.Error(t, err)
}

func TestCreateFromQuotationRequiresApproval(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	newTestProfile(t, db)
	client := newTestClient(t, db, user.ID)
	draftSvc := newDraftService(db)
	svc := newCollectionService(db)
	ctx := context.Background()

	state, err := draftSvc.StartDraft(ctx, user.ID)
	require.NoError(t, err)
	walkToPreview(t, draftSvc, state.SessionID, user.ID, client.ID)
	quotation, err := draftSvc.SaveDraft(ctx, state.SessionID, user.ID)
	require.NoError(t, err)

	// Still a draft, so collection creation is refused
	_, err = svc.CreateFromQuotation(ctx, user.ID, quotation.ID)
	require.Error(t, err)

	require.NoError(t, db.Model(quotation).Update("status", enum.QuotationStatusApproved).Error)

	collection, err := svc.CreateFromQuotation(ctx, user.ID, quotation.ID)
	require.NoError(t, err)
	assert.Equal(t, "REC-000001", collection.Number)
	assert.Equal(t, quotation.GrandTotal, collection.GrandTotal)
	require.NotNil(t, collection.QuotationID)
	assert.Equal(t, quotation.ID, *collection.QuotationID)
	require.Len(t, collection.Items, 1)
}
