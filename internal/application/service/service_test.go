package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/infrastructure/database"
	infraRepo "github.com/serviflow/serviflow-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int

// newTestDB opens a fresh in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBCounter++
	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", testDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// newTestUser inserts a user to own the records created in a test.
func newTestUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:        uuid.New(),
		FirstName: "Laura",
		LastName:  "Mejia",
		Email:     fmt.Sprintf("laura%d@serviflow.test", testDBCounter),
		Active:    true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newTestProfile(t *testing.T, db *gorm.DB) *entity.CompanyProfile {
	t.Helper()

	email := "facturacion@serviflow.test"
	profile := &entity.CompanyProfile{
		Name:    "ServiFlow SAS",
		TaxID:   "900123456-7",
		Phone:   "+57 601 555 0101",
		Address: "Cra 7 # 71-21, Bogota",
		Email:   &email,
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func newTestClient(t *testing.T, db *gorm.DB, userID uuid.UUID) *entity.Client {
	t.Helper()

	email := "compras@acme.test"
	client := &entity.Client{
		UserID: userID,
		Name:   "Acme Ltda",
		TaxID:  fmt.Sprintf("800%d-1", testDBCounter),
		Email:  &email,
	}
	require.NoError(t, db.Create(client).Error)
	return client
}

// Idempotency keys must migrate and generate their IDs the same way on both
// drivers; the hook may not rely on a database-side default.
func TestIdempotencyKeyCreateAndExpire(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	repo := infraRepo.NewIdempotencyRepository(db)
	ctx := context.Background()

	record := &entity.IdempotencyKey{
		Key:          "req-abc-123",
		UserID:       user.ID,
		Endpoint:     "POST /api/v1/clients",
		ResponseCode: 201,
		ResponseBody: `{"success":true}`,
		ExpiresAt:    time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, repo.Create(ctx, record))
	require.NotEqual(t, uuid.Nil, record.ID)

	found, err := repo.GetByKey(ctx, "req-abc-123", user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, record.ID, found.ID)
	require.False(t, found.IsExpired())

	missing, err := repo.GetByKey(ctx, "req-abc-123", uuid.New())
	require.NoError(t, err)
	require.Nil(t, missing, "keys are scoped per user")

	require.NoError(t, db.Model(record).Update("expires_at", time.Now().Add(-time.Minute)).Error)
	require.NoError(t, repo.DeleteExpired(ctx))

	gone, err := repo.GetByKey(ctx, "req-abc-123", user.ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}
