package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	infraRepo "github.com/serviflow/serviflow-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContractService(db *gorm.DB) *ContractService {
	return NewContractService(
		infraRepo.NewContractRepository(db),
		infraRepo.NewContractClauseRepository(db),
		infraRepo.NewClauseTemplateRepository(db),
		infraRepo.NewClientRepository(db),
		infraRepo.NewCompanyProfileRepository(db),
	)
}

func TestCreateContractAssemblesClauses(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	newTestProfile(t, db)
	client := newTestClient(t, db, user.ID)
	svc := newContractService(db)
	ctx := context.Background()

	objeto, err := svc.CreateClauseTemplate(ctx, &CreateClauseTemplateInput{
		UserID: user.ID,
		Title:  "Objeto",
		Body:   "{{company_name}} prestara servicios a {{client_name}} por {{amount}}.",
	})
	require.NoError(t, err)

	duracion, err := svc.CreateClauseTemplate(ctx, &CreateClauseTemplateInput{
		UserID: user.ID,
		Title:  "Duracion",
		Body:   "El contrato rige desde {{start_date}}.",
	})
	require.NoError(t, err)

	contract, err := svc.CreateContract(ctx, &CreateContractInput{
		UserID:      user.ID,
		ClientID:    &client.ID,
		Title:       "Contrato de soporte",
		StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:      12000000,
		TemplateIDs: []uuid.UUID{objeto.ID, duracion.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "CTR-000001", contract.Number)
	assert.Equal(t, enum.ContractStatusDraft, contract.Status)
	require.Len(t, contract.Clauses, 2)
	assert.Equal(t, 1, contract.Clauses[0].Position)
	assert.Equal(t, "Objeto", contract.Clauses[0].Title)
	assert.Equal(t, "ServiFlow SAS prestara servicios a Acme Ltda por 12000000.00.", contract.Clauses[0].Body)
	assert.Equal(t, "El contrato rige desde 2026-03-01.", contract.Clauses[1].Body)
	assert.Contains(t, contract.Body, "1. Objeto")
	assert.Contains(t, contract.Body, "2. Duracion")
}

func TestCreateContractCustomPlaceholdersWin(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := newContractService(db)
	ctx := context.Background()

	tpl, err := svc.CreateClauseTemplate(ctx, &CreateClauseTemplateInput{
		UserID: user.ID,
		Title:  "Pago",
		Body:   "Pago contra {{payment_terms}} por {{amount}}.",
	})
	require.NoError(t, err)

	contract, err := svc.CreateContract(ctx, &CreateContractInput{
		UserID:      user.ID,
		Title:       "Contrato",
		StartDate:   time.Now(),
		Amount:      100,
		TemplateIDs: []uuid.UUID{tpl.ID},
		Placeholders: map[string]string{
			"payment_terms": "factura a 30 dias",
			"amount":        "cien pesos",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Pago contra factura a 30 dias por cien pesos.", contract.Clauses[0].Body)
}

func TestCreateContractLeavesUnknownTokensIntact(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := newContractService(db)
	ctx := context.Background()

	tpl, err := svc.CreateClauseTemplate(ctx, &CreateClauseTemplateInput{
		UserID: user.ID,
		Title:  "Varios",
		Body:   "Valor {{sin_definir}} queda tal cual.",
	})
	require.NoError(t, err)

	contract, err := svc.CreateContract(ctx, &CreateContractInput{
		UserID:      user.ID,
		Title:       "Contrato",
		StartDate:   time.Now(),
		TemplateIDs: []uuid.UUID{tpl.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "Valor {{sin_definir}} queda tal cual.", contract.Clauses[0].Body)
}

func TestEditingTemplateDoesNotRewriteContract(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := newContractService(db)
	ctx := context.Background()

	tpl, err := svc.CreateClauseTemplate(ctx, &CreateClauseTemplateInput{
		UserID: user.ID,
		Title:  "Confidencialidad",
		Body:   "Texto original.",
	})
	require.NoError(t, err)

	contract, err := svc.CreateContract(ctx, &CreateContractInput{
		UserID:      user.ID,
		Title:       "Contrato",
		StartDate:   time.Now(),
		TemplateIDs: []uuid.UUID{tpl.ID},
	})
	require.NoError(t, err)

	newBody := "Texto cambiado."
	_, err = svc.UpdateClauseTemplate(ctx, &UpdateClauseTemplateInput{
		UserID: user.ID,
		ID:     tpl.ID,
		Body:   &newBody,
	})
	require.NoError(t, err)

	reloaded, err := svc.GetContract(ctx, contract.ID)
	require.NoError(t, err)
	assert.Equal(t, "Texto original.", reloaded.Clauses[0].Body)
}

func TestContractStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := newContractService(db)
	ctx := context.Background()

	tpl, err := svc.CreateClauseTemplate(ctx, &CreateClauseTemplateInput{
		UserID: user.ID,
		Title:  "Objeto",
		Body:   "Cuerpo.",
	})
	require.NoError(t, err)

	contract, err := svc.CreateContract(ctx, &CreateContractInput{
		UserID:      user.ID,
		Title:       "Contrato",
		StartDate:   time.Now(),
		TemplateIDs: []uuid.UUID{tpl.ID},
	})
	require.NoError(t, err)

	contract, err = svc.ChangeContractStatus(ctx, user.ID, contract.ID, enum.ContractStatusActive, false)
	require.NoError(t, err)
	assert.Equal(t, enum.ContractStatusActive, contract.Status)

	contract, err = svc.ChangeContractStatus(ctx, user.ID, contract.ID, enum.ContractStatusTerminated, false)
	require.NoError(t, err)

	// Terminated is final
	_, err = svc.ChangeContractStatus(ctx, user.ID, contract.ID, enum.ContractStatusActive, false)
	require.Error(t, err)
}

func TestCreateContractRejectsEmptyAndBadDates(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := newContractService(db)
	ctx := context.Background()

	_, err := svc.CreateContract(ctx, &CreateContractInput{
		UserID:    user.ID,
		Title:     "Sin clausulas",
		StartDate: time.Now(),
	})
	require.Error(t, err)

	tpl, err := svc.CreateClauseTemplate(ctx, &CreateClauseTemplateInput{
		UserID: user.ID,
		Title:  "Objeto",
		Body:   "Cuerpo.",
	})
	require.NoError(t, err)

	end := time.Now().Add(-24 * time.Hour)
	_, err = svc.CreateContract(ctx, &CreateContractInput{
		UserID:      user.ID,
		Title:       "Fechas invertidas",
		StartDate:   time.Now(),
		EndDate:     &end,
		TemplateIDs: []uuid.UUID{tpl.ID},
	})
	require.Error(t, err)
}
