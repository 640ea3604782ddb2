package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/draft"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/apperror"
	"github.com/serviflow/serviflow-api/pkg/email"
	"github.com/serviflow/serviflow-api/pkg/utils"
)

// DraftService drives the quotation wizard. Each open wizard is an in-memory
// draft engine keyed by a session ID; nothing touches the quotations table
// until the draft is saved from the preview step.
type DraftService struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*draftSession

	quotationRepo repository.QuotationRepository
	lineItemRepo  repository.QuotationLineItemRepository
	clientRepo    repository.ClientRepository
	catalogRepo   repository.CatalogRepository
	profileRepo   repository.CompanyProfileRepository
	emailService  *email.EmailService
}

type draftSession struct {
	engine *draft.Engine
	userID uuid.UUID
}

// NewDraftService creates a new draft service
func NewDraftService(
	quotationRepo repository.QuotationRepository,
	lineItemRepo repository.QuotationLineItemRepository,
	clientRepo repository.ClientRepository,
	catalogRepo repository.CatalogRepository,
	profileRepo repository.CompanyProfileRepository,
	emailService *email.EmailService,
) *DraftService {
	return &DraftService{
		sessions:      make(map[uuid.UUID]*draftSession),
		quotationRepo: quotationRepo,
		lineItemRepo:  lineItemRepo,
		clientRepo:    clientRepo,
		catalogRepo:   catalogRepo,
		profileRepo:   profileRepo,
		emailService:  emailService,
	}
}

// DraftState is the wizard state returned to the client after every operation.
type DraftState struct {
	SessionID uuid.UUID   `json:"session_id"`
	Step      draft.Step  `json:"step"`
	CanSend   bool        `json:"can_send"`
	Draft     draft.Draft `json:"draft"`
}

func (s *DraftService) state(id uuid.UUID, session *draftSession) *DraftState {
	snapshot := session.engine.Snapshot()
	return &DraftState{
		SessionID: id,
		Step:      session.engine.Step(),
		CanSend:   snapshot.CanSend(),
		Draft:     snapshot,
	}
}

func (s *DraftService) session(id uuid.UUID, userID uuid.UUID) (*draftSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, apperror.NewNotFoundError("Draft session")
	}
	if session.userID != userID {
		return nil, apperror.ErrForbidden
	}
	return session, nil
}

// StartDraft opens a new wizard session. The issuer block is pre-filled from
// the company profile when one is configured; the draft number is reserved
// from the quotation sequence.
func (s *DraftService) StartDraft(ctx context.Context, userID uuid.UUID) (*DraftState, error) {
	seq, err := s.quotationRepo.NextSequence(ctx)
	if err != nil {
		return nil, err
	}
	number := utils.FormatDocumentNumber(utils.QuotationPrefix, seq)

	engine := draft.NewEngine(number)

	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		update := draft.IssuerUpdate{
			Name:    &profile.Name,
			TaxID:   &profile.TaxID,
			Phone:   &profile.Phone,
			Address: &profile.Address,
		}
		if profile.Email != nil {
			update.Email = profile.Email
		}
		if profile.LogoRef != nil {
			update.LogoRef = profile.LogoRef
		}
		engine.UpdateIssuer(update)
	}

	id := uuid.New()
	session := &draftSession{engine: engine, userID: userID}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	return s.state(id, session), nil
}

// GetDraft returns the current state of a wizard session.
func (s *DraftService) GetDraft(ctx context.Context, sessionID, userID uuid.UUID) (*DraftState, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}
	return s.state(sessionID, session), nil
}

// DiscardDraft drops a wizard session without persisting anything.
func (s *DraftService) DiscardDraft(ctx context.Context, sessionID, userID uuid.UUID) error {
	if _, err := s.session(sessionID, userID); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

// UpdateIssuer applies a partial update to the draft's issuer block.
func (s *DraftService) UpdateIssuer(ctx context.Context, sessionID, userID uuid.UUID, update draft.IssuerUpdate) (*DraftState, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}
	session.engine.UpdateIssuer(update)
	return s.state(sessionID, session), nil
}

// UpdateClient applies a partial update to the draft's client block.
func (s *DraftService) UpdateClient(ctx context.Context, sessionID, userID uuid.UUID, update draft.ClientUpdate) (*DraftState, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}
	session.engine.UpdateClient(update)
	return s.state(sessionID, session), nil
}

// SelectClient fills the draft's client block from a stored client record.
func (s *DraftService) SelectClient(ctx context.Context, sessionID, userID, clientID uuid.UUID) (*DraftState, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	update := draft.ClientUpdate{
		ID:         &client.ID,
		Name:       &client.Name,
		TaxID:      &client.TaxID,
		CountryRef: client.CountryID,
		CityRef:    client.CityID,
		SectorRef:  client.SectorID,
	}
	if client.Phone != nil {
		update.Phone = client.Phone
	}
	if client.Contact != nil {
		update.Contact = client.Contact
	}
	if client.Address != nil {
		update.Address = client.Address
	}
	if client.Email != nil {
		update.Email = client.Email
	}
	session.engine.UpdateClient(update)
	return s.state(sessionID, session), nil
}

// SearchClients looks up stored clients for the wizard's client step.
func (s *DraftService) SearchClients(ctx context.Context, query string, limit int) ([]entity.Client, error) {
	if limit <= 0 || limit > 25 {
		limit = 10
	}
	return s.clientRepo.Search(ctx, query, limit)
}

// AddLineItem validates and appends a line item to the draft.
func (s *DraftService) AddLineItem(ctx context.Context, sessionID, userID uuid.UUID, input draft.LineItemInput) (*DraftState, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if _, err := session.engine.AddLineItem(input); err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}
	return s.state(sessionID, session), nil
}

// AddItemFromCatalog appends a line item pre-filled from a catalog item.
func (s *DraftService) AddItemFromCatalog(ctx context.Context, sessionID, userID, itemID uuid.UUID, quantity int) (*DraftState, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.catalogRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Catalog item")
	}

	input := draft.LineItemInput{
		Description:    item.Description,
		Quantity:       quantity,
		UnitPrice:      item.UnitPrice,
		TaxRatePercent: item.TaxRatePercent,
	}
	if _, err := session.engine.AddLineItem(input); err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}
	return s.state(sessionID, session), nil
}

// UpdateLineItem applies a partial update to one line item.
func (s *DraftService) UpdateLineItem(ctx context.Context, sessionID, userID, itemID uuid.UUID, update draft.LineItemUpdate) (*DraftState, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if err := session.engine.UpdateLineItem(itemID, update); err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}
	return s.state(sessionID, session), nil
}

// RemoveLineItem removes a line item from the draft.
func (s *DraftService) RemoveLineItem(ctx context.Context, sessionID, userID, itemID uuid.UUID) (*DraftState, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}
	session.engine.RemoveLineItem(itemID)
	return s.state(sessionID, session), nil
}

// SetExpiryDate overrides the draft's expiry date.
func (s *DraftService) SetExpiryDate(ctx context.Context, sessionID, userID uuid.UUID, date time.Time) (*DraftState, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}
	session.engine.SetExpiryDate(date)
	return s.state(sessionID, session), nil
}

// NextStep advances the wizard one step if the current step's data is complete.
func (s *DraftService) NextStep(ctx context.Context, sessionID, userID uuid.UUID) (*DraftState, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if err := session.engine.Next(); err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}
	return s.state(sessionID, session), nil
}

// PreviousStep moves the wizard back one step. Going back never loses data.
func (s *DraftService) PreviousStep(ctx context.Context, sessionID, userID uuid.UUID) (*DraftState, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}
	session.engine.Previous()
	return s.state(sessionID, session), nil
}

// GoToStep jumps the wizard to a named step. Forward jumps re-validate every
// step being skipped.
func (s *DraftService) GoToStep(ctx context.Context, sessionID, userID uuid.UUID, stepName string) (*DraftState, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}
	step, err := draft.ParseStep(stepName)
	if err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}
	if err := session.engine.GoToStep(step); err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}
	return s.state(sessionID, session), nil
}

// SaveDraft persists the wizard's draft as a quotation and closes the
// session. The wizard must have reached the preview step.
func (s *DraftService) SaveDraft(ctx context.Context, sessionID, userID uuid.UUID) (*entity.Quotation, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.engine.Step() != draft.StepPreview {
		return nil, apperror.NewValidationError("draft must reach the preview step before saving")
	}

	snapshot := session.engine.Snapshot()

	// The reserved number may have been taken by a concurrently saved draft,
	// so re-derive it from the sequence when it collides.
	number := snapshot.Number
	if existing, err := s.quotationRepo.GetByNumber(ctx, number); err != nil {
		return nil, err
	} else if existing != nil {
		seq, err := s.quotationRepo.NextSequence(ctx)
		if err != nil {
			return nil, err
		}
		number = utils.FormatDocumentNumber(utils.QuotationPrefix, seq)
	}

	quotation := &entity.Quotation{
		UserID:     userID,
		ClientID:   snapshot.Client.ID,
		Number:     number,
		IssueDate:  snapshot.IssueDate,
		ExpiryDate: snapshot.ExpiryDate,
		ClientName: snapshot.Client.Name,
		ClientTax:  snapshot.Client.TaxID,
		Subtotal:   snapshot.Subtotal,
		TaxTotal:   snapshot.TaxTotal,
		GrandTotal: snapshot.GrandTotal,
		Status:     snapshot.Status,
	}

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}

	items := make([]entity.QuotationLineItem, 0, len(snapshot.LineItems))
	for i, li := range snapshot.LineItems {
		items = append(items, entity.QuotationLineItem{
			QuotationID:    quotation.ID,
			Position:       i + 1,
			Description:    li.Description,
			Quantity:       li.Quantity,
			UnitPrice:      li.UnitPrice,
			TaxRatePercent: li.TaxRatePercent,
			LineTotal:      li.LineTotal,
		})
	}
	if err := s.lineItemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	return s.quotationRepo.GetWithItems(ctx, quotation.ID)
}

// SendDraft persists the draft like SaveDraft and then emails the rendered
// quotation to the client. Sending requires both issuer and client emails.
func (s *DraftService) SendDraft(ctx context.Context, sessionID, userID uuid.UUID) (*entity.Quotation, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}

	snapshot := session.engine.Snapshot()
	if !snapshot.CanSend() {
		return nil, apperror.NewValidationError("sending requires both an issuer email and a client email")
	}

	quotation, err := s.SaveDraft(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	view := buildQuotationView(snapshot.Issuer.Name, quotation)
	if err := s.emailService.SendQuotation(snapshot.Client.Email, view); err != nil {
		// The quotation is already saved. Surface the delivery failure
		// without rolling it back.
		return quotation, apperror.NewDependencyError("quotation saved but email delivery failed")
	}

	now := time.Now()
	quotation.Status = enum.QuotationStatusSent
	quotation.SentAt = &now
	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}

	return quotation, nil
}

func buildQuotationView(issuerName string, quotation *entity.Quotation) email.QuotationView {
	items := make([]email.QuotationLineView, 0, len(quotation.Items))
	for _, li := range quotation.Items {
		items = append(items, email.QuotationLineView{
			Description:    li.Description,
			Quantity:       li.Quantity,
			UnitPrice:      li.UnitPrice,
			TaxRatePercent: li.TaxRatePercent,
			LineTotal:      li.LineTotal,
		})
	}
	return email.QuotationView{
		Number:     quotation.Number,
		IssuerName: issuerName,
		ClientName: quotation.ClientName,
		IssueDate:  quotation.IssueDate.Format("2006-01-02"),
		ExpiryDate: quotation.ExpiryDate.Format("2006-01-02"),
		Items:      items,
		Subtotal:   quotation.Subtotal,
		TaxTotal:   quotation.TaxTotal,
		GrandTotal: quotation.GrandTotal,
	}
}
