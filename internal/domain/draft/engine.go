package draft

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
)

// Validation errors reported by the engine. They are non-fatal: the draft is
// left unmodified whenever one of these is returned.
var (
	ErrEmptyDescription    = errors.New("line item description is required")
	ErrNonPositiveQuantity = errors.New("line item quantity must be greater than zero")
	ErrNegativeUnitPrice   = errors.New("line item unit price cannot be negative")
	ErrNegativeTaxRate     = errors.New("line item tax rate cannot be negative")
	ErrIssuerIncomplete    = errors.New("issuer information incomplete")
	ErrClientIncomplete    = errors.New("client information incomplete")
	ErrNoLineItems         = errors.New("quotation has no line items")
	ErrUnknownStep         = errors.New("unknown wizard step")
)

// Engine owns the mutable state of one in-progress quotation and the
// arithmetic that keeps its monetary totals consistent with its line items.
// Exactly one engine is held per wizard session. All methods take the
// internal mutex, so an engine may be shared across goroutines, but there is
// no coordination beyond that: callers observing then mutating must do their
// own sequencing.
type Engine struct {
	mu    sync.Mutex
	draft Draft
	step  Step

	now func() time.Time
}

// NewEngine creates an engine holding a fresh default draft. The quotation
// number is externally generated and treated as opaque; it is assigned once
// and survives until Reset.
func NewEngine(number string) *Engine {
	e := &Engine{now: time.Now}
	e.draft = e.freshDraft(number)
	e.step = StepCompany
	return e
}

func (e *Engine) freshDraft(number string) Draft {
	issued := e.now()
	return Draft{
		Number:     number,
		IssueDate:  issued,
		ExpiryDate: issued.Add(DefaultValidity),
		Status:     enum.QuotationStatusDraft,
	}
}

// Snapshot returns a deep copy of the current draft state.
func (e *Engine) Snapshot() Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Draft {
	d := e.draft
	d.LineItems = make([]LineItem, len(e.draft.LineItems))
	copy(d.LineItems, e.draft.LineItems)
	return d
}

// Step returns the current wizard step.
func (e *Engine) Step() Step {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.step
}

// UpdateIssuer shallow-merges the non-nil fields into the issuer. Issuer
// fields do not affect totals, so no recomputation happens. Completeness is
// enforced at step-transition time, not here.
func (e *Engine) UpdateIssuer(u IssuerUpdate) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if u.Name != nil {
		e.draft.Issuer.Name = *u.Name
	}
	if u.TaxID != nil {
		e.draft.Issuer.TaxID = *u.TaxID
	}
	if u.Phone != nil {
		e.draft.Issuer.Phone = *u.Phone
	}
	if u.Address != nil {
		e.draft.Issuer.Address = *u.Address
	}
	if u.LogoRef != nil {
		e.draft.Issuer.LogoRef = *u.LogoRef
	}
	if u.Email != nil {
		e.draft.Issuer.Email = *u.Email
	}
}

// UpdateClient shallow-merges the non-nil fields into the client.
func (e *Engine) UpdateClient(u ClientUpdate) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if u.ID != nil {
		id := *u.ID
		e.draft.Client.ID = &id
	}
	if u.Name != nil {
		e.draft.Client.Name = *u.Name
	}
	if u.TaxID != nil {
		e.draft.Client.TaxID = *u.TaxID
	}
	if u.Phone != nil {
		e.draft.Client.Phone = *u.Phone
	}
	if u.Contact != nil {
		e.draft.Client.Contact = *u.Contact
	}
	if u.Address != nil {
		e.draft.Client.Address = *u.Address
	}
	if u.Email != nil {
		e.draft.Client.Email = *u.Email
	}
	if u.CountryRef != nil {
		ref := *u.CountryRef
		e.draft.Client.CountryRef = &ref
	}
	if u.CityRef != nil {
		ref := *u.CityRef
		e.draft.Client.CityRef = &ref
	}
	if u.SectorRef != nil {
		ref := *u.SectorRef
		e.draft.Client.SectorRef = &ref
	}
}

func validateLineItem(description string, quantity int, unitPrice, taxRatePercent float64) error {
	if description == "" {
		return ErrEmptyDescription
	}
	if quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	if unitPrice < 0 {
		return ErrNegativeUnitPrice
	}
	if taxRatePercent < 0 {
		return ErrNegativeTaxRate
	}
	return nil
}

// AddLineItem validates and appends a new line item, assigns it a fresh id,
// derives its line total and recomputes the draft totals. On validation
// failure the draft is untouched and the caller must surface the error.
func (e *Engine) AddLineItem(in LineItemInput) (LineItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := validateLineItem(in.Description, in.Quantity, in.UnitPrice, in.TaxRatePercent); err != nil {
		return LineItem{}, err
	}

	item := LineItem{
		ID:             uuid.New(),
		Description:    in.Description,
		Quantity:       in.Quantity,
		UnitPrice:      in.UnitPrice,
		TaxRatePercent: in.TaxRatePercent,
		LineTotal:      LineTotal(in.Quantity, in.UnitPrice, in.TaxRatePercent),
	}
	e.draft.LineItems = append(e.draft.LineItems, item)
	e.recomputeLocked()
	return item, nil
}

// UpdateLineItem merges the non-nil fields into the matching line item,
// re-derives its line total and recomputes the draft totals. Unknown ids are
// a silent no-op; invalid merged values leave the item unchanged.
func (e *Engine) UpdateLineItem(id uuid.UUID, u LineItemUpdate) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.draft.LineItems {
		if e.draft.LineItems[i].ID != id {
			continue
		}

		merged := e.draft.LineItems[i]
		if u.Description != nil {
			merged.Description = *u.Description
		}
		if u.Quantity != nil {
			merged.Quantity = *u.Quantity
		}
		if u.UnitPrice != nil {
			merged.UnitPrice = *u.UnitPrice
		}
		if u.TaxRatePercent != nil {
			merged.TaxRatePercent = *u.TaxRatePercent
		}
		if err := validateLineItem(merged.Description, merged.Quantity, merged.UnitPrice, merged.TaxRatePercent); err != nil {
			return err
		}

		merged.LineTotal = LineTotal(merged.Quantity, merged.UnitPrice, merged.TaxRatePercent)
		e.draft.LineItems[i] = merged
		e.recomputeLocked()
		return nil
	}
	return nil
}

// RemoveLineItem deletes the matching line item and recomputes totals.
// Remaining items keep their ids and insertion order. Unknown ids are a
// silent no-op.
func (e *Engine) RemoveLineItem(id uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.draft.LineItems {
		if e.draft.LineItems[i].ID == id {
			e.draft.LineItems = append(e.draft.LineItems[:i], e.draft.LineItems[i+1:]...)
			e.recomputeLocked()
			return
		}
	}
}

// RecomputeTotals re-derives the totals from the current line items. Every
// mutation path already ends in a recomputation, so calling it again without
// an intervening mutation yields identical totals.
func (e *Engine) RecomputeTotals() Totals {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recomputeLocked()
	return Totals{
		Subtotal:   e.draft.Subtotal,
		TaxTotal:   e.draft.TaxTotal,
		GrandTotal: e.draft.GrandTotal,
	}
}

func (e *Engine) recomputeLocked() {
	t := ComputeTotals(e.draft.LineItems)
	e.draft.Subtotal = t.Subtotal
	e.draft.TaxTotal = t.TaxTotal
	e.draft.GrandTotal = t.GrandTotal
}

// SetExpiryDate replaces the expiry date. Calendar constraints (not before
// today) are the caller's concern, not the engine's.
func (e *Engine) SetExpiryDate(date time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.ExpiryDate = date
}

// ChangeStatus sets the status unconditionally. Callers coordinate with the
// persistence layer to record the change.
func (e *Engine) ChangeStatus(status enum.QuotationStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Status = status
}

// Reset discards the current draft, restores the default state under the
// given freshly generated number and moves the wizard back to the first step.
func (e *Engine) Reset(number string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = e.freshDraft(number)
	e.step = StepCompany
}
