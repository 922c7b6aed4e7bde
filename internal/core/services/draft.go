package services

import (
	"time"

	"github.com/skapa-labs/offerta-cli/internal/core/domain"
	"github.com/skapa-labs/offerta-cli/internal/core/ports/driven"
	"github.com/skapa-labs/offerta-cli/internal/core/ports/driving"
)

// Ensure DraftService implements the interface.
var _ driving.DraftService = (*DraftService)(nil)

// Configuration keys for draft defaults.
const (
	cfgCurrency      = "defaults.currency"
	cfgPaymentMethod = "defaults.payment_method"
	cfgTaxRate       = "defaults.vat"
)

// DraftService manages one receipt draft and one offer draft.
// Drafts are transient; only their rendered artifacts are persisted.
type DraftService struct {
	drafts   map[domain.DocumentType]*domain.Draft
	defaults domain.Defaults
	now      func() time.Time
}

// NewDraftService creates both drafts with defaults taken from the config
// store. cfg may be nil, in which case the built-in defaults apply.
func NewDraftService(cfg driven.ConfigStore) *DraftService {
	var defaults domain.Defaults
	if cfg != nil {
		defaults = domain.Defaults{
			Currency:      cfg.GetString(cfgCurrency),
			PaymentMethod: cfg.GetString(cfgPaymentMethod),
			TaxRate:       cfg.GetString(cfgTaxRate),
		}
	}

	s := &DraftService{
		drafts:   make(map[domain.DocumentType]*domain.Draft),
		defaults: defaults,
		now:      time.Now,
	}
	s.drafts[domain.TypeReceipt] = domain.NewDraft(domain.TypeReceipt, defaults, s.now())
	s.drafts[domain.TypeOffer] = domain.NewDraft(domain.TypeOffer, defaults, s.now())
	return s
}

// Draft returns the live draft for a document type.
func (s *DraftService) Draft(t domain.DocumentType) (*domain.Draft, error) {
	draft, ok := s.drafts[t]
	if !ok {
		return nil, domain.ErrUnsupportedType
	}
	return draft, nil
}

// AddLine appends a blank line to the draft and returns its id.
func (s *DraftService) AddLine(t domain.DocumentType) (int, error) {
	draft, err := s.Draft(t)
	if err != nil {
		return 0, err
	}
	return draft.AddLine(), nil
}

// RemoveLine deletes a line by id. Unknown ids are a no-op.
func (s *DraftService) RemoveLine(t domain.DocumentType, id int) error {
	draft, err := s.Draft(t)
	if err != nil {
		return err
	}
	draft.RemoveLine(id)
	return nil
}

// SetLine replaces a line's field values.
func (s *DraftService) SetLine(t domain.DocumentType, id int, item domain.LineItem) error {
	draft, err := s.Draft(t)
	if err != nil {
		return err
	}
	draft.Ledger.SetItem(id, item)
	return nil
}

// Reset restores the draft to default metadata and one blank line.
func (s *DraftService) Reset(t domain.DocumentType) error {
	draft, err := s.Draft(t)
	if err != nil {
		return err
	}
	draft.Reset(s.now())
	return nil
}

// Totals returns the draft's current financial totals.
// Totals are recomputed from the lines on every call, so they are never
// stale after a mutation.
func (s *DraftService) Totals(t domain.DocumentType) (domain.Totals, error) {
	draft, err := s.Draft(t)
	if err != nil {
		return domain.Totals{}, err
	}
	return draft.Totals(), nil
}
