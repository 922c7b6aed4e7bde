package domain

import (
	"fmt"
	"strings"
	"time"
)

// DocumentType identifies the kind of document a draft produces.
type DocumentType string

// Available document types.
const (
	// TypeReceipt is a sales receipt (kvitto).
	TypeReceipt DocumentType = "receipt"

	// TypeOffer is a price offer (offert).
	TypeOffer DocumentType = "offer"
)

// IsValid returns true if the document type is recognised.
func (t DocumentType) IsValid() bool {
	return t == TypeReceipt || t == TypeOffer
}

// String returns the string representation.
func (t DocumentType) String() string {
	return string(t)
}

// Heading returns the document heading printed on the rendered artifact.
func (t DocumentType) Heading() string {
	switch t {
	case TypeReceipt:
		return "KVITTO"
	case TypeOffer:
		return "OFFERT"
	default:
		return strings.ToUpper(string(t))
	}
}

// blank is the placeholder shown for empty metadata fields.
const blank = "—"

// dateLayout is the fixed date format for draft date fields.
const dateLayout = "2006-01-02"

// Defaults are the initial metadata values applied when a draft is
// created or reset.
type Defaults struct {
	// Currency is the display currency, "SEK" when empty.
	Currency string

	// PaymentMethod is the receipt payment method, "Kort" when empty.
	PaymentMethod string

	// TaxRate is the tax rate prefilled on new lines, DefaultTaxRate when empty.
	TaxRate string
}

func (d Defaults) currency() string {
	if d.Currency == "" {
		return "SEK"
	}
	return d.Currency
}

func (d Defaults) paymentMethod() string {
	if d.PaymentMethod == "" {
		return "Kort"
	}
	return d.PaymentMethod
}

// ReceiptFields are the non-ledger fields of a receipt draft.
type ReceiptFields struct {
	Store         string
	Date          string
	PaymentMethod string
	Currency      string
	Note          string
}

// OfferFields are the non-ledger fields of an offer draft.
// Offers are always priced in SEK.
type OfferFields struct {
	Company  string
	OfferNo  string
	Customer string
	Date     string
	Terms    string
}

// Draft is the in-memory, editable state of one document before export.
// A draft is transient; only its rendered artifact is persisted.
type Draft struct {
	Type    DocumentType
	Receipt ReceiptFields // populated when Type == TypeReceipt
	Offer   OfferFields   // populated when Type == TypeOffer
	Ledger  Ledger

	defaults Defaults
}

// NewDraft creates a draft of the given type with default metadata and
// exactly one blank line. today supplies the initial date field.
func NewDraft(t DocumentType, defaults Defaults, today time.Time) *Draft {
	d := &Draft{Type: t, defaults: defaults}
	d.Reset(today)
	return d
}

// AddLine appends a blank line and returns its id. It always succeeds.
func (d *Draft) AddLine() int {
	return d.Ledger.AddItem()
}

// RemoveLine deletes a line by id. Unknown ids are a no-op; the draft may
// be edited down to zero lines.
func (d *Draft) RemoveLine(id int) {
	d.Ledger.RemoveItem(id)
}

// Reset discards all lines and metadata, restoring default field values
// and a single blank line. The end state is the same regardless of prior
// edits.
func (d *Draft) Reset(today time.Time) {
	date := today.Format(dateLayout)
	switch d.Type {
	case TypeReceipt:
		d.Receipt = ReceiptFields{
			Date:          date,
			PaymentMethod: d.defaults.paymentMethod(),
			Currency:      d.defaults.currency(),
		}
	case TypeOffer:
		d.Offer = OfferFields{Date: date}
	}
	d.Ledger = NewLedger(d.defaults.TaxRate)
	d.Ledger.AddItem()
}

// Totals recomputes the draft's financial totals.
func (d *Draft) Totals() Totals {
	return d.Ledger.Totals()
}

// Currency returns the draft's display currency.
func (d *Draft) Currency() string {
	if d.Type == TypeReceipt {
		if d.Receipt.Currency != "" {
			return d.Receipt.Currency
		}
		return d.defaults.currency()
	}
	return "SEK"
}

// Snapshot freezes the draft's current state for rendering and archiving.
// Later edits to the draft do not affect the snapshot.
func (d *Draft) Snapshot() DraftSnapshot {
	return DraftSnapshot{
		Type:     d.Type,
		Receipt:  d.Receipt,
		Offer:    d.Offer,
		Currency: d.Currency(),
		Items:    d.Ledger.Items(),
		Totals:   d.Ledger.Totals(),
	}
}

// DraftSnapshot is an immutable copy of a draft at export time. It is what
// the renderer consumes and what the artifact's metadata is derived from.
type DraftSnapshot struct {
	Type     DocumentType
	Receipt  ReceiptFields
	Offer    OfferFields
	Currency string
	Items    []LineItem
	Totals   Totals
}

// orBlank substitutes the placeholder for empty values.
func orBlank(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return blank
	}
	return s
}

// Title derives the human-readable archive title from the snapshot.
func (s DraftSnapshot) Title() string {
	switch s.Type {
	case TypeReceipt:
		return fmt.Sprintf("%s (%s)", orBlank(s.Receipt.Store), orBlank(s.Receipt.Date))
	case TypeOffer:
		title := "Offert"
		if no := strings.TrimSpace(s.Offer.OfferNo); no != "" {
			title += " " + no
		}
		if customer := strings.TrimSpace(s.Offer.Customer); customer != "" {
			title += " • " + customer
		}
		return title
	default:
		return string(s.Type)
	}
}

// FileName derives the artifact file name from the snapshot.
func (s DraftSnapshot) FileName() string {
	switch s.Type {
	case TypeReceipt:
		date := strings.TrimSpace(s.Receipt.Date)
		if date == "" {
			date = "datum"
		}
		return fmt.Sprintf("kvitto_%s.pdf", date)
	case TypeOffer:
		label := strings.TrimSpace(s.Offer.OfferNo)
		if label == "" {
			label = strings.TrimSpace(s.Offer.Date)
		}
		if label == "" {
			label = "datum"
		}
		return fmt.Sprintf("offert_%s.pdf", label)
	default:
		return string(s.Type) + ".pdf"
	}
}

// Meta returns the frozen metadata snapshot stored alongside the artifact:
// the non-ledger fields plus the computed totals.
func (s DraftSnapshot) Meta() map[string]any {
	totals := map[string]any{
		"sub":   s.Totals.Subtotal,
		"vat":   s.Totals.TaxTotal,
		"total": s.Totals.GrandTotal,
	}
	switch s.Type {
	case TypeReceipt:
		return map[string]any{
			"store":    s.Receipt.Store,
			"date":     s.Receipt.Date,
			"pay":      s.Receipt.PaymentMethod,
			"currency": s.Currency,
			"totals":   totals,
		}
	case TypeOffer:
		return map[string]any{
			"company":  s.Offer.Company,
			"no":       s.Offer.OfferNo,
			"customer": s.Offer.Customer,
			"date":     s.Offer.Date,
			"currency": s.Currency,
			"totals":   totals,
		}
	default:
		return map[string]any{"totals": totals}
	}
}
