package driving

import (
	"github.com/skapa-labs/offerta-cli/internal/core/domain"
)

// DraftService manages the editable receipt and offer drafts.
// One draft exists per document type; both are created up front with a
// single blank line. All mutations recompute totals synchronously, so
// Totals is never stale after a mutating call returns.
type DraftService interface {
	// Draft returns the live draft for a document type.
	// Returns domain.ErrUnsupportedType for unknown types.
	Draft(t domain.DocumentType) (*domain.Draft, error)

	// AddLine appends a blank line and returns its id. Always succeeds
	// for a valid type.
	AddLine(t domain.DocumentType) (int, error)

	// RemoveLine deletes a line by id. Unknown ids are a no-op; the
	// draft may be edited down to zero lines.
	RemoveLine(t domain.DocumentType, id int) error

	// SetLine replaces a line's field values.
	SetLine(t domain.DocumentType, id int, item domain.LineItem) error

	// Reset discards lines and metadata, restoring defaults and one
	// blank line.
	Reset(t domain.DocumentType) error

	// Totals returns the draft's current financial totals.
	Totals(t domain.DocumentType) (domain.Totals, error)
}
