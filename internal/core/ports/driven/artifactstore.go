package driven

import (
	"context"

	"github.com/skapa-labs/offerta-cli/internal/core/domain"
)

// ArtifactStore persists rendered artifacts durably across restarts.
// Backed by SQLite.
//
// Implementations open their underlying handle lazily: construction is
// cheap and the first operation establishes (and migrates) the store.
// Concurrent first-callers must converge on a single handle.
type ArtifactStore interface {
	// Put writes one record in a single atomic transaction, including
	// index maintenance. A failure leaves the store exactly as it was.
	// An existing record with the same id is replaced wholesale.
	Put(ctx context.Context, record *domain.ArtifactRecord) error

	// GetByID retrieves a record by id.
	// Returns domain.ErrNotFound if no such record exists.
	GetByID(ctx context.Context, id string) (*domain.ArtifactRecord, error)

	// ListByType returns all records of the given document type,
	// newest first.
	ListByType(ctx context.Context, t domain.DocumentType) ([]domain.ArtifactRecord, error)

	// ListRecent returns up to limit records ordered by creation time,
	// newest first. limit <= 0 means no limit.
	ListRecent(ctx context.Context, limit int) ([]domain.ArtifactRecord, error)

	// Delete removes a record by id. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}
