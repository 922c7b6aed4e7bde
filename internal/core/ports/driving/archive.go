package driving

import (
	"context"

	"github.com/skapa-labs/offerta-cli/internal/core/domain"
)

// ArchiveService provides read access to saved artifacts.
type ArchiveService interface {
	// ListRecent returns up to limit saved artifacts, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.ArtifactRecord, error)

	// ListByType returns saved artifacts of one document type, newest first.
	ListByType(ctx context.Context, t domain.DocumentType) ([]domain.ArtifactRecord, error)

	// Get retrieves a saved artifact by id.
	Get(ctx context.Context, id string) (*domain.ArtifactRecord, error)

	// WriteFile writes an artifact's binary payload to dir using the
	// record's file name, and returns the full path written.
	WriteFile(ctx context.Context, id, dir string) (string, error)

	// Delete removes a saved artifact.
	Delete(ctx context.Context, id string) error
}
