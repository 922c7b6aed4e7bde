package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skapa-labs/offerta-cli/internal/core/domain"
	"github.com/skapa-labs/offerta-cli/internal/core/ports/driven"
	"github.com/skapa-labs/offerta-cli/internal/core/ports/driving"
)

// Ensure ArchiveService implements the interface.
var _ driving.ArchiveService = (*ArchiveService)(nil)

// ArchiveService provides read access to saved artifacts.
type ArchiveService struct {
	store driven.ArtifactStore
}

// NewArchiveService creates a new archive service.
func NewArchiveService(store driven.ArtifactStore) *ArchiveService {
	return &ArchiveService{store: store}
}

// ListRecent returns up to limit saved artifacts, newest first.
func (s *ArchiveService) ListRecent(ctx context.Context, limit int) ([]domain.ArtifactRecord, error) {
	return s.store.ListRecent(ctx, limit)
}

// ListByType returns saved artifacts of one document type, newest first.
func (s *ArchiveService) ListByType(ctx context.Context, t domain.DocumentType) ([]domain.ArtifactRecord, error) {
	if !t.IsValid() {
		return nil, domain.ErrUnsupportedType
	}
	return s.store.ListByType(ctx, t)
}

// Get retrieves a saved artifact by id.
func (s *ArchiveService) Get(ctx context.Context, id string) (*domain.ArtifactRecord, error) {
	return s.store.GetByID(ctx, id)
}

// WriteFile writes an artifact's payload to dir using the record's own
// file name and returns the full path written.
func (s *ArchiveService) WriteFile(ctx context.Context, id, dir string) (string, error) {
	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, record.FileName)
	if err := os.WriteFile(path, record.Blob, 0600); err != nil {
		return "", fmt.Errorf("writing artifact file: %w", err)
	}
	return path, nil
}

// Delete removes a saved artifact.
func (s *ArchiveService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
