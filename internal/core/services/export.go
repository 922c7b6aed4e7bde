package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skapa-labs/offerta-cli/internal/core/domain"
	"github.com/skapa-labs/offerta-cli/internal/core/ports/driven"
	"github.com/skapa-labs/offerta-cli/internal/core/ports/driving"
	"github.com/skapa-labs/offerta-cli/internal/id"
	"github.com/skapa-labs/offerta-cli/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService runs the export pipeline: snapshot the draft, render it,
// wrap the payload in an artifact record and write it through the store.
type ExportService struct {
	drafts   driving.DraftService
	renderer driven.Renderer
	store    driven.ArtifactStore

	now func() time.Time

	// lastSave keeps record timestamps non-decreasing even if the wall
	// clock steps backwards between saves.
	mu       sync.Mutex
	lastSave time.Time
}

// NewExportService creates a new export service.
func NewExportService(
	drafts driving.DraftService,
	renderer driven.Renderer,
	store driven.ArtifactStore,
) *ExportService {
	return &ExportService{
		drafts:   drafts,
		renderer: renderer,
		store:    store,
		now:      time.Now,
	}
}

// Export renders the draft for the given type and archives the result.
// The draft itself is left untouched: the record is built from a frozen
// snapshot, so edits made while the save is in flight do not affect it.
func (s *ExportService) Export(ctx context.Context, t domain.DocumentType) (*domain.ArtifactRecord, error) {
	draft, err := s.drafts.Draft(t)
	if err != nil {
		return nil, err
	}

	return s.ExportSnapshot(ctx, draft.Snapshot())
}

// ExportSnapshot renders and archives a snapshot taken by the caller.
// The snapshot must be taken on the goroutine that edits the draft;
// from here on nothing reads the draft, so concurrent edits cannot
// reach the record.
func (s *ExportService) ExportSnapshot(ctx context.Context, snap domain.DraftSnapshot) (*domain.ArtifactRecord, error) {
	if !snap.Type.IsValid() {
		return nil, domain.ErrUnsupportedType
	}

	logger.Debug("rendering %s draft with %d lines", snap.Type, len(snap.Items))

	blob, err := s.renderer.Render(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	record := &domain.ArtifactRecord{
		ID:        id.New(),
		Type:      snap.Type,
		Title:     snap.Title(),
		FileName:  snap.FileName(),
		CreatedAt: s.saveTime(),
		Meta:      snap.Meta(),
		Blob:      blob,
	}

	if err := s.store.Put(ctx, record); err != nil {
		return nil, fmt.Errorf("saving artifact: %w", err)
	}

	logger.Info("archived %s %s as %s", snap.Type, record.ID, record.FileName)
	return record, nil
}

// saveTime returns the current time, clamped so that successive saves
// never observe a decreasing timestamp.
func (s *ExportService) saveTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Before(s.lastSave) {
		now = s.lastSave
	}
	s.lastSave = now
	return now
}
