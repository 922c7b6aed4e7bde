package driving

import (
	"context"

	"github.com/skapa-labs/offerta-cli/internal/core/domain"
)

// ExportService renders a draft and archives the result.
type ExportService interface {
	// Export snapshots the draft for the given type, renders it and
	// writes the artifact record through the store. The caller must
	// await the result before any post-save action; the write is not
	// durable until Export returns nil error.
	//
	// A render failure aborts the export with no record created.
	// A store failure is propagated; the rendered draft is untouched
	// and the caller may retry.
	Export(ctx context.Context, t domain.DocumentType) (*domain.ArtifactRecord, error)

	// ExportSnapshot renders and archives an already-frozen snapshot.
	// Callers that keep editing the draft while the save is in flight
	// must take the snapshot on their own goroutine and use this;
	// the record is built solely from snap, so later draft edits
	// cannot reach it.
	ExportSnapshot(ctx context.Context, snap domain.DraftSnapshot) (*domain.ArtifactRecord, error)
}
