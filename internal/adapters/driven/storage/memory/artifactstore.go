// Package memory provides in-memory implementations of the driven
// storage ports, used by tests and as reference semantics for the
// SQLite adapter.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/skapa-labs/offerta-cli/internal/core/domain"
	"github.com/skapa-labs/offerta-cli/internal/core/ports/driven"
)

// Ensure ArtifactStore implements the interface.
var _ driven.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is an in-memory implementation of driven.ArtifactStore.
type ArtifactStore struct {
	mu      sync.RWMutex
	records map[string]domain.ArtifactRecord
}

// NewArtifactStore creates a new in-memory artifact store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{records: make(map[string]domain.ArtifactRecord)}
}

// Put stores or replaces a record.
func (s *ArtifactStore) Put(_ context.Context, record *domain.ArtifactRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = cloneRecord(*record)
	return nil
}

// GetByID retrieves a record by id.
func (s *ArtifactStore) GetByID(_ context.Context, id string) (*domain.ArtifactRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	record = cloneRecord(record)
	return &record, nil
}

// ListByType returns records of one type, newest first.
func (s *ArtifactStore) ListByType(_ context.Context, t domain.DocumentType) ([]domain.ArtifactRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.ArtifactRecord //nolint:prealloc // size unknown
	for _, record := range s.records {
		if record.Type == t {
			out = append(out, cloneRecord(record))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// ListRecent returns up to limit records, newest first.
func (s *ArtifactStore) ListRecent(_ context.Context, limit int) ([]domain.ArtifactRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ArtifactRecord, 0, len(s.records))
	for _, record := range s.records {
		out = append(out, cloneRecord(record))
	}
	sortNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Delete removes a record. Unknown ids are a no-op.
func (s *ArtifactStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

// cloneRecord copies a record so callers cannot mutate stored state.
func cloneRecord(r domain.ArtifactRecord) domain.ArtifactRecord {
	if r.Blob != nil {
		blob := make([]byte, len(r.Blob))
		copy(blob, r.Blob)
		r.Blob = blob
	}
	if r.Meta != nil {
		meta := make(map[string]any, len(r.Meta))
		for k, v := range r.Meta {
			meta[k] = v
		}
		r.Meta = meta
	}
	return r
}

// sortNewestFirst orders records by creation time descending, breaking
// ties by id for a stable order.
func sortNewestFirst(records []domain.ArtifactRecord) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})
}
