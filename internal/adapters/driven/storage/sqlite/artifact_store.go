package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/skapa-labs/offerta-cli/internal/core/domain"
	"github.com/skapa-labs/offerta-cli/internal/core/ports/driven"
)

// artifactStore implements driven.ArtifactStore.
type artifactStore struct {
	store *Store
}

var _ driven.ArtifactStore = (*artifactStore)(nil)

// artifactColumns is the column list shared by all artifact queries.
const artifactColumns = "id, type, title, file_name, created_at, meta, blob"

// Put writes one record inside a single transaction. Index maintenance
// commits with the row or not at all; a failure leaves the store as it
// was. An existing record with the same id is replaced wholesale.
func (s *artifactStore) Put(ctx context.Context, record *domain.ArtifactRecord) error {
	db, err := s.store.handle()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	metaJSON, err := json.Marshal(record.Meta)
	if err != nil {
		return fmt.Errorf("marshalling meta: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO artifacts (id, type, title, file_name, created_at, meta, blob)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			title = excluded.title,
			file_name = excluded.file_name,
			created_at = excluded.created_at,
			meta = excluded.meta,
			blob = excluded.blob
	`, record.ID, string(record.Type), record.Title, record.FileName,
		record.CreatedAt.UnixMilli(), string(metaJSON), record.Blob)

	if err != nil {
		return fmt.Errorf("saving artifact: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a record by id.
func (s *artifactStore) GetByID(ctx context.Context, id string) (*domain.ArtifactRecord, error) {
	db, err := s.store.handle()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	row := db.QueryRowContext(ctx,
		"SELECT "+artifactColumns+" FROM artifacts WHERE id = ?", id)

	return scanArtifact(row)
}

// ListByType returns records of one document type, newest first.
func (s *artifactStore) ListByType(ctx context.Context, t domain.DocumentType) ([]domain.ArtifactRecord, error) {
	db, err := s.store.handle()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	rows, err := db.QueryContext(ctx,
		"SELECT "+artifactColumns+" FROM artifacts WHERE type = ? ORDER BY created_at DESC, id",
		string(t))
	if err != nil {
		return nil, fmt.Errorf("querying artifacts: %w", err)
	}
	defer rows.Close()

	return scanArtifacts(rows)
}

// ListRecent returns up to limit records, newest first. limit <= 0
// returns everything.
func (s *artifactStore) ListRecent(ctx context.Context, limit int) ([]domain.ArtifactRecord, error) {
	db, err := s.store.handle()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	query := "SELECT " + artifactColumns + " FROM artifacts ORDER BY created_at DESC, id"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying artifacts: %w", err)
	}
	defer rows.Close()

	return scanArtifacts(rows)
}

// Delete removes a record. Deleting an unknown id is a no-op.
func (s *artifactStore) Delete(ctx context.Context, id string) error {
	db, err := s.store.handle()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if _, err := db.ExecContext(ctx, "DELETE FROM artifacts WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting artifact: %w", err)
	}
	return nil
}

// scanArtifact scans a single artifact row.
func scanArtifact(row *sql.Row) (*domain.ArtifactRecord, error) {
	var record domain.ArtifactRecord
	var typ, metaJSON string
	var createdAt int64

	if err := row.Scan(&record.ID, &typ, &record.Title, &record.FileName,
		&createdAt, &metaJSON, &record.Blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning artifact: %w", err)
	}

	record.Type = domain.DocumentType(typ)
	record.CreatedAt = time.UnixMilli(createdAt).UTC()

	if err := json.Unmarshal([]byte(metaJSON), &record.Meta); err != nil {
		return nil, fmt.Errorf("unmarshalling meta: %w", err)
	}

	return &record, nil
}

// scanArtifacts scans multiple artifact rows.
func scanArtifacts(rows *sql.Rows) ([]domain.ArtifactRecord, error) {
	var records []domain.ArtifactRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var record domain.ArtifactRecord
		var typ, metaJSON string
		var createdAt int64

		if err := rows.Scan(&record.ID, &typ, &record.Title, &record.FileName,
			&createdAt, &metaJSON, &record.Blob); err != nil {
			return nil, fmt.Errorf("scanning artifact: %w", err)
		}

		record.Type = domain.DocumentType(typ)
		record.CreatedAt = time.UnixMilli(createdAt).UTC()

		if err := json.Unmarshal([]byte(metaJSON), &record.Meta); err != nil {
			return nil, fmt.Errorf("unmarshalling meta: %w", err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating artifacts: %w", err)
	}

	return records, nil
}
