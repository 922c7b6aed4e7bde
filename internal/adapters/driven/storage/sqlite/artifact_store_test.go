package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skapa-labs/offerta-cli/internal/core/domain"
)

func TestArtifactStore_PutGetRoundtrip(t *testing.T) {
	store := setupTestStore(t)
	artifacts := store.Artifacts()
	ctx := context.Background()

	created := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	record := testRecord("a1", domain.TypeReceipt, created)
	require.NoError(t, artifacts.Put(ctx, record))

	got, err := artifacts.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, record.Type, got.Type)
	assert.Equal(t, record.Title, got.Title)
	assert.Equal(t, record.FileName, got.FileName)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, record.Blob, got.Blob)
	assert.Equal(t, "SEK", got.Meta["currency"])

	totals, ok := got.Meta["totals"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 25.0, totals["total"])
}

func TestArtifactStore_GetMissing(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Artifacts().GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArtifactStore_PutReplacesByID(t *testing.T) {
	store := setupTestStore(t)
	artifacts := store.Artifacts()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, artifacts.Put(ctx, testRecord("a1", domain.TypeReceipt, now)))

	replacement := testRecord("a1", domain.TypeReceipt, now)
	replacement.Title = "Replaced"
	replacement.Blob = []byte("new payload")
	require.NoError(t, artifacts.Put(ctx, replacement))

	got, err := artifacts.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Replaced", got.Title)
	assert.Equal(t, []byte("new payload"), got.Blob)

	records, err := artifacts.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestArtifactStore_FailedPutLeavesStoreUntouched(t *testing.T) {
	store := setupTestStore(t)
	artifacts := store.Artifacts()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, artifacts.Put(ctx, testRecord("good", domain.TypeReceipt, now)))

	// The schema rejects unknown types, aborting the transaction.
	bad := testRecord("bad", domain.DocumentType("invoice"), now)
	require.Error(t, artifacts.Put(ctx, bad))

	_, err := artifacts.GetByID(ctx, "bad")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Previously committed records remain retrievable and unchanged.
	got, err := artifacts.GetByID(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "Test good", got.Title)
}

func TestArtifactStore_ListByType(t *testing.T) {
	store := setupTestStore(t)
	artifacts := store.Artifacts()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, artifacts.Put(ctx, testRecord("r1", domain.TypeReceipt, now)))
	require.NoError(t, artifacts.Put(ctx, testRecord("o1", domain.TypeOffer, now.Add(time.Second))))
	require.NoError(t, artifacts.Put(ctx, testRecord("r2", domain.TypeReceipt, now.Add(2*time.Second))))

	receipts, err := artifacts.ListByType(ctx, domain.TypeReceipt)
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, "r2", receipts[0].ID)
	assert.Equal(t, "r1", receipts[1].ID)
	for _, r := range receipts {
		assert.Equal(t, domain.TypeReceipt, r.Type)
	}

	offers, err := artifacts.ListByType(ctx, domain.TypeOffer)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "o1", offers[0].ID)
}

func TestArtifactStore_ListRecent(t *testing.T) {
	store := setupTestStore(t)
	artifacts := store.Artifacts()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	for i, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, artifacts.Put(ctx, testRecord(id, domain.TypeOffer, now.Add(time.Duration(i)*time.Second))))
	}

	recent, err := artifacts.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "d", recent[0].ID)
	assert.Equal(t, "c", recent[1].ID)

	all, err := artifacts.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestArtifactStore_ListEmpty(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	records, err := store.Artifacts().ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestArtifactStore_Delete(t *testing.T) {
	store := setupTestStore(t)
	artifacts := store.Artifacts()
	ctx := context.Background()

	require.NoError(t, artifacts.Put(ctx, testRecord("a1", domain.TypeReceipt, time.Now())))
	require.NoError(t, artifacts.Delete(ctx, "a1"))

	_, err := artifacts.GetByID(ctx, "a1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Unknown id is a no-op.
	assert.NoError(t, artifacts.Delete(ctx, "never-existed"))
}

func TestArtifactStore_NilMeta(t *testing.T) {
	store := setupTestStore(t)
	artifacts := store.Artifacts()
	ctx := context.Background()

	record := testRecord("a1", domain.TypeReceipt, time.Now().UTC().Truncate(time.Millisecond))
	record.Meta = nil
	require.NoError(t, artifacts.Put(ctx, record))

	got, err := artifacts.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Nil(t, got.Meta)
}
