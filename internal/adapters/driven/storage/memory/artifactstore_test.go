package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skapa-labs/offerta-cli/internal/core/domain"
)

func testRecord(id string, t domain.DocumentType, createdAt time.Time) *domain.ArtifactRecord {
	return &domain.ArtifactRecord{
		ID:        id,
		Type:      t,
		Title:     "Test " + id,
		FileName:  id + ".pdf",
		CreatedAt: createdAt,
		Meta:      map[string]any{"currency": "SEK"},
		Blob:      []byte("%PDF-" + id),
	}
}

func TestArtifactStore_PutGet(t *testing.T) {
	store := NewArtifactStore()
	ctx := context.Background()
	now := time.Now().UTC()

	record := testRecord("a1", domain.TypeReceipt, now)
	require.NoError(t, store.Put(ctx, record))

	got, err := store.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, record.Title, got.Title)
	assert.Equal(t, record.Blob, got.Blob)

	// Stored record is detached from caller-held slices.
	record.Blob[0] = 'X'
	got2, err := store.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, byte('%'), got2.Blob[0])
}

func TestArtifactStore_GetMissing(t *testing.T) {
	store := NewArtifactStore()

	_, err := store.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArtifactStore_ListByType(t *testing.T) {
	store := NewArtifactStore()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.Put(ctx, testRecord("r1", domain.TypeReceipt, now)))
	require.NoError(t, store.Put(ctx, testRecord("o1", domain.TypeOffer, now.Add(time.Second))))
	require.NoError(t, store.Put(ctx, testRecord("r2", domain.TypeReceipt, now.Add(2*time.Second))))

	receipts, err := store.ListByType(ctx, domain.TypeReceipt)
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	for _, r := range receipts {
		assert.Equal(t, domain.TypeReceipt, r.Type)
	}
	assert.Equal(t, "r2", receipts[0].ID)
}

func TestArtifactStore_ListRecent(t *testing.T) {
	store := NewArtifactStore()
	ctx := context.Background()
	now := time.Now().UTC()

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Put(ctx, testRecord(id, domain.TypeOffer, now.Add(time.Duration(i)*time.Second))))
	}

	recent, err := store.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].ID)
	assert.Equal(t, "b", recent[1].ID)

	all, err := store.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestArtifactStore_Delete(t *testing.T) {
	store := NewArtifactStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, testRecord("a1", domain.TypeReceipt, time.Now())))
	require.NoError(t, store.Delete(ctx, "a1"))

	_, err := store.GetByID(ctx, "a1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Unknown id is a no-op.
	assert.NoError(t, store.Delete(ctx, "missing"))
}
