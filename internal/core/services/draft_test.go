package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skapa-labs/offerta-cli/internal/core/domain"
)

func TestNewDraftService(t *testing.T) {
	svc := NewDraftService(nil)
	require.NotNil(t, svc)

	receipt, err := svc.Draft(domain.TypeReceipt)
	require.NoError(t, err)
	assert.Equal(t, 1, receipt.Ledger.Len())
	assert.Equal(t, "Kort", receipt.Receipt.PaymentMethod)

	offer, err := svc.Draft(domain.TypeOffer)
	require.NoError(t, err)
	assert.Equal(t, 1, offer.Ledger.Len())
}

func TestDraftService_UnknownType(t *testing.T) {
	svc := NewDraftService(nil)

	_, err := svc.Draft(domain.DocumentType("invoice"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	_, err = svc.AddLine(domain.DocumentType("invoice"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	_, err = svc.Totals(domain.DocumentType("invoice"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestDraftService_AddRemoveLine(t *testing.T) {
	svc := NewDraftService(nil)

	id, err := svc.AddLine(domain.TypeReceipt)
	require.NoError(t, err)

	draft, err := svc.Draft(domain.TypeReceipt)
	require.NoError(t, err)
	assert.Equal(t, 2, draft.Ledger.Len())

	require.NoError(t, svc.RemoveLine(domain.TypeReceipt, id))
	assert.Equal(t, 1, draft.Ledger.Len())

	// Drafts are independent per type.
	offer, err := svc.Draft(domain.TypeOffer)
	require.NoError(t, err)
	assert.Equal(t, 1, offer.Ledger.Len())
}

func TestDraftService_TotalsAfterEveryMutation(t *testing.T) {
	svc := NewDraftService(nil)

	id, err := svc.AddLine(domain.TypeOffer)
	require.NoError(t, err)
	require.NoError(t, svc.SetLine(domain.TypeOffer, id, domain.LineItem{
		Quantity: "2", UnitPrice: "10", TaxRate: "25",
	}))

	totals, err := svc.Totals(domain.TypeOffer)
	require.NoError(t, err)
	assert.InDelta(t, 20, totals.Subtotal, 1e-9)
	assert.InDelta(t, 25, totals.GrandTotal, 1e-9)

	require.NoError(t, svc.RemoveLine(domain.TypeOffer, id))
	totals, err = svc.Totals(domain.TypeOffer)
	require.NoError(t, err)
	assert.Zero(t, totals.GrandTotal)
}

func TestDraftService_Reset(t *testing.T) {
	svc := NewDraftService(nil)

	draft, err := svc.Draft(domain.TypeReceipt)
	require.NoError(t, err)
	draft.Receipt.Store = "Butiken"
	for i := 0; i < 3; i++ {
		_, err = svc.AddLine(domain.TypeReceipt)
		require.NoError(t, err)
	}

	require.NoError(t, svc.Reset(domain.TypeReceipt))
	assert.Equal(t, 1, draft.Ledger.Len())
	assert.Equal(t, "", draft.Receipt.Store)
}
