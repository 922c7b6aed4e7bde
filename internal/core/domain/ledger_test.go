package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_AddItem(t *testing.T) {
	ledger := NewLedger("")

	id := ledger.AddItem()
	require.Equal(t, 1, ledger.Len())

	item, ok := ledger.Item(id)
	require.True(t, ok)
	assert.Equal(t, "", item.Description)
	assert.Equal(t, "1", item.Quantity)
	assert.Equal(t, "0", item.UnitPrice)
	assert.Equal(t, DefaultTaxRate, item.TaxRate)

	// Ids are unique and stable.
	id2 := ledger.AddItem()
	assert.NotEqual(t, id, id2)
}

func TestLedger_AddItemTaxPrefill(t *testing.T) {
	ledger := NewLedger("12")
	id := ledger.AddItem()

	item, ok := ledger.Item(id)
	require.True(t, ok)
	assert.Equal(t, "12", item.TaxRate)
}

func TestLedger_RemoveItem(t *testing.T) {
	ledger := NewLedger("")
	id1 := ledger.AddItem()
	id2 := ledger.AddItem()

	ledger.RemoveItem(id1)
	assert.Equal(t, 1, ledger.Len())

	_, ok := ledger.Item(id1)
	assert.False(t, ok)
	_, ok = ledger.Item(id2)
	assert.True(t, ok)

	// Editing may empty the ledger entirely.
	ledger.RemoveItem(id2)
	assert.Equal(t, 0, ledger.Len())
}

func TestLedger_RemoveUnknownIsNoOp(t *testing.T) {
	ledger := NewLedger("")
	id := ledger.AddItem()
	ledger.SetItem(id, LineItem{Quantity: "2", UnitPrice: "10", TaxRate: "25"})
	before := ledger.Totals()

	ledger.RemoveItem(9999)

	assert.Equal(t, 1, ledger.Len())
	assert.Equal(t, before, ledger.Totals())
}

func TestLedger_Totals(t *testing.T) {
	ledger := NewLedger("")
	id1 := ledger.AddItem()
	id2 := ledger.AddItem()
	ledger.SetItem(id1, LineItem{Description: "Arbete", Quantity: "2", UnitPrice: "10", TaxRate: "25"})
	ledger.SetItem(id2, LineItem{Description: "Vara", Quantity: "1", UnitPrice: "5", TaxRate: "0"})

	totals := ledger.Totals()
	assert.Equal(t, "25.00", FormatAmount(totals.Subtotal))
	assert.Equal(t, "5.00", FormatAmount(totals.TaxTotal))
	assert.Equal(t, "30.00", FormatAmount(totals.GrandTotal))
}

func TestLedger_TotalsInvariant(t *testing.T) {
	ledger := NewLedger("")
	for i := 0; i < 10; i++ {
		id := ledger.AddItem()
		ledger.SetItem(id, LineItem{Quantity: "3", UnitPrice: "7.77", TaxRate: "12.5"})
		if i%3 == 0 {
			ledger.RemoveItem(id)
		}
	}

	totals := ledger.Totals()
	// Exact float equality: GrandTotal is computed as the same sum.
	assert.Equal(t, totals.Subtotal+totals.TaxTotal, totals.GrandTotal)
}

func TestLedger_TotalsCoercion(t *testing.T) {
	ledger := NewLedger("")
	id := ledger.AddItem()
	ledger.SetItem(id, LineItem{Quantity: "", UnitPrice: "abc", TaxRate: "x"})

	totals := ledger.Totals()
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.TaxTotal)
	assert.Zero(t, totals.GrandTotal)
}

func TestLedger_TotalsEmptyLedger(t *testing.T) {
	ledger := NewLedger("")
	assert.Equal(t, Totals{}, ledger.Totals())
}

func TestLedger_ItemsIsDetachedCopy(t *testing.T) {
	ledger := NewLedger("")
	id := ledger.AddItem()

	items := ledger.Items()
	require.Len(t, items, 1)
	items[0].UnitPrice = "999"

	item, ok := ledger.Item(id)
	require.True(t, ok)
	assert.Equal(t, "0", item.UnitPrice)
}

func TestLedger_SetItemKeepsID(t *testing.T) {
	ledger := NewLedger("")
	id := ledger.AddItem()

	ledger.SetItem(id, LineItem{ID: 42, Description: "Material"})

	item, ok := ledger.Item(id)
	require.True(t, ok)
	assert.Equal(t, id, item.ID)
	assert.Equal(t, "Material", item.Description)

	// Unknown id is a no-op.
	ledger.SetItem(9999, LineItem{Description: "ghost"})
	assert.Equal(t, 1, ledger.Len())
}
