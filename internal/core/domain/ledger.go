package domain

// DefaultTaxRate is the standard Swedish VAT rate prefilled on new lines.
// It is only a prefill; a cleared or invalid rate still coerces to 0.
const DefaultTaxRate = "25"

// LineItem is one row of a draft: a description plus quantity, unit price
// and tax rate. Field values are kept exactly as entered; numeric meaning
// is applied through CoerceNumber only when totals are computed.
type LineItem struct {
	// ID identifies the line within its ledger. Stable across removals
	// of other lines; never reused within one ledger.
	ID int

	// Description is free text and may be empty.
	Description string

	// Quantity is the raw quantity field value.
	Quantity string

	// UnitPrice is the raw unit price field value.
	UnitPrice string

	// TaxRate is the raw tax rate field value, in percent.
	TaxRate string
}

// Amount returns quantity x unit price for this line, coercing as needed.
func (l LineItem) Amount() float64 {
	return CoerceNumber(l.Quantity) * CoerceNumber(l.UnitPrice)
}

// Ledger is an insertion-ordered sequence of line items owned by one draft.
// Totals are always a pure function of the current items.
type Ledger struct {
	items      []LineItem
	nextID     int
	taxPrefill string
}

// NewLedger creates an empty ledger. New lines are prefilled with taxPrefill
// as their tax rate; pass "" to use DefaultTaxRate.
func NewLedger(taxPrefill string) Ledger {
	if taxPrefill == "" {
		taxPrefill = DefaultTaxRate
	}
	return Ledger{nextID: 1, taxPrefill: taxPrefill}
}

// AddItem appends a blank line (quantity 1, price 0, prefilled tax rate)
// and returns its id.
func (g *Ledger) AddItem() int {
	id := g.nextID
	g.nextID++
	g.items = append(g.items, LineItem{
		ID:        id,
		Quantity:  "1",
		UnitPrice: "0",
		TaxRate:   g.taxPrefill,
	})
	return id
}

// RemoveItem deletes the line with the given id.
// Removing an unknown id is a no-op, not an error. The ledger may shrink
// to zero lines during editing.
func (g *Ledger) RemoveItem(id int) {
	for i, item := range g.items {
		if item.ID == id {
			g.items = append(g.items[:i], g.items[i+1:]...)
			return
		}
	}
}

// SetItem replaces the field values of the line with the given id.
// The line keeps its id; an unknown id is a no-op.
func (g *Ledger) SetItem(id int, item LineItem) {
	for i := range g.items {
		if g.items[i].ID == id {
			item.ID = id
			g.items[i] = item
			return
		}
	}
}

// Item returns a copy of the line with the given id.
func (g *Ledger) Item(id int) (LineItem, bool) {
	for _, item := range g.items {
		if item.ID == id {
			return item, true
		}
	}
	return LineItem{}, false
}

// Items returns a point-in-time copy of the current lines, in order.
// Mutating the result does not affect the ledger.
func (g *Ledger) Items() []LineItem {
	out := make([]LineItem, len(g.items))
	copy(out, g.items)
	return out
}

// Len returns the number of lines.
func (g *Ledger) Len() int {
	return len(g.items)
}

// Totals recomputes the financial totals from the current lines.
// It never mutates state and never fails; invalid fields contribute 0.
func (g *Ledger) Totals() Totals {
	var sub, tax float64
	for _, item := range g.items {
		line := item.Amount()
		sub += line
		tax += line * (CoerceNumber(item.TaxRate) / 100)
	}
	return Totals{Subtotal: sub, TaxTotal: tax, GrandTotal: sub + tax}
}
