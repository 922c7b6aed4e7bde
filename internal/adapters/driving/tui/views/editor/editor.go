// Package editor provides the draft editing view for the TUI.
package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skapa-labs/offerta-cli/internal/adapters/driving/tui/messages"
	"github.com/skapa-labs/offerta-cli/internal/adapters/driving/tui/styles"
	"github.com/skapa-labs/offerta-cli/internal/core/domain"
	"github.com/skapa-labs/offerta-cli/internal/core/ports/driving"
)

// Number of inputs per line row: description, quantity, price, tax.
const lineFieldCount = 4

// lineRow holds the inputs for one ledger line.
type lineRow struct {
	id     int
	fields [lineFieldCount]textinput.Model
}

// View is the draft editor. It edits one draft at a time and can switch
// between the receipt and the offer draft without losing either.
type View struct {
	styles        *styles.Styles
	draftService  driving.DraftService
	exportService driving.ExportService

	docType domain.DocumentType
	header  []textinput.Model
	lines   []lineRow

	// focus is a flat index over header inputs followed by line inputs.
	focus int

	status string
	err    error

	width  int
	height int
	ready  bool
}

// NewView creates a new editor view showing the receipt draft.
func NewView(s *styles.Styles, draftService driving.DraftService, exportService driving.ExportService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:        s,
		draftService:  draftService,
		exportService: exportService,
		docType:       domain.TypeReceipt,
	}
	v.rebuild()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// DocType returns the document type currently being edited.
func (v *View) DocType() domain.DocumentType {
	return v.docType
}

// Err returns the last error, if any.
func (v *View) Err() error {
	return v.err
}

// headerLabels returns the field labels for the current document type.
func (v *View) headerLabels() []string {
	if v.docType == domain.TypeOffer {
		return []string{"Företag", "Offertnr", "Kund", "Datum", "Villkor"}
	}
	return []string{"Butik/Företag", "Datum", "Betalmetod", "Valuta", "Notering"}
}

// headerValues reads the current header field values from the draft.
func (v *View) headerValues(d *domain.Draft) []string {
	if v.docType == domain.TypeOffer {
		o := d.Offer
		return []string{o.Company, o.OfferNo, o.Customer, o.Date, o.Terms}
	}
	r := d.Receipt
	return []string{r.Store, r.Date, r.PaymentMethod, r.Currency, r.Note}
}

// rebuild recreates all inputs from the draft's current state. Called on
// construction, after a reset and after switching document type.
func (v *View) rebuild() {
	v.header = nil
	v.lines = nil
	v.focus = 0

	if v.draftService == nil {
		return
	}
	draft, err := v.draftService.Draft(v.docType)
	if err != nil {
		v.err = err
		return
	}

	labels := v.headerLabels()
	values := v.headerValues(draft)
	for i := range labels {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 128
		ti.Width = 32
		ti.SetValue(values[i])
		v.header = append(v.header, ti)
	}

	for _, item := range draft.Ledger.Items() {
		v.lines = append(v.lines, newLineRow(item))
	}

	v.applyFocus()
}

// newLineRow builds the four inputs for one ledger line.
func newLineRow(item domain.LineItem) lineRow {
	row := lineRow{id: item.ID}
	placeholders := [lineFieldCount]string{"Beskrivning", "Antal", "Pris", "Moms %"}
	values := [lineFieldCount]string{item.Description, item.Quantity, item.UnitPrice, item.TaxRate}
	widths := [lineFieldCount]int{28, 6, 10, 6}

	for i := range row.fields {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = widths[i]
		ti.SetValue(values[i])
		row.fields[i] = ti
	}
	return row
}

// focusCount is the number of focusable inputs.
func (v *View) focusCount() int {
	return len(v.header) + len(v.lines)*lineFieldCount
}

// applyFocus focuses the input at v.focus and blurs everything else.
func (v *View) applyFocus() {
	idx := 0
	for i := range v.header {
		if idx == v.focus {
			v.header[i].Focus()
		} else {
			v.header[i].Blur()
		}
		idx++
	}
	for r := range v.lines {
		for f := range v.lines[r].fields {
			if idx == v.focus {
				v.lines[r].fields[f].Focus()
			} else {
				v.lines[r].fields[f].Blur()
			}
			idx++
		}
	}
}

// focusedLine returns the index into v.lines of the focused row, or -1
// if a header field is focused.
func (v *View) focusedLine() int {
	if v.focus < len(v.header) {
		return -1
	}
	return (v.focus - len(v.header)) / lineFieldCount
}

// Update handles messages for the editor view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.ExportCompleted:
		if msg.Err != nil {
			v.err = msg.Err
			v.status = ""
		} else {
			v.err = nil
			v.status = fmt.Sprintf("Sparad: %s", msg.Record.FileName)
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		if n := v.focusCount(); n > 0 {
			v.focus = (v.focus + 1) % n
			v.applyFocus()
		}
		return v, nil

	case "shift+tab", "up":
		if n := v.focusCount(); n > 0 {
			v.focus = (v.focus - 1 + n) % n
			v.applyFocus()
		}
		return v, nil

	case "ctrl+n":
		return v.addLine()

	case "ctrl+d":
		return v.removeLine()

	case "ctrl+r":
		return v.reset()

	case "ctrl+t":
		return v.switchType()

	case "ctrl+s":
		v.status = "Sparar..."
		return v, v.exportDraft()
	}

	// Everything else goes to the focused input.
	return v.updateFocusedInput(msg)
}

// updateFocusedInput forwards a message to the focused input and writes
// the new value back into the draft.
func (v *View) updateFocusedInput(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd

	idx := 0
	for i := range v.header {
		if idx == v.focus {
			v.header[i], cmd = v.header[i].Update(msg)
			v.syncHeader()
			return v, cmd
		}
		idx++
	}
	for r := range v.lines {
		for f := range v.lines[r].fields {
			if idx == v.focus {
				v.lines[r].fields[f], cmd = v.lines[r].fields[f].Update(msg)
				v.syncLine(r)
				return v, cmd
			}
			idx++
		}
	}

	return v, nil
}

// syncHeader writes the header input values into the draft.
func (v *View) syncHeader() {
	draft, err := v.draftService.Draft(v.docType)
	if err != nil {
		v.err = err
		return
	}

	if v.docType == domain.TypeOffer {
		draft.Offer.Company = v.header[0].Value()
		draft.Offer.OfferNo = v.header[1].Value()
		draft.Offer.Customer = v.header[2].Value()
		draft.Offer.Date = v.header[3].Value()
		draft.Offer.Terms = v.header[4].Value()
		return
	}
	draft.Receipt.Store = v.header[0].Value()
	draft.Receipt.Date = v.header[1].Value()
	draft.Receipt.PaymentMethod = v.header[2].Value()
	draft.Receipt.Currency = v.header[3].Value()
	draft.Receipt.Note = v.header[4].Value()
}

// syncLine writes one row's input values into the draft.
func (v *View) syncLine(r int) {
	row := v.lines[r]
	err := v.draftService.SetLine(v.docType, row.id, domain.LineItem{
		Description: row.fields[0].Value(),
		Quantity:    row.fields[1].Value(),
		UnitPrice:   row.fields[2].Value(),
		TaxRate:     row.fields[3].Value(),
	})
	if err != nil {
		v.err = err
	}
}

// addLine appends a blank line and focuses its description field.
func (v *View) addLine() (*View, tea.Cmd) {
	id, err := v.draftService.AddLine(v.docType)
	if err != nil {
		v.err = err
		return v, nil
	}

	draft, err := v.draftService.Draft(v.docType)
	if err != nil {
		v.err = err
		return v, nil
	}
	item, ok := draft.Ledger.Item(id)
	if !ok {
		return v, nil
	}

	v.lines = append(v.lines, newLineRow(item))
	v.focus = len(v.header) + (len(v.lines)-1)*lineFieldCount
	v.applyFocus()
	return v, nil
}

// removeLine deletes the focused row. Header focus is a no-op.
func (v *View) removeLine() (*View, tea.Cmd) {
	r := v.focusedLine()
	if r < 0 {
		return v, nil
	}

	if err := v.draftService.RemoveLine(v.docType, v.lines[r].id); err != nil {
		v.err = err
		return v, nil
	}

	v.lines = append(v.lines[:r], v.lines[r+1:]...)
	if v.focus >= v.focusCount() {
		v.focus = 0
	}
	v.applyFocus()
	return v, nil
}

// reset discards the draft and rebuilds the form.
func (v *View) reset() (*View, tea.Cmd) {
	if err := v.draftService.Reset(v.docType); err != nil {
		v.err = err
		return v, nil
	}
	v.status = ""
	v.err = nil
	v.rebuild()
	return v, nil
}

// switchType toggles between the receipt and the offer draft.
func (v *View) switchType() (*View, tea.Cmd) {
	if v.docType == domain.TypeReceipt {
		v.docType = domain.TypeOffer
	} else {
		v.docType = domain.TypeReceipt
	}
	v.status = ""
	v.err = nil
	v.rebuild()
	return v, nil
}

// exportDraft returns a command that renders and archives the draft.
// The snapshot is taken here, on the event loop, so keystrokes handled
// while the save runs in the background cannot reach the record.
func (v *View) exportDraft() tea.Cmd {
	if v.exportService == nil || v.draftService == nil {
		return func() tea.Msg {
			return messages.ExportCompleted{Err: fmt.Errorf("export service not available")}
		}
	}

	draft, err := v.draftService.Draft(v.docType)
	if err != nil {
		return func() tea.Msg {
			return messages.ExportCompleted{Err: err}
		}
	}
	snap := draft.Snapshot()

	return func() tea.Msg {
		record, err := v.exportService.ExportSnapshot(context.Background(), snap)
		return messages.ExportCompleted{Record: record, Err: err}
	}
}

// View renders the editor.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.docType.Heading()))
	b.WriteString("\n\n")

	labels := v.headerLabels()
	for i := range v.header {
		b.WriteString(v.styles.FieldLabel.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(v.header[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(v.styles.Subtitle.Render("Rader"))
	b.WriteString("\n")
	if len(v.lines) == 0 {
		b.WriteString(v.styles.Muted.Render("Inga rader. Ctrl+N lägger till en."))
		b.WriteString("\n")
	}
	for r := range v.lines {
		for f := range v.lines[r].fields {
			b.WriteString(v.lines[r].fields[f].View())
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(v.renderTotals())
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Fel: %v", v.err)))
		b.WriteString("\n")
	} else if v.status != "" {
		b.WriteString(v.styles.Success.Render(v.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(
		"Tab: nästa fält • Ctrl+N: ny rad • Ctrl+D: ta bort rad • Ctrl+R: rensa • Ctrl+S: spara PDF • Ctrl+T: kvitto/offert • Ctrl+A: arkiv"))

	return b.String()
}

// renderTotals renders the running totals footer.
func (v *View) renderTotals() string {
	if v.draftService == nil {
		return ""
	}
	totals, err := v.draftService.Totals(v.docType)
	if err != nil {
		return ""
	}

	currency := "SEK"
	if draft, derr := v.draftService.Draft(v.docType); derr == nil {
		currency = draft.Currency()
	}

	return v.styles.Totals.Render(fmt.Sprintf(
		"Subtotal: %s  Moms: %s  Total: %s %s",
		domain.FormatAmount(totals.Subtotal),
		domain.FormatAmount(totals.TaxTotal),
		domain.FormatAmount(totals.GrandTotal),
		currency,
	))
}
