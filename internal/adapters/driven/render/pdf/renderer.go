// Package pdf renders draft snapshots to A4 PDF documents.
// The layout mirrors the printed kvitto/offert forms: a bold heading,
// a metadata block, the line table and a totals block, with the note
// or terms at the page foot.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/skapa-labs/offerta-cli/internal/core/domain"
	"github.com/skapa-labs/offerta-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Layout coordinates, in millimetres on an A4 page.
const (
	marginLeft  = 14.0
	marginRight = 196.0
	pageBreakY  = 270.0
	footY       = 282.0
	lineHeight  = 6.0
)

// Renderer produces PDF artifacts with gofpdf.
type Renderer struct {
	// logoPath optionally points to a PNG printed top-right on offers.
	logoPath string
}

// NewRenderer creates a PDF renderer. logoPath may be empty.
func NewRenderer(logoPath string) *Renderer {
	return &Renderer{logoPath: logoPath}
}

// Render produces the PDF for a frozen draft snapshot.
func (r *Renderer) Render(_ context.Context, snap domain.DraftSnapshot) ([]byte, error) {
	if !snap.Type.IsValid() {
		return nil, domain.ErrUnsupportedType
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	if snap.Type == domain.TypeOffer && r.logoPath != "" {
		doc.ImageOptions(r.logoPath, 170, 1, 20, 20, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	header(doc, tr, snap.Type.Heading())
	y := metaBlock(doc, tr, snap)
	y = lineTable(doc, tr, snap.Items, y)
	totalsBlock(doc, tr, snap.Totals, y, snap.Currency)
	footBlock(doc, tr, snap)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// header prints the document heading and a rule under it.
func header(doc *gofpdf.Fpdf, tr func(string) string, title string) {
	doc.SetFont("Helvetica", "B", 18)
	doc.Text(marginLeft, 18, tr(title))

	doc.SetDrawColor(200, 200, 200)
	doc.SetLineWidth(0.2)
	doc.Line(marginLeft, 22, marginRight, 22)
}

// orDash substitutes the placeholder for blank metadata values.
func orDash(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "—"
	}
	return s
}

// metaBlock prints the kind-specific metadata fields and returns the y
// position where the line table starts.
func metaBlock(doc *gofpdf.Fpdf, tr func(string) string, snap domain.DraftSnapshot) float64 {
	doc.SetFont("Helvetica", "", 11)

	switch snap.Type {
	case domain.TypeReceipt:
		doc.Text(marginLeft, 32, tr("Butik/Företag: "+orDash(snap.Receipt.Store)))
		doc.Text(marginLeft, 38, tr("Datum: "+orDash(snap.Receipt.Date)))
		doc.Text(marginLeft, 44, tr("Betalmetod: "+orDash(snap.Receipt.PaymentMethod)))
		return 56
	default:
		doc.Text(marginLeft, 32, tr("Företag: "+orDash(snap.Offer.Company)))
		doc.Text(marginLeft, 38, tr("Offertnr: "+orDash(snap.Offer.OfferNo)))
		doc.Text(marginLeft, 44, tr("Kund: "+orDash(snap.Offer.Customer)))
		doc.Text(marginLeft, 50, tr("Datum: "+orDash(snap.Offer.Date)))
		return 62
	}
}

// lineTable prints the column headers and one row per line item,
// breaking to a fresh page when the table runs past the foot.
func lineTable(doc *gofpdf.Fpdf, tr func(string) string, items []domain.LineItem, y float64) float64 {
	doc.SetFont("Helvetica", "B", 11)
	doc.Text(marginLeft, y, tr("Beskrivning"))
	doc.Text(120, y, tr("Antal"))
	doc.Text(145, y, tr("Pris"))
	doc.Text(170, y, tr("Moms"))
	y += lineHeight

	doc.SetFont("Helvetica", "", 10)
	for _, item := range items {
		if y > pageBreakY {
			doc.AddPage()
			y = 20
		}
		desc := item.Description
		if strings.TrimSpace(desc) == "" {
			desc = "-"
		}
		doc.Text(marginLeft, y, tr(desc))
		doc.Text(120, y, tr(item.Quantity))
		doc.Text(145, y, domain.FormatAmount(domain.CoerceNumber(item.UnitPrice)))
		doc.Text(170, y, domain.FormatAmount(domain.CoerceNumber(item.TaxRate))+"%")
		y += lineHeight
	}
	return y + 4
}

// totalsBlock prints the subtotal, tax and grand total.
func totalsBlock(doc *gofpdf.Fpdf, tr func(string) string, totals domain.Totals, y float64, currency string) {
	doc.SetFont("Helvetica", "B", 11)
	doc.Text(130, y, tr("Subtotal:"))
	doc.Text(170, y, tr(domain.FormatAmount(totals.Subtotal)+" "+currency))
	y += lineHeight
	doc.Text(130, y, tr("Moms:"))
	doc.Text(170, y, tr(domain.FormatAmount(totals.TaxTotal)+" "+currency))
	y += 8

	doc.SetFontSize(12)
	doc.Text(130, y, tr("Total:"))
	doc.Text(170, y, tr(domain.FormatAmount(totals.GrandTotal)+" "+currency))
}

// footBlock prints the receipt note or offer terms at the page foot.
func footBlock(doc *gofpdf.Fpdf, tr func(string) string, snap domain.DraftSnapshot) {
	var label, text string
	switch snap.Type {
	case domain.TypeReceipt:
		label, text = "Notering:", snap.Receipt.Note
	default:
		label, text = "Villkor:", snap.Offer.Terms
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	doc.SetFont("Helvetica", "", 10)
	doc.Text(marginLeft, footY, tr(label))
	doc.SetXY(marginLeft, footY+2)
	doc.MultiCell(180, 5, tr(text), "", "L", false)
}
