// Package gofpdf renders the fixed-layout A4 quotation document.
package gofpdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"

	"github.com/ellin72/Elquote/internal/domain/quotation"
	"github.com/ellin72/Elquote/internal/domain/quotation/pdf"
)

type Generator struct {
	company pdf.Company
	assets  pdf.Assets
	log     *logrus.Logger
}

func New(company pdf.Company, assets pdf.Assets, log *logrus.Logger) *Generator {
	return &Generator{company: company, assets: assets, log: log}
}

// Generate lays the quotation out on a single A4 page in one sequential
// pass. Every sub-step degrades gracefully (missing asset, bad date,
// insufficient space); the only failure surface is serializing the
// finished document.
func (g *Generator) Generate(req quotation.Request, totals quotation.Totals, quoteID int64) ([]byte, error) {
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetTitle("Quotation", false)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	pageW, pageH := doc.GetPageSize()
	contentW := pageW - 2*pageMargin

	g.drawLogo(doc)
	g.drawHeader(doc, contentW)
	lineY := g.drawMeta(doc, contentW, req.QuotationDate, quoteID)
	clientTop := lineY + 18
	g.drawClientBlock(doc, req, clientTop)
	y := g.drawItemsTable(doc, contentW, req.Items, clientTop+80)
	y = g.drawTotals(doc, contentW, req, totals, y)
	g.drawSignatures(doc, contentW, pageH, y)
	g.drawPaymentMarker(doc, pageW, pageH)
	g.drawFooter(doc, pageW, pageH)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		g.log.WithError(err).Error("quotation pdf output failed")
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawLogo paints the circular brand disc, then the raster logo clipped
// inside it. Every asset failure path converges on the monogram.
func (g *Generator) drawLogo(doc *gofpdf.Fpdf) {
	cx := pageMargin + logoRadius - 5

	doc.SetFillColor(169, 68, 66) // #A94442
	doc.Circle(cx, logoCenterY, logoRadius, "F")

	if img, ok := loadImagePNG(g.assets.LogoPath); ok {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		doc.RegisterImageOptionsReader("company-logo", opts, bytes.NewReader(img))
		doc.ClipCircle(cx, logoCenterY, logoRadius, false)
		d := logoRadius * 2
		doc.ImageOptions("company-logo", cx-logoRadius, logoCenterY-logoRadius, d, d, false, opts, 0, "")
		doc.ClipEnd()
		return
	}

	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 36)
	writeAt(doc, cx-25, logoCenterY-22, 50, 40, "C", g.monogram())
}

func (g *Generator) monogram() string {
	name := strings.TrimSpace(g.company.Name)
	if name == "" {
		return "Q"
	}
	return strings.ToUpper(string([]rune(name)[0]))
}

func (g *Generator) drawHeader(doc *gofpdf.Fpdf, contentW float64) {
	nameX := pageMargin + logoRadius*2

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", 20)
	writeAt(doc, nameX, headerTopY, contentW-logoRadius*2, 22, "L", strings.ToUpper(g.company.Name))

	doc.SetFont("Helvetica", "I", 10)
	writeAt(doc, nameX, headerTopY+22, contentW-logoRadius*2, 12, "L", g.company.Tagline)

	doc.SetTextColor(44, 62, 80) // #2C3E50
	doc.SetFont("Helvetica", "B", 24)
	writeAt(doc, pageMargin, headerTopY+5, contentW, 26, "R", "QUOTATION")
}

// drawMeta writes the contact rows, the document date and the QT-<id>
// identifier, then the divider line. Returns the divider's y position.
func (g *Generator) drawMeta(doc *gofpdf.Fpdf, contentW float64, rawDate string, quoteID int64) float64 {
	contactY := headerTopY + 40

	x := writeLabel(doc, pageMargin, contactY, "Phone: ")
	x = writeValue(doc, x, contactY, g.company.Phone)
	doc.SetTextColor(153, 153, 153)
	x = writeInline(doc, x, contactY, "  |  ")
	x = writeLabel(doc, x, contactY, "Email: ")
	writeValue(doc, x, contactY, g.company.Email)

	metaY := contactY + 14
	x = writeLabel(doc, pageMargin, metaY, "Website: ")
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(26, 95, 180) // #1A5FB4
	writeInline(doc, x, metaY, g.company.Website)

	quoteDate := parseQuoteDate(rawDate).Format("January 2, 2006")
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 9)
	writeAt(doc, pageMargin+contentW/2, metaY, contentW/2, 11, "R", quoteDate)

	doc.SetFont("Helvetica", "I", 9)
	writeAt(doc, pageMargin+contentW/2, metaY+12, contentW/2, 11, "R", fmt.Sprintf("Quotation ID: QT-%d", quoteID))

	lineY := metaY + 26
	doc.SetDrawColor(153, 153, 153)
	doc.SetLineWidth(1)
	doc.Line(pageMargin, lineY, pageMargin+contentW, lineY)
	return lineY
}

func (g *Generator) drawClientBlock(doc *gofpdf.Fpdf, req quotation.Request, top float64) {
	doc.SetTextColor(44, 62, 80)
	doc.SetFont("Helvetica", "B", 11)
	writeAt(doc, pageMargin, top, 300, 13, "L", "CLIENT INFORMATION")

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 9)
	writeAt(doc, pageMargin, top+20, 400, 11, "L", "Name:  "+req.ClientName)
	writeAt(doc, pageMargin, top+35, 400, 11, "L", "Email:  "+req.ClientEmail)
	writeAt(doc, pageMargin, top+50, 400, 11, "L", "Phone:  "+req.ClientPhone)
}

// drawItemsTable renders the header band and one row per item, stepping
// density down with the item count. Returns the y position of the
// divider drawn under the last row.
func (g *Generator) drawItemsTable(doc *gofpdf.Fpdf, contentW float64, items []quotation.LineItem, tableTop float64) float64 {
	doc.SetFillColor(244, 244, 248) // #F4F4F8
	doc.Rect(pageMargin, tableTop-5, contentW, 25, "F")

	doc.SetTextColor(44, 62, 80)
	doc.SetFont("Helvetica", "B", 10)
	writeAt(doc, pageMargin+10, tableTop+5, 190, 12, "L", "Description")
	writeAt(doc, 250, tableTop+5, 60, 12, "R", "Qty")
	writeAt(doc, 310, tableTop+5, 80, 12, "R", "Unit Price")
	writeAt(doc, 450, tableTop+5, 95, 12, "R", "Total")

	tier := tierFor(len(items))
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", tier.fontSize)

	y := tableTop + 30
	for _, it := range items {
		desc := fitToWidth(doc, it.Name+" - "+it.Description, 190)
		writeAt(doc, pageMargin+10, y, 190, tier.rowHeight, "L", desc)
		writeAt(doc, 250, y, 60, tier.rowHeight, "R", formatQty(it.Quantity.Value))
		writeAt(doc, 310, y, 80, tier.rowHeight, "R", quotation.FormatCurrency(it.UnitPrice.Value))
		writeAt(doc, 450, y, 95, tier.rowHeight, "R", quotation.FormatCurrency(it.Total()))
		y += tier.rowHeight
	}

	y += 10
	doc.SetDrawColor(208, 211, 220) // #D0D3DC
	doc.SetLineWidth(1)
	doc.Line(pageMargin, y, pageMargin+contentW, y)
	return y
}

// drawTotals writes the right-hand totals column. The discount row is
// omitted entirely unless a non-zero discount is present. Returns the y
// position after the grand total row.
func (g *Generator) drawTotals(doc *gofpdf.Fpdf, contentW float64, req quotation.Request, totals quotation.Totals, y float64) float64 {
	labelX := pageMargin + contentW/2 + 10
	valueW := contentW/2 - 10

	y += 20
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)

	writeAt(doc, labelX, y, 120, 12, "L", "Subtotal:")
	writeAt(doc, labelX, y, valueW, 12, "R", quotation.FormatCurrency(totals.Subtotal))
	y += 18

	if discount := req.EffectiveDiscountPercent(); discount > 0 {
		writeAt(doc, labelX, y, 120, 12, "L", fmt.Sprintf("Discount (%s%%):", formatRate(discount)))
		writeAt(doc, labelX, y, valueW, 12, "R", "-"+quotation.FormatCurrency(totals.DiscountAmount))
		y += 18
	}

	writeAt(doc, labelX, y, 120, 12, "L", fmt.Sprintf("Tax (%s%%):", formatRate(req.EffectiveTaxPercent())))
	writeAt(doc, labelX, y, valueW, 12, "R", quotation.FormatCurrency(totals.TaxAmount))

	y += 22
	doc.SetDrawColor(208, 211, 220)
	doc.SetLineWidth(1)
	doc.Line(labelX, y, pageMargin+contentW, y)
	y += 10

	doc.SetTextColor(44, 62, 80)
	doc.SetFont("Helvetica", "B", 11)
	writeAt(doc, labelX, y, 120, 13, "L", "GRAND TOTAL:")
	writeAt(doc, labelX, y, valueW, 13, "R", quotation.FormatCurrency(totals.GrandTotal))
	return y + 13
}

// drawSignatures places the acceptance note and the two-column signature
// area, but only when enough vertical space remains above the footer;
// otherwise the whole block is omitted rather than overflowing.
func (g *Generator) drawSignatures(doc *gofpdf.Fpdf, contentW, pageH, y float64) {
	y += 26
	doc.SetTextColor(102, 102, 102)
	doc.SetFont("Helvetica", "I", 8)
	writeAt(doc, pageMargin, y, contentW, 10, "C",
		"To accept this quotation, please sign below and return a copy to our office.")

	top := y + 24
	if !signatureFits(top, pageH) {
		return
	}

	doc.SetTextColor(44, 62, 80)
	doc.SetFont("Helvetica", "B", 11)
	writeAt(doc, pageMargin, top, contentW, 13, "C", "APPROVAL & SIGNATURE")
	top += 18

	leftX := pageMargin + 20
	rightX := pageMargin + contentW/2 + 20
	g.drawSignatureColumn(doc, leftX, top, "Customer/Client")
	g.drawSignatureColumn(doc, rightX, top, g.company.Name+" Representative")
}

func (g *Generator) drawSignatureColumn(doc *gofpdf.Fpdf, x, top float64, title string) {
	const lineLen = 140

	doc.SetTextColor(44, 62, 80)
	doc.SetFont("Helvetica", "B", 9)
	writeAt(doc, x, top, lineLen+40, 11, "L", title)

	doc.SetDrawColor(208, 211, 220)
	doc.SetLineWidth(1)
	doc.Line(x, top+20, x+lineLen, top+20)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "I", 8)
	writeAt(doc, x, top+24, lineLen, 10, "L", "Signature:")

	doc.Line(x, top+42, x+lineLen, top+42)
	writeAt(doc, x, top+46, lineLen, 10, "L", "Date:")
}

// drawPaymentMarker draws the payment QR at a fixed bottom-right
// position, independent of how much content precedes it. A pre-rendered
// asset wins; otherwise the configured payment reference is encoded on
// the fly; with neither, the marker is skipped.
func (g *Generator) drawPaymentMarker(doc *gofpdf.Fpdf, pageW, pageH float64) {
	img, ok := loadImagePNG(g.assets.PaymentQRPath)
	if !ok {
		if g.assets.PaymentReference == "" {
			return
		}
		generated, err := paymentQRPNG(g.assets.PaymentReference, 256)
		if err != nil {
			g.log.WithError(err).Debug("payment qr generation skipped")
			return
		}
		img = generated
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("payment-qr", opts, bytes.NewReader(img))
	x := pageW - pageMargin - qrSize
	y := pageH - qrBottomOffset - qrSize
	doc.ImageOptions("payment-qr", x, y, qrSize, qrSize, false, opts, 0, "")
}

// drawFooter writes the validity/contact line on the last page of the
// document, retargeting and restoring the page context as needed.
func (g *Generator) drawFooter(doc *gofpdf.Fpdf, pageW, pageH float64) {
	last := doc.PageCount()
	cur := doc.PageNo()
	if cur != last {
		doc.SetPage(last)
	}

	footerY := pageH - 40
	doc.SetDrawColor(204, 204, 204) // #cccccc
	doc.SetLineWidth(1)
	doc.Line(pageMargin, footerY, pageW-pageMargin, footerY)

	doc.SetTextColor(102, 102, 102)
	doc.SetFont("Helvetica", "I", 7)
	writeAt(doc, pageMargin, footerY+5, pageW-2*pageMargin, 9, "C", fmt.Sprintf(
		"%s | This quotation is valid for 30 days from the date of issue. | Contact: %s | %s",
		g.company.Tagline, g.company.Phone, g.company.Email))

	if cur != last {
		doc.SetPage(cur)
	}
}

// writeAt places a single cell at absolute coordinates.
func writeAt(doc *gofpdf.Fpdf, x, y, w, h float64, align, s string) {
	doc.SetXY(x, y)
	doc.CellFormat(w, h, s, "", 0, align, false, 0, "")
}

// writeInline writes s at (x, y) and returns the x after it.
func writeInline(doc *gofpdf.Fpdf, x, y float64, s string) float64 {
	w := doc.GetStringWidth(s)
	writeAt(doc, x, y, w, 11, "L", s)
	return x + w
}

func writeLabel(doc *gofpdf.Fpdf, x, y float64, s string) float64 {
	doc.SetFont("Helvetica", "B", 9)
	doc.SetTextColor(44, 62, 80)
	return writeInline(doc, x, y, s)
}

func writeValue(doc *gofpdf.Fpdf, x, y float64, s string) float64 {
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(0, 0, 0)
	return writeInline(doc, x, y, s)
}

// fitToWidth truncates s so it fits maxW at the current font settings.
func fitToWidth(doc *gofpdf.Fpdf, s string, maxW float64) string {
	if doc.GetStringWidth(s) <= maxW {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && doc.GetStringWidth(string(r)+"...") > maxW {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
