package gofpdf

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ellin72/Elquote/internal/domain/quotation"
	"github.com/ellin72/Elquote/internal/domain/quotation/pdf"
)

func testGenerator() *Generator {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return New(
		pdf.Company{
			Name:    "Elcorp Namibia",
			Tagline: "Professional Business Solutions",
			Phone:   "+264 81 7244041",
			Email:   "elcorpnamibia@gmail.com",
			Website: "https://elli-portfolio.vercel.app/",
		},
		pdf.Assets{LogoPath: "testdata/missing.png"},
		log,
	)
}

func num(v float64) quotation.Number { return quotation.Number{Value: v, Valid: true} }

func sampleRequest(itemCount int) quotation.Request {
	req := quotation.Request{
		ClientName:    "Jane Client",
		ClientEmail:   "jane@example.com",
		ClientPhone:   "+264 81 0000000",
		QuotationDate: "2026-03-01",
		TaxPercent:    num(15),
	}
	for i := 0; i < itemCount; i++ {
		req.Items = append(req.Items, quotation.LineItem{
			Name:        fmt.Sprintf("Service %d", i+1),
			Description: "professional work",
			Quantity:    num(2),
			UnitPrice:   num(50),
		})
	}
	return req
}

func TestGenerate_ProducesPDF(t *testing.T) {
	tests := []struct {
		name      string
		itemCount int
		discount  float64
	}{
		{"single item", 1, 0},
		{"full tier", 8, 0},
		{"medium tier with discount", 12, 10},
		{"compact tier", 20, 5},
	}

	g := testGenerator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest(tt.itemCount)
			if tt.discount > 0 {
				req.DiscountPercent = num(tt.discount)
			}
			out, err := g.Generate(req, req.Totals(), 1756000000000)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if !bytes.HasPrefix(out, []byte("%PDF")) {
				t.Errorf("output does not start with %%PDF header")
			}
			if len(out) < 1000 {
				t.Errorf("suspiciously small document: %d bytes", len(out))
			}
		})
	}
}

func TestGenerate_BadDateStillRenders(t *testing.T) {
	g := testGenerator()
	req := sampleRequest(2)
	req.QuotationDate = "not a date"

	out, err := g.Generate(req, req.Totals(), 42)
	if err != nil {
		t.Fatalf("Generate with bad date: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestGenerate_PaymentReferenceQR(t *testing.T) {
	g := testGenerator()
	g.assets.PaymentReference = "PAY-ELCORP-001"

	req := sampleRequest(1)
	out, err := g.Generate(req, req.Totals(), 7)
	if err != nil {
		t.Fatalf("Generate with QR: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		count    int
		wantRow  float64
		wantFont float64
	}{
		{1, 20, 9},
		{8, 20, 9},
		{9, 15, 8},
		{15, 15, 8},
		{16, 11, 7},
		{40, 11, 7},
	}

	for _, tt := range tests {
		got := tierFor(tt.count)
		if got.rowHeight != tt.wantRow || got.fontSize != tt.wantFont {
			t.Errorf("tierFor(%d) = %+v, want row %v font %v",
				tt.count, got, tt.wantRow, tt.wantFont)
		}
	}
}

func TestSignatureFits(t *testing.T) {
	const pageH = 841.89

	tests := []struct {
		name string
		top  float64
		want bool
	}{
		{"plenty of space", 400, true},
		{"exactly at threshold", pageH - footerHeight - sigBlockMinSpace, true},
		{"one point short", pageH - footerHeight - sigBlockMinSpace + 1, false},
		{"no space at all", pageH, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := signatureFits(tt.top, pageH); got != tt.want {
				t.Errorf("signatureFits(%v) = %v, want %v", tt.top, got, tt.want)
			}
		})
	}
}

func TestParseQuoteDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		today bool
	}{
		{"date only", "2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"rfc3339", "2026-03-01T10:30:00Z", time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), false},
		{"iso millis", "2026-03-01T10:30:00.000Z", time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), false},
		{"us slashes", "03/01/2026", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"empty falls back to today", "", time.Time{}, true},
		{"garbage falls back to today", "soonish", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseQuoteDate(tt.input)
			if tt.today {
				if time.Since(got) > time.Minute || time.Since(got) < -time.Minute {
					t.Errorf("parseQuoteDate(%q) = %v, want roughly now", tt.input, got)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseQuoteDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{15, "15"},
		{10, "10"},
		{12.5, "12.5"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := formatRate(tt.input); got != tt.expect {
			t.Errorf("formatRate(%v) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestPaymentQRPNG(t *testing.T) {
	out, err := paymentQRPNG("PAY-REF-123", 128)
	if err != nil {
		t.Fatalf("paymentQRPNG: %v", err)
	}
	// PNG magic bytes.
	if !bytes.HasPrefix(out, []byte("\x89PNG")) {
		t.Errorf("generated QR is not a PNG")
	}
}
