package quotation

import (
	"strconv"
	"strings"
	"testing"
)

func num(v float64) Number { return Number{Value: v, Valid: true} }

func item(qty, price float64) LineItem {
	return LineItem{Name: "Item", Description: "desc", Quantity: num(qty), UnitPrice: num(price)}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name            string
		items           []LineItem
		discountPercent float64
		taxPercent      float64
		want            Totals
	}{
		{
			name:       "two items no discount default tax",
			items:      []LineItem{item(2, 50), item(1, 25)},
			taxPercent: 15,
			want: Totals{
				Subtotal:      125,
				TaxableAmount: 125,
				TaxAmount:     18.75,
				GrandTotal:    143.75,
			},
		},
		{
			name:            "discount applied before tax",
			items:           []LineItem{item(4, 50)},
			discountPercent: 10,
			taxPercent:      15,
			want: Totals{
				Subtotal:       200,
				DiscountAmount: 20,
				TaxableAmount:  180,
				TaxAmount:      27,
				GrandTotal:     207,
			},
		},
		{
			name:       "empty item list",
			items:      nil,
			taxPercent: 15,
			want:       Totals{},
		},
		{
			name:            "zero discount contributes nothing",
			items:           []LineItem{item(1, 100)},
			discountPercent: 0,
			taxPercent:      0,
			want: Totals{
				Subtotal:      100,
				TaxableAmount: 100,
				GrandTotal:    100,
			},
		},
		{
			name: "malformed numerics degrade to zero",
			items: []LineItem{
				item(2, 50),
				{Name: "bad", Quantity: Number{}, UnitPrice: num(10)},
				{Name: "also bad", Quantity: num(3), UnitPrice: Number{}},
			},
			taxPercent: 15,
			want: Totals{
				Subtotal:      100,
				TaxableAmount: 100,
				TaxAmount:     15,
				GrandTotal:    115,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.items, tt.discountPercent, tt.taxPercent)
			if got != tt.want {
				t.Errorf("Compute() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCompute_Idempotent(t *testing.T) {
	items := []LineItem{item(2, 50), item(1, 25), item(7, 3.33)}
	first := Compute(items, 12.5, 15)
	second := Compute(items, 12.5, 15)
	if first != second {
		t.Errorf("repeated Compute differs: %+v vs %+v", first, second)
	}
}

func TestRequestTotals_Defaults(t *testing.T) {
	// Absent tax falls back to 15; absent discount stays zero.
	req := Request{Items: []LineItem{item(2, 50), item(1, 25)}}
	got := req.Totals()

	if got.Subtotal != 125 {
		t.Errorf("Subtotal = %v, want 125", got.Subtotal)
	}
	if got.DiscountAmount != 0 {
		t.Errorf("DiscountAmount = %v, want 0", got.DiscountAmount)
	}
	if got.TaxAmount != 18.75 {
		t.Errorf("TaxAmount = %v, want 18.75", got.TaxAmount)
	}
	if got.GrandTotal != 143.75 {
		t.Errorf("GrandTotal = %v, want 143.75", got.GrandTotal)
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{0, "N$0.00"},
		{20, "N$20.00"},
		{18.75, "N$18.75"},
		{143.75, "N$143.75"},
		{1234567.891, "N$1234567.89"},
		{0.005, "N$0.01"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.input); got != tt.expect {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestFormatCurrency_RoundTrip(t *testing.T) {
	for _, x := range []float64{0, 0.5, 19.99, 125, 143.75, 98765.43} {
		formatted := FormatCurrency(x)
		parsed, err := strconv.ParseFloat(strings.TrimPrefix(formatted, "N$"), 64)
		if err != nil {
			t.Fatalf("parse %q: %v", formatted, err)
		}
		if again := FormatCurrency(parsed); again != formatted {
			t.Errorf("round trip of %v: %q != %q", x, again, formatted)
		}
	}
}
