// Package quotation holds the quotation data model and the totals
// pipeline shared by the HTTP handlers, the PDF renderer and the stores.
package quotation

import "errors"

// LineItem is one priced entry within a quotation. Quantity and UnitPrice
// are lenient: malformed input degrades to a zero-value contribution
// instead of failing the request.
type LineItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    Number `json:"quantity"`
	UnitPrice   Number `json:"unitPrice"`
}

// Total is the line's contribution to the subtotal.
func (it LineItem) Total() float64 {
	return it.Quantity.Value * it.UnitPrice.Value
}

// Request is a quotation payload as submitted by the client form.
// Wire names match the form: discount and tax are percentages.
type Request struct {
	ClientName      string     `json:"clientName"`
	ClientEmail     string     `json:"clientEmail"`
	ClientPhone     string     `json:"clientPhone"`
	QuotationDate   string     `json:"quotationDate,omitempty"`
	Items           []LineItem `json:"items"`
	DiscountPercent Number     `json:"discount"`
	TaxPercent      Number     `json:"tax"`
}

// DefaultTaxPercent applies when the tax field is absent or non-numeric.
const DefaultTaxPercent = 15

// EffectiveDiscountPercent is 0 unless a discount was actually supplied.
func (r Request) EffectiveDiscountPercent() float64 {
	return r.DiscountPercent.Or(0)
}

// EffectiveTaxPercent falls back to DefaultTaxPercent when the field is
// absent or malformed.
func (r Request) EffectiveTaxPercent() float64 {
	return r.TaxPercent.Or(DefaultTaxPercent)
}

// Totals runs the calculator over the request's own items and rates.
func (r Request) Totals() Totals {
	return Compute(r.Items, r.EffectiveDiscountPercent(), r.EffectiveTaxPercent())
}

var (
	ErrClientNameRequired  = errors.New("clientName is required")
	ErrClientEmailRequired = errors.New("clientEmail is required")
	ErrItemsRequired       = errors.New("at least one item is required")
)

// Validate rejects requests that must never reach computation or
// rendering. Everything else degrades gracefully downstream.
func (r Request) Validate() error {
	if r.ClientName == "" {
		return ErrClientNameRequired
	}
	if r.ClientEmail == "" {
		return ErrClientEmailRequired
	}
	if len(r.Items) == 0 {
		return ErrItemsRequired
	}
	return nil
}

// Record is a persisted quotation: the request plus the id and creation
// timestamp assigned at append time.
type Record struct {
	Request
	ID        int64  `json:"id"`
	CreatedAt string `json:"createdAt"`
}
