// Package pdf defines the quotation document rendering contract.
package pdf

import "github.com/ellin72/Elquote/internal/domain/quotation"

// Company is the issuing business identity printed on every document.
type Company struct {
	Name    string
	Tagline string
	Phone   string
	Email   string
	Website string
}

// Assets points at optional document artwork. Every asset is allowed to
// be missing; the renderer substitutes a fallback and never fails.
type Assets struct {
	LogoPath string
	// PaymentQRPath is a pre-rendered QR image. When absent,
	// PaymentReference (if set) is encoded into a QR code on the fly.
	PaymentQRPath    string
	PaymentReference string
}

type Generator interface {
	Generate(req quotation.Request, totals quotation.Totals, quoteID int64) ([]byte, error)
}
