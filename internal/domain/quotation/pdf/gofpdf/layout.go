package gofpdf

import (
	"strconv"
	"time"
)

// Page geometry in points, matching the approved A4 design.
const (
	pageMargin = 40.0

	logoRadius  = 45.0
	logoCenterY = 65.0

	headerTopY = 45.0

	sigBlockMinSpace = 80.0
	footerHeight     = 80.0

	qrSize         = 64.0
	qrBottomOffset = 48.0
)

// tableTier controls row height and font size for the items table.
// Density steps down as the item count grows so a bounded list still
// fits the single fixed page; beyond the compact tier overflow is
// accepted.
type tableTier struct {
	rowHeight float64
	fontSize  float64
}

func tierFor(itemCount int) tableTier {
	switch {
	case itemCount <= 8:
		return tableTier{rowHeight: 20, fontSize: 9}
	case itemCount <= 15:
		return tableTier{rowHeight: 15, fontSize: 8}
	default:
		return tableTier{rowHeight: 11, fontSize: 7}
	}
}

// signatureFits reports whether the two-column signature block can be
// placed at top without colliding with the footer area.
func signatureFits(top, pageHeight float64) bool {
	return pageHeight-top-footerHeight >= sigBlockMinSpace
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
	"01/02/2006",
}

// parseQuoteDate resolves the user-supplied quotation date. A missing or
// unparseable value substitutes the current date; the renderer never
// rejects a document over a bad date.
func parseQuoteDate(raw string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}

// formatRate prints a percentage the way it was entered: no trailing
// zeros, so 10 stays "10" and 12.5 stays "12.5".
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatQty prints a quantity without trailing zeros.
func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
