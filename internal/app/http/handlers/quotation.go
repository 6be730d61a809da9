package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ellin72/Elquote/internal/domain/quotation"
)

// decodeRequest parses and validates a quotation payload. Validation
// failures are reported to the client before any computation happens.
func (h *Handlers) decodeRequest(w http.ResponseWriter, r *http.Request) (quotation.Request, bool) {
	var req quotation.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return quotation.Request{}, false
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return quotation.Request{}, false
	}
	return req, true
}

// GeneratePDF handles POST /api/generate-pdf: persist the quotation,
// compute totals and stream the rendered document.
func (h *Handlers) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	// Persistence failure must not block the document: degrade to a
	// synthesized id so QT-<id> stays stable for this response.
	quoteID := time.Now().UnixMilli()
	rec, err := h.Store.Append(r.Context(), req)
	if err != nil {
		h.Log.WithError(err).Warn("quotation not persisted, continuing with synthesized id")
	} else {
		quoteID = rec.ID
	}

	pdfBytes, err := h.PDF.Generate(req, req.Totals(), quoteID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="quotation.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		// The response stream failed mid-flight; nothing further can be
		// sent, so log and abandon.
		h.Log.WithError(err).Error("quotation pdf response write failed")
	}
}

// SaveQuotation handles POST /api/save-quotation.
func (h *Handlers) SaveQuotation(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	rec, err := h.Store.Append(r.Context(), req)
	if err != nil {
		h.Log.WithError(err).Error("save quotation failed")
		writeError(w, http.StatusInternalServerError, "failed to save quotation")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"quotation": rec,
	})
}

// ListQuotations handles GET /api/quotations. Storage trouble degrades
// to an empty list rather than an error.
func (h *Handlers) ListQuotations(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.List(r.Context())
	if err != nil {
		h.Log.WithError(err).Warn("list quotations failed, returning empty list")
		records = []quotation.Record{}
	}
	if records == nil {
		records = []quotation.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}
