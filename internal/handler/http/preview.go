package http

import (
	"net/http"

	"github.com/MKhiriev/go-draft-keeper/internal/utils"
)

// previewDraft returns the cleaned fields of the caller's pending draft as
// HTML-escaped, indented JSON.
func (h *Handler) previewDraft(w http.ResponseWriter, r *http.Request) {
	pageID, err := parsePageID(r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, r, err, "invalid page id")
		return
	}

	fields, err := h.services.RestoreService.Preview(r.Context(), h.scope(w, r), pageID)
	if err != nil {
		writeError(w, r, err, "draft preview failed")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteEscapedJSON(w, fields, http.StatusOK)
}
