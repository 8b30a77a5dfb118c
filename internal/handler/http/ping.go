package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-draft-keeper/internal/utils"
)

// ping answers the heartbeat. An unparsable counter is echoed as 0.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	counter, _ := strconv.ParseInt(r.URL.Query().Get("n"), 10, 64)

	resp, err := h.services.PingService.Ping(r.Context(), h.scope(w, r), counter)
	if err != nil {
		writeError(w, r, err, "ping failed")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, resp, http.StatusOK)
}
