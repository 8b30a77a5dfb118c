package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets/heartbeat.js
var heartbeatJS []byte

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// render executes the named page template with status.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("error rendering template")
	}
}

func (h *Handler) heartbeatScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(heartbeatJS); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing heartbeat script")
	}
}
