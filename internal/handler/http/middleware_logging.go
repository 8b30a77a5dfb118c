package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
)

// withLogging writes one access log entry per request. It runs after
// withTraceID and withSession, so the entry carries the trace id and the
// editor, if any.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		event := log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size)
		if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
			event = event.Int64("user_id", userID)
		}
		event.Send()
	})
}
