package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
)

// withSession resolves the editor session cookie.
//
// A valid token stores the editor's user ID in the request context under
// [utils.UserIDCtxKey]. Missing, expired or forged tokens leave the request
// anonymous: the edit form must still accept submissions from a browser whose
// session was lost, so this middleware never rejects a request.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(service.SessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("session cookie rejected, continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// requireEditor rejects anonymous requests with 401 Unauthorized.
func (h *Handler) requireEditor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			writeError(w, r, ErrSessionRequired, "anonymous request to editor route")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// redirectToLogin sends the browser to the login form, returning to the
// current page afterwards.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
}
