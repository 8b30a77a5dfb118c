package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-draft-keeper/internal/app"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type loginView struct {
	Next  string
	Login string
	Error string
}

type indexView struct {
	Authenticated bool
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	_, ok := utils.GetUserIDFromContext(r.Context())
	h.render(w, r, "index.html", http.StatusOK, indexView{Authenticated: ok})
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", http.StatusOK, loginView{Next: safeNext(r.URL.Query().Get("next"))})
}

// login starts an editor session. HTML form posts are redirected to "next";
// JSON posts (used by the pinger) get the editor record back.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	jsonRequest := strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")

	var credentials models.Credentials
	var next string
	if jsonRequest {
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeError(w, r, service.ErrInvalidDataProvided, "invalid login form")
			return
		}
		credentials.Login = r.PostFormValue("login")
		credentials.Password = r.PostFormValue("password")
		next = safeNext(r.PostFormValue("next"))
	}

	user, err := h.services.AuthService.StartSession(ctx, h.scope(w, r), credentials)
	if err != nil {
		if jsonRequest {
			writeError(w, r, err, "login failed")
			return
		}

		status := statusFromError(err)
		view := loginView{Next: next, Login: credentials.Login, Error: loginErrorMessage(err)}
		log.Warn().Err(err).Str("login", credentials.Login).Msg("login failed")
		h.render(w, r, "login.html", status, view)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("editor successfully logged in")

	if jsonRequest {
		utils.WriteJSON(w, user, http.StatusOK)
		return
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.services.AuthService.EndSession(r.Context(), h.scope(w, r))
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func loginErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return app.MsgLoginRequired
	case errors.Is(err, service.ErrWrongPassword):
		return app.MsgInvalidLoginPassword
	default:
		return app.MsgLoginUnavailable
	}
}

// safeNext only allows local redirect targets.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return "/"
	}
	return next
}
