package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
)

// cookieJar implements service.CookieJar for one request. Values set during
// the request are visible to later Get calls of the same request.
type cookieJar struct {
	w      http.ResponseWriter
	r      *http.Request
	secure bool

	set map[string]*string
}

func newCookieJar(w http.ResponseWriter, r *http.Request, secure bool) *cookieJar {
	return &cookieJar{w: w, r: r, secure: secure, set: map[string]*string{}}
}

func (j *cookieJar) Get(name string) (string, bool) {
	if v, ok := j.set[name]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}

	c, err := j.r.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

func (j *cookieJar) Set(name, value string, maxAge time.Duration) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}

	if maxAge < 0 {
		cookie.MaxAge = -1
		j.set[name] = nil
	} else {
		cookie.MaxAge = int(maxAge / time.Second)
		cookie.Expires = time.Now().Add(maxAge)
		j.set[name] = &value
	}

	http.SetCookie(j.w, cookie)
}

// scope describes the request to the service layer.
func (h *Handler) scope(w http.ResponseWriter, r *http.Request) service.Scope {
	userID, ok := utils.GetUserIDFromContext(r.Context())

	return service.Scope{
		UserID:        userID,
		Authenticated: ok && userID > 0,
		Host:          r.Host,
		Cookies:       newCookieJar(w, r, h.options.SecureCookies),
	}
}
