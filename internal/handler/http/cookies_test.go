package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
)

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestCookieJar_GetReadsRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "a", Value: "1"})
	jar := newCookieJar(httptest.NewRecorder(), req, false)

	v, ok := jar.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = jar.Get("missing")
	assert.False(t, ok)
}

func TestCookieJar_SetIsVisibleInSameRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "a", Value: "old"})
	rec := httptest.NewRecorder()
	jar := newCookieJar(rec, req, true)

	jar.Set("a", "new", time.Hour)

	v, ok := jar.Get("a")
	require.True(t, ok)
	assert.Equal(t, "new", v)

	c := responseCookie(t, rec, "a")
	assert.Equal(t, "new", c.Value)
	assert.Equal(t, 3600, c.MaxAge)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestCookieJar_NegativeMaxAgeDeletes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "a", Value: "old"})
	rec := httptest.NewRecorder()
	jar := newCookieJar(rec, req, false)

	jar.Set("a", "", -1)

	_, ok := jar.Get("a")
	assert.False(t, ok)
	assert.Negative(t, responseCookie(t, rec, "a").MaxAge)
}

func TestScope(t *testing.T) {
	h := NewHandler(&service.Services{}, Options{}, logger.Nop())

	t.Run("anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://cms.example.org/pages/5/edit", nil)
		scope := h.scope(httptest.NewRecorder(), req)

		assert.False(t, scope.Authenticated)
		assert.Zero(t, scope.UserID)
		assert.Equal(t, "cms.example.org", scope.Host)
		assert.NotNil(t, scope.Cookies)
	})

	t.Run("editor", func(t *testing.T) {
		req := asEditor(httptest.NewRequest(http.MethodGet, "http://cms.example.org/pages/5/edit", nil))
		scope := h.scope(httptest.NewRecorder(), req)

		assert.True(t, scope.Authenticated)
		assert.Equal(t, int64(9), scope.UserID)
	})
}
