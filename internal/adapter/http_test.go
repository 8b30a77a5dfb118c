// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const sessionCookie = "editor_session"

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.PingerAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// editorServer accepts editor/secret and answers pings with the marker while
// the session cookie is present.
func editorServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var c models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&c))
		if c.Login != "editor" || c.Password != "secret" {
			http.Error(w, "wrong password", http.StatusUnauthorized)
			return
		}

		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "token", Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{UserID: 9, Login: "editor"})
	})
	mux.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		n := r.URL.Query().Get("n")
		editor := ""
		if c, err := r.Cookie(sessionCookie); err == nil && c.Value == "token" {
			editor = `,"editor":"` + models.AuthenticatedMarker + `"`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ping":` + n + editor + `}`))
	})
	mux.HandleFunc("POST /logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})
	mux.HandleFunc("GET /login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<form></form>"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	a := newTestAdapter(t, editorServer(t).URL)

	user, err := a.Login(context.Background(), models.Credentials{Login: "editor", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(9), user.UserID)
	assert.Equal(t, "editor", user.Login)
}

func TestLogin_Unauthorized(t *testing.T) {
	a := newTestAdapter(t, editorServer(t).URL)

	_, err := a.Login(context.Background(), models.Credentials{Login: "editor", Password: "nope"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "wrong password")
}

func TestLogin_InvalidResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Login: "a", Password: "b"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode login response")
}

// ── Ping ────────────────────────────────────────────────────────────────────

func TestPing_SessionLifecycle(t *testing.T) {
	a := newTestAdapter(t, editorServer(t).URL)
	ctx := context.Background()

	pong, err := a.Ping(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pong.Ping)
	assert.False(t, pong.Authenticated(), "no session yet")

	_, err = a.Login(ctx, models.Credentials{Login: "editor", Password: "secret"})
	require.NoError(t, err)

	pong, err = a.Ping(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pong.Ping)
	assert.True(t, pong.Authenticated(), "session cookie is kept in the jar")

	require.NoError(t, a.Logout(ctx))

	pong, err = a.Ping(ctx, 3)
	require.NoError(t, err)
	assert.False(t, pong.Authenticated(), "logout removes the session cookie")
}

func TestPing_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Ping(context.Background(), 1)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPing_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Ping(context.Background(), 1)

	require.Error(t, err)
	assert.Equal(t, "http 503: Service Unavailable", err.Error())
}

func TestPing_ContextCanceled(t *testing.T) {
	a := newTestAdapter(t, editorServer(t).URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Ping(ctx, 1)

	assert.ErrorIs(t, err, context.Canceled)
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://cms.example.org/", want: "https://cms.example.org"},
		{in: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.PingerAdapter{}, logger.Nop())

	assert.Error(t, err)
}
