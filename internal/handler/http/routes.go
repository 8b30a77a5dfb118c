package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withSession, h.withLogging)

	// public routes
	router.Get("/", h.index)
	router.Get("/ping", h.ping)
	router.Get("/static/heartbeat.js", h.heartbeatScript)
	router.Get("/api/version/", h.getServerVersion)

	router.Get("/login", h.loginForm)
	router.Post("/login", h.login)
	router.Post("/logout", h.logout)

	// the edit form accepts anonymous posts from browsers that lost their session
	router.Get("/pages/{id}/edit", h.editPage)
	router.With(h.limitAnonymous).Post("/pages/{id}/edit", h.submitPage)

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.requireEditor)
		r.Get("/api/rescue/preview", h.previewDraft)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
