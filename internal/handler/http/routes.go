package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router.
//
// Registration, login, password recovery, and the contact form are public;
// the profile and test endpoints require a bearer token; the user and query
// listings additionally require the admin role.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/auth/register", h.register)
		r.Post("/api/v1/auth/login", h.login)
		r.Post("/api/v1/auth/forgot-password", h.forgotPassword)
		r.Post("/api/v1/query", h.submitQuery)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/v1/auth/test", h.test)
		r.Put("/api/v1/auth/profile", h.updateProfile)

		// administrative routes
		r.Group(func(r chi.Router) {
			r.Use(h.adminOnly)

			r.Get("/api/v1/auth/users", h.listUsers)
			r.Get("/api/v1/query/all", h.listQueries)
		})
	})

	return router
}
