package http

import (
	"github.com/go-chi/chi/v5"
)

// Init builds the router with the fixed middleware chain. Order matters:
// trace-id runs first so every later stage logs with a request-scoped
// logger; panic recovery wraps logging and auth; authentication is the
// innermost stage before routing, so unauthenticated requests never reach
// a route handler.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.recoverFaults)
	router.Use(h.withLogging)
	router.Use(h.apiKeyAuth)

	router.Get("/", h.greeting)
	router.Get("/version", h.getServerVersion)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/{id}", h.getUserByID)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	return router
}
