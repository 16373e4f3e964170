package session

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the session endpoints and the stateless evaluator
// onto the given router.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/keys", h.PressKeys)
	})
	r.Post("/evaluate", h.Evaluate)
}
