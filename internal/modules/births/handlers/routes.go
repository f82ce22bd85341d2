package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all territory routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/territories", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Get("/levels", h.HandleLevels)
		r.Get("/{name}", h.HandleGet)
	})
}
