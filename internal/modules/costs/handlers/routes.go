package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all cost and parameter routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/parameters", func(r chi.Router) {
		r.Get("/", h.HandleParameters)
		r.Get("/categories", h.HandleCategories)
	})

	r.Route("/costs", func(r chi.Router) {
		r.Post("/", h.HandleCompute)
		r.Post("/sensitivity", h.HandleSensitivity)
		r.Post("/sweep", h.HandleSweep)
	})
}
