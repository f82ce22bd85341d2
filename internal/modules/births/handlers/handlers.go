// Package handlers provides HTTP handlers for the births lookup.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/psyperinat/psycost/internal/api"
	"github.com/psyperinat/psycost/internal/modules/births"
)

// TerritoryReader is the read side of the births repository.
type TerritoryReader interface {
	List(ctx context.Context, level births.Level) ([]births.Territory, error)
	Get(ctx context.Context, name string) (*births.Territory, error)
}

// Handler handles territory HTTP requests
type Handler struct {
	repo TerritoryReader
	log  zerolog.Logger
}

// NewHandler creates a new territory handler
func NewHandler(repo TerritoryReader, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "births").Logger(),
	}
}

// HandleList handles GET /api/territories
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	level := births.Level(strings.ToLower(r.URL.Query().Get("level")))
	if level != "" && !level.Valid() {
		api.Error(w, r, http.StatusBadRequest, "unknown level: "+string(level), h.log)
		return
	}

	territories, err := h.repo.List(r.Context(), level)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list territories")
		api.Error(w, r, http.StatusInternalServerError, "failed to list territories", h.log)
		return
	}

	api.Write(w, r, http.StatusOK, api.NewEnvelope(territories), h.log)
}

// HandleGet handles GET /api/territories/{name}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	territory, err := h.repo.Get(r.Context(), name)
	if errors.Is(err, births.ErrTerritoryNotFound) {
		api.Error(w, r, http.StatusNotFound, err.Error(), h.log)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("territory", name).Msg("Failed to get territory")
		api.Error(w, r, http.StatusInternalServerError, "failed to get territory", h.log)
		return
	}

	api.Write(w, r, http.StatusOK, api.NewEnvelope(territory), h.log)
}

// HandleLevels handles GET /api/territories/levels
func (h *Handler) HandleLevels(w http.ResponseWriter, r *http.Request) {
	api.Write(w, r, http.StatusOK, api.NewEnvelope(births.Levels), h.log)
}
