package server

import (
	"context"
	"net/http"
	"time"

	"github.com/psyperinat/psycost/internal/api"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":     "healthy",
		"version":    Version,
		"service":    "psycost",
		"parameters": s.container.Catalog.Len(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.container.BirthsDB.HealthCheck(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Births database health check failed")
		response["status"] = "degraded"
		response["error"] = err.Error()
		api.Write(w, r, http.StatusServiceUnavailable, response, s.log)
		return
	}

	api.Write(w, r, http.StatusOK, response, s.log)
}
