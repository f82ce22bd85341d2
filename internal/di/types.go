// Package di provides dependency injection wiring and initialization.
package di

import (
	"github.com/rs/zerolog"

	"github.com/psyperinat/psycost/internal/database"
	"github.com/psyperinat/psycost/internal/modules/births"
	birthshandlers "github.com/psyperinat/psycost/internal/modules/births/handlers"
	"github.com/psyperinat/psycost/internal/modules/costs"
	costshandlers "github.com/psyperinat/psycost/internal/modules/costs/handlers"
	"github.com/psyperinat/psycost/internal/modules/parameters"
)

// Container holds every wired dependency.
type Container struct {
	// Databases
	BirthsDB *database.DB

	// Catalog loaded at startup; immutable for the life of the process
	Catalog parameters.Catalog

	// Repositories
	BirthsRepo *births.Repository

	// Services
	CostService *costs.Service

	// Handlers
	CostHandler   *costshandlers.Handler
	BirthsHandler *birthshandlers.Handler
}

// Close releases the container's databases.
func (c *Container) Close(log zerolog.Logger) {
	if c == nil || c.BirthsDB == nil {
		return
	}
	if err := c.BirthsDB.Close(); err != nil {
		log.Error().Err(err).Str("database", c.BirthsDB.Name()).Msg("Failed to close database")
	}
}
