package di

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/psyperinat/psycost/internal/config"
	"github.com/psyperinat/psycost/internal/database"
)

// InitializeDatabases opens the births database and applies its schema.
func InitializeDatabases(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	container := &Container{}

	// births.db - territory births lookup, rebuilt from the seed file at startup
	birthsDB, err := database.New(database.Config{
		Path:    cfg.BirthsDBPath(),
		Profile: database.ProfileCache,
		Name:    "births",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize births database: %w", err)
	}
	container.BirthsDB = birthsDB

	if err := birthsDB.Migrate(); err != nil {
		birthsDB.Close()
		return nil, fmt.Errorf("failed to migrate births database: %w", err)
	}

	log.Info().Str("path", birthsDB.Path()).Msg("Births database ready")
	return container, nil
}
