package di

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/psyperinat/psycost/internal/config"
	"github.com/psyperinat/psycost/internal/modules/births"
)

// InitializeRepositories builds the repositories and seeds the births lookup.
// A missing seed file leaves the lookup with whatever it already holds.
func InitializeRepositories(ctx context.Context, container *Container, cfg *config.Config, log zerolog.Logger) error {
	container.BirthsRepo = births.NewRepository(container.BirthsDB.Conn(), log)

	if cfg.BirthsSeed == "" {
		return nil
	}

	f, err := os.Open(cfg.BirthsSeed)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", cfg.BirthsSeed).Msg("Births seed file not found, skipping seeding")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open births seed: %w", err)
	}
	defer f.Close()

	if _, err := container.BirthsRepo.Seed(ctx, f); err != nil {
		return fmt.Errorf("failed to seed births lookup from %s: %w", cfg.BirthsSeed, err)
	}
	return nil
}
