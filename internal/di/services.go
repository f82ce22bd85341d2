package di

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/psyperinat/psycost/internal/config"
	birthshandlers "github.com/psyperinat/psycost/internal/modules/births/handlers"
	"github.com/psyperinat/psycost/internal/modules/costs"
	costshandlers "github.com/psyperinat/psycost/internal/modules/costs/handlers"
	"github.com/psyperinat/psycost/internal/modules/parameters"
)

// InitializeServices loads the catalog and builds services and handlers.
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) error {
	catalog, err := parameters.LoadFile(cfg.CatalogPath)
	if err != nil {
		return err
	}
	if err := checkFormulaParameters(catalog); err != nil {
		return fmt.Errorf("catalog %s: %w", cfg.CatalogPath, err)
	}
	container.Catalog = catalog

	container.CostService = costs.NewService(catalog, container.BirthsRepo, log)
	container.CostHandler = costshandlers.NewHandler(container.CostService, log)
	container.BirthsHandler = birthshandlers.NewHandler(container.BirthsRepo, log)

	log.Info().Int("parameters", catalog.Len()).Msg("Parameter catalog loaded")
	return nil
}

// checkFormulaParameters fails fast when the catalog cannot serve a
// computation with every disorder enabled.
func checkFormulaParameters(catalog parameters.Catalog) error {
	_, err := costs.ComputeSensitivityTotal(catalog, catalog.BaseValues(), costs.AllDisorders())
	return err
}
