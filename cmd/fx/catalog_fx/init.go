package catalog_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"wayfarer/internal/catalog"
	"wayfarer/internal/repositories"
)

var Module = fx.Provide(provideCatalog)

// provideCatalog seeds an empty database and freezes the stored reference
// data. Without a database the embedded seed is used directly.
func provideCatalog(db *gorm.DB, logger *zap.Logger) (*catalog.Catalog, error) {
	personas, modules, err := catalog.Seed()
	if err != nil {
		return nil, err
	}

	if db == nil {
		logger.Info("using embedded catalog",
			zap.Int("personas", len(personas)),
			zap.Int("modules", len(modules)))
		return catalog.New(personas, modules), nil
	}

	ctx := context.Background()
	repo := repositories.NewCatalogRepository(db)

	seeded, err := repo.SeedIfEmpty(ctx, personas, modules)
	if err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	if seeded {
		logger.Info("catalog seeded",
			zap.Int("personas", len(personas)),
			zap.Int("modules", len(modules)))
	}

	return catalog.Load(ctx, repo)
}
