package db_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"wayfarer/internal/config"
	"wayfarer/internal/infra"
)

var Module = fx.Provide(provideDB)

// provideDB returns a nil *gorm.DB when POSTGRES_URL is unset. Callers fall
// back to the embedded catalog and skip itinerary persistence.
func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	if cfg.PostgresURL == "" {
		logger.Warn("POSTGRES_URL not set, running without persistence")
		return nil, nil
	}

	db, err := infra.InitPostgresql(cfg.PostgresURL)
	if err != nil {
		return nil, err
	}
	if err := infra.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})

	return db, nil
}
