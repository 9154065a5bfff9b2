package directions_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"wayfarer/internal/config"
	"wayfarer/internal/services"
)

var Module = fx.Provide(provideDirectionsClient)

func provideDirectionsClient(cfg *config.Config, logger *zap.Logger) services.DirectionsClient {
	if cfg.MapboxToken == "" {
		logger.Warn("MAPBOX_ACCESS_TOKEN not set, travel legs will be estimated")
		return nil
	}
	return services.NewMapboxDirectionsClient(cfg.MapboxToken, services.NewInMemoryRouteCache(), cfg.RouteCacheTTL)
}
