package places_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"wayfarer/internal/config"
	"wayfarer/internal/services"
	mem "wayfarer/pkg/memcache"
)

var Module = fx.Provide(providePlacesClient)

// providePlacesClient returns a nil client when no Places key is configured,
// which makes the enricher hand out mock place ids.
func providePlacesClient(cfg *config.Config, store mem.Store, logger *zap.Logger) (services.PlacesClient, error) {
	if cfg.PlacesAPIKey == "" {
		logger.Warn("GOOGLE_PLACES_API_KEY not set, activities will get mock place ids")
		return nil, nil
	}

	google, err := services.NewGooglePlacesClient(context.Background(), cfg.PlacesAPIKey)
	if err != nil {
		return nil, err
	}

	return services.NewCachedPlacesClient(google, store, cfg.PlaceCacheTTL, logger), nil
}
