package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"wayfarer/internal/catalog"
	"wayfarer/internal/config"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideModuleSelector,
	provideEnricher,
	provideItineraryService,
)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	if db == nil {
		return nil
	}
	return repositories.NewItineraryRepository(db)
}

func provideModuleSelector() *services.ModuleSelector {
	return services.NewModuleSelector(nil)
}

func provideEnricher(
	places services.PlacesClient,
	directions services.DirectionsClient,
	timeouts config.Timeouts,
	logger *zap.Logger,
) services.ActivityEnricher {
	return services.NewEnrichmentService(places, directions, nil, timeouts.Provider, logger)
}

func provideItineraryService(
	cat *catalog.Catalog,
	selector *services.ModuleSelector,
	days *services.DayGenerator,
	translator services.Translator,
	repo repositories.ItineraryRepository,
	timeouts config.Timeouts,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(cat, selector, days, translator, repo, timeouts, logger)
}
