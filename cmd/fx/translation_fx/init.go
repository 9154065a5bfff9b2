package translation_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"wayfarer/internal/config"
	"wayfarer/internal/services"
)

var Module = fx.Provide(provideTranslator)

func provideTranslator(cfg *config.Config, logger *zap.Logger) (services.Translator, error) {
	if cfg.TranslateAPIKey == "" {
		logger.Info("GOOGLE_TRANSLATE_API_KEY not set, itinerary titles stay in English")
		return nil, nil
	}

	translator, err := services.NewGoogleTranslator(context.Background(), cfg.TranslateAPIKey)
	if err != nil {
		return nil, err
	}
	return translator, nil
}
