package prompt_fx

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"wayfarer/internal/config"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerationClient,
	ProvideDayGenerator)

// ProvideGenerationClient builds the model client named by GENERATION_PROVIDER.
// A missing key is not fatal: the client is nil and planning requests fail
// with ErrGenerationNotConfigured.
func ProvideGenerationClient(cfg *config.Config, logger *zap.Logger) (utils.GenerationClient, error) {
	apiKey, model := generationCredentials(cfg)

	client, err := utils.NewGenerationClient(cfg.GenerationProvider, apiKey, model)
	if errors.Is(err, utils.ErrGenerationNotConfigured) {
		logger.Warn("generation provider has no API key, planning is disabled",
			zap.String("provider", cfg.GenerationProvider))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.GenerationProvider, err)
	}

	logger.Info("generation client ready",
		zap.String("provider", cfg.GenerationProvider),
		zap.String("model", model))
	return client, nil
}

func ProvideDayGenerator(
	client utils.GenerationClient,
	enricher services.ActivityEnricher,
	policy config.BudgetPolicy,
	timeouts config.Timeouts,
	logger *zap.Logger,
) *services.DayGenerator {
	return services.NewDayGenerator(client, enricher, policy, timeouts.Generation, logger)
}

func generationCredentials(cfg *config.Config) (apiKey, model string) {
	switch strings.ToLower(cfg.GenerationProvider) {
	case "openai":
		return cfg.OpenAIAPIKey, cfg.OpenAIModel
	default:
		return cfg.GeminiAPIKey, cfg.GeminiModel
	}
}
