package config_fx

import (
	"go.uber.org/fx"
	"wayfarer/internal/config"
)

var Module = fx.Provide(config.Load, provideBudgetPolicy, provideTimeouts)

func provideBudgetPolicy(cfg *config.Config) config.BudgetPolicy {
	return cfg.Budget
}

func provideTimeouts(cfg *config.Config) config.Timeouts {
	return cfg.Timeouts
}
