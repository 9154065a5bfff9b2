package controllers_fx

import (
	"go.uber.org/fx"
	"wayfarer/internal/api/controllers"
	"wayfarer/internal/config"
	"wayfarer/pkg/middleware"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewPersonaController),
	fx.Provide(providePlanRateLimiter))

func providePlanRateLimiter(cfg *config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.PlanRatePerMinute, cfg.PlanRateBurst)
}
