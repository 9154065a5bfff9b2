package persona_fx

import (
	"go.uber.org/fx"
	"wayfarer/internal/services"
)

var Module = fx.Provide(services.NewPersonaService)
