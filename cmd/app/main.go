package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"wayfarer/cmd/fx/catalog_fx"
	"wayfarer/cmd/fx/config_fx"
	"wayfarer/cmd/fx/controllers_fx"
	"wayfarer/cmd/fx/db_fx"
	"wayfarer/cmd/fx/directions_fx"
	"wayfarer/cmd/fx/itinerary_fx"
	"wayfarer/cmd/fx/logger_fx"
	"wayfarer/cmd/fx/memcache_fx"
	"wayfarer/cmd/fx/persona_fx"
	"wayfarer/cmd/fx/places_fx"
	"wayfarer/cmd/fx/prompt_fx"
	"wayfarer/cmd/fx/translation_fx"
	"wayfarer/internal/api/controllers"
	"wayfarer/internal/config"
	"wayfarer/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		catalog_fx.Module,
		prompt_fx.Module,
		places_fx.Module,
		directions_fx.Module,
		translation_fx.Module,
		itinerary_fx.Module,
		persona_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: cors.New(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", middleware.TraceIDHeader},
			ExposedHeaders:   []string{middleware.TraceIDHeader},
			AllowCredentials: false,
		}).Handler(engine),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.Timeouts.Shutdown)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	logger *zap.Logger,
	limiter *middleware.RateLimiter,
	itineraryController *controllers.ItineraryController,
	personaController *controllers.PersonaController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))

	RegisterRoutes(r, limiter, itineraryController, personaController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	limiter *middleware.RateLimiter,
	itineraryController *controllers.ItineraryController,
	personaController *controllers.PersonaController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.POST("", limiter.Limit(), itineraryController.PlanItinerary)
	itineraryGroup.GET("/:id", itineraryController.GetItinerary)

	personaGroup := r.Group("/personas")
	personaGroup.GET("", personaController.ListPersonas)
	personaGroup.GET("/:id", personaController.GetPersona)
}
