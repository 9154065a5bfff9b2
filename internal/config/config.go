package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process-wide settings. Provider credentials are optional: an empty
// key switches the matching provider to its fallback behaviour.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	PostgresURL   string `env:"POSTGRES_URL"`
	RedisURL      string `env:"REDIS_URL"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	GenerationProvider string `env:"GENERATION_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey       string `env:"GEMINI_API_KEY"`
	GeminiModel        string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	OpenAIAPIKey       string `env:"OPENAI_API_KEY"`
	OpenAIModel        string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	PlacesAPIKey    string `env:"GOOGLE_PLACES_API_KEY"`
	TranslateAPIKey string `env:"GOOGLE_TRANSLATE_API_KEY"`
	MapboxToken     string `env:"MAPBOX_ACCESS_TOKEN"`

	Budget   BudgetPolicy
	Timeouts Timeouts

	PlaceCacheTTL time.Duration `env:"PLACE_CACHE_TTL" envDefault:"24h"`
	RouteCacheTTL time.Duration `env:"ROUTE_CACHE_TTL" envDefault:"168h"`

	PlanRatePerMinute int `env:"PLAN_RATE_PER_MINUTE" envDefault:"6"`
	PlanRateBurst     int `env:"PLAN_RATE_BURST" envDefault:"2"`
}

// BudgetPolicy tunes the soft per-day budget check. A day is accepted once its
// cost is at most OverrunFactor times the average daily budget, or after
// MaxAttempts generation rounds regardless of cost.
type BudgetPolicy struct {
	OverrunFactor float64 `env:"BUDGET_OVERRUN_FACTOR" envDefault:"1.5"`
	MaxAttempts   int     `env:"BUDGET_MAX_ATTEMPTS" envDefault:"2"`
}

// DefaultBudgetPolicy mirrors the envDefault values above.
func DefaultBudgetPolicy() BudgetPolicy {
	return BudgetPolicy{OverrunFactor: 1.5, MaxAttempts: 2}
}

type Timeouts struct {
	Generation time.Duration `env:"GENERATION_TIMEOUT" envDefault:"60s"`
	Provider   time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"15s"`
	Plan       time.Duration `env:"PLAN_TIMEOUT" envDefault:"5m"`
	Shutdown   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// DefaultTimeouts mirrors the envDefault values above.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Generation: 60 * time.Second,
		Provider:   15 * time.Second,
		Plan:       5 * time.Minute,
		Shutdown:   10 * time.Second,
	}
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	if c.Budget.OverrunFactor <= 0 {
		return fmt.Errorf("BUDGET_OVERRUN_FACTOR must be positive, got %v", c.Budget.OverrunFactor)
	}
	if c.Budget.MaxAttempts < 1 {
		return fmt.Errorf("BUDGET_MAX_ATTEMPTS must be at least 1, got %d", c.Budget.MaxAttempts)
	}
	if c.PlanRatePerMinute < 1 || c.PlanRateBurst < 1 {
		return fmt.Errorf("plan rate limit must be positive")
	}
	return nil
}
