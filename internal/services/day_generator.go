package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"wayfarer/internal/catalog"
	"wayfarer/internal/config"
	"wayfarer/internal/models/response_models"
	"wayfarer/pkg/utils"
)

type DayRequest struct {
	DayNumber       int
	Module          catalog.Module
	Persona         catalog.Persona
	Trip            TripContext
	RemainingBudget float64
}

// DayResult is the accepted outcome of one day. RemainingBudget is the
// request's remaining budget minus Cost.
type DayResult struct {
	Activities      []response_models.EnrichedActivity
	Cost            float64
	RemainingBudget float64
	Attempts        int
	// Blocked is set when the model refused, failed or returned nothing;
	// the day then has no activities.
	Blocked    bool
	OverBudget bool
}

// DayGenerator writes one itinerary day with the generation model, retrying
// with a stricter prompt while the day costs more than the policy allows.
type DayGenerator struct {
	client   utils.GenerationClient
	enricher ActivityEnricher
	policy   config.BudgetPolicy
	timeout  time.Duration
	logger   *zap.Logger
}

// NewDayGenerator returns nil when client is nil.
func NewDayGenerator(client utils.GenerationClient, enricher ActivityEnricher, policy config.BudgetPolicy, timeout time.Duration, logger *zap.Logger) *DayGenerator {
	if client == nil {
		return nil
	}
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &DayGenerator{
		client:   client,
		enricher: enricher,
		policy:   policy,
		timeout:  timeout,
		logger:   logger,
	}
}

// GenerateDay only returns an error when ctx is done; every other failure
// yields an empty or over-budget day.
func (g *DayGenerator) GenerateDay(ctx context.Context, req DayRequest) (DayResult, error) {
	threshold := req.Trip.AverageDailyBudget() * g.policy.OverrunFactor
	result := DayResult{
		Activities:      []response_models.EnrichedActivity{},
		RemainingBudget: req.RemainingBudget,
	}

	for attempt := 1; attempt <= g.policy.MaxAttempts; attempt++ {
		result.Attempts = attempt
		prompt := BuildDayPrompt(req.Persona, req.Trip, req.Module, req.DayNumber, req.RemainingBudget, attempt > 1)

		resp, err := g.generate(ctx, prompt)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return DayResult{}, ctxErr
			}
			g.logger.Warn("day generation failed",
				zap.Int("day", req.DayNumber),
				zap.String("module", req.Module.ID),
				zap.Int("attempt", attempt),
				zap.Error(err))
			return g.blocked(result, threshold), nil
		}
		if resp.Blocked || resp.Text == "" {
			g.logger.Warn("day generation blocked",
				zap.Int("day", req.DayNumber),
				zap.String("module", req.Module.ID),
				zap.Int("attempt", attempt),
				zap.String("reason", resp.BlockReason))
			return g.blocked(result, threshold), nil
		}

		activities := ParseDayActivities(resp.Text)
		result.Activities = g.enricher.EnrichDay(ctx, req.Trip, activities)
		cost := DayCost(result.Activities)

		g.logger.Info("generated day",
			zap.Int("day", req.DayNumber),
			zap.String("module", req.Module.ID),
			zap.Int("attempt", attempt),
			zap.Int("activities", len(result.Activities)),
			zap.Float64("day_cost", cost),
			zap.Float64("threshold", threshold))

		if cost <= threshold {
			return g.finish(result, cost, threshold), nil
		}
		if attempt < g.policy.MaxAttempts {
			g.logger.Info("day over budget, retrying with stricter prompt",
				zap.Int("day", req.DayNumber),
				zap.Float64("day_cost", cost),
				zap.Float64("threshold", threshold))
			continue
		}
		return g.finish(result, cost, threshold), nil
	}

	return g.finish(result, 0, threshold), nil
}

func (g *DayGenerator) generate(ctx context.Context, prompt string) (utils.GenerationResponse, error) {
	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	return g.client.Generate(callCtx, utils.GenerationRequest{
		SystemInstruction: dayPlannerInstruction,
		Prompt:            prompt,
		JSONOnly:          true,
	})
}

// blocked ends the day empty, dropping activities from any earlier
// over-budget attempt so the day costs nothing.
func (g *DayGenerator) blocked(r DayResult, threshold float64) DayResult {
	r.Blocked = true
	r.Activities = []response_models.EnrichedActivity{}
	return g.finish(r, 0, threshold)
}

func (g *DayGenerator) finish(r DayResult, cost, threshold float64) DayResult {
	r.Cost = cost
	r.RemainingBudget -= cost
	r.OverBudget = cost > threshold
	return r
}
