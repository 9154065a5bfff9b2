package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"wayfarer/internal/catalog"
	"wayfarer/internal/config"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

type ItineraryServiceInterface interface {
	PlanItinerary(ctx context.Context, req request_models.TripPlanningRequest) (*response_models.Itinerary, error)
	GetItinerary(ctx context.Context, id string) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	catalog    *catalog.Catalog
	selector   *ModuleSelector
	days       *DayGenerator
	translator Translator
	repo       repositories.ItineraryRepository
	timeouts   config.Timeouts
	logger     *zap.Logger
	newID      func() string
}

// NewItineraryService wires the planner. days is nil when no generation model
// is configured; translator may be nil.
func NewItineraryService(
	cat *catalog.Catalog,
	selector *ModuleSelector,
	days *DayGenerator,
	translator Translator,
	repo repositories.ItineraryRepository,
	timeouts config.Timeouts,
	logger *zap.Logger,
) *ItineraryService {
	return &ItineraryService{
		catalog:    cat,
		selector:   selector,
		days:       days,
		translator: translator,
		repo:       repo,
		timeouts:   timeouts,
		logger:     logger,
		newID:      func() string { return uuid.NewString() },
	}
}

func (s *ItineraryService) PlanItinerary(ctx context.Context, req request_models.TripPlanningRequest) (*response_models.Itinerary, error) {
	trip, err := ValidateTripRequest(req)
	if err != nil {
		return nil, err
	}
	if s.days == nil {
		return nil, utils.ErrGenerationNotConfigured
	}
	persona, ok := s.catalog.Persona(trip.PersonaID)
	if !ok {
		return nil, utils.ErrPersonaNotFound
	}

	if s.timeouts.Plan > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeouts.Plan)
		defer cancel()
	}

	started := time.Now()
	season := ClassifySeason(trip.StartDate.Month())
	sequence := s.selector.Select(persona, s.catalog, trip.DurationDays, trip.StartDate)

	s.logger.Info("planning itinerary",
		zap.String("persona", persona.ID),
		zap.String("destination", trip.Destination),
		zap.Int("days", trip.DurationDays),
		zap.String("season", string(season)),
		zap.Strings("modules", sequence))

	remaining := trip.Budget
	days := make([]response_models.ItineraryDay, 0, len(sequence))
	for i, moduleID := range sequence {
		dayNumber := i + 1
		module := s.moduleOrPlaceholder(moduleID)

		res, err := s.days.GenerateDay(ctx, DayRequest{
			DayNumber:       dayNumber,
			Module:          module,
			Persona:         persona,
			Trip:            trip,
			RemainingBudget: remaining,
		})
		if err != nil {
			return nil, fmt.Errorf("generate day %d: %w", dayNumber, err)
		}
		remaining = res.RemainingBudget

		days = append(days, response_models.ItineraryDay{
			DayNumber:  dayNumber,
			Date:       utils.FormatDate(trip.StartDate.AddDate(0, 0, i)),
			ModuleID:   module.ID,
			ModuleName: module.Name,
			Narrative:  module.Narrative,
			Activities: res.Activities,
			Cost:       res.Cost,
			Attempts:   res.Attempts,
			OverBudget: res.OverBudget,
			Blocked:    res.Blocked,
		})
	}

	itinerary := &response_models.Itinerary{
		ID:                      s.newID(),
		Title:                   tripTitle(persona, trip),
		CreatedAt:               time.Now().Unix(),
		Destination:             trip.Destination,
		Location:                trip.Location,
		StartDate:               utils.FormatDate(trip.StartDate),
		EndDate:                 utils.FormatDate(trip.EndDate),
		DurationDays:            trip.DurationDays,
		Season:                  string(season),
		Budget:                  trip.Budget,
		Currency:                trip.CurrencyCode(),
		Theme:                   trip.Theme,
		GroupSize:               trip.GroupSize,
		AccommodationPreference: trip.AccommodationPreference,
		TransportPreference:     trip.TransportPreference,
		Language:                trip.LanguageCode(),
		Introduction:            persona.Introduction,
		Conclusion:              persona.Conclusion,
		Persona: response_models.PersonaSnapshot{
			PersonaID:   persona.ID,
			PersonaName: persona.Name,
			Tagline:     persona.Tagline,
			ModuleDNA:   sequence,
		},
		Cost: BuildCostBreakdown(days, trip.Budget),
		Days: days,
	}

	s.localize(ctx, itinerary, trip.Language)

	if s.repo != nil {
		if err := s.repo.Save(ctx, itinerary); err != nil {
			s.logger.Error("failed to persist itinerary", zap.String("itinerary_id", itinerary.ID), zap.Error(err))
		}
	}

	s.logger.Info("itinerary planned",
		zap.String("itinerary_id", itinerary.ID),
		zap.Float64("total", itinerary.Cost.Total),
		zap.Bool("over_budget", itinerary.Cost.IsOverBudget),
		zap.Float64("remaining_budget", remaining),
		zap.Duration("elapsed", time.Since(started)))

	return itinerary, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, id string) (*response_models.Itinerary, error) {
	if s.repo == nil {
		return nil, utils.ErrItineraryNotFound
	}
	itinerary, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load itinerary", zap.String("itinerary_id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return itinerary, nil
}

// moduleOrPlaceholder keeps the day going when the persona lists a module id
// the catalog does not have.
func (s *ItineraryService) moduleOrPlaceholder(id string) catalog.Module {
	if m, ok := s.catalog.Module(id); ok {
		return m
	}
	s.logger.Warn("module missing from catalog", zap.String("module", id))
	return catalog.Module{ID: id, Name: id}
}

// localize translates the title and persona texts when the trip language is
// not English. Any failure keeps the English text.
func (s *ItineraryService) localize(ctx context.Context, it *response_models.Itinerary, lang language.Tag) {
	if s.translator == nil {
		return
	}
	if base, _ := lang.Base(); base.String() == "en" {
		return
	}

	texts := []string{it.Title, it.Introduction, it.Conclusion}
	translated := resultOr(ctx, s.timeouts.Provider,
		func(ctx context.Context) ([]string, error) {
			out, err := s.translator.Translate(ctx, texts, lang.String())
			if err == nil && len(out) != len(texts) {
				err = utils.ErrNoResult
			}
			return out, err
		},
		func(err error) []string {
			s.logger.Warn("title translation failed", zap.String("language", lang.String()), zap.Error(err))
			return texts
		})

	it.Title, it.Introduction, it.Conclusion = translated[0], translated[1], translated[2]
}

func tripTitle(persona catalog.Persona, trip TripContext) string {
	unit := "days"
	if trip.DurationDays == 1 {
		unit = "day"
	}
	return fmt.Sprintf("%s: %d %s in %s", persona.Name, trip.DurationDays, unit, trip.Destination)
}
