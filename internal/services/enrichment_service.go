package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/golang/geo/s2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"wayfarer/internal/models/response_models"
	"wayfarer/pkg/utils"
)

const (
	earthRadiusMeters = 6371008.8
	estimatedSpeedKmh = 25.0
	minEstimatedMins  = 5
	maxJitterPercent  = 30
	mockPlaceIDPrefix = "mock-"
)

// roadFactor stretches straight-line distance toward a typical road distance.
const roadFactor = 1.4

// mockPlaceNamespace seeds deterministic ids for activities that could not be
// looked up.
var mockPlaceNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("wayfarer/mock-place"))

// ActivityEnricher attaches place and travel data to a day's activities.
type ActivityEnricher interface {
	EnrichDay(ctx context.Context, trip TripContext, activities []response_models.Activity) []response_models.EnrichedActivity
}

type EnrichmentService struct {
	places     PlacesClient
	directions DirectionsClient
	rng        RandSource
	timeout    time.Duration
	logger     *zap.Logger
}

// NewEnrichmentService builds the enricher. places and directions may be nil,
// in which case mock place ids and estimated travel legs are used.
func NewEnrichmentService(places PlacesClient, directions DirectionsClient, rng RandSource, timeout time.Duration, logger *zap.Logger) *EnrichmentService {
	if rng == nil {
		rng = globalRand{}
	}
	return &EnrichmentService{
		places:     places,
		directions: directions,
		rng:        rng,
		timeout:    timeout,
		logger:     logger,
	}
}

// EnrichDay never fails: every provider problem leaves the generated fields in
// place or substitutes an estimate.
func (s *EnrichmentService) EnrichDay(ctx context.Context, trip TripContext, activities []response_models.Activity) []response_models.EnrichedActivity {
	enriched := make([]response_models.EnrichedActivity, 0, len(activities))
	for _, a := range activities {
		enriched = append(enriched, s.enrichActivity(ctx, trip, a))
	}

	for i := 0; i+1 < len(enriched); i++ {
		from, to := enriched[i].Location, enriched[i+1].Location
		if from == nil || to == nil {
			continue
		}
		enriched[i].TravelToNext = s.travelLeg(ctx, *from, *to)
	}

	return enriched
}

func (s *EnrichmentService) enrichActivity(ctx context.Context, trip TripContext, a response_models.Activity) response_models.EnrichedActivity {
	out := response_models.EnrichedActivity{Activity: a}

	if s.places == nil {
		out.PlaceID = MockPlaceID(trip.Destination, a.ActivityName)
		return out
	}
	if a.ActivityName == "" || a.ActivityName == missingField {
		return out
	}

	placeID := s.searchPlace(ctx, a.ActivityName, trip)
	if placeID == "" {
		return out
	}
	out.PlaceID = placeID

	details := resultOr(ctx, s.timeout,
		func(ctx context.Context) (*PlaceDetails, error) {
			return s.places.GetDetails(ctx, placeID, trip.LanguageCode())
		},
		func(err error) *PlaceDetails {
			s.logger.Debug("place details unavailable", zap.String("place_id", placeID), zap.Error(err))
			return nil
		})
	if details != nil {
		applyPlaceDetails(&out, details)
	}
	return out
}

// searchPlace tries "name destination" first and the bare name second.
func (s *EnrichmentService) searchPlace(ctx context.Context, name string, trip TripContext) string {
	search := func(query string) func(context.Context) (string, error) {
		return func(ctx context.Context) (string, error) {
			id, err := s.places.SearchText(ctx, query, trip.Location)
			if err == nil && id == "" {
				err = utils.ErrNoResult
			}
			return id, err
		}
	}

	return resultOr(ctx, s.timeout,
		search(strings.TrimSpace(name+" "+trip.Destination)),
		func(err error) string {
			s.logger.Debug("place search missed, retrying with name only", zap.String("activity", name), zap.Error(err))
			return resultOr(ctx, s.timeout, search(name), func(err error) string {
				s.logger.Debug("place search failed", zap.String("activity", name), zap.Error(err))
				return ""
			})
		})
}

func (s *EnrichmentService) travelLeg(ctx context.Context, from, to response_models.LatLng) *response_models.TravelLeg {
	if s.directions == nil {
		return s.estimateLeg(from, to)
	}

	return resultOr(ctx, s.timeout,
		func(ctx context.Context) (*response_models.TravelLeg, error) {
			route, err := s.directions.ComputeRoute(ctx, from, to)
			if err != nil {
				return nil, err
			}
			if route == nil {
				return nil, utils.ErrNoResult
			}
			return &response_models.TravelLeg{Duration: route.DurationText, DistanceMeters: route.DistanceMeters}, nil
		},
		func(err error) *response_models.TravelLeg {
			s.logger.Debug("route unavailable, estimating", zap.Error(err))
			return s.estimateLeg(from, to)
		})
}

// estimateLeg derives a plausible city driving leg from the great-circle
// distance, with a little random variation.
func (s *EnrichmentService) estimateLeg(from, to response_models.LatLng) *response_models.TravelLeg {
	angle := s2.LatLngFromDegrees(from.Lat, from.Lng).Distance(s2.LatLngFromDegrees(to.Lat, to.Lng))
	meters := angle.Radians() * earthRadiusMeters * roadFactor

	jitter := 1 + float64(s.rng.IntN(maxJitterPercent+1))/100
	meters *= jitter

	mins := int(math.Round(meters / 1000 / estimatedSpeedKmh * 60))
	if mins < minEstimatedMins {
		mins = minEstimatedMins
	}

	return &response_models.TravelLeg{
		Duration:       utils.FormatTravelDuration(time.Duration(mins) * time.Minute),
		DistanceMeters: int(math.Round(meters)),
		Estimated:      true,
	}
}

func applyPlaceDetails(out *response_models.EnrichedActivity, d *PlaceDetails) {
	out.Rating = d.Rating
	out.ReviewCount = d.ReviewCount
	out.Photos = d.Photos
	out.FormattedAddress = d.FormattedAddress
	out.Website = d.Website
	if d.Location != nil {
		loc := *d.Location
		out.Location = &loc
	}
}

// MockPlaceID returns a stable id for an activity at a destination, used when
// no place provider is configured.
func MockPlaceID(destination, activityName string) string {
	key := strings.ToLower(strings.TrimSpace(destination)) + "|" + strings.ToLower(strings.TrimSpace(activityName))
	return mockPlaceIDPrefix + uuid.NewSHA1(mockPlaceNamespace, []byte(key)).String()
}
