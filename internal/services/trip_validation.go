package services

import (
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/pkg/utils"
)

const MaxTripDays = 30

// ValidateTripRequest checks a planning request and normalises it into a
// TripContext. Failures are *utils.ValidationError.
func ValidateTripRequest(req request_models.TripPlanningRequest) (TripContext, error) {
	trip := TripContext{
		PersonaID:               strings.TrimSpace(req.PersonaID),
		Destination:             strings.TrimSpace(req.Destination),
		Theme:                   strings.TrimSpace(req.Theme),
		AccommodationPreference: strings.TrimSpace(req.AccommodationPreference),
		TransportPreference:     strings.TrimSpace(req.TransportPreference),
		GroupSize:               req.GroupSize,
		Budget:                  req.Budget,
	}

	if trip.PersonaID == "" {
		return TripContext{}, invalid("persona_id", "is required")
	}
	if trip.Destination == "" {
		return TripContext{}, invalid("destination", "is required")
	}

	start, err := utils.ParseTripDate(req.StartDate)
	if err != nil {
		return TripContext{}, invalid("start_date", "must be YYYY-MM-DD")
	}
	end, err := utils.ParseTripDate(req.EndDate)
	if err != nil {
		return TripContext{}, invalid("end_date", "must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return TripContext{}, invalid("end_date", "must not be before start_date")
	}
	trip.StartDate, trip.EndDate = start, end
	trip.DurationDays = utils.TripDurationDays(start, end)
	if trip.DurationDays > MaxTripDays {
		return TripContext{}, invalid("end_date", "trip is longer than 30 days")
	}

	if math.IsNaN(req.Budget) || math.IsInf(req.Budget, 0) || req.Budget <= 0 {
		return TripContext{}, invalid("budget", "must be a positive number")
	}

	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(req.Currency)))
	if err != nil {
		return TripContext{}, invalid("currency", "must be an ISO 4217 code")
	}
	trip.Currency = unit

	trip.Language = language.English
	if l := strings.TrimSpace(req.Language); l != "" {
		tag, err := language.Parse(l)
		if err != nil {
			return TripContext{}, invalid("language", "must be a BCP 47 language tag")
		}
		trip.Language = tag
	}

	switch {
	case trip.GroupSize == 0:
		trip.GroupSize = 1
	case trip.GroupSize < 0:
		return TripContext{}, invalid("group_size", "must be at least 1")
	}

	if (req.Latitude == nil) != (req.Longitude == nil) {
		return TripContext{}, invalid("latitude", "latitude and longitude must be given together")
	}
	if req.Latitude != nil {
		lat, lng := *req.Latitude, *req.Longitude
		if lat < -90 || lat > 90 {
			return TripContext{}, invalid("latitude", "must be between -90 and 90")
		}
		if lng < -180 || lng > 180 {
			return TripContext{}, invalid("longitude", "must be between -180 and 180")
		}
		trip.Location = &response_models.LatLng{Lat: lat, Lng: lng}
	}

	return trip, nil
}

func invalid(field, reason string) error {
	return &utils.ValidationError{Field: field, Reason: reason}
}
