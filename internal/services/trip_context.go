package services

import (
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"wayfarer/internal/models/response_models"
)

// TripContext is a validated planning request with parsed dates, currency and
// language. It is built by ValidateTripRequest.
type TripContext struct {
	PersonaID   string
	Destination string
	Location    *response_models.LatLng

	StartDate    time.Time
	EndDate      time.Time
	DurationDays int

	Budget   float64
	Currency currency.Unit

	Theme                   string
	GroupSize               int
	AccommodationPreference string
	TransportPreference     string
	Language                language.Tag
}

// CurrencyCode returns the ISO 4217 code, e.g. "EUR".
func (t TripContext) CurrencyCode() string {
	return t.Currency.String()
}

// LanguageCode returns the BCP 47 tag, e.g. "vi" or "pt-BR".
func (t TripContext) LanguageCode() string {
	return t.Language.String()
}

// AverageDailyBudget splits the total budget evenly over the trip's days.
func (t TripContext) AverageDailyBudget() float64 {
	if t.DurationDays <= 0 {
		return t.Budget
	}
	return t.Budget / float64(t.DurationDays)
}
