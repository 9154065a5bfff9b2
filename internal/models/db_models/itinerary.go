package db_models

import "wayfarer/internal/models/response_models"

// ItineraryRecord stores a finished itinerary. The searchable fields are
// columns; the full document is kept as jsonb.
type ItineraryRecord struct {
	BaseModel
	PersonaID    string `gorm:"index"`
	Title        string
	Destination  string `gorm:"index"`
	StartDate    string
	EndDate      string
	Budget       float64
	Currency     string
	TotalCost    float64
	IsOverBudget bool

	Document response_models.Itinerary `gorm:"serializer:json;type:jsonb"`
}

func (ItineraryRecord) TableName() string {
	return "itineraries"
}
