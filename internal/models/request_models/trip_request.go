package request_models

// TripPlanningRequest is the body of POST /itineraries.
type TripPlanningRequest struct {
	PersonaID   string   `json:"persona_id" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`

	// YYYY-MM-DD
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`

	Budget   float64 `json:"budget" binding:"required,gt=0"`
	Currency string  `json:"currency" binding:"required,len=3"`

	Theme                   string `json:"theme"`
	GroupSize               int    `json:"group_size" binding:"omitempty,min=1"`
	AccommodationPreference string `json:"accommodation_preference"`
	TransportPreference     string `json:"transport_preference"`
	Language                string `json:"language"`
}
