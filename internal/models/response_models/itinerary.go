package response_models

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Activity is one time-of-day slot as written by the generation model.
type Activity struct {
	TimeOfDay         string `json:"timeOfDay"`
	ActivityName      string `json:"activityName"`
	Description       string `json:"description"`
	ApproximateCost   string `json:"approximateCost"`
	SuggestedDuration string `json:"suggestedDuration"`
	Category          string `json:"category"`
}

type TravelLeg struct {
	Duration       string `json:"duration"`
	DistanceMeters int    `json:"distanceMeters"`
	// Estimated is set when the leg was synthesized instead of routed.
	Estimated bool `json:"estimated,omitempty"`
}

// EnrichedActivity is an Activity plus whatever place data could be resolved.
type EnrichedActivity struct {
	Activity

	PlaceID          string     `json:"placeId,omitempty"`
	Rating           float64    `json:"rating,omitempty"`
	ReviewCount      int        `json:"reviewCount,omitempty"`
	Photos           []string   `json:"photos,omitempty"`
	Location         *LatLng    `json:"location,omitempty"`
	FormattedAddress string     `json:"formattedAddress,omitempty"`
	Website          string     `json:"website,omitempty"`
	TravelToNext     *TravelLeg `json:"travelToNext,omitempty"`
}

type ItineraryDay struct {
	DayNumber  int                `json:"dayNumber"`
	Date       string             `json:"date"`
	ModuleID   string             `json:"moduleId"`
	ModuleName string             `json:"moduleName"`
	Narrative  string             `json:"narrative"`
	Activities []EnrichedActivity `json:"activities"`

	Cost       float64 `json:"cost"`
	Attempts   int     `json:"attempts"`
	OverBudget bool    `json:"overBudget"`
	Blocked    bool    `json:"blocked"`
}

type CostBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Activities    float64 `json:"activities"`
	Transport     float64 `json:"transport"`
	Food          float64 `json:"food"`
	Miscellaneous float64 `json:"miscellaneous"`
	Total         float64 `json:"total"`
	IsOverBudget  bool    `json:"isOverBudget"`
	Overage       float64 `json:"overage"`
	// Uncategorized sums costs whose category matched none of the five buckets.
	// It is reported for visibility and is not part of Total.
	Uncategorized float64 `json:"uncategorized,omitempty"`
}

// PersonaSnapshot freezes the persona name and the module sequence ("DNA")
// used for one itinerary.
type PersonaSnapshot struct {
	PersonaID   string   `json:"personaId"`
	PersonaName string   `json:"personaName"`
	Tagline     string   `json:"tagline,omitempty"`
	ModuleDNA   []string `json:"moduleDna"`
}

type Itinerary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"createdAt,omitempty"`

	Destination             string  `json:"destination"`
	Location                *LatLng `json:"location,omitempty"`
	StartDate               string  `json:"startDate"`
	EndDate                 string  `json:"endDate"`
	DurationDays            int     `json:"durationDays"`
	Season                  string  `json:"season"`
	Budget                  float64 `json:"budget"`
	Currency                string  `json:"currency"`
	Theme                   string  `json:"theme,omitempty"`
	GroupSize               int     `json:"groupSize"`
	AccommodationPreference string  `json:"accommodationPreference,omitempty"`
	TransportPreference     string  `json:"transportPreference,omitempty"`
	Language                string  `json:"language"`

	Introduction string          `json:"introduction,omitempty"`
	Conclusion   string          `json:"conclusion,omitempty"`
	Persona      PersonaSnapshot `json:"persona"`
	Cost         CostBreakdown   `json:"costBreakdown"`
	Days         []ItineraryDay  `json:"days"`
}
