package db_models

import "github.com/lib/pq"

// Persona rows use the catalog id as their natural key.
type Persona struct {
	ID               string `gorm:"primaryKey"`
	Name             string
	Tagline          string
	Description      string
	Introduction     string
	Conclusion       string
	AvailableModules pq.StringArray `gorm:"type:text[]"`
	Position         int            `gorm:"index"`
	CreatedAt        int64          `gorm:"autoCreateTime"`
}

type ItineraryModule struct {
	ID                string `gorm:"primaryKey"`
	Name              string
	Narrative         string
	Activities        []ModuleActivity `gorm:"serializer:json;type:jsonb"`
	ApplicableSeasons pq.StringArray   `gorm:"type:text[]"`
	Position          int              `gorm:"index"`
	CreatedAt         int64            `gorm:"autoCreateTime"`
}

type ModuleActivity struct {
	Type     string   `json:"type"`
	Prompt   string   `json:"prompt"`
	Keywords []string `json:"keywords"`
}
