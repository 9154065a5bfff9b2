package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/response_models"
)

type ItineraryRepository interface {
	Save(ctx context.Context, itinerary *response_models.Itinerary) error
	// GetByID returns nil, nil when no itinerary has the id.
	GetByID(ctx context.Context, id string) (*response_models.Itinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Save(ctx context.Context, itinerary *response_models.Itinerary) error {
	id, err := uuid.Parse(itinerary.ID)
	if err != nil {
		return err
	}

	record := db_models.ItineraryRecord{
		BaseModel:    db_models.BaseModel{ID: id, CreatedAt: itinerary.CreatedAt},
		PersonaID:    itinerary.Persona.PersonaID,
		Title:        itinerary.Title,
		Destination:  itinerary.Destination,
		StartDate:    itinerary.StartDate,
		EndDate:      itinerary.EndDate,
		Budget:       itinerary.Budget,
		Currency:     itinerary.Currency,
		TotalCost:    itinerary.Cost.Total,
		IsOverBudget: itinerary.Cost.IsOverBudget,
		Document:     *itinerary,
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(&record).Error
	})
}

func (r *itineraryRepository) GetByID(ctx context.Context, id string) (*response_models.Itinerary, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	var record db_models.ItineraryRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	doc := record.Document
	doc.ID = record.ID.String()
	doc.CreatedAt = record.CreatedAt
	return &doc, nil
}
