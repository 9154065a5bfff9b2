package repositories

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wayfarer/internal/catalog"
	"wayfarer/internal/models/db_models"
)

// CatalogRepository reads persona and module reference data. It satisfies
// catalog.Source.
type CatalogRepository interface {
	ListPersonas(ctx context.Context) ([]catalog.Persona, error)
	ListModules(ctx context.Context) ([]catalog.Module, error)
	SeedIfEmpty(ctx context.Context, personas []catalog.Persona, modules []catalog.Module) (bool, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListPersonas(ctx context.Context) ([]catalog.Persona, error) {
	var rows []db_models.Persona
	if err := r.db.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]catalog.Persona, 0, len(rows))
	for _, row := range rows {
		out = append(out, catalog.Persona{
			ID:               row.ID,
			Name:             row.Name,
			Tagline:          row.Tagline,
			Description:      row.Description,
			Introduction:     row.Introduction,
			Conclusion:       row.Conclusion,
			AvailableModules: []string(row.AvailableModules),
		})
	}
	return out, nil
}

func (r *catalogRepository) ListModules(ctx context.Context) ([]catalog.Module, error) {
	var rows []db_models.ItineraryModule
	if err := r.db.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]catalog.Module, 0, len(rows))
	for _, row := range rows {
		m := catalog.Module{
			ID:        row.ID,
			Name:      row.Name,
			Narrative: row.Narrative,
		}
		for _, a := range row.Activities {
			m.Activities = append(m.Activities, catalog.ModuleActivity{
				Type:     a.Type,
				Prompt:   a.Prompt,
				Keywords: a.Keywords,
			})
		}
		for _, s := range row.ApplicableSeasons {
			m.ApplicableSeasons = append(m.ApplicableSeasons, catalog.Season(s))
		}
		out = append(out, m)
	}
	return out, nil
}

// SeedIfEmpty inserts the given reference data when the personas table has no
// rows. It reports whether anything was written.
func (r *catalogRepository) SeedIfEmpty(ctx context.Context, personas []catalog.Persona, modules []catalog.Module) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db_models.Persona{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count personas: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, m := range modules {
			row := db_models.ItineraryModule{
				ID:                m.ID,
				Name:              m.Name,
				Narrative:         m.Narrative,
				ApplicableSeasons: seasonsToArray(m.ApplicableSeasons),
				Position:          i,
			}
			for _, a := range m.Activities {
				row.Activities = append(row.Activities, db_models.ModuleActivity{
					Type:     a.Type,
					Prompt:   a.Prompt,
					Keywords: a.Keywords,
				})
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("insert module %s: %w", m.ID, err)
			}
		}

		for i, p := range personas {
			row := db_models.Persona{
				ID:               p.ID,
				Name:             p.Name,
				Tagline:          p.Tagline,
				Description:      p.Description,
				Introduction:     p.Introduction,
				Conclusion:       p.Conclusion,
				AvailableModules: pq.StringArray(p.AvailableModules),
				Position:         i,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("insert persona %s: %w", p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func seasonsToArray(seasons []catalog.Season) pq.StringArray {
	out := make(pq.StringArray, 0, len(seasons))
	for _, s := range seasons {
		out = append(out, string(s))
	}
	return out
}
