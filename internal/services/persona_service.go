package services

import (
	"context"

	"wayfarer/internal/catalog"
	"wayfarer/internal/models/response_models"
	"wayfarer/pkg/utils"
)

type PersonaServiceInterface interface {
	ListPersonas(ctx context.Context) ([]response_models.PersonaResponse, error)
	GetPersona(ctx context.Context, id string) (*response_models.PersonaResponse, error)
}

type PersonaService struct {
	catalog *catalog.Catalog
}

func NewPersonaService(cat *catalog.Catalog) PersonaServiceInterface {
	return &PersonaService{catalog: cat}
}

func (p *PersonaService) ListPersonas(_ context.Context) ([]response_models.PersonaResponse, error) {
	personas := p.catalog.Personas()
	out := make([]response_models.PersonaResponse, 0, len(personas))
	for _, persona := range personas {
		out = append(out, response_models.PersonaResponse{
			ID:          persona.ID,
			Name:        persona.Name,
			Tagline:     persona.Tagline,
			Description: persona.Description,
		})
	}
	return out, nil
}

func (p *PersonaService) GetPersona(_ context.Context, id string) (*response_models.PersonaResponse, error) {
	persona, ok := p.catalog.Persona(id)
	if !ok {
		return nil, utils.ErrPersonaNotFound
	}

	resp := &response_models.PersonaResponse{
		ID:           persona.ID,
		Name:         persona.Name,
		Tagline:      persona.Tagline,
		Description:  persona.Description,
		Introduction: persona.Introduction,
		Conclusion:   persona.Conclusion,
		Modules:      []response_models.ModuleResponse{},
	}
	for _, id := range persona.AvailableModules {
		m, ok := p.catalog.Module(id)
		if !ok {
			continue
		}
		seasons := make([]string, 0, len(m.ApplicableSeasons))
		for _, s := range m.ApplicableSeasons {
			seasons = append(seasons, string(s))
		}
		resp.Modules = append(resp.Modules, response_models.ModuleResponse{
			ID:                m.ID,
			Name:              m.Name,
			Narrative:         m.Narrative,
			ApplicableSeasons: seasons,
		})
	}
	return resp, nil
}
