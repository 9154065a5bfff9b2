// Package catalog holds the persona and module reference data. A Catalog is
// built once at process start and is read-only afterwards.
package catalog

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

type Season string

const (
	SeasonSpring  Season = "spring"
	SeasonSummer  Season = "summer"
	SeasonMonsoon Season = "monsoon"
	SeasonAutumn  Season = "autumn"
	SeasonWinter  Season = "winter"

	// AllSeasons marks a module that fits any season.
	AllSeasons Season = "all"
)

// Bookend modules open and close every multi-day trip.
const (
	ArrivalModuleID   = "arrival"
	DepartureModuleID = "departure"
)

func IsBookend(moduleID string) bool {
	return moduleID == ArrivalModuleID || moduleID == DepartureModuleID
}

type Persona struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Tagline          string   `json:"tagline"`
	Description      string   `json:"description"`
	Introduction     string   `json:"introduction"`
	Conclusion       string   `json:"conclusion"`
	AvailableModules []string `json:"available_modules"`
}

type ModuleActivity struct {
	Type     string   `json:"type"`
	Prompt   string   `json:"prompt"`
	Keywords []string `json:"keywords"`
}

type Module struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Narrative         string           `json:"narrative"`
	Activities        []ModuleActivity `json:"activities"`
	ApplicableSeasons []Season         `json:"applicable_seasons"`
}

// FitsSeason reports whether the module is tagged "all" or with season.
func (m Module) FitsSeason(season Season) bool {
	for _, s := range m.ApplicableSeasons {
		if s == AllSeasons || s == season {
			return true
		}
	}
	return false
}

type Catalog struct {
	personas     map[string]Persona
	personaOrder []string
	modules      map[string]Module
	moduleOrder  []string
}

// New builds a catalog from deep copies of personas and modules. Later
// entries with a duplicate id replace earlier ones.
func New(personas []Persona, modules []Module) *Catalog {
	c := &Catalog{
		personas: make(map[string]Persona, len(personas)),
		modules:  make(map[string]Module, len(modules)),
	}

	for _, p := range personas {
		p.AvailableModules = slices.Clone(p.AvailableModules)
		if _, dup := c.personas[p.ID]; !dup {
			c.personaOrder = append(c.personaOrder, p.ID)
		}
		c.personas[p.ID] = p
	}

	for _, m := range modules {
		m.ApplicableSeasons = slices.Clone(m.ApplicableSeasons)
		acts := make([]ModuleActivity, len(m.Activities))
		for i, a := range m.Activities {
			a.Keywords = slices.Clone(a.Keywords)
			acts[i] = a
		}
		m.Activities = acts
		if _, dup := c.modules[m.ID]; !dup {
			c.moduleOrder = append(c.moduleOrder, m.ID)
		}
		c.modules[m.ID] = m
	}

	return c
}

func (c *Catalog) Persona(id string) (Persona, bool) {
	p, ok := c.personas[id]
	return p, ok
}

func (c *Catalog) Module(id string) (Module, bool) {
	m, ok := c.modules[id]
	return m, ok
}

// Personas returns personas in load order.
func (c *Catalog) Personas() []Persona {
	out := make([]Persona, 0, len(c.personaOrder))
	for _, id := range c.personaOrder {
		out = append(out, c.personas[id])
	}
	return out
}

// Modules returns modules in load order.
func (c *Catalog) Modules() []Module {
	out := make([]Module, 0, len(c.moduleOrder))
	for _, id := range c.moduleOrder {
		out = append(out, c.modules[id])
	}
	return out
}

// Source is where reference data is read from at startup.
type Source interface {
	ListPersonas(ctx context.Context) ([]Persona, error)
	ListModules(ctx context.Context) ([]Module, error)
}

// Load reads personas and modules concurrently and freezes them into a Catalog.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	var (
		personas []Persona
		modules  []Module
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		personas, err = src.ListPersonas(gctx)
		if err != nil {
			return fmt.Errorf("list personas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		modules, err = src.ListModules(gctx)
		if err != nil {
			return fmt.Errorf("list modules: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New(personas, modules), nil
}
