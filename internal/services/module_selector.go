package services

import (
	"math/rand/v2"
	"time"

	"wayfarer/internal/catalog"
)

// RandSource is the subset of *rand.Rand the selector draws from.
type RandSource interface {
	IntN(n int) int
}

type ModuleSelector struct {
	rng RandSource
}

// NewModuleSelector returns a selector drawing from rng, or from the global
// math/rand/v2 source when rng is nil.
func NewModuleSelector(rng RandSource) *ModuleSelector {
	if rng == nil {
		rng = globalRand{}
	}
	return &ModuleSelector{rng: rng}
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Select returns one module id per trip day, day 1 first. Trips of two or more
// days open with arrival and close with departure; interior days are drawn from
// the persona's season-appropriate modules.
func (s *ModuleSelector) Select(persona catalog.Persona, cat *catalog.Catalog, durationDays int, startDate time.Time) []string {
	switch {
	case durationDays <= 0:
		return []string{}
	case durationDays == 1:
		return []string{catalog.ArrivalModuleID}
	case durationDays == 2:
		return []string{catalog.ArrivalModuleID, catalog.DepartureModuleID}
	}

	pool := seasonalPool(persona, cat, ClassifySeason(startDate.Month()))
	interior := durationDays - 2

	sequence := make([]string, 0, durationDays)
	sequence = append(sequence, catalog.ArrivalModuleID)

	if len(pool) == 0 {
		fallback := fallbackModule(persona)
		for range interior {
			sequence = append(sequence, fallback)
		}
	} else {
		prev := -1
		for range interior {
			idx := s.rng.IntN(len(pool))
			if idx == prev && len(pool) > 1 {
				idx = (idx + 1) % len(pool)
			}
			sequence = append(sequence, pool[idx])
			prev = idx
		}
	}

	return append(sequence, catalog.DepartureModuleID)
}

// seasonalPool keeps the persona's non-bookend modules that exist in the
// catalog and fit season, in the persona's own order.
func seasonalPool(persona catalog.Persona, cat *catalog.Catalog, season catalog.Season) []string {
	var pool []string
	for _, id := range persona.AvailableModules {
		if catalog.IsBookend(id) {
			continue
		}
		m, ok := cat.Module(id)
		if !ok || !m.FitsSeason(season) {
			continue
		}
		pool = append(pool, id)
	}
	return pool
}

func fallbackModule(persona catalog.Persona) string {
	for _, id := range persona.AvailableModules {
		if !catalog.IsBookend(id) {
			return id
		}
	}
	if len(persona.AvailableModules) > 0 {
		return persona.AvailableModules[0]
	}
	return catalog.ArrivalModuleID
}
