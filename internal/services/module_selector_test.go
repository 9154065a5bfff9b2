package services

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wayfarer/internal/catalog"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func bookends() []catalog.Module {
	return []catalog.Module{
		{ID: catalog.ArrivalModuleID, Name: "Arrival", ApplicableSeasons: []catalog.Season{catalog.AllSeasons}},
		{ID: catalog.DepartureModuleID, Name: "Departure", ApplicableSeasons: []catalog.Season{catalog.AllSeasons}},
	}
}

func abCatalog() (catalog.Persona, *catalog.Catalog) {
	persona := catalog.Persona{
		ID:               "p",
		Name:             "Tester",
		AvailableModules: []string{"arrival", "A", "B", "departure"},
	}
	modules := append(bookends(),
		catalog.Module{ID: "A", Name: "Module A", ApplicableSeasons: []catalog.Season{catalog.AllSeasons}},
		catalog.Module{ID: "B", Name: "Module B", ApplicableSeasons: []catalog.Season{catalog.AllSeasons}},
	)
	return persona, catalog.New([]catalog.Persona{persona}, modules)
}

func TestSelectShortTrips(t *testing.T) {
	persona, cat := abCatalog()
	s := NewModuleSelector(&seqRand{values: []int{0}})
	start := date(2025, time.March, 1)

	assert.Empty(t, s.Select(persona, cat, 0, start))
	assert.Empty(t, s.Select(persona, cat, -3, start))
	assert.Equal(t, []string{"arrival"}, s.Select(persona, cat, 1, start))
	assert.Equal(t, []string{"arrival", "departure"}, s.Select(persona, cat, 2, start))
}

func TestSelectFiveDayScenario(t *testing.T) {
	persona, cat := abCatalog()

	for seed := uint64(0); seed < 200; seed++ {
		s := NewModuleSelector(rand.New(rand.NewPCG(seed, seed*7+1)))
		seq := s.Select(persona, cat, 5, date(2025, time.August, 10))

		require.Len(t, seq, 5)
		assert.Equal(t, "arrival", seq[0])
		assert.Equal(t, "departure", seq[4])
		for i := 1; i <= 3; i++ {
			assert.Contains(t, []string{"A", "B"}, seq[i])
		}
		for i := 1; i < 3; i++ {
			assert.NotEqual(t, seq[i], seq[i+1], "seed %d produced %v", seed, seq)
		}
	}
}

func TestSelectRepetitionGuard(t *testing.T) {
	persona, cat := abCatalog()
	// Always drawing index 0 would repeat A every day without the guard.
	s := NewModuleSelector(&seqRand{values: []int{0}})

	seq := s.Select(persona, cat, 6, date(2025, time.May, 1))
	assert.Equal(t, []string{"arrival", "A", "B", "A", "B", "departure"}, seq)
}

func TestSelectSingleModulePoolRepeats(t *testing.T) {
	persona := catalog.Persona{ID: "p", AvailableModules: []string{"arrival", "A", "departure"}}
	cat := catalog.New([]catalog.Persona{persona}, append(bookends(),
		catalog.Module{ID: "A", ApplicableSeasons: []catalog.Season{catalog.AllSeasons}}))

	seq := NewModuleSelector(&seqRand{values: []int{0}}).Select(persona, cat, 4, date(2025, time.May, 1))
	assert.Equal(t, []string{"arrival", "A", "A", "departure"}, seq)
}

func TestSelectFiltersBySeason(t *testing.T) {
	persona := catalog.Persona{
		ID:               "p",
		AvailableModules: []string{"arrival", "beach", "snow", "museum", "departure"},
	}
	cat := catalog.New([]catalog.Persona{persona}, append(bookends(),
		catalog.Module{ID: "beach", ApplicableSeasons: []catalog.Season{catalog.SeasonSummer}},
		catalog.Module{ID: "snow", ApplicableSeasons: []catalog.Season{catalog.SeasonWinter}},
		catalog.Module{ID: "museum", ApplicableSeasons: []catalog.Season{catalog.AllSeasons}},
	))

	s := NewModuleSelector(rand.New(rand.NewPCG(1, 2)))
	for range 50 {
		seq := s.Select(persona, cat, 7, date(2025, time.January, 15))
		require.Len(t, seq, 7)
		for _, id := range seq[1:6] {
			assert.Contains(t, []string{"snow", "museum"}, id)
		}
	}
}

func TestSelectIgnoresModulesMissingFromCatalogAndOtherPersonas(t *testing.T) {
	persona := catalog.Persona{ID: "p", AvailableModules: []string{"arrival", "ghost", "A", "departure"}}
	cat := catalog.New([]catalog.Persona{persona}, append(bookends(),
		catalog.Module{ID: "A", ApplicableSeasons: []catalog.Season{catalog.AllSeasons}},
		catalog.Module{ID: "not-mine", ApplicableSeasons: []catalog.Season{catalog.AllSeasons}},
	))

	seq := NewModuleSelector(rand.New(rand.NewPCG(3, 4))).Select(persona, cat, 5, date(2025, time.June, 1))
	assert.Equal(t, []string{"arrival", "A", "A", "A", "departure"}, seq)
}

func TestSelectEmptyPoolFallsBackToFirstPersonaModule(t *testing.T) {
	persona := catalog.Persona{ID: "p", AvailableModules: []string{"arrival", "beach", "rafting", "departure"}}
	cat := catalog.New([]catalog.Persona{persona}, append(bookends(),
		catalog.Module{ID: "beach", ApplicableSeasons: []catalog.Season{catalog.SeasonSummer}},
		catalog.Module{ID: "rafting", ApplicableSeasons: []catalog.Season{catalog.SeasonMonsoon}},
	))

	seq := NewModuleSelector(nil).Select(persona, cat, 4, date(2025, time.December, 20))
	assert.Equal(t, []string{"arrival", "beach", "beach", "departure"}, seq)
}

func TestSelectEmptyPoolWithOnlyBookends(t *testing.T) {
	persona := catalog.Persona{ID: "p", AvailableModules: []string{"departure", "arrival"}}
	cat := catalog.New([]catalog.Persona{persona}, bookends())

	seq := NewModuleSelector(nil).Select(persona, cat, 3, date(2025, time.April, 2))
	assert.Equal(t, []string{"arrival", "departure", "departure"}, seq)
}

func TestSelectSeedCatalogShape(t *testing.T) {
	personas, modules, err := catalog.Seed()
	require.NoError(t, err)
	cat := catalog.New(personas, modules)
	s := NewModuleSelector(rand.New(rand.NewPCG(9, 9)))

	for _, p := range cat.Personas() {
		for month := time.January; month <= time.December; month++ {
			for d := 3; d <= 10; d++ {
				seq := s.Select(p, cat, d, date(2025, month, 1))
				require.Len(t, seq, d)
				assert.Equal(t, catalog.ArrivalModuleID, seq[0])
				assert.Equal(t, catalog.DepartureModuleID, seq[d-1])
				for _, id := range seq[1 : d-1] {
					assert.Contains(t, p.AvailableModules, id, "%s not eligible for %s", id, p.ID)
				}
			}
		}
	}
}
