package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"wayfarer/internal/models/response_models"
)

func generated(names ...string) []response_models.Activity {
	out := make([]response_models.Activity, 0, len(names))
	for _, n := range names {
		out = append(out, response_models.Activity{TimeOfDay: "Morning", ActivityName: n, ApproximateCost: "$10", Category: "Activity"})
	}
	return out
}

func TestEnrichDayWithoutPlacesUsesMockIDs(t *testing.T) {
	svc := NewEnrichmentService(nil, nil, nil, 0, zap.NewNop())

	got := svc.EnrichDay(context.Background(), testTrip(), generated("Temple of Literature", "Hoan Kiem Lake"))

	require.Len(t, got, 2)
	for _, a := range got {
		assert.True(t, strings.HasPrefix(a.PlaceID, "mock-"), a.PlaceID)
		assert.Nil(t, a.Location)
		assert.Nil(t, a.TravelToNext)
	}
	assert.NotEqual(t, got[0].PlaceID, got[1].PlaceID)
	assert.Equal(t, MockPlaceID("Hanoi", "Temple of Literature"), got[0].PlaceID)
	assert.Equal(t, "Temple of Literature", got[0].ActivityName)
}

func TestMockPlaceIDIsStable(t *testing.T) {
	assert.Equal(t, MockPlaceID("Hanoi", "Hike"), MockPlaceID(" hanoi ", "HIKE"))
	assert.NotEqual(t, MockPlaceID("Hanoi", "Hike"), MockPlaceID("Hue", "Hike"))
}

func TestEnrichDayResolvesPlacesAndTravel(t *testing.T) {
	places := &fakePlaces{
		ids: map[string]string{
			"Temple of Literature Hanoi": "p1",
			"Hoan Kiem Lake Hanoi":       "p2",
		},
		details: map[string]*PlaceDetails{
			"p1": {ID: "p1", Rating: 4.6, ReviewCount: 1200, Photos: []string{"places/p1/photos/a"},
				Location: &response_models.LatLng{Lat: 21.0285, Lng: 105.8355}, FormattedAddress: "58 Quoc Tu Giam", Website: "https://example.org"},
			"p2": {ID: "p2", Location: &response_models.LatLng{Lat: 21.0288, Lng: 105.8525}},
		},
	}
	directions := &fakeDirections{route: &Route{DurationText: "9 mins", DistanceMeters: 2100}}
	trip := testTrip()
	trip.Language = language.Vietnamese

	svc := NewEnrichmentService(places, directions, nil, 0, zap.NewNop())
	got := svc.EnrichDay(context.Background(), trip, generated("Temple of Literature", "Hoan Kiem Lake"))

	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].PlaceID)
	assert.Equal(t, 4.6, got[0].Rating)
	assert.Equal(t, 1200, got[0].ReviewCount)
	assert.Equal(t, "58 Quoc Tu Giam", got[0].FormattedAddress)
	assert.Equal(t, "https://example.org", got[0].Website)
	assert.Equal(t, []string{"places/p1/photos/a"}, got[0].Photos)
	require.NotNil(t, got[0].TravelToNext)
	assert.Equal(t, "9 mins", got[0].TravelToNext.Duration)
	assert.Equal(t, 2100, got[0].TravelToNext.DistanceMeters)
	assert.False(t, got[0].TravelToNext.Estimated)
	assert.Nil(t, got[1].TravelToNext)
	assert.Equal(t, 1, directions.calls)
	assert.Equal(t, []string{"vi", "vi"}, places.detailsLangs)
}

func TestEnrichDayFallsBackToNameOnlySearch(t *testing.T) {
	places := &fakePlaces{ids: map[string]string{"Night Market": "p9"}}
	svc := NewEnrichmentService(places, nil, nil, 0, zap.NewNop())

	got := svc.EnrichDay(context.Background(), testTrip(), generated("Night Market"))

	require.Len(t, got, 1)
	assert.Equal(t, "p9", got[0].PlaceID)
	assert.Equal(t, []string{"Night Market Hanoi", "Night Market"}, places.queries)
}

func TestEnrichDayKeepsGeneratedFieldsOnProviderErrors(t *testing.T) {
	t.Run("search fails", func(t *testing.T) {
		places := &fakePlaces{searchErr: errors.New("quota exceeded")}
		svc := NewEnrichmentService(places, nil, nil, 0, zap.NewNop())

		got := svc.EnrichDay(context.Background(), testTrip(), generated("Museum"))
		require.Len(t, got, 1)
		assert.Empty(t, got[0].PlaceID)
		assert.Equal(t, "Museum", got[0].ActivityName)
		assert.Equal(t, "$10", got[0].ApproximateCost)
		assert.Zero(t, places.detailsCalls)
	})

	t.Run("details fail", func(t *testing.T) {
		places := &fakePlaces{ids: map[string]string{"Museum Hanoi": "p3"}, detailsErr: errors.New("boom")}
		svc := NewEnrichmentService(places, nil, nil, 0, zap.NewNop())

		got := svc.EnrichDay(context.Background(), testTrip(), generated("Museum"))
		require.Len(t, got, 1)
		assert.Equal(t, "p3", got[0].PlaceID)
		assert.Nil(t, got[0].Location)
		assert.Zero(t, got[0].Rating)
	})
}

func TestEnrichDaySkipsUnnamedActivities(t *testing.T) {
	places := &fakePlaces{}
	svc := NewEnrichmentService(places, nil, nil, 0, zap.NewNop())

	got := svc.EnrichDay(context.Background(), testTrip(), generated("N/A"))
	require.Len(t, got, 1)
	assert.Empty(t, places.queries)
}

func locatedPlaces() *fakePlaces {
	return &fakePlaces{
		ids: map[string]string{"A Hanoi": "a", "B Hanoi": "b", "C Hanoi": "c"},
		details: map[string]*PlaceDetails{
			"a": {Location: &response_models.LatLng{Lat: 21.0285, Lng: 105.8355}},
			"b": {Location: &response_models.LatLng{Lat: 21.0368, Lng: 105.8342}},
			"c": {},
		},
	}
}

func TestEnrichDayEstimatesTravelWithoutDirections(t *testing.T) {
	svc := NewEnrichmentService(locatedPlaces(), nil, &seqRand{values: []int{10}}, 0, zap.NewNop())

	got := svc.EnrichDay(context.Background(), testTrip(), generated("A", "B", "C"))

	require.Len(t, got, 3)
	require.NotNil(t, got[0].TravelToNext)
	assert.True(t, got[0].TravelToNext.Estimated)
	// ~930 m straight line, stretched by the road factor and 10% jitter.
	assert.InDelta(t, 1430, got[0].TravelToNext.DistanceMeters, 60)
	assert.Equal(t, "5 mins", got[0].TravelToNext.Duration)
	assert.Nil(t, got[1].TravelToNext, "C has no location")
	assert.Nil(t, got[2].TravelToNext)
}

func TestEnrichDayEstimatesTravelWhenRoutingFails(t *testing.T) {
	directions := &fakeDirections{err: errors.New("mapbox down")}
	svc := NewEnrichmentService(locatedPlaces(), directions, &seqRand{values: []int{0}}, 0, zap.NewNop())

	got := svc.EnrichDay(context.Background(), testTrip(), generated("A", "B"))

	require.NotNil(t, got[0].TravelToNext)
	assert.True(t, got[0].TravelToNext.Estimated)
	assert.Positive(t, got[0].TravelToNext.DistanceMeters)
	assert.Equal(t, 1, directions.calls)
}

func TestEnrichDayEmpty(t *testing.T) {
	svc := NewEnrichmentService(nil, nil, nil, 0, zap.NewNop())
	got := svc.EnrichDay(context.Background(), testTrip(), nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
