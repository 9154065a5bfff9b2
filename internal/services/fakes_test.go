package services

import (
	"context"
	"sync"

	"wayfarer/internal/models/response_models"
	"wayfarer/pkg/utils"
)

// seqRand replays values in order, wrapping around, each reduced modulo n.
type seqRand struct {
	values []int
	i      int
}

func (r *seqRand) IntN(n int) int {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v % n
}

type fakeGeneration struct {
	mu        sync.Mutex
	responses []utils.GenerationResponse
	errs      []error
	requests  []utils.GenerationRequest
}

func (f *fakeGeneration) Generate(_ context.Context, req utils.GenerationRequest) (utils.GenerationResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := len(f.requests)
	f.requests = append(f.requests, req)

	if i < len(f.errs) && f.errs[i] != nil {
		return utils.GenerationResponse{}, f.errs[i]
	}
	if len(f.responses) == 0 {
		return utils.GenerationResponse{}, nil
	}
	if i >= len(f.responses) {
		return f.responses[len(f.responses)-1], nil
	}
	return f.responses[i], nil
}

func (f *fakeGeneration) prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r.Prompt)
	}
	return out
}

type fakePlaces struct {
	ids        map[string]string
	searchErr  error
	details    map[string]*PlaceDetails
	detailsErr error

	queries      []string
	detailsCalls int
	detailsLangs []string
}

func (f *fakePlaces) SearchText(_ context.Context, query string, _ *response_models.LatLng) (string, error) {
	f.queries = append(f.queries, query)
	if f.searchErr != nil {
		return "", f.searchErr
	}
	id, ok := f.ids[query]
	if !ok {
		return "", utils.ErrNoResult
	}
	return id, nil
}

func (f *fakePlaces) GetDetails(_ context.Context, placeID, language string) (*PlaceDetails, error) {
	f.detailsCalls++
	f.detailsLangs = append(f.detailsLangs, language)
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	d, ok := f.details[placeID]
	if !ok {
		return nil, utils.ErrNoResult
	}
	return d, nil
}

type fakeDirections struct {
	route *Route
	err   error
	calls int
}

func (f *fakeDirections) ComputeRoute(context.Context, response_models.LatLng, response_models.LatLng) (*Route, error) {
	f.calls++
	return f.route, f.err
}

type fakeTranslator struct {
	prefix string
	err    error
	calls  int
	target string
}

func (f *fakeTranslator) Translate(_ context.Context, texts []string, target string) ([]string, error) {
	f.calls++
	f.target = target
	if f.err != nil {
		return nil, f.err
	}
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = f.prefix + t
	}
	return out, nil
}

type fakeItineraryRepo struct {
	saved   []*response_models.Itinerary
	saveErr error
	byID    map[string]*response_models.Itinerary
	getErr  error
}

func (f *fakeItineraryRepo) Save(_ context.Context, it *response_models.Itinerary) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, it)
	return nil
}

func (f *fakeItineraryRepo) GetByID(_ context.Context, id string) (*response_models.Itinerary, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byID[id], nil
}
