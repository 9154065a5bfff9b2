package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	places "google.golang.org/api/places/v1"
	"wayfarer/internal/models/response_models"
	mem "wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

const (
	placeSearchBiasRadiusMeters = 30000
	maxPlacePhotos              = 5
	placeDetailFields           = "id,displayName,rating,userRatingCount,photos,location,formattedAddress,websiteUri"
)

// PlaceDetails is the subset of a place record attached to an activity.
type PlaceDetails struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Rating           float64                 `json:"rating"`
	ReviewCount      int                     `json:"reviewCount"`
	Photos           []string                `json:"photos"`
	Location         *response_models.LatLng `json:"location"`
	FormattedAddress string                  `json:"formattedAddress"`
	Website          string                  `json:"website"`
}

// PlacesClient resolves free-text activity names to real places. Both methods
// return utils.ErrNoResult when the provider answers with nothing.
type PlacesClient interface {
	SearchText(ctx context.Context, query string, bias *response_models.LatLng) (string, error)
	GetDetails(ctx context.Context, placeID, language string) (*PlaceDetails, error)
}

type GooglePlacesClient struct {
	svc *places.Service
}

func NewGooglePlacesClient(ctx context.Context, apiKey string) (*GooglePlacesClient, error) {
	svc, err := places.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create places client: %w", err)
	}
	return &GooglePlacesClient{svc: svc}, nil
}

func (c *GooglePlacesClient) SearchText(ctx context.Context, query string, bias *response_models.LatLng) (string, error) {
	req := &places.GoogleMapsPlacesV1SearchTextRequest{
		TextQuery:      query,
		MaxResultCount: 1,
	}
	if bias != nil {
		req.LocationBias = &places.GoogleMapsPlacesV1SearchTextRequestLocationBias{
			Circle: &places.GoogleMapsPlacesV1Circle{
				Center: &places.GoogleTypeLatLng{Latitude: bias.Lat, Longitude: bias.Lng},
				Radius: placeSearchBiasRadiusMeters,
			},
		}
	}

	resp, err := c.svc.Places.SearchText(req).Fields("places.id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("places search %q: %w", query, err)
	}
	if len(resp.Places) == 0 || resp.Places[0] == nil || resp.Places[0].Id == "" {
		return "", utils.ErrNoResult
	}
	return resp.Places[0].Id, nil
}

func (c *GooglePlacesClient) GetDetails(ctx context.Context, placeID, language string) (*PlaceDetails, error) {
	call := c.svc.Places.Get("places/" + placeID).Fields(placeDetailFields).Context(ctx)
	if language != "" {
		call = call.LanguageCode(language)
	}

	p, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("place details %s: %w", placeID, err)
	}
	if p == nil {
		return nil, utils.ErrNoResult
	}

	details := &PlaceDetails{
		ID:               p.Id,
		Rating:           p.Rating,
		ReviewCount:      int(p.UserRatingCount),
		FormattedAddress: p.FormattedAddress,
		Website:          p.WebsiteUri,
	}
	if p.DisplayName != nil {
		details.Name = p.DisplayName.Text
	}
	if p.Location != nil {
		details.Location = &response_models.LatLng{Lat: p.Location.Latitude, Lng: p.Location.Longitude}
	}
	for _, photo := range p.Photos {
		if photo == nil || photo.Name == "" {
			continue
		}
		details.Photos = append(details.Photos, photo.Name)
		if len(details.Photos) == maxPlacePhotos {
			break
		}
	}
	return details, nil
}

// CachedPlacesClient serves repeated lookups from a mem.Store. Cache failures
// are logged and fall through to the wrapped client.
type CachedPlacesClient struct {
	next   PlacesClient
	store  mem.Store
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedPlacesClient(next PlacesClient, store mem.Store, ttl time.Duration, logger *zap.Logger) *CachedPlacesClient {
	return &CachedPlacesClient{next: next, store: store, ttl: ttl, logger: logger}
}

func (c *CachedPlacesClient) SearchText(ctx context.Context, query string, bias *response_models.LatLng) (string, error) {
	key := "place:search:" + strings.ToLower(strings.TrimSpace(query))
	if bias != nil {
		key += fmt.Sprintf("@%.3f,%.3f", bias.Lat, bias.Lng)
	}

	var id string
	if ok, err := c.store.Get(ctx, key, &id); err != nil {
		c.logger.Debug("place cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return id, nil
	}

	id, err := c.next.SearchText(ctx, query, bias)
	if err != nil {
		return "", err
	}
	if err := c.store.Set(ctx, key, id, c.ttl); err != nil {
		c.logger.Debug("place cache write failed", zap.String("key", key), zap.Error(err))
	}
	return id, nil
}

func (c *CachedPlacesClient) GetDetails(ctx context.Context, placeID, language string) (*PlaceDetails, error) {
	key := "place:details:" + placeID + ":" + language

	var details PlaceDetails
	if ok, err := c.store.Get(ctx, key, &details); err != nil {
		c.logger.Debug("place cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return &details, nil
	}

	fetched, err := c.next.GetDetails(ctx, placeID, language)
	if err != nil {
		return nil, err
	}
	if err := c.store.Set(ctx, key, fetched, c.ttl); err != nil {
		c.logger.Debug("place cache write failed", zap.String("key", key), zap.Error(err))
	}
	return fetched, nil
}
