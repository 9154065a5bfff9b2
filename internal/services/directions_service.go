package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"wayfarer/internal/models/response_models"
	"wayfarer/pkg/utils"
)

// Route is a driving leg between two points.
type Route struct {
	DurationText   string
	DistanceMeters int
}

type DirectionsClient interface {
	// ComputeRoute returns utils.ErrNoResult when no route connects the points.
	ComputeRoute(ctx context.Context, origin, destination response_models.LatLng) (*Route, error)
}

// --------- In-memory cache keyed by (A,B) ---------

type routeKey struct {
	Profile string
	A       string
	B       string
}

func newRouteKey(profile string, a, b response_models.LatLng) routeKey {
	// ~11 m precision is enough to reuse a leg between the same two places.
	return routeKey{
		Profile: profile,
		A:       fmt.Sprintf("%.4f,%.4f", a.Lat, a.Lng),
		B:       fmt.Sprintf("%.4f,%.4f", b.Lat, b.Lng),
	}
}

type routeCacheEntry struct {
	Route     Route
	ExpiresAt time.Time
}

type RouteCache interface {
	Get(k routeKey) (Route, bool)
	Set(k routeKey, v Route, ttl time.Duration)
}

const routeCacheSweepInterval = 10 * time.Minute

// inMemoryRouteCache drops expired entries on Set, at most once per sweepEvery.
type inMemoryRouteCache struct {
	mu         sync.RWMutex
	store      map[routeKey]routeCacheEntry
	now        func() time.Time
	sweepEvery time.Duration
	lastSweep  time.Time
}

func NewInMemoryRouteCache() RouteCache {
	return newInMemoryRouteCache(time.Now, routeCacheSweepInterval)
}

func newInMemoryRouteCache(now func() time.Time, sweepEvery time.Duration) *inMemoryRouteCache {
	return &inMemoryRouteCache{
		store:      make(map[routeKey]routeCacheEntry),
		now:        now,
		sweepEvery: sweepEvery,
		lastSweep:  now(),
	}
}

func (c *inMemoryRouteCache) Get(k routeKey) (Route, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || c.now().After(it.ExpiresAt) {
		return Route{}, false
	}
	return it.Route, true
}

func (c *inMemoryRouteCache) Set(k routeKey, v Route, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if now.Sub(c.lastSweep) >= c.sweepEvery {
		for key, it := range c.store {
			if now.After(it.ExpiresAt) {
				delete(c.store, key)
			}
		}
		c.lastSweep = now
	}
	c.store[k] = routeCacheEntry{Route: v, ExpiresAt: now.Add(ttl)}
}

func (c *inMemoryRouteCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// -------------- Mapbox Directions client ---------------

const mapboxBaseURL = "https://api.mapbox.com"

type MapboxDirectionsClient struct {
	HTTP        *http.Client
	AccessToken string
	Cache       RouteCache
	DefaultTTL  time.Duration
	Profile     string
	BaseURL     string
}

func NewMapboxDirectionsClient(token string, cache RouteCache, ttl time.Duration) *MapboxDirectionsClient {
	return &MapboxDirectionsClient{
		HTTP:        &http.Client{Timeout: 15 * time.Second},
		AccessToken: token,
		Cache:       cache,
		DefaultTTL:  ttl,
		Profile:     "driving",
		BaseURL:     mapboxBaseURL,
	}
}

func (c *MapboxDirectionsClient) ComputeRoute(ctx context.Context, origin, destination response_models.LatLng) (*Route, error) {
	k := newRouteKey(c.Profile, origin, destination)
	if v, ok := c.Cache.Get(k); ok {
		return &v, nil
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("mapbox base url: %w", err)
	}
	u.Path = fmt.Sprintf("/directions/v5/mapbox/%s/%f,%f;%f,%f",
		c.Profile, origin.Lng, origin.Lat, destination.Lng, destination.Lat)
	q := url.Values{}
	q.Set("overview", "false")
	q.Set("alternatives", "false")
	q.Set("access_token", c.AccessToken)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mapbox directions http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("mapbox directions bad status: %s", resp.Status)
	}

	var payload struct {
		Code   string `json:"code"`
		Routes []struct {
			Duration float64 `json:"duration"`
			Distance float64 `json:"distance"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("mapbox decode: %w", err)
	}
	if payload.Code != "Ok" || len(payload.Routes) == 0 {
		return nil, utils.ErrNoResult
	}

	best := payload.Routes[0]
	route := Route{
		DurationText:   utils.FormatTravelDuration(time.Duration(best.Duration * float64(time.Second))),
		DistanceMeters: int(best.Distance + 0.5),
	}
	c.Cache.Set(k, route, c.DefaultTTL)

	return &route, nil
}
