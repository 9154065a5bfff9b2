// Package mem holds the key/value cache used in front of external providers.
package mem

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store caches JSON-encodable values by key.
type Store interface {
	// Get decodes the value stored under key into dst and reports whether it was found.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// InMemoryStore is a process-local Store used when no Redis is configured.
type InMemoryStore struct {
	cache *gocache.Cache
}

func NewInMemoryStore(defaultTTL, cleanupInterval time.Duration) *InMemoryStore {
	return &InMemoryStore{cache: gocache.New(defaultTTL, cleanupInterval)}
}

func (s *InMemoryStore) Get(_ context.Context, key string, dst any) (bool, error) {
	raw, ok := s.cache.Get(key)
	if !ok {
		return false, nil
	}
	data, ok := raw.([]byte)
	if !ok {
		return false, fmt.Errorf("cache entry %q has unexpected type %T", key, raw)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode cache entry %q: %w", key, err)
	}
	return true, nil
}

func (s *InMemoryStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache entry %q: %w", key, err)
	}
	s.cache.Set(key, data, ttl)
	return nil
}
