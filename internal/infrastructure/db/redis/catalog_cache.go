package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soulofsrilanka/travel-api/internal/core/domain"
)

const (
	hotelListKey = "catalog:hotels"
	hotelListTTL = time.Minute
)

// CatalogCache keeps the fetched-whole hotel listing in Redis for a short TTL
// so repeated listing calls skip the database. The creation path invalidates
// the key, so the TTL only bounds staleness across instances.
type CatalogCache struct {
	client *redis.Client
}

func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// GetHotels returns the cached listing and whether the key was present.
func (c *CatalogCache) GetHotels(ctx context.Context) ([]domain.Hotel, bool, error) {
	raw, err := c.client.Get(ctx, hotelListKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("catalog cache get: %w", err)
	}

	var hotels []domain.Hotel
	if err := json.Unmarshal(raw, &hotels); err != nil {
		// Treat a corrupt value as a miss; the next write replaces it.
		return nil, false, fmt.Errorf("catalog cache decode: %w", err)
	}
	return hotels, true, nil
}

func (c *CatalogCache) SetHotels(ctx context.Context, hotels []domain.Hotel) error {
	raw, err := json.Marshal(hotels)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	return c.client.Set(ctx, hotelListKey, raw, hotelListTTL).Err()
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, hotelListKey).Err()
}
