package branches

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

const cacheKey = "tablebooking:branches"

// Cache кэш списка филиалов в Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает новый экземпляр кэша
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// Get возвращает закэшированный список филиалов
func (c *Cache) Get(ctx context.Context) ([]domain.Branch, error) {
	val, err := c.client.Get(ctx, cacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get: %v", ErrCache, err)
	}

	var branches []domain.Branch
	if err := json.Unmarshal(val, &branches); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrCache, err)
	}
	return branches, nil
}

// Set сохраняет список филиалов с TTL
func (c *Cache) Set(ctx context.Context, branches []domain.Branch) error {
	data, err := json.Marshal(branches)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrCache, err)
	}
	if err := c.client.Set(ctx, cacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrCache, err)
	}
	return nil
}
