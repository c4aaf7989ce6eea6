package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kcoproperties/leasing-api/internal/domain"
	"github.com/kcoproperties/leasing-api/pkg/config"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds the available-property listing, the hottest read on the
// public site. Writes to properties invalidate the key.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    cfg.CacheTTL,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) GetAvailableProperties(ctx context.Context) ([]domain.Property, error) {
	data, err := c.client.Get(ctx, availablePropertiesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var props []domain.Property
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, err
	}
	return props, nil
}

func (c *RedisCache) SetAvailableProperties(ctx context.Context, props []domain.Property) error {
	payload, err := json.Marshal(props)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availablePropertiesKey, payload, c.ttl).Err()
}

func (c *RedisCache) InvalidateProperties(ctx context.Context) error {
	return c.client.Del(ctx, availablePropertiesKey).Err()
}

const availablePropertiesKey = "cache:properties:available"
