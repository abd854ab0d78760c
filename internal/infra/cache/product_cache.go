// Package cache provides a Redis-backed cache-aside layer for product details.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const productKeyPrefix = "product:"

type redisProductCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisProductCache wraps an existing client.
func NewRedisProductCache(client *redis.Client, prefix string, ttl time.Duration) service.ProductCache {
	return &redisProductCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *redisProductCache) key(id string) string {
	return c.prefix + productKeyPrefix + id
}

// Get returns the cached product. A miss is (nil, false, nil).
func (c *redisProductCache) Get(ctx context.Context, id string) (*entity.Product, bool, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "cache get")
	}

	var product entity.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, false, errors.Wrap(err, "cache unmarshal")
	}

	return &product, true, nil
}

func (c *redisProductCache) Set(ctx context.Context, product *entity.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return errors.Wrap(err, "cache marshal")
	}

	return errors.Wrap(c.client.Set(ctx, c.key(product.ID), data, c.ttl).Err(), "cache set")
}

func (c *redisProductCache) Invalidate(ctx context.Context, id string) error {
	return errors.Wrap(c.client.Del(ctx, c.key(id)).Err(), "cache delete")
}

type noopProductCache struct{}

// NewNoopProductCache returns a cache that never hits.
func NewNoopProductCache() service.ProductCache {
	return noopProductCache{}
}

func (noopProductCache) Get(context.Context, string) (*entity.Product, bool, error) {
	return nil, false, nil
}

func (noopProductCache) Set(context.Context, *entity.Product) error { return nil }

func (noopProductCache) Invalidate(context.Context, string) error { return nil }

// Params holds dependencies for the cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New builds the product cache from config. Without a Redis address the cache is disabled.
func New(params Params) service.ProductCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, product cache disabled")

		return NewNoopProductCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Product cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisProductCache(client, cfg.Prefix, cfg.TTL)
}
