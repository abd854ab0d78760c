package cache

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requires Redis on localhost:6379, skipped otherwise
const testRedisAddr = "localhost:6379"

func setupTestCache(t *testing.T) *redisProductCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}
	t.Cleanup(func() { client.Close() })

	return NewRedisProductCache(client, "storefront-test:", time.Minute).(*redisProductCache)
}

func TestRedisProductCache_RoundTrip(t *testing.T) {
	c := setupTestCache(t)
	ctx := context.Background()

	product := &entity.Product{ID: entity.NewID(), Name: "Kettle", Price: 19.99, Stock: 4, IsActive: true}

	_, found, err := c.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, product))

	cached, found, err := c.Get(ctx, product.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, product.Name, cached.Name)
	assert.Equal(t, product.Price, cached.Price)

	require.NoError(t, c.Invalidate(ctx, product.ID))

	_, found, err = c.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisProductCache_Key(t *testing.T) {
	c := &redisProductCache{prefix: "shop:"}

	assert.Equal(t, "shop:product:abc", c.key("abc"))
}

func TestNoopProductCache(t *testing.T) {
	c := NewNoopProductCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &entity.Product{ID: "x"}))
	_, found, err := c.Get(ctx, "x")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Invalidate(ctx, "x"))
}
