package catalog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manevdusko/fitbody-sub000/internal/domain"
)

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client), mr
}

func TestRedisCacheGet(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	products := []domain.Product{{ID: 1, Slug: "whey-gold", Name: "Whey Gold"}}
	payload, err := json.Marshal(products)
	require.NoError(t, err)
	require.NoError(t, mr.Set(cacheKey("products:p1"), string(payload)))

	var got []domain.Product
	require.NoError(t, cache.Get(ctx, "products:p1", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "whey-gold", got[0].Slug)
}

func TestRedisCacheGetMiss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	var got []domain.Product
	err := cache.Get(context.Background(), "nonexistent", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCacheGetInvalidJSON(t *testing.T) {
	cache, mr := setupTestRedis(t)

	require.NoError(t, mr.Set(cacheKey("products:bad"), `{"truncated`))

	var got []domain.Product
	err := cache.Get(context.Background(), "products:bad", &got)
	require.ErrorContains(t, err, "unmarshal cached value failed")
}

func TestRedisCacheSet(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	categories := []domain.Category{{ID: 3, Slug: "proteini"}}
	require.NoError(t, cache.Set(ctx, "categories:mk", categories))

	stored, err := mr.Get(cacheKey("categories:mk"))
	require.NoError(t, err)

	var got []domain.Category
	require.NoError(t, json.Unmarshal([]byte(stored), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "proteini", got[0].Slug)
}

func TestRedisCacheSetTTLJitter(t *testing.T) {
	cache, mr := setupTestRedis(t)

	require.NoError(t, cache.Set(context.Background(), "products:p1", []domain.Product{}))

	ttl := mr.TTL(cacheKey("products:p1"))
	assert.GreaterOrEqual(t, ttl, 15*time.Minute)
	assert.Less(t, ttl, 20*time.Minute)
}

func TestCacheKeyFormat(t *testing.T) {
	assert.Equal(t, "catalog:products:p1", cacheKey("products:p1"))
}
