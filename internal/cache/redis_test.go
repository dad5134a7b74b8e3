package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisCache instance
func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewRedisCache(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return cache, mr, cleanup
}

func TestGet_Success(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := "user123"

	cart := &domain.Cart{
		OwnerID: ownerID,
		Items: []domain.CartItem{
			{ProductID: "p1", Name: "Modern Sofa", Price: 999.99, Quantity: 2},
			{ProductID: "p2", Name: "Oak Table", Price: 249.50, Quantity: 3},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// Manually set data in miniredis
	cartJSON, _ := json.Marshal(cart)
	mr.Set(cacheKey(ownerID), string(cartJSON))

	result, err := cache.Get(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, result.OwnerID)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, "p1", result.Items[0].ProductID)
	assert.Equal(t, 999.99, result.Items[0].Price)
}

func TestGet_CacheMiss(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()

	result, err := cache.Get(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, result)
}

func TestGet_InvalidJSON(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := "user123"
	key := cacheKey(ownerID)

	cart := &domain.Cart{
		OwnerID: ownerID,
		Items: []domain.CartItem{
			{ProductID: "p10", Quantity: 5},
		},
	}
	jsonCart, err := json.Marshal(cart)
	require.NoError(t, err)
	truncated := jsonCart[0:10]
	require.NoError(t, mr.Set(key, string(truncated)))

	_, cacheError := cache.Get(ctx, ownerID)
	require.ErrorContains(t, cacheError, "unmarshal cached cart failed")
}

func TestSet_Success(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := "user456"

	cart := &domain.Cart{
		OwnerID: ownerID,
		Items: []domain.CartItem{
			{ProductID: "p10", Name: "Bookshelf", Price: 149.99, Quantity: 5},
		},
	}

	err := cache.Set(ctx, ownerID, cart)
	require.NoError(t, err)

	// Verify data was stored correctly in miniredis
	stored, e2 := mr.Get(cacheKey(ownerID))
	require.NoError(t, e2)
	assert.NotEmpty(t, stored)

	var storedCart domain.Cart
	err = json.Unmarshal([]byte(stored), &storedCart)
	require.NoError(t, err)
	assert.Equal(t, ownerID, storedCart.OwnerID)
	assert.Len(t, storedCart.Items, 1)
}

func TestSet_WithTTL(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := "user789"

	cart := &domain.Cart{
		OwnerID: ownerID,
		Items:   []domain.CartItem{},
	}

	err := cache.Set(ctx, ownerID, cart)
	require.NoError(t, err)

	// miniredis tracks TTLs, so the jittered expiry is observable
	ttl := mr.TTL(cacheKey(ownerID))
	assert.True(t, ttl >= 15*time.Minute, "TTL should be at least base TTL")
	assert.True(t, ttl <= 20*time.Minute, "TTL should be base + max jitter")
}

func TestSet_StaleWriteRejected(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := "user123"

	newer := &domain.Cart{
		OwnerID:   ownerID,
		Items:     []domain.CartItem{{ProductID: "p1", Quantity: 5}},
		UpdatedAt: time.Now(),
	}
	require.NoError(t, cache.Set(ctx, ownerID, newer))

	// A delayed fill holding a pre-mutation cart must not clobber the
	// state cached after the mutation.
	stale := &domain.Cart{
		OwnerID:   ownerID,
		Items:     []domain.CartItem{{ProductID: "p1", Quantity: 2}},
		UpdatedAt: newer.UpdatedAt.Add(-time.Minute),
	}
	require.NoError(t, cache.Set(ctx, ownerID, stale))

	got, err := cache.Get(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 5, got.Items[0].Quantity)
}

func TestSet_NewerWriteWins(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := "user123"

	older := &domain.Cart{
		OwnerID:   ownerID,
		Items:     []domain.CartItem{{ProductID: "p1", Quantity: 2}},
		UpdatedAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, cache.Set(ctx, ownerID, older))

	newer := &domain.Cart{
		OwnerID:   ownerID,
		Items:     []domain.CartItem{{ProductID: "p1", Quantity: 5}},
		UpdatedAt: time.Now(),
	}
	require.NoError(t, cache.Set(ctx, ownerID, newer))

	got, err := cache.Get(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 5, got.Items[0].Quantity)
}

func TestDelete_Success(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	ownerID := "user999"

	cart := &domain.Cart{OwnerID: ownerID}
	cartJSON, _ := json.Marshal(cart)
	mr.Set(cacheKey(ownerID), string(cartJSON))

	assert.True(t, mr.Exists(cacheKey(ownerID)))

	err := cache.Delete(ctx, ownerID)
	require.NoError(t, err)

	assert.False(t, mr.Exists(cacheKey(ownerID)))
	assert.False(t, mr.Exists(versionKey(ownerID)))
}

func TestDelete_NonExistentKey(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()

	// Deleting non-existent key should not error
	err := cache.Delete(ctx, "nonexistent")
	assert.NoError(t, err)
}

func TestCacheKey_Format(t *testing.T) {
	key := cacheKey("test123")
	assert.Equal(t, "cart:test123", key)
}
