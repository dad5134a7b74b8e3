package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

func setupTestDB(t *testing.T) (*mongo.Database, func()) {
	ctx := context.Background()

	// Start MongoDB container
	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := ConnectMongoDB(ctx, uri, "testdb", ConnectionSettings{})
	require.NoError(t, err)

	require.NoError(t, EnsureIndexes(ctx, db))

	cleanup := func() {
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return db, cleanup
}

func TestGetCart_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()

	cart, err := repo.GetCart(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrCartNotFound)
	assert.Nil(t, cart)
}

func TestAddItem_NewCart(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	ownerID := "user123"

	item := domain.CartItem{
		ProductID: "p1",
		Name:      "Modern Sofa",
		Price:     999.99,
		Quantity:  3,
	}
	err := repo.AddItem(ctx, ownerID, item)
	require.NoError(t, err)

	cart, err := repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, cart.OwnerID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 999.99, cart.Items[0].Price)
	assert.False(t, cart.CreatedAt.IsZero())
}

func TestAddItem_ExistingItem_AccumulatesQuantity(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	ownerID := "user123"

	err := repo.AddItem(ctx, ownerID, domain.CartItem{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	err = repo.AddItem(ctx, ownerID, domain.CartItem{ProductID: "p1", Quantity: 5})
	require.NoError(t, err)

	// Same product accumulates into one line
	cart, err := repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestAddItem_DistinctProducts_SeparateLines(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	ownerID := "user123"

	require.NoError(t, repo.AddItem(ctx, ownerID, domain.CartItem{ProductID: "p1", Quantity: 1}))
	require.NoError(t, repo.AddItem(ctx, ownerID, domain.CartItem{ProductID: "p2", Quantity: 2}))

	cart, err := repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestAddItem_ConcurrentAdds_NoLostUpdates(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	ownerID := "user123"

	const workers = 10
	const perWorker = 5

	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				errs <- repo.AddItem(ctx, ownerID, domain.CartItem{ProductID: "p1", Quantity: 1})
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// Every increment must land, including the racing first adds that
	// create the cart.
	cart, err := repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, workers*perWorker, cart.Items[0].Quantity)
}

func TestSetItemQuantity(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	ownerID := "user123"

	require.NoError(t, repo.AddItem(ctx, ownerID, domain.CartItem{ProductID: "p1", Quantity: 2}))

	err := repo.SetItemQuantity(ctx, ownerID, "p1", 10)
	require.NoError(t, err)

	cart, err := repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, 10, cart.Items[0].Quantity)
}

func TestSetItemQuantity_MissingItem(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	ownerID := "user123"

	require.NoError(t, repo.AddItem(ctx, ownerID, domain.CartItem{ProductID: "p1", Quantity: 2}))

	err := repo.SetItemQuantity(ctx, ownerID, "p99", 10)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	ownerID := "user123"

	require.NoError(t, repo.AddItem(ctx, ownerID, domain.CartItem{ProductID: "p1", Quantity: 2}))
	require.NoError(t, repo.AddItem(ctx, ownerID, domain.CartItem{ProductID: "p2", Quantity: 3}))

	err := repo.RemoveItem(ctx, ownerID, "p1")
	require.NoError(t, err)

	cart, err := repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestRemoveItem_Errors(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()

	err := repo.RemoveItem(ctx, "nobody", "p1")
	assert.ErrorIs(t, err, ErrCartNotFound)

	require.NoError(t, repo.AddItem(ctx, "user123", domain.CartItem{ProductID: "p1", Quantity: 2}))
	before, err := repo.GetCart(ctx, "user123")
	require.NoError(t, err)

	err = repo.RemoveItem(ctx, "user123", "p99")
	assert.ErrorIs(t, err, ErrItemNotFound)

	// The failed remove must not touch the cart, not even updated_at
	after, err := repo.GetCart(ctx, "user123")
	require.NoError(t, err)
	require.Len(t, after.Items, 1)
	assert.Equal(t, 2, after.Items[0].Quantity)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
}

func TestReplaceItems(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	ownerID := "user123"

	require.NoError(t, repo.AddItem(ctx, ownerID, domain.CartItem{ProductID: "p1", Price: 10, Quantity: 2}))

	rewritten := []domain.CartItem{
		{ProductID: "p1", Name: "Modern Sofa", Price: 12.50, Quantity: 2, AddedAt: time.Now()},
	}
	err := repo.ReplaceItems(ctx, ownerID, rewritten)
	require.NoError(t, err)

	cart, err := repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 12.50, cart.Items[0].Price)

	err = repo.ReplaceItems(ctx, "nobody", rewritten)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestDeleteCart(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	ownerID := "user123"

	require.NoError(t, repo.AddItem(ctx, ownerID, domain.CartItem{ProductID: "p1", Quantity: 2}))

	err := repo.DeleteCart(ctx, ownerID)
	require.NoError(t, err)

	_, err = repo.GetCart(ctx, ownerID)
	assert.ErrorIs(t, err, ErrCartNotFound)

	err = repo.DeleteCart(ctx, ownerID)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestContextCancellation(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Nanosecond)
	defer cancel()

	time.Sleep(10 * time.Millisecond) // Ensure context is cancelled

	_, err := repo.GetCart(ctx, "user123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "context")
}
