package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) CartRepository {
	return &mongoCartRepository{
		collection: db.Collection("carts"),
	}
}

func (m *mongoCartRepository) GetCart(ctx context.Context, ownerID string) (*domain.Cart, error) {
	var cart domain.Cart

	filter := bson.M{"owner_id": ownerID}
	err := m.collection.FindOne(ctx, filter).Decode(&cart)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return &cart, nil
}

// AddItem accumulates into an existing line, appends a new line, or
// creates the cart, whichever applies. Each step is a single server-side
// update, so concurrent adds for the same owner never lose a quantity:
// the increment is a $inc on the matched array element, the append only
// matches carts that do not contain the product yet, and the lazy create
// is an upsert guarded by the unique owner_id index.
func (m *mongoCartRepository) AddItem(ctx context.Context, ownerID string, item domain.CartItem) error {
	now := time.Now()
	item.AddedAt = now

	for attempt := 0; attempt < 3; attempt++ {
		incFilter := bson.M{
			"owner_id":         ownerID,
			"items.product_id": item.ProductID,
		}
		incUpdate := bson.M{
			"$inc": bson.M{"items.$.quantity": item.Quantity},
			"$set": bson.M{"updated_at": now},
		}

		res, err := m.collection.UpdateOne(ctx, incFilter, incUpdate)
		if err != nil {
			return fmt.Errorf("failed to increment item quantity: %w", err)
		}
		if res.MatchedCount > 0 {
			return nil
		}

		pushFilter := bson.M{
			"owner_id":         ownerID,
			"items.product_id": bson.M{"$ne": item.ProductID},
		}
		pushUpdate := bson.M{
			"$push":        bson.M{"items": item},
			"$set":         bson.M{"updated_at": now},
			"$setOnInsert": bson.M{"created_at": now},
		}

		res, err = m.collection.UpdateOne(ctx, pushFilter, pushUpdate, options.Update().SetUpsert(true))
		if err != nil {
			// A concurrent first add upserted the cart before us.
			// The line now exists, so retry as an increment.
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return fmt.Errorf("failed to add item: %w", err)
		}
		if res.MatchedCount > 0 || res.UpsertedCount > 0 {
			return nil
		}
		// The product appeared between the two updates; retry.
	}

	return fmt.Errorf("failed to add item for owner %s: too much contention", ownerID)
}

func (m *mongoCartRepository) SetItemQuantity(ctx context.Context, ownerID, productID string, quantity int) error {
	filter := bson.M{
		"owner_id":         ownerID,
		"items.product_id": productID,
	}

	update := bson.M{
		"$set": bson.M{
			"items.$[elem].quantity": quantity,
			"updated_at":             time.Now(),
		},
	}

	arrayFilters := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"elem.product_id": productID},
		},
	})

	result, err := m.collection.UpdateOne(ctx, filter, update, arrayFilters)
	if err != nil {
		return fmt.Errorf("failed to set item quantity: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

// RemoveItem only matches carts that actually contain the product, so
// the combined $pull and updated_at bump never touches a cart whose
// line is already gone.
func (m *mongoCartRepository) RemoveItem(ctx context.Context, ownerID, productID string) error {
	filter := bson.M{
		"owner_id":         ownerID,
		"items.product_id": productID,
	}
	update := bson.M{
		"$pull": bson.M{
			"items": bson.M{"product_id": productID},
		},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}

	if result.MatchedCount == 0 {
		// Distinguish a missing cart from a cart without the item.
		if _, err := m.GetCart(ctx, ownerID); err != nil {
			return err
		}
		return ErrItemNotFound
	}

	return nil
}

func (m *mongoCartRepository) ReplaceItems(ctx context.Context, ownerID string, items []domain.CartItem) error {
	filter := bson.M{"owner_id": ownerID}
	update := bson.M{
		"$set": bson.M{
			"items":      items,
			"updated_at": time.Now(),
		},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to replace items: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrCartNotFound
	}

	return nil
}

func (m *mongoCartRepository) DeleteCart(ctx context.Context, ownerID string) error {
	filter := bson.M{"owner_id": ownerID}

	result, err := m.collection.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrCartNotFound
	}

	return nil
}

func (m *mongoCartRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "owner_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "updated_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(90 * 24 * 60 * 60), // abandoned carts expire after 90 days
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create cart indexes: %w", err)
	}

	return nil
}
