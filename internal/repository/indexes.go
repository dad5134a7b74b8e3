package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes every collection relies on. The
// unique owner_id index on carts is load-bearing: concurrent lazy cart
// creation depends on it to detect duplicate upserts.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	carts := &mongoCartRepository{collection: db.Collection("carts")}
	if err := carts.EnsureIndexes(ctx); err != nil {
		return err
	}

	orders := &mongoOrderRepository{collection: db.Collection("orders")}
	if err := orders.EnsureIndexes(ctx); err != nil {
		return err
	}

	users := &mongoUserRepository{collection: db.Collection("users")}
	return users.EnsureIndexes(ctx)
}
