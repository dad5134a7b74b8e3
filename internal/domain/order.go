package domain

import "time"

// OrderItem is an immutable copy of a cart line at checkout time.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	ImageURL  string  `bson:"image_url" json:"imageUrl"`
}

// Order is created once per checkout and never mutated afterwards. It
// keeps no reference back to the cart it was built from.
type Order struct {
	ID          string      `bson:"_id" json:"id"`
	OwnerID     string      `bson:"owner_id" json:"ownerId"`
	Items       []OrderItem `bson:"items" json:"items"`
	TotalAmount float64     `bson:"total_amount" json:"totalAmount"`
	CreatedAt   time.Time   `bson:"created_at" json:"createdAt"`
}

// Subtotal is the line total for the item.
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
