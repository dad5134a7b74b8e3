package domain

import "time"

// Cart holds the pending purchase items for a single owner. There is at
// most one cart per owner, enforced by a unique index on owner_id.
type Cart struct {
	ID        string     `bson:"_id,omitempty" json:"-"`
	OwnerID   string     `bson:"owner_id" json:"ownerId"`
	Items     []CartItem `bson:"items" json:"items"`
	CreatedAt time.Time  `bson:"created_at" json:"-"`
	UpdatedAt time.Time  `bson:"updated_at" json:"-"`
}

// CartItem is one product line in a cart. Name, price and image are
// snapshots taken from the catalog when the item is first added; they are
// not refreshed on later catalog changes unless RefreshPrices is called.
type CartItem struct {
	ProductID string    `bson:"product_id" json:"productId"`
	Name      string    `bson:"name" json:"name"`
	Price     float64   `bson:"price" json:"price"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	ImageURL  string    `bson:"image_url" json:"imageUrl"`
	AddedAt   time.Time `bson:"added_at" json:"-"`
}

// Subtotal is the line total for the item.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Total sums the subtotals of all items in the cart.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// EmptyCart is the value returned for owners that have no stored cart.
// Absence is a valid default state, not an error.
func EmptyCart(ownerID string) *Cart {
	return &Cart{
		OwnerID: ownerID,
		Items:   []CartItem{},
	}
}
