package service

import (
	"time"

	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// seedProducts is the demo furniture catalog inserted on first start.
func seedProducts() []domain.Product {
	now := time.Now()

	fixtures := []domain.Product{
		{
			Name:        "Modern Sofa",
			Price:       999.99,
			Description: "A comfortable modern sofa perfect for any living room.",
			ImageURL:    "https://dukaan.b-cdn.net/700x700/webp/upload_file_service/b9ad04a1-66fd-4bb8-b82c-7521d140a2ad/e6a259e677860331e4474bd616f1fccf.webp",
			Category:    "Living Room",
			Stock:       10,
		},
		{
			Name:        "Dining Table",
			Price:       599.99,
			Description: "Elegant dining table that seats 6 people.",
			ImageURL:    "https://rukminim2.flixcart.com/image/850/1000/k47cgi80/dining-set/f/g/k/8-seater-brown-rosewood-sheesham-hhfk-17-hariom-handicraft-original-imafn66rskcnv96g.jpeg?q=90&crop=false",
			Category:    "Dining Room",
			Stock:       5,
		},
		{
			Name:        "Queen Bed Frame",
			Price:       799.99,
			Description: "Queen size bed frame with headboard.",
			ImageURL:    "https://www.nilkamalsleep.com/cdn/shop/files/1_61f9365a-c5b3-4b95-a64a-69b40203187c_650x.jpg?v=1724666320",
			Category:    "Bedroom",
			Stock:       8,
		},
		{
			Name:        "Wooden Bench",
			Price:       1999.99,
			Description: "Comfort cushion bench with sleek design.",
			ImageURL:    "https://images.woodenstreet.de/image/data/benches/cambrey-bench-with-back-rest/revised/honey-finish/updated/new-logo/1.jpg",
			Category:    "Living Room",
			Stock:       6,
		},
		{
			Name:        "Sheesham Wooden Table",
			Price:       3199.99,
			Description: "4 Seater with a beautiful designed table.",
			ImageURL:    "https://thetimberguy.com/cdn/shop/collections/sheesham_wood_furniture_online_suppliers_manufactureres_exporters_from_india_2048x.jpg?v=1565437409",
			Category:    "Dining Room",
			Stock:       4,
		},
		{
			Name:        "Burma Wood Cot",
			Price:       4199.99,
			Description: "Comfort cot where a King size mattress can be used.",
			ImageURL:    "https://www.ediy.in/beds/images/burma/Burma-size-001.jpg",
			Category:    "Bedroom",
			Stock:       3,
		},
	}

	for i := range fixtures {
		fixtures[i].ID = primitive.NewObjectID().Hex()
		fixtures[i].CreatedAt = now
	}

	return fixtures
}
