package models

import "time"

// Product represents a sellable item in the shop's inventory.
// BrandID is optional; seller and category must exist before a product
// referencing them is created. Stock never goes negative.
type Product struct {
	ID         int       `json:"id"`
	OwnerID    int       `json:"-"`
	SellerID   int       `json:"seller_id"`
	CategoryID int       `json:"category_id"`
	BrandID    *int      `json:"brand_id,omitempty"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Stock      int       `json:"stock"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}
