package models

import "time"

// Sale records one completed transaction. ProductName and ProductPrice
// are denormalized at write time; TotalPrice = ProductPrice * Quantity.
type Sale struct {
	ID           int       `json:"id"`
	OwnerID      int       `json:"-"`
	ProductID    int       `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductPrice float64   `json:"product_price"`
	BuyerName    string    `json:"buyer_name"`
	Quantity     int       `json:"quantity"`
	TotalPrice   float64   `json:"total_price"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}
