package models

import "time"

// Purchase is one append-only ledger entry for a stock-increasing event:
// the initial stock of a new product or a later replenishment.
// SellerName and ProductName are snapshots taken at write time so the
// ledger stays readable after the referenced rows change or disappear.
type Purchase struct {
	ID          int       `json:"id"`
	OwnerID     int       `json:"-"`
	SellerID    int       `json:"seller_id"`
	ProductID   int       `json:"product_id"`
	SellerName  string    `json:"seller_name"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}
