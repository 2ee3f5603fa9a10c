package models

import "time"

// Seller is a supplier the shop buys stock from.
type Seller struct {
	ID        int       `json:"id"`
	OwnerID   int       `json:"-"`
	Name      string    `json:"name"`
	ContactNo string    `json:"contact_no,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Category groups products for browsing.
type Category struct {
	ID        int       `json:"id"`
	OwnerID   int       `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Brand is an optional product manufacturer label.
type Brand struct {
	ID        int       `json:"id"`
	OwnerID   int       `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
