package handlers

import "github.com/yeasin-dev/shopmate/internal/models"

type ProductRequest struct {
	SellerID   int     `json:"seller_id"`
	CategoryID int     `json:"category_id"`
	BrandID    *int    `json:"brand_id,omitempty"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
}

type StockRequest struct {
	SellerID int `json:"seller_id"`
	Quantity int `json:"quantity"`
}

type BulkDeleteRequest struct {
	IDs []int `json:"ids"`
}

// SaleRequest carries the caller's product price verbatim; the stored
// product price is not substituted.
type SaleRequest struct {
	ProductID    int     `json:"product_id"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
	BuyerName    string  `json:"buyer_name"`
	Date         string  `json:"date,omitempty"` // RFC3339; defaults to now
}

type SellerRequest struct {
	Name      string `json:"name"`
	ContactNo string `json:"contact_no,omitempty"`
}

type NamedRequest struct {
	Name string `json:"name"`
}

type Meta struct {
	Total     int `json:"total"`
	TotalPage int `json:"total_page"`
}

type ProductsSearchResult struct {
	Data []models.Product `json:"data"`
	Meta Meta             `json:"meta"`
}

type SalesSearchResult struct {
	Data []models.Sale `json:"data"`
	Meta Meta          `json:"meta"`
}

type PurchasesSearchResult struct {
	Data []models.Purchase `json:"data"`
	Meta Meta              `json:"meta"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
