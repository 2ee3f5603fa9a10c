package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/yeasin-dev/shopmate/internal/models"
	"github.com/yeasin-dev/shopmate/internal/repo"
)

// NewProduct is the payload for CreateProduct. BrandID is optional.
type NewProduct struct {
	SellerID   int
	CategoryID int
	BrandID    *int
	Name       string
	Price      float64
	Stock      int
}

func validateNewProduct(in NewProduct) map[string]string {
	details := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		details["name"] = "Name is required"
	}
	if in.Price <= 0 {
		details["price"] = "Price must be greater than zero"
	}
	if in.Stock < 0 {
		details["stock"] = "Stock cannot be negative"
	}
	return details
}

// CreateProduct validates the foreign references, persists the product
// and records the initial stock as one purchase ledger entry with names
// snapshotted at this instant. The product insert and the ledger insert
// are two writes; a crash between them leaves a product without its
// opening ledger row (known best-effort gap).
func CreateProduct(ctx context.Context, s Store, ownerID int, in NewProduct) (models.Product, error) {
	if details := validateNewProduct(in); len(details) > 0 {
		return models.Product{}, ValidationFailed(details)
	}

	seller, err := s.Sellers.GetByID(ctx, in.SellerID, ownerID)
	if err != nil {
		if errors.Is(err, repo.ErrSellerNotFound) {
			return models.Product{}, NotFound("Seller not found")
		}
		return models.Product{}, internalError(err)
	}

	if _, err := s.Categories.GetByID(ctx, in.CategoryID, ownerID); err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			return models.Product{}, NotFound("Category not found")
		}
		return models.Product{}, internalError(err)
	}

	if in.BrandID != nil {
		if _, err := s.Brands.GetByID(ctx, *in.BrandID, ownerID); err != nil {
			if errors.Is(err, repo.ErrBrandNotFound) {
				return models.Product{}, NotFound("Brand not found")
			}
			return models.Product{}, internalError(err)
		}
	}

	now := time.Now().UTC()
	product, err := s.Products.Create(ctx, models.Product{
		OwnerID:    ownerID,
		SellerID:   in.SellerID,
		CategoryID: in.CategoryID,
		BrandID:    in.BrandID,
		Name:       in.Name,
		Price:      in.Price,
		Stock:      in.Stock,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			return models.Product{}, ValidationFailed(map[string]string{"name": "Product name already exists"})
		}
		return models.Product{}, internalError(err)
	}

	_, err = s.Purchases.Create(ctx, models.Purchase{
		OwnerID:     ownerID,
		SellerID:    product.SellerID,
		ProductID:   product.ID,
		SellerName:  seller.Name,
		ProductName: product.Name,
		Quantity:    product.Stock,
		UnitPrice:   product.Price,
		TotalPrice:  float64(product.Stock) * product.Price,
		CreatedAt:   now,
	})
	if err != nil {
		return models.Product{}, internalError(err)
	}

	return product, nil
}

// StockRefill is the payload for AddToStock.
type StockRefill struct {
	SellerID int
	Quantity int
}

// AddToStock increments the product's stock and records a matching
// ledger entry. The returned product reflects the new stock value.
func AddToStock(ctx context.Context, s Store, ownerID, productID int, in StockRefill) (models.Product, error) {
	if in.Quantity <= 0 {
		return models.Product{}, ValidationFailed(map[string]string{"stock": "Quantity must be greater than zero"})
	}

	seller, err := s.Sellers.GetByID(ctx, in.SellerID, ownerID)
	if err != nil {
		if errors.Is(err, repo.ErrSellerNotFound) {
			return models.Product{}, NotFound("Seller not found")
		}
		return models.Product{}, internalError(err)
	}

	product, err := s.Products.AddStock(ctx, productID, ownerID, in.Quantity)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return models.Product{}, NotFound("Product not found")
		}
		return models.Product{}, internalError(err)
	}

	_, err = s.Purchases.Create(ctx, models.Purchase{
		OwnerID:     ownerID,
		SellerID:    product.SellerID,
		ProductID:   product.ID,
		SellerName:  seller.Name,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		UnitPrice:   product.Price,
		TotalPrice:  float64(in.Quantity) * product.Price,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return models.Product{}, internalError(err)
	}

	return product, nil
}
