package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yeasin-dev/shopmate/internal/models"
	"github.com/yeasin-dev/shopmate/internal/repo"
)

// NewSale is the payload for CreateSale. ProductPrice is taken from the
// caller verbatim and is NOT re-read from the product record; the stored
// price may differ. Inherited from the source system and kept on purpose.
type NewSale struct {
	ProductID    int
	ProductPrice float64
	Quantity     int
	BuyerName    string
	Date         time.Time
}

func validateNewSale(in NewSale) map[string]string {
	details := map[string]string{}
	if strings.TrimSpace(in.BuyerName) == "" {
		details["buyer_name"] = "Buyer name is required"
	}
	if in.Quantity <= 0 {
		details["quantity"] = "Quantity must be greater than zero"
	}
	if in.ProductPrice <= 0 {
		details["product_price"] = "Product price must be greater than zero"
	}
	return details
}

// CreateSale checks stock sufficiency, decrements the product's stock and
// persists the sale with the denormalized product name and computed
// total. The decrement is conditional (only applied while stock covers
// the quantity), so concurrent sales cannot drive stock negative: the
// slower one fails the same way an upfront shortage does. The decrement
// lands before the sale row; if the sale insert fails the stock stays
// decremented (known best-effort gap).
func CreateSale(ctx context.Context, s Store, ownerID int, in NewSale) (models.Sale, error) {
	if details := validateNewSale(in); len(details) > 0 {
		return models.Sale{}, ValidationFailed(details)
	}

	product, err := s.Products.GetByID(ctx, in.ProductID, ownerID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return models.Sale{}, NotFound("Product not found")
		}
		return models.Sale{}, internalError(err)
	}

	if in.Quantity > product.Stock {
		return models.Sale{}, InvalidRequest(fmt.Sprintf("%d product(s) not available in stock!", in.Quantity))
	}

	product, err = s.Products.RemoveStock(ctx, in.ProductID, ownerID, in.Quantity)
	if err != nil {
		if errors.Is(err, repo.ErrInsufficientStock) {
			// Lost the race against another sale of the same product.
			return models.Sale{}, InvalidRequest(fmt.Sprintf("%d product(s) not available in stock!", in.Quantity))
		}
		return models.Sale{}, internalError(err)
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	sale, err := s.Sales.Create(ctx, models.Sale{
		OwnerID:      ownerID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductPrice: in.ProductPrice,
		BuyerName:    in.BuyerName,
		Quantity:     in.Quantity,
		TotalPrice:   in.ProductPrice * float64(in.Quantity),
		Date:         date,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return models.Sale{}, internalError(err)
	}

	return sale, nil
}

// DeleteSale removes a sale record. Stock is not restored; the sale is a
// historical fact and its deletion is a bookkeeping correction.
func DeleteSale(ctx context.Context, s Store, ownerID, saleID int) error {
	err := s.Sales.Delete(ctx, saleID, ownerID)
	if errors.Is(err, repo.ErrSaleNotFound) {
		return NotFound("Sale not found")
	}
	if err != nil {
		return internalError(err)
	}
	return nil
}
