package repo

import (
	"context"

	"github.com/yeasin-dev/shopmate/internal/models"
)

// ProductRepository defines the interface for product data operations.
// Every method is scoped to the owning user.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	GetByID(ctx context.Context, id, ownerID int) (models.Product, error)
	Update(ctx context.Context, product models.Product) (models.Product, error)
	Delete(ctx context.Context, id, ownerID int) error
	DeleteMany(ctx context.Context, ids []int, ownerID int) error
	Search(ctx context.Context, ownerID int, f ListFilter) ([]models.Product, int, error)

	// AddStock increments the product's stock and returns the updated row.
	AddStock(ctx context.Context, id, ownerID, quantity int) (models.Product, error)
	// RemoveStock decrements stock only if at least quantity units are on
	// hand, otherwise ErrInsufficientStock. The check and the decrement are
	// a single conditional update so racing sales cannot drive stock
	// negative.
	RemoveStock(ctx context.Context, id, ownerID, quantity int) (models.Product, error)

	// TotalStock sums the stock of all of the owner's products.
	TotalStock(ctx context.Context, ownerID int) (int, error)
}
