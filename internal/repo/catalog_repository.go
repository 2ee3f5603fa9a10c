package repo

import (
	"context"

	"github.com/yeasin-dev/shopmate/internal/models"
)

// SellerRepository defines the interface for seller data operations.
type SellerRepository interface {
	Create(ctx context.Context, seller models.Seller) (models.Seller, error)
	GetByID(ctx context.Context, id, ownerID int) (models.Seller, error)
	GetAll(ctx context.Context, ownerID int) ([]models.Seller, error)
	Update(ctx context.Context, seller models.Seller) (models.Seller, error)
	Delete(ctx context.Context, id, ownerID int) error
}

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	Create(ctx context.Context, category models.Category) (models.Category, error)
	GetByID(ctx context.Context, id, ownerID int) (models.Category, error)
	GetAll(ctx context.Context, ownerID int) ([]models.Category, error)
	Update(ctx context.Context, category models.Category) (models.Category, error)
	Delete(ctx context.Context, id, ownerID int) error
}

// BrandRepository defines the interface for brand data operations.
type BrandRepository interface {
	Create(ctx context.Context, brand models.Brand) (models.Brand, error)
	GetByID(ctx context.Context, id, ownerID int) (models.Brand, error)
	GetAll(ctx context.Context, ownerID int) ([]models.Brand, error)
	Update(ctx context.Context, brand models.Brand) (models.Brand, error)
	Delete(ctx context.Context, id, ownerID int) error
}
