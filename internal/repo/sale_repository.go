package repo

import (
	"context"

	"github.com/yeasin-dev/shopmate/internal/models"
)

// SaleRepository defines the interface for sale data operations.
type SaleRepository interface {
	Create(ctx context.Context, sale models.Sale) (models.Sale, error)
	GetByID(ctx context.Context, id, ownerID int) (models.Sale, error)
	Delete(ctx context.Context, id, ownerID int) error
	Search(ctx context.Context, ownerID int, f ListFilter) ([]models.Sale, int, error)

	// Report groups the owner's sales by the given period of the sale date
	// and sums quantity and revenue per group, oldest group first.
	Report(ctx context.Context, ownerID int, period Period) ([]PeriodTotal, error)

	// Totals returns the owner's overall sale count and revenue.
	Totals(ctx context.Context, ownerID int) (count int, revenue float64, err error)
}
