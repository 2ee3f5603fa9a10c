package repo

import (
	"context"

	"github.com/yeasin-dev/shopmate/internal/models"
)

// PurchaseRepository stores the append-only stock movement ledger.
// Entries are never updated or deleted by the normal flow.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase models.Purchase) (models.Purchase, error)
	Search(ctx context.Context, ownerID int, f ListFilter) ([]models.Purchase, int, error)
}
