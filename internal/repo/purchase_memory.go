package repo

import (
	"context"
	"strings"

	"github.com/yeasin-dev/shopmate/internal/models"
)

// InMemoryPurchaseRepository is an in-memory implementation of
// PurchaseRepository.
type InMemoryPurchaseRepository struct {
	purchases []models.Purchase
}

func NewInMemoryPurchaseRepository() *InMemoryPurchaseRepository {
	return &InMemoryPurchaseRepository{purchases: []models.Purchase{}}
}

func (r *InMemoryPurchaseRepository) Create(_ context.Context, p models.Purchase) (models.Purchase, error) {
	p.ID = len(r.purchases) + 1
	r.purchases = append(r.purchases, p)
	return p, nil
}

func (r *InMemoryPurchaseRepository) Search(_ context.Context, ownerID int, f ListFilter) ([]models.Purchase, int, error) {
	var filtered []models.Purchase
	term := strings.ToLower(f.Search)
	for _, p := range r.purchases {
		if p.OwnerID != ownerID {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.SellerName), term) &&
			!strings.Contains(strings.ToLower(p.ProductName), term) {
			continue
		}
		filtered = append(filtered, p)
	}

	page := paginate(len(filtered), f)
	return filtered[page.start:page.end], len(filtered), nil
}

// ByProductID returns the ledger entries recorded for one product, in
// insertion order. Used by tests to check the create/refill flows.
func (r *InMemoryPurchaseRepository) ByProductID(productID int) []models.Purchase {
	var out []models.Purchase
	for _, p := range r.purchases {
		if p.ProductID == productID {
			out = append(out, p)
		}
	}
	return out
}

func (r *InMemoryPurchaseRepository) Clear() {
	r.purchases = []models.Purchase{}
}
