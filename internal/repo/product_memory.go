package repo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yeasin-dev/shopmate/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. A mutex guards the stock operations so the
// conditional decrement keeps its check-and-update atomicity.
type InMemoryProductRepository struct {
	mu       sync.Mutex
	products []models.Product
	nextID   int
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

func (r *InMemoryProductRepository) Create(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

func (r *InMemoryProductRepository) GetByID(_ context.Context, id, ownerID int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id && p.OwnerID == ownerID {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Update(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == product.ID && p.OwnerID == product.OwnerID {
			product.Stock = p.Stock // stock changes only through Add/RemoveStock
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(_ context.Context, id, ownerID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id && p.OwnerID == ownerID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) DeleteMany(_ context.Context, ids []int, ownerID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	keep := r.products[:0]
	for _, p := range r.products {
		if p.OwnerID == ownerID && containsInt(ids, p.ID) {
			continue
		}
		keep = append(keep, p)
	}
	r.products = keep
	return nil
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func (r *InMemoryProductRepository) Search(_ context.Context, ownerID int, f ListFilter) ([]models.Product, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []models.Product
	term := strings.ToLower(f.Search)
	for _, p := range r.products {
		if p.OwnerID != ownerID {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, f)
	page := paginate(len(filtered), f)
	return filtered[page.start:page.end], len(filtered), nil
}

func sortProducts(products []models.Product, f ListFilter) {
	less := func(a, b models.Product) bool { return a.ID < b.ID }
	switch f.SortBy {
	case "name":
		less = func(a, b models.Product) bool { return a.Name < b.Name }
	case "price":
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case "stock":
		less = func(a, b models.Product) bool { return a.Stock < b.Stock }
	case "created_at":
		less = func(a, b models.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
	desc := strings.EqualFold(f.SortOrder, "desc")
	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}

type pageBounds struct{ start, end int }

func paginate(total int, f ListFilter) pageBounds {
	start := clamp(f.Offset(), 0, total)
	end := total
	if f.Limit > 0 {
		end = clamp(start+f.Limit, start, total)
	}
	return pageBounds{start, end}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (r *InMemoryProductRepository) AddStock(_ context.Context, id, ownerID, quantity int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id && p.OwnerID == ownerID {
			p.Stock += quantity
			p.UpdatedAt = time.Now().UTC()
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) RemoveStock(_ context.Context, id, ownerID, quantity int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id && p.OwnerID == ownerID {
			if p.Stock < quantity {
				return models.Product{}, ErrInsufficientStock
			}
			p.Stock -= quantity
			p.UpdatedAt = time.Now().UTC()
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrInsufficientStock
}

func (r *InMemoryProductRepository) TotalStock(_ context.Context, ownerID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			total += p.Stock
		}
	}
	return total, nil
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}
