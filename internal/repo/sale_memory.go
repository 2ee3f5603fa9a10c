package repo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/yeasin-dev/shopmate/internal/models"
)

// InMemorySaleRepository is an in-memory implementation of SaleRepository.
type InMemorySaleRepository struct {
	mu     sync.Mutex
	sales  []models.Sale
	nextID int
}

func NewInMemorySaleRepository() *InMemorySaleRepository {
	return &InMemorySaleRepository{nextID: 1}
}

func (r *InMemorySaleRepository) Create(_ context.Context, s models.Sale) (models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.sales = append(r.sales, s)
	return s, nil
}

func (r *InMemorySaleRepository) GetByID(_ context.Context, id, ownerID int) (models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.sales {
		if s.ID == id && s.OwnerID == ownerID {
			return s, nil
		}
	}
	return models.Sale{}, ErrSaleNotFound
}

func (r *InMemorySaleRepository) Delete(_ context.Context, id, ownerID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.sales {
		if s.ID == id && s.OwnerID == ownerID {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			return nil
		}
	}
	return ErrSaleNotFound
}

func (r *InMemorySaleRepository) Search(_ context.Context, ownerID int, f ListFilter) ([]models.Sale, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []models.Sale
	term := strings.ToLower(f.Search)
	for _, s := range r.sales {
		if s.OwnerID != ownerID {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(s.BuyerName), term) &&
			!strings.Contains(strings.ToLower(s.ProductName), term) {
			continue
		}
		filtered = append(filtered, s)
	}

	sortSales(filtered, f)
	page := paginate(len(filtered), f)
	return filtered[page.start:page.end], len(filtered), nil
}

func sortSales(sales []models.Sale, f ListFilter) {
	less := func(a, b models.Sale) bool { return a.ID < b.ID }
	switch f.SortBy {
	case "buyer_name":
		less = func(a, b models.Sale) bool { return a.BuyerName < b.BuyerName }
	case "product_name":
		less = func(a, b models.Sale) bool { return a.ProductName < b.ProductName }
	case "quantity":
		less = func(a, b models.Sale) bool { return a.Quantity < b.Quantity }
	case "total_price":
		less = func(a, b models.Sale) bool { return a.TotalPrice < b.TotalPrice }
	case "date":
		less = func(a, b models.Sale) bool { return a.Date.Before(b.Date) }
	}
	desc := strings.EqualFold(f.SortOrder, "desc")
	sort.SliceStable(sales, func(i, j int) bool {
		if desc {
			return less(sales[j], sales[i])
		}
		return less(sales[i], sales[j])
	})
}

// periodLabel renders the group key for one sale date. Labels match the
// Postgres implementation so both backends report identically.
func periodLabel(s models.Sale, period Period) string {
	switch period {
	case PeriodWeek:
		year, week := s.Date.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case PeriodMonth:
		return s.Date.Format("2006-01")
	case PeriodYear:
		return s.Date.Format("2006")
	default:
		return s.Date.Format("2006-01-02")
	}
}

func (r *InMemorySaleRepository) Report(_ context.Context, ownerID int, period Period) ([]PeriodTotal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	groups := map[string]*PeriodTotal{}
	for _, s := range r.sales {
		if s.OwnerID != ownerID {
			continue
		}
		label := periodLabel(s, period)
		g, ok := groups[label]
		if !ok {
			g = &PeriodTotal{Period: label}
			groups[label] = g
		}
		g.TotalQuantity += s.Quantity
		g.TotalRevenue += s.TotalPrice
	}

	var totals []PeriodTotal
	for _, g := range groups {
		totals = append(totals, *g)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Period < totals[j].Period })
	return totals, nil
}

func (r *InMemorySaleRepository) Totals(_ context.Context, ownerID int) (int, float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	revenue := 0.0
	for _, s := range r.sales {
		if s.OwnerID == ownerID {
			count++
			revenue += s.TotalPrice
		}
	}
	return count, revenue, nil
}

func (r *InMemorySaleRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales = []models.Sale{}
}
