package inventory

import (
	"context"

	"github.com/yeasin-dev/shopmate/internal/repo"
)

// SalesReport groups the owner's sales by the given period and sums
// quantity and revenue per group, oldest first. No sales means an empty
// report, not an error.
func SalesReport(ctx context.Context, s Store, ownerID int, period repo.Period) ([]repo.PeriodTotal, error) {
	totals, err := s.Sales.Report(ctx, ownerID, period)
	if err != nil {
		return nil, internalError(err)
	}
	if totals == nil {
		totals = []repo.PeriodTotal{}
	}
	return totals, nil
}

// Overview is the dashboard summary for one owner.
type Overview struct {
	TotalStock   int     `json:"total_stock"`
	TotalSales   int     `json:"total_sales"`
	TotalRevenue float64 `json:"total_revenue"`
}

// GetOverview reports the stock on hand across all products plus the
// overall sale count and revenue.
func GetOverview(ctx context.Context, s Store, ownerID int) (Overview, error) {
	stock, err := s.Products.TotalStock(ctx, ownerID)
	if err != nil {
		return Overview{}, internalError(err)
	}
	count, revenue, err := s.Sales.Totals(ctx, ownerID)
	if err != nil {
		return Overview{}, internalError(err)
	}
	return Overview{TotalStock: stock, TotalSales: count, TotalRevenue: revenue}, nil
}
