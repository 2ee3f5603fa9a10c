package handlers_test_suite

import (
	"context"
	"net/http"
	"testing"
	"time"

	handler "github.com/yeasin-dev/shopmate/internal/http/handlers"
	"github.com/yeasin-dev/shopmate/internal/inventory"
	"github.com/yeasin-dev/shopmate/internal/models"
	"github.com/yeasin-dev/shopmate/internal/repo"
)

func seedSaleAt(t *testing.T, date time.Time, quantity int, total float64) {
	t.Helper()
	_, err := saleRepo.Create(context.Background(), models.Sale{
		OwnerID:    adminID,
		ProductID:  1,
		Quantity:   quantity,
		TotalPrice: total,
		Date:       date,
	})
	if err != nil {
		t.Fatalf("seeding sale: %v", err)
	}
}

func getReport(t *testing.T, path string) []repo.PeriodTotal {
	t.Helper()
	w := doRequest(http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: status %d (body %s)", path, w.Code, w.Body.String())
	}
	var totals []repo.PeriodTotal
	decodeInto(t, w, &totals)
	return totals
}

func TestDailySalesEndpoint(t *testing.T) {
	resetState()

	seedSaleAt(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), 2, 200)
	seedSaleAt(t, time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC), 1, 100)
	seedSaleAt(t, time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC), 4, 400)

	totals := getReport(t, "/sales/days")
	if len(totals) != 2 {
		t.Fatalf("expected 2 days, got %d", len(totals))
	}
	if totals[0].Period != "2025-03-10" || totals[0].TotalQuantity != 3 || totals[0].TotalRevenue != 300 {
		t.Errorf("day 1 wrong: %+v", totals[0])
	}
	if totals[1].Period != "2025-03-12" || totals[1].TotalQuantity != 4 {
		t.Errorf("day 2 wrong: %+v", totals[1])
	}
}

func TestWeeklySalesEndpoint(t *testing.T) {
	resetState()

	seedSaleAt(t, time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), 1, 100)
	seedSaleAt(t, time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC), 2, 200)

	totals := getReport(t, "/sales/weeks")
	if len(totals) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(totals))
	}
	if totals[0].Period != "2025-W01" || totals[1].Period != "2025-W02" {
		t.Errorf("unexpected week labels: %+v", totals)
	}
}

func TestMonthlyAndYearlySalesEndpoints(t *testing.T) {
	resetState()

	seedSaleAt(t, time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), 1, 100)
	seedSaleAt(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 2, 200)

	monthly := getReport(t, "/sales/months")
	if len(monthly) != 2 || monthly[0].Period != "2024-12" || monthly[1].Period != "2025-01" {
		t.Errorf("unexpected monthly groups: %+v", monthly)
	}

	yearly := getReport(t, "/sales/years")
	if len(yearly) != 2 || yearly[0].Period != "2024" || yearly[1].Period != "2025" {
		t.Errorf("unexpected yearly groups: %+v", yearly)
	}
}

func TestEmptyReportEndpoint(t *testing.T) {
	resetState()

	totals := getReport(t, "/sales/days")
	if len(totals) != 0 {
		t.Errorf("expected empty report, got %+v", totals)
	}
}

func TestOverviewEndpoint(t *testing.T) {
	resetState()
	product := sellableProduct(t, 5)

	w := doRequest(http.MethodPost, "/sales", handler.SaleRequest{
		ProductID: product.ID, ProductPrice: 100, Quantity: 2, BuyerName: "John",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("creating sale: status %d", w.Code)
	}

	w = doRequest(http.MethodGet, "/overview", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var overview inventory.Overview
	decodeInto(t, w, &overview)
	if overview.TotalStock != 3 {
		t.Errorf("expected total stock 3, got %d", overview.TotalStock)
	}
	if overview.TotalSales != 1 || overview.TotalRevenue != 200 {
		t.Errorf("unexpected totals: %+v", overview)
	}
}
