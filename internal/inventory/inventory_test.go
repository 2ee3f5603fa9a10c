package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/yeasin-dev/shopmate/internal/inventory"
	"github.com/yeasin-dev/shopmate/internal/models"
	"github.com/yeasin-dev/shopmate/internal/repo"
)

const ownerID = 1

type fixture struct {
	store     inventory.Store
	products  *repo.InMemoryProductRepository
	purchases *repo.InMemoryPurchaseRepository
	sales     *repo.InMemorySaleRepository
	seller    models.Seller
	category  models.Category
	brand     models.Brand
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	products := repo.NewInMemoryProductRepository()
	sellers := repo.NewInMemorySellerRepository()
	categories := repo.NewInMemoryCategoryRepository()
	brands := repo.NewInMemoryBrandRepository()
	purchases := repo.NewInMemoryPurchaseRepository()
	sales := repo.NewInMemorySaleRepository()

	seller, err := sellers.Create(ctx, models.Seller{OwnerID: ownerID, Name: "Acme Traders"})
	if err != nil {
		t.Fatalf("seeding seller: %v", err)
	}
	category, err := categories.Create(ctx, models.Category{OwnerID: ownerID, Name: "Electronics"})
	if err != nil {
		t.Fatalf("seeding category: %v", err)
	}
	brand, err := brands.Create(ctx, models.Brand{OwnerID: ownerID, Name: "Logitech"})
	if err != nil {
		t.Fatalf("seeding brand: %v", err)
	}

	return &fixture{
		store: inventory.Store{
			Products:   products,
			Sellers:    sellers,
			Categories: categories,
			Brands:     brands,
			Purchases:  purchases,
			Sales:      sales,
		},
		products:  products,
		purchases: purchases,
		sales:     sales,
		seller:    seller,
		category:  category,
		brand:     brand,
	}
}

func (f *fixture) newProduct() inventory.NewProduct {
	return inventory.NewProduct{
		SellerID:   f.seller.ID,
		CategoryID: f.category.ID,
		Name:       "Wireless Mouse",
		Price:      100,
		Stock:      5,
	}
}

func kindOf(t *testing.T, err error) inventory.Kind {
	t.Helper()
	de, ok := err.(*inventory.Error)
	if !ok {
		t.Fatalf("expected *inventory.Error, got %T (%v)", err, err)
	}
	return de.Kind
}

func TestCreateProduct_RecordsInitialPurchase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, err := inventory.CreateProduct(ctx, f.store, ownerID, f.newProduct())
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	if product.Stock != 5 || product.Price != 100 {
		t.Errorf("unexpected product %+v", product)
	}

	entries := f.purchases.ByProductID(product.ID)
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 ledger entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", entry.Quantity)
	}
	if entry.TotalPrice != 500 {
		t.Errorf("expected totalPrice 500 (stock*price), got %v", entry.TotalPrice)
	}
	if entry.SellerName != "Acme Traders" || entry.ProductName != "Wireless Mouse" {
		t.Errorf("expected snapshotted names, got %+v", entry)
	}
}

func TestCreateProduct_MissingSeller(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := f.newProduct()
	in.SellerID = 999
	_, err := inventory.CreateProduct(ctx, f.store, ownerID, in)
	if err == nil {
		t.Fatal("expected error for missing seller")
	}
	if kindOf(t, err) != inventory.KindNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
	if err.Error() != "Seller not found" {
		t.Errorf("expected %q, got %q", "Seller not found", err.Error())
	}

	// Neither the product nor a ledger entry may exist.
	if _, total, _ := f.products.Search(ctx, ownerID, repo.ListFilter{}); total != 0 {
		t.Errorf("expected no products persisted, got %d", total)
	}
	if _, total, _ := f.purchases.Search(ctx, ownerID, repo.ListFilter{}); total != 0 {
		t.Errorf("expected no ledger entries persisted, got %d", total)
	}
}

func TestCreateProduct_MissingCategory(t *testing.T) {
	f := newFixture(t)

	in := f.newProduct()
	in.CategoryID = 999
	_, err := inventory.CreateProduct(context.Background(), f.store, ownerID, in)
	if err == nil || err.Error() != "Category not found" {
		t.Fatalf("expected Category not found, got %v", err)
	}
}

func TestCreateProduct_MissingBrand(t *testing.T) {
	f := newFixture(t)

	in := f.newProduct()
	missing := 999
	in.BrandID = &missing
	_, err := inventory.CreateProduct(context.Background(), f.store, ownerID, in)
	if err == nil || err.Error() != "Brand not found" {
		t.Fatalf("expected Brand not found, got %v", err)
	}
}

func TestCreateProduct_OptionalBrandAccepted(t *testing.T) {
	f := newFixture(t)

	in := f.newProduct()
	in.BrandID = &f.brand.ID
	product, err := inventory.CreateProduct(context.Background(), f.store, ownerID, in)
	if err != nil {
		t.Fatalf("CreateProduct with brand: %v", err)
	}
	if product.BrandID == nil || *product.BrandID != f.brand.ID {
		t.Errorf("expected brand %d, got %v", f.brand.ID, product.BrandID)
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*inventory.NewProduct)
		field  string
	}{
		{"empty name", func(p *inventory.NewProduct) { p.Name = "  " }, "name"},
		{"zero price", func(p *inventory.NewProduct) { p.Price = 0 }, "price"},
		{"negative stock", func(p *inventory.NewProduct) { p.Stock = -1 }, "stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := f.newProduct()
			tt.mutate(&in)
			_, err := inventory.CreateProduct(context.Background(), f.store, ownerID, in)
			if err == nil {
				t.Fatal("expected validation error")
			}
			de := err.(*inventory.Error)
			if de.Kind != inventory.KindValidation {
				t.Fatalf("expected ValidationFailure, got %v", de.Kind)
			}
			if _, ok := de.Details[tt.field]; !ok {
				t.Errorf("expected detail for field %q, got %v", tt.field, de.Details)
			}
		})
	}
}

func TestAddToStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, err := inventory.CreateProduct(ctx, f.store, ownerID, f.newProduct())
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	updated, err := inventory.AddToStock(ctx, f.store, ownerID, product.ID, inventory.StockRefill{
		SellerID: f.seller.ID,
		Quantity: 7,
	})
	if err != nil {
		t.Fatalf("AddToStock: %v", err)
	}
	if updated.Stock != 12 {
		t.Errorf("expected stock 12, got %d", updated.Stock)
	}

	entries := f.purchases.ByProductID(product.ID)
	if len(entries) != 2 {
		t.Fatalf("expected 2 ledger entries (initial + refill), got %d", len(entries))
	}
	refill := entries[1]
	if refill.Quantity != 7 {
		t.Errorf("expected refill quantity 7, got %d", refill.Quantity)
	}
	if refill.TotalPrice != 700 {
		t.Errorf("expected refill totalPrice 700, got %v", refill.TotalPrice)
	}
}

func TestAddToStock_MissingSeller(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, _ := inventory.CreateProduct(ctx, f.store, ownerID, f.newProduct())

	_, err := inventory.AddToStock(ctx, f.store, ownerID, product.ID, inventory.StockRefill{
		SellerID: 999,
		Quantity: 3,
	})
	if err == nil || err.Error() != "Seller not found" {
		t.Fatalf("expected Seller not found, got %v", err)
	}

	got, _ := f.products.GetByID(ctx, product.ID, ownerID)
	if got.Stock != 5 {
		t.Errorf("stock must be unchanged, got %d", got.Stock)
	}
}

func TestCreateSale_DecrementsStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, _ := inventory.CreateProduct(ctx, f.store, ownerID, f.newProduct())

	sale, err := inventory.CreateSale(ctx, f.store, ownerID, inventory.NewSale{
		ProductID:    product.ID,
		ProductPrice: 100,
		Quantity:     3,
		BuyerName:    "John",
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}

	if sale.TotalPrice != 300 {
		t.Errorf("expected totalPrice 300, got %v", sale.TotalPrice)
	}
	if sale.ProductName != "Wireless Mouse" {
		t.Errorf("expected denormalized product name, got %q", sale.ProductName)
	}

	got, _ := f.products.GetByID(ctx, product.ID, ownerID)
	if got.Stock != 2 {
		t.Errorf("expected stock 2 after sale, got %d", got.Stock)
	}
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, _ := inventory.CreateProduct(ctx, f.store, ownerID, f.newProduct())

	// First sale drains stock to 2, second one must fail untouched.
	if _, err := inventory.CreateSale(ctx, f.store, ownerID, inventory.NewSale{
		ProductID: product.ID, ProductPrice: 100, Quantity: 3, BuyerName: "John",
	}); err != nil {
		t.Fatalf("first sale: %v", err)
	}

	_, err := inventory.CreateSale(ctx, f.store, ownerID, inventory.NewSale{
		ProductID: product.ID, ProductPrice: 100, Quantity: 3, BuyerName: "Jane",
	})
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	if kindOf(t, err) != inventory.KindInvalidRequest {
		t.Errorf("expected InvalidRequest, got %v", err)
	}
	if err.Error() != "3 product(s) not available in stock!" {
		t.Errorf("unexpected message %q", err.Error())
	}

	got, _ := f.products.GetByID(ctx, product.ID, ownerID)
	if got.Stock != 2 {
		t.Errorf("stock must remain 2, got %d", got.Stock)
	}
	if _, total, _ := f.sales.Search(ctx, ownerID, repo.ListFilter{}); total != 1 {
		t.Errorf("expected only the first sale persisted, got %d", total)
	}
}

func TestCreateSale_MissingProduct(t *testing.T) {
	f := newFixture(t)

	_, err := inventory.CreateSale(context.Background(), f.store, ownerID, inventory.NewSale{
		ProductID: 42, ProductPrice: 100, Quantity: 1, BuyerName: "John",
	})
	if err == nil || err.Error() != "Product not found" {
		t.Fatalf("expected Product not found, got %v", err)
	}
}

func TestCreateSale_TrustsCallerPrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, _ := inventory.CreateProduct(ctx, f.store, ownerID, f.newProduct())

	// The stored price is 100 but the payload says 80; the payload wins.
	sale, err := inventory.CreateSale(ctx, f.store, ownerID, inventory.NewSale{
		ProductID: product.ID, ProductPrice: 80, Quantity: 2, BuyerName: "John",
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}
	if sale.TotalPrice != 160 {
		t.Errorf("expected totalPrice 160 from caller price, got %v", sale.TotalPrice)
	}
}

func TestCreateSale_ConcurrentSalesCannotOversell(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, _ := inventory.CreateProduct(ctx, f.store, ownerID, f.newProduct())

	// Both want 3 of the 5 on hand; at most one can win.
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := inventory.CreateSale(ctx, f.store, ownerID, inventory.NewSale{
				ProductID: product.ID, ProductPrice: 100, Quantity: 3, BuyerName: "Racer",
			})
			results <- err
		}()
	}

	var failures int
	for i := 0; i < 2; i++ {
		if err := <-results; err != nil {
			if kindOf(t, err) != inventory.KindInvalidRequest {
				t.Errorf("expected InvalidRequest on losing sale, got %v", err)
			}
			failures++
		}
	}
	if failures == 0 {
		t.Fatal("both sales succeeded: stock oversold")
	}

	got, _ := f.products.GetByID(ctx, product.ID, ownerID)
	if got.Stock < 0 {
		t.Fatalf("stock went negative: %d", got.Stock)
	}
}

func TestDeleteSale(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, _ := inventory.CreateProduct(ctx, f.store, ownerID, f.newProduct())
	sale, _ := inventory.CreateSale(ctx, f.store, ownerID, inventory.NewSale{
		ProductID: product.ID, ProductPrice: 100, Quantity: 1, BuyerName: "John",
	})

	if err := inventory.DeleteSale(ctx, f.store, ownerID, sale.ID); err != nil {
		t.Fatalf("DeleteSale: %v", err)
	}
	if err := inventory.DeleteSale(ctx, f.store, ownerID, sale.ID); err == nil {
		t.Fatal("expected NotFound deleting twice")
	}
}

func seedSale(t *testing.T, f *fixture, day time.Time, quantity int, total float64) {
	t.Helper()
	_, err := f.sales.Create(context.Background(), models.Sale{
		OwnerID:    ownerID,
		ProductID:  1,
		Quantity:   quantity,
		TotalPrice: total,
		Date:       day,
	})
	if err != nil {
		t.Fatalf("seeding sale: %v", err)
	}
}

func TestSalesReport_Daily(t *testing.T) {
	f := newFixture(t)

	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 12, 18, 30, 0, 0, time.UTC)
	seedSale(t, f, day1, 2, 200)
	seedSale(t, f, day1.Add(2*time.Hour), 1, 100)
	seedSale(t, f, day1.Add(5*time.Hour), 4, 400)
	seedSale(t, f, day2, 3, 150)
	seedSale(t, f, day2.Add(time.Hour), 1, 50)

	totals, err := inventory.SalesReport(context.Background(), f.store, ownerID, repo.PeriodDay)
	if err != nil {
		t.Fatalf("SalesReport: %v", err)
	}

	if len(totals) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(totals))
	}
	if totals[0].Period != "2025-03-10" || totals[1].Period != "2025-03-12" {
		t.Errorf("expected oldest-first ordering, got %q then %q", totals[0].Period, totals[1].Period)
	}
	if totals[0].TotalQuantity != 7 || totals[0].TotalRevenue != 700 {
		t.Errorf("day 1 totals wrong: %+v", totals[0])
	}
	if totals[1].TotalQuantity != 4 || totals[1].TotalRevenue != 200 {
		t.Errorf("day 2 totals wrong: %+v", totals[1])
	}
}

func TestSalesReport_Weekly(t *testing.T) {
	f := newFixture(t)

	// 2025-01-01 is a Wednesday of ISO week 2025-W01; 2025-01-06 starts W02.
	seedSale(t, f, time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), 1, 100)
	seedSale(t, f, time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC), 2, 200)
	seedSale(t, f, time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC), 5, 500)

	totals, err := inventory.SalesReport(context.Background(), f.store, ownerID, repo.PeriodWeek)
	if err != nil {
		t.Fatalf("SalesReport: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("expected 2 ISO weeks, got %d", len(totals))
	}
	if totals[0].Period != "2025-W01" || totals[0].TotalQuantity != 3 {
		t.Errorf("week 1 wrong: %+v", totals[0])
	}
	if totals[1].Period != "2025-W02" || totals[1].TotalRevenue != 500 {
		t.Errorf("week 2 wrong: %+v", totals[1])
	}
}

func TestSalesReport_MonthlyAndYearly(t *testing.T) {
	f := newFixture(t)

	seedSale(t, f, time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), 1, 100)
	seedSale(t, f, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 2, 200)
	seedSale(t, f, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), 3, 300)

	monthly, err := inventory.SalesReport(context.Background(), f.store, ownerID, repo.PeriodMonth)
	if err != nil {
		t.Fatalf("monthly report: %v", err)
	}
	if len(monthly) != 2 || monthly[0].Period != "2024-12" || monthly[1].Period != "2025-01" {
		t.Fatalf("unexpected monthly groups: %+v", monthly)
	}
	if monthly[1].TotalQuantity != 5 || monthly[1].TotalRevenue != 500 {
		t.Errorf("january totals wrong: %+v", monthly[1])
	}

	yearly, err := inventory.SalesReport(context.Background(), f.store, ownerID, repo.PeriodYear)
	if err != nil {
		t.Fatalf("yearly report: %v", err)
	}
	if len(yearly) != 2 || yearly[0].Period != "2024" || yearly[1].Period != "2025" {
		t.Fatalf("unexpected yearly groups: %+v", yearly)
	}
}

func TestSalesReport_Empty(t *testing.T) {
	f := newFixture(t)

	totals, err := inventory.SalesReport(context.Background(), f.store, ownerID, repo.PeriodDay)
	if err != nil {
		t.Fatalf("SalesReport: %v", err)
	}
	if len(totals) != 0 {
		t.Errorf("expected empty report, got %+v", totals)
	}
}

func TestSalesReport_OwnerScoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seedSale(t, f, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 2, 200)
	f.sales.Create(ctx, models.Sale{
		OwnerID:    2, // someone else's sale
		Quantity:   10,
		TotalPrice: 1000,
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	totals, err := inventory.SalesReport(ctx, f.store, ownerID, repo.PeriodDay)
	if err != nil {
		t.Fatalf("SalesReport: %v", err)
	}
	if len(totals) != 1 || totals[0].TotalQuantity != 2 {
		t.Errorf("expected only own sales aggregated, got %+v", totals)
	}
}

func TestGetOverview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	product, _ := inventory.CreateProduct(ctx, f.store, ownerID, f.newProduct())
	inventory.CreateSale(ctx, f.store, ownerID, inventory.NewSale{
		ProductID: product.ID, ProductPrice: 100, Quantity: 2, BuyerName: "John",
	})

	overview, err := inventory.GetOverview(ctx, f.store, ownerID)
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if overview.TotalStock != 3 {
		t.Errorf("expected total stock 3, got %d", overview.TotalStock)
	}
	if overview.TotalSales != 1 || overview.TotalRevenue != 200 {
		t.Errorf("unexpected sale totals: %+v", overview)
	}
}
