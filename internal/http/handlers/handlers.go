package handlers

import (
	"github.com/yeasin-dev/shopmate/internal/inventory"
	"github.com/yeasin-dev/shopmate/internal/repo"
	"github.com/yeasin-dev/shopmate/internal/reportcache"
)

var (
	productRepo  repo.ProductRepository
	sellerRepo   repo.SellerRepository
	categoryRepo repo.CategoryRepository
	brandRepo    repo.BrandRepository
	purchaseRepo repo.PurchaseRepository
	saleRepo     repo.SaleRepository
	userRepo     repo.UserRepository

	reportCache *reportcache.Cache
)

func SetProductRepo(r repo.ProductRepository)   { productRepo = r }
func SetSellerRepo(r repo.SellerRepository)     { sellerRepo = r }
func SetCategoryRepo(r repo.CategoryRepository) { categoryRepo = r }
func SetBrandRepo(r repo.BrandRepository)       { brandRepo = r }
func SetPurchaseRepo(r repo.PurchaseRepository) { purchaseRepo = r }
func SetSaleRepo(r repo.SaleRepository)         { saleRepo = r }
func SetUserRepo(r repo.UserRepository)         { userRepo = r }

// SetReportCache wires the optional Redis-backed report cache. A nil
// cache disables caching.
func SetReportCache(c *reportcache.Cache) { reportCache = c }

// store bundles the wired repositories for the domain operations.
func store() inventory.Store {
	return inventory.Store{
		Products:   productRepo,
		Sellers:    sellerRepo,
		Categories: categoryRepo,
		Brands:     brandRepo,
		Purchases:  purchaseRepo,
		Sales:      saleRepo,
	}
}
