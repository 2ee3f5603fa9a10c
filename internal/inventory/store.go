// Package inventory implements the stock-and-sale workflow: product
// creation with an initial purchase ledger entry, stock replenishment,
// sale creation with a conditional stock decrement, and the period
// reports. Operations are free functions over a Store of repositories;
// the owner id is always an explicit parameter.
package inventory

import "github.com/yeasin-dev/shopmate/internal/repo"

// Store bundles the repositories an operation may touch.
type Store struct {
	Products   repo.ProductRepository
	Sellers    repo.SellerRepository
	Categories repo.CategoryRepository
	Brands     repo.BrandRepository
	Purchases  repo.PurchaseRepository
	Sales      repo.SaleRepository
}
