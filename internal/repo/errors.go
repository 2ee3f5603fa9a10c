package repo

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrSellerNotFound   = errors.New("seller not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrSaleNotFound     = errors.New("sale not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrInsufficientStock is returned by the conditional stock decrement
	// when the product has fewer units than requested.
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")
)
