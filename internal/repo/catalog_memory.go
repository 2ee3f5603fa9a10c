package repo

import (
	"context"

	"github.com/yeasin-dev/shopmate/internal/models"
)

// InMemorySellerRepository is an in-memory implementation of SellerRepository.
type InMemorySellerRepository struct {
	sellers []models.Seller
	nextID  int
}

func NewInMemorySellerRepository() *InMemorySellerRepository {
	return &InMemorySellerRepository{nextID: 1}
}

func (r *InMemorySellerRepository) Create(_ context.Context, s models.Seller) (models.Seller, error) {
	s.ID = r.nextID
	r.nextID++
	r.sellers = append(r.sellers, s)
	return s, nil
}

func (r *InMemorySellerRepository) GetByID(_ context.Context, id, ownerID int) (models.Seller, error) {
	for _, s := range r.sellers {
		if s.ID == id && s.OwnerID == ownerID {
			return s, nil
		}
	}
	return models.Seller{}, ErrSellerNotFound
}

func (r *InMemorySellerRepository) GetAll(_ context.Context, ownerID int) ([]models.Seller, error) {
	var out []models.Seller
	for _, s := range r.sellers {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *InMemorySellerRepository) Update(_ context.Context, s models.Seller) (models.Seller, error) {
	for i, cur := range r.sellers {
		if cur.ID == s.ID && cur.OwnerID == s.OwnerID {
			r.sellers[i] = s
			return s, nil
		}
	}
	return models.Seller{}, ErrSellerNotFound
}

func (r *InMemorySellerRepository) Delete(_ context.Context, id, ownerID int) error {
	for i, s := range r.sellers {
		if s.ID == id && s.OwnerID == ownerID {
			r.sellers = append(r.sellers[:i], r.sellers[i+1:]...)
			return nil
		}
	}
	return ErrSellerNotFound
}

// InMemoryCategoryRepository is an in-memory implementation of CategoryRepository.
type InMemoryCategoryRepository struct {
	categories []models.Category
	nextID     int
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{nextID: 1}
}

func (r *InMemoryCategoryRepository) Create(_ context.Context, c models.Category) (models.Category, error) {
	c.ID = r.nextID
	r.nextID++
	r.categories = append(r.categories, c)
	return c, nil
}

func (r *InMemoryCategoryRepository) GetByID(_ context.Context, id, ownerID int) (models.Category, error) {
	for _, c := range r.categories {
		if c.ID == id && c.OwnerID == ownerID {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) GetAll(_ context.Context, ownerID int) ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.categories {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *InMemoryCategoryRepository) Update(_ context.Context, c models.Category) (models.Category, error) {
	for i, cur := range r.categories {
		if cur.ID == c.ID && cur.OwnerID == c.OwnerID {
			r.categories[i] = c
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Delete(_ context.Context, id, ownerID int) error {
	for i, c := range r.categories {
		if c.ID == id && c.OwnerID == ownerID {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}

// InMemoryBrandRepository is an in-memory implementation of BrandRepository.
type InMemoryBrandRepository struct {
	brands []models.Brand
	nextID int
}

func NewInMemoryBrandRepository() *InMemoryBrandRepository {
	return &InMemoryBrandRepository{nextID: 1}
}

func (r *InMemoryBrandRepository) Create(_ context.Context, b models.Brand) (models.Brand, error) {
	b.ID = r.nextID
	r.nextID++
	r.brands = append(r.brands, b)
	return b, nil
}

func (r *InMemoryBrandRepository) GetByID(_ context.Context, id, ownerID int) (models.Brand, error) {
	for _, b := range r.brands {
		if b.ID == id && b.OwnerID == ownerID {
			return b, nil
		}
	}
	return models.Brand{}, ErrBrandNotFound
}

func (r *InMemoryBrandRepository) GetAll(_ context.Context, ownerID int) ([]models.Brand, error) {
	var out []models.Brand
	for _, b := range r.brands {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *InMemoryBrandRepository) Update(_ context.Context, b models.Brand) (models.Brand, error) {
	for i, cur := range r.brands {
		if cur.ID == b.ID && cur.OwnerID == b.OwnerID {
			r.brands[i] = b
			return b, nil
		}
	}
	return models.Brand{}, ErrBrandNotFound
}

func (r *InMemoryBrandRepository) Delete(_ context.Context, id, ownerID int) error {
	for i, b := range r.brands {
		if b.ID == id && b.OwnerID == ownerID {
			r.brands = append(r.brands[:i], r.brands[i+1:]...)
			return nil
		}
	}
	return ErrBrandNotFound
}
