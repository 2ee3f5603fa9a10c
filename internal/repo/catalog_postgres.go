package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yeasin-dev/shopmate/internal/models"
)

type PostgresSellerRepository struct {
	db *sql.DB
}

func NewPostgresSellerRepository(db *sql.DB) *PostgresSellerRepository {
	return &PostgresSellerRepository{db: db}
}

func (r *PostgresSellerRepository) Create(ctx context.Context, s models.Seller) (models.Seller, error) {
	query := `INSERT INTO sellers (owner_id, name, contact_no, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, s.OwnerID, s.Name, s.ContactNo, s.CreatedAt, s.UpdatedAt).Scan(&s.ID)
	return s, err
}

func (r *PostgresSellerRepository) GetByID(ctx context.Context, id, ownerID int) (models.Seller, error) {
	query := `SELECT id, owner_id, name, contact_no, created_at, updated_at FROM sellers WHERE id = $1 AND owner_id = $2`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var s models.Seller
	err := r.db.QueryRowContext(ctx, query, id, ownerID).
		Scan(&s.ID, &s.OwnerID, &s.Name, &s.ContactNo, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Seller{}, ErrSellerNotFound
	}
	return s, err
}

func (r *PostgresSellerRepository) GetAll(ctx context.Context, ownerID int) ([]models.Seller, error) {
	query := `SELECT id, owner_id, name, contact_no, created_at, updated_at FROM sellers WHERE owner_id = $1 ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sellers []models.Seller
	for rows.Next() {
		var s models.Seller
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &s.ContactNo, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sellers = append(sellers, s)
	}
	return sellers, rows.Err()
}

func (r *PostgresSellerRepository) Update(ctx context.Context, s models.Seller) (models.Seller, error) {
	query := `UPDATE sellers SET name = $1, contact_no = $2, updated_at = $3 WHERE id = $4 AND owner_id = $5`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, s.Name, s.ContactNo, s.UpdatedAt, s.ID, s.OwnerID)
	if err != nil {
		return models.Seller{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Seller{}, ErrSellerNotFound
	}
	return s, nil
}

func (r *PostgresSellerRepository) Delete(ctx context.Context, id, ownerID int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM sellers WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrSellerNotFound
	}
	return nil
}

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(ctx context.Context, c models.Category) (models.Category, error) {
	query := `INSERT INTO categories (owner_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, c.OwnerID, c.Name, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	return c, err
}

func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id, ownerID int) (models.Category, error) {
	query := `SELECT id, owner_id, name, created_at, updated_at FROM categories WHERE id = $1 AND owner_id = $2`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var c models.Category
	err := r.db.QueryRowContext(ctx, query, id, ownerID).
		Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	return c, err
}

func (r *PostgresCategoryRepository) GetAll(ctx context.Context, ownerID int) ([]models.Category, error) {
	query := `SELECT id, owner_id, name, created_at, updated_at FROM categories WHERE owner_id = $1 ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresCategoryRepository) Update(ctx context.Context, c models.Category) (models.Category, error) {
	query := `UPDATE categories SET name = $1, updated_at = $2 WHERE id = $3 AND owner_id = $4`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, c.Name, c.UpdatedAt, c.ID, c.OwnerID)
	if err != nil {
		return models.Category{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Category{}, ErrCategoryNotFound
	}
	return c, nil
}

func (r *PostgresCategoryRepository) Delete(ctx context.Context, id, ownerID int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

type PostgresBrandRepository struct {
	db *sql.DB
}

func NewPostgresBrandRepository(db *sql.DB) *PostgresBrandRepository {
	return &PostgresBrandRepository{db: db}
}

func (r *PostgresBrandRepository) Create(ctx context.Context, b models.Brand) (models.Brand, error) {
	query := `INSERT INTO brands (owner_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, b.OwnerID, b.Name, b.CreatedAt, b.UpdatedAt).Scan(&b.ID)
	return b, err
}

func (r *PostgresBrandRepository) GetByID(ctx context.Context, id, ownerID int) (models.Brand, error) {
	query := `SELECT id, owner_id, name, created_at, updated_at FROM brands WHERE id = $1 AND owner_id = $2`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var b models.Brand
	err := r.db.QueryRowContext(ctx, query, id, ownerID).
		Scan(&b.ID, &b.OwnerID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Brand{}, ErrBrandNotFound
	}
	return b, err
}

func (r *PostgresBrandRepository) GetAll(ctx context.Context, ownerID int) ([]models.Brand, error) {
	query := `SELECT id, owner_id, name, created_at, updated_at FROM brands WHERE owner_id = $1 ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []models.Brand
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *PostgresBrandRepository) Update(ctx context.Context, b models.Brand) (models.Brand, error) {
	query := `UPDATE brands SET name = $1, updated_at = $2 WHERE id = $3 AND owner_id = $4`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, b.Name, b.UpdatedAt, b.ID, b.OwnerID)
	if err != nil {
		return models.Brand{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Brand{}, ErrBrandNotFound
	}
	return b, nil
}

func (r *PostgresBrandRepository) Delete(ctx context.Context, id, ownerID int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM brands WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrBrandNotFound
	}
	return nil
}
