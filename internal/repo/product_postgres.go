package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yeasin-dev/shopmate/internal/models"
)

const queryTimeout = 3 * time.Second

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `id, owner_id, seller_id, category_id, brand_id, name, price, stock, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	var brandID sql.NullInt64
	err := row.Scan(&p.ID, &p.OwnerID, &p.SellerID, &p.CategoryID, &brandID,
		&p.Name, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if brandID.Valid {
		id := int(brandID.Int64)
		p.BrandID = &id
	}
	return p, err
}

func (r *PostgresProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	query := `INSERT INTO products (owner_id, seller_id, category_id, brand_id, name, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var brandID sql.NullInt64
	if p.BrandID != nil {
		brandID = sql.NullInt64{Int64: int64(*p.BrandID), Valid: true}
	}
	err := r.db.QueryRowContext(ctx, query, p.OwnerID, p.SellerID, p.CategoryID, brandID,
		p.Name, p.Price, p.Stock, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil && strings.Contains(err.Error(), "unique constraint") {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	return p, err
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id, ownerID int) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND owner_id = $2`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	query := `UPDATE products SET seller_id = $1, category_id = $2, brand_id = $3, name = $4, price = $5, updated_at = $6
		WHERE id = $7 AND owner_id = $8`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var brandID sql.NullInt64
	if p.BrandID != nil {
		brandID = sql.NullInt64{Int64: int64(*p.BrandID), Valid: true}
	}
	res, err := r.db.ExecContext(ctx, query, p.SellerID, p.CategoryID, brandID,
		p.Name, p.Price, p.UpdatedAt, p.ID, p.OwnerID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id, ownerID int) error {
	query := `DELETE FROM products WHERE id = $1 AND owner_id = $2`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) DeleteMany(ctx context.Context, ids []int, ownerID int) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := make([]string, len(ids))
	args := []any{ownerID}
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, id)
	}
	query := `DELETE FROM products WHERE owner_id = $1 AND id IN (` + strings.Join(placeholders, ", ") + `)`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// productSortColumns whitelists the caller-selectable sort keys.
var productSortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"stock":      "stock",
	"created_at": "created_at",
}

func (r *PostgresProductRepository) Search(ctx context.Context, ownerID int, f ListFilter) ([]models.Product, int, error) {
	where := `WHERE owner_id = $1`
	args := []any{ownerID}
	if f.Search != "" {
		where += ` AND name ILIKE $2`
		args = append(args, "%"+f.Search+"%")
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products ` + where + orderClause(productSortColumns, f)
	argIdx := len(args) + 1
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, f.Limit, f.Offset())
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

// orderClause builds an ORDER BY from the whitelist, defaulting to
// creation order.
func orderClause(allowed map[string]string, f ListFilter) string {
	col, ok := allowed[f.SortBy]
	if !ok {
		col = "id"
	}
	dir := "ASC"
	if strings.EqualFold(f.SortOrder, "desc") {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

func (r *PostgresProductRepository) AddStock(ctx context.Context, id, ownerID, quantity int) (models.Product, error) {
	query := `UPDATE products SET stock = stock + $1, updated_at = $2
		WHERE id = $3 AND owner_id = $4
		RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, quantity, time.Now().UTC(), id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) RemoveStock(ctx context.Context, id, ownerID, quantity int) (models.Product, error) {
	query := `UPDATE products SET stock = stock - $1, updated_at = $2
		WHERE id = $3 AND owner_id = $4 AND stock >= $1
		RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, quantity, time.Now().UTC(), id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrInsufficientStock
	}
	return p, err
}

func (r *PostgresProductRepository) TotalStock(ctx context.Context, ownerID int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(stock), 0) FROM products WHERE owner_id = $1`, ownerID).Scan(&total)
	return total, err
}
