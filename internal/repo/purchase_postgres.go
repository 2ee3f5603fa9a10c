package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yeasin-dev/shopmate/internal/models"
)

type PostgresPurchaseRepository struct {
	db *sql.DB
}

func NewPostgresPurchaseRepository(db *sql.DB) *PostgresPurchaseRepository {
	return &PostgresPurchaseRepository{db: db}
}

func (r *PostgresPurchaseRepository) Create(ctx context.Context, p models.Purchase) (models.Purchase, error) {
	query := `INSERT INTO purchases (owner_id, seller_id, product_id, seller_name, product_name, quantity, unit_price, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.OwnerID, p.SellerID, p.ProductID, p.SellerName,
		p.ProductName, p.Quantity, p.UnitPrice, p.TotalPrice, p.CreatedAt).Scan(&p.ID)
	return p, err
}

var purchaseSortColumns = map[string]string{
	"seller_name":  "seller_name",
	"product_name": "product_name",
	"quantity":     "quantity",
	"total_price":  "total_price",
	"created_at":   "created_at",
}

func (r *PostgresPurchaseRepository) Search(ctx context.Context, ownerID int, f ListFilter) ([]models.Purchase, int, error) {
	where := `WHERE owner_id = $1`
	args := []any{ownerID}
	if f.Search != "" {
		where += ` AND (seller_name ILIKE $2 OR product_name ILIKE $2)`
		args = append(args, "%"+f.Search+"%")
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM purchases `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, owner_id, seller_id, product_id, seller_name, product_name, quantity, unit_price, total_price, created_at
		FROM purchases ` + where + orderClause(purchaseSortColumns, f)
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

	var purchases []models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.SellerID, &p.ProductID, &p.SellerName,
			&p.ProductName, &p.Quantity, &p.UnitPrice, &p.TotalPrice, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		purchases = append(purchases, p)
	}
	return purchases, total, rows.Err()
}
