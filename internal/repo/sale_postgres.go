package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yeasin-dev/shopmate/internal/models"
)

type PostgresSaleRepository struct {
	db *sql.DB
}

func NewPostgresSaleRepository(db *sql.DB) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

const saleColumns = `id, owner_id, product_id, product_name, product_price, buyer_name, quantity, total_price, date, created_at`

func (r *PostgresSaleRepository) Create(ctx context.Context, s models.Sale) (models.Sale, error) {
	query := `INSERT INTO sales (owner_id, product_id, product_name, product_price, buyer_name, quantity, total_price, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, s.OwnerID, s.ProductID, s.ProductName, s.ProductPrice,
		s.BuyerName, s.Quantity, s.TotalPrice, s.Date, s.CreatedAt).Scan(&s.ID)
	return s, err
}

func (r *PostgresSaleRepository) GetByID(ctx context.Context, id, ownerID int) (models.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 AND owner_id = $2`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var s models.Sale
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(&s.ID, &s.OwnerID, &s.ProductID,
		&s.ProductName, &s.ProductPrice, &s.BuyerName, &s.Quantity, &s.TotalPrice, &s.Date, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sale{}, ErrSaleNotFound
	}
	return s, err
}

func (r *PostgresSaleRepository) Delete(ctx context.Context, id, ownerID int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM sales WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrSaleNotFound
	}
	return nil
}

var saleSortColumns = map[string]string{
	"buyer_name":   "buyer_name",
	"product_name": "product_name",
	"quantity":     "quantity",
	"total_price":  "total_price",
	"date":         "date",
}

func (r *PostgresSaleRepository) Search(ctx context.Context, ownerID int, f ListFilter) ([]models.Sale, int, error) {
	where := `WHERE owner_id = $1`
	args := []any{ownerID}
	if f.Search != "" {
		where += ` AND (buyer_name ILIKE $2 OR product_name ILIKE $2)`
		args = append(args, "%"+f.Search+"%")
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + saleColumns + ` FROM sales ` + where + orderClause(saleSortColumns, f)
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

	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.ProductID, &s.ProductName, &s.ProductPrice,
			&s.BuyerName, &s.Quantity, &s.TotalPrice, &s.Date, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		sales = append(sales, s)
	}
	return sales, total, rows.Err()
}

// periodFormats maps each report granularity to the to_char pattern that
// labels a group. The labels sort lexically in chronological order, so
// ORDER BY the label gives oldest-first.
var periodFormats = map[Period]string{
	PeriodDay:   `YYYY-MM-DD`,
	PeriodWeek:  `IYYY-"W"IW`, // ISO week-numbering year and week
	PeriodMonth: `YYYY-MM`,
	PeriodYear:  `YYYY`,
}

func (r *PostgresSaleRepository) Report(ctx context.Context, ownerID int, period Period) ([]PeriodTotal, error) {
	format, ok := periodFormats[period]
	if !ok {
		return nil, fmt.Errorf("unknown report period %q", period)
	}

	query := fmt.Sprintf(`
		SELECT to_char(date, '%s') AS period, SUM(quantity), SUM(total_price)
		FROM sales
		WHERE owner_id = $1
		GROUP BY period
		ORDER BY period ASC
	`, format)

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []PeriodTotal
	for rows.Next() {
		var t PeriodTotal
		if err := rows.Scan(&t.Period, &t.TotalQuantity, &t.TotalRevenue); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func (r *PostgresSaleRepository) Totals(ctx context.Context, ownerID int) (int, float64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var count int
	var revenue float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_price), 0) FROM sales WHERE owner_id = $1`, ownerID).
		Scan(&count, &revenue)
	return count, revenue, err
}
