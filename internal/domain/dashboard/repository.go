// Package dashboard computes read-only aggregations over invoices and
// expenses for summary reporting.
package dashboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MonthlyRevenue holds one month of paid-invoice revenue
type MonthlyRevenue struct {
	Month        string // YYYY-MM
	RevenueMinor int64
}

// pgxPool is the subset of pgxpool.Pool the repository uses; pgxmock
// satisfies it in tests.
type pgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository handles dashboard aggregation queries
type Repository struct {
	pool pgxPool
}

// NewRepository creates a new dashboard repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetRevenue sums paid invoice amounts
func (r *Repository) GetRevenue(ctx context.Context) (int64, error) {
	var revenue int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_minor), 0) FROM invoices WHERE status = 'paid'`,
	).Scan(&revenue)
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return revenue, nil
}

// GetExpensesTotal sums all expense amounts
func (r *Repository) GetExpensesTotal(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_minor), 0) FROM expenses`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

// GetInvoiceCount counts all invoices
func (r *Repository) GetInvoiceCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

// GetMonthlyRevenue returns paid revenue per month for the most recent
// months, oldest first
func (r *Repository) GetMonthlyRevenue(ctx context.Context, months int) ([]MonthlyRevenue, error) {
	query := `
		SELECT month, revenue FROM (
			SELECT
				TO_CHAR(date_created, 'YYYY-MM') AS month,
				SUM(amount_minor) AS revenue
			FROM invoices
			WHERE status = 'paid'
			GROUP BY TO_CHAR(date_created, 'YYYY-MM')
			ORDER BY month DESC
			LIMIT $1
		) recent
		ORDER BY month`

	rows, err := r.pool.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly revenue: %w", err)
	}
	defer rows.Close()

	var result []MonthlyRevenue
	for rows.Next() {
		var mr MonthlyRevenue
		if err := rows.Scan(&mr.Month, &mr.RevenueMinor); err != nil {
			return nil, fmt.Errorf("failed to scan monthly revenue: %w", err)
		}
		result = append(result, mr)
	}
	return result, nil
}
