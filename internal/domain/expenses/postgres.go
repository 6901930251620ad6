package expenses

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxPool is the subset of pgxpool.Pool the repository uses; pgxmock
// satisfies it in tests.
type pgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresExpenseRepository implements ExpenseRepository using PostgreSQL
type PostgresExpenseRepository struct {
	pool pgxPool
}

// NewPostgresExpenseRepository creates a new PostgreSQL expense repository
func NewPostgresExpenseRepository(pool *pgxpool.Pool) *PostgresExpenseRepository {
	return &PostgresExpenseRepository{pool: pool}
}

// Create inserts a new expense; the store assigns the identifier
func (r *PostgresExpenseRepository) Create(ctx context.Context, expense *Expense) error {
	query := `
		INSERT INTO expenses (description, amount_minor, category, date_created, receipt_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		expense.Description,
		expense.AmountMinor,
		expense.Category,
		expense.DateCreated,
		expense.ReceiptPath,
	).Scan(&expense.ID)

	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// List retrieves all expenses ordered by creation date, newest first
func (r *PostgresExpenseRepository) List(ctx context.Context) ([]*Expense, error) {
	query := `
		SELECT id, description, amount_minor, category, date_created, receipt_path
		FROM expenses
		ORDER BY date_created DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var result []*Expense
	for rows.Next() {
		expense := &Expense{}
		err := rows.Scan(
			&expense.ID,
			&expense.Description,
			&expense.AmountMinor,
			&expense.Category,
			&expense.DateCreated,
			&expense.ReceiptPath,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		result = append(result, expense)
	}
	return result, nil
}

// TotalsByCategory sums expenses grouped by category, largest first
func (r *PostgresExpenseRepository) TotalsByCategory(ctx context.Context) ([]CategoryTotal, error) {
	query := `
		SELECT category, COALESCE(SUM(amount_minor), 0) AS total
		FROM expenses
		GROUP BY category
		ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate expenses by category: %w", err)
	}
	defer rows.Close()

	var result []CategoryTotal
	for rows.Next() {
		var ct CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.TotalMinor); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		result = append(result, ct)
	}
	return result, nil
}

// Total sums all expense amounts
func (r *PostgresExpenseRepository) Total(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount_minor), 0) FROM expenses`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to total expenses: %w", err)
	}
	return total, nil
}

// Count returns the number of expenses
func (r *PostgresExpenseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}
