package invoices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

// PostgresInvoiceRepository implements InvoiceRepository using PostgreSQL
type PostgresInvoiceRepository struct {
	pool pgxPool
}

// NewPostgresInvoiceRepository creates a new PostgreSQL invoice repository
func NewPostgresInvoiceRepository(pool *pgxpool.Pool) *PostgresInvoiceRepository {
	return &PostgresInvoiceRepository{pool: pool}
}

// Create inserts a new invoice; the store assigns the identifier
func (r *PostgresInvoiceRepository) Create(ctx context.Context, invoice *Invoice) error {
	description, err := invoice.Description.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode invoice description: %w", err)
	}

	query := `
		INSERT INTO invoices (client_name, amount_minor, description, date_created, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err = r.pool.QueryRow(ctx, query,
		invoice.ClientName,
		invoice.AmountMinor,
		description,
		invoice.DateCreated,
		invoice.DueDate,
		invoice.Status,
	).Scan(&invoice.ID)

	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// GetByID retrieves an invoice by ID
func (r *PostgresInvoiceRepository) GetByID(ctx context.Context, id int64) (*Invoice, error) {
	query := `
		SELECT id, client_name, amount_minor, description, date_created, due_date, status
		FROM invoices
		WHERE id = $1`

	invoice, err := scanInvoice(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return invoice, nil
}

// List retrieves all invoices ordered by creation date, newest first
func (r *PostgresInvoiceRepository) List(ctx context.Context) ([]*Invoice, error) {
	query := `
		SELECT id, client_name, amount_minor, description, date_created, due_date, status
		FROM invoices
		ORDER BY date_created DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var result []*Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		result = append(result, invoice)
	}
	return result, nil
}

// UpdateStatus sets the status of a single invoice. An unknown id is
// reported as sql.ErrNoRows rather than ignored.
func (r *PostgresInvoiceRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	result, err := r.pool.Exec(ctx, `UPDATE invoices SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// TotalsByStatus aggregates invoice counts and amounts grouped by status
func (r *PostgresInvoiceRepository) TotalsByStatus(ctx context.Context) (*StatusTotals, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COALESCE(SUM(amount_minor) FILTER (WHERE status = 'pending'), 0),
			COUNT(*) FILTER (WHERE status = 'paid'),
			COALESCE(SUM(amount_minor) FILTER (WHERE status = 'paid'), 0),
			COUNT(*) FILTER (WHERE status = 'overdue'),
			COALESCE(SUM(amount_minor) FILTER (WHERE status = 'overdue'), 0)
		FROM invoices`

	totals := &StatusTotals{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&totals.PendingCount,
		&totals.PendingMinor,
		&totals.PaidCount,
		&totals.PaidMinor,
		&totals.OverdueCount,
		&totals.OverdueMinor,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate invoice totals: %w", err)
	}
	return totals, nil
}

// MarkOverdue flips pending invoices past their due date to overdue and
// returns how many rows changed
func (r *PostgresInvoiceRepository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	result, err := r.pool.Exec(ctx,
		`UPDATE invoices SET status = 'overdue' WHERE status = 'pending' AND due_date < $1`,
		asOf,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue invoices: %w", err)
	}
	return result.RowsAffected(), nil
}

// Count returns the number of invoices
func (r *PostgresInvoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

func scanInvoice(row pgx.Row) (*Invoice, error) {
	invoice := &Invoice{}
	var rawDescription string
	err := row.Scan(
		&invoice.ID,
		&invoice.ClientName,
		&invoice.AmountMinor,
		&rawDescription,
		&invoice.DateCreated,
		&invoice.DueDate,
		&invoice.Status,
	)
	if err != nil {
		return nil, err
	}
	invoice.Description = DecodeDescription(rawDescription)
	return invoice, nil
}
