package clients

import (
	"context"
	"database/sql"
	"errors"
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

// PostgresClientRepository implements ClientRepository using PostgreSQL
type PostgresClientRepository struct {
	pool pgxPool
}

// NewPostgresClientRepository creates a new PostgreSQL client repository
func NewPostgresClientRepository(pool *pgxpool.Pool) *PostgresClientRepository {
	return &PostgresClientRepository{pool: pool}
}

// Create inserts a new client; the store assigns the identifier
func (r *PostgresClientRepository) Create(ctx context.Context, client *Client) error {
	query := `
		INSERT INTO clients (name, email, phone, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		client.Name,
		client.Email,
		client.Phone,
		client.Address,
	).Scan(&client.ID, &client.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// GetByID retrieves a client by ID
func (r *PostgresClientRepository) GetByID(ctx context.Context, id int64) (*Client, error) {
	query := `
		SELECT id, name, email, phone, address, created_at
		FROM clients
		WHERE id = $1`

	client := &Client{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.Address,
		&client.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

// List retrieves all clients ordered by name
func (r *PostgresClientRepository) List(ctx context.Context) ([]*Client, error) {
	query := `
		SELECT id, name, email, phone, address, created_at
		FROM clients
		ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var result []*Client
	for rows.Next() {
		client := &Client{}
		err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Email,
			&client.Phone,
			&client.Address,
			&client.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		result = append(result, client)
	}
	return result, nil
}

// Count returns the number of clients
func (r *PostgresClientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}
