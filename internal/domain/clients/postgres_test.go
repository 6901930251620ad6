package clients

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresCreate_ReturnsAssignedID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO clients`).
		WithArgs("Sarah Smith", "sarah@example.com", "555-9999", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	repo := &PostgresClientRepository{pool: mock}
	client := &Client{Name: "Sarah Smith", Email: "sarah@example.com", Phone: "555-9999"}

	err = repo.Create(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, int64(7), client.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresList_OrdersByName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, name, email, phone, address, created_at\s+FROM clients\s+ORDER BY name`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "phone", "address", "created_at"}).
			AddRow(int64(1), "Acme Corporation", "contact@acme.com", "+1 (555) 123-4567", (*string)(nil), now).
			AddRow(int64(2), "Tech Solutions Inc", "info@techsolutions.com", "+1 (555) 987-6543", (*string)(nil), now))

	repo := &PostgresClientRepository{pool: mock}
	result, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Acme Corporation", result[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
