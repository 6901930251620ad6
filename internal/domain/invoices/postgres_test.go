package invoices

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresUpdateStatus_NoRowsIsReported(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE invoices SET status`).
		WithArgs(int64(99), StatusPaid).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := &PostgresInvoiceRepository{pool: mock}
	err = repo.UpdateStatus(context.Background(), 99, StatusPaid)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByID_DecodesStructuredDescription(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	raw := `{"line_items":[{"description":"Design","quantity":1,"rate":1000,"amount":1000}],"tax_rate":0}`
	created := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, client_name, amount_minor, description`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "client_name", "amount_minor", "description", "date_created", "due_date", "status",
		}).AddRow(int64(5), "Acme Corporation", int64(100000), raw, created, created.AddDate(0, 1, 0), StatusPending))

	repo := &PostgresInvoiceRepository{pool: mock}
	invoice, err := repo.GetByID(context.Background(), 5)

	require.NoError(t, err)
	assert.True(t, invoice.Description.IsStructured())
	assert.Equal(t, "Design", invoice.Description.Text())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMarkOverdue_ReturnsAffectedCount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	asOf := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`UPDATE invoices SET status = 'overdue'`).
		WithArgs(asOf).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	repo := &PostgresInvoiceRepository{pool: mock}
	n, err := repo.MarkOverdue(context.Background(), asOf)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
