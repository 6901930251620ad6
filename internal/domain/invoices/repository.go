// Package invoices provides invoice records, the description codec, and
// status lifecycle operations.
package invoices

import (
	"context"
	"time"
)

// Status represents the payment status of an invoice
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// Invoice represents a billed amount owed by a client. ClientName is free
// text matched to clients case-insensitively; it is not a foreign key.
type Invoice struct {
	ID          int64
	ClientName  string
	AmountMinor int64
	Description Description
	DateCreated time.Time
	DueDate     time.Time
	Status      Status
}

// StatusTotals aggregates invoice counts and amounts per status
type StatusTotals struct {
	PendingCount int64
	PendingMinor int64
	PaidCount    int64
	PaidMinor    int64
	OverdueCount int64
	OverdueMinor int64
}

// TotalCount returns the number of invoices across all statuses.
func (t StatusTotals) TotalCount() int64 {
	return t.PendingCount + t.PaidCount + t.OverdueCount
}

// TotalMinor returns the total invoiced amount across all statuses.
func (t StatusTotals) TotalMinor() int64 {
	return t.PendingMinor + t.PaidMinor + t.OverdueMinor
}

// InvoiceRepository defines the interface for invoice persistence operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *Invoice) error
	GetByID(ctx context.Context, id int64) (*Invoice, error)
	List(ctx context.Context) ([]*Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	TotalsByStatus(ctx context.Context) (*StatusTotals, error)
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}
