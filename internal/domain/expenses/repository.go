// Package expenses provides expense records and category aggregation.
package expenses

import (
	"context"
	"time"
)

// Expense represents a single business expense
type Expense struct {
	ID          int64
	Description string
	AmountMinor int64
	Category    Category
	DateCreated time.Time
	ReceiptPath *string
}

// CategoryTotal is one row of the per-category aggregation
type CategoryTotal struct {
	Category   Category
	TotalMinor int64
}

// ExpenseRepository defines the interface for expense persistence operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) error
	List(ctx context.Context) ([]*Expense, error)
	TotalsByCategory(ctx context.Context) ([]CategoryTotal, error)
	Total(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}
