package expenses

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DefaultDescription is used when an expense command carries no description.
const DefaultDescription = "General expense"

// Service handles expense business logic
type Service struct {
	repo ExpenseRepository
	now  func() time.Time
}

// NewService creates a new expense service
func NewService(repo ExpenseRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateInput holds the fields extracted for a new expense. Category is
// the raw phrase; it is mapped through the synonym table here.
type CreateInput struct {
	Description string
	AmountMinor int64
	Category    string
	ReceiptPath *string
}

// Create persists a new expense dated today.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Expense, error) {
	if in.AmountMinor < 0 {
		return nil, fmt.Errorf("expense amount must not be negative")
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = DefaultDescription
	}

	now := s.now()
	expense := &Expense{
		Description: description,
		AmountMinor: in.AmountMinor,
		Category:    CanonicalCategory(in.Category),
		DateCreated: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		ReceiptPath: in.ReceiptPath,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// List returns all expenses, newest first.
func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.repo.List(ctx)
}

// Breakdown holds the per-category totals plus the overall figures.
type Breakdown struct {
	TotalMinor int64
	Count      int64
	Categories []CategoryTotal
}

// GetBreakdown aggregates expenses by category. An empty store yields a
// zero-valued breakdown rather than an error.
func (s *Service) GetBreakdown(ctx context.Context) (*Breakdown, error) {
	total, err := s.repo.Total(ctx)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.TotalsByCategory(ctx)
	if err != nil {
		return nil, err
	}

	return &Breakdown{
		TotalMinor: total,
		Count:      count,
		Categories: categories,
	}, nil
}

// Total sums all expenses.
func (s *Service) Total(ctx context.Context) (int64, error) {
	return s.repo.Total(ctx)
}
