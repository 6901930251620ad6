package dashboard

import (
	"context"

	"github.com/avelar-dev/finassist/pkg/money"
)

// Stats holds the combined dashboard figures
type Stats struct {
	RevenueMinor  int64
	ExpensesMinor int64
	ProfitMinor   int64
	InvoiceCount  int64
}

// Margin returns profit as a percentage of revenue, rounded to one
// decimal place. Zero revenue yields zero, not a division error.
func (s Stats) Margin() float64 {
	return money.PercentMinor(s.ProfitMinor, s.RevenueMinor)
}

// StatsReader is the aggregation surface the service consumes
type StatsReader interface {
	GetRevenue(ctx context.Context) (int64, error)
	GetExpensesTotal(ctx context.Context) (int64, error)
	GetInvoiceCount(ctx context.Context) (int64, error)
	GetMonthlyRevenue(ctx context.Context, months int) ([]MonthlyRevenue, error)
}

// Service handles dashboard reads
type Service struct {
	repo StatsReader
}

// NewService creates a new dashboard service
func NewService(repo StatsReader) *Service {
	return &Service{repo: repo}
}

// GetStats computes revenue, expenses, profit, and invoice count in one
// read pass.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	revenue, err := s.repo.GetRevenue(ctx)
	if err != nil {
		return nil, err
	}
	expensesTotal, err := s.repo.GetExpensesTotal(ctx)
	if err != nil {
		return nil, err
	}
	invoiceCount, err := s.repo.GetInvoiceCount(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		RevenueMinor:  revenue,
		ExpensesMinor: expensesTotal,
		ProfitMinor:   revenue - expensesTotal,
		InvoiceCount:  invoiceCount,
	}, nil
}

// GetMonthlyRevenue returns paid revenue for the last n months, oldest
// first, for chart consumers.
func (s *Service) GetMonthlyRevenue(ctx context.Context, months int) ([]MonthlyRevenue, error) {
	return s.repo.GetMonthlyRevenue(ctx, months)
}
