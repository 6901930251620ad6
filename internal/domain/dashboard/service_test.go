package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockStatsReader implements StatsReader for testing
type MockStatsReader struct {
	revenue  int64
	expenses int64
	invoices int64
	monthly  []MonthlyRevenue
	err      error
}

func (m *MockStatsReader) GetRevenue(ctx context.Context) (int64, error) {
	return m.revenue, m.err
}

func (m *MockStatsReader) GetExpensesTotal(ctx context.Context) (int64, error) {
	return m.expenses, m.err
}

func (m *MockStatsReader) GetInvoiceCount(ctx context.Context) (int64, error) {
	return m.invoices, m.err
}

func (m *MockStatsReader) GetMonthlyRevenue(ctx context.Context, months int) ([]MonthlyRevenue, error) {
	return m.monthly, m.err
}

func TestGetStats_ComputesProfit(t *testing.T) {
	mock := &MockStatsReader{
		revenue:  100000, // ₹1000
		expenses: 40000,  // ₹400
		invoices: 7,
	}
	svc := NewService(mock)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(100000), stats.RevenueMinor)
	assert.Equal(t, int64(40000), stats.ExpensesMinor)
	assert.Equal(t, int64(60000), stats.ProfitMinor)
	assert.Equal(t, int64(7), stats.InvoiceCount)
	assert.Equal(t, 60.0, stats.Margin())
}

func TestStats_MarginGuardsZeroRevenue(t *testing.T) {
	stats := Stats{RevenueMinor: 0, ProfitMinor: -5000}
	assert.Equal(t, 0.0, stats.Margin())
}

func TestGetStats_NegativeProfit(t *testing.T) {
	mock := &MockStatsReader{revenue: 10000, expenses: 30000}
	svc := NewService(mock)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(-20000), stats.ProfitMinor)
}
