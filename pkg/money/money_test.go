package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantMinor int64
		wantErr   bool
	}{
		{"plain integer", "3000", 300000, false},
		{"two decimals", "150.50", 15050, false},
		{"rupee symbol", "₹5000", 500000, false},
		{"comma grouping", "1,234.56", 123456, false},
		{"rupee with commas", "₹12,000", 1200000, false},
		{"surrounding spaces", " 200.00 ", 20000, false},
		{"negative rejected", "-50", 0, true},
		{"garbage", "abc", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewFromString(tt.input, INR)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMinor, m.Amount())
			assert.Equal(t, INR, m.Currency())
		})
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "₹3000.00", New(300000, INR).Display())
	assert.Equal(t, "₹150.50", New(15050, INR).Display())
	assert.Equal(t, "₹0.00", Zero(INR).Display())
}

func TestWithTax(t *testing.T) {
	base := New(100000, INR) // ₹1000
	total := base.WithTax(18)
	assert.Equal(t, int64(118000), total.Amount())

	// Zero rate is a no-op
	assert.Equal(t, int64(100000), base.WithTax(0).Amount())
}

func TestPercentOf_ZeroTotalGuard(t *testing.T) {
	part := New(5000, INR)
	assert.True(t, part.PercentOf(Zero(INR)).IsZero())
	assert.True(t, part.PercentOf(nil).IsZero())

	pct := New(60000, INR).PercentOf(New(100000, INR))
	assert.True(t, pct.Equal(decimal.NewFromInt(60)))
}

func TestPercentMinor(t *testing.T) {
	assert.Equal(t, 60.0, PercentMinor(60000, 100000))
	assert.Equal(t, 33.3, PercentMinor(1, 3))
	assert.Equal(t, 0.0, PercentMinor(5000, 0)) // No NaN on empty totals
}

func TestSum(t *testing.T) {
	assert.Equal(t, int64(60000), Sum(INR, 10000, 20000, 30000).Amount())
	assert.Equal(t, int64(0), Sum(INR).Amount())
}
