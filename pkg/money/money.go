// Package money provides currency-safe financial arithmetic using integer
// minor units (paise) and the Fowler Money pattern. All amounts in the
// application are INR unless stated otherwise.
package money

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// INR is the application's default currency code (ISO-4217).
const INR = "INR"

// Money represents a monetary value with currency. It wraps go-money for
// safe arithmetic and shopspring/decimal for precision calculations.
type Money struct {
	m *money.Money
}

// New creates a Money value from minor units (paise) and currency code.
func New(amountMinor int64, currencyCode string) *Money {
	return &Money{m: money.New(amountMinor, currencyCode)}
}

// NewFromDecimal creates Money from a decimal value in major units.
func NewFromDecimal(amount decimal.Decimal, currencyCode string) *Money {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		currency = money.GetCurrency(INR)
	}

	multiplier := decimal.New(1, int32(currency.Fraction))
	minor := amount.Mul(multiplier).Round(0).IntPart()

	return New(minor, currencyCode)
}

// NewFromString parses an amount string into Money. Accepts currency symbols
// and comma-grouping, e.g. "₹1,500", "3000.00", "2,500.50".
func NewFromString(amount string, currencyCode string) (*Money, error) {
	amount = strings.TrimSpace(amount)
	amount = strings.ReplaceAll(amount, " ", "")

	for _, sym := range []string{"₹", "$", "€", "£"} {
		amount = strings.ReplaceAll(amount, sym, "")
	}
	amount = strings.ReplaceAll(amount, ",", "")

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("amount %q must not be negative", amount)
	}

	return NewFromDecimal(d, currencyCode), nil
}

// Zero returns a zero Money value for the given currency.
func Zero(currencyCode string) *Money {
	return New(0, currencyCode)
}

// Amount returns the amount in minor units (paise).
func (m *Money) Amount() int64 {
	if m == nil || m.m == nil {
		return 0
	}
	return m.m.Amount()
}

// Currency returns the ISO-4217 currency code.
func (m *Money) Currency() string {
	if m == nil || m.m == nil {
		return ""
	}
	return m.m.Currency().Code
}

// IsZero returns true if the amount is zero.
func (m *Money) IsZero() bool {
	return m == nil || m.m == nil || m.m.IsZero()
}

// IsNegative returns true if the amount is less than zero.
func (m *Money) IsNegative() bool {
	return m != nil && m.m != nil && m.m.IsNegative()
}

// Add adds two Money values. Returns error if currencies don't match.
func (m *Money) Add(other *Money) (*Money, error) {
	if m == nil || m.m == nil {
		return other, nil
	}
	if other == nil || other.m == nil {
		return m, nil
	}

	result, err := m.m.Add(other.m)
	if err != nil {
		return nil, err
	}
	return &Money{m: result}, nil
}

// Subtract subtracts other from m. Returns error if currencies don't match.
func (m *Money) Subtract(other *Money) (*Money, error) {
	if m == nil || m.m == nil {
		if other == nil {
			return Zero(INR), nil
		}
		return New(-other.Amount(), other.Currency()), nil
	}
	if other == nil || other.m == nil {
		return m, nil
	}

	result, err := m.m.Subtract(other.m)
	if err != nil {
		return nil, err
	}
	return &Money{m: result}, nil
}

// Multiply multiplies by an integer factor.
func (m *Money) Multiply(factor int64) *Money {
	if m == nil || m.m == nil {
		return Zero(INR)
	}
	return &Money{m: m.m.Multiply(factor)}
}

// ToDecimal converts to decimal.Decimal in major units.
func (m *Money) ToDecimal() decimal.Decimal {
	if m == nil || m.m == nil {
		return decimal.Zero
	}
	currency := m.m.Currency()
	d := decimal.NewFromInt(m.m.Amount())
	divisor := decimal.New(1, int32(currency.Fraction))
	return d.Div(divisor)
}

// Tax calculates the tax amount for a given tax rate percentage
// (e.g. 18 for 18%). Uses decimal arithmetic for precision.
func (m *Money) Tax(taxRate float64) *Money {
	if m == nil || m.m == nil {
		return Zero(INR)
	}

	d := m.ToDecimal()
	pct := decimal.NewFromFloat(taxRate).Div(decimal.NewFromInt(100))
	return NewFromDecimal(d.Mul(pct), m.Currency())
}

// WithTax returns the total amount including tax.
func (m *Money) WithTax(taxRate float64) *Money {
	tax := m.Tax(taxRate)
	result, _ := m.Add(tax)
	return result
}

// PercentOf calculates what percentage this amount is of total, as a
// decimal (e.g. 25.5 for 25.5%). A zero or nil total yields zero rather
// than a division error.
func (m *Money) PercentOf(total *Money) decimal.Decimal {
	if m == nil || m.m == nil || total == nil || total.IsZero() {
		return decimal.Zero
	}
	return m.ToDecimal().Div(total.ToDecimal()).Mul(decimal.NewFromInt(100))
}

// String returns the amount as a plain decimal string with two decimal
// places (e.g. "3000.00").
func (m *Money) String() string {
	return m.ToDecimal().StringFixed(2)
}

// Display returns the amount prefixed with the rupee sign, matching the
// assistant's response format (e.g. "₹3000.00"). No digit grouping.
func (m *Money) Display() string {
	return "₹" + m.String()
}

// Sum adds a slice of minor-unit amounts into a single Money value.
func Sum(currencyCode string, amountsMinor ...int64) *Money {
	var total int64
	for _, a := range amountsMinor {
		total += a
	}
	return New(total, currencyCode)
}

// FormatMinor renders a minor-unit amount as "₹x.yy" without constructing
// an intermediate Money value.
func FormatMinor(amountMinor int64) string {
	return New(amountMinor, INR).Display()
}

// PercentMinor returns part/total as a percentage rounded to one decimal
// place, guarding against a zero total.
func PercentMinor(partMinor, totalMinor int64) float64 {
	if totalMinor == 0 {
		return 0
	}
	pct := decimal.NewFromInt(partMinor).
		Div(decimal.NewFromInt(totalMinor)).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	f, _ := pct.Float64()
	return f
}
