// Package export writes invoice and expense data as CSV for use in
// spreadsheets and accounting tools.
package export

import (
	"context"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/avelar-dev/finassist/internal/domain/expenses"
	"github.com/avelar-dev/finassist/internal/domain/invoices"
	"github.com/avelar-dev/finassist/pkg/money"
)

const dateLayout = "2006-01-02"

// InvoiceRow is one CSV line of the invoice export. Amounts are in major
// units with two decimals; structured descriptions are flattened to their
// display text.
type InvoiceRow struct {
	ID          int64  `csv:"id"`
	Client      string `csv:"client"`
	Amount      string `csv:"amount"`
	Description string `csv:"description"`
	DateCreated string `csv:"date_created"`
	DueDate     string `csv:"due_date"`
	Status      string `csv:"status"`
}

// ExpenseRow is one CSV line of the expense export.
type ExpenseRow struct {
	ID          int64  `csv:"id"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
	Date        string `csv:"date"`
}

// InvoiceLister is the invoice surface the exporter consumes.
type InvoiceLister interface {
	List(ctx context.Context) ([]*invoices.Invoice, error)
}

// ExpenseLister is the expense surface the exporter consumes.
type ExpenseLister interface {
	List(ctx context.Context) ([]*expenses.Expense, error)
}

// Service renders CSV exports from the domain stores.
type Service struct {
	invoices InvoiceLister
	expenses ExpenseLister
}

// NewService creates a new export service.
func NewService(invoiceLister InvoiceLister, expenseLister ExpenseLister) *Service {
	return &Service{invoices: invoiceLister, expenses: expenseLister}
}

// WriteInvoicesCSV writes all invoices to w, newest first, with a header
// row.
func (s *Service) WriteInvoicesCSV(ctx context.Context, w io.Writer) error {
	all, err := s.invoices.List(ctx)
	if err != nil {
		return fmt.Errorf("listing invoices: %w", err)
	}

	rows := make([]InvoiceRow, 0, len(all))
	for _, inv := range all {
		rows = append(rows, InvoiceRow{
			ID:          inv.ID,
			Client:      inv.ClientName,
			Amount:      money.New(inv.AmountMinor, money.INR).String(),
			Description: inv.Description.Text(),
			DateCreated: inv.DateCreated.Format(dateLayout),
			DueDate:     inv.DueDate.Format(dateLayout),
			Status:      string(inv.Status),
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing invoice csv: %w", err)
	}
	return nil
}

// WriteExpensesCSV writes all expenses to w, newest first, with a header
// row.
func (s *Service) WriteExpensesCSV(ctx context.Context, w io.Writer) error {
	all, err := s.expenses.List(ctx)
	if err != nil {
		return fmt.Errorf("listing expenses: %w", err)
	}

	rows := make([]ExpenseRow, 0, len(all))
	for _, exp := range all {
		rows = append(rows, ExpenseRow{
			ID:          exp.ID,
			Description: exp.Description,
			Amount:      money.New(exp.AmountMinor, money.INR).String(),
			Category:    string(exp.Category),
			Date:        exp.DateCreated.Format(dateLayout),
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing expense csv: %w", err)
	}
	return nil
}
