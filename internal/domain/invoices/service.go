package invoices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avelar-dev/finassist/pkg/money"
)

// DueDateOffset is how far after creation an invoice falls due.
const DueDateOffset = 30 * 24 * time.Hour

// ErrNotFound indicates the referenced invoice does not exist.
var ErrNotFound = errors.New("invoice not found")

// ErrInvalidInvoice indicates missing or inconsistent invoice fields.
var ErrInvalidInvoice = errors.New("invalid invoice")

// Service handles invoice business logic
type Service struct {
	repo InvoiceRepository
	now  func() time.Time
}

// NewService creates a new invoice service
func NewService(repo InvoiceRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateInput holds the fields for a plain-description invoice.
type CreateInput struct {
	ClientName  string
	AmountMinor int64
	Description string
}

// Create persists an invoice with a legacy text description. The due date
// is the creation date plus thirty days and the status starts as pending.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Invoice, error) {
	if in.ClientName == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInvoice)
	}
	if in.AmountMinor < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInvoice)
	}

	created := s.today()
	invoice := &Invoice{
		ClientName:  in.ClientName,
		AmountMinor: in.AmountMinor,
		Description: LegacyDescription(in.Description),
		DateCreated: created,
		DueDate:     created.Add(DueDateOffset),
		Status:      StatusPending,
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// CreateStructured persists an invoice whose description carries line
// items. The stored amount is the line-item subtotal plus tax; it is
// computed here, at write time, and is authoritative on later reads.
func (s *Service) CreateStructured(ctx context.Context, clientName string, items []LineItem, taxRate float64, notes string) (*Invoice, error) {
	if clientName == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInvoice)
	}
	if len(items) == 0 || items[0].Description == "" {
		return nil, fmt.Errorf("%w: at least one line item is required", ErrInvalidInvoice)
	}

	description := StructuredDescription(items, taxRate, notes)
	subtotal := money.New(description.SubtotalMinor(), money.INR)
	total := subtotal.WithTax(taxRate)
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInvoice)
	}

	created := s.today()
	invoice := &Invoice{
		ClientName:  clientName,
		AmountMinor: total.Amount(),
		Description: description,
		DateCreated: created,
		DueDate:     created.Add(DueDateOffset),
		Status:      StatusPending,
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// UpdateStatus marks a single invoice with the given status. A missing
// invoice is reported as ErrNotFound so callers can surface it.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInvoice, status)
	}
	err := s.repo.UpdateStatus(ctx, id, status)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// List returns all invoices, newest first.
func (s *Service) List(ctx context.Context) ([]*Invoice, error) {
	return s.repo.List(ctx)
}

// Totals aggregates counts and amounts per status.
func (s *Service) Totals(ctx context.Context) (*StatusTotals, error) {
	return s.repo.TotalsByStatus(ctx)
}

// Count returns the total number of invoices.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// SweepOverdue marks pending invoices past their due date as overdue.
func (s *Service) SweepOverdue(ctx context.Context) (int64, error) {
	return s.repo.MarkOverdue(ctx, s.today())
}

// today truncates the clock to a date, matching the DATE columns.
func (s *Service) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
