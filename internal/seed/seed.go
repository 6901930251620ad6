// Package seed populates an empty database with sample records so the
// dashboard and assistant have data to work with on first run.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/avelar-dev/finassist/internal/domain/clients"
	"github.com/avelar-dev/finassist/internal/domain/expenses"
	"github.com/avelar-dev/finassist/internal/domain/invoices"
)

// Seeder inserts sample data. It writes through the repositories rather
// than the services so historic dates and non-pending statuses survive
// as-is.
type Seeder struct {
	clients  clients.ClientRepository
	invoices invoices.InvoiceRepository
	expenses expenses.ExpenseRepository
	logger   *slog.Logger
}

// New creates a seeder over the three stores.
func New(clientRepo clients.ClientRepository, invoiceRepo invoices.InvoiceRepository, expenseRepo expenses.ExpenseRepository, logger *slog.Logger) *Seeder {
	return &Seeder{
		clients:  clientRepo,
		invoices: invoiceRepo,
		expenses: expenseRepo,
		logger:   logger,
	}
}

// Run inserts the sample data set, plus extraRandom generated records per
// table. Seeding is skipped entirely when invoices already exist.
func (s *Seeder) Run(ctx context.Context, extraRandom int) error {
	count, err := s.invoices.Count(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing data: %w", err)
	}
	if count > 0 {
		s.logger.Info("database already has data, skipping seed", slog.Int64("invoices", count))
		return nil
	}

	for _, c := range sampleClients() {
		c := c
		if err := s.clients.Create(ctx, &c); err != nil {
			return fmt.Errorf("seeding client %q: %w", c.Name, err)
		}
	}
	for _, inv := range sampleInvoices() {
		inv := inv
		if err := s.invoices.Create(ctx, &inv); err != nil {
			return fmt.Errorf("seeding invoice for %q: %w", inv.ClientName, err)
		}
	}
	for _, exp := range sampleExpenses() {
		exp := exp
		if err := s.expenses.Create(ctx, &exp); err != nil {
			return fmt.Errorf("seeding expense %q: %w", exp.Description, err)
		}
	}

	if extraRandom > 0 {
		if err := s.seedRandom(ctx, extraRandom); err != nil {
			return err
		}
	}

	s.logger.Info("sample data seeded",
		slog.Int("clients", len(sampleClients())+extraRandom),
		slog.Int("invoices", len(sampleInvoices())+extraRandom),
		slog.Int("expenses", len(sampleExpenses())+extraRandom),
	)
	return nil
}

// seedRandom adds generated records on top of the fixed sample set. The
// generator is seeded so repeated runs against a wiped database produce
// the same data.
func (s *Seeder) seedRandom(ctx context.Context, n int) error {
	faker := gofakeit.New(42)
	yearAgo := time.Now().AddDate(-1, 0, 0)
	statuses := []invoices.Status{invoices.StatusPending, invoices.StatusPaid, invoices.StatusOverdue}

	for i := 0; i < n; i++ {
		company := faker.Company()

		client := clients.Client{
			Name:  company,
			Email: faker.Email(),
			Phone: faker.Phone(),
		}
		if err := s.clients.Create(ctx, &client); err != nil {
			return fmt.Errorf("seeding random client: %w", err)
		}

		created := faker.DateRange(yearAgo, time.Now())
		invoice := invoices.Invoice{
			ClientName:  company,
			AmountMinor: int64(faker.Number(50000, 800000)),
			Description: invoices.LegacyDescription(faker.JobTitle() + " services"),
			DateCreated: created,
			DueDate:     created.AddDate(0, 1, 0),
			Status:      statuses[faker.Number(0, len(statuses)-1)],
		}
		if err := s.invoices.Create(ctx, &invoice); err != nil {
			return fmt.Errorf("seeding random invoice: %w", err)
		}

		expense := expenses.Expense{
			Description: faker.ProductName(),
			AmountMinor: int64(faker.Number(1000, 150000)),
			Category:    expenses.Categories[faker.Number(0, len(expenses.Categories)-1)],
			DateCreated: faker.DateRange(yearAgo, time.Now()),
		}
		if err := s.expenses.Create(ctx, &expense); err != nil {
			return fmt.Errorf("seeding random expense: %w", err)
		}
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sampleClients() []clients.Client {
	return []clients.Client{
		{Name: "Acme Corporation", Email: "contact@acme.com", Phone: "+1 (555) 123-4567"},
		{Name: "Tech Solutions Inc", Email: "info@techsolutions.com", Phone: "+1 (555) 987-6543"},
		{Name: "Digital Marketing Pro", Email: "hello@digitalmarketing.com", Phone: "+1 (555) 456-7890"},
		{Name: "Global Enterprises", Email: "contact@globalent.com", Phone: "+1 (555) 234-5678"},
		{Name: "StartUp Innovations", Email: "team@startupinno.com", Phone: "+1 (555) 345-6789"},
		{Name: "Retail Solutions LLC", Email: "sales@retailsol.com", Phone: "+1 (555) 456-7891"},
		{Name: "Healthcare Plus", Email: "info@healthcareplus.com", Phone: "+1 (555) 567-8912"},
		{Name: "Finance Corp", Email: "contact@financecorp.com", Phone: "+1 (555) 678-9123"},
		{Name: "Education Hub", Email: "admin@eduhub.com", Phone: "+1 (555) 789-1234"},
		{Name: "Travel Agency Pro", Email: "bookings@travelagency.com", Phone: "+1 (555) 891-2345"},
	}
}

func sampleInvoices() []invoices.Invoice {
	mk := func(client string, amountMinor int64, desc string, created, due time.Time, status invoices.Status) invoices.Invoice {
		return invoices.Invoice{
			ClientName:  client,
			AmountMinor: amountMinor,
			Description: invoices.LegacyDescription(desc),
			DateCreated: created,
			DueDate:     due,
			Status:      status,
		}
	}
	return []invoices.Invoice{
		mk("Acme Corporation", 250000, "Website development and design services", date(2024, 1, 15), date(2024, 2, 15), invoices.StatusPaid),
		mk("Tech Solutions Inc", 180000, "Mobile app consultation", date(2024, 1, 20), date(2024, 2, 20), invoices.StatusPending),
		mk("Digital Marketing Pro", 320000, "E-commerce platform development", date(2024, 1, 25), date(2024, 2, 25), invoices.StatusPaid),
		mk("Global Enterprises", 450000, "Custom CRM system development", date(2024, 2, 1), date(2024, 3, 1), invoices.StatusPaid),
		mk("StartUp Innovations", 220000, "MVP development and testing", date(2024, 2, 5), date(2024, 3, 5), invoices.StatusPending),
		mk("Retail Solutions LLC", 380000, "Inventory management system", date(2024, 2, 10), date(2024, 3, 10), invoices.StatusOverdue),
		mk("Healthcare Plus", 520000, "Patient portal development", date(2024, 2, 15), date(2024, 3, 15), invoices.StatusPaid),
		mk("Finance Corp", 680000, "Trading platform integration", date(2024, 2, 20), date(2024, 3, 20), invoices.StatusPending),
		mk("Education Hub", 290000, "Learning management system", date(2024, 2, 25), date(2024, 3, 25), invoices.StatusPaid),
		mk("Travel Agency Pro", 340000, "Booking system development", date(2024, 3, 1), date(2024, 4, 1), invoices.StatusPending),
	}
}

func sampleExpenses() []expenses.Expense {
	mk := func(desc string, amountMinor int64, category expenses.Category, created time.Time) expenses.Expense {
		return expenses.Expense{
			Description: desc,
			AmountMinor: amountMinor,
			Category:    category,
			DateCreated: created,
		}
	}
	return []expenses.Expense{
		mk("Office supplies - Notebooks and pens", 15000, expenses.CategoryOffice, date(2024, 1, 10)),
		mk("Business lunch with client", 8550, expenses.CategoryMeals, date(2024, 1, 12)),
		mk("Software subscription - Adobe Creative Suite", 5299, expenses.CategorySoftware, date(2024, 1, 15)),
		mk("Travel expenses - Client meeting", 32000, expenses.CategoryTravel, date(2024, 1, 18)),
		mk("Office rent - January", 120000, expenses.CategoryUtilities, date(2024, 1, 20)),
		mk("Marketing campaign - Social media ads", 45000, expenses.CategoryMarketing, date(2024, 1, 22)),
		mk("Conference tickets - Tech Summit 2024", 59900, expenses.CategoryTravel, date(2024, 1, 25)),
		mk("Cloud hosting - AWS services", 28000, expenses.CategorySoftware, date(2024, 2, 1)),
		mk("Team lunch - Monthly meeting", 12500, expenses.CategoryMeals, date(2024, 2, 5)),
		mk("Office furniture - Ergonomic chairs", 89000, expenses.CategoryOffice, date(2024, 2, 8)),
		mk("Internet and phone bills", 18000, expenses.CategoryUtilities, date(2024, 2, 10)),
		mk("Google Ads campaign", 65000, expenses.CategoryMarketing, date(2024, 2, 12)),
		mk("Flight to client site", 42000, expenses.CategoryTravel, date(2024, 2, 15)),
		mk("GitHub Enterprise subscription", 21000, expenses.CategorySoftware, date(2024, 2, 18)),
		mk("Printer and supplies", 34000, expenses.CategoryOffice, date(2024, 2, 20)),
	}
}
