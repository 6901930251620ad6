package assistant

import (
	"context"
	"errors"
	"log/slog"

	"github.com/avelar-dev/finassist/internal/domain/clients"
	"github.com/avelar-dev/finassist/internal/domain/dashboard"
	"github.com/avelar-dev/finassist/internal/domain/expenses"
	"github.com/avelar-dev/finassist/internal/domain/invoices"
)

// ClientService is the client surface the executor consumes.
type ClientService interface {
	Create(ctx context.Context, in clients.CreateInput) (*clients.Client, error)
	List(ctx context.Context) ([]*clients.Client, error)
	Count(ctx context.Context) (int64, error)
	FindByName(ctx context.Context, name string) (*clients.Client, []string, error)
}

// InvoiceService is the invoice surface the executor consumes.
type InvoiceService interface {
	Create(ctx context.Context, in invoices.CreateInput) (*invoices.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status invoices.Status) error
	Totals(ctx context.Context) (*invoices.StatusTotals, error)
	Count(ctx context.Context) (int64, error)
}

// ExpenseService is the expense surface the executor consumes.
type ExpenseService interface {
	Create(ctx context.Context, in expenses.CreateInput) (*expenses.Expense, error)
	GetBreakdown(ctx context.Context) (*expenses.Breakdown, error)
}

// DashboardService is the aggregation surface the executor consumes.
type DashboardService interface {
	GetStats(ctx context.Context) (*dashboard.Stats, error)
}

// Executor turns classified commands into service calls and renders the
// reply text. Every utterance produces exactly one reply; service errors
// surface as a generic apology, never as a crash.
type Executor struct {
	classifier *Classifier
	clients    ClientService
	invoices   InvoiceService
	expenses   ExpenseService
	dashboard  DashboardService
	logger     *slog.Logger
}

// NewExecutor wires the executor to the domain services.
func NewExecutor(clientSvc ClientService, invoiceSvc InvoiceService, expenseSvc ExpenseService, dashboardSvc DashboardService, logger *slog.Logger) *Executor {
	return &Executor{
		classifier: NewClassifier(),
		clients:    clientSvc,
		invoices:   invoiceSvc,
		expenses:   expenseSvc,
		dashboard:  dashboardSvc,
		logger:     logger,
	}
}

// Handle classifies one utterance and executes it, returning the reply.
func (e *Executor) Handle(ctx context.Context, text string) string {
	cmd := e.classifier.Classify(text)
	e.logger.Debug("classified utterance", slog.String("intent", string(cmd.Intent)), slog.Bool("complete", cmd.Complete))

	reply, err := e.execute(ctx, cmd)
	if err != nil {
		e.logger.Error("command failed", slog.String("intent", string(cmd.Intent)), slog.Any("error", err))
		return apologyText
	}
	return reply
}

func (e *Executor) execute(ctx context.Context, cmd Command) (string, error) {
	switch cmd.Intent {
	case IntentAddClient:
		return e.addClient(ctx, cmd)
	case IntentCreateInvoice:
		return e.createInvoice(ctx, cmd)
	case IntentAddExpense:
		return e.addExpense(ctx, cmd)
	case IntentUpdateInvoice:
		return e.updateInvoice(ctx, cmd)
	case IntentRevenueQuery:
		totals, err := e.invoices.Totals(ctx)
		if err != nil {
			return "", err
		}
		return revenueReportText(*totals), nil
	case IntentInvoiceQuery:
		totals, err := e.invoices.Totals(ctx)
		if err != nil {
			return "", err
		}
		return invoiceSummaryText(*totals), nil
	case IntentClientQuery:
		return e.clientQuery(ctx, cmd)
	case IntentExpenseQuery:
		breakdown, err := e.expenses.GetBreakdown(ctx)
		if err != nil {
			return "", err
		}
		return expenseReportText(*breakdown), nil
	case IntentProfitQuery:
		stats, err := e.dashboard.GetStats(ctx)
		if err != nil {
			return "", err
		}
		return profitReportText(*stats), nil
	case IntentHelp:
		return helpText, nil
	case IntentGreeting:
		return greetingText, nil
	case IntentThanks:
		return thanksText, nil
	default:
		return fallbackText, nil
	}
}

func (e *Executor) addClient(ctx context.Context, cmd Command) (string, error) {
	if !cmd.Complete {
		return clientIncompleteText, nil
	}
	client, err := e.clients.Create(ctx, clients.CreateInput{
		Name:  cmd.Fields.Name,
		Email: cmd.Fields.Email,
		Phone: cmd.Fields.Phone,
	})
	if err != nil {
		return "", err
	}
	return clientAddedText(*client), nil
}

func (e *Executor) createInvoice(ctx context.Context, cmd Command) (string, error) {
	if !cmd.Complete {
		return invoiceIncompleteText, nil
	}

	// Spell the client name the way it is already on file when a match
	// exists; "tech corp" bills Tech Corp, not a new spelling of it.
	clientName := cmd.Fields.ClientName
	if match, _, err := e.clients.FindByName(ctx, clientName); err == nil && match != nil {
		clientName = match.Name
	}

	invoice, err := e.invoices.Create(ctx, invoices.CreateInput{
		ClientName:  clientName,
		AmountMinor: cmd.Fields.AmountMinor,
		Description: cmd.Fields.Description,
	})
	if err != nil {
		return "", err
	}
	return invoiceCreatedText(*invoice), nil
}

func (e *Executor) addExpense(ctx context.Context, cmd Command) (string, error) {
	if !cmd.Complete {
		return expenseIncompleteText, nil
	}
	expense, err := e.expenses.Create(ctx, expenses.CreateInput{
		Description: cmd.Fields.Description,
		AmountMinor: cmd.Fields.AmountMinor,
		Category:    cmd.Fields.Category,
	})
	if err != nil {
		return "", err
	}
	return expenseAddedText(*expense), nil
}

func (e *Executor) updateInvoice(ctx context.Context, cmd Command) (string, error) {
	if !cmd.Complete {
		return updateIncompleteText, nil
	}
	err := e.invoices.UpdateStatus(ctx, cmd.Fields.InvoiceID, cmd.Fields.Status)
	if errors.Is(err, invoices.ErrNotFound) {
		return invoiceNotFoundText(cmd.Fields.InvoiceID), nil
	}
	if err != nil {
		return "", err
	}
	return invoiceUpdatedText(cmd.Fields.InvoiceID, cmd.Fields.Status), nil
}

func (e *Executor) clientQuery(ctx context.Context, cmd Command) (string, error) {
	if cmd.Fields.ListAll {
		all, err := e.clients.List(ctx)
		if err != nil {
			return "", err
		}
		return clientListText(all), nil
	}

	clientCount, err := e.clients.Count(ctx)
	if err != nil {
		return "", err
	}
	invoiceCount, err := e.invoices.Count(ctx)
	if err != nil {
		return "", err
	}
	return clientOverviewText(clientCount, invoiceCount), nil
}
