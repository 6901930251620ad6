package assistant

import "github.com/avelar-dev/finassist/internal/domain/invoices"

// Intent identifies what a user utterance asks for.
type Intent string

const (
	IntentAddClient     Intent = "add_client"
	IntentCreateInvoice Intent = "create_invoice"
	IntentAddExpense    Intent = "add_expense"
	IntentUpdateInvoice Intent = "update_invoice"
	IntentRevenueQuery  Intent = "revenue_query"
	IntentInvoiceQuery  Intent = "invoice_query"
	IntentClientQuery   Intent = "client_query"
	IntentExpenseQuery  Intent = "expense_query"
	IntentProfitQuery   Intent = "profit_query"
	IntentHelp          Intent = "help"
	IntentGreeting      Intent = "greeting"
	IntentThanks        Intent = "thanks"
	IntentFallback      Intent = "fallback"
)

// Fields carries the structured values extracted for an intent. Only the
// fields the matched intent needs are populated.
type Fields struct {
	// add_client
	Name  string
	Email string
	Phone string

	// create_invoice / add_expense
	ClientName  string
	AmountMinor int64
	Description string
	Category    string

	// update_invoice
	InvoiceID int64
	Status    invoices.Status

	// client_query sub-variant: "list" / "show all"
	ListAll bool
}

// Command is the classifier's output: one recognized intent plus its
// extracted fields. Complete is false when the intent matched but its
// required fields could not be parsed; the executor then answers with
// that intent's corrective format example instead of falling through.
type Command struct {
	Intent   Intent
	Fields   Fields
	Complete bool
}
