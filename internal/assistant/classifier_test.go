package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelar-dev/finassist/internal/domain/invoices"
)

func TestClassify_IntentPriority(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		input string
		want  Intent
	}{
		{"Add client Sarah Smith email sarah@example.com", IntentAddClient},
		{"Create invoice for Tech Corp ₹3000", IntentCreateInvoice},
		{"Add expense ₹150 for office supplies", IntentAddExpense},
		{"Mark invoice #5 as paid", IntentUpdateInvoice},
		{"Show my revenue", IntentRevenueQuery},
		{"How much income this month", IntentRevenueQuery},
		// a bare "invoice" only reaches the summary rule because the
		// create and update rules are checked first
		{"Show invoices", IntentInvoiceQuery},
		{"Any unpaid bills?", IntentInvoiceQuery},
		{"Show clients", IntentClientQuery},
		{"How many customers do I have", IntentClientQuery},
		{"Show expenses", IntentExpenseQuery},
		{"What is my spending", IntentExpenseQuery},
		{"Show profit", IntentProfitQuery},
		{"What is my margin", IntentProfitQuery},
		{"help", IntentHelp},
		{"What can you do", IntentHelp},
		{"hello", IntentGreeting},
		{"hey there", IntentGreeting},
		{"thank you", IntentThanks},
		{"abracadabra", IntentFallback},
		{"", IntentFallback},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := c.Classify(tt.input)
			assert.Equal(t, tt.want, cmd.Intent)
		})
	}
}

func TestClassify_AddClientFields(t *testing.T) {
	c := NewClassifier()

	cmd := c.Classify("Add client Sarah Smith email sarah@example.com phone 555-1234")
	require.Equal(t, IntentAddClient, cmd.Intent)
	require.True(t, cmd.Complete)
	assert.Equal(t, "Sarah Smith", cmd.Fields.Name)
	assert.Equal(t, "sarah@example.com", cmd.Fields.Email)
	assert.Equal(t, "555-1234", cmd.Fields.Phone)
}

func TestClassify_AddClientWithoutPhone(t *testing.T) {
	c := NewClassifier()

	cmd := c.Classify("Add client John Doe email john@example.com")
	require.True(t, cmd.Complete)
	assert.Equal(t, "John Doe", cmd.Fields.Name)
	assert.Empty(t, cmd.Fields.Phone)
}

func TestClassify_AddClientMissingEmail(t *testing.T) {
	c := NewClassifier()

	cmd := c.Classify("Add client John Doe")
	assert.Equal(t, IntentAddClient, cmd.Intent)
	assert.False(t, cmd.Complete)
}

func TestClassify_CreateInvoiceFields(t *testing.T) {
	c := NewClassifier()

	cmd := c.Classify("Create invoice for Tech Corp ₹3000 for web development")
	require.Equal(t, IntentCreateInvoice, cmd.Intent)
	require.True(t, cmd.Complete)
	assert.Equal(t, "Tech Corp", cmd.Fields.ClientName)
	assert.Equal(t, int64(300000), cmd.Fields.AmountMinor)
	assert.Equal(t, "web development", cmd.Fields.Description)
}

func TestClassify_CreateInvoiceDefaultDescription(t *testing.T) {
	c := NewClassifier()

	cmd := c.Classify("Create invoice for Acme Corp ₹5,000.50")
	require.True(t, cmd.Complete)
	assert.Equal(t, "Acme Corp", cmd.Fields.ClientName)
	assert.Equal(t, int64(500050), cmd.Fields.AmountMinor)
	assert.Equal(t, "Services rendered", cmd.Fields.Description)
}

func TestClassify_CreateInvoiceMissingAmount(t *testing.T) {
	c := NewClassifier()

	cmd := c.Classify("Create invoice for Acme Corp")
	assert.Equal(t, IntentCreateInvoice, cmd.Intent)
	assert.False(t, cmd.Complete)
}

func TestClassify_AddExpenseFields(t *testing.T) {
	c := NewClassifier()

	cmd := c.Classify("Add expense ₹150 for office supplies category office")
	require.Equal(t, IntentAddExpense, cmd.Intent)
	require.True(t, cmd.Complete)
	assert.Equal(t, int64(15000), cmd.Fields.AmountMinor)
	assert.Equal(t, "office supplies", cmd.Fields.Description)
	assert.Equal(t, "office", cmd.Fields.Category)
}

func TestClassify_AddExpenseAmountOnly(t *testing.T) {
	c := NewClassifier()

	cmd := c.Classify("Add expense ₹200")
	require.True(t, cmd.Complete)
	assert.Equal(t, int64(20000), cmd.Fields.AmountMinor)
	assert.Equal(t, "General expense", cmd.Fields.Description)
	assert.Empty(t, cmd.Fields.Category)
}

func TestClassify_AddExpenseMissingAmount(t *testing.T) {
	c := NewClassifier()

	cmd := c.Classify("Add expense for lunch")
	assert.Equal(t, IntentAddExpense, cmd.Intent)
	assert.False(t, cmd.Complete)
}

func TestClassify_UpdateInvoiceFields(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		input  string
		id     int64
		status invoices.Status
	}{
		{"Mark invoice #5 as paid", 5, invoices.StatusPaid},
		{"Update invoice 12 to pending", 12, invoices.StatusPending},
		{"Mark invoice #3 overdue", 3, invoices.StatusOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := c.Classify(tt.input)
			require.Equal(t, IntentUpdateInvoice, cmd.Intent)
			require.True(t, cmd.Complete)
			assert.Equal(t, tt.id, cmd.Fields.InvoiceID)
			assert.Equal(t, tt.status, cmd.Fields.Status)
		})
	}
}

func TestClassify_UpdateInvoiceMissingStatus(t *testing.T) {
	c := NewClassifier()

	cmd := c.Classify("Update invoice #5")
	assert.Equal(t, IntentUpdateInvoice, cmd.Intent)
	assert.False(t, cmd.Complete)
}

func TestClassify_ClientListVariant(t *testing.T) {
	c := NewClassifier()

	assert.True(t, c.Classify("List clients").Fields.ListAll)
	assert.True(t, c.Classify("Show all clients").Fields.ListAll)
	assert.False(t, c.Classify("Show clients").Fields.ListAll)
}
