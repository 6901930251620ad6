package assistant

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/avelar-dev/finassist/internal/domain/invoices"
	"github.com/avelar-dev/finassist/pkg/money"
)

// Field extraction patterns. Names are matched against the utterance as
// typed, with (?i), so extracted substrings keep the user's casing;
// keyword detection happens on the lowercased text.
var (
	clientNameRe    = regexp.MustCompile(`(?i)(?:add|create|new)\s+client\s+([a-z\s]+?)(?:\s+email|\s+with)`)
	emailRe         = regexp.MustCompile(`(?i)email\s+(\S+)`)
	phoneRe         = regexp.MustCompile(`(?i)phone\s+(\S+)`)
	invoiceClientRe = regexp.MustCompile(`(?i)(?:for|client)\s+([a-z\s]+?)(?:\s+₹|\s+amount)`)
	amountRe        = regexp.MustCompile(`₹?(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	invoiceDescRe   = regexp.MustCompile(`(?i)^\s*(?:for|description)\s+(.+)$`)
	expenseDescRe   = regexp.MustCompile(`(?i)(?:for|description)\s+([a-z\s]+?)(?:\s+category|$)`)
	categoryRe      = regexp.MustCompile(`(?i)category\s+([a-z\s]+)`)
	invoiceIDRe     = regexp.MustCompile(`(?i)invoice\s+#?(\d+)`)
)

// rule pairs an intent with the keywords that trigger it and an optional
// field extractor. Rules are evaluated in a fixed priority order and the
// first keyword hit wins; keyword sets intentionally overlap (a bare
// "invoice" reaches rule 6 only because rules 2 and 4 are checked first).
type rule struct {
	intent   Intent
	keywords []string
	extract  func(raw, lowered string, f *Fields) bool
}

// Classifier maps a raw utterance to exactly one Command.
type Classifier struct {
	rules   []rule
	scanner *keywordScanner
}

// NewClassifier builds the rule table and its keyword scanner.
func NewClassifier() *Classifier {
	rules := []rule{
		{IntentAddClient, []string{"add client", "create client", "new client"}, extractClient},
		{IntentCreateInvoice, []string{"create invoice", "add invoice", "new invoice"}, extractInvoice},
		{IntentAddExpense, []string{"add expense", "create expense", "new expense"}, extractExpense},
		{IntentUpdateInvoice, []string{"mark invoice", "update invoice"}, extractStatusUpdate},
		{IntentRevenueQuery, []string{"revenue", "income", "earnings"}, nil},
		{IntentInvoiceQuery, []string{"invoice", "bill"}, nil},
		{IntentClientQuery, []string{"client", "customer"}, extractClientQuery},
		{IntentExpenseQuery, []string{"expense", "spending", "cost"}, nil},
		{IntentProfitQuery, []string{"profit", "margin"}, nil},
		{IntentHelp, []string{"help", "command", "what can you do"}, nil},
		{IntentGreeting, []string{"hello", "hi", "hey"}, nil},
		{IntentThanks, []string{"thank", "thanks"}, nil},
	}

	var keywords []string
	for _, r := range rules {
		keywords = append(keywords, r.keywords...)
	}

	return &Classifier{
		rules:   rules,
		scanner: newKeywordScanner(keywords),
	}
}

// Classify resolves an utterance to a Command. Unmatched input yields the
// fallback intent, never an error.
func (c *Classifier) Classify(raw string) Command {
	raw = strings.TrimSpace(raw)
	lowered := strings.ToLower(raw)
	hits := c.scanner.scan(lowered)

	for _, r := range c.rules {
		if !anyHit(hits, r.keywords) {
			continue
		}
		cmd := Command{Intent: r.intent, Complete: true}
		if r.extract != nil {
			cmd.Complete = r.extract(raw, lowered, &cmd.Fields)
		}
		return cmd
	}

	return Command{Intent: IntentFallback, Complete: true}
}

func anyHit(hits map[string]bool, keywords []string) bool {
	for _, k := range keywords {
		if hits[k] {
			return true
		}
	}
	return false
}

// extractClient pulls name, email, and optional phone. The name is the
// text between the client keyword and the email/with marker; no marker
// means the name is missing, not a crash.
func extractClient(raw, lowered string, f *Fields) bool {
	nameMatch := clientNameRe.FindStringSubmatch(raw)
	emailMatch := emailRe.FindStringSubmatch(raw)
	if nameMatch == nil || emailMatch == nil {
		return false
	}

	f.Name = strings.TrimSpace(nameMatch[1])
	f.Email = strings.TrimSpace(emailMatch[1])
	if phoneMatch := phoneRe.FindStringSubmatch(raw); phoneMatch != nil {
		f.Phone = strings.TrimSpace(phoneMatch[1])
	}
	return f.Name != "" && f.Email != ""
}

// extractInvoice pulls the client name, the first currency-like token,
// and an optional trailing description.
func extractInvoice(raw, lowered string, f *Fields) bool {
	clientMatch := invoiceClientRe.FindStringSubmatch(raw)
	amountLoc := amountRe.FindStringSubmatchIndex(raw)
	if clientMatch == nil || amountLoc == nil {
		return false
	}

	amount, err := money.NewFromString(raw[amountLoc[2]:amountLoc[3]], money.INR)
	if err != nil {
		return false
	}

	f.ClientName = strings.TrimSpace(clientMatch[1])
	f.AmountMinor = amount.Amount()

	// Description is whatever follows the amount after a for/description
	// marker, e.g. "... ₹3000 for web development".
	f.Description = "Services rendered"
	if descMatch := invoiceDescRe.FindStringSubmatch(raw[amountLoc[1]:]); descMatch != nil {
		if desc := strings.TrimSpace(descMatch[1]); desc != "" {
			f.Description = desc
		}
	}
	return f.ClientName != ""
}

// extractExpense pulls the amount plus optional description and category.
// Only the amount is required.
func extractExpense(raw, lowered string, f *Fields) bool {
	amountMatch := amountRe.FindStringSubmatch(raw)
	if amountMatch == nil {
		return false
	}
	amount, err := money.NewFromString(amountMatch[1], money.INR)
	if err != nil {
		return false
	}
	f.AmountMinor = amount.Amount()

	f.Description = "General expense"
	if descMatch := expenseDescRe.FindStringSubmatch(raw); descMatch != nil {
		if desc := strings.TrimSpace(descMatch[1]); desc != "" {
			f.Description = desc
		}
	}
	if categoryMatch := categoryRe.FindStringSubmatch(raw); categoryMatch != nil {
		f.Category = strings.TrimSpace(categoryMatch[1])
	}
	return true
}

// extractStatusUpdate pulls the invoice identifier and the explicit
// status keyword, checked paid then pending then overdue.
func extractStatusUpdate(raw, lowered string, f *Fields) bool {
	idMatch := invoiceIDRe.FindStringSubmatch(raw)
	if idMatch == nil {
		return false
	}

	switch {
	case strings.Contains(lowered, "paid"):
		f.Status = invoices.StatusPaid
	case strings.Contains(lowered, "pending"):
		f.Status = invoices.StatusPending
	case strings.Contains(lowered, "overdue"):
		f.Status = invoices.StatusOverdue
	default:
		return false
	}

	id, err := strconv.ParseInt(idMatch[1], 10, 64)
	if err != nil {
		return false
	}
	f.InvoiceID = id
	return true
}

// extractClientQuery only distinguishes the list sub-variant; it always
// succeeds.
func extractClientQuery(raw, lowered string, f *Fields) bool {
	f.ListAll = strings.Contains(lowered, "list") || strings.Contains(lowered, "show all")
	return true
}
