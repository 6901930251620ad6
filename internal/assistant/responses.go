package assistant

import (
	"fmt"
	"strings"

	"github.com/avelar-dev/finassist/internal/domain/clients"
	"github.com/avelar-dev/finassist/internal/domain/dashboard"
	"github.com/avelar-dev/finassist/internal/domain/expenses"
	"github.com/avelar-dev/finassist/internal/domain/invoices"
	"github.com/avelar-dev/finassist/pkg/money"
)

// Canned reply texts. Each mutating intent has a success template and an
// incomplete-fields example; read intents render reports from live data.
const (
	WelcomeText = "👋 Hello! I'm your AI Financial Assistant.\n\n✨ I can automate tasks for you!\n\n📝 Try:\n• \"Show my revenue\"\n• \"Show invoices\"\n• \"Add client John Doe email john@example.com\"\n• \"Create invoice for Acme Corp ₹5000\"\n\nType \"help\" to see all commands!"

	ProcessingText = "⏳ Processing..."

	apologyText = "❌ Sorry, something went wrong. Please try again or check the format of your command."

	clientIncompleteText = "❌ Please provide client details in this format:\n\"Add client John Doe email john@example.com phone 555-1234\""

	invoiceIncompleteText = "❌ Please provide invoice details:\n\"Create invoice for Acme Corp ₹5000 for consulting services\""

	expenseIncompleteText = "❌ Please provide expense details:\n\"Add expense ₹200 for office supplies category office\""

	updateIncompleteText = "❌ Please specify invoice ID and status:\n\"Mark invoice #5 as paid\""

	helpText = "🤖 I can automate these tasks:\n\n📝 CREATE:\n• \"Add client John Doe email john@example.com phone 555-1234\"\n• \"Create invoice for Acme Corp ₹5000 for consulting\"\n• \"Add expense ₹200 for office supplies\"\n\n📊 VIEW:\n• \"Show my revenue\"\n• \"Show invoices\"\n• \"Show clients\"\n• \"Show expenses\"\n• \"Show profit\"\n\n✏️ UPDATE:\n• \"Mark invoice #5 as paid\"\n\nJust type naturally and I'll handle it!"

	greetingText = "👋 Hello! I'm your AI Financial Assistant. I can automate tasks for you!\n\nTry:\n• \"Add client Sarah Smith email sarah@example.com\"\n• \"Create invoice for Tech Corp ₹3000\"\n• \"Show my revenue\"\n\nType \"help\" to see all commands!"

	thanksText = "😊 You're welcome! I'm here anytime you need help managing your finances. Just ask!"

	fallbackText = "🤔 I'm not sure what you mean. Try:\n\n• \"Add client [name] email [email]\"\n• \"Create invoice for [client] ₹[amount]\"\n• \"Add expense ₹[amount] for [description]\"\n• \"Show my revenue\"\n\nType \"help\" for all commands!"
)

const displayDate = "02 Jan 2006"

func clientAddedText(c clients.Client) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Client added successfully!\n\n👤 %s\n📧 %s", c.Name, c.Email)
	if c.Phone != "" {
		fmt.Fprintf(&b, "\n📱 %s", c.Phone)
	}
	b.WriteString("\n\nYou can view them in the Clients tab.")
	return b.String()
}

func invoiceCreatedText(inv invoices.Invoice) string {
	return fmt.Sprintf(
		"✅ Invoice created successfully!\n\n📄 Client: %s\n💰 Amount: %s\n📝 Description: %s\n📅 Due: %s\n\nStatus: Pending\n\nView it in the Invoices tab.",
		inv.ClientName, money.FormatMinor(inv.AmountMinor), inv.Description.Text(), inv.DueDate.Format(displayDate),
	)
}

func expenseAddedText(exp expenses.Expense) string {
	return fmt.Sprintf(
		"✅ Expense added successfully!\n\n💳 Amount: %s\n📝 Description: %s\n🏷️ Category: %s\n📅 Date: %s\n\nView it in the Expenses tab.",
		money.FormatMinor(exp.AmountMinor), exp.Description, exp.Category, exp.DateCreated.Format(displayDate),
	)
}

func invoiceUpdatedText(id int64, status invoices.Status) string {
	return fmt.Sprintf("✅ Invoice #%d marked as %s!\n\nView updated status in the Invoices tab.", id, status)
}

func invoiceNotFoundText(id int64) string {
	return fmt.Sprintf("❌ Invoice #%d was not found. Use \"show invoices\" to see what exists.", id)
}

func revenueReportText(totals invoices.StatusTotals) string {
	return fmt.Sprintf(
		"💰 Revenue Report:\n\n✅ Paid: %s (%d invoices)\n⏳ Pending: %s (%d invoices)\n📊 Total: %s\n\nKeep up the great work!",
		money.FormatMinor(totals.PaidMinor), totals.PaidCount,
		money.FormatMinor(totals.PendingMinor), totals.PendingCount,
		money.FormatMinor(totals.PaidMinor+totals.PendingMinor),
	)
}

func invoiceSummaryText(totals invoices.StatusTotals) string {
	return fmt.Sprintf(
		"📄 Invoice Summary:\n\n✅ Paid: %d (%s)\n⏳ Pending: %d (%s)\n⚠️ Overdue: %d (%s)\n\n📊 Total: %d invoices\n💰 Total Value: %s",
		totals.PaidCount, money.FormatMinor(totals.PaidMinor),
		totals.PendingCount, money.FormatMinor(totals.PendingMinor),
		totals.OverdueCount, money.FormatMinor(totals.OverdueMinor),
		totals.TotalCount(), money.FormatMinor(totals.TotalMinor()),
	)
}

// clientListText shows the first five clients and elides the rest.
func clientListText(all []*clients.Client) string {
	shown := all
	if len(shown) > 5 {
		shown = shown[:5]
	}
	lines := make([]string, 0, len(shown))
	for _, c := range shown {
		lines = append(lines, fmt.Sprintf("• %s (%s)", c.Name, c.Email))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👥 Clients (%d total):\n\n%s\n", len(all), strings.Join(lines, "\n"))
	if len(all) > 5 {
		fmt.Fprintf(&b, "\n...and %d more\n", len(all)-5)
	}
	b.WriteString("\nView all in the Clients tab.")
	return b.String()
}

func clientOverviewText(clientCount, invoiceCount int64) string {
	avg := 0.0
	if clientCount > 0 {
		avg = float64(invoiceCount) / float64(clientCount)
	}
	return fmt.Sprintf(
		"👥 Client Overview:\n\n📊 Total Clients: %d\n📄 Total Invoices: %d\n📈 Avg Invoices/Client: %.1f\n\nYour client base is growing!",
		clientCount, invoiceCount, avg,
	)
}

// expenseReportText lists the top five categories with their share of the
// total spend.
func expenseReportText(br expenses.Breakdown) string {
	top := br.Categories
	if len(top) > 5 {
		top = top[:5]
	}
	lines := make([]string, 0, len(top))
	for _, cat := range top {
		lines = append(lines, fmt.Sprintf("• %s: %s (%.1f%%)",
			cat.Category, money.FormatMinor(cat.TotalMinor), money.PercentMinor(cat.TotalMinor, br.TotalMinor)))
	}
	return fmt.Sprintf(
		"💸 Expense Report:\n\n💰 Total: %s\n📊 Transactions: %d\n\nTop Categories:\n%s\n\nView details in the Expenses tab.",
		money.FormatMinor(br.TotalMinor), br.Count, strings.Join(lines, "\n"),
	)
}

func profitReportText(stats dashboard.Stats) string {
	closing := "Keep optimizing your expenses!"
	if stats.Margin() > 70 {
		closing = "Excellent! Your profit margin is very healthy!"
	}
	return fmt.Sprintf(
		"📊 Profit Analysis:\n\n💰 Revenue: %s\n💸 Expenses: %s\n✨ Net Profit: %s\n📈 Profit Margin: %.1f%%\n\n%s",
		money.FormatMinor(stats.RevenueMinor), money.FormatMinor(stats.ExpensesMinor),
		money.FormatMinor(stats.ProfitMinor), stats.Margin(), closing,
	)
}
