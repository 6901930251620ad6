// Command finassist runs the finance assistant: an interactive chat over
// the invoice, client, and expense stores, plus seed, export, and sweep
// maintenance subcommands.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/avelar-dev/finassist/pkg/config"
	"github.com/avelar-dev/finassist/pkg/money"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("fatal error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	deps, err := InitDependencies(cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := "chat"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "chat":
		return runChat(ctx, deps)
	case "seed":
		return deps.Seeder.Run(ctx, cfg.Seed.ExtraRandom)
	case "export":
		return runExport(ctx, deps, os.Args[2:])
	case "stats":
		return runStats(ctx, deps)
	case "sweep":
		marked, err := deps.InvoiceService.SweepOverdue(ctx)
		if err != nil {
			return fmt.Errorf("sweeping overdue invoices: %w", err)
		}
		logger.Info("overdue sweep completed", slog.Int64("invoices_marked", marked))
		return nil
	default:
		return fmt.Errorf("unknown command %q (expected chat, seed, export, stats, or sweep)", cmd)
	}
}

// runChat starts the interactive session on stdin/stdout. The scheduled
// overdue sweep runs in the background while the chat is open.
func runChat(ctx context.Context, deps *Dependencies) error {
	if deps.Config.Seed.Enabled {
		if err := deps.Seeder.Run(ctx, deps.Config.Seed.ExtraRandom); err != nil {
			return fmt.Errorf("seeding sample data: %w", err)
		}
	}
	if deps.Config.Sweep.Enabled {
		if err := deps.Scheduler.Start(); err != nil {
			return fmt.Errorf("starting scheduler: %w", err)
		}
		defer deps.Scheduler.Stop()
	}

	for _, m := range deps.Session.History() {
		printMessage(m.Text)
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		fmt.Print("> ")
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			reply, accepted := deps.Session.Send(ctx, line)
			if !accepted {
				continue
			}
			printMessage(reply.Text)
		}
	}
}

func runExport(ctx context.Context, deps *Dependencies, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: finassist export <invoices|expenses> [file]")
	}

	out := os.Stdout
	if len(args) > 1 {
		f, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch args[0] {
	case "invoices":
		return deps.ExportService.WriteInvoicesCSV(ctx, out)
	case "expenses":
		return deps.ExportService.WriteExpensesCSV(ctx, out)
	default:
		return fmt.Errorf("unknown export target %q (expected invoices or expenses)", args[0])
	}
}

// runStats prints the dashboard figures and the recent monthly revenue.
func runStats(ctx context.Context, deps *Dependencies) error {
	stats, err := deps.DashboardService.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("loading dashboard stats: %w", err)
	}

	fmt.Printf("Revenue:   %s\n", money.FormatMinor(stats.RevenueMinor))
	fmt.Printf("Expenses:  %s\n", money.FormatMinor(stats.ExpensesMinor))
	fmt.Printf("Profit:    %s (%.1f%% margin)\n", money.FormatMinor(stats.ProfitMinor), stats.Margin())
	fmt.Printf("Invoices:  %d\n", stats.InvoiceCount)

	monthly, err := deps.DashboardService.GetMonthlyRevenue(ctx, 6)
	if err != nil {
		return fmt.Errorf("loading monthly revenue: %w", err)
	}
	if len(monthly) > 0 {
		fmt.Println("\nMonthly revenue:")
		for _, m := range monthly {
			fmt.Printf("  %s  %s\n", m.Month, money.FormatMinor(m.RevenueMinor))
		}
	}
	return nil
}

func printMessage(text string) {
	fmt.Println(text)
	fmt.Println()
}
