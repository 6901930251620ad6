package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/avelar-dev/finassist/internal/assistant"
	"github.com/avelar-dev/finassist/internal/domain/clients"
	"github.com/avelar-dev/finassist/internal/domain/dashboard"
	"github.com/avelar-dev/finassist/internal/domain/expenses"
	"github.com/avelar-dev/finassist/internal/domain/export"
	"github.com/avelar-dev/finassist/internal/domain/invoices"
	"github.com/avelar-dev/finassist/internal/seed"
	"github.com/avelar-dev/finassist/pkg/config"
	"github.com/avelar-dev/finassist/pkg/cron"
	"github.com/avelar-dev/finassist/pkg/db"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	DB     *db.DB
	Logger *slog.Logger

	// Repositories
	ClientRepo    clients.ClientRepository
	InvoiceRepo   invoices.InvoiceRepository
	ExpenseRepo   expenses.ExpenseRepository
	DashboardRepo *dashboard.Repository

	// Services
	ClientService    *clients.Service
	InvoiceService   *invoices.Service
	ExpenseService   *expenses.Service
	DashboardService *dashboard.Service
	ExportService    *export.Service
	Seeder           *seed.Seeder
	Scheduler        *cron.Scheduler

	// Assistant
	Executor *assistant.Executor
	Session  *assistant.Session
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initDatabase(); err != nil {
		return nil, fmt.Errorf("failed to init database: %w", err)
	}

	deps.initRepositories()
	deps.initServices()
	deps.initAssistant()

	logger.Info("all dependencies initialized successfully")

	return deps, nil
}

// initDatabase initializes the database connection and runs migrations
func (d *Dependencies) initDatabase() error {
	database, err := db.New(db.Config{
		DSN:             d.Config.Database.DSN(),
		MaxConns:        10,
		MinConns:        2,
		MaxConnLifetime: 5 * time.Minute,
		MaxConnIdleTime: 10 * time.Minute,
	}, d.Logger)
	if err != nil {
		return err
	}

	d.DB = database

	if err := d.DB.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	d.Logger.Info("database connected and migrations completed successfully")
	return nil
}

func (d *Dependencies) initRepositories() {
	d.ClientRepo = clients.NewPostgresClientRepository(d.DB.Pool)
	d.InvoiceRepo = invoices.NewPostgresInvoiceRepository(d.DB.Pool)
	d.ExpenseRepo = expenses.NewPostgresExpenseRepository(d.DB.Pool)
	d.DashboardRepo = dashboard.NewRepository(d.DB.Pool)

	d.Logger.Info("repositories initialized")
}

func (d *Dependencies) initServices() {
	d.ClientService = clients.NewService(d.ClientRepo)
	d.InvoiceService = invoices.NewService(d.InvoiceRepo)
	d.ExpenseService = expenses.NewService(d.ExpenseRepo)
	d.DashboardService = dashboard.NewService(d.DashboardRepo)
	d.ExportService = export.NewService(d.InvoiceService, d.ExpenseService)
	d.Seeder = seed.New(d.ClientRepo, d.InvoiceRepo, d.ExpenseRepo, d.Logger)
	d.Scheduler = cron.NewScheduler(d.InvoiceService, d.Config.Sweep.Schedule, d.Logger)

	d.Logger.Info("services initialized")
}

func (d *Dependencies) initAssistant() {
	d.Executor = assistant.NewExecutor(
		d.ClientService,
		d.InvoiceService,
		d.ExpenseService,
		d.DashboardService,
		d.Logger,
	)
	d.Session = assistant.NewSession(d.Executor, d.Config.Assistant.MaxHistory, d.Logger)
}

// Close releases held resources.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
