// Package cron provides scheduled background jobs using robfig/cron.
package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/avelar-dev/finassist/internal/domain/invoices"
)

// Scheduler manages background scheduled jobs.
type Scheduler struct {
	cron     *cron.Cron
	invoices *invoices.Service
	schedule string
	logger   *slog.Logger
}

// NewScheduler creates a job scheduler. schedule is a standard 5-field
// cron expression for the overdue sweep.
func NewScheduler(invoiceService *invoices.Service, schedule string, logger *slog.Logger) *Scheduler {
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:     c,
		invoices: invoiceService,
		schedule: schedule,
		logger:   logger,
	}
}

// Start begins scheduled jobs.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.sweepOverdueInvoices)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.String("sweep_schedule", s.schedule),
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

// RunNow manually triggers the overdue sweep.
func (s *Scheduler) RunNow() {
	go s.sweepOverdueInvoices()
}

// sweepOverdueInvoices flips pending invoices past their due date to
// overdue.
func (s *Scheduler) sweepOverdueInvoices() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	s.logger.Info("starting overdue invoice sweep")

	marked, err := s.invoices.SweepOverdue(ctx)
	if err != nil {
		s.logger.Error("overdue sweep failed", slog.Any("error", err))
		return
	}

	s.logger.Info("overdue invoice sweep completed", slog.Int64("invoices_marked", marked))
}
