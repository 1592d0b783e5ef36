package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/online_banking_backend/internal/core/domain"
)

// SettlementRunner is the operation the scheduler drives once per day.
type SettlementRunner interface {
	RunDailySettlement(ctx context.Context, today time.Time) (*domain.SettlementReport, error)
}

// DailySettlement triggers a settlement run at every midnight of its location.
type DailySettlement struct {
	runner       SettlementRunner
	loc          *time.Location
	logger       *slog.Logger
	runOnStartup bool
	nowFn        func() time.Time
	afterFn      func(time.Duration) <-chan time.Time
}

// Option configures a DailySettlement.
type Option func(*DailySettlement)

// WithRunOnStartup runs once for the current day before waiting for midnight.
func WithRunOnStartup(enabled bool) Option {
	return func(s *DailySettlement) {
		s.runOnStartup = enabled
	}
}

// WithClock replaces the wall clock and timer, for tests.
func WithClock(now func() time.Time, after func(time.Duration) <-chan time.Time) Option {
	return func(s *DailySettlement) {
		if now != nil {
			s.nowFn = now
		}
		if after != nil {
			s.afterFn = after
		}
	}
}

// NewDailySettlement constructs a scheduler. A nil location means UTC.
func NewDailySettlement(runner SettlementRunner, loc *time.Location, logger *slog.Logger, opts ...Option) *DailySettlement {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &DailySettlement{
		runner:  runner,
		loc:     loc,
		logger:  logger.With(slog.String("component", "settlement_scheduler")),
		nowFn:   time.Now,
		afterFn: time.After,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextRun returns the first midnight in loc strictly after now.
func NextRun(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}

// Run blocks until ctx is cancelled. Run failures are logged and never stop the loop.
func (s *DailySettlement) Run(ctx context.Context) error {
	if s.runOnStartup {
		s.runOnce(ctx, s.nowFn().In(s.loc))
	}

	for {
		now := s.nowFn()
		next := NextRun(now, s.loc)
		s.logger.Info("Next daily settlement scheduled", slog.Time("at", next))

		select {
		case <-ctx.Done():
			return nil
		case <-s.afterFn(next.Sub(now)):
			// The timer may fire a hair early; the run date is the midnight it was armed for.
			s.runOnce(ctx, next)
		}
	}
}

func (s *DailySettlement) runOnce(ctx context.Context, today time.Time) {
	report, err := s.runner.RunDailySettlement(ctx, today)
	if err != nil {
		s.logger.Error("Daily settlement run failed",
			slog.String("date", today.Format("2006-01-02")),
			slog.String("error", err.Error()))
		return
	}
	s.logger.Info("Daily settlement run completed",
		slog.String("run_id", report.RunID),
		slog.Int("processed", report.Processed),
		slog.Int("failed", report.Failed))
}
