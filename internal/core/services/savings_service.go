package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/online_banking_backend/internal/apperrors"
	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/online_banking_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/online_banking_backend/internal/core/ports/services"
	"github.com/SscSPs/online_banking_backend/internal/dto"
	"github.com/SscSPs/online_banking_backend/internal/utils/accounting"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const defaultSettlementWorkers = 4

// SettlementObserver receives run telemetry. Implementations must be safe for
// concurrent use.
type SettlementObserver interface {
	ObserveAccountOutcome(outcome domain.AccrualOutcome)
	ObserveRun(report domain.SettlementReport, duration time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveAccountOutcome(domain.AccrualOutcome) {}
func (noopObserver) ObserveRun(domain.SettlementReport, time.Duration) {}

// savingsService implements the SavingsSvcFacade interface
type savingsService struct {
	BaseService
	savingsRepo portsrepo.SavingsAccountRepositoryFacade
	rateRepo    portsrepo.InterestRateReader
	runRepo     portsrepo.SettlementRunRepository
	workers     int
	observer    SettlementObserver
	now         func() time.Time
}

// SavingsOption is a functional option for configuring the savings service
type SavingsOption func(*savingsService)

// WithSettlementWorkers bounds how many accounts a run processes concurrently.
func WithSettlementWorkers(n int) SavingsOption {
	return func(s *savingsService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithSettlementObserver attaches run telemetry.
func WithSettlementObserver(o SettlementObserver) SavingsOption {
	return func(s *savingsService) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithSavingsClock overrides the wall clock used for audit and report timestamps.
func WithSavingsClock(now func() time.Time) SavingsOption {
	return func(s *savingsService) {
		s.now = now
	}
}

// NewSavingsService creates a new savings service with the provided options
func NewSavingsService(
	savingsRepo portsrepo.SavingsAccountRepositoryFacade,
	rateRepo portsrepo.InterestRateReader,
	runRepo portsrepo.SettlementRunRepository,
	options ...SavingsOption,
) portssvc.SavingsSvcFacade {
	svc := &savingsService{
		savingsRepo: savingsRepo,
		rateRepo:    rateRepo,
		runRepo:     runRepo,
		workers:     defaultSettlementWorkers,
		observer:    noopObserver{},
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SavingsSvcFacade = (*savingsService)(nil)

func (s *savingsService) GetSavingsAccount(ctx context.Context, savingsAccountID string) (*domain.SavingsAccount, error) {
	account, err := s.savingsRepo.FindSavingsAccountByID(ctx, savingsAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrSavingsAccountNotFound
		}
		s.LogError(ctx, err, "Failed to get savings account", slog.String("savings_account_id", savingsAccountID))
		return nil, err
	}
	return account, nil
}

func (s *savingsService) ListSavingsAccounts(ctx context.Context, params dto.ListSavingsAccountsParams) (*dto.ListSavingsAccountsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	var status *domain.SavingsAccountStatus
	if params.Status != "" {
		st := domain.SavingsAccountStatus(params.Status)
		status = &st
	}

	accounts, nextToken, err := s.savingsRepo.ListSavingsAccounts(ctx, status, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list savings accounts")
		return nil, err
	}

	return &dto.ListSavingsAccountsResponse{
		Accounts:  dto.ToListSavingsAccountResponse(accounts),
		NextToken: nextToken,
	}, nil
}

func (s *savingsService) IsAccountAtTermEnd(ctx context.Context, savingsAccountID string, today time.Time) (bool, error) {
	account, err := s.GetSavingsAccount(ctx, savingsAccountID)
	if err != nil {
		return false, err
	}
	policy, err := s.findPolicy(ctx, account.InterestRatePolicyID)
	if err != nil {
		return false, err
	}
	return accounting.IsEndOfTerm(*account, *policy, today), nil
}

func (s *savingsService) ApplyDailyAccrual(ctx context.Context, savingsAccountID string, today time.Time) (*domain.SavingsAccount, error) {
	day := domain.CivilDate(today)

	account, err := s.GetSavingsAccount(ctx, savingsAccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive() {
		return nil, apperrors.ErrAlreadySettled
	}
	policy, err := s.findPolicy(ctx, account.InterestRatePolicyID)
	if err != nil {
		return nil, err
	}
	if accounting.IsEndOfTerm(*account, *policy, today) {
		return nil, apperrors.ErrTermEnded
	}
	if account.AccruedOn(day) {
		return account, nil
	}

	if err := s.accrueLatest(ctx, *account, *policy, day); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyAccrued) {
			return s.GetSavingsAccount(ctx, savingsAccountID)
		}
		return nil, err
	}
	return s.GetSavingsAccount(ctx, savingsAccountID)
}

func (s *savingsService) ListSettlementRuns(ctx context.Context, limit int, offset int) ([]domain.SettlementReport, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	runs, err := s.runRepo.ListSettlementRuns(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list settlement runs")
		return nil, err
	}
	if runs == nil {
		return []domain.SettlementReport{}, nil
	}
	return runs, nil
}

func (s *savingsService) RunDailySettlement(ctx context.Context, today time.Time) (*domain.SettlementReport, error) {
	day := domain.CivilDate(today)
	started := s.now()
	report := &domain.SettlementReport{
		RunID:     uuid.NewString(),
		RunDate:   day,
		Failures:  []domain.SettlementFailure{},
		StartedAt: started,
	}
	logger := s.GetLogger(ctx).With(
		slog.String("run_id", report.RunID),
		slog.String("run_date", day.Format(dto.DateLayout)))

	accounts, err := s.savingsRepo.ListActiveSavingsAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list active savings accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list active savings accounts: %w", err)
	}
	logger.Info("Daily settlement started", slog.Int("accounts", len(accounts)))

	policies := &policyCache{reader: s.rateRepo, entries: make(map[string]*domain.InterestRatePolicy)}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, account := range accounts {
		account := account
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			outcome, procErr := s.processAccount(ctx, policies, account, today)
			if procErr != nil {
				logger.Error("Savings account settlement failed",
					slog.String("savings_account_id", account.SavingsAccountID),
					slog.String("error", procErr.Error()))
			}

			mu.Lock()
			report.Record(account.SavingsAccountID, outcome, procErr)
			mu.Unlock()
			s.observer.ObserveAccountOutcome(outcome)
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].SavingsAccountID < report.Failures[j].SavingsAccountID
	})
	report.FinishedAt = s.now()

	// Persist the report even when ctx is cancelled.
	if err := s.runRepo.SaveSettlementRun(context.WithoutCancel(ctx), *report); err != nil {
		logger.Error("Failed to save settlement run report", slog.String("error", err.Error()))
	}
	s.observer.ObserveRun(*report, report.FinishedAt.Sub(started))

	logger.Info("Daily settlement finished",
		slog.Int("processed", report.Processed),
		slog.Int("settled", report.Settled),
		slog.Int("accrued", report.Accrued),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed))

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("daily settlement interrupted after %d of %d accounts: %w", report.Processed, len(accounts), err)
	}
	return report, nil
}

// processAccount settles a matured account or adds one day of interest to it.
// today keeps its zone so term-end is judged on the settlement calendar.
func (s *savingsService) processAccount(ctx context.Context, policies *policyCache, account domain.SavingsAccount, today time.Time) (domain.AccrualOutcome, error) {
	day := domain.CivilDate(today)

	policy, err := policies.get(ctx, account.InterestRatePolicyID)
	if err != nil {
		return domain.OutcomeFailed, fmt.Errorf("%w: %w", apperrors.ErrSettlementFailure, err)
	}

	if accounting.IsEndOfTerm(account, *policy, today) {
		if err := s.settle(ctx, account, day); err != nil {
			if errors.Is(err, apperrors.ErrAlreadySettled) {
				return domain.OutcomeSkipped, nil
			}
			return domain.OutcomeFailed, fmt.Errorf("%w: %w", apperrors.ErrSettlementFailure, err)
		}
		return domain.OutcomeSettled, nil
	}

	if account.AccruedOn(day) {
		return domain.OutcomeSkipped, nil
	}
	if err := s.accrueLatest(ctx, account, *policy, day); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyAccrued) || errors.Is(err, apperrors.ErrAlreadySettled) {
			return domain.OutcomeSkipped, nil
		}
		return domain.OutcomeFailed, fmt.Errorf("%w: %w", apperrors.ErrSettlementFailure, err)
	}
	return domain.OutcomeAccrued, nil
}

// accrueLatest accrues day, re-reading the account once when another writer
// moved its balance after it was listed.
func (s *savingsService) accrueLatest(ctx context.Context, account domain.SavingsAccount, policy domain.InterestRatePolicy, day time.Time) error {
	err := s.accrue(ctx, account, policy, day)
	if !errors.Is(err, apperrors.ErrBalanceChanged) {
		return err
	}

	fresh, err := s.savingsRepo.FindSavingsAccountByID(ctx, account.SavingsAccountID)
	if err != nil {
		return fmt.Errorf("failed to re-read savings account %s: %w", account.SavingsAccountID, err)
	}
	if !fresh.IsActive() {
		return apperrors.ErrAlreadySettled
	}
	if fresh.AccruedOn(day) {
		return apperrors.ErrAlreadyAccrued
	}
	return s.accrue(ctx, *fresh, policy, day)
}

func (s *savingsService) accrue(ctx context.Context, account domain.SavingsAccount, policy domain.InterestRatePolicy, day time.Time) error {
	increment, err := accounting.DailyIncrement(account, policy, day)
	if err != nil {
		return err
	}
	newBalance := accounting.ApplyIncrement(account.CurrentBalance, increment)
	if newBalance.LessThan(account.CurrentBalance) {
		return fmt.Errorf("%w: balance of %s would decrease from %s to %s",
			apperrors.ErrAccrualComputation, account.SavingsAccountID, account.CurrentBalance, newBalance)
	}

	accrual := domain.DailyAccrual{
		SavingsAccountID: account.SavingsAccountID,
		PreviousBalance:  account.CurrentBalance,
		Increment:        increment,
		NewBalance:       newBalance,
		AccrualDate:      day,
		TransactionID:    uuid.NewString(),
	}
	if err := s.savingsRepo.RecordDailyAccrual(ctx, accrual); err != nil {
		return err
	}

	s.LogDebug(ctx, "Daily interest accrued",
		slog.String("savings_account_id", account.SavingsAccountID),
		slog.String("increment", increment.String()),
		slog.String("new_balance", newBalance.String()))
	return nil
}

func (s *savingsService) settle(ctx context.Context, account domain.SavingsAccount, day time.Time) error {
	settlement := domain.Settlement{
		SavingsAccountID: account.SavingsAccountID,
		PaymentAccountID: account.LinkedPaymentAccountID,
		Amount:           account.CurrentBalance,
		SettlementDate:   day,
		TransactionID:    uuid.NewString(),
	}
	if err := s.savingsRepo.SettleSavingsAccount(ctx, settlement); err != nil {
		return err
	}

	s.LogInfo(ctx, "Savings account settled",
		slog.String("savings_account_id", account.SavingsAccountID),
		slog.String("payment_account_id", account.LinkedPaymentAccountID),
		slog.String("amount", settlement.Amount.String()))
	return nil
}

func (s *savingsService) findPolicy(ctx context.Context, policyID string) (*domain.InterestRatePolicy, error) {
	policy, err := s.rateRepo.FindInterestRatePolicyByID(ctx, policyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrPolicyNotFound
		}
		return nil, err
	}
	return policy, nil
}

// policyCache memoizes policy lookups for the duration of one run.
// Concurrent misses for the same policy share one repository call.
type policyCache struct {
	reader  portsrepo.InterestRateReader
	flight  singleflight.Group
	mu      sync.Mutex
	entries map[string]*domain.InterestRatePolicy
}

func (c *policyCache) get(ctx context.Context, policyID string) (*domain.InterestRatePolicy, error) {
	c.mu.Lock()
	p, ok := c.entries[policyID]
	c.mu.Unlock()
	if ok {
		return p, nil
	}

	v, err, _ := c.flight.Do(policyID, func() (interface{}, error) {
		found, err := c.reader.FindInterestRatePolicyByID(ctx, policyID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrPolicyNotFound, policyID)
			}
			return nil, err
		}
		c.mu.Lock()
		c.entries[policyID] = found
		c.mu.Unlock()
		return found, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.InterestRatePolicy), nil
}
