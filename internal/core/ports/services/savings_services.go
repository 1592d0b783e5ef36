package services

import (
	"context"
	"time"

	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	"github.com/SscSPs/online_banking_backend/internal/dto"
)

// SavingsAccountReaderSvc defines read operations for savings accounts
type SavingsAccountReaderSvc interface {
	GetSavingsAccount(ctx context.Context, savingsAccountID string) (*domain.SavingsAccount, error)
	ListSavingsAccounts(ctx context.Context, params dto.ListSavingsAccountsParams) (*dto.ListSavingsAccountsResponse, error)
}

// SavingsSettlementSvc defines the accrual and term-settlement operations.
// today is a civil date in the settlement time zone.
type SavingsSettlementSvc interface {
	// RunDailySettlement accrues or settles every ACTIVE savings account.
	// Per-account failures are recorded in the report and never abort the run.
	RunDailySettlement(ctx context.Context, today time.Time) (*domain.SettlementReport, error)

	// IsAccountAtTermEnd reports whether the account has matured on today.
	IsAccountAtTermEnd(ctx context.Context, savingsAccountID string, today time.Time) (bool, error)

	// ApplyDailyAccrual adds today's interest to one account. Re-applying for
	// the same day is a no-op.
	ApplyDailyAccrual(ctx context.Context, savingsAccountID string, today time.Time) (*domain.SavingsAccount, error)

	// ListSettlementRuns retrieves recent run reports, newest first.
	ListSettlementRuns(ctx context.Context, limit int, offset int) ([]domain.SettlementReport, error)
}

// SavingsSvcFacade combines all savings service interfaces
type SavingsSvcFacade interface {
	SavingsAccountReaderSvc
	SavingsSettlementSvc
}
