package repositories

import (
	"context"

	"github.com/SscSPs/online_banking_backend/internal/core/domain"
)

// SavingsAccountReader defines read operations for savings accounts
type SavingsAccountReader interface {
	// FindSavingsAccountByID retrieves a savings account by its ID.
	FindSavingsAccountByID(ctx context.Context, savingsAccountID string) (*domain.SavingsAccount, error)

	// ListActiveSavingsAccounts retrieves every ACTIVE account. CLOSED accounts are never returned.
	ListActiveSavingsAccounts(ctx context.Context) ([]domain.SavingsAccount, error)

	// ListSavingsAccounts retrieves a page of accounts, optionally filtered by status.
	ListSavingsAccounts(ctx context.Context, status *domain.SavingsAccountStatus, limit int, nextToken *string) ([]domain.SavingsAccount, *string, error)

	// CountSavingsAccountsByPolicy counts accounts of any status referencing a policy.
	CountSavingsAccountsByPolicy(ctx context.Context, policyID string) (int, error)
}

// SavingsAccountWriter defines the mutations the settlement core performs
type SavingsAccountWriter interface {
	// RecordDailyAccrual stores one day's interest. It must not apply twice for the same date.
	RecordDailyAccrual(ctx context.Context, accrual domain.DailyAccrual) error

	// SettleSavingsAccount closes the account and credits its linked payment account
	// in a single transaction.
	SettleSavingsAccount(ctx context.Context, settlement domain.Settlement) error
}

// SavingsAccountRepositoryFacade combines all savings account repository interfaces
type SavingsAccountRepositoryFacade interface {
	SavingsAccountReader
	SavingsAccountWriter
}
