package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsAccount is a row of savings_accounts.
type SavingsAccount struct {
	SavingsAccountID       string          `db:"savings_account_id"`
	AccountNumber          string          `db:"account_number"`
	Status                 string          `db:"status"`
	OpenedAt               time.Time       `db:"opened_at"`       // DATE
	ClosedAt               *time.Time      `db:"closed_at"`       // Nullable DATE
	LastAccruedOn          *time.Time      `db:"last_accrued_on"` // Nullable DATE
	CurrentBalance         decimal.Decimal `db:"current_balance"`
	InitialBalance         decimal.Decimal `db:"initial_balance"`
	LinkedPaymentAccountID string          `db:"linked_payment_account_id"`
	InterestRatePolicyID   string          `db:"interest_rate_policy_id"`
	AuditFields
}
