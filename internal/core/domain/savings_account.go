package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsAccountStatus is the lifecycle state of a savings account.
type SavingsAccountStatus string

const (
	SavingsActive SavingsAccountStatus = "ACTIVE"
	SavingsClosed SavingsAccountStatus = "CLOSED"
)

// SavingsAccount is a term deposit that accrues interest daily until it matures.
type SavingsAccount struct {
	SavingsAccountID       string               `json:"savingsAccountID"`
	AccountNumber          string               `json:"accountNumber"`
	Status                 SavingsAccountStatus `json:"status"`
	OpenedAt               time.Time            `json:"openedAt"`      // civil date
	ClosedAt               *time.Time           `json:"closedAt"`      // set once, at settlement
	LastAccruedOn          *time.Time           `json:"lastAccruedOn"` // last civil date interest was added
	CurrentBalance         decimal.Decimal      `json:"currentBalance"`
	InitialBalance         decimal.Decimal      `json:"initialBalance"`
	LinkedPaymentAccountID string               `json:"linkedPaymentAccountID"`
	InterestRatePolicyID   string               `json:"interestRatePolicyID"`
	AuditFields
}

// IsActive reports whether the account still accrues interest.
func (a SavingsAccount) IsActive() bool {
	return a.Status == SavingsActive
}

// AccruedOn reports whether interest was already added for the civil date of day.
func (a SavingsAccount) AccruedOn(day time.Time) bool {
	if a.LastAccruedOn == nil {
		return false
	}
	return !CivilDate(*a.LastAccruedOn).Before(CivilDate(day))
}

// CivilDate drops the clock part of t, keeping t's own year, month and day.
// The result is expressed in UTC so dates read from a DATE column and dates
// computed in the settlement zone compare equal.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
