package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccrualOutcome is what the daily run did with one account.
type AccrualOutcome string

const (
	OutcomeAccrued AccrualOutcome = "ACCRUED"
	OutcomeSettled AccrualOutcome = "SETTLED"
	OutcomeSkipped AccrualOutcome = "SKIPPED" // already accrued for the day
	OutcomeFailed  AccrualOutcome = "FAILED"
)

// DailyAccrual is the write-back of one day's interest.
type DailyAccrual struct {
	SavingsAccountID string
	PreviousBalance  decimal.Decimal // balance the increment was computed from
	Increment        decimal.Decimal // full precision
	NewBalance       decimal.Decimal // rounded to minor units
	AccrualDate      time.Time
	TransactionID    string
}

// Settlement closes a matured account and credits its linked payment account.
type Settlement struct {
	SavingsAccountID string
	PaymentAccountID string
	Amount           decimal.Decimal
	SettlementDate   time.Time
	TransactionID    string
}

// SettlementFailure records one account the run could not process.
type SettlementFailure struct {
	SavingsAccountID string `json:"savingsAccountID"`
	Reason           string `json:"reason"`
}

// SettlementReport summarizes one daily settlement run.
type SettlementReport struct {
	RunID      string              `json:"runID"`
	RunDate    time.Time           `json:"runDate"`
	Processed  int                 `json:"processed"`
	Settled    int                 `json:"settled"`
	Accrued    int                 `json:"accrued"`
	Skipped    int                 `json:"skipped"`
	Failed     int                 `json:"failed"`
	Failures   []SettlementFailure `json:"failures"`
	StartedAt  time.Time           `json:"startedAt"`
	FinishedAt time.Time           `json:"finishedAt"`
}

// Record counts one account outcome.
func (r *SettlementReport) Record(accountID string, outcome AccrualOutcome, err error) {
	r.Processed++
	switch outcome {
	case OutcomeAccrued:
		r.Accrued++
	case OutcomeSettled:
		r.Settled++
	case OutcomeSkipped:
		r.Skipped++
	default:
		r.Failed++
		reason := "unknown error"
		if err != nil {
			reason = err.Error()
		}
		r.Failures = append(r.Failures, SettlementFailure{SavingsAccountID: accountID, Reason: reason})
	}
}
