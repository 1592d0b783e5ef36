package models

import "time"

// SettlementRun is a row of settlement_runs.
type SettlementRun struct {
	RunID      string                 `db:"run_id"`
	RunDate    time.Time              `db:"run_date"`
	Processed  int                    `db:"processed"`
	Settled    int                    `db:"settled"`
	Accrued    int                    `db:"accrued"`
	Skipped    int                    `db:"skipped"`
	Failed     int                    `db:"failed"`
	Failures   []SettlementRunFailure `db:"failures"` // JSONB
	StartedAt  time.Time              `db:"started_at"`
	FinishedAt time.Time              `db:"finished_at"`
}

// SettlementRunFailure is one element of settlement_runs.failures.
type SettlementRunFailure struct {
	SavingsAccountID string `json:"savingsAccountID"`
	Reason           string `json:"reason"`
}
