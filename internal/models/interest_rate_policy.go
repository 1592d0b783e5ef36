package models

import "github.com/shopspring/decimal"

// InterestRatePolicy is a row of interest_rate_policies.
type InterestRatePolicy struct {
	PolicyID          string          `db:"policy_id"`
	TermMonths        int             `db:"term_months"`
	AnnualRatePercent decimal.Decimal `db:"annual_rate_percent"`
	MinBalance        decimal.Decimal `db:"min_balance"`
	AuditFields
}
