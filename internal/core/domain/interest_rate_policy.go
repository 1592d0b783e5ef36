package domain

import (
	"github.com/SscSPs/online_banking_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Policy bounds.
const (
	MinTermMonths = 1
	MaxTermMonths = 99
)

var (
	MaxAnnualRatePercent = decimal.NewFromInt(99)
	MinBalanceFloor      = decimal.NewFromInt(100000)    // exclusive
	MinBalanceCeiling    = decimal.NewFromInt(999999999) // inclusive
)

// InterestRatePolicy is the term/rate/minimum-balance configuration referenced by savings accounts.
type InterestRatePolicy struct {
	PolicyID          string          `json:"policyID"`
	TermMonths        int             `json:"termMonths"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"`
	MinBalance        decimal.Decimal `json:"minBalance"`
	AuditFields
}

// ValidateInterestRatePolicy checks the policy bounds. It does not check duplicates.
func ValidateInterestRatePolicy(termMonths int, annualRatePercent, minBalance decimal.Decimal) error {
	if termMonths < MinTermMonths || termMonths > MaxTermMonths {
		return apperrors.ErrInvalidTerm
	}
	if !annualRatePercent.IsPositive() || annualRatePercent.GreaterThan(MaxAnnualRatePercent) {
		return apperrors.ErrInvalidRate
	}
	if minBalance.LessThanOrEqual(MinBalanceFloor) || minBalance.GreaterThan(MinBalanceCeiling) {
		return apperrors.ErrInvalidMinBalance
	}
	return nil
}

// Validate checks the policy's own fields.
func (p InterestRatePolicy) Validate() error {
	return ValidateInterestRatePolicy(p.TermMonths, p.AnnualRatePercent, p.MinBalance)
}

// SameTerms reports whether two policies share term, rate and minimum balance.
// Decimal comparison ignores scale, so 6 and 6.00 are the same rate.
func (p InterestRatePolicy) SameTerms(other InterestRatePolicy) bool {
	return p.TermMonths == other.TermMonths &&
		p.AnnualRatePercent.Equal(other.AnnualRatePercent) &&
		p.MinBalance.Equal(other.MinBalance)
}
