package repositories

import (
	"context"

	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InterestRateReader defines read operations for interest rate policies
type InterestRateReader interface {
	// FindInterestRatePolicyByID retrieves a policy by its ID.
	FindInterestRatePolicyByID(ctx context.Context, policyID string) (*domain.InterestRatePolicy, error)

	// FindInterestRatePolicyByTerms retrieves the policy with exactly these terms, if any.
	FindInterestRatePolicyByTerms(ctx context.Context, termMonths int, annualRatePercent, minBalance decimal.Decimal) (*domain.InterestRatePolicy, error)

	// ListInterestRatePolicies retrieves a page of policies ordered by term.
	ListInterestRatePolicies(ctx context.Context, limit int, offset int) ([]domain.InterestRatePolicy, error)
}

// InterestRateWriter defines write operations for interest rate policies
type InterestRateWriter interface {
	SaveInterestRatePolicy(ctx context.Context, policy domain.InterestRatePolicy) error
	UpdateInterestRatePolicy(ctx context.Context, policy domain.InterestRatePolicy) error
	DeleteInterestRatePolicy(ctx context.Context, policyID string) error
}

// InterestRateRepositoryFacade combines all interest rate repository interfaces
type InterestRateRepositoryFacade interface {
	InterestRateReader
	InterestRateWriter
}
